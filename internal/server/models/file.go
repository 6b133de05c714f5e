// Package models defines server-side data models persisted in the database.
package models

// UploadTarget instructs the client to upload a syllabus file using a
// presigned URL. StorageID is later passed back to CreateSyllabus.
type UploadTarget struct {
	StorageID string `json:"storageId"`
	UploadURL string `json:"uploadUrl"`
}
