package textextract

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/dmitrijs2005/chapterhub/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtension(t *testing.T) {
	tests := map[string]string{
		"syllabus.txt":     "txt",
		"Syllabus.PDF":     "pdf",
		"archive.tar.gz":   "gz",
		"README":           "readme",
		"dir.v2/notes.Csv": "csv",
		"trailing.":        "",
		"":                 "",
	}
	for in, want := range tests {
		assert.Equal(t, want, Extension(in), in)
	}
}

func TestExtract_Text(t *testing.T) {
	got, err := Extract(context.Background(), []byte("CS101 Fall 2025"), "syllabus.txt")
	require.NoError(t, err)
	assert.Equal(t, "CS101 Fall 2025", got)
}

func TestExtract_TextInvalidUTF8Replaced(t *testing.T) {
	got, err := Extract(context.Background(), []byte("ok\xffok"), "a.TXT")
	require.NoError(t, err)
	assert.Equal(t, "ok�ok", got)
}

func TestExtract_UnsupportedType(t *testing.T) {
	_, err := Extract(context.Background(), []byte("a,b"), "grades.csv")
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrUnsupportedInput)
	assert.Contains(t, err.Error(), "'csv'")
}

func TestExtract_DotlessNameIsReported(t *testing.T) {
	_, err := Extract(context.Background(), []byte("notes"), "Syllabus")
	assert.ErrorIs(t, err, common.ErrUnsupportedInput)
	assert.Equal(t, "File type 'syllabus' is not supported. Currently only txt and pdf files are supported for AI extraction.", err.Error())
}

func readFixture(t *testing.T, name string) []byte {
	t.Helper()
	data, err := os.ReadFile("testdata/" + name)
	require.NoError(t, err)
	return data
}

func TestExtract_PDF(t *testing.T) {
	got, err := Extract(context.Background(), readFixture(t, "syllabus.pdf"), "Syllabus.PDF")
	require.NoError(t, err)
	assert.Equal(t, "CS101 Introduction to Computer Science\n", got)
}

func TestExtract_PDFAllPages(t *testing.T) {
	got, err := Extract(context.Background(), readFixture(t, "two_pages.pdf"), "syllabus.pdf")
	require.NoError(t, err)
	assert.Equal(t, "Page one: CS101 Fall 2025\nPage two: Final exam\n", got)
}

func TestReadPDF_StopsAtPageLimit(t *testing.T) {
	got, err := readPDF(readFixture(t, "two_pages.pdf"), 1)
	require.NoError(t, err)
	assert.Equal(t, "Page one: CS101 Fall 2025\n", got)
	assert.NotContains(t, got, "Page two")
}

func TestExtract_MalformedPDF(t *testing.T) {
	_, err := Extract(context.Background(), []byte("definitely not a pdf"), "syllabus.pdf")
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrExternalService)
	assert.Contains(t, err.Error(), "Error parsing PDF")
}

func TestExtract_PDFTimeout(t *testing.T) {
	ctx, cancel := context.WithDeadline(context.Background(), time.Now().Add(-time.Second))
	defer cancel()

	// an expired deadline either wins the race or the parse fails first;
	// both are ExternalService failures
	_, err := Extract(ctx, []byte("%PDF-1.4 broken"), "syllabus.pdf")
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrExternalService)
}
