// Package textextract turns uploaded syllabus files into plain text.
//
// Supported formats are plain text (.txt) and PDF (.pdf). PDF parsing is
// capped at MaxPDFPages pages and bounded by the caller's context.
package textextract

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/chapterhub/internal/common"
	"github.com/ledongthuc/pdf"
)

// MaxPDFPages is the number of leading pages read from a PDF.
const MaxPDFPages = 50

// ErrExtractionTimeout is returned when PDF parsing outlives the context.
// It is an ExternalService failure and may be retried.
var ErrExtractionTimeout = &common.Error{Kind: common.ErrExternalService, Msg: "Error parsing PDF: timed out"}

// Extension returns the lower-cased text after the last dot of filename.
// A name without a dot is returned whole, so "README" yields "readme".
func Extension(filename string) string {
	return strings.ToLower(filename[strings.LastIndex(filename, ".")+1:])
}

// Extract decodes data according to the extension of filename.
func Extract(ctx context.Context, data []byte, filename string) (string, error) {
	switch ext := Extension(filename); ext {
	case "txt":
		return strings.ToValidUTF8(string(data), "�"), nil
	case "pdf":
		return extractPDF(ctx, data)
	default:
		return "", common.NewError(common.ErrUnsupportedInput,
			"File type '%s' is not supported. Currently only txt and pdf files are supported for AI extraction.", ext)
	}
}

type pdfResult struct {
	text string
	err  error
}

func extractPDF(ctx context.Context, data []byte) (string, error) {
	done := make(chan pdfResult, 1)

	go func() {
		defer func() {
			if p := recover(); p != nil {
				done <- pdfResult{err: fmt.Errorf("%v", p)}
			}
		}()
		text, err := readPDF(data, MaxPDFPages)
		done <- pdfResult{text: text, err: err}
	}()

	select {
	case <-ctx.Done():
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return "", ErrExtractionTimeout
		}
		return "", ctx.Err()
	case res := <-done:
		if res.err != nil {
			return "", common.NewError(common.ErrExternalService, "Error parsing PDF: %s", res.err.Error())
		}
		return res.text, nil
	}
}

func readPDF(data []byte, maxPages int) (string, error) {
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}

	n := r.NumPage()
	if n > maxPages {
		n = maxPages
	}

	var sb strings.Builder
	for i := 1; i <= n; i++ {
		p := r.Page(i)
		if p.V.IsNull() {
			continue
		}
		text, err := p.GetPlainText(nil)
		if err != nil {
			return "", err
		}
		sb.WriteString(text)
		sb.WriteString("\n")
	}

	return sb.String(), nil
}
