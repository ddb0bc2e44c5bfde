// Package ingestion reads resume and job-description documents and turns
// them into cleaned plain text for the extraction and matching layers.
package ingestion

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

// SupportedExtensions lists the document types the loader accepts.
var SupportedExtensions = map[string]bool{
	".pdf":  true,
	".docx": true,
	".txt":  true,
	".html": true,
	".htm":  true,
}

// ExtractText reads a document and returns its raw text. Corrupt, unreadable,
// or unsupported files degrade to an empty string; the pipeline treats an
// empty text as "no signal", never as an error.
func ExtractText(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	return ExtractTextFromBytes(data, filepath.Ext(path))
}

// ExtractTextFromBytes extracts text from in-memory document content, keyed
// by file extension (e.g. ".pdf"). Unsupported extensions and parse failures
// yield an empty string.
func ExtractTextFromBytes(data []byte, ext string) string {
	switch strings.ToLower(ext) {
	case ".pdf":
		return extractPDF(data)
	case ".docx":
		return extractDocx(data)
	case ".txt":
		return string(data)
	case ".html", ".htm":
		return extractHTML(data)
	default:
		return ""
	}
}

func extractPDF(data []byte) string {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return ""
	}

	var sb strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		sb.WriteString(text)
		sb.WriteString("\n")
	}
	return sb.String()
}

func extractDocx(data []byte) string {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return ""
	}
	defer doc.Close()

	return doc.Editable().GetContent()
}

func extractHTML(data []byte) string {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(data))
	if err != nil {
		return ""
	}
	doc.Find("script, style").Remove()
	return doc.Text()
}
