// Package extraction turns uploaded résumé files (PDF or DOCX) into plain text.
// All parsing happens in memory; nothing is written to disk.
package extraction

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

const (
	ExtPDF  = ".pdf"
	ExtDOCX = ".docx"
)

// ErrUnsupportedType is returned for files that are neither PDF nor DOCX.
var ErrUnsupportedType = errors.New("unsupported file type")

// ParseError represents a failure to read a supported document.
type ParseError struct {
	Format string
	Cause  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse %s: %v", e.Format, e.Cause)
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}

// SupportedExtension reports whether filename has a .pdf or .docx extension (any case).
func SupportedExtension(filename string) bool {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ExtPDF, ExtDOCX:
		return true
	}
	return false
}

// ExtractText returns the plain text of a PDF or DOCX file. Unsupported types
// and unreadable documents yield an empty string.
func ExtractText(data []byte, filename string) string {
	text, err := Extract(data, filename)
	if err != nil {
		return ""
	}
	return text
}

// Extract returns the plain text of a PDF or DOCX file, dispatching on the
// file extension. Panics raised by the underlying parsers are returned as
// *ParseError.
func Extract(data []byte, filename string) (text string, err error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if ext != ExtPDF && ext != ExtDOCX {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedType, ext)
	}

	format := strings.TrimPrefix(ext, ".")
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = &ParseError{Format: format, Cause: fmt.Errorf("parser panic: %v", r)}
		}
	}()

	if len(data) == 0 {
		return "", &ParseError{Format: format, Cause: errors.New("empty file")}
	}

	switch ext {
	case ExtPDF:
		text, err = extractPDF(data)
	default:
		text, err = extractDOCX(data)
	}
	if err != nil {
		return "", &ParseError{Format: format, Cause: err}
	}
	return strings.TrimSpace(text), nil
}

func extractPDF(data []byte) (string, error) {
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to read pdf: %w", err)
	}

	var sb strings.Builder
	for i := 1; i <= r.NumPage(); i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		// Pages that fail to decode contribute nothing.
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		sb.WriteString(text)
		sb.WriteString(" ")
	}
	return sb.String(), nil
}

func extractDOCX(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to read docx: %w", err)
	}
	defer func() { _ = doc.Close() }()

	return documentXMLText(doc.Editable().GetContent())
}

// documentXMLText collects the character data of a WordprocessingML body,
// ending each paragraph with a newline and rendering tabs and breaks as whitespace.
func documentXMLText(content string) (string, error) {
	dec := xml.NewDecoder(strings.NewReader(content))
	dec.Strict = false

	var sb strings.Builder
	inText := false
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return "", fmt.Errorf("failed to decode document xml: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "t":
				inText = true
			case "tab":
				sb.WriteString("\t")
			case "br", "cr":
				sb.WriteString("\n")
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inText = false
			case "p":
				sb.WriteString("\n")
			}
		case xml.CharData:
			if inText {
				sb.Write(t)
			}
		}
	}
	return sb.String(), nil
}
