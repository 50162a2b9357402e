// Package extractor converts uploaded resume documents into plain text.
package extractor

import (
	"bytes"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
	"go.uber.org/zap"
)

var (
	// ErrUnsupportedFormat is returned for file suffixes other than .pdf, .docx and .doc.
	ErrUnsupportedFormat = errors.New("only PDF and DOCX files are supported")
	// ErrCorruptDocument is returned when the document container cannot be parsed.
	ErrCorruptDocument = errors.New("document cannot be parsed")
)

type Extractor struct {
	logger *zap.Logger
}

func New(logger *zap.Logger) *Extractor {
	return &Extractor{logger: logger}
}

// Extract converts the in-memory document into plain text. The format is
// chosen by the filename suffix only.
func (e *Extractor) Extract(data []byte, filename string) (string, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return e.extractPDF(data)
	case ".docx", ".doc":
		return e.extractDocx(data)
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, filename)
	}
}

// extractPDF concatenates the text layer of every page in document order.
// Pages without a text layer contribute nothing. There is no OCR fallback.
func (e *Extractor) extractPDF(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrCorruptDocument, err)
	}

	var builder strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			e.logger.Debug("skipping page without extractable text", zap.Int("page", i), zap.Error(err))
			continue
		}
		builder.WriteString(text)
	}

	return builder.String(), nil
}

// extractDocx concatenates each paragraph followed by a newline. Tables and
// embedded objects are ignored.
func (e *Extractor) extractDocx(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrCorruptDocument, err)
	}
	defer doc.Close()

	var builder strings.Builder
	for _, paragraph := range paragraphs(doc.Editable().GetContent()) {
		builder.WriteString(paragraph)
		builder.WriteString("\n")
	}

	return builder.String(), nil
}

// paragraphs pulls the text of every <w:p> element from the raw document XML,
// preserving order. Runs inside a paragraph are concatenated without
// separators, matching how word processors store continuous text.
func paragraphs(content string) []string {
	var result []string

	for {
		start := strings.Index(content, "<w:p ")
		if alt := strings.Index(content, "<w:p>"); alt != -1 && (start == -1 || alt < start) {
			start = alt
		}
		if start == -1 {
			break
		}
		end := strings.Index(content[start:], "</w:p>")
		if end == -1 {
			break
		}

		result = append(result, runText(content[start:start+end]))
		content = content[start+end+len("</w:p>"):]
	}

	return result
}

// runText extracts the character data of the <w:t> runs in one paragraph.
func runText(paragraph string) string {
	var builder strings.Builder

	for {
		open := strings.Index(paragraph, "<w:t")
		if open == -1 {
			break
		}
		rest := paragraph[open:]
		gt := strings.Index(rest, ">")
		if gt == -1 {
			break
		}
		// Self-closing run, no text.
		if strings.HasSuffix(rest[:gt], "/") {
			paragraph = rest[gt+1:]
			continue
		}
		rest = rest[gt+1:]
		closing := strings.Index(rest, "</w:t>")
		if closing == -1 {
			break
		}
		builder.WriteString(unescape(rest[:closing]))
		paragraph = rest[closing+len("</w:t>"):]
	}

	return builder.String()
}

func unescape(s string) string {
	replacer := strings.NewReplacer(
		"&amp;", "&",
		"&lt;", "<",
		"&gt;", ">",
		"&quot;", `"`,
		"&apos;", "'",
	)
	return replacer.Replace(s)
}
