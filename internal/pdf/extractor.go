// Package pdf extracts plain text and header metadata from PDF uploads.
package pdf

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/ledongthuc/pdf"
	"go.uber.org/zap"

	"github.com/nadavw/lantern/internal/domain"
)

const defaultMaxFileSize = 50 * 1024 * 1024 // 50MB

var pdfSignature = []byte("%PDF-")

var multiSpace = regexp.MustCompile(` +`)

// Extractor implements the domain.PDFExtractor interface using ledongthuc/pdf.
type Extractor struct {
	maxFileSize int64
	logger      *zap.Logger
}

// NewExtractor creates a PDF extractor. A non-positive maxFileSize falls back
// to the 50MB default.
func NewExtractor(maxFileSize int64, logger *zap.Logger) *Extractor {
	if maxFileSize <= 0 {
		maxFileSize = defaultMaxFileSize
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Extractor{
		maxFileSize: maxFileSize,
		logger:      logger,
	}
}

// Validate checks for the PDF file signature and at least one readable page.
func (e *Extractor) Validate(data []byte) (valid bool) {
	// The parser panics on some malformed files; treat that as invalid.
	defer func() {
		if recover() != nil {
			valid = false
		}
	}()

	if !bytes.HasPrefix(data, pdfSignature) {
		return false
	}

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return false
	}

	return reader.NumPage() > 0
}

// Extract parses the PDF and returns its cleaned full text plus a metadata
// record with page/char/word counts and the Info-dictionary header fields.
func (e *Extractor) Extract(ctx context.Context, data []byte, filename string) (extraction *domain.PDFExtraction, err error) {
	defer func() {
		if r := recover(); r != nil {
			extraction = nil
			err = fmt.Errorf("%w: malformed PDF: %v", domain.ErrUnsupportedFormat, r)
		}
	}()

	if int64(len(data)) > e.maxFileSize {
		return nil, fmt.Errorf("%w: file exceeds %d bytes", domain.ErrTooLarge, e.maxFileSize)
	}

	if !bytes.HasPrefix(data, pdfSignature) {
		return nil, fmt.Errorf("%w: missing PDF signature", domain.ErrUnsupportedFormat)
	}

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUnsupportedFormat, err)
	}

	pageCount := reader.NumPage()
	if pageCount == 0 {
		return nil, fmt.Errorf("%w: PDF has no pages", domain.ErrUnsupportedFormat)
	}

	var builder strings.Builder
	for i := 1; i <= pageCount; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}

		pageText, textErr := page.GetPlainText(nil)
		if textErr != nil {
			e.logger.Warn("failed to extract page text",
				zap.String("filename", filename),
				zap.Int("page", i),
				zap.Error(textErr))
			continue
		}

		builder.WriteString(pageText)
		builder.WriteString("\n")
	}

	text := cleanText(builder.String())
	if text == "" {
		return nil, fmt.Errorf("%w: no text content found in PDF", domain.ErrEmptyInput)
	}

	result := &domain.PDFExtraction{
		Text:          text,
		Filename:      filename,
		FileSizeBytes: len(data),
		PageCount:     pageCount,
		CharCount:     utf8.RuneCountInString(text),
		WordCount:     len(strings.Fields(text)),
		Header:        readHeader(reader),
	}

	e.logger.Info("extracted text from PDF",
		zap.String("filename", filename),
		zap.Int("pages", result.PageCount),
		zap.Int("chars", result.CharCount),
		zap.Int("words", result.WordCount))

	return result, nil
}

// cleanText trims every line, drops blank lines and collapses runs of spaces.
func cleanText(text string) string {
	if text == "" {
		return ""
	}

	lines := make([]string, 0, strings.Count(text, "\n")+1)
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}

	return multiSpace.ReplaceAllString(strings.Join(lines, "\n"), " ")
}

// readHeader pulls the Info dictionary fields from the document trailer.
func readHeader(reader *pdf.Reader) domain.PDFHeader {
	info := reader.Trailer().Key("Info")
	if info.IsNull() {
		return domain.PDFHeader{}
	}

	return domain.PDFHeader{
		Title:            infoString(info, "Title"),
		Author:           infoString(info, "Author"),
		Subject:          infoString(info, "Subject"),
		Creator:          infoString(info, "Creator"),
		Producer:         infoString(info, "Producer"),
		CreationDate:     infoString(info, "CreationDate"),
		ModificationDate: infoString(info, "ModDate"),
	}
}

func infoString(info pdf.Value, key string) string {
	v := info.Key(key)
	if v.Kind() != pdf.String {
		return ""
	}
	return strings.TrimSpace(v.RawString())
}
