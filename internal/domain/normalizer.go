package domain

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Source type discriminator values stored under the "source_type" key.
const (
	SourceTypeText = "text"
	SourceTypePDF  = "pdf"
)

const (
	previewLength = 100
	pdfKeyPrefix  = "pdf_"
)

// NormalizeText converts submitted plain text into a canonical (text,
// metadata) pair. The text is trimmed of surrounding whitespace and rejected
// when empty. Derived fields are merged first and caller metadata last, so
// caller values win every key tie.
func NormalizeText(text string, caller Metadata) (string, Metadata, error) {
	canonical := strings.TrimSpace(text)
	if canonical == "" {
		return "", nil, fmt.Errorf("%w: text cannot be empty", ErrEmptyInput)
	}

	derived := Metadata{
		"source_type":  SourceTypeText,
		"text_length":  utf8.RuneCountInString(canonical),
		"text_preview": textPreview(canonical),
	}

	return canonical, mergeMetadata(derived, caller), nil
}

// NormalizePDF converts a PDF extraction result into a canonical (text,
// metadata) pair. The nested header block is flattened to top-level keys with
// the pdf_ prefix; empty header fields are dropped rather than stored as
// empty strings. Caller metadata is merged last and wins key ties.
func NormalizePDF(extraction *PDFExtraction, caller Metadata) (string, Metadata, error) {
	if extraction == nil {
		return "", nil, fmt.Errorf("%w: extraction result cannot be nil", ErrInvalidArgument)
	}

	canonical := strings.TrimSpace(extraction.Text)
	if canonical == "" {
		return "", nil, fmt.Errorf("%w: no text content found in PDF", ErrEmptyInput)
	}

	derived := Metadata{
		"source_type":     SourceTypePDF,
		"filename":        extraction.Filename,
		"file_size_bytes": extraction.FileSizeBytes,
		"page_count":      extraction.PageCount,
		"char_count":      extraction.CharCount,
		"word_count":      extraction.WordCount,
		"text_length":     utf8.RuneCountInString(canonical),
		"text_preview":    textPreview(canonical),
	}

	header := extraction.Header
	for key, value := range map[string]string{
		"title":             header.Title,
		"author":            header.Author,
		"subject":           header.Subject,
		"creator":           header.Creator,
		"producer":          header.Producer,
		"creation_date":     header.CreationDate,
		"modification_date": header.ModificationDate,
	} {
		if value != "" {
			derived[pdfKeyPrefix+key] = value
		}
	}

	return canonical, mergeMetadata(derived, caller), nil
}

// textPreview returns the first 100 characters of text, with a truncation
// marker when the text is longer.
func textPreview(text string) string {
	runes := []rune(text)
	if len(runes) <= previewLength {
		return text
	}
	return string(runes[:previewLength]) + "..."
}

// mergeMetadata merges caller metadata over derived metadata; caller values
// overwrite derived keys, never the other way around.
func mergeMetadata(derived, caller Metadata) Metadata {
	merged := make(Metadata, len(derived)+len(caller))
	for k, v := range derived {
		merged[k] = v
	}
	for k, v := range caller {
		merged[k] = v
	}
	return merged
}
