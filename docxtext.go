// Package docxtext provides a fluent API for extracting the plain text of
// Word (.docx) documents.
//
// Basic usage:
//
//	text, warnings, err := docxtext.Open("cronistoria.docx").Text()
//	if err != nil {
//	    // handle error
//	}
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", docxtext.FormatWarnings(warnings))
//	}
//
// Callers that only want a printable result can use ExtractContent, which
// folds every failure into an "Error extracting content: ..." string.
//
// For lower-level access to paragraphs and typed errors, use the docx package.
package docxtext

// errorPrefix starts every string ExtractContent returns for a failure.
const errorPrefix = "Error extracting content: "

// Open returns an Extractor for the document at filename. Nothing is read
// until a terminal operation such as Text() runs; each terminal operation
// opens the archive and releases it before returning.
//
// Example:
//
//	text, warnings, err := docxtext.Open("document.docx").Text()
func Open(filename string) *Extractor {
	return &Extractor{
		filename: filename,
		options:  defaultOptions(),
	}
}

// ExtractContent returns the text of the document at path. Failures are not
// returned as errors: the result is then a message starting with
// "Error extracting content: ".
func ExtractContent(path string) string {
	text, _, err := Open(path).Text()
	if err != nil {
		return RenderError(err)
	}
	return text
}

// RenderError formats an extraction failure the way ExtractContent reports it.
func RenderError(err error) string {
	return errorPrefix + err.Error()
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	meta := docxtext.Must(docxtext.Open("document.docx").Metadata())
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// MustText is a helper that wraps a call to Text() or Paragraphs() and panics
// if the error is non-nil. It discards warnings and returns just the value.
//
// Example:
//
//	text := docxtext.MustText(docxtext.Open("document.docx").Text())
func MustText[T any](val T, _ []Warning, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
