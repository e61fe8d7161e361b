package docxtext

import "strings"

// WarningCode classifies a Warning.
type WarningCode string

const (
	// WarnUnexpectedExtension: the file name does not end in .docx. The
	// content is still read, since the extension is never validated.
	WarnUnexpectedExtension WarningCode = "unexpected-extension"
	// WarnNoText: the document opened fine but none of its paragraphs
	// carried text.
	WarnNoText WarningCode = "no-text"
)

// Warning is a non-fatal observation made while extracting a document.
type Warning struct {
	Code    WarningCode
	Message string
}

func (w Warning) String() string {
	return string(w.Code) + ": " + w.Message
}

// FormatWarnings renders warnings as a single "; " separated line.
func FormatWarnings(warnings []Warning) string {
	parts := make([]string, len(warnings))
	for i, w := range warnings {
		parts[i] = w.String()
	}
	return strings.Join(parts, "; ")
}
