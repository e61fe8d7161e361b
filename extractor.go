package docxtext

import (
	"fmt"
	"log/slog"

	"github.com/tsawler/docxtext/docx"
	"github.com/tsawler/docxtext/format"
)

// Extractor provides a fluent interface for extracting content from a DOCX
// file. Each configuration method returns a new Extractor instance, making
// it safe for concurrent use and allowing method chaining.
type Extractor struct {
	filename string

	// Configuration
	options ExtractOptions

	// Accumulated error (fail-fast)
	err error
}

// clone creates a shallow copy of the Extractor with a deep copy of options.
func (e *Extractor) clone() *Extractor {
	return &Extractor{
		filename: e.filename,
		options:  e.options.clone(),
		err:      e.err,
	}
}

// ============================================================================
// Configuration Methods (return new Extractor instance)
// ============================================================================

// Logger sets the structured logger that receives debug messages. By default
// extraction is silent.
//
// Example:
//
//	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
//	text, _, err := docxtext.Open("doc.docx").Logger(logger).Text()
func (e *Extractor) Logger(logger *slog.Logger) *Extractor {
	newExt := e.clone()
	newExt.options.logger = logger
	return newExt
}

// MaxEntrySize limits how large, once decompressed, an archive member may
// be. The limit must be positive.
//
// Example:
//
//	text, _, err := docxtext.Open("doc.docx").MaxEntrySize(10 << 20).Text()
func (e *Extractor) MaxEntrySize(n int64) *Extractor {
	newExt := e.clone()
	if n <= 0 {
		if newExt.err == nil {
			newExt.err = fmt.Errorf("invalid max entry size %d: must be positive", n)
		}
		return newExt
	}
	newExt.options.maxEntrySize = n
	return newExt
}

// Filename returns the path the Extractor reads.
func (e *Extractor) Filename() string {
	return e.filename
}

// ============================================================================
// Terminal Operations
// ============================================================================

// open opens the reader for a terminal operation and collects the warnings
// that can be decided before the content is read.
func (e *Extractor) open() (*docx.Reader, []Warning, error) {
	if e.err != nil {
		return nil, nil, e.err
	}
	if e.filename == "" {
		return nil, nil, fmt.Errorf("no filename specified")
	}

	var warnings []Warning
	if f := format.Detect(e.filename); f != format.DOCX {
		msg := fmt.Sprintf("%s does not have a %s extension", e.filename, format.DOCX.Extension())
		if f != format.Unknown {
			msg = fmt.Sprintf("%s has a %s extension, expected %s", e.filename, f.Extension(), format.DOCX.Extension())
		}
		warnings = append(warnings, Warning{Code: WarnUnexpectedExtension, Message: msg})
	}

	r, err := docx.OpenWithOptions(e.filename, docx.Options{
		MaxEntrySize: e.options.maxEntrySize,
		Logger:       e.options.logger,
	})
	if err != nil {
		return nil, warnings, err
	}
	return r, warnings, nil
}

// Text extracts the document text: non-empty paragraphs in document order,
// joined with "\n".
//
// Returns the extracted text, any warnings encountered during processing,
// and an error if extraction failed. Errors come from the docx package
// unwrapped, so errors.As against *docx.ArchiveOpenError,
// *docx.MemberNotFoundError and *docx.XMLParseError works directly.
//
// Example:
//
//	text, warnings, err := docxtext.Open("document.docx").Text()
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", docxtext.FormatWarnings(warnings))
//	}
func (e *Extractor) Text() (string, []Warning, error) {
	r, warnings, err := e.open()
	if err != nil {
		return "", warnings, err
	}
	defer r.Close()

	text := r.Text()
	if text == "" {
		warnings = append(warnings, Warning{
			Code:    WarnNoText,
			Message: fmt.Sprintf("%s contains no paragraph text", e.filename),
		})
	}
	return text, warnings, nil
}

// Paragraphs returns the non-empty paragraphs with their text fragments.
//
// Example:
//
//	paras, _, err := docxtext.Open("document.docx").Paragraphs()
//	for _, p := range paras {
//	    fmt.Println(len(p.Fragments), p.Text())
//	}
func (e *Extractor) Paragraphs() ([]docx.Paragraph, []Warning, error) {
	r, warnings, err := e.open()
	if err != nil {
		return nil, warnings, err
	}
	defer r.Close()

	paras := r.Paragraphs()
	if len(paras) == 0 {
		warnings = append(warnings, Warning{
			Code:    WarnNoText,
			Message: fmt.Sprintf("%s contains no paragraph text", e.filename),
		})
	}
	return paras, warnings, nil
}

// Metadata returns the document's package properties (title, creator,
// timestamps, ...). The document body must still be readable.
//
// Example:
//
//	meta, err := docxtext.Open("document.docx").Metadata()
func (e *Extractor) Metadata() (docx.Metadata, error) {
	r, _, err := e.open()
	if err != nil {
		return docx.Metadata{}, err
	}
	defer r.Close()

	return r.Metadata(), nil
}
