// Package docx extracts the plain text of Word (.docx) documents.
//
// A .docx file is a zip archive whose body lives in word/document.xml. The
// reader walks every <w:p> paragraph, concatenates the <w:t> text of its
// runs, drops paragraphs that carry no text and joins the rest with "\n".
//
// Basic usage:
//
//	text, err := docx.Extract("report.docx")
//	if err != nil {
//	    var missing *docx.MemberNotFoundError
//	    if errors.As(err, &missing) {
//	        // not a Word document
//	    }
//	}
package docx

import (
	"archive/zip"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/tsawler/docxtext/format"
)

// Archive members read by the Reader.
const (
	DocumentMember = "word/document.xml"
	coreMember     = "docProps/core.xml"
	appMember      = "docProps/app.xml"
)

// DefaultMaxEntrySize caps the decompressed size of any member read from the
// archive, so a small crafted file cannot inflate into gigabytes of XML.
const DefaultMaxEntrySize int64 = 100 * 1024 * 1024

// Options configures a Reader.
type Options struct {
	// MaxEntrySize is the largest decompressed member accepted
	// (default: DefaultMaxEntrySize).
	MaxEntrySize int64

	// Logger receives debug messages. Defaults to a logger that discards.
	Logger *slog.Logger
}

func (o *Options) defaults() {
	if o.MaxEntrySize <= 0 {
		o.MaxEntrySize = DefaultMaxEntrySize
	}
	if o.Logger == nil {
		o.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
}

// Reader provides access to DOCX document content.
type Reader struct {
	path       string
	opts       Options
	zipReader  *zip.ReadCloser
	paragraphs []Paragraph
	meta       Metadata
}

// Extract opens the document at path, returns its text and releases the
// archive before returning, whether or not extraction succeeded.
func Extract(path string) (string, error) {
	r, err := Open(path)
	if err != nil {
		return "", err
	}
	defer r.Close()

	return r.Text(), nil
}

// Open opens a DOCX file for reading with default options.
func Open(path string) (*Reader, error) {
	return OpenWithOptions(path, Options{})
}

// OpenWithOptions opens a DOCX file for reading. The document body is parsed
// eagerly; the returned Reader must be closed.
func OpenWithOptions(path string, opts Options) (*Reader, error) {
	opts.defaults()

	zr, err := zip.OpenReader(path)
	if err != nil {
		return nil, &ArchiveOpenError{Path: path, Err: err}
	}

	r := &Reader{
		path:      path,
		opts:      opts,
		zipReader: zr,
	}

	opts.Logger.Debug("opened archive", "path", path, "entries", len(zr.File))

	if err := r.parseDocument(); err != nil {
		zr.Close()
		return nil, err
	}

	// Metadata is optional
	r.parseCoreProperties()
	r.parseAppProperties()

	return r, nil
}

// Close releases the archive handle. It is safe to call Close more than once.
func (r *Reader) Close() error {
	if r.zipReader != nil {
		err := r.zipReader.Close()
		r.zipReader = nil
		return err
	}
	return nil
}

// Paragraphs returns the non-empty paragraphs of the document in order.
func (r *Reader) Paragraphs() []Paragraph {
	out := make([]Paragraph, len(r.paragraphs))
	copy(out, r.paragraphs)
	return out
}

// Text returns the paragraphs joined with a single newline.
func (r *Reader) Text() string {
	var result strings.Builder
	for i, para := range r.paragraphs {
		if i > 0 {
			result.WriteString("\n")
		}
		for _, frag := range para.Fragments {
			result.WriteString(frag)
		}
	}

	return result.String()
}

// Metadata returns the document properties. Missing properties are zero.
func (r *Reader) Metadata() Metadata {
	meta := r.meta
	if meta.Keywords != nil {
		meta.Keywords = append([]string(nil), meta.Keywords...)
	}
	return meta
}

// parseDocument reads and parses word/document.xml.
func (r *Reader) parseDocument() error {
	data, err := r.getFileContent(DocumentMember)
	if err != nil {
		if errors.Is(err, errEntryNotFound) {
			return &MemberNotFoundError{
				Path:   r.path,
				Member: DocumentMember,
				Format: format.DetectFromZip(&r.zipReader.Reader),
			}
		}
		return &ArchiveOpenError{Path: r.path, Member: DocumentMember, Err: err}
	}

	paragraphs, err := ParseDocument(data)
	if err != nil {
		return &XMLParseError{Member: DocumentMember, Err: err}
	}
	r.paragraphs = paragraphs

	r.opts.Logger.Debug("parsed document", "path", r.path, "bytes", len(data), "paragraphs", len(paragraphs))

	return nil
}

// parseCoreProperties parses Dublin Core metadata.
func (r *Reader) parseCoreProperties() {
	data, err := r.getFileContent(coreMember)
	if err != nil {
		return
	}

	core := &corePropertiesXML{}
	if err := xml.Unmarshal(data, core); err != nil {
		r.opts.Logger.Debug("ignoring unreadable core properties", "path", r.path, "error", err)
		return
	}
	r.meta.applyCore(core)
}

// parseAppProperties parses application metadata.
func (r *Reader) parseAppProperties() {
	data, err := r.getFileContent(appMember)
	if err != nil {
		return
	}

	app := &appPropertiesXML{}
	if err := xml.Unmarshal(data, app); err != nil {
		r.opts.Logger.Debug("ignoring unreadable app properties", "path", r.path, "error", err)
		return
	}
	r.meta.applyApp(app)
}

// getFileContent reads the content of a file from the ZIP archive, refusing
// members that decompress beyond the configured limit.
func (r *Reader) getFileContent(name string) ([]byte, error) {
	for _, f := range r.zipReader.File {
		if f.Name != name {
			continue
		}

		rc, err := f.Open()
		if err != nil {
			return nil, err
		}
		defer rc.Close()

		limit := r.opts.MaxEntrySize
		data, err := io.ReadAll(io.LimitReader(rc, limit+1))
		if err != nil {
			return nil, err
		}
		if int64(len(data)) > limit {
			return nil, fmt.Errorf("%w (%d bytes)", errEntryTooLarge, limit)
		}
		return data, nil
	}
	return nil, fmt.Errorf("%w: %s", errEntryNotFound, name)
}
