package docx

import (
	"errors"
	"fmt"

	"github.com/tsawler/docxtext/format"
)

// ErrExtraction matches every error returned while extracting a document.
// Use errors.As with the concrete types below to tell the failure kinds apart.
var ErrExtraction = errors.New("docx: extraction failed")

var (
	errEntryNotFound = errors.New("file not found in archive")
	errEntryTooLarge = errors.New("entry exceeds decompressed size limit")
	errNoRootElement = errors.New("no element found")

	errJunkAfterRoot   = errors.New("junk after document element")
	errTextOutsideRoot = errors.New("text outside document element")
	errUnboundPrefix   = errors.New("unbound prefix")
)

// ArchiveOpenError reports that the file could not be opened as a zip
// archive, or that one of its members could not be read.
type ArchiveOpenError struct {
	Path   string
	Member string // empty when the archive itself failed to open
	Err    error
}

func (e *ArchiveOpenError) Error() string {
	if e.Member != "" {
		return fmt.Sprintf("reading %s from %s: %v", e.Member, e.Path, e.Err)
	}
	return fmt.Sprintf("opening ZIP archive: %v", e.Err)
}

func (e *ArchiveOpenError) Unwrap() error { return e.Err }

func (e *ArchiveOpenError) Is(target error) bool { return target == ErrExtraction }

// MemberNotFoundError reports a valid archive that lacks a required member.
type MemberNotFoundError struct {
	Path   string
	Member string
	// Format is what the archive appears to contain instead.
	Format format.Format
}

func (e *MemberNotFoundError) Error() string {
	msg := fmt.Sprintf("there is no item named %q in the archive", e.Member)
	if e.Format != format.Unknown && e.Format != format.DOCX {
		msg += fmt.Sprintf(" (archive looks like %s)", e.Format)
	}
	return msg
}

func (e *MemberNotFoundError) Unwrap() error { return errEntryNotFound }

func (e *MemberNotFoundError) Is(target error) bool { return target == ErrExtraction }

// XMLParseError reports a member whose content is not well-formed XML.
type XMLParseError struct {
	Member string
	Err    error
}

func (e *XMLParseError) Error() string {
	return fmt.Sprintf("parsing %s: %v", e.Member, e.Err)
}

func (e *XMLParseError) Unwrap() error { return e.Err }

func (e *XMLParseError) Is(target error) bool { return target == ErrExtraction }
