// Package format identifies the kind of document a file or zip container holds.
package format

import (
	"archive/zip"
	"io"
	"path/filepath"
	"strings"
)

// Format represents a document container kind.
type Format int

const (
	// Unknown indicates an unrecognized format.
	Unknown Format = iota
	// DOCX indicates a Microsoft Word (.docx) document.
	DOCX
	// XLSX indicates a Microsoft Excel (.xlsx) workbook.
	XLSX
	// PPTX indicates a Microsoft PowerPoint (.pptx) presentation.
	PPTX
	// ODT indicates an OpenDocument Text (.odt) document.
	ODT
	// EPUB indicates an EPUB publication.
	EPUB
	// ZIP indicates a zip archive that is none of the above.
	ZIP
)

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case DOCX:
		return "DOCX"
	case XLSX:
		return "XLSX"
	case PPTX:
		return "PPTX"
	case ODT:
		return "ODT"
	case EPUB:
		return "EPUB"
	case ZIP:
		return "ZIP"
	default:
		return "Unknown"
	}
}

// Extension returns the typical file extension for the format.
func (f Format) Extension() string {
	switch f {
	case DOCX:
		return ".docx"
	case XLSX:
		return ".xlsx"
	case PPTX:
		return ".pptx"
	case ODT:
		return ".odt"
	case EPUB:
		return ".epub"
	case ZIP:
		return ".zip"
	default:
		return ""
	}
}

// Detect determines file format from filename extension.
func Detect(filename string) Format {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".docx":
		return DOCX
	case ".xlsx":
		return XLSX
	case ".pptx":
		return PPTX
	case ".odt":
		return ODT
	case ".epub":
		return EPUB
	case ".zip":
		return ZIP
	default:
		return Unknown
	}
}

// mimetypes stored in the leading "mimetype" entry of OpenDocument and EPUB
// containers.
var mimetypes = map[string]Format{
	"application/vnd.oasis.opendocument.text": ODT,
	"application/epub+zip":                    EPUB,
}

// DetectFromZip inspects the entries of an opened zip archive. It never
// returns Unknown: an archive with no recognizable markers is reported as ZIP.
func DetectFromZip(zr *zip.Reader) Format {
	if zr == nil {
		return Unknown
	}

	// OpenDocument and EPUB declare themselves in a "mimetype" entry
	for _, f := range zr.File {
		if f.Name != "mimetype" {
			continue
		}
		if mt, err := readMimetype(f); err == nil {
			if format, ok := mimetypes[mt]; ok {
				return format
			}
		}
	}

	// Office Open XML keeps each application's parts under its own folder
	for _, f := range zr.File {
		switch {
		case strings.HasPrefix(f.Name, "word/"):
			return DOCX
		case strings.HasPrefix(f.Name, "xl/"):
			return XLSX
		case strings.HasPrefix(f.Name, "ppt/"):
			return PPTX
		}
	}

	return ZIP
}

// readMimetype reads at most 256 bytes of a mimetype entry.
func readMimetype(f *zip.File) (string, error) {
	rc, err := f.Open()
	if err != nil {
		return "", err
	}
	defer rc.Close()

	data, err := io.ReadAll(io.LimitReader(rc, 256))
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}
