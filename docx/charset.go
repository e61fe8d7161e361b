package docx

import (
	"bytes"
	"io"
	"strings"

	"golang.org/x/net/html/charset"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// xmlSource returns a reader over data with any byte-order mark consumed.
// UTF-16 input is transcoded to UTF-8; input without a BOM passes through
// untouched so that the encoding declared in the XML prolog still applies.
func xmlSource(data []byte) io.Reader {
	return transform.NewReader(bytes.NewReader(data), unicode.BOMOverride(transform.Nop))
}

// charsetReader converts a document declaring a non-UTF-8 encoding.
func charsetReader(label string, input io.Reader) (io.Reader, error) {
	// xmlSource has already turned UTF-16 into UTF-8
	if strings.HasPrefix(strings.ToLower(strings.TrimSpace(label)), "utf-16") {
		return input, nil
	}
	return charset.NewReaderLabel(label, input)
}
