package docx

import (
	"errors"
	"testing"

	"golang.org/x/text/encoding/unicode"
)

func parseTexts(t *testing.T, xmlDoc string) []string {
	t.Helper()

	return parseTextsBytes(t, []byte(xmlDoc))
}

func assertTexts(t *testing.T, got []string, want ...string) {
	t.Helper()

	if len(got) != len(want) {
		t.Fatalf("got %d paragraphs %q, want %d %q", len(got), got, len(want), want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("paragraph %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestParseDocument_NamespaceByURI(t *testing.T) {
	// Any prefix bound to the WordprocessingML namespace is accepted
	doc := `<x:document xmlns:x="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <x:body><x:p><x:r><x:t>prefixed</x:t></x:r></x:p></x:body>
</x:document>`
	assertTexts(t, parseTexts(t, doc), "prefixed")

	// So is the default namespace
	doc = `<document xmlns="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <body><p><r><t>default</t></r></p></body>
</document>`
	assertTexts(t, parseTexts(t, doc), "default")
}

func TestParseDocument_ForeignNamespaceIgnored(t *testing.T) {
	doc := `<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"
  xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main">
  <w:body>
    <a:p><a:r><a:t>drawing text</a:t></a:r></a:p>
    <w:p><w:r><w:t>word text</w:t></w:r></w:p>
    <w:p><w:r><a:t>not a w:t</a:t></w:r></w:p>
  </w:body>
</w:document>`
	assertTexts(t, parseTexts(t, doc), "word text")
}

func TestParseDocument_TextOutsideRunIgnored(t *testing.T) {
	doc := wrapBody(`<w:p><w:t>loose</w:t><w:r><w:t>inside</w:t></w:r></w:p>`)
	assertTexts(t, parseTexts(t, doc), "inside")
}

func TestParseDocument_LeadingText(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"comment inside text", `<w:p><w:r><w:t>Hel<!-- note -->lo</w:t></w:r></w:p>`, "Hello"},
		{"cdata", `<w:p><w:r><w:t><![CDATA[a<b]]></w:t></w:r></w:p>`, "a<b"},
		{"whitespace only", `<w:p><w:r><w:t xml:space="preserve"> </w:t></w:r></w:p>`, " "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertTexts(t, parseTexts(t, wrapBody(tt.content)), tt.want)
		})
	}
}

func TestParseDocument_Order(t *testing.T) {
	doc := wrapBody(`<w:p><w:r><w:t>1</w:t></w:r></w:p>
<w:sdt><w:sdtContent><w:p><w:r><w:t>2</w:t></w:r></w:p></w:sdtContent></w:sdt>
<w:p><w:r><w:t>3</w:t></w:r><w:r><w:t>a</w:t></w:r></w:p>`)
	assertTexts(t, parseTexts(t, doc), "1", "2", "3a")
}

func TestParseDocument_NoParagraphs(t *testing.T) {
	paras, err := ParseDocument([]byte(wrapBody("")))
	if err != nil {
		t.Fatalf("ParseDocument() error = %v", err)
	}
	if len(paras) != 0 {
		t.Errorf("expected no paragraphs, got %d", len(paras))
	}
}

func TestParseDocument_Errors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"empty", ""},
		{"no root element", "just text"},
		{"unterminated tag", `<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body`},
		{"unknown encoding", `<?xml version="1.0" encoding="x-no-such-charset"?><w:document/>`},
		{"junk after root", wrapBody(`<w:p><w:r><w:t>A</w:t></w:r></w:p>`) + "junk"},
		{"second root", wrapBody(`<w:p><w:r><w:t>A</w:t></w:r></w:p>`) + "<w:document/>"},
		{"text before root", "text " + wrapBody(`<w:p><w:r><w:t>A</w:t></w:r></w:p>`)[len(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>`):]},
		{"unbound element prefix", `<w:document><w:body><w:p><w:r><w:t>A</w:t></w:r></w:p></w:body></w:document>`},
		{"unbound attribute prefix", `<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main" v:ext="edit"/>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseDocument([]byte(tt.data)); err == nil {
				t.Error("ParseDocument() should return an error")
			}
		})
	}

	if _, err := ParseDocument(nil); !errors.Is(err, errNoRootElement) {
		t.Errorf("ParseDocument(nil) error = %v, want errNoRootElement", err)
	}
}

func TestParseDocument_WellFormedness(t *testing.T) {
	body := wrapBody(`<w:p><w:r><w:t>A</w:t></w:r></w:p>`)

	tests := []struct {
		name string
		data string
		want error
	}{
		{"junk after root", body + "junk", errTextOutsideRoot},
		{"second root", body + "<w:document/>", errJunkAfterRoot},
		{"unbound prefix", `<w:document><w:body/></w:document>`, errUnboundPrefix},
		{"comment only", "<!-- nothing -->", errNoRootElement},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseDocument([]byte(tt.data)); !errors.Is(err, tt.want) {
				t.Errorf("ParseDocument() error = %v, want %v", err, tt.want)
			}
		})
	}

	// Whitespace, comments and processing instructions may surround the root
	doc := "\n<!-- lead -->\n" + body[len(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>`):] + "\n<?pi data?>\n"
	assertTexts(t, parseTexts(t, doc), "A")

	// The xml prefix needs no declaration
	assertTexts(t, parseTexts(t, wrapBody(`<w:p xml:lang="it"><w:r><w:t xml:space="preserve">B</w:t></w:r></w:p>`)), "B")
}

func TestParseDocument_Latin1(t *testing.T) {
	doc := []byte(`<?xml version="1.0" encoding="ISO-8859-1"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
<w:body><w:p><w:r><w:t>citt`)
	doc = append(doc, 0xE0) // à
	doc = append(doc, []byte(`</w:t></w:r></w:p></w:body></w:document>`)...)

	paras, err := ParseDocument(doc)
	if err != nil {
		t.Fatalf("ParseDocument() error = %v", err)
	}
	if len(paras) != 1 || paras[0].Text() != "città" {
		t.Errorf("got %+v, want città", paras)
	}
}

func TestParseDocument_UTF16(t *testing.T) {
	src := `<?xml version="1.0" encoding="UTF-16"?>` + wrapBody(`<w:p><w:r><w:t>perché</w:t></w:r></w:p>`)[len(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>`):]

	enc := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewEncoder()
	data, err := enc.Bytes([]byte(src))
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	assertTexts(t, parseTextsBytes(t, data), "perché")
}

func TestParseDocument_UTF8BOM(t *testing.T) {
	data := append([]byte{0xEF, 0xBB, 0xBF}, wrapBody(`<w:p><w:r><w:t>bom</w:t></w:r></w:p>`)...)
	assertTexts(t, parseTextsBytes(t, data), "bom")
}

func parseTextsBytes(t *testing.T, data []byte) []string {
	t.Helper()

	paras, err := ParseDocument(data)
	if err != nil {
		t.Fatalf("ParseDocument() error = %v", err)
	}

	texts := make([]string, len(paras))
	for i, p := range paras {
		texts[i] = p.Text()
	}
	return texts
}
