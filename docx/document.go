package docx

import (
	"fmt"
	"strings"

	"github.com/beevik/etree"
)

// nsW is the WordprocessingML namespace, bound to the "w" prefix by Word.
const nsW = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"

// Paragraph is the text of one <w:p> element, kept as the ordered fragments
// taken from its <w:t> descendants.
type Paragraph struct {
	Fragments []string
}

// Text returns the fragments concatenated without a separator.
func (p Paragraph) Text() string {
	return strings.Join(p.Fragments, "")
}

// ParseDocument parses the content of word/document.xml and returns its
// paragraphs in document order. Paragraphs without any text are omitted.
//
// Every <w:p> below the root is visited, including paragraphs nested in
// tables or text boxes. Within a paragraph, each <w:r> descendant is visited
// in order and each <w:t> descendant of that run contributes its text.
func ParseDocument(data []byte) ([]Paragraph, error) {
	doc := etree.NewDocument()
	doc.ReadSettings.CharsetReader = charsetReader
	if _, err := doc.ReadFrom(xmlSource(data)); err != nil {
		return nil, err
	}

	if err := checkTopLevel(doc); err != nil {
		return nil, err
	}
	root := doc.Root()
	if err := checkPrefixes(root); err != nil {
		return nil, err
	}

	var paragraphs []Paragraph
	for _, p := range descendants(root, "p") {
		var para Paragraph
		for _, r := range descendants(p, "r") {
			for _, t := range descendants(r, "t") {
				if text := leadingText(t); text != "" {
					para.Fragments = append(para.Fragments, text)
				}
			}
		}
		if len(para.Fragments) > 0 {
			paragraphs = append(paragraphs, para)
		}
	}

	return paragraphs, nil
}

// descendants returns the WordprocessingML elements named local below e, in
// document order. e itself is never included.
func descendants(e *etree.Element, local string) []*etree.Element {
	var found []*etree.Element

	var walk func(*etree.Element)
	walk = func(parent *etree.Element) {
		for _, child := range parent.ChildElements() {
			if child.Tag == local && child.NamespaceURI() == nsW {
				found = append(found, child)
			}
			walk(child)
		}
	}
	walk(e)

	return found
}

// checkTopLevel requires exactly one root element, with nothing but
// whitespace, comments and processing instructions around it.
func checkTopLevel(doc *etree.Document) error {
	roots := 0
	for _, tok := range doc.Child {
		switch t := tok.(type) {
		case *etree.Element:
			roots++
			if roots > 1 {
				return errJunkAfterRoot
			}
		case *etree.CharData:
			if !t.IsWhitespace() {
				return errTextOutsideRoot
			}
		}
	}
	if roots == 0 {
		return errNoRootElement
	}
	return nil
}

// checkPrefixes fails on the first element or attribute whose prefix has no
// xmlns declaration in scope. The xml prefix is always bound.
func checkPrefixes(e *etree.Element) error {
	if e.Space != "" && e.NamespaceURI() == "" {
		return fmt.Errorf("%w: <%s>", errUnboundPrefix, e.FullTag())
	}
	for i := range e.Attr {
		a := &e.Attr[i]
		if a.Space == "" || a.Space == "xmlns" || a.Space == "xml" {
			continue
		}
		if a.NamespaceURI() == "" {
			return fmt.Errorf("%w: attribute %s on <%s>", errUnboundPrefix, a.FullKey(), e.FullTag())
		}
	}
	for _, child := range e.ChildElements() {
		if err := checkPrefixes(child); err != nil {
			return err
		}
	}
	return nil
}

// leadingText returns the character data of e that precedes its first child
// element. Comments and processing instructions do not end the text.
func leadingText(e *etree.Element) string {
	var sb strings.Builder
	for _, tok := range e.Child {
		switch t := tok.(type) {
		case *etree.CharData:
			sb.WriteString(t.Data)
		case *etree.Element:
			return sb.String()
		}
	}
	return sb.String()
}
