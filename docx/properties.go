package docx

import (
	"encoding/xml"
	"strings"
	"time"
)

// Metadata holds the package properties stored next to the document body.
type Metadata struct {
	Title          string    `yaml:"title,omitempty"`
	Subject        string    `yaml:"subject,omitempty"`
	Creator        string    `yaml:"creator,omitempty"`
	Keywords       []string  `yaml:"keywords,omitempty"`
	Description    string    `yaml:"description,omitempty"`
	Category       string    `yaml:"category,omitempty"`
	LastModifiedBy string    `yaml:"last_modified_by,omitempty"`
	Revision       string    `yaml:"revision,omitempty"`
	Created        time.Time `yaml:"created,omitempty"`
	Modified       time.Time `yaml:"modified,omitempty"`
	Application    string    `yaml:"application,omitempty"`
	Company        string    `yaml:"company,omitempty"`
}

// corePropertiesXML represents docProps/core.xml (Dublin Core metadata)
type corePropertiesXML struct {
	XMLName        xml.Name `xml:"coreProperties"`
	Title          string   `xml:"title"`
	Subject        string   `xml:"subject"`
	Creator        string   `xml:"creator"`
	Keywords       string   `xml:"keywords"`
	Description    string   `xml:"description"`
	LastModifiedBy string   `xml:"lastModifiedBy"`
	Revision       string   `xml:"revision"`
	Created        string   `xml:"created"`
	Modified       string   `xml:"modified"`
	Category       string   `xml:"category"`
}

// appPropertiesXML represents docProps/app.xml
type appPropertiesXML struct {
	XMLName     xml.Name `xml:"Properties"`
	Application string   `xml:"Application"`
	Company     string   `xml:"Company"`
}

// applyCore copies core properties into m.
func (m *Metadata) applyCore(core *corePropertiesXML) {
	m.Title = strings.TrimSpace(core.Title)
	m.Subject = strings.TrimSpace(core.Subject)
	m.Creator = strings.TrimSpace(core.Creator)
	m.Description = strings.TrimSpace(core.Description)
	m.Category = strings.TrimSpace(core.Category)
	m.LastModifiedBy = strings.TrimSpace(core.LastModifiedBy)
	m.Revision = strings.TrimSpace(core.Revision)
	m.Keywords = splitKeywords(core.Keywords)
	m.Created = parseW3CDTF(core.Created)
	m.Modified = parseW3CDTF(core.Modified)
}

// applyApp copies extended properties into m.
func (m *Metadata) applyApp(app *appPropertiesXML) {
	m.Application = strings.TrimSpace(app.Application)
	m.Company = strings.TrimSpace(app.Company)
}

// splitKeywords splits a comma separated keyword list, dropping blanks.
func splitKeywords(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}

	var keywords []string
	for _, kw := range strings.Split(s, ",") {
		if kw = strings.TrimSpace(kw); kw != "" {
			keywords = append(keywords, kw)
		}
	}
	return keywords
}

// parseW3CDTF parses the dcterms timestamps Word writes. Unparseable values
// yield the zero time.
func parseW3CDTF(s string) time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}
	}
	for _, layout := range []string{time.RFC3339Nano, "2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
