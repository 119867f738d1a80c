package domain

import "encoding/json"

// Skill is one catalog entry. Bilingual fields carry a "_zh" suffix in the
// stored form; an empty alternate field falls back to the primary one at
// display time. Immutable after load.
type Skill struct {
	ID                 string   `json:"id"`
	Name               string   `json:"name"`
	NameZh             string   `json:"name_zh,omitempty"`
	ShortDescription   string   `json:"short_description"`
	ShortDescriptionZh string   `json:"short_description_zh,omitempty"`
	LongDescription    string   `json:"long_description,omitempty"`
	LongDescriptionZh  string   `json:"long_description_zh,omitempty"`
	Category           string   `json:"category,omitempty"`
	Platforms          []string `json:"platforms"`
	Tags               []string `json:"tags"`
	Popularity         int64    `json:"popularity,omitempty"`
	PopularityLabel    string   `json:"popularity_label,omitempty"`
	SourceName         string   `json:"source_name"`
	SourceURL          string   `json:"source_url"`
	DetailURL          string   `json:"detail_url,omitempty"`
}

// ActionURL is the card's link target: the detail page when one exists,
// otherwise the contributing source.
func (s *Skill) ActionURL() string {
	if s.DetailURL != "" {
		return s.DetailURL
	}
	return s.SourceURL
}

// EnsureLists replaces nil Platforms/Tags with empty slices so that every
// skill carries list-typed fields regardless of how it was decoded.
func (s *Skill) EnsureLists() {
	if s.Platforms == nil {
		s.Platforms = []string{}
	}
	if s.Tags == nil {
		s.Tags = []string{}
	}
}

// Source is one upstream directory that contributed skills to the catalog.
type Source struct {
	Name        string `json:"name"`
	URL         string `json:"url"`
	Description string `json:"description"`
}

// SourcesData mirrors the sources flat file.
type SourcesData struct {
	Sources     []*Source `json:"sources"`
	LastUpdated string    `json:"last_updated"`
}

// DecodeStringList decodes a JSON-encoded text column into a string list.
// Absent or malformed input decodes to an empty list, never an error.
func DecodeStringList(raw []byte) []string {
	if len(raw) == 0 {
		return []string{}
	}
	var out []string
	if err := json.Unmarshal(raw, &out); err != nil || out == nil {
		return []string{}
	}
	return out
}
