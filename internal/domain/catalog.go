package domain

import "sort"

// FilterCriteria is the transient filter state rebuilt from user input.
// An empty string in any field means "no constraint on this dimension".
type FilterCriteria struct {
	Text     string
	Category string
	Source   string
	Platform string
}

func (c FilterCriteria) IsEmpty() bool {
	return c.Text == "" && c.Category == "" && c.Source == "" && c.Platform == ""
}

// Facets holds the distinct filterable values observed across the loaded
// skills. Values are facet keys, not display labels; each set is
// deduplicated and sorted by raw string order.
type Facets struct {
	Categories []string
	Sources    []string
	Platforms  []string
}

// Catalog is the loaded skill and source universe plus derived facets.
// Built once at load; filtering narrows the view, never the universe, so
// facets are not recomputed per filter operation.
type Catalog struct {
	Skills      []*Skill
	Sources     []*Source
	LastUpdated string
	Facets      Facets
}

// NewCatalog orders skills by descending popularity (absent or zero scores
// sort last) and derives the facet sets.
func NewCatalog(skills []*Skill, sources *SourcesData) *Catalog {
	for _, s := range skills {
		s.EnsureLists()
	}
	sort.SliceStable(skills, func(i, j int) bool {
		return skills[i].Popularity > skills[j].Popularity
	})

	return &Catalog{
		Skills:      skills,
		Sources:     sources.Sources,
		LastUpdated: sources.LastUpdated,
		Facets:      buildFacets(skills),
	}
}

func buildFacets(skills []*Skill) Facets {
	categories := map[string]struct{}{}
	sources := map[string]struct{}{}
	platforms := map[string]struct{}{}

	for _, s := range skills {
		if s.Category != "" {
			categories[s.Category] = struct{}{}
		}
		if s.SourceName != "" {
			sources[s.SourceName] = struct{}{}
		}
		for _, p := range s.Platforms {
			if p != "" {
				platforms[p] = struct{}{}
			}
		}
	}

	return Facets{
		Categories: sortedKeys(categories),
		Sources:    sortedKeys(sources),
		Platforms:  sortedKeys(platforms),
	}
}

func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
