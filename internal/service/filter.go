package service

import (
	"strings"

	"github.com/kapu/skills-catalog-go/internal/domain"
	"github.com/kapu/skills-catalog-go/internal/i18n"
	"github.com/kapu/skills-catalog-go/internal/util"
)

// FilterSkills evaluates the criteria against every skill and returns the
// retained subset in catalog order. All four predicates must hold; an empty
// criteria field matches everything. The free-text predicate searches the
// locale-resolved name, descriptions and the space-joined tag list.
func FilterSkills(skills []*domain.Skill, c domain.FilterCriteria, loc i18n.Locale) []*domain.Skill {
	query := util.Normalize(c.Text)

	out := make([]*domain.Skill, 0, len(skills))
	for _, s := range skills {
		if !matchesText(s, query, loc) {
			continue
		}
		if c.Category != "" && s.Category != c.Category {
			continue
		}
		if c.Source != "" && s.SourceName != c.Source {
			continue
		}
		if c.Platform != "" && !util.Contains(s.Platforms, c.Platform) {
			continue
		}
		out = append(out, s)
	}
	return out
}

func matchesText(s *domain.Skill, query string, loc i18n.Locale) bool {
	if query == "" {
		return true
	}
	fields := []string{
		i18n.SkillName(loc, s),
		i18n.SkillShort(loc, s),
		i18n.SkillLong(loc, s),
		strings.Join(s.Tags, " "),
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), query) {
			return true
		}
	}
	return false
}
