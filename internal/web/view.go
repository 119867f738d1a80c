package web

import (
	"fmt"
	"html/template"
	"sort"
	"strings"

	"github.com/kapu/skills-catalog-go/internal/domain"
	"github.com/kapu/skills-catalog-go/internal/i18n"
)

type Stats struct {
	SkillCount  int
	SourceCount int
	LastUpdated string
}

type Option struct {
	Value    string
	Label    string
	Selected bool
}

// Selector is one populated filter control. Name doubles as the query
// parameter the form submits.
type Selector struct {
	Name    string
	Label   string
	Options []Option
}

type Card struct {
	Name             string
	ShortDescription string
	LongDescription  template.HTML // empty when the skill has none
	Badges           []string
	Meta             string
	Platforms        string
	ActionURL        string
}

type CardGroup struct {
	Key        string
	Label      string
	CountLabel string
	Cards      []Card
}

type SourceItem struct {
	Name        string
	URL         string
	Description string
}

// View is the full rendered page model for one locale and one filter state.
type View struct {
	Locale    i18n.Locale
	Stats     Stats
	Criteria  domain.FilterCriteria
	Selectors []Selector
	Groups    []CardGroup
	Sources   []SourceItem
}

// T resolves chrome text for the view's locale, for use from templates.
func (v *View) T(key string) string {
	return i18n.T(v.Locale, key)
}

// ToggleLocale is the lang value the language button submits.
func (v *View) ToggleLocale() string {
	return string(v.Locale.Toggle())
}

// LangAttr is the html lang attribute value for the active locale.
func (v *View) LangAttr() string {
	if v.Locale == i18n.LocaleZH {
		return "zh-Hans"
	}
	return "en"
}

// BuildView groups the filtered skills by category, orders groups under the
// locale's collation of their translated labels, and assembles selectors,
// stats and the source panel. Card order within a group preserves the
// filtered list's order.
func BuildView(catalog *domain.Catalog, filtered []*domain.Skill, criteria domain.FilterCriteria, loc i18n.Locale) *View {
	v := &View{
		Locale:   loc,
		Criteria: criteria,
		Stats: Stats{
			SkillCount:  len(catalog.Skills),
			SourceCount: len(catalog.Sources),
			LastUpdated: catalog.LastUpdated,
		},
	}

	v.Selectors = buildSelectors(catalog.Facets, criteria, loc)
	v.Groups = buildGroups(filtered, loc)

	for _, src := range catalog.Sources {
		v.Sources = append(v.Sources, SourceItem{
			Name:        src.Name,
			URL:         src.URL,
			Description: i18n.SourceDescription(loc, src),
		})
	}

	return v
}

func buildSelectors(facets domain.Facets, criteria domain.FilterCriteria, loc i18n.Locale) []Selector {
	category := Selector{Name: "category", Label: i18n.T(loc, "labelCategory")}
	category.Options = append(category.Options, Option{Value: "", Label: i18n.T(loc, "allCategories"), Selected: criteria.Category == ""})
	for _, c := range facets.Categories {
		category.Options = append(category.Options, Option{
			Value:    c,
			Label:    i18n.CategoryLabel(loc, c),
			Selected: criteria.Category == c,
		})
	}

	source := Selector{Name: "source", Label: i18n.T(loc, "labelSource")}
	source.Options = append(source.Options, Option{Value: "", Label: i18n.T(loc, "allSources"), Selected: criteria.Source == ""})
	for _, s := range facets.Sources {
		source.Options = append(source.Options, Option{Value: s, Label: s, Selected: criteria.Source == s})
	}

	platform := Selector{Name: "platform", Label: i18n.T(loc, "labelPlatform")}
	platform.Options = append(platform.Options, Option{Value: "", Label: i18n.T(loc, "allPlatforms"), Selected: criteria.Platform == ""})
	for _, p := range facets.Platforms {
		platform.Options = append(platform.Options, Option{Value: p, Label: p, Selected: criteria.Platform == p})
	}

	return []Selector{category, source, platform}
}

func buildGroups(filtered []*domain.Skill, loc i18n.Locale) []CardGroup {
	byKey := map[string]*CardGroup{}
	var order []*CardGroup

	for _, s := range filtered {
		key := s.Category
		group, ok := byKey[key]
		if !ok {
			group = &CardGroup{
				Key:   key,
				Label: i18n.CategoryLabel(loc, key),
			}
			byKey[key] = group
			order = append(order, group)
		}
		group.Cards = append(group.Cards, buildCard(s, loc))
	}

	collator := i18n.Collator(loc)
	sort.SliceStable(order, func(i, j int) bool {
		return collator.CompareString(order[i].Label, order[j].Label) < 0
	})

	out := make([]CardGroup, 0, len(order))
	for _, g := range order {
		g.CountLabel = fmt.Sprintf("%d %s", len(g.Cards), i18n.T(loc, "categoryCount"))
		out = append(out, *g)
	}
	return out
}

func buildCard(s *domain.Skill, loc i18n.Locale) Card {
	card := Card{
		Name:             i18n.SkillName(loc, s),
		ShortDescription: i18n.SkillShort(loc, s),
		Meta:             s.SourceName + " · " + i18n.PopularityDisplay(loc, s),
		Platforms:        strings.Join(s.Platforms, " / "),
		ActionURL:        s.ActionURL(),
	}
	if long := i18n.SkillLong(loc, s); long != "" {
		card.LongDescription = renderMarkdown(long)
	}
	for _, tag := range s.Tags {
		card.Badges = append(card.Badges, "#"+tag)
	}
	return card
}
