package service

import (
	"reflect"
	"testing"

	"github.com/kapu/skills-catalog-go/internal/domain"
	"github.com/kapu/skills-catalog-go/internal/i18n"
)

func filterFixture() []*domain.Skill {
	return []*domain.Skill{
		{
			ID:               "review",
			Name:             "Code Review Helper",
			NameZh:           "代码审查助手",
			ShortDescription: "Automated review notes for pull requests.",
			Category:         "开发",
			Platforms:        []string{"web", "desktop"},
			Tags:             []string{"code-review", "git"},
			Popularity:       120,
			SourceName:       "AwesomeSkill.ai",
			SourceURL:        "https://a",
		},
		{
			ID:               "notes",
			Name:             "Meeting Notes",
			ShortDescription: "Turns transcripts into action items.",
			Category:         "生产力",
			Platforms:        []string{"web", "mobile"},
			Tags:             []string{"meetings"},
			SourceName:       "awesomeskills.dev",
			SourceURL:        "https://b",
		},
	}
}

func TestFilterSkillsEmptyCriteriaIsIdentity(t *testing.T) {
	skills := filterFixture()

	got := FilterSkills(skills, domain.FilterCriteria{}, i18n.LocaleEN)

	if !reflect.DeepEqual(got, skills) {
		t.Fatalf("expected identity filter to return the full list in order, got %v", got)
	}
}

func TestFilterSkillsIsIdempotent(t *testing.T) {
	skills := filterFixture()
	criteria := domain.FilterCriteria{Platform: "web"}

	first := FilterSkills(skills, criteria, i18n.LocaleEN)
	second := FilterSkills(skills, criteria, i18n.LocaleEN)

	if !reflect.DeepEqual(first, second) {
		t.Fatalf("expected identical result sets, got %v then %v", first, second)
	}
}

func TestFilterSkillsPlatformMembership(t *testing.T) {
	skills := filterFixture()

	retained := FilterSkills(skills, domain.FilterCriteria{Platform: "desktop"}, i18n.LocaleEN)
	if len(retained) != 1 || retained[0].ID != "review" {
		t.Fatalf("expected desktop to retain only the review skill, got %v", retained)
	}

	excluded := FilterSkills(skills[:1], domain.FilterCriteria{Platform: "mobile"}, i18n.LocaleEN)
	if len(excluded) != 0 {
		t.Fatalf("expected mobile to exclude the review skill, got %v", excluded)
	}
}

func TestFilterSkillsCategoryUsesRawKey(t *testing.T) {
	skills := filterFixture()

	got := FilterSkills(skills, domain.FilterCriteria{Category: "开发"}, i18n.LocaleEN)
	if len(got) != 1 || got[0].ID != "review" {
		t.Fatalf("expected raw category key match, got %v", got)
	}

	if got := FilterSkills(skills, domain.FilterCriteria{Category: "Development"}, i18n.LocaleEN); len(got) != 0 {
		t.Fatalf("expected translated label not to match, got %v", got)
	}
}

func TestFilterSkillsSourceEquality(t *testing.T) {
	got := FilterSkills(filterFixture(), domain.FilterCriteria{Source: "awesomeskills.dev"}, i18n.LocaleEN)
	if len(got) != 1 || got[0].ID != "notes" {
		t.Fatalf("expected source equality match, got %v", got)
	}
}

func TestFilterSkillsTextIsCaseInsensitive(t *testing.T) {
	got := FilterSkills(filterFixture(), domain.FilterCriteria{Text: "CODE REVIEW"}, i18n.LocaleEN)
	if len(got) != 1 || got[0].ID != "review" {
		t.Fatalf("expected case-insensitive name match, got %v", got)
	}
}

func TestFilterSkillsTextSearchesTags(t *testing.T) {
	got := FilterSkills(filterFixture(), domain.FilterCriteria{Text: "meetings"}, i18n.LocaleEN)
	if len(got) != 1 || got[0].ID != "notes" {
		t.Fatalf("expected tag match, got %v", got)
	}
}

func TestFilterSkillsTextUsesResolvedFields(t *testing.T) {
	skills := filterFixture()

	// The Chinese name only matches under the Chinese locale, where field
	// resolution prefers the name_zh variant.
	if got := FilterSkills(skills, domain.FilterCriteria{Text: "审查"}, i18n.LocaleZH); len(got) != 1 {
		t.Fatalf("expected zh name match under zh locale, got %v", got)
	}
	if got := FilterSkills(skills, domain.FilterCriteria{Text: "审查"}, i18n.LocaleEN); len(got) != 0 {
		t.Fatalf("expected no match under en locale, got %v", got)
	}
}

func TestFilterSkillsCombinesPredicatesWithAnd(t *testing.T) {
	criteria := domain.FilterCriteria{
		Text:     "review",
		Category: "开发",
		Source:   "awesomeskills.dev",
	}
	if got := FilterSkills(filterFixture(), criteria, i18n.LocaleEN); len(got) != 0 {
		t.Fatalf("expected AND of predicates to exclude all, got %v", got)
	}
}
