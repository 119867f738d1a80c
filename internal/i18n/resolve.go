package i18n

import (
	"github.com/kapu/skills-catalog-go/internal/domain"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Raw category keys are stored in Chinese; under the English locale they are
// mapped through this table, unknown keys pass through unchanged.
var categoryEN = map[string]string{
	"开发":  "Development",
	"设计":  "Design",
	"生产力": "Productivity",
	"内容":  "Content",
	"创意":  "Creativity",
	"工作流": "Workflow",
	"文档":  "Documents",
	"品牌":  "Brand",
	"媒体":  "Media",
	"协作":  "Collaboration",
	"安全":  "Security",
	"业务":  "Business",
	"运营":  "Operations",
	"职业":  "Career",
	"研究":  "Research",
}

var sourceDesc = map[Locale]map[string]string{
	LocaleEN: {
		"AwesomeSkill.ai":    "Popular skills list with trend metrics.",
		"awesomeskills.dev":  "Official and community skills directory.",
		"Awesome Skills App": "An additional skills directory and aggregator.",
	},
	LocaleZH: {
		"AwesomeSkill.ai":    "提供热门 skills 与热度指数。",
		"awesomeskills.dev":  "官方与社区 skills 目录。",
		"Awesome Skills App": "技能目录与聚合入口。",
	},
}

// Popularity numbers keep en-US thousands grouping in both locales, as the
// upstream directory renders them.
var popularityPrinter = message.NewPrinter(language.AmericanEnglish)

// SkillName resolves the display name, preferring the Chinese variant under
// the Chinese locale when it is set.
func SkillName(loc Locale, s *domain.Skill) string {
	if loc == LocaleZH && s.NameZh != "" {
		return s.NameZh
	}
	return s.Name
}

func SkillShort(loc Locale, s *domain.Skill) string {
	if loc == LocaleZH && s.ShortDescriptionZh != "" {
		return s.ShortDescriptionZh
	}
	return s.ShortDescription
}

func SkillLong(loc Locale, s *domain.Skill) string {
	if loc == LocaleZH && s.LongDescriptionZh != "" {
		return s.LongDescriptionZh
	}
	return s.LongDescription
}

// CategoryLabel translates a raw category key for display. The raw keys are
// already Chinese, so the Chinese locale passes them through; an empty key
// resolves to the fixed "uncategorized" label.
func CategoryLabel(loc Locale, raw string) string {
	if raw == "" {
		return T(loc, "uncategorized")
	}
	if loc == LocaleZH {
		return raw
	}
	if label, ok := categoryEN[raw]; ok {
		return label
	}
	return raw
}

// SourceDescription prefers the per-locale override for known sources and
// falls back to the stored description.
func SourceDescription(loc Locale, src *domain.Source) string {
	if m, ok := sourceDesc[loc]; ok {
		if d, ok := m[src.Name]; ok {
			return d
		}
	}
	return src.Description
}

// PopularityDisplay renders "<label>: <grouped number>" when a positive
// score exists, else the locale's official/curated phrase.
func PopularityDisplay(loc Locale, s *domain.Skill) string {
	if s.Popularity <= 0 {
		return T(loc, "popularityFallback")
	}
	label := s.PopularityLabel
	if label == "" {
		label = T(loc, "popularityLabel")
	}
	return label + ": " + popularityPrinter.Sprintf("%d", s.Popularity)
}
