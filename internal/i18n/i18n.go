package i18n

// Locale is one of the two supported display languages.
type Locale string

const (
	LocaleEN Locale = "en"
	LocaleZH Locale = "zh"
)

// ParseLocale maps arbitrary user input to a supported locale, defaulting
// to English.
func ParseLocale(s string) Locale {
	if s == string(LocaleZH) {
		return LocaleZH
	}
	return LocaleEN
}

// Toggle returns the other supported locale.
func (l Locale) Toggle() Locale {
	if l == LocaleZH {
		return LocaleEN
	}
	return LocaleZH
}

var text = map[Locale]map[string]string{
	LocaleEN: {
		"eyebrow":             "Popular AI Skills · Catalog & Links",
		"heroTitle":           "A clean, searchable catalog of skills you can actually use.",
		"heroSub":             "Curated from public skill directories with fast search and clear detail links.",
		"browse":              "Browse Now",
		"about":               "About Sources",
		"lang":                "EN / 中文",
		"statSkills":          "Total Skills",
		"statSources":         "Sources",
		"statUpdated":         "Last Updated",
		"labelSearch":         "Search",
		"labelCategory":       "Category",
		"labelSource":         "Source",
		"labelPlatform":       "Platform",
		"placeholderSearch":   "Search by name, tag, or description",
		"allCategories":       "All categories",
		"allSources":          "All sources",
		"allPlatforms":        "All platforms",
		"aboutTitle":          "Sources & Notes",
		"aboutText":           "Popularity is sourced from AwesomeSkill.ai. Official/community entries come from curated directories. You can expand sources or add GitHub sync.",
		"footer":              "Made for your AI skill workflow · 2026",
		"categoryCount":       "items",
		"uncategorized":       "Uncategorized",
		"popularityLabel":     "Popularity (AwesomeSkill.ai)",
		"popularityFallback":  "Official/Curated",
		"view":                "View",
	},
	LocaleZH: {
		"eyebrow":             "热门 AI Skills · 目录与下载",
		"heroTitle":           "把好用的技能集中到一个清晰、可下载的目录。",
		"heroSub":             "这里聚合了热门/官方技能目录，并提供快速检索与查看入口。",
		"browse":              "立即浏览",
		"about":               "数据来源说明",
		"lang":                "EN / 中文",
		"statSkills":          "技能总数",
		"statSources":         "来源",
		"statUpdated":         "更新日期",
		"labelSearch":         "搜索技能",
		"labelCategory":       "分类",
		"labelSource":         "来源",
		"labelPlatform":       "平台",
		"placeholderSearch":   "输入技能名称、标签或描述",
		"allCategories":       "全部分类",
		"allSources":          "全部来源",
		"allPlatforms":        "全部平台",
		"aboutTitle":          "数据来源与说明",
		"aboutText":           "热门指标来自 AwesomeSkill.ai 的公开列表，官方/精选技能来自目录聚合站点。你可以按需求继续扩充数据源或添加 GitHub 自动同步。",
		"footer":              "Made for your AI skill workflow · 2026",
		"categoryCount":       "个",
		"uncategorized":       "未分类",
		"popularityLabel":     "热度指数（AwesomeSkill.ai）",
		"popularityFallback":  "官方/精选技能",
		"view":                "查看",
	},
}

// T resolves static chrome text for the locale. An unknown key falls back to
// the key itself, never fails.
func T(loc Locale, key string) string {
	if m, ok := text[loc]; ok {
		if v, ok := m[key]; ok {
			return v
		}
	}
	return key
}
