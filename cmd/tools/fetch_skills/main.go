package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"

	"github.com/kapu/skills-catalog-go/internal/domain"
	"github.com/kapu/skills-catalog-go/internal/util"
)

const (
	userAgent      = "Mozilla/5.0 (compatible; SkillsCatalogBot/1.0)"
	requestTimeout = 15 * time.Second
	delayBetween   = 350 * time.Millisecond
	sourcesFile    = "data/sources.json"
	outputFile     = "data/skills.json"
)

func main() {
	logger, _ := zap.NewDevelopment()
	defer logger.Sync()

	ctx := context.Background()

	sources, err := loadSources(sourcesFile)
	if err != nil {
		logger.Fatal("failed to load sources list", zap.Error(err))
	}

	httpClient := &http.Client{Timeout: requestTimeout}

	var skills []*domain.Skill
	seen := map[string]struct{}{}

	for idx, source := range sources.Sources {
		if source == nil || strings.TrimSpace(source.URL) == "" {
			continue
		}

		logger.Info("Fetching directory",
			zap.Int("index", idx+1),
			zap.String("source", source.Name),
			zap.String("url", source.URL),
		)

		entries, err := fetchDirectory(ctx, httpClient, source)
		if err != nil {
			logger.Error("failed to fetch directory", zap.String("source", source.Name), zap.Error(err))
			continue
		}

		for _, skill := range entries {
			if _, dup := seen[skill.ID]; dup {
				continue
			}
			seen[skill.ID] = struct{}{}
			skills = append(skills, skill)
		}

		time.Sleep(delayBetween)
	}

	if len(skills) == 0 {
		logger.Fatal("no skills fetched")
	}

	sort.Slice(skills, func(i, j int) bool {
		return skills[i].ID < skills[j].ID
	})

	if err := writeSkills(skills); err != nil {
		logger.Fatal("failed to write skills", zap.Error(err))
	}

	logger.Info("Skill fetch completed", zap.Int("count", len(skills)), zap.String("output", outputFile))
}

func loadSources(path string) (*domain.SourcesData, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var data domain.SourcesData
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, err
	}
	return &data, nil
}

func fetchDirectory(ctx context.Context, client *http.Client, source *domain.Source) ([]*domain.Skill, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, source.URL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept-Language", "zh,en;q=0.8")

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, err
	}

	var skills []*domain.Skill
	doc.Find("[data-skill], .skill-card").Each(func(_ int, sel *goquery.Selection) {
		skill := parseCard(sel, source)
		if skill != nil {
			skills = append(skills, skill)
		}
	})

	return skills, nil
}

func parseCard(sel *goquery.Selection, source *domain.Source) *domain.Skill {
	name := strings.TrimSpace(sel.Find("h3, .skill-name").First().Text())
	if name == "" {
		return nil
	}

	skill := &domain.Skill{
		ID:               util.Slugify(name),
		Name:             name,
		ShortDescription: strings.TrimSpace(sel.Find("p, .skill-desc").First().Text()),
		Category:         strings.TrimSpace(sel.Find(".skill-category").First().Text()),
		Platforms:        []string{},
		Tags:             []string{},
		SourceName:       source.Name,
		SourceURL:        source.URL,
	}

	sel.Find(".badge, .tag").Each(func(_ int, tagSel *goquery.Selection) {
		tag := strings.TrimPrefix(strings.TrimSpace(tagSel.Text()), "#")
		if tag != "" {
			skill.Tags = append(skill.Tags, tag)
		}
	})

	sel.Find(".platform").Each(func(_ int, platSel *goquery.Selection) {
		platform := strings.TrimSpace(platSel.Text())
		if platform != "" {
			skill.Platforms = append(skill.Platforms, platform)
		}
	})

	if raw, ok := sel.Attr("data-popularity"); ok {
		if popularity, err := strconv.ParseInt(strings.ReplaceAll(raw, ",", ""), 10, 64); err == nil && popularity > 0 {
			skill.Popularity = popularity
		}
	}

	if href, ok := sel.Find("a").First().Attr("href"); ok {
		skill.DetailURL = strings.TrimSpace(href)
	}

	return skill
}

func writeSkills(skills []*domain.Skill) error {
	if err := os.MkdirAll(filepath.Dir(outputFile), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(skills, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(outputFile, append(data, '\n'), 0644)
}
