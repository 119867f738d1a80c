package service

import (
	"context"
	"encoding/json"
	"os"

	"github.com/kapu/skills-catalog-go/internal/domain"
	apperrors "github.com/kapu/skills-catalog-go/pkg/errors"
	"github.com/sourcegraph/conc/pool"
	"go.uber.org/zap"
)

// SkillStore is the primary structured-store path: given a fixed projection
// query, return decoded skill rows or fail.
type SkillStore interface {
	FetchAll(ctx context.Context) ([]*domain.Skill, error)
}

// CatalogLoader acquires the skill and source collections before any
// rendering happens. Skills come from the primary store with a flat-file
// fallback; sources come from a single mandatory flat file.
type CatalogLoader struct {
	store       SkillStore // nil when no primary store is configured
	skillsFile  string
	sourcesFile string
	logger      *zap.Logger
}

func NewCatalogLoader(store SkillStore, skillsFile, sourcesFile string, logger *zap.Logger) *CatalogLoader {
	return &CatalogLoader{
		store:       store,
		skillsFile:  skillsFile,
		sourcesFile: sourcesFile,
		logger:      logger,
	}
}

// skillAttempt is the explicit outcome of one skill acquisition attempt.
type skillAttempt struct {
	skills []*domain.Skill
	err    error
}

// fallbackNeeded decides fallback vs. propagate: any primary failure or an
// empty row set downgrades to the flat file.
func (a skillAttempt) fallbackNeeded() bool {
	return a.err != nil || len(a.skills) == 0
}

// Load runs both acquisitions concurrently and joins them. A sources failure
// or a fallback failure is fatal; a primary skill-store failure is absorbed.
func (l *CatalogLoader) Load(ctx context.Context) (*domain.Catalog, error) {
	var (
		skills     []*domain.Skill
		skillsErr  error
		sources    *domain.SourcesData
		sourcesErr error
	)

	p := pool.New().WithMaxGoroutines(2)
	p.Go(func() {
		skills, skillsErr = l.loadSkills(ctx)
	})
	p.Go(func() {
		sources, sourcesErr = l.loadSources()
	})
	p.Wait()

	if sourcesErr != nil {
		return nil, sourcesErr
	}
	if skillsErr != nil {
		return nil, skillsErr
	}

	catalog := domain.NewCatalog(skills, sources)
	l.logger.Info("Catalog loaded",
		zap.Int("skills", len(catalog.Skills)),
		zap.Int("sources", len(catalog.Sources)),
		zap.String("last_updated", catalog.LastUpdated),
	)
	return catalog, nil
}

func (l *CatalogLoader) loadSkills(ctx context.Context) ([]*domain.Skill, error) {
	attempt := l.primarySkills(ctx)
	if !attempt.fallbackNeeded() {
		l.logger.Info("Skills loaded from primary store", zap.Int("count", len(attempt.skills)))
		return attempt.skills, nil
	}

	if attempt.err != nil {
		l.logger.Warn("Primary skill store unavailable, falling back to flat file", zap.Error(attempt.err))
	} else {
		l.logger.Warn("Primary skill store returned no rows, falling back to flat file")
	}

	skills, err := l.flatFileSkills()
	if err != nil {
		return nil, apperrors.NewLoaderError("failed to load skills flat file", "fallback", err)
	}
	l.logger.Info("Skills loaded from flat file", zap.Int("count", len(skills)))
	return skills, nil
}

func (l *CatalogLoader) primarySkills(ctx context.Context) skillAttempt {
	if l.store == nil {
		return skillAttempt{err: apperrors.NewLoaderError("primary skill store not configured", "primary", nil)}
	}
	skills, err := l.store.FetchAll(ctx)
	if err != nil {
		return skillAttempt{err: apperrors.NewLoaderError("primary skill store query failed", "primary", err)}
	}
	return skillAttempt{skills: skills}
}

func (l *CatalogLoader) flatFileSkills() ([]*domain.Skill, error) {
	raw, err := os.ReadFile(l.skillsFile)
	if err != nil {
		return nil, err
	}
	var skills []*domain.Skill
	if err := json.Unmarshal(raw, &skills); err != nil {
		return nil, err
	}
	return skills, nil
}

func (l *CatalogLoader) loadSources() (*domain.SourcesData, error) {
	raw, err := os.ReadFile(l.sourcesFile)
	if err != nil {
		return nil, apperrors.NewLoaderError("failed to read sources file", "sources", err)
	}
	var data domain.SourcesData
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, apperrors.NewLoaderError("failed to decode sources file", "sources", err)
	}
	return &data, nil
}
