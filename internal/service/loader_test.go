package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap"

	"github.com/kapu/skills-catalog-go/internal/domain"
)

type fakeStore struct {
	skills []*domain.Skill
	err    error
	calls  int
}

func (f *fakeStore) FetchAll(_ context.Context) ([]*domain.Skill, error) {
	f.calls++
	return f.skills, f.err
}

const flatSkills = `[
  {"id": "a", "name": "A", "short_description": "a", "category": "开发",
   "platforms": ["web"], "tags": [], "popularity": 10,
   "source_name": "AwesomeSkill.ai", "source_url": "https://a"},
  {"id": "b", "name": "B", "short_description": "b",
   "source_name": "awesomeskills.dev", "source_url": "https://b"}
]`

const flatSources = `{
  "sources": [
    {"name": "AwesomeSkill.ai", "url": "https://awesomeskill.ai", "description": "d1"},
    {"name": "awesomeskills.dev", "url": "https://awesomeskills.dev", "description": "d2"}
  ],
  "last_updated": "2026-02-11"
}`

func writeDataFiles(t *testing.T, skillsJSON, sourcesJSON string) (string, string) {
	t.Helper()
	dir := t.TempDir()

	skillsPath := filepath.Join(dir, "skills.json")
	if skillsJSON != "" {
		if err := os.WriteFile(skillsPath, []byte(skillsJSON), 0644); err != nil {
			t.Fatalf("failed to write skills fixture: %v", err)
		}
	}

	sourcesPath := filepath.Join(dir, "sources.json")
	if sourcesJSON != "" {
		if err := os.WriteFile(sourcesPath, []byte(sourcesJSON), 0644); err != nil {
			t.Fatalf("failed to write sources fixture: %v", err)
		}
	}

	return skillsPath, sourcesPath
}

func TestLoadUsesPrimaryStore(t *testing.T) {
	skillsPath, sourcesPath := writeDataFiles(t, flatSkills, flatSources)
	store := &fakeStore{skills: []*domain.Skill{
		{ID: "db-skill", Name: "DB Skill", SourceName: "AwesomeSkill.ai", SourceURL: "https://db"},
	}}

	loader := NewCatalogLoader(store, skillsPath, sourcesPath, zap.NewNop())
	catalog, err := loader.Load(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if store.calls != 1 {
		t.Fatalf("expected one store call, got %d", store.calls)
	}
	if len(catalog.Skills) != 1 || catalog.Skills[0].ID != "db-skill" {
		t.Fatalf("expected primary store data, got %v", catalog.Skills)
	}
	if catalog.LastUpdated != "2026-02-11" {
		t.Fatalf("expected last_updated from sources file, got %s", catalog.LastUpdated)
	}
}

func TestLoadFallsBackOnStoreError(t *testing.T) {
	skillsPath, sourcesPath := writeDataFiles(t, flatSkills, flatSources)
	store := &fakeStore{err: fmt.Errorf("connection refused")}

	loader := NewCatalogLoader(store, skillsPath, sourcesPath, zap.NewNop())
	catalog, err := loader.Load(context.Background())
	if err != nil {
		t.Fatalf("expected fallback to absorb the store error, got %v", err)
	}

	if len(catalog.Skills) != 2 {
		t.Fatalf("expected the flat file's 2 records, got %d", len(catalog.Skills))
	}
}

func TestLoadFallsBackOnEmptyStore(t *testing.T) {
	skillsPath, sourcesPath := writeDataFiles(t, flatSkills, flatSources)
	store := &fakeStore{skills: []*domain.Skill{}}

	loader := NewCatalogLoader(store, skillsPath, sourcesPath, zap.NewNop())
	catalog, err := loader.Load(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if len(catalog.Skills) != 2 {
		t.Fatalf("expected zero rows to trigger fallback, got %d skills", len(catalog.Skills))
	}
}

func TestLoadFallsBackWithoutStore(t *testing.T) {
	skillsPath, sourcesPath := writeDataFiles(t, flatSkills, flatSources)

	loader := NewCatalogLoader(nil, skillsPath, sourcesPath, zap.NewNop())
	catalog, err := loader.Load(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if len(catalog.Skills) != 2 {
		t.Fatalf("expected flat file data, got %d skills", len(catalog.Skills))
	}
}

func TestLoadFailsWhenSourcesFileMissing(t *testing.T) {
	skillsPath, _ := writeDataFiles(t, flatSkills, "")
	missingSources := filepath.Join(t.TempDir(), "absent.json")

	loader := NewCatalogLoader(nil, skillsPath, missingSources, zap.NewNop())
	if _, err := loader.Load(context.Background()); err == nil {
		t.Fatalf("expected a fatal error for a missing sources file")
	}
}

func TestLoadFailsWhenFallbackFileMissing(t *testing.T) {
	_, sourcesPath := writeDataFiles(t, "", flatSources)
	missingSkills := filepath.Join(t.TempDir(), "absent.json")
	store := &fakeStore{err: fmt.Errorf("no database")}

	loader := NewCatalogLoader(store, missingSkills, sourcesPath, zap.NewNop())
	if _, err := loader.Load(context.Background()); err == nil {
		t.Fatalf("expected a fatal error when both paths fail")
	}
}
