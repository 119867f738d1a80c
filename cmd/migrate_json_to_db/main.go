package main

import (
	"database/sql"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	_ "github.com/lib/pq"

	"github.com/kapu/skills-catalog-go/internal/domain"
)

// CLI flags
var (
	dryRun     = flag.Bool("dry-run", false, "Run without committing to database")
	dbHost     = flag.String("db-host", "localhost", "PostgreSQL host")
	dbPort     = flag.Int("db-port", 5432, "PostgreSQL port")
	dbUser     = flag.String("db-user", "catalog_user", "PostgreSQL user")
	dbPass     = flag.String("db-pass", "", "PostgreSQL password")
	dbName     = flag.String("db-name", "skills_catalog", "PostgreSQL database")
	skillsFile = flag.String("skills-file", "data/skills.json", "Skills flat file to load")
	verbose    = flag.Bool("verbose", false, "Verbose output")
)

const createTable = `
CREATE TABLE IF NOT EXISTS skills (
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  name_zh TEXT,
  short_description TEXT NOT NULL,
  short_description_zh TEXT,
  long_description TEXT,
  long_description_zh TEXT,
  category TEXT,
  platforms TEXT,
  tags TEXT,
  popularity BIGINT,
  popularity_label TEXT,
  source_name TEXT NOT NULL,
  source_url TEXT NOT NULL,
  detail_url TEXT
)`

const insertSkill = `
INSERT INTO skills (
  id, name, name_zh, short_description, short_description_zh,
  long_description, long_description_zh, category, platforms, tags,
  popularity, popularity_label, source_name, source_url, detail_url
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
ON CONFLICT (id) DO UPDATE SET
  name = EXCLUDED.name,
  name_zh = EXCLUDED.name_zh,
  short_description = EXCLUDED.short_description,
  short_description_zh = EXCLUDED.short_description_zh,
  long_description = EXCLUDED.long_description,
  long_description_zh = EXCLUDED.long_description_zh,
  category = EXCLUDED.category,
  platforms = EXCLUDED.platforms,
  tags = EXCLUDED.tags,
  popularity = EXCLUDED.popularity,
  popularity_label = EXCLUDED.popularity_label,
  source_name = EXCLUDED.source_name,
  source_url = EXCLUDED.source_url,
  detail_url = EXCLUDED.detail_url`

func main() {
	flag.Parse()

	log.Println("===========================")
	log.Println("Skills JSON to PostgreSQL Migration")
	log.Println("===========================")

	if *dryRun {
		log.Println("[DRY RUN MODE] No database changes will be made")
	}

	skills, err := loadSkills(*skillsFile)
	if err != nil {
		log.Fatalf("Failed to load %s: %v", *skillsFile, err)
	}
	log.Printf("✓ Loaded %d skills from %s", len(skills), *skillsFile)

	if *dryRun {
		for _, s := range skills {
			if *verbose {
				log.Printf("  would insert %s (%s)", s.ID, s.Name)
			}
		}
		log.Println("[DRY RUN] Skipping database writes")
		return
	}

	dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		*dbHost, *dbPort, *dbUser, *dbPass, *dbName)

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if _, err := db.Exec(createTable); err != nil {
		log.Fatalf("Failed to create skills table: %v", err)
	}

	tx, err := db.Begin()
	if err != nil {
		log.Fatalf("Failed to begin transaction: %v", err)
	}

	inserted := 0
	for _, s := range skills {
		platformsJSON, _ := json.Marshal(s.Platforms)
		tagsJSON, _ := json.Marshal(s.Tags)

		if _, err := tx.Exec(insertSkill,
			s.ID, s.Name, s.NameZh, s.ShortDescription, s.ShortDescriptionZh,
			s.LongDescription, s.LongDescriptionZh, s.Category,
			string(platformsJSON), string(tagsJSON),
			s.Popularity, s.PopularityLabel, s.SourceName, s.SourceURL, s.DetailURL,
		); err != nil {
			tx.Rollback()
			log.Fatalf("Failed to insert skill %s: %v", s.ID, err)
		}
		inserted++
		if *verbose {
			log.Printf("  inserted %s (%s)", s.ID, s.Name)
		}
	}

	if err := tx.Commit(); err != nil {
		log.Fatalf("Failed to commit transaction: %v", err)
	}

	log.Printf("✓ Migration complete: %d skills", inserted)
}

func loadSkills(path string) ([]*domain.Skill, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var skills []*domain.Skill
	if err := json.Unmarshal(raw, &skills); err != nil {
		return nil, err
	}
	for _, s := range skills {
		s.EnsureLists()
	}
	return skills, nil
}
