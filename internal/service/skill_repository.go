package service

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/kapu/skills-catalog-go/internal/domain"
	"github.com/kapu/skills-catalog-go/internal/service/database"
	"go.uber.org/zap"
)

// SkillRepository reads the skills table, the catalog's primary data path.
type SkillRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

func NewSkillRepository(postgres *database.PostgresService, logger *zap.Logger) *SkillRepository {
	return &SkillRepository{
		db:     postgres.GetDB(),
		logger: logger,
	}
}

// FetchAll runs the fixed projection over the skills table. The platforms and
// tags columns hold JSON-encoded lists; malformed values degrade to empty
// lists rather than failing the record.
func (r *SkillRepository) FetchAll(ctx context.Context) ([]*domain.Skill, error) {
	query := `
		SELECT id, name, name_zh, short_description, short_description_zh,
		       long_description, long_description_zh, category, platforms, tags,
		       popularity, popularity_label, source_name, source_url, detail_url
		FROM skills
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query skills: %w", err)
	}
	defer rows.Close()

	var skills []*domain.Skill
	for rows.Next() {
		var (
			id              string
			name            string
			nameZh          sql.NullString
			shortDesc       string
			shortDescZh     sql.NullString
			longDesc        sql.NullString
			longDescZh      sql.NullString
			category        sql.NullString
			platformsJSON   []byte
			tagsJSON        []byte
			popularity      sql.NullInt64
			popularityLabel sql.NullString
			sourceName      string
			sourceURL       string
			detailURL       sql.NullString
		)

		if err := rows.Scan(&id, &name, &nameZh, &shortDesc, &shortDescZh,
			&longDesc, &longDescZh, &category, &platformsJSON, &tagsJSON,
			&popularity, &popularityLabel, &sourceName, &sourceURL, &detailURL); err != nil {
			r.logger.Warn("Failed to scan skill row", zap.Error(err))
			continue
		}

		skill := &domain.Skill{
			ID:                 id,
			Name:               name,
			NameZh:             nameZh.String,
			ShortDescription:   shortDesc,
			ShortDescriptionZh: shortDescZh.String,
			LongDescription:    longDesc.String,
			LongDescriptionZh:  longDescZh.String,
			Category:           category.String,
			Platforms:          domain.DecodeStringList(platformsJSON),
			Tags:               domain.DecodeStringList(tagsJSON),
			Popularity:         popularity.Int64,
			PopularityLabel:    popularityLabel.String,
			SourceName:         sourceName,
			SourceURL:          sourceURL,
			DetailURL:          detailURL.String,
		}

		skills = append(skills, skill)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate skill rows: %w", err)
	}

	return skills, nil
}
