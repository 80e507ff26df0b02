package repository

import (
	"context"
	"errors"
	"fmt"

	"lifepath/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

const postgresPathSchema = `
CREATE TABLE IF NOT EXISTS path_templates (
	id                   TEXT PRIMARY KEY,
	name                 TEXT NOT NULL,
	description          TEXT NOT NULL DEFAULT '',
	education_cost       DOUBLE PRECISION NOT NULL DEFAULT 0,
	years_of_school      INTEGER NOT NULL DEFAULT 0,
	starting_salary      DOUBLE PRECISION NOT NULL DEFAULT 0,
	salary_growth_rate   DOUBLE PRECISION NOT NULL DEFAULT 0,
	living_cost          DOUBLE PRECISION,
	structure            DOUBLE PRECISION,
	creativity           DOUBLE PRECISION,
	work_life_balance    DOUBLE PRECISION,
	location_flexibility DOUBLE PRECISION,
	skill_requirement    DOUBLE PRECISION,
	interest_area        TEXT NOT NULL DEFAULT '',
	risk_level           TEXT NOT NULL DEFAULT ''
);
`

type PostgresPathRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewPostgresPathRepository(db *pgxpool.Pool, logger *zap.Logger) *PostgresPathRepository {
	return &PostgresPathRepository{
		db:     db,
		logger: logger,
	}
}

// EnsureSchema creates the path_templates table if it is missing.
func (r *PostgresPathRepository) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, postgresPathSchema); err != nil {
		return fmt.Errorf("failed to create path_templates table: %w", err)
	}
	return nil
}

// Upsert inserts or replaces a template. Only the seeder writes to the catalog.
func (r *PostgresPathRepository) Upsert(ctx context.Context, t *models.PathTemplate) error {
	query := squirrel.Insert("path_templates").
		Columns(pathColumns...).
		Values(t.ID, t.Name, t.Description, t.EducationCost, t.YearsOfSchool, t.StartingSalary,
			t.SalaryGrowthRate, t.LivingCost, t.Structure, t.Creativity, t.WorkLifeBalance,
			t.LocationFlexibility, t.SkillRequirement, t.InterestArea, string(t.RiskLevel)).
		Suffix(upsertSuffix()).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func (r *PostgresPathRepository) GetByID(ctx context.Context, id string) (*models.PathTemplate, error) {
	query := selectPaths().
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	t, err := scanPathTemplate(r.db.QueryRow(ctx, sql, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrPathNotFound
	}
	if err != nil {
		return nil, err
	}
	return t, nil
}

func (r *PostgresPathRepository) GetByIDs(ctx context.Context, ids []string) ([]*models.PathTemplate, error) {
	if len(ids) == 0 {
		return []*models.PathTemplate{}, nil
	}
	found, err := r.query(ctx, selectPaths().Where(squirrel.Eq{"id": ids}))
	if err != nil {
		return nil, err
	}
	return orderByRequest(ids, found), nil
}

func (r *PostgresPathRepository) List(ctx context.Context) ([]*models.PathTemplate, error) {
	return r.query(ctx, selectPaths().OrderBy("name ASC"))
}

func (r *PostgresPathRepository) query(ctx context.Context, builder squirrel.SelectBuilder) ([]*models.PathTemplate, error) {
	sql, args, err := builder.PlaceholderFormat(squirrel.Dollar).ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var templates []*models.PathTemplate
	for rows.Next() {
		t, err := scanPathTemplate(rows)
		if err != nil {
			return nil, err
		}
		templates = append(templates, t)
	}
	return templates, rows.Err()
}

func selectPaths() squirrel.SelectBuilder {
	return squirrel.Select(pathColumns...).From("path_templates")
}

func scanPathTemplate(row pgx.Row) (*models.PathTemplate, error) {
	var t models.PathTemplate
	err := row.Scan(
		&t.ID, &t.Name, &t.Description, &t.EducationCost, &t.YearsOfSchool, &t.StartingSalary,
		&t.SalaryGrowthRate, &t.LivingCost, &t.Structure, &t.Creativity, &t.WorkLifeBalance,
		&t.LocationFlexibility, &t.SkillRequirement, &t.InterestArea, &t.RiskLevel,
	)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func upsertSuffix() string {
	suffix := "ON CONFLICT (id) DO UPDATE SET "
	for i, c := range pathColumns[1:] {
		if i > 0 {
			suffix += ", "
		}
		suffix += c + " = EXCLUDED." + c
	}
	return suffix
}
