package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"lifepath/internal/models"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"
)

const sqlitePathSchema = `
CREATE TABLE IF NOT EXISTS path_templates (
	id                   TEXT PRIMARY KEY,
	name                 TEXT NOT NULL,
	description          TEXT NOT NULL DEFAULT '',
	education_cost       REAL NOT NULL DEFAULT 0,
	years_of_school      INTEGER NOT NULL DEFAULT 0,
	starting_salary      REAL NOT NULL DEFAULT 0,
	salary_growth_rate   REAL NOT NULL DEFAULT 0,
	living_cost          REAL,
	structure            REAL,
	creativity           REAL,
	work_life_balance    REAL,
	location_flexibility REAL,
	skill_requirement    REAL,
	interest_area        TEXT NOT NULL DEFAULT '',
	risk_level           TEXT NOT NULL DEFAULT ''
);
`

// SQLitePathRepository keeps the catalog in a single SQLite file.
type SQLitePathRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewSQLitePathRepository(dbPath string, logger *zap.Logger) (*SQLitePathRepository, error) {
	db, err := sqlx.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(sqlitePathSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	logger.Info("SQLite path catalog opened", zap.String("path", dbPath))
	return &SQLitePathRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *SQLitePathRepository) Close() error {
	return r.db.Close()
}

// Upsert inserts or replaces a template. Only the seeder writes to the catalog.
func (r *SQLitePathRepository) Upsert(ctx context.Context, t *models.PathTemplate) error {
	query := `INSERT INTO path_templates (` + pathColumnsList + `)
VALUES (:id, :name, :description, :education_cost, :years_of_school, :starting_salary,
	:salary_growth_rate, :living_cost, :structure, :creativity, :work_life_balance,
	:location_flexibility, :skill_requirement, :interest_area, :risk_level) ` + upsertSuffix()

	if _, err := r.db.NamedExecContext(ctx, query, t); err != nil {
		return fmt.Errorf("upsert path %s: %w", t.ID, err)
	}
	return nil
}

func (r *SQLitePathRepository) GetByID(ctx context.Context, id string) (*models.PathTemplate, error) {
	var t models.PathTemplate
	err := r.db.GetContext(ctx, &t, "SELECT "+pathColumnsList+" FROM path_templates WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrPathNotFound
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *SQLitePathRepository) GetByIDs(ctx context.Context, ids []string) ([]*models.PathTemplate, error) {
	if len(ids) == 0 {
		return []*models.PathTemplate{}, nil
	}
	query, args, err := sqlx.In("SELECT "+pathColumnsList+" FROM path_templates WHERE id IN (?)", ids)
	if err != nil {
		return nil, err
	}

	var found []*models.PathTemplate
	if err := r.db.SelectContext(ctx, &found, r.db.Rebind(query), args...); err != nil {
		return nil, err
	}
	return orderByRequest(ids, found), nil
}

func (r *SQLitePathRepository) List(ctx context.Context) ([]*models.PathTemplate, error) {
	var templates []*models.PathTemplate
	if err := r.db.SelectContext(ctx, &templates, "SELECT "+pathColumnsList+" FROM path_templates ORDER BY name ASC"); err != nil {
		return nil, err
	}
	return templates, nil
}
