package repository

import (
	"context"
	_ "embed"
	"fmt"
	"os"
	"strings"

	"lifepath/internal/models"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

//go:embed catalog/default_paths.yaml
var defaultCatalog []byte

// DefaultCatalog returns a copy of the built-in YAML catalog.
func DefaultCatalog() []byte {
	return append([]byte(nil), defaultCatalog...)
}

type pathCatalog struct {
	Paths []*models.PathTemplate `yaml:"paths"`
}

// LoadPathCatalog reads a YAML catalog from path, or the built-in catalog
// when path is empty.
func LoadPathCatalog(path string) ([]*models.PathTemplate, error) {
	data := defaultCatalog
	if path != "" {
		var err error
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
	}
	return ParsePathCatalog(data)
}

// ParsePathCatalog decodes and validates a YAML catalog document.
func ParsePathCatalog(data []byte) ([]*models.PathTemplate, error) {
	var c pathCatalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("unmarshal path catalog: %w", err)
	}

	seen := make(map[string]bool, len(c.Paths))
	for i, t := range c.Paths {
		if t == nil {
			return nil, fmt.Errorf("path catalog entry %d is empty", i)
		}
		t.ID = strings.TrimSpace(t.ID)
		if t.ID == "" {
			return nil, fmt.Errorf("path catalog entry %d has no id", i)
		}
		if seen[t.ID] {
			return nil, fmt.Errorf("duplicate path id %q", t.ID)
		}
		if t.YearsOfSchool < 0 {
			return nil, fmt.Errorf("path %q: yearsOfSchool must not be negative", t.ID)
		}
		if t.RiskLevel != "" {
			level := models.ParseRiskLevel(string(t.RiskLevel))
			if level == "" {
				return nil, fmt.Errorf("path %q: unknown riskLevel %q", t.ID, t.RiskLevel)
			}
			t.RiskLevel = level
		}
		seen[t.ID] = true
	}
	return c.Paths, nil
}

// MemoryPathRepository serves a fixed catalog from memory.
type MemoryPathRepository struct {
	paths  []*models.PathTemplate
	byID   map[string]*models.PathTemplate
	logger *zap.Logger
}

func NewMemoryPathRepository(paths []*models.PathTemplate, logger *zap.Logger) *MemoryPathRepository {
	byID := make(map[string]*models.PathTemplate, len(paths))
	for _, p := range paths {
		byID[p.ID] = p
	}
	logger.Info("Path catalog loaded", zap.Int("paths", len(paths)))
	return &MemoryPathRepository{
		paths:  paths,
		byID:   byID,
		logger: logger,
	}
}

func (r *MemoryPathRepository) GetByID(_ context.Context, id string) (*models.PathTemplate, error) {
	t, ok := r.byID[id]
	if !ok {
		return nil, ErrPathNotFound
	}
	cp := *t
	return &cp, nil
}

func (r *MemoryPathRepository) GetByIDs(ctx context.Context, ids []string) ([]*models.PathTemplate, error) {
	out := make([]*models.PathTemplate, 0, len(ids))
	for _, id := range ids {
		t, err := r.GetByID(ctx, id)
		if err != nil {
			continue
		}
		out = append(out, t)
	}
	return out, nil
}

func (r *MemoryPathRepository) List(_ context.Context) ([]*models.PathTemplate, error) {
	out := make([]*models.PathTemplate, 0, len(r.paths))
	for _, t := range r.paths {
		cp := *t
		out = append(out, &cp)
	}
	return out, nil
}
