package database

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jask/mlshowcase/internal/catalog"
	"github.com/jask/mlshowcase/internal/database/repository"
)

// LoadCatalog reads every project and demo from db into an immutable catalog.
func LoadCatalog(ctx context.Context, db *sql.DB) (*catalog.Catalog, error) {
	projectRepo := repository.NewProjectRepo(db)
	demoRepo := repository.NewDemoRepo(db)

	rows, err := projectRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	projects := make([]catalog.Project, 0, len(rows))
	for _, row := range rows {
		demoRows, err := demoRepo.ListByProject(ctx, row.ID)
		if err != nil {
			return nil, fmt.Errorf("list demos of %s: %w", row.ID, err)
		}
		p := catalog.Project{
			ID:           row.ID,
			Title:        row.Title,
			Description:  row.Description,
			Theme:        row.Theme,
			Icon:         row.Icon,
			KeyFeature:   row.KeyFeature,
			Technologies: row.Technologies,
			Applications: row.Applications,
			Demos:        make([]catalog.Demo, 0, len(demoRows)),
		}
		for _, d := range demoRows {
			p.Demos = append(p.Demos, catalog.Demo{
				ID:          d.Number,
				Title:       d.Title,
				Description: d.Description,
				Media:       d.Media,
				Kind:        catalog.MediaKind(d.MediaKind),
				Stats: catalog.Stats{
					Accuracy:       d.Accuracy,
					Speed:          d.Speed,
					Implementation: d.Implementation,
				},
				Features: d.Features,
			})
		}
		projects = append(projects, p)
	}
	cat, err := catalog.New(projects)
	if err != nil {
		return nil, fmt.Errorf("build catalog: %w", err)
	}
	return cat, nil
}

// Bootstrap opens the catalog store at path, migrates it, seeds the
// built-in records when empty and loads the catalog. The store is closed
// before returning; the catalog is not read again at runtime.
func Bootstrap(ctx context.Context, path string) (*catalog.Catalog, error) {
	if !IsMemory(path) {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("mkdir catalog dir: %w", err)
		}
	}
	db, err := Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer db.Close()

	if err := RunMigrations(db); err != nil {
		return nil, err
	}
	if err := SeedDefaults(ctx, db, catalog.Default()); err != nil {
		return nil, err
	}
	return LoadCatalog(ctx, db)
}
