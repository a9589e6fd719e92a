package database

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"

	"github.com/google/uuid"

	"github.com/jask/mlshowcase/internal/catalog"
	"github.com/jask/mlshowcase/internal/database/repository"
)

// DemoRowID derives the stable row id of a demo from its owner and number.
func DemoRowID(projectID string, number int) string {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte("demo:"+projectID+"/"+strconv.Itoa(number))).String()
}

// SeedDefaults writes cat into an empty store in a single transaction,
// so a failed seed leaves the store empty and the next startup retries.
// A store that already holds projects is left as is.
func SeedDefaults(ctx context.Context, db *sql.DB, cat *catalog.Catalog) error {
	return repository.InTx(ctx, db, func(tx *sql.Tx) error {
		return seed(ctx, tx, cat)
	})
}

func seed(ctx context.Context, tx *sql.Tx, cat *catalog.Catalog) error {
	projects := repository.NewProjectRepo(tx)
	demos := repository.NewDemoRepo(tx)

	n, err := projects.Count(ctx)
	if err != nil {
		return fmt.Errorf("count projects: %w", err)
	}
	if n > 0 {
		return nil
	}
	for _, p := range cat.Projects() {
		row := repository.Project{
			ID:           p.ID,
			Title:        p.Title,
			Description:  p.Description,
			Theme:        p.Theme,
			Icon:         p.Icon,
			KeyFeature:   p.KeyFeature,
			SortOrder:    p.Index,
			Technologies: p.Technologies,
			Applications: p.Applications,
		}
		if err := projects.Upsert(ctx, row); err != nil {
			return fmt.Errorf("seed project %s: %w", p.ID, err)
		}
		for _, d := range p.Demos {
			drow := repository.Demo{
				ID:             DemoRowID(p.ID, d.ID),
				ProjectID:      p.ID,
				Number:         d.ID,
				Title:          d.Title,
				Description:    d.Description,
				Media:          d.Media,
				MediaKind:      string(d.Kind),
				Accuracy:       d.Stats.Accuracy,
				Speed:          d.Stats.Speed,
				Implementation: d.Stats.Implementation,
				SortOrder:      d.Index,
				Features:       d.Features,
			}
			if err := demos.Upsert(ctx, drow); err != nil {
				return fmt.Errorf("seed demo %s/%d: %w", p.ID, d.ID, err)
			}
		}
	}
	return nil
}
