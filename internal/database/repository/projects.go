package repository

import (
	"context"
	"database/sql"
	"errors"
)

// ProjectRepo handles projects and their technology and application tags.
type ProjectRepo struct {
	db DBTX
}

func NewProjectRepo(db DBTX) *ProjectRepo { return &ProjectRepo{db: db} }

func (r *ProjectRepo) Upsert(ctx context.Context, p Project) error {
	return withTx(ctx, r.db, func(q DBTX) error {
		_, err := q.ExecContext(ctx, `
	INSERT INTO projects(id, title, description, theme, icon, key_feature, sort_order)
	VALUES (?, ?, ?, ?, ?, ?, ?)
	ON CONFLICT(id) DO UPDATE SET
	 title=excluded.title,
	 description=excluded.description,
	 theme=excluded.theme,
	 icon=excluded.icon,
	 key_feature=excluded.key_feature,
	 sort_order=excluded.sort_order;
	`, p.ID, p.Title, p.Description, p.Theme, p.Icon, p.KeyFeature, p.SortOrder)
		if err != nil {
			return err
		}
		if err := replaceTags(ctx, q, "project_technologies", "project_id", p.ID, p.Technologies); err != nil {
			return err
		}
		return replaceTags(ctx, q, "project_applications", "project_id", p.ID, p.Applications)
	})
}

func (r *ProjectRepo) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM projects`).Scan(&n)
	return n, err
}

func (r *ProjectRepo) Get(ctx context.Context, id string) (*Project, error) {
	row := r.db.QueryRowContext(ctx, `
	SELECT id, title, description, theme, icon, key_feature, sort_order
	FROM projects WHERE id = ?`, id)
	var p Project
	if err := row.Scan(&p.ID, &p.Title, &p.Description, &p.Theme, &p.Icon, &p.KeyFeature, &p.SortOrder); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	tech, apps, err := r.loadProjectTags(ctx)
	if err != nil {
		return nil, err
	}
	p.Technologies = tech[p.ID]
	p.Applications = apps[p.ID]
	return &p, nil
}

// List returns every project ordered by sort_order.
func (r *ProjectRepo) List(ctx context.Context) ([]Project, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT id, title, description, theme, icon, key_feature, sort_order
	FROM projects ORDER BY sort_order, id`)
	if err != nil {
		return nil, err
	}
	var out []Project
	for rows.Next() {
		var p Project
		if err := rows.Scan(&p.ID, &p.Title, &p.Description, &p.Theme, &p.Icon, &p.KeyFeature, &p.SortOrder); err != nil {
			rows.Close()
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, err
	}
	// release the single sqlite connection before the tag query
	rows.Close()

	tech, apps, err := r.loadProjectTags(ctx)
	if err != nil {
		return nil, err
	}
	for i := range out {
		out[i].Technologies = tech[out[i].ID]
		out[i].Applications = apps[out[i].ID]
	}
	return out, nil
}

func (r *ProjectRepo) loadProjectTags(ctx context.Context) (tech, apps map[string][]string, err error) {
	tech, err = loadTags(ctx, r.db, "project_technologies", "project_id")
	if err != nil {
		return nil, nil, err
	}
	apps, err = loadTags(ctx, r.db, "project_applications", "project_id")
	if err != nil {
		return nil, nil, err
	}
	return tech, apps, nil
}
