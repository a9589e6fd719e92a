package repository

import "context"

// DemoRepo handles demos and their feature tags.
type DemoRepo struct {
	db DBTX
}

func NewDemoRepo(db DBTX) *DemoRepo { return &DemoRepo{db: db} }

func (r *DemoRepo) Upsert(ctx context.Context, d Demo) error {
	return withTx(ctx, r.db, func(q DBTX) error {
		_, err := q.ExecContext(ctx, `
	INSERT INTO demos(id, project_id, number, title, description, media, media_kind,
	 accuracy, speed, implementation, sort_order)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	ON CONFLICT(id) DO UPDATE SET
	 project_id=excluded.project_id,
	 number=excluded.number,
	 title=excluded.title,
	 description=excluded.description,
	 media=excluded.media,
	 media_kind=excluded.media_kind,
	 accuracy=excluded.accuracy,
	 speed=excluded.speed,
	 implementation=excluded.implementation,
	 sort_order=excluded.sort_order;
	`, d.ID, d.ProjectID, d.Number, d.Title, d.Description, d.Media, d.MediaKind,
			d.Accuracy, d.Speed, d.Implementation, d.SortOrder)
		if err != nil {
			return err
		}
		return replaceTags(ctx, q, "demo_features", "demo_id", d.ID, d.Features)
	})
}

// ListByProject returns the demos of one project ordered by sort_order.
func (r *DemoRepo) ListByProject(ctx context.Context, projectID string) ([]Demo, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT id, project_id, number, title, description, media, media_kind,
	 accuracy, speed, implementation, sort_order
	FROM demos WHERE project_id = ? ORDER BY sort_order, number`, projectID)
	if err != nil {
		return nil, err
	}
	var out []Demo
	for rows.Next() {
		var d Demo
		if err := rows.Scan(&d.ID, &d.ProjectID, &d.Number, &d.Title, &d.Description, &d.Media, &d.MediaKind,
			&d.Accuracy, &d.Speed, &d.Implementation, &d.SortOrder); err != nil {
			rows.Close()
			return nil, err
		}
		out = append(out, d)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, err
	}
	rows.Close()

	features, err := loadTags(ctx, r.db, "demo_features", "demo_id")
	if err != nil {
		return nil, err
	}
	for i := range out {
		out[i].Features = features[out[i].ID]
	}
	return out, nil
}
