package repository

import (
	"context"
	"database/sql"
)

// DBTX is the query surface shared by *sql.DB and *sql.Tx, so a repository
// can run standalone or inside a caller's transaction.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// InTx runs fn in a transaction on db, committing only if fn succeeds.
func InTx(ctx context.Context, db *sql.DB, fn func(tx *sql.Tx) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}

// withTx groups the writes of one upsert. Inside a caller's transaction
// the writes join it instead.
func withTx(ctx context.Context, db DBTX, fn func(q DBTX) error) error {
	conn, ok := db.(*sql.DB)
	if !ok {
		return fn(db)
	}
	return InTx(ctx, conn, func(tx *sql.Tx) error { return fn(tx) })
}

// replaceTags rewrites the ordered tag rows of one owner.
func replaceTags(ctx context.Context, q DBTX, table, ownerCol, ownerID string, names []string) error {
	if _, err := q.ExecContext(ctx, `DELETE FROM `+table+` WHERE `+ownerCol+` = ?`, ownerID); err != nil {
		return err
	}
	for i, name := range names {
		if _, err := q.ExecContext(ctx,
			`INSERT INTO `+table+`(`+ownerCol+`, position, name) VALUES (?, ?, ?)`,
			ownerID, i, name); err != nil {
			return err
		}
	}
	return nil
}

// loadTags reads every tag row of table grouped by owner, in position order.
func loadTags(ctx context.Context, q DBTX, table, ownerCol string) (map[string][]string, error) {
	rows, err := q.QueryContext(ctx, `SELECT `+ownerCol+`, name FROM `+table+` ORDER BY `+ownerCol+`, position`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make(map[string][]string)
	for rows.Next() {
		var owner, name string
		if err := rows.Scan(&owner, &name); err != nil {
			return nil, err
		}
		out[owner] = append(out[owner], name)
	}
	return out, rows.Err()
}
