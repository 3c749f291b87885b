package sqlite

import (
	"context"

	"github.com/nibbleworks/forkful/internal/recipes/domain"
)

// attributesRepo serves both tags and ingredients; only the table names
// differ.
type attributesRepo struct {
	db        dbtx
	table     string
	joinTable string
	joinCol   string
}

func (r *attributesRepo) GetByOwnerAndName(ctx context.Context, ownerID, name string) (domain.Attribute, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, user_id, name FROM `+r.table+` WHERE user_id = ? AND name = ?`,
		ownerID, name)
	return scanAttribute(row)
}

func (r *attributesRepo) Create(ctx context.Context, ownerID, name string) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO `+r.table+` (user_id, name) VALUES (?, ?)`, ownerID, name)
	if err != nil {
		return 0, mapConstraint(err)
	}
	return res.LastInsertId()
}

func (r *attributesRepo) GetByID(ctx context.Context, ownerID string, id int64) (domain.Attribute, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, user_id, name FROM `+r.table+` WHERE id = ? AND user_id = ?`,
		id, ownerID)
	return scanAttribute(row)
}

func (r *attributesRepo) List(ctx context.Context, ownerID string, assignedOnly bool) ([]domain.Attribute, error) {
	query := `SELECT id, user_id, name FROM ` + r.table + ` WHERE user_id = ?`
	if assignedOnly {
		// Existence of any association qualifies; the recipe's own owner is
		// deliberately not re-checked here.
		query += ` AND id IN (SELECT ` + r.joinCol + ` FROM ` + r.joinTable + `)`
	}
	query += ` ORDER BY name DESC`

	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	attrs := []domain.Attribute{}
	for rows.Next() {
		var a domain.Attribute
		if err := rows.Scan(&a.ID, &a.UserID, &a.Name); err != nil {
			return nil, err
		}
		attrs = append(attrs, a)
	}
	return attrs, rows.Err()
}

func (r *attributesRepo) UpdateName(ctx context.Context, ownerID string, id int64, name string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE `+r.table+` SET name = ? WHERE id = ? AND user_id = ?`,
		name, id, ownerID)
	if err != nil {
		return mapConstraint(err)
	}
	return requireRowAffected(res)
}

func (r *attributesRepo) Delete(ctx context.Context, ownerID string, id int64) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM `+r.table+` WHERE id = ? AND user_id = ?`, id, ownerID)
	if err != nil {
		return err
	}
	return requireRowAffected(res)
}

func scanAttribute(row rowScanner) (domain.Attribute, error) {
	var a domain.Attribute
	if err := row.Scan(&a.ID, &a.UserID, &a.Name); err != nil {
		return domain.Attribute{}, mapNotFound(err)
	}
	return a, nil
}
