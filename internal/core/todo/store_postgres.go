// Copyright (c) 2026 Todone. All rights reserved.
// Author: todone.dev@gmail.com

package todo

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/todone-app/todone/internal/platform/apperr"
	"github.com/todone-app/todone/internal/platform/dberr"
)

// PostgresRepository implements the Repository interface using pgx.
type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repository *PostgresRepository) List(context context.Context) ([]*Todo, error) {
	const query = `
		SELECT id, title, completed, createdat, updatedat
		FROM core.todo
		ORDER BY id ASC`

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_todos")
	}
	defer rows.Close()

	items := make([]*Todo, 0)
	for rows.Next() {
		item := &Todo{}
		if err := rows.Scan(&item.ID, &item.Title, &item.Completed, &item.CreatedAt, &item.UpdatedAt); err != nil {
			return nil, dberr.Wrap(err, "scan_todo")
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "list_todos_rows")
	}

	return items, nil
}

func (repository *PostgresRepository) GetByID(context context.Context, id int64) (*Todo, error) {
	const query = `
		SELECT id, title, completed, createdat, updatedat
		FROM core.todo
		WHERE id = $1`

	item := &Todo{}
	err := repository.db.QueryRow(context, query, id).Scan(
		&item.ID, &item.Title, &item.Completed, &item.CreatedAt, &item.UpdatedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "get_todo_by_id")
	}

	return item, nil
}

func (repository *PostgresRepository) Create(context context.Context, item *Todo) error {
	// id comes from the identity column; timestamps are set here so the
	// returned entity matches the row without a second round trip.
	const query = `
		INSERT INTO core.todo (title, completed, createdat, updatedat)
		VALUES ($1, $2, $3, $4)
		RETURNING id`

	now := time.Now()
	item.CreatedAt = now
	item.UpdatedAt = now

	err := repository.db.QueryRow(context, query,
		item.Title, item.Completed, item.CreatedAt, item.UpdatedAt,
	).Scan(&item.ID)
	if err != nil {
		return dberr.Wrap(err, "create_todo")
	}

	return nil
}

func (repository *PostgresRepository) Update(context context.Context, item *Todo) error {
	const query = `
		UPDATE core.todo
		SET title = $1, completed = $2, updatedat = $3
		WHERE id = $4
		RETURNING createdat`

	item.UpdatedAt = time.Now()

	// RETURNING lets a missing row surface as ErrNoRows → NotFound.
	err := repository.db.QueryRow(context, query,
		item.Title, item.Completed, item.UpdatedAt, item.ID,
	).Scan(&item.CreatedAt)
	if err != nil {
		return dberr.Wrap(err, "update_todo")
	}

	return nil
}

func (repository *PostgresRepository) DeleteByID(context context.Context, id int64) error {
	const query = `DELETE FROM core.todo WHERE id = $1`

	tag, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_todo")
	}

	if tag.RowsAffected() == 0 {
		return apperr.NotFound("Todo")
	}

	return nil
}

func (repository *PostgresRepository) DeleteAll(context context.Context) error {
	const query = `DELETE FROM core.todo`

	if _, err := repository.db.Exec(context, query); err != nil {
		return dberr.Wrap(err, "delete_all_todos")
	}

	return nil
}
