package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/jmoiron/sqlx"
)

// Filter is a single equality constraint on a list query. The column must
// be registered as filterable for the entity, everything else is rejected
// before touching the database.
type Filter struct {
	Column string
	Value  any
}

type ResourceRepository[T any] struct {
	db          *sqlx.DB
	table       string
	insertQuery string
	filterable  map[string]bool
}

func NewResourceRepository[T any](db *sqlx.DB, table, insertQuery string, filterable ...string) *ResourceRepository[T] {
	cols := make(map[string]bool, len(filterable))
	for _, c := range filterable {
		cols[c] = true
	}

	return &ResourceRepository[T]{
		db:          db,
		table:       table,
		insertQuery: insertQuery,
		filterable:  cols,
	}
}

func (r *ResourceRepository[T]) List(ctx context.Context, filter *Filter, limit, offset int) ([]T, error) {
	query := fmt.Sprintf(`SELECT * FROM %s`, r.table)

	var args []any
	if filter != nil {
		if !r.filterable[filter.Column] {
			return nil, fmt.Errorf("column %q is not filterable on %s", filter.Column, r.table)
		}
		query += fmt.Sprintf(` WHERE %s = $1`, filter.Column)
		args = append(args, filter.Value)
	}

	// created_at ties are broken by id so the order is stable
	query += ` ORDER BY created_at DESC, id DESC`

	if limit > 0 {
		query += fmt.Sprintf(` LIMIT %d`, limit)
	}
	if offset > 0 {
		query += fmt.Sprintf(` OFFSET %d`, offset)
	}

	items := []T{}
	if err := r.db.SelectContext(ctx, &items, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", r.table, err)
	}

	return items, nil
}

func (r *ResourceRepository[T]) GetByID(ctx context.Context, id int) (*T, error) {
	query := fmt.Sprintf(`SELECT * FROM %s WHERE id = $1`, r.table)

	var item T
	err := r.db.GetContext(ctx, &item, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get from %s: %w", r.table, err)
	}

	return &item, nil
}

func (r *ResourceRepository[T]) Create(ctx context.Context, arg any) (*T, error) {
	rows, err := r.db.NamedQueryContext(ctx, r.insertQuery, arg)
	if err != nil {
		return nil, fmt.Errorf("failed to insert into %s: %w", r.table, err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, fmt.Errorf("failed to insert into %s: %w", r.table, err)
		}
		return nil, fmt.Errorf("insert into %s returned no row", r.table)
	}

	var item T
	if err := rows.StructScan(&item); err != nil {
		return nil, fmt.Errorf("failed to scan inserted %s row: %w", r.table, err)
	}

	return &item, nil
}

func (r *ResourceRepository[T]) Update(ctx context.Context, id int, changes map[string]any) (*T, error) {
	if len(changes) == 0 {
		// nothing to change, echo the current row
		return r.GetByID(ctx, id)
	}

	cols := make([]string, 0, len(changes))
	for col := range changes {
		cols = append(cols, col)
	}
	sort.Strings(cols)

	set := make([]string, 0, len(cols))
	args := []any{id}
	for i, col := range cols {
		set = append(set, fmt.Sprintf("%s = $%d", col, i+2))
		args = append(args, changes[col])
	}

	query := fmt.Sprintf(`UPDATE %s SET %s WHERE id = $1 RETURNING *`,
		r.table, strings.Join(set, ", "))

	var item T
	err := r.db.GetContext(ctx, &item, query, args...)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update %s: %w", r.table, err)
	}

	return &item, nil
}

func (r *ResourceRepository[T]) Delete(ctx context.Context, id int) (*T, error) {
	query := fmt.Sprintf(`DELETE FROM %s WHERE id = $1 RETURNING *`, r.table)

	var item T
	err := r.db.GetContext(ctx, &item, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to delete from %s: %w", r.table, err)
	}

	return &item, nil
}
