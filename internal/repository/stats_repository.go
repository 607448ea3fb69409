package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"ngoportal/internal/models"
)

type statsRepository struct {
	db *sqlx.DB
}

func NewStatsRepository(db *sqlx.DB) StatsRepository {
	return &statsRepository{db: db}
}

// Counts re-queries every table on each call. Nothing is maintained
// incrementally, the aggregate is always consistent with the rows.
func (r *statsRepository) Counts(ctx context.Context) (*models.Stats, error) {
	var stats models.Stats

	counts := []struct {
		table string
		dest  *int
	}{
		{"posts", &stats.Posts},
		{"events", &stats.Events},
		{"members", &stats.Members},
		{"programmes", &stats.Programmes},
		{"donations", &stats.Donations},
		{"contact_messages", &stats.ContactMessages},
		{"users", &stats.Users},
	}

	for _, c := range counts {
		query := fmt.Sprintf(`SELECT COUNT(*) FROM %s`, c.table)
		if err := r.db.GetContext(ctx, c.dest, query); err != nil {
			return nil, fmt.Errorf("failed to count %s: %w", c.table, err)
		}
	}

	query := `SELECT COALESCE(SUM(amount), 0) FROM donations WHERE status = 'verified'`
	if err := r.db.GetContext(ctx, &stats.VerifiedAmount, query); err != nil {
		return nil, fmt.Errorf("failed to sum verified donations: %w", err)
	}

	return &stats, nil
}
