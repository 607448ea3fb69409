package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"ngoportal/internal/models"
)

type donationRepository struct {
	*ResourceRepository[models.Donation]
	db *sqlx.DB
}

func NewDonationRepository(db *sqlx.DB) DonationStore {
	return &donationRepository{
		ResourceRepository: NewResourceRepository[models.Donation](db, "donations",
			`INSERT INTO donations (donor_name, email, amount, status, transaction_id)
			 VALUES (:donor_name, :email, :amount, :status, :transaction_id)
			 RETURNING *`,
			"status"),
		db: db,
	}
}

// Verify moves a donation to verified. There is no status precondition, so
// re-verifying an already-verified donation is a no-op that still returns
// the row. No reverse transition exists.
func (r *donationRepository) Verify(ctx context.Context, id int) (*models.Donation, error) {
	query := `
		UPDATE donations
		SET status = 'verified'
		WHERE id = $1
		RETURNING *
	`

	var donation models.Donation
	err := r.db.GetContext(ctx, &donation, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to verify donation: %w", err)
	}

	return &donation, nil
}
