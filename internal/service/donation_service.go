package service

import (
	"context"

	"ngoportal/internal/models"
	"ngoportal/internal/repository"
)

// DonationService extends the plain contract with the one state
// transition in the system: pending -> verified.
type DonationService struct {
	*ResourceService[models.Donation, models.CreateDonation, models.UpdateDonation]
	repo repository.DonationStore
}

func NewDonationService(repo repository.DonationStore) *DonationService {
	return &DonationService{
		ResourceService: NewResourceService[models.Donation, models.CreateDonation, models.UpdateDonation](
			repo,
			func(req *models.CreateDonation, _ *models.Identity) {
				// every donation starts pending regardless of the caller
				req.Status = "pending"
			}),
		repo: repo,
	}
}

func (s *DonationService) Verify(ctx context.Context, id int) (*models.Donation, error) {
	return s.repo.Verify(ctx, id)
}
