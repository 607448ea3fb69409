package handlers

import (
	"net/http"

	"github.com/go-playground/validator/v10"

	"ngoportal/internal/models"
	"ngoportal/internal/service"
)

type DonationHandler struct {
	*ResourceHandler[models.Donation, models.CreateDonation, models.UpdateDonation]
	donations *service.DonationService
}

func NewDonationHandler(donations *service.DonationService, validate *validator.Validate) *DonationHandler {
	return &DonationHandler{
		ResourceHandler: NewResourceHandler(donations.ResourceService, validate, "status"),
		donations:       donations,
	}
}

// Verify is idempotent: re-verifying returns 200 with the row unchanged.
func (h *DonationHandler) Verify(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	donation, err := h.donations.Verify(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, donation, http.StatusOK)
}
