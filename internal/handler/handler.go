package handlers

import (
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"ngoportal/internal/config"
	"ngoportal/internal/models"
	"ngoportal/internal/repository"
	"ngoportal/internal/service"
)

type Handlers struct {
	Auth       *AuthHandler
	Users      *UserHandler
	Posts      *ResourceHandler[models.Post, models.CreatePost, models.UpdatePost]
	Events     *ResourceHandler[models.Event, models.CreateEvent, models.UpdateEvent]
	Members    *ResourceHandler[models.Member, models.CreateMember, models.UpdateMember]
	Programmes *ResourceHandler[models.Programme, models.CreateProgramme, models.UpdateProgramme]
	Donations  *DonationHandler
	Contact    *ResourceHandler[models.ContactMessage, models.CreateContactMessage, models.NoPatch]
	Upload     *UploadHandler
	Stats      *StatsHandler
}

// NewValidator reports json field names in validation errors instead of
// Go struct field names.
func NewValidator() *validator.Validate {
	validate := validator.New()

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})

	return validate
}

func NewHandlers(services *service.Service, repo *repository.Repository, cfg *config.Config) *Handlers {
	validate := NewValidator()

	return &Handlers{
		Auth:       NewAuthHandler(services.Auth, validate),
		Users:      NewUserHandler(services.User, validate),
		Posts:      NewResourceHandler(services.Post, validate, "type"),
		Events:     NewResourceHandler(services.Event, validate, ""),
		Members:    NewResourceHandler(services.Member, validate, ""),
		Programmes: NewResourceHandler(services.Programme, validate, ""),
		Donations:  NewDonationHandler(services.Donation, validate),
		Contact:    NewResourceHandler(services.Contact, validate, ""),
		Upload:     NewUploadHandler(services.Upload, cfg.MaxUploadSize),
		Stats:      NewStatsHandler(repo.Stats),
	}
}

func HomeHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]string{"service": "ngoportal", "status": "running"}, http.StatusOK)
}

func HealthHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]string{"status": "ok"}, http.StatusOK)
}
