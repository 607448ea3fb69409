package service

import (
	"errors"

	"ngoportal/internal/config"
	"ngoportal/internal/models"
	"ngoportal/internal/repository"
	"ngoportal/internal/storage"
)

var (
	ErrUnauthenticated      = errors.New("authentication required")
	ErrSelfDeletion         = errors.New("cannot delete your own account")
	ErrUnsupportedMediaType = errors.New("unsupported file type")
	ErrPayloadTooLarge      = errors.New("file too large")
)

type Service struct {
	Auth      AuthService
	User      UserService
	Post      *ResourceService[models.Post, models.CreatePost, models.UpdatePost]
	Event     *ResourceService[models.Event, models.CreateEvent, models.UpdateEvent]
	Member    *ResourceService[models.Member, models.CreateMember, models.UpdateMember]
	Programme *ResourceService[models.Programme, models.CreateProgramme, models.UpdateProgramme]
	Donation  *DonationService
	Contact   *ResourceService[models.ContactMessage, models.CreateContactMessage, models.NoPatch]
	Upload    UploadService
}

func NewService(repo *repository.Repository, cfg *config.Config, store storage.Storage) *Service {
	return &Service{
		Auth: NewAuthService(repo.User, repo.Session, cfg),
		User: NewUserService(repo.User),
		Post: NewResourceService[models.Post, models.CreatePost, models.UpdatePost](
			repo.Post,
			func(req *models.CreatePost, ident *models.Identity) {
				if ident != nil {
					req.AuthorID = &ident.ID
				}
			}),
		Event:     NewResourceService[models.Event, models.CreateEvent, models.UpdateEvent](repo.Event, nil),
		Member:    NewResourceService[models.Member, models.CreateMember, models.UpdateMember](repo.Member, nil),
		Programme: NewResourceService[models.Programme, models.CreateProgramme, models.UpdateProgramme](repo.Programme, nil),
		Donation:  NewDonationService(repo.Donation),
		Contact:   NewResourceService[models.ContactMessage, models.CreateContactMessage, models.NoPatch](repo.ContactMessage, nil),
		Upload:    NewUploadService(store, cfg.MaxUploadSize),
	}
}
