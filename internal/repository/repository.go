package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"ngoportal/internal/models"
)

var (
	ErrNotFound           = errors.New("not found")
	ErrDuplicateUsername  = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// ResourceStore is the uniform contract every entity follows. Adding an
// entity means instantiating ResourceRepository with its table, insert
// statement and filterable columns.
type ResourceStore[T any] interface {
	List(ctx context.Context, filter *Filter, limit, offset int) ([]T, error)
	GetByID(ctx context.Context, id int) (*T, error)
	Create(ctx context.Context, arg any) (*T, error)
	Update(ctx context.Context, id int, changes map[string]any) (*T, error)
	Delete(ctx context.Context, id int) (*T, error)
}

type UserRepository interface {
	Create(ctx context.Context, username, password, role string) (*models.User, error)
	GetByID(ctx context.Context, id int) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	List(ctx context.Context) ([]models.User, error)
	Delete(ctx context.Context, id int) (*models.User, error)
	VerifyPassword(ctx context.Context, username, password string) (*models.User, error)
}

type SessionRepository interface {
	Create(ctx context.Context, userID int, ttl time.Duration) (*models.Session, error)
	GetUser(ctx context.Context, sessionID string) (*models.User, error)
	Delete(ctx context.Context, sessionID string) error
	DeleteExpired(ctx context.Context) (int64, error)
}

type DonationStore interface {
	ResourceStore[models.Donation]
	Verify(ctx context.Context, id int) (*models.Donation, error)
}

type StatsRepository interface {
	Counts(ctx context.Context) (*models.Stats, error)
}

type Repository struct {
	User           UserRepository
	Session        SessionRepository
	Post           ResourceStore[models.Post]
	Event          ResourceStore[models.Event]
	Member         ResourceStore[models.Member]
	Programme      ResourceStore[models.Programme]
	Donation       DonationStore
	ContactMessage ResourceStore[models.ContactMessage]
	Stats          StatsRepository
}

func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{
		User:    NewUserRepository(db),
		Session: NewSessionRepository(db),
		Post: NewResourceRepository[models.Post](db, "posts",
			`INSERT INTO posts (title, content, type, image_url, author_id)
			 VALUES (:title, :content, :type, :image_url, :author_id)
			 RETURNING *`,
			"type"),
		Event: NewResourceRepository[models.Event](db, "events",
			`INSERT INTO events (title, date, location, description, image_url)
			 VALUES (:title, :date, :location, :description, :image_url)
			 RETURNING *`),
		Member: NewResourceRepository[models.Member](db, "members",
			`INSERT INTO members (name, position, contact, image_url)
			 VALUES (:name, :position, :contact, :image_url)
			 RETURNING *`),
		Programme: NewResourceRepository[models.Programme](db, "programmes",
			`INSERT INTO programmes (title, description, image_url)
			 VALUES (:title, :description, :image_url)
			 RETURNING *`),
		Donation: NewDonationRepository(db),
		ContactMessage: NewResourceRepository[models.ContactMessage](db, "contact_messages",
			`INSERT INTO contact_messages (name, email, message)
			 VALUES (:name, :email, :message)
			 RETURNING *`),
		Stats: NewStatsRepository(db),
	}
}
