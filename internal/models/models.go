package models

import (
	"time"
)

type User struct {
	ID           int       `json:"id" db:"id"`
	Username     string    `json:"username" db:"username"`
	PasswordHash string    `json:"-" db:"password_hash"`
	Role         string    `json:"role" db:"role"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
}

// Identity is the public view of an authenticated user. It is what
// login returns and what handlers see in the request context.
type Identity struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

type Session struct {
	SessionID string    `db:"session_id"`
	UserID    int       `db:"user_id"`
	ExpiresAt time.Time `db:"expires_at"`
	CreatedAt time.Time `db:"created_at"`
}

type Post struct {
	ID        int       `json:"id" db:"id"`
	Title     string    `json:"title" db:"title"`
	Content   string    `json:"content" db:"content"`
	Type      string    `json:"type" db:"type"`
	ImageURL  *string   `json:"imageUrl" db:"image_url"`
	AuthorID  *int      `json:"authorId" db:"author_id"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

type Event struct {
	ID          int       `json:"id" db:"id"`
	Title       string    `json:"title" db:"title"`
	Date        string    `json:"date" db:"date"`
	Location    string    `json:"location" db:"location"`
	Description string    `json:"description" db:"description"`
	ImageURL    *string   `json:"imageUrl" db:"image_url"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
}

type Member struct {
	ID        int       `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Position  string    `json:"position" db:"position"`
	Contact   string    `json:"contact" db:"contact"`
	ImageURL  *string   `json:"imageUrl" db:"image_url"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

type Programme struct {
	ID          int       `json:"id" db:"id"`
	Title       string    `json:"title" db:"title"`
	Description string    `json:"description" db:"description"`
	ImageURL    *string   `json:"imageUrl" db:"image_url"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
}

type Donation struct {
	ID            int       `json:"id" db:"id"`
	DonorName     string    `json:"donorName" db:"donor_name"`
	Email         string    `json:"email" db:"email"`
	Amount        int       `json:"amount" db:"amount"`
	Status        string    `json:"status" db:"status"`
	TransactionID *string   `json:"transactionId" db:"transaction_id"`
	CreatedAt     time.Time `json:"createdAt" db:"created_at"`
}

type ContactMessage struct {
	ID        int       `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Email     string    `json:"email" db:"email"`
	Message   string    `json:"message" db:"message"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

// Stats is the aggregate returned by /api/stats. Counts are computed by
// re-querying, never maintained incrementally.
type Stats struct {
	Posts           int `json:"posts" db:"posts"`
	Events          int `json:"events" db:"events"`
	Members         int `json:"members" db:"members"`
	Programmes      int `json:"programmes" db:"programmes"`
	Donations       int `json:"donations" db:"donations"`
	ContactMessages int `json:"contactMessages" db:"contact_messages"`
	Users           int `json:"users" db:"users"`
	VerifiedAmount  int `json:"verifiedAmount" db:"verified_amount"`
}
