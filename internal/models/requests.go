package models

// Create request shapes double as named-exec arguments: the db tags feed
// the insert statements directly. Update shapes use pointer fields so an
// omitted field is distinguishable from an explicit zero; Changes reports
// only the supplied columns.

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type CreateUser struct {
	Username string `json:"username" validate:"required,min=3"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role" validate:"omitempty,oneof=user admin"`
}

type CreatePost struct {
	Title    string  `json:"title" db:"title" validate:"required"`
	Content  string  `json:"content" db:"content" validate:"required"`
	Type     string  `json:"type" db:"type" validate:"required,oneof=blog news gallery"`
	ImageURL *string `json:"imageUrl" db:"image_url" validate:"omitempty"`
	AuthorID *int    `json:"-" db:"author_id"`
}

type UpdatePost struct {
	Title    *string `json:"title" validate:"omitempty,min=1"`
	Content  *string `json:"content" validate:"omitempty,min=1"`
	Type     *string `json:"type" validate:"omitempty,oneof=blog news gallery"`
	ImageURL *string `json:"imageUrl"`
}

func (u UpdatePost) Changes() map[string]any {
	changes := map[string]any{}
	if u.Title != nil {
		changes["title"] = *u.Title
	}
	if u.Content != nil {
		changes["content"] = *u.Content
	}
	if u.Type != nil {
		changes["type"] = *u.Type
	}
	if u.ImageURL != nil {
		changes["image_url"] = *u.ImageURL
	}
	return changes
}

type CreateEvent struct {
	Title       string  `json:"title" db:"title" validate:"required"`
	Date        string  `json:"date" db:"date" validate:"required"`
	Location    string  `json:"location" db:"location" validate:"required"`
	Description string  `json:"description" db:"description" validate:"required"`
	ImageURL    *string `json:"imageUrl" db:"image_url" validate:"omitempty"`
}

type UpdateEvent struct {
	Title       *string `json:"title" validate:"omitempty,min=1"`
	Date        *string `json:"date" validate:"omitempty,min=1"`
	Location    *string `json:"location" validate:"omitempty,min=1"`
	Description *string `json:"description" validate:"omitempty,min=1"`
	ImageURL    *string `json:"imageUrl"`
}

func (u UpdateEvent) Changes() map[string]any {
	changes := map[string]any{}
	if u.Title != nil {
		changes["title"] = *u.Title
	}
	if u.Date != nil {
		changes["date"] = *u.Date
	}
	if u.Location != nil {
		changes["location"] = *u.Location
	}
	if u.Description != nil {
		changes["description"] = *u.Description
	}
	if u.ImageURL != nil {
		changes["image_url"] = *u.ImageURL
	}
	return changes
}

type CreateMember struct {
	Name     string  `json:"name" db:"name" validate:"required"`
	Position string  `json:"position" db:"position" validate:"required"`
	Contact  string  `json:"contact" db:"contact" validate:"required"`
	ImageURL *string `json:"imageUrl" db:"image_url" validate:"omitempty"`
}

type UpdateMember struct {
	Name     *string `json:"name" validate:"omitempty,min=1"`
	Position *string `json:"position" validate:"omitempty,min=1"`
	Contact  *string `json:"contact" validate:"omitempty,min=1"`
	ImageURL *string `json:"imageUrl"`
}

func (u UpdateMember) Changes() map[string]any {
	changes := map[string]any{}
	if u.Name != nil {
		changes["name"] = *u.Name
	}
	if u.Position != nil {
		changes["position"] = *u.Position
	}
	if u.Contact != nil {
		changes["contact"] = *u.Contact
	}
	if u.ImageURL != nil {
		changes["image_url"] = *u.ImageURL
	}
	return changes
}

type CreateProgramme struct {
	Title       string  `json:"title" db:"title" validate:"required"`
	Description string  `json:"description" db:"description" validate:"required"`
	ImageURL    *string `json:"imageUrl" db:"image_url" validate:"omitempty"`
}

type UpdateProgramme struct {
	Title       *string `json:"title" validate:"omitempty,min=1"`
	Description *string `json:"description" validate:"omitempty,min=1"`
	ImageURL    *string `json:"imageUrl"`
}

func (u UpdateProgramme) Changes() map[string]any {
	changes := map[string]any{}
	if u.Title != nil {
		changes["title"] = *u.Title
	}
	if u.Description != nil {
		changes["description"] = *u.Description
	}
	if u.ImageURL != nil {
		changes["image_url"] = *u.ImageURL
	}
	return changes
}

type CreateDonation struct {
	DonorName     string  `json:"donorName" db:"donor_name" validate:"required"`
	Email         string  `json:"email" db:"email" validate:"required,email"`
	Amount        int     `json:"amount" db:"amount" validate:"required,gt=0"`
	TransactionID *string `json:"transactionId" db:"transaction_id" validate:"omitempty"`

	// Status is server-assigned, never accepted from the client.
	Status string `json:"-" db:"status"`
}

type UpdateDonation struct {
	DonorName     *string `json:"donorName" validate:"omitempty,min=1"`
	Email         *string `json:"email" validate:"omitempty,email"`
	Amount        *int    `json:"amount" validate:"omitempty,gt=0"`
	TransactionID *string `json:"transactionId"`
}

func (u UpdateDonation) Changes() map[string]any {
	changes := map[string]any{}
	if u.DonorName != nil {
		changes["donor_name"] = *u.DonorName
	}
	if u.Email != nil {
		changes["email"] = *u.Email
	}
	if u.Amount != nil {
		changes["amount"] = *u.Amount
	}
	if u.TransactionID != nil {
		changes["transaction_id"] = *u.TransactionID
	}
	return changes
}

// NoPatch is the update shape for append-only entities. No update route
// is registered for them, so Changes is never reached in practice.
type NoPatch struct{}

func (NoPatch) Changes() map[string]any { return map[string]any{} }

type CreateContactMessage struct {
	Name    string `json:"name" db:"name" validate:"required"`
	Email   string `json:"email" db:"email" validate:"required,email"`
	Message string `json:"message" db:"message" validate:"required"`
}
