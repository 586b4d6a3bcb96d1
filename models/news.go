package models

import (
	"time"
)

// DateLayout is the only accepted textual form of a News date.
const DateLayout = "2006-01-02"

type News struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"uniqueIndex;not null"`
	Description string    `json:"description" gorm:"type:text;not null"`
	Date        time.Time `json:"date" gorm:"type:date;not null"`
	Slug        string    `json:"slug" gorm:"uniqueIndex;not null"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Link is computed at read time and never stored.
	Link string `json:"link,omitempty" gorm:"-"`
}

func (News) TableName() string {
	return "news"
}

// FormattedDate renders Date in DateLayout.
func (n News) FormattedDate() string {
	return n.Date.Format(DateLayout)
}

// AddPostInput carries the add-post arguments. A nil field was not supplied.
type AddPostInput struct {
	Title       *string
	Description *string
	Date        *string
}

type CreateNewsRequest struct {
	Title       string `json:"title" example:"Launch"`
	Description string `json:"description" example:"We shipped v1"`
	Date        string `json:"date" example:"2023-05-01"`
}

// Input converts the request into workflow input. Every field counts as supplied.
func (r CreateNewsRequest) Input() AddPostInput {
	return AddPostInput{
		Title:       &r.Title,
		Description: &r.Description,
		Date:        &r.Date,
	}
}

type NewsResponse struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Date        string `json:"date"`
	Slug        string `json:"slug"`
	Link        string `json:"link"`
}

func NewNewsResponse(n News) NewsResponse {
	return NewsResponse{
		ID:          n.ID,
		Name:        n.Name,
		Description: n.Description,
		Date:        n.FormattedDate(),
		Slug:        n.Slug,
		Link:        n.Link,
	}
}

func NewNewsResponses(items []News) []NewsResponse {
	out := make([]NewsResponse, 0, len(items))
	for _, n := range items {
		out = append(out, NewNewsResponse(n))
	}
	return out
}
