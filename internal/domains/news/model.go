package news

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"ralhum-backend/internal/lifecycle"
)

// News is a post on the announcements and sports news feed. Status follows
// the one-way draft -> published -> archived machine.
type News struct {
	ID             uuid.UUID            `json:"id"`
	PostTitle      string               `json:"postTitle"`
	Slug           string               `json:"slug"`
	PostExcerpt    string               `json:"postExcerpt"`
	PostContent    string               `json:"postContent"`
	FeaturedImage  *string              `json:"featuredImage"`
	Author         string               `json:"author"`
	PublishDate    *time.Time           `json:"publishDate"`
	Categories     pq.StringArray       `json:"categories"`
	Tags           pq.StringArray       `json:"tags"`
	ReadingTime    int                  `json:"readingTime"`
	Featured       bool                 `json:"featured"`
	Status         lifecycle.NewsStatus `json:"status"`
	SEOTitle       string               `json:"seoTitle"`
	SEODescription string               `json:"seoDescription"`
	CreatedAt      time.Time            `json:"createdAt"`
	UpdatedAt      time.Time            `json:"updatedAt"`
}
