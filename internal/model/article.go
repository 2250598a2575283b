package model

import "time"

const (
	DefaultArticleAuthor   = "Legal Awareness"
	DefaultArticleReadTime = 5
)

// BlogArticle is a read-only entry of the blog catalog.
type BlogArticle struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Excerpt       string    `json:"excerpt"`
	Content       string    `json:"content"`
	Category      string    `json:"category"`
	Author        string    `json:"author"`
	PublishedDate time.Time `json:"published_date"`
	ReadTime      int       `json:"read_time"` // minutes
}

// ApplyDefaults fills the fields that records written by other tools may omit.
func (a *BlogArticle) ApplyDefaults() {
	if a.Author == "" {
		a.Author = DefaultArticleAuthor
	}
	if a.ReadTime <= 0 {
		a.ReadTime = DefaultArticleReadTime
	}
}
