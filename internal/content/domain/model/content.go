package model

import (
	"time"
)

// DefaultBlogAuthor is the author recorded when a blog post omits one.
const DefaultBlogAuthor = "Smriti"

// Schedule is one row per class-batch offering.
type Schedule struct {
	ID       string `json:"id" bson:"id"`
	FromDay  string `json:"fromDay" bson:"fromDay"`
	ToDay    string `json:"toDay" bson:"toDay"`
	Time     string `json:"time" bson:"time"`
	Batch    string `json:"batch" bson:"batch"`
	Notes    string `json:"notes,omitempty" bson:"notes,omitempty"`
	Whatsapp string `json:"whatsapp,omitempty" bson:"whatsapp,omitempty"`
}

// Fact is a wellness fact shown on the public pages.
type Fact struct {
	ID          string    `json:"id" bson:"id"`
	Title       string    `json:"title" bson:"title"`
	Description string    `json:"description,omitempty" bson:"description,omitempty"`
	Date        time.Time `json:"date" bson:"date"`
}

// Blog is an admin-authored blog post.
type Blog struct {
	ID      string    `json:"id" bson:"id"`
	Title   string    `json:"title" bson:"title"`
	Content string    `json:"content" bson:"content"`
	Author  string    `json:"author" bson:"author"`
	Tags    []string  `json:"tags,omitempty" bson:"tags,omitempty"`
	Image   string    `json:"image,omitempty" bson:"image,omitempty"`
	Date    time.Time `json:"date" bson:"date"`
}

// Asana is a yoga pose entry. The most recently created one is surfaced as
// the "asana of the day" on public pages.
type Asana struct {
	ID          string    `json:"id" bson:"id"`
	Name        string    `json:"name" bson:"name"`
	Benefits    string    `json:"benefits,omitempty" bson:"benefits,omitempty"`
	Description string    `json:"description,omitempty" bson:"description,omitempty"`
	Image       string    `json:"image,omitempty" bson:"image,omitempty"`
	Date        time.Time `json:"date" bson:"date"`
}

// ContentListing is the aggregate read served to the dashboard and the
// public pages. Blogs and asanas are ordered newest-first.
type ContentListing struct {
	Schedule []Schedule `json:"schedule"`
	Facts    []Fact     `json:"facts"`
	Blogs    []Blog     `json:"blogs"`
	Asanas   []Asana    `json:"asanas"`
}
