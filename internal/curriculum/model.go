// Package curriculum holds the Grade → Subject+Lesson → Chapter → Part hierarchy and its storage.
package curriculum

import (
	"time"

	"github.com/google/uuid"
)

// ContentType tells how a Part carries its content.
type ContentType string

const (
	// ContentTypeURL parts point at content through ContentURL.
	ContentTypeURL ContentType = "url"
	// ContentTypeInline parts carry their HTML in the HTML field.
	ContentTypeInline ContentType = "inline"
)

// MIMEHTML is the MIME type of every ingested part.
const MIMEHTML = "text/html"

// Grade is a numeric curriculum tier such as "10".
type Grade struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Code      string    `db:"code" json:"code"`
	Name      string    `db:"name" json:"name"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// Subject is an area of study shared by all grades.
type Subject struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Code      string    `db:"code" json:"code"`
	Title     string    `db:"title" json:"title"`
	Language  string    `db:"language" json:"language"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// Lesson binds one Subject to one Grade.
type Lesson struct {
	ID          uuid.UUID `db:"id" json:"id"`
	GradeID     uuid.UUID `db:"grade_id" json:"grade"`
	SubjectID   uuid.UUID `db:"subject_id" json:"subject"`
	Title       string    `db:"title" json:"title"`
	Description string    `db:"description" json:"description"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}

// Chapter is an ordered subdivision of a Lesson.
type Chapter struct {
	ID        uuid.UUID `db:"id" json:"id"`
	LessonID  uuid.UUID `db:"lesson_id" json:"lesson"`
	Number    int       `db:"number" json:"number"`
	Title     string    `db:"title" json:"title"`
	Summary   string    `db:"summary" json:"summary"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// Part is the smallest content unit of a Chapter.
// SizeBytes and ModifiedAt are nil when the source had nothing to report.
type Part struct {
	ID          uuid.UUID   `db:"id" json:"id"`
	ChapterID   uuid.UUID   `db:"chapter_id" json:"chapter"`
	Number      int         `db:"number" json:"number"`
	Title       string      `db:"title" json:"title"`
	MIME        string      `db:"mime" json:"mime"`
	ContentType ContentType `db:"content_type" json:"content_type"`
	ContentURL  *string     `db:"content_url" json:"content_url"`
	HTML        string      `db:"html" json:"html"`
	SizeBytes   *int64      `db:"size_bytes" json:"size_bytes"`
	ModifiedAt  *time.Time  `db:"modified_at" json:"modified_at"`
	CreatedAt   time.Time   `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time   `db:"updated_at" json:"updated_at"`
}

// Locator returns the content URL, or "" for inline parts.
func (p Part) Locator() string {
	if p.ContentURL == nil {
		return ""
	}
	return *p.ContentURL
}

// HasContent reports whether the part can be served: a URL part needs a locator,
// an inline part needs a body.
func (p Part) HasContent() bool {
	if p.ContentType == ContentTypeURL {
		return p.Locator() != ""
	}
	return p.HTML != ""
}
