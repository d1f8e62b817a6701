package curriculum

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

//go:generate mockgen -source=store.go -destination=../mocks/curriculum/mock_store.go -package=mock_curriculum

// ErrNotFound is returned when a lookup by identifier matches no row.
var ErrNotFound = errors.New("not found")

// GradeDefaults are written only when the grade is created.
type GradeDefaults struct {
	Name string
}

type SubjectDefaults struct {
	Title    string
	Language string
}

type LessonDefaults struct {
	Title       string
	Description string
}

type ChapterDefaults struct {
	Title   string
	Summary string
}

type PartDefaults struct {
	Title       string
	MIME        string
	ContentType ContentType
	ContentURL  *string
	HTML        string
	SizeBytes   *int64
	ModifiedAt  *time.Time
}

// Store is the mutation surface used by ingestion. Every method looks a row up by
// its natural key and creates it from the defaults when it is missing; an existing
// row is returned untouched. The boolean reports whether this call created the row.
// Concurrent callers racing on the same key get exactly one row.
type Store interface {
	GetOrCreateGrade(ctx context.Context, code string, defaults GradeDefaults) (*Grade, bool, error)
	GetOrCreateSubject(ctx context.Context, code string, defaults SubjectDefaults) (*Subject, bool, error)
	GetOrCreateLesson(ctx context.Context, gradeID, subjectID uuid.UUID, defaults LessonDefaults) (*Lesson, bool, error)
	GetOrCreateChapter(ctx context.Context, lessonID uuid.UUID, number int, defaults ChapterDefaults) (*Chapter, bool, error)
	GetOrCreatePart(ctx context.Context, chapterID uuid.UUID, number int, defaults PartDefaults) (*Part, bool, error)
}

// Transactor runs fn against a Store bound to one transaction.
// The transaction commits when fn returns nil and rolls back otherwise.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context, store Store) error) error
}

// Reader serves the read API.
type Reader interface {
	ListGrades(ctx context.Context) ([]Grade, error)
	ListSubjects(ctx context.Context) ([]Subject, error)
	ListLessonsByGrade(ctx context.Context, gradeID uuid.UUID) ([]Lesson, error)
	ListChaptersByLesson(ctx context.Context, lessonID uuid.UUID) ([]Chapter, error)
	ListPartsByChapter(ctx context.Context, chapterID uuid.UUID) ([]Part, error)
	GetLesson(ctx context.Context, id uuid.UUID) (*Lesson, error)
	GetPart(ctx context.Context, id uuid.UUID) (*Part, error)
	ListURLParts(ctx context.Context) ([]Part, error)
}

// Totals counts the rows of each entity type.
type Totals struct {
	Grades   int `db:"grades" json:"grades" yaml:"grades"`
	Subjects int `db:"subjects" json:"subjects" yaml:"subjects"`
	Lessons  int `db:"lessons" json:"lessons" yaml:"lessons"`
	Chapters int `db:"chapters" json:"chapters" yaml:"chapters"`
	Parts    int `db:"parts" json:"parts" yaml:"parts"`
}
