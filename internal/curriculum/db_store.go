package curriculum

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/dante-library/dante/internal/database"
)

// DBStore implements Store, Transactor and Reader on MySQL or SQLite.
type DBStore struct {
	db      *sqlx.DB
	q       sqlx.ExtContext
	dialect database.Dialect
	now     func() time.Time
	newID   func() uuid.UUID
}

// NewDBStore creates a DBStore whose dialect follows the db's driver.
func NewDBStore(db *sqlx.DB) *DBStore {
	return &DBStore{
		db:      db,
		q:       db,
		dialect: database.DialectOf(db.DriverName()),
		now:     func() time.Time { return time.Now().UTC().Truncate(time.Microsecond) },
		newID:   uuid.New,
	}
}

// WithinTx runs fn with a DBStore bound to a new transaction.
func (s *DBStore) WithinTx(ctx context.Context, fn func(ctx context.Context, store Store) error) error {
	return database.RunInTx(ctx, s.db, func(ctx context.Context, tx *sqlx.Tx) error {
		txStore := *s
		txStore.q = tx
		return fn(ctx, &txStore)
	})
}

// getOrCreate inserts one row unless its natural key exists, then reads the row
// that holds the key. It reports whether the insert created the row.
func (s *DBStore) getOrCreate(ctx context.Context, table string, columns []string, values []any, dest any, where string, keys ...any) (bool, error) {
	result, err := s.q.ExecContext(ctx, database.BuildInsertIgnore(s.dialect, table, columns), values...)
	if err != nil {
		return false, fmt.Errorf("insert %s: %w", table, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("read %s rows affected: %w", table, err)
	}

	query := "SELECT * FROM " + table + " WHERE " + where + database.ForShare(s.dialect)
	if err := sqlx.GetContext(ctx, s.q, dest, query, keys...); err != nil {
		return false, fmt.Errorf("load %s: %w", table, err)
	}
	return affected == 1, nil
}

func (s *DBStore) GetOrCreateGrade(ctx context.Context, code string, defaults GradeDefaults) (*Grade, bool, error) {
	now := s.now()
	var g Grade
	created, err := s.getOrCreate(ctx, "grades",
		[]string{"id", "code", "name", "created_at", "updated_at"},
		[]any{s.newID(), code, defaults.Name, now, now},
		&g, "code = ?", code)
	if err != nil {
		return nil, false, err
	}
	return &g, created, nil
}

func (s *DBStore) GetOrCreateSubject(ctx context.Context, code string, defaults SubjectDefaults) (*Subject, bool, error) {
	now := s.now()
	var subj Subject
	created, err := s.getOrCreate(ctx, "subjects",
		[]string{"id", "code", "title", "language", "created_at", "updated_at"},
		[]any{s.newID(), code, defaults.Title, defaults.Language, now, now},
		&subj, "code = ?", code)
	if err != nil {
		return nil, false, err
	}
	return &subj, created, nil
}

func (s *DBStore) GetOrCreateLesson(ctx context.Context, gradeID, subjectID uuid.UUID, defaults LessonDefaults) (*Lesson, bool, error) {
	now := s.now()
	var l Lesson
	created, err := s.getOrCreate(ctx, "lessons",
		[]string{"id", "grade_id", "subject_id", "title", "description", "created_at", "updated_at"},
		[]any{s.newID(), gradeID, subjectID, defaults.Title, defaults.Description, now, now},
		&l, "grade_id = ? AND subject_id = ?", gradeID, subjectID)
	if err != nil {
		return nil, false, err
	}
	return &l, created, nil
}

func (s *DBStore) GetOrCreateChapter(ctx context.Context, lessonID uuid.UUID, number int, defaults ChapterDefaults) (*Chapter, bool, error) {
	now := s.now()
	var c Chapter
	created, err := s.getOrCreate(ctx, "chapters",
		[]string{"id", "lesson_id", "number", "title", "summary", "created_at", "updated_at"},
		[]any{s.newID(), lessonID, number, defaults.Title, defaults.Summary, now, now},
		&c, "lesson_id = ? AND number = ?", lessonID, number)
	if err != nil {
		return nil, false, err
	}
	return &c, created, nil
}

func (s *DBStore) GetOrCreatePart(ctx context.Context, chapterID uuid.UUID, number int, defaults PartDefaults) (*Part, bool, error) {
	now := s.now()
	mime := defaults.MIME
	if mime == "" {
		mime = MIMEHTML
	}
	contentType := defaults.ContentType
	if contentType == "" {
		contentType = ContentTypeInline
	}

	var p Part
	created, err := s.getOrCreate(ctx, "parts",
		[]string{"id", "chapter_id", "number", "title", "mime", "content_type", "content_url", "html", "size_bytes", "modified_at", "created_at", "updated_at"},
		[]any{s.newID(), chapterID, number, defaults.Title, mime, contentType, defaults.ContentURL, defaults.HTML, defaults.SizeBytes, defaults.ModifiedAt, now, now},
		&p, "chapter_id = ? AND number = ?", chapterID, number)
	if err != nil {
		return nil, false, err
	}
	return &p, created, nil
}

// ListGrades returns grades in numeric code order.
func (s *DBStore) ListGrades(ctx context.Context) ([]Grade, error) {
	grades := []Grade{}
	if err := sqlx.SelectContext(ctx, s.q, &grades, "SELECT * FROM grades ORDER BY LENGTH(code), code"); err != nil {
		return nil, fmt.Errorf("load grades: %w", err)
	}
	return grades, nil
}

func (s *DBStore) ListSubjects(ctx context.Context) ([]Subject, error) {
	subjects := []Subject{}
	if err := sqlx.SelectContext(ctx, s.q, &subjects, "SELECT * FROM subjects ORDER BY code"); err != nil {
		return nil, fmt.Errorf("load subjects: %w", err)
	}
	return subjects, nil
}

func (s *DBStore) ListLessonsByGrade(ctx context.Context, gradeID uuid.UUID) ([]Lesson, error) {
	lessons := []Lesson{}
	if err := sqlx.SelectContext(ctx, s.q, &lessons, "SELECT * FROM lessons WHERE grade_id = ? ORDER BY title", gradeID); err != nil {
		return nil, fmt.Errorf("load lessons of grade %s: %w", gradeID, err)
	}
	return lessons, nil
}

func (s *DBStore) ListChaptersByLesson(ctx context.Context, lessonID uuid.UUID) ([]Chapter, error) {
	chapters := []Chapter{}
	if err := sqlx.SelectContext(ctx, s.q, &chapters, "SELECT * FROM chapters WHERE lesson_id = ? ORDER BY number", lessonID); err != nil {
		return nil, fmt.Errorf("load chapters of lesson %s: %w", lessonID, err)
	}
	return chapters, nil
}

func (s *DBStore) ListPartsByChapter(ctx context.Context, chapterID uuid.UUID) ([]Part, error) {
	parts := []Part{}
	if err := sqlx.SelectContext(ctx, s.q, &parts, "SELECT * FROM parts WHERE chapter_id = ? ORDER BY number", chapterID); err != nil {
		return nil, fmt.Errorf("load parts of chapter %s: %w", chapterID, err)
	}
	return parts, nil
}

func (s *DBStore) GetLesson(ctx context.Context, id uuid.UUID) (*Lesson, error) {
	var l Lesson
	if err := sqlx.GetContext(ctx, s.q, &l, "SELECT * FROM lessons WHERE id = ?", id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("lesson %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("load lesson %s: %w", id, err)
	}
	return &l, nil
}

func (s *DBStore) GetPart(ctx context.Context, id uuid.UUID) (*Part, error) {
	var p Part
	if err := sqlx.GetContext(ctx, s.q, &p, "SELECT * FROM parts WHERE id = ?", id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("part %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("load part %s: %w", id, err)
	}
	return &p, nil
}

// ListURLParts returns every part that references its content by locator.
func (s *DBStore) ListURLParts(ctx context.Context) ([]Part, error) {
	parts := []Part{}
	if err := sqlx.SelectContext(ctx, s.q, &parts,
		"SELECT * FROM parts WHERE content_type = ? AND content_url IS NOT NULL ORDER BY content_url",
		ContentTypeURL); err != nil {
		return nil, fmt.Errorf("load url parts: %w", err)
	}
	return parts, nil
}

// Totals counts the rows of every entity table.
func (s *DBStore) Totals(ctx context.Context) (Totals, error) {
	var t Totals
	err := sqlx.GetContext(ctx, s.q, &t, `SELECT
		(SELECT COUNT(*) FROM grades) AS grades,
		(SELECT COUNT(*) FROM subjects) AS subjects,
		(SELECT COUNT(*) FROM lessons) AS lessons,
		(SELECT COUNT(*) FROM chapters) AS chapters,
		(SELECT COUNT(*) FROM parts) AS parts`)
	if err != nil {
		return Totals{}, fmt.Errorf("count rows: %w", err)
	}
	return t, nil
}
