// Package preview scans a content tree into a throwaway in-memory database and
// renders the hierarchy it would produce.
package preview

import (
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/dante-library/dante/internal/curriculum"
	"github.com/dante-library/dante/internal/database"
	"github.com/dante-library/dante/internal/ingest"
)

type Format string

const (
	FormatText Format = "text"
	FormatYAML Format = "yaml"
)

var _ pflag.Value = (*Format)(nil)

func (f Format) String() string { return string(f) }

func (f *Format) Set(v string) error {
	switch Format(v) {
	case FormatText, FormatYAML:
		*f = Format(v)
		return nil
	}
	return fmt.Errorf("must be one of %q or %q", FormatText, FormatYAML)
}

func (f *Format) Type() string { return "format" }

type Tree struct {
	Grades  []Grade        `yaml:"grades"`
	Summary *ingest.Result `yaml:"-"`
}

type Grade struct {
	Code    string   `yaml:"code"`
	Lessons []Lesson `yaml:"lessons"`
}

type Lesson struct {
	Title    string    `yaml:"title"`
	Subject  string    `yaml:"subject"`
	Chapters []Chapter `yaml:"chapters"`
}

type Chapter struct {
	Number int    `yaml:"number"`
	Title  string `yaml:"title"`
	Parts  []Part `yaml:"parts"`
}

type Part struct {
	Number    int    `yaml:"number"`
	Title     string `yaml:"title"`
	Locator   string `yaml:"locator"`
	SizeBytes *int64 `yaml:"size_bytes,omitempty"`
}

// Scan ingests opts.RootPath into a fresh in-memory SQLite database and reads the
// result back. opts.DryRun is ignored.
func Scan(ctx context.Context, opts ingest.Options, logger *zap.Logger) (*Tree, error) {
	db, err := database.OpenSQLite(":memory:")
	if err != nil {
		return nil, err
	}
	defer func() { _ = db.Close() }()
	if _, err := database.Migrate(ctx, db); err != nil {
		return nil, err
	}

	store := curriculum.NewDBStore(db)
	opts.DryRun = false
	result, err := ingest.NewScanner(store, opts, nil, logger).Scan(ctx)
	if err != nil {
		return nil, err
	}

	tree, err := Load(ctx, store)
	if err != nil {
		return nil, err
	}
	tree.Summary = result
	return tree, nil
}

// Load reads the whole hierarchy from reader.
func Load(ctx context.Context, reader curriculum.Reader) (*Tree, error) {
	subjects, err := reader.ListSubjects(ctx)
	if err != nil {
		return nil, err
	}
	subjectCodes := make(map[uuid.UUID]string, len(subjects))
	for _, s := range subjects {
		subjectCodes[s.ID] = s.Code
	}

	grades, err := reader.ListGrades(ctx)
	if err != nil {
		return nil, err
	}
	tree := &Tree{Grades: make([]Grade, 0, len(grades))}
	for _, g := range grades {
		lessons, err := reader.ListLessonsByGrade(ctx, g.ID)
		if err != nil {
			return nil, err
		}
		grade := Grade{Code: g.Code, Lessons: make([]Lesson, 0, len(lessons))}
		for _, l := range lessons {
			lesson, err := loadLesson(ctx, reader, l)
			if err != nil {
				return nil, err
			}
			lesson.Subject = subjectCodes[l.SubjectID]
			grade.Lessons = append(grade.Lessons, *lesson)
		}
		tree.Grades = append(tree.Grades, grade)
	}
	return tree, nil
}

func loadLesson(ctx context.Context, reader curriculum.Reader, l curriculum.Lesson) (*Lesson, error) {
	chapters, err := reader.ListChaptersByLesson(ctx, l.ID)
	if err != nil {
		return nil, err
	}
	lesson := &Lesson{Title: l.Title, Chapters: make([]Chapter, 0, len(chapters))}
	for _, c := range chapters {
		parts, err := reader.ListPartsByChapter(ctx, c.ID)
		if err != nil {
			return nil, err
		}
		chapter := Chapter{Number: c.Number, Title: c.Title, Parts: make([]Part, 0, len(parts))}
		for _, p := range parts {
			chapter.Parts = append(chapter.Parts, Part{
				Number:    p.Number,
				Title:     p.Title,
				Locator:   p.Locator(),
				SizeBytes: p.SizeBytes,
			})
		}
		lesson.Chapters = append(lesson.Chapters, chapter)
	}
	return lesson, nil
}

// Write renders the tree in format.
func (t *Tree) Write(w io.Writer, format Format) error {
	if format == FormatYAML {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(t); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	}
	return t.writeText(w)
}

func (t *Tree) writeText(w io.Writer) error {
	if len(t.Grades) == 0 {
		_, err := fmt.Fprintln(w, "No grades found.")
		return err
	}
	pw := &printer{w: w}
	for _, g := range t.Grades {
		pw.printf("Grade %s\n", g.Code)
		for _, l := range g.Lessons {
			pw.printf("  %s [%s]\n", l.Title, l.Subject)
			for _, c := range l.Chapters {
				pw.printf("    Chapter %d: %s\n", c.Number, c.Title)
				for _, p := range c.Parts {
					pw.printf("      Part %d: %s  %s\n", p.Number, p.Title, p.Locator)
				}
			}
		}
	}
	return pw.err
}

// printer keeps the first write error so a render can check it once.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}
