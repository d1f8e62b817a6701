// Package ingest turns a content directory tree into the curriculum hierarchy.
//
// The tree is expected to look like
//
//	<root>/<grade>/<subject>/<chapter>/<part>/<file>.html
//
// where grade folders are all digits. Chapters may hold HTML files directly
// instead of part folders, and subjects may hold loose HTML files that land in a
// default chapter. Every row is written through get-or-create, so a scan can be
// repeated over the same tree without creating duplicates.
package ingest

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/dante-library/dante/internal/curriculum"
	"github.com/dante-library/dante/internal/locator"
	"github.com/dante-library/dante/internal/naming"
)

var (
	// ErrRootNotFound is returned before any store call when the root is missing.
	ErrRootNotFound = errors.New("root directory not found")
	// ErrRootNotDirectory is returned when the root exists but is a file.
	ErrRootNotDirectory = errors.New("root is not a directory")

	errDryRun = errors.New("dry run")
)

// Scanner walks a content tree and materializes it through a Transactor.
type Scanner struct {
	tx     curriculum.Transactor
	opts   Options
	writer io.Writer
	logger *zap.Logger

	newTag       *color.Color
	existsTag    *color.Color
	collisionTag *color.Color
}

// NewScanner creates a Scanner. Progress lines go to writer; a nil writer or
// logger discards them.
func NewScanner(tx curriculum.Transactor, opts Options, writer io.Writer, logger *zap.Logger) *Scanner {
	if writer == nil {
		writer = io.Discard
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Scanner{
		tx:           tx,
		opts:         opts.withDefaults(),
		writer:       writer,
		logger:       logger,
		newTag:       color.New(color.FgGreen),
		existsTag:    color.New(color.Faint),
		collisionTag: color.New(color.FgYellow, color.Bold),
	}
}

// Scan walks the root directory and writes the hierarchy it finds.
//
// Each grade is written in its own transaction unless the TxScope is TxPerRun.
// A storage error rolls back the current scope and stops the scan; the returned
// Result then holds the totals of the scopes that committed before it.
func (s *Scanner) Scan(ctx context.Context) (*Result, error) {
	result := &Result{DryRun: s.opts.DryRun}

	grades, err := s.gradeDirs(result)
	if err != nil {
		return nil, err
	}
	if len(grades) == 0 {
		fmt.Fprintln(s.writer, "No grade directories found.")
		return result, nil
	}

	if s.opts.TxScope == TxPerRun {
		err := s.inScope(ctx, result, func(ctx context.Context, w *walk) error {
			for _, g := range grades {
				if err := w.grade(ctx, g); err != nil {
					return err
				}
			}
			return nil
		})
		return result, err
	}

	for _, g := range grades {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		err := s.inScope(ctx, result, func(ctx context.Context, w *walk) error {
			return w.grade(ctx, g)
		})
		if err != nil {
			return result, err
		}
	}
	return result, nil
}

// CheckRoot reports ErrRootNotFound or ErrRootNotDirectory for an unusable content root.
func CheckRoot(root string) error {
	info, err := os.Stat(root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrRootNotFound, root)
		}
		return fmt.Errorf("stat root %s: %w", root, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s", ErrRootNotDirectory, root)
	}
	return nil
}

// gradeDirs validates the root and returns its grade folders in numeric order.
func (s *Scanner) gradeDirs(result *Result) ([]entry, error) {
	root := s.opts.RootPath
	if err := CheckRoot(root); err != nil {
		return nil, err
	}

	dirEntries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("read root %s: %w", root, err)
	}

	var grades []entry
	for _, de := range dirEntries {
		p := filepath.Join(root, de.Name())
		fi, err := os.Stat(p)
		if err != nil {
			result.Unreadable++
			s.logger.Warn("cannot stat entry", zap.String("path", p), zap.Error(err))
			continue
		}
		if !fi.IsDir() || !naming.IsNumeric(de.Name()) {
			result.Skipped++
			s.logger.Debug("skip non-grade entry", zap.String("path", p))
			continue
		}
		if len(s.opts.Grades) > 0 && !slices.Contains(s.opts.Grades, de.Name()) {
			continue
		}
		grades = append(grades, entry{name: de.Name(), path: p, info: fi})
	}

	for _, want := range s.opts.Grades {
		if !slices.ContainsFunc(grades, func(e entry) bool { return e.name == want }) {
			s.logger.Warn("requested grade folder not found", zap.String("grade", want), zap.String("root", root))
		}
	}

	slices.SortStableFunc(grades, func(a, b entry) int {
		return naming.CompareNumeric(a.name, b.name)
	})
	return grades, nil
}

// inScope runs fn in one transaction and merges its counters into total once the
// transaction has committed, or rolled back on purpose for a dry run.
func (s *Scanner) inScope(ctx context.Context, total *Result, fn func(ctx context.Context, w *walk) error) error {
	var scoped *Result
	err := s.tx.WithinTx(ctx, func(ctx context.Context, store curriculum.Store) error {
		w := &walk{
			Scanner:  s,
			store:    store,
			result:   &Result{},
			nextPart: make(map[uuid.UUID]int),
		}
		scoped = w.result
		if err := fn(ctx, w); err != nil {
			return err
		}
		if s.opts.DryRun {
			return errDryRun
		}
		return nil
	})
	if err != nil && !errors.Is(err, errDryRun) {
		return err
	}
	total.merge(scoped)
	return nil
}

type entry struct {
	name string
	path string
	info fs.FileInfo
}

func (e entry) isHTML() bool {
	ext := filepath.Ext(e.name)
	return e.info.Mode().IsRegular() && strings.EqualFold(ext, ".html") && len(e.name) > len(ext)
}

func (e entry) stem() string {
	return strings.TrimSuffix(e.name, filepath.Ext(e.name))
}

// walk carries the state of one transaction scope.
type walk struct {
	*Scanner
	store  curriculum.Store
	result *Result
	// nextPart holds the last part number handed out per chapter for NumberingSequential.
	nextPart map[uuid.UUID]int
}

func (w *walk) grade(ctx context.Context, dir entry) error {
	code := dir.name
	grade, created, err := w.store.GetOrCreateGrade(ctx, code, curriculum.GradeDefaults{
		Name: "Grade " + code,
	})
	if err != nil {
		return fmt.Errorf("grade %s: %w", code, err)
	}
	w.result.Grades.add(created)
	w.result.ScannedGrades = append(w.result.ScannedGrades, code)
	w.report(created, "grade", code)

	entries, ok := w.list(dir.path)
	if !ok {
		return nil
	}
	for _, e := range entries {
		if !e.info.IsDir() {
			w.skip(e)
			continue
		}
		if err := w.subject(ctx, grade, e); err != nil {
			return err
		}
	}
	return nil
}

func (w *walk) subject(ctx context.Context, grade *curriculum.Grade, dir entry) error {
	code := naming.NormalizeCode(dir.name)
	if code == "" {
		w.result.Skipped++
		w.logger.Warn("subject folder name has no ASCII letters or digits", zap.String("path", dir.path))
		return nil
	}

	subject, created, err := w.store.GetOrCreateSubject(ctx, code, curriculum.SubjectDefaults{
		Title:    naming.DisplayTitle(dir.name),
		Language: w.opts.DefaultLanguage,
	})
	if err != nil {
		return fmt.Errorf("subject %s: %w", code, err)
	}
	w.result.Subjects.add(created)
	w.report(created, "subject", code)

	lesson, created, err := w.store.GetOrCreateLesson(ctx, grade.ID, subject.ID, curriculum.LessonDefaults{
		Title: fmt.Sprintf("%s - Grade %s", subject.Title, grade.Code),
	})
	if err != nil {
		return fmt.Errorf("lesson %s/%s: %w", grade.Code, code, err)
	}
	w.result.Lessons.add(created)
	w.report(created, "lesson", lesson.Title)

	entries, ok := w.list(dir.path)
	if !ok {
		return nil
	}

	segments := []string{grade.Code, dir.name}
	var looseChapter *curriculum.Chapter
	loose := 0
	for _, e := range entries {
		switch {
		case e.info.IsDir():
			if err := w.chapter(ctx, lesson, segments, e); err != nil {
				return err
			}
		case e.isHTML():
			if looseChapter == nil {
				if looseChapter, err = w.defaultChapter(ctx, lesson); err != nil {
					return err
				}
			}
			loose++
			number := w.partNumber(looseChapter.ID, loose)
			if err := w.filePart(ctx, looseChapter, number, segments, e); err != nil {
				return err
			}
		default:
			w.skip(e)
		}
	}
	return nil
}

// defaultChapter holds the HTML files that sit directly under a subject folder.
func (w *walk) defaultChapter(ctx context.Context, lesson *curriculum.Lesson) (*curriculum.Chapter, error) {
	number := w.opts.ChapterNumberFallback
	chapter, created, err := w.store.GetOrCreateChapter(ctx, lesson.ID, number, curriculum.ChapterDefaults{
		Title: fmt.Sprintf("Chapter %d", number),
	})
	if err != nil {
		return nil, fmt.Errorf("default chapter of %s: %w", lesson.Title, err)
	}
	w.result.Chapters.add(created)
	w.report(created, "chapter", fmt.Sprintf("%s #%d", lesson.Title, number))
	return chapter, nil
}

func (w *walk) chapter(ctx context.Context, lesson *curriculum.Lesson, parent []string, dir entry) error {
	number := naming.NumberOr(dir.name, w.opts.ChapterNumberFallback)
	chapter, created, err := w.store.GetOrCreateChapter(ctx, lesson.ID, number, curriculum.ChapterDefaults{
		Title: naming.DisplayTitle(dir.name),
	})
	if err != nil {
		return fmt.Errorf("chapter %s: %w", dir.path, err)
	}
	w.result.Chapters.add(created)
	w.report(created, "chapter", fmt.Sprintf("%s #%d", lesson.Title, number))

	entries, ok := w.list(dir.path)
	if !ok {
		return nil
	}
	segments := append(slices.Clone(parent), dir.name)

	hasPartDirs := slices.ContainsFunc(entries, func(e entry) bool { return e.info.IsDir() })
	if hasPartDirs {
		for _, e := range entries {
			if !e.info.IsDir() {
				w.skip(e)
				continue
			}
			if err := w.partDir(ctx, chapter, segments, e); err != nil {
				return err
			}
		}
		return nil
	}

	position := 0
	for _, e := range entries {
		if !e.isHTML() {
			w.skip(e)
			continue
		}
		position++
		if err := w.filePart(ctx, chapter, w.partNumber(chapter.ID, position), segments, e); err != nil {
			return err
		}
	}
	return nil
}

func (w *walk) partDir(ctx context.Context, chapter *curriculum.Chapter, parent []string, dir entry) error {
	entries, ok := w.list(dir.path)
	if !ok {
		return nil
	}
	segments := append(slices.Clone(parent), dir.name)

	var files []entry
	for _, e := range entries {
		if e.isHTML() {
			files = append(files, e)
			continue
		}
		w.skip(e)
	}

	base := naming.NumberOr(dir.name, w.opts.PartNumberFallback)
	if len(files) == 0 {
		modified := dir.info.ModTime().UTC().Truncate(time.Microsecond)
		return w.part(ctx, chapter, w.partNumber(chapter.ID, base), curriculum.PartDefaults{
			Title:       dir.name,
			MIME:        curriculum.MIMEHTML,
			ContentType: curriculum.ContentTypeURL,
			ContentURL:  ptr(locator.Build(w.opts.StaticPrefix, segments...)),
			ModifiedAt:  &modified,
		})
	}

	for i, f := range files {
		if err := w.filePart(ctx, chapter, w.partNumber(chapter.ID, base+i), segments, f); err != nil {
			return err
		}
	}
	return nil
}

func (w *walk) filePart(ctx context.Context, chapter *curriculum.Chapter, number int, parent []string, file entry) error {
	segments := append(slices.Clone(parent), file.name)
	size := file.info.Size()
	modified := file.info.ModTime().UTC().Truncate(time.Microsecond)
	return w.part(ctx, chapter, number, curriculum.PartDefaults{
		Title:       file.stem(),
		MIME:        curriculum.MIMEHTML,
		ContentType: curriculum.ContentTypeURL,
		ContentURL:  ptr(locator.Build(w.opts.StaticPrefix, segments...)),
		SizeBytes:   &size,
		ModifiedAt:  &modified,
	})
}

func (w *walk) part(ctx context.Context, chapter *curriculum.Chapter, number int, defaults curriculum.PartDefaults) error {
	want := *defaults.ContentURL
	part, created, err := w.store.GetOrCreatePart(ctx, chapter.ID, number, defaults)
	if err != nil {
		return fmt.Errorf("part %s: %w", want, err)
	}
	w.result.Parts.add(created)

	if !created && part.Locator() != want {
		w.result.Collisions++
		w.collisionTag.Fprintf(w.writer, "[COLLISION]")
		fmt.Fprintf(w.writer, " part #%d of chapter %d holds %s, not %s\n", number, chapter.Number, part.Locator(), want)
		w.logger.Warn("part number already taken",
			zap.Int("chapter", chapter.Number),
			zap.Int("number", number),
			zap.String("existing", part.Locator()),
			zap.String("skipped", want))
		return nil
	}
	w.report(created, "part", want)
	return nil
}

// partNumber returns offsetNumber unless parts are numbered sequentially.
func (w *walk) partNumber(chapterID uuid.UUID, offsetNumber int) int {
	if w.opts.PartNumbering != NumberingSequential {
		return offsetNumber
	}
	w.nextPart[chapterID]++
	return w.nextPart[chapterID]
}

// list returns the entries of dir in name order. Entries that cannot be stat'ed
// are dropped; a directory that cannot be read yields ok=false. Both count as
// unreadable.
func (w *walk) list(dir string) ([]entry, bool) {
	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		w.unreadable(dir, err)
		return nil, false
	}
	entries := make([]entry, 0, len(dirEntries))
	for _, de := range dirEntries {
		p := filepath.Join(dir, de.Name())
		info, err := os.Stat(p)
		if err != nil {
			w.unreadable(p, err)
			continue
		}
		entries = append(entries, entry{name: de.Name(), path: p, info: info})
	}
	return entries, true
}

func (w *walk) unreadable(path string, err error) {
	w.result.Unreadable++
	w.logger.Warn("cannot read entry", zap.String("path", path), zap.Error(err))
}

func (w *walk) skip(e entry) {
	w.result.Skipped++
	w.logger.Debug("skip unclassified entry", zap.String("path", e.path))
}

func (w *walk) report(created bool, kind, label string) {
	if created {
		w.newTag.Fprintf(w.writer, "[NEW]")
	} else {
		w.existsTag.Fprintf(w.writer, "[EXISTS]")
	}
	fmt.Fprintf(w.writer, " %s %s\n", kind, label)
	w.logger.Debug(kind, zap.String("name", label), zap.Bool("created", created))
}

func ptr[T any](v T) *T {
	return &v
}
