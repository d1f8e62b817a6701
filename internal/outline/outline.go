// Package outline renders a lesson's chapters and parts as a Markdown document,
// optionally converted to PDF.
package outline

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/mandolyte/mdtopdf"

	"github.com/dante-library/dante/internal/curriculum"
)

// Outline is a lesson with its chapters and their parts in number order.
type Outline struct {
	Lesson   curriculum.Lesson
	Chapters []Chapter
}

type Chapter struct {
	curriculum.Chapter
	Parts []curriculum.Part
}

// Load reads the lesson id and everything below it from reader.
func Load(ctx context.Context, reader curriculum.Reader, id uuid.UUID) (*Outline, error) {
	lesson, err := reader.GetLesson(ctx, id)
	if err != nil {
		return nil, err
	}
	chapters, err := reader.ListChaptersByLesson(ctx, id)
	if err != nil {
		return nil, err
	}

	o := &Outline{Lesson: *lesson, Chapters: make([]Chapter, 0, len(chapters))}
	for _, ch := range chapters {
		parts, err := reader.ListPartsByChapter(ctx, ch.ID)
		if err != nil {
			return nil, err
		}
		o.Chapters = append(o.Chapters, Chapter{Chapter: ch, Parts: parts})
	}
	return o, nil
}

// Markdown renders the outline.
func (o *Outline) Markdown() []byte {
	var b bytes.Buffer
	fmt.Fprintf(&b, "# %s\n\n", o.Lesson.Title)
	if desc := strings.TrimSpace(o.Lesson.Description); desc != "" {
		fmt.Fprintf(&b, "%s\n\n", desc)
	}
	if len(o.Chapters) == 0 {
		b.WriteString("_No chapters._\n")
		return b.Bytes()
	}

	for _, ch := range o.Chapters {
		fmt.Fprintf(&b, "## Chapter %d: %s\n\n", ch.Number, ch.Title)
		if len(ch.Parts) == 0 {
			b.WriteString("_No parts._\n\n")
			continue
		}
		for _, p := range ch.Parts {
			fmt.Fprintf(&b, "- Part %d: %s (%s)\n", p.Number, p.Title, source(p))
		}
		b.WriteString("\n")
	}
	return b.Bytes()
}

func source(p curriculum.Part) string {
	if p.ContentType == curriculum.ContentTypeURL {
		if p.Locator() == "" {
			return "missing locator"
		}
		return "`" + p.Locator() + "`"
	}
	return fmt.Sprintf("inline, %d bytes", len(p.HTML))
}

// FileName is the base name, without extension, of the files Write produces.
func (o *Outline) FileName() string {
	return "lesson-" + o.Lesson.ID.String()
}

// Write stores the Markdown outline in dir and, when withPDF is set, a PDF next to it.
// It returns the paths it wrote.
func (o *Outline) Write(dir string, withPDF bool) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create output directory %s: %w", dir, err)
	}

	mdPath := filepath.Join(dir, o.FileName()+".md")
	content := o.Markdown()
	if err := os.WriteFile(mdPath, content, 0o644); err != nil {
		return nil, fmt.Errorf("write %s: %w", mdPath, err)
	}
	written := []string{mdPath}
	if !withPDF {
		return written, nil
	}

	pdfPath := filepath.Join(dir, o.FileName()+".pdf")
	renderer := mdtopdf.NewPdfRenderer("P", "A4", pdfPath, "", nil, mdtopdf.LIGHT)
	if err := renderer.Process(content); err != nil {
		return written, fmt.Errorf("render %s: %w", pdfPath, err)
	}
	return append(written, pdfPath), nil
}
