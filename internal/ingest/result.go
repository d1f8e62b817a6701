package ingest

import (
	"fmt"
	"io"
)

// Tally counts rows a scan created versus rows it found already present.
type Tally struct {
	New      int `json:"new" yaml:"new"`
	Existing int `json:"existing" yaml:"existing"`
}

func (t *Tally) add(created bool) {
	if created {
		t.New++
		return
	}
	t.Existing++
}

func (t Tally) String() string {
	return fmt.Sprintf("%d new, %d existing", t.New, t.Existing)
}

// Result summarizes a scan.
type Result struct {
	Grades   Tally `json:"grades" yaml:"grades"`
	Subjects Tally `json:"subjects" yaml:"subjects"`
	Lessons  Tally `json:"lessons" yaml:"lessons"`
	Chapters Tally `json:"chapters" yaml:"chapters"`
	Parts    Tally `json:"parts" yaml:"parts"`
	// Collisions counts parts whose number was already held by a part with a
	// different locator. They are also counted in Parts.Existing.
	Collisions int `json:"collisions" yaml:"collisions"`
	// Skipped counts entries that match no classification rule.
	Skipped int `json:"skipped" yaml:"skipped"`
	// Unreadable counts directories and files that could not be listed or stat'ed.
	Unreadable int `json:"unreadable" yaml:"unreadable"`
	// ScannedGrades lists grade codes in the order they were scanned.
	ScannedGrades []string `json:"scanned_grades" yaml:"scanned_grades"`
	DryRun        bool     `json:"dry_run" yaml:"dry_run"`
}

func (r *Result) merge(o *Result) {
	r.Grades.New += o.Grades.New
	r.Grades.Existing += o.Grades.Existing
	r.Subjects.New += o.Subjects.New
	r.Subjects.Existing += o.Subjects.Existing
	r.Lessons.New += o.Lessons.New
	r.Lessons.Existing += o.Lessons.Existing
	r.Chapters.New += o.Chapters.New
	r.Chapters.Existing += o.Chapters.Existing
	r.Parts.New += o.Parts.New
	r.Parts.Existing += o.Parts.Existing
	r.Collisions += o.Collisions
	r.Skipped += o.Skipped
	r.Unreadable += o.Unreadable
	r.ScannedGrades = append(r.ScannedGrades, o.ScannedGrades...)
}

// Created reports whether the scan created any row.
func (r *Result) Created() bool {
	return r.Grades.New+r.Subjects.New+r.Lessons.New+r.Chapters.New+r.Parts.New > 0
}

// WriteSummary prints the summary block shown at the end of an ingest run.
func (r *Result) WriteSummary(w io.Writer) {
	title := "Ingest Summary:"
	if r.DryRun {
		title = "Ingest Summary (dry run, nothing was written):"
	}
	fmt.Fprintf(w, "\n%s\n", title)
	fmt.Fprintf(w, "  Grades:     %s\n", r.Grades)
	fmt.Fprintf(w, "  Subjects:   %s\n", r.Subjects)
	fmt.Fprintf(w, "  Lessons:    %s\n", r.Lessons)
	fmt.Fprintf(w, "  Chapters:   %s\n", r.Chapters)
	fmt.Fprintf(w, "  Parts:      %s\n", r.Parts)
	fmt.Fprintf(w, "  Collisions: %d\n", r.Collisions)
	fmt.Fprintf(w, "  Skipped:    %d\n", r.Skipped)
	fmt.Fprintf(w, "  Unreadable: %d\n", r.Unreadable)
}
