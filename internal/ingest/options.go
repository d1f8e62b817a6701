package ingest

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"

	"github.com/dante-library/dante/internal/locator"
)

var (
	_ pflag.Value = (*PartNumbering)(nil)
	_ pflag.Value = (*TxScope)(nil)
)

// PartNumbering selects how part numbers are derived inside a chapter.
type PartNumbering string

const (
	// NumberingOffset numbers a part directory's files from the directory's ordinal
	// (base + position). Two sibling directories can claim the same number; the
	// second one is reported as a collision.
	NumberingOffset PartNumbering = "offset"
	// NumberingSequential numbers every part by its position among all parts the
	// chapter produced so far, in traversal order.
	NumberingSequential PartNumbering = "sequential"
)

func (p PartNumbering) String() string { return string(p) }

func (p *PartNumbering) Set(v string) error {
	switch PartNumbering(strings.ToLower(v)) {
	case NumberingOffset, NumberingSequential:
		*p = PartNumbering(strings.ToLower(v))
		return nil
	}
	return fmt.Errorf("must be one of %q or %q", NumberingOffset, NumberingSequential)
}

func (p *PartNumbering) Type() string { return "numbering" }

// TxScope selects how much of a scan one transaction covers.
type TxScope string

const (
	TxPerGrade TxScope = "grade"
	TxPerRun   TxScope = "run"
)

func (s TxScope) String() string { return string(s) }

func (s *TxScope) Set(v string) error {
	switch TxScope(strings.ToLower(v)) {
	case TxPerGrade, TxPerRun:
		*s = TxScope(strings.ToLower(v))
		return nil
	}
	return fmt.Errorf("must be one of %q or %q", TxPerGrade, TxPerRun)
}

func (s *TxScope) Type() string { return "scope" }

// Options configures a Scanner. Zero values fall back to the defaults below.
type Options struct {
	RootPath              string
	DefaultLanguage       string
	ChapterNumberFallback int
	// PartNumberFallback is the base ordinal of a part directory without digits.
	PartNumberFallback int
	PartNumbering      PartNumbering
	StaticPrefix       string
	TxScope            TxScope
	// DryRun scans inside transactions that are always rolled back.
	DryRun bool
	// Grades restricts the scan to these grade folder names when non-empty.
	Grades []string
}

const (
	DefaultLanguage              = "fa"
	DefaultChapterNumberFallback = 1
	DefaultPartNumberFallback    = 1
)

func (o Options) withDefaults() Options {
	if o.DefaultLanguage == "" {
		o.DefaultLanguage = DefaultLanguage
	}
	if o.ChapterNumberFallback < 1 {
		o.ChapterNumberFallback = DefaultChapterNumberFallback
	}
	if o.PartNumberFallback < 1 {
		o.PartNumberFallback = DefaultPartNumberFallback
	}
	if o.PartNumbering == "" {
		o.PartNumbering = NumberingOffset
	}
	if o.StaticPrefix == "" {
		o.StaticPrefix = locator.DefaultPrefix
	}
	if o.TxScope == "" {
		o.TxScope = TxPerGrade
	}
	return o
}
