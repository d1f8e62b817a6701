// Package locatorcheck verifies that the locators of URL parts resolve against a
// static content host.
package locatorcheck

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/avast/retry-go"
	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/dante-library/dante/internal/curriculum"
)

// DefaultRetries is the number of extra attempts for a 5xx or 429 answer.
const DefaultRetries = 2

// PartLister lists the parts whose content lives behind a locator.
type PartLister interface {
	ListURLParts(ctx context.Context) ([]curriculum.Part, error)
}

// Failure is a locator that did not answer with a 2xx or 3xx status.
type Failure struct {
	PartID  uuid.UUID `json:"part_id" yaml:"part_id"`
	Locator string    `json:"locator" yaml:"locator"`
	Status  int       `json:"status,omitempty" yaml:"status,omitempty"`
	Reason  string    `json:"reason" yaml:"reason"`
}

type Report struct {
	Checked  int       `json:"checked" yaml:"checked"`
	Failures []Failure `json:"failures" yaml:"failures"`
}

// OK reports whether every checked locator resolved.
func (r *Report) OK() bool { return len(r.Failures) == 0 }

func (r *Report) Write(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "Checked %d locators, %d unresolvable\n", r.Checked, len(r.Failures)); err != nil {
		return err
	}
	for _, f := range r.Failures {
		if _, err := fmt.Fprintf(w, "  %s  %s  %s\n", f.PartID, f.Locator, f.Reason); err != nil {
			return err
		}
	}
	return nil
}

// statusError is an unexpected HTTP status.
type statusError struct {
	status int
}

func (e *statusError) Error() string {
	return fmt.Sprintf("%d %s", e.status, http.StatusText(e.status))
}

func retryable(status int) bool {
	return status == http.StatusTooManyRequests || status >= http.StatusInternalServerError
}

type Checker struct {
	parts   PartLister
	client  *resty.Client
	retries uint
	delay   time.Duration
	logger  *zap.Logger
}

// NewChecker creates a Checker that sends HEAD requests to baseURL joined with each locator.
func NewChecker(parts PartLister, baseURL string, retries uint, logger *zap.Logger) *Checker {
	if logger == nil {
		logger = zap.NewNop()
	}
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(10*time.Second).
		SetHeader("User-Agent", "dante-locatorcheck")
	return &Checker{
		parts:   parts,
		client:  client,
		retries: retries,
		delay:   500 * time.Millisecond,
		logger:  logger,
	}
}

// Check requests every URL part's locator once, retrying transient failures.
// Only listing the parts can fail the call; unresolvable locators go into the report.
func (c *Checker) Check(ctx context.Context) (*Report, error) {
	parts, err := c.parts.ListURLParts(ctx)
	if err != nil {
		return nil, fmt.Errorf("list url parts: %w", err)
	}

	report := &Report{Failures: []Failure{}}
	for _, p := range parts {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		report.Checked++
		if err := c.head(ctx, p.Locator()); err != nil {
			f := Failure{PartID: p.ID, Locator: p.Locator(), Reason: err.Error()}
			var se *statusError
			if errors.As(err, &se) {
				f.Status = se.status
			}
			c.logger.Warn("locator does not resolve",
				zap.String("part", p.ID.String()),
				zap.String("locator", f.Locator),
				zap.Error(err))
			report.Failures = append(report.Failures, f)
		}
	}
	return report, nil
}

func (c *Checker) head(ctx context.Context, locator string) error {
	return retry.Do(
		func() error {
			res, err := c.client.R().SetContext(ctx).Head(locator)
			if err != nil {
				if ctx.Err() != nil {
					return retry.Unrecoverable(ctx.Err())
				}
				return err
			}
			status := res.StatusCode()
			if status < http.StatusBadRequest {
				return nil
			}
			if retryable(status) {
				c.logger.Debug("retrying locator", zap.String("locator", locator), zap.Int("status", status))
				return &statusError{status: status}
			}
			return retry.Unrecoverable(&statusError{status: status})
		},
		retry.Context(ctx),
		retry.Attempts(c.retries+1),
		retry.Delay(c.delay),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(true),
	)
}
