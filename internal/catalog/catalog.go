// Package catalog serves read-only views of the curriculum, cached when Redis is available.
package catalog

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/dante-library/dante/internal/cache"
	"github.com/dante-library/dante/internal/curriculum"
)

// Service answers the read API from a Reader through a Cache.
// Cache failures are logged and the Reader is used instead.
type Service struct {
	reader curriculum.Reader
	cache  cache.Cache
	logger *zap.Logger
}

func NewService(reader curriculum.Reader, c cache.Cache, logger *zap.Logger) *Service {
	if c == nil {
		c = cache.Noop{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{reader: reader, cache: c, logger: logger}
}

func (s *Service) Grades(ctx context.Context) ([]curriculum.Grade, error) {
	return cached(ctx, s, "grades", s.reader.ListGrades)
}

func (s *Service) Subjects(ctx context.Context) ([]curriculum.Subject, error) {
	return cached(ctx, s, "subjects", s.reader.ListSubjects)
}

func (s *Service) LessonsByGrade(ctx context.Context, gradeID uuid.UUID) ([]curriculum.Lesson, error) {
	return cached(ctx, s, "grade:"+gradeID.String()+":lessons", func(ctx context.Context) ([]curriculum.Lesson, error) {
		return s.reader.ListLessonsByGrade(ctx, gradeID)
	})
}

func (s *Service) ChaptersByLesson(ctx context.Context, lessonID uuid.UUID) ([]curriculum.Chapter, error) {
	return cached(ctx, s, "lesson:"+lessonID.String()+":chapters", func(ctx context.Context) ([]curriculum.Chapter, error) {
		return s.reader.ListChaptersByLesson(ctx, lessonID)
	})
}

func (s *Service) PartsByChapter(ctx context.Context, chapterID uuid.UUID) ([]curriculum.Part, error) {
	return cached(ctx, s, "chapter:"+chapterID.String()+":parts", func(ctx context.Context) ([]curriculum.Part, error) {
		return s.reader.ListPartsByChapter(ctx, chapterID)
	})
}

// Part returns one part; curriculum.ErrNotFound is passed through and never cached.
func (s *Service) Part(ctx context.Context, id uuid.UUID) (*curriculum.Part, error) {
	return cached(ctx, s, "part:"+id.String(), func(ctx context.Context) (*curriculum.Part, error) {
		return s.reader.GetPart(ctx, id)
	})
}

// Invalidate drops every cached view, typically after an ingest committed rows.
func (s *Service) Invalidate(ctx context.Context) error {
	if err := s.cache.Invalidate(ctx); err != nil {
		return fmt.Errorf("invalidate catalog cache: %w", err)
	}
	return nil
}

func cached[T any](ctx context.Context, s *Service, key string, load func(ctx context.Context) (T, error)) (T, error) {
	var value T
	hit, err := s.cache.Get(ctx, key, &value)
	if err != nil {
		s.logger.Warn("catalog cache read failed", zap.String("key", key), zap.Error(err))
	}
	if hit {
		return value, nil
	}

	value, err = load(ctx)
	if err != nil {
		var zero T
		return zero, err
	}
	if err := s.cache.Set(ctx, key, value); err != nil {
		s.logger.Warn("catalog cache write failed", zap.String("key", key), zap.Error(err))
	}
	return value, nil
}
