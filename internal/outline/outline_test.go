package outline

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/dante-library/dante/internal/curriculum"
	mock_curriculum "github.com/dante-library/dante/internal/mocks/curriculum"
	"github.com/dante-library/dante/internal/testutil"
)

func strPtr(s string) *string { return &s }

func sampleOutline() *Outline {
	return &Outline{
		Lesson: curriculum.Lesson{
			ID:    uuid.MustParse("0f8e2d4c-6b1a-4c3e-9d7f-5a2b8c4e6f10"),
			Title: "Biology 1 - Grade 10",
		},
		Chapters: []Chapter{
			{
				Chapter: curriculum.Chapter{Number: 1, Title: "Chapter 1"},
				Parts: []curriculum.Part{
					{Number: 1, Title: "Intro", ContentType: curriculum.ContentTypeURL, ContentURL: strPtr("/static/10/Biology_1/Chapter_1/Part_1/Intro.html")},
					{Number: 2, Title: "Notes", ContentType: curriculum.ContentTypeInline, HTML: "<p>hi</p>"},
				},
			},
			{Chapter: curriculum.Chapter{Number: 2, Title: "Cells"}},
		},
	}
}

func TestOutline_Markdown(t *testing.T) {
	tests := []struct {
		name    string
		outline *Outline
		want    string
	}{
		{
			name:    "chapters and parts",
			outline: sampleOutline(),
			want: "# Biology 1 - Grade 10\n\n" +
				"## Chapter 1: Chapter 1\n\n" +
				"- Part 1: Intro (`/static/10/Biology_1/Chapter_1/Part_1/Intro.html`)\n" +
				"- Part 2: Notes (inline, 9 bytes)\n\n" +
				"## Chapter 2: Cells\n\n" +
				"_No parts._\n\n",
		},
		{
			name:    "description and no chapters",
			outline: &Outline{Lesson: curriculum.Lesson{Title: "Physics - Grade 11", Description: " Mechanics "}},
			want:    "# Physics - Grade 11\n\nMechanics\n\n_No chapters._\n",
		},
		{
			name: "url part without a locator",
			outline: &Outline{
				Lesson: curriculum.Lesson{Title: "Art - Grade 7"},
				Chapters: []Chapter{{
					Chapter: curriculum.Chapter{Number: 3, Title: "Colour"},
					Parts:   []curriculum.Part{{Number: 1, Title: "Wheel", ContentType: curriculum.ContentTypeURL}},
				}},
			},
			want: "# Art - Grade 7\n\n## Chapter 3: Colour\n\n- Part 1: Wheel (missing locator)\n\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, string(tt.outline.Markdown()))
		})
	}
}

func TestLoad(t *testing.T) {
	ctx := context.Background()
	store := testutil.NewSQLiteStore(t)

	grade, _, err := store.GetOrCreateGrade(ctx, "10", curriculum.GradeDefaults{Name: "Grade 10"})
	require.NoError(t, err)
	subject, _, err := store.GetOrCreateSubject(ctx, "biology_1", curriculum.SubjectDefaults{Title: "Biology 1", Language: "fa"})
	require.NoError(t, err)
	lesson, _, err := store.GetOrCreateLesson(ctx, grade.ID, subject.ID, curriculum.LessonDefaults{Title: "Biology 1 - Grade 10"})
	require.NoError(t, err)
	ch2, _, err := store.GetOrCreateChapter(ctx, lesson.ID, 2, curriculum.ChapterDefaults{Title: "Chapter 2"})
	require.NoError(t, err)
	ch1, _, err := store.GetOrCreateChapter(ctx, lesson.ID, 1, curriculum.ChapterDefaults{Title: "Chapter 1"})
	require.NoError(t, err)
	for _, n := range []int{2, 1} {
		_, _, err := store.GetOrCreatePart(ctx, ch1.ID, n, curriculum.PartDefaults{
			Title: "p", ContentType: curriculum.ContentTypeURL, ContentURL: strPtr("/static/x"),
		})
		require.NoError(t, err)
	}

	o, err := Load(ctx, store, lesson.ID)
	require.NoError(t, err)
	assert.Equal(t, lesson.ID, o.Lesson.ID)
	require.Len(t, o.Chapters, 2)
	assert.Equal(t, ch1.ID, o.Chapters[0].ID)
	assert.Equal(t, ch2.ID, o.Chapters[1].ID)
	require.Len(t, o.Chapters[0].Parts, 2)
	assert.Equal(t, 1, o.Chapters[0].Parts[0].Number)
	assert.Equal(t, 2, o.Chapters[0].Parts[1].Number)
	assert.Empty(t, o.Chapters[1].Parts)

	_, err = Load(ctx, store, uuid.New())
	assert.ErrorIs(t, err, curriculum.ErrNotFound)
}

func TestLoad_ReaderError(t *testing.T) {
	ctrl := gomock.NewController(t)
	reader := mock_curriculum.NewMockReader(ctrl)
	id := uuid.New()
	chapterID := uuid.New()
	want := errors.New("connection reset")

	reader.EXPECT().GetLesson(gomock.Any(), id).Return(&curriculum.Lesson{ID: id}, nil)
	reader.EXPECT().ListChaptersByLesson(gomock.Any(), id).Return([]curriculum.Chapter{{ID: chapterID, Number: 1}}, nil)
	reader.EXPECT().ListPartsByChapter(gomock.Any(), chapterID).Return(nil, want)

	_, err := Load(context.Background(), reader, id)
	assert.ErrorIs(t, err, want)
}

func TestOutline_Write(t *testing.T) {
	tests := []struct {
		name      string
		withPDF   bool
		wantFiles []string
	}{
		{name: "markdown only", wantFiles: []string{"lesson-0f8e2d4c-6b1a-4c3e-9d7f-5a2b8c4e6f10.md"}},
		{name: "markdown and pdf", withPDF: true, wantFiles: []string{
			"lesson-0f8e2d4c-6b1a-4c3e-9d7f-5a2b8c4e6f10.md",
			"lesson-0f8e2d4c-6b1a-4c3e-9d7f-5a2b8c4e6f10.pdf",
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := filepath.Join(t.TempDir(), "out")
			o := sampleOutline()

			paths, err := o.Write(dir, tt.withPDF)
			require.NoError(t, err)
			require.Len(t, paths, len(tt.wantFiles))
			for i, name := range tt.wantFiles {
				assert.Equal(t, filepath.Join(dir, name), paths[i])
				info, err := os.Stat(paths[i])
				require.NoError(t, err)
				assert.Positive(t, info.Size())
			}

			md, err := os.ReadFile(paths[0])
			require.NoError(t, err)
			assert.Equal(t, string(o.Markdown()), string(md))

			if tt.withPDF {
				pdf, err := os.ReadFile(paths[1])
				require.NoError(t, err)
				assert.Equal(t, "%PDF", string(pdf[:4]))
			}
		})
	}
}
