package importer

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/DanRulev/uniprep.git/internal/config"
	mock_importer "github.com/DanRulev/uniprep.git/internal/importer/mock"
	"github.com/DanRulev/uniprep.git/internal/models"
	"github.com/DanRulev/uniprep.git/internal/repository"
	"github.com/DanRulev/uniprep.git/internal/storage/db"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

func newSQLiteRepo(t *testing.T) repository.Repository {
	t.Helper()

	conn, err := db.InitDB(config.DBConfig{Driver: "sqlite3", Path: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	require.NoError(t, db.Migrate(context.Background(), conn))

	return repository.NewRepository(conn)
}

const catalogCSV = `subject,topic,question,correct,wrong
Math, Algebra, 2 + 2 = ?, 4, 3, 5
Math,Algebra,3 * 3 = ?,9,6
Math,Geometry,Angles in a triangle?,180,90,360
Math,Algebra,2 + 2 = ?,4,3

Math,Algebra,no wrong answers,1
`

func TestImporter_ImportFile_CSV(t *testing.T) {
	t.Parallel()

	repo := newSQLiteRepo(t)
	path := filepath.Join(t.TempDir(), "catalog.csv")
	require.NoError(t, os.WriteFile(path, []byte(catalogCSV), 0o600))

	imp := New(repo, zap.NewNop())

	report, err := imp.ImportFile(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, 5, report.Processed)
	assert.Equal(t, 1, report.SubjectsCreated)
	assert.Equal(t, 2, report.TopicsCreated)
	assert.Equal(t, 3, report.Created)
	assert.Equal(t, 1, report.Skipped)
	require.Len(t, report.Errors, 1)
	assert.Contains(t, report.Errors[0], "row 6")

	ctx := context.Background()
	subjectID, _, err := repo.EnsureSubject(ctx, "Math")
	require.NoError(t, err)
	topicID, _, err := repo.EnsureTopic(ctx, subjectID, "Algebra")
	require.NoError(t, err)

	cards, err := repo.FlashcardsByTopic(ctx, topicID, 0, 10)
	require.NoError(t, err)
	require.Len(t, cards, 2)

	byQuestion := map[string]models.Flashcard{}
	for _, c := range cards {
		byQuestion[c.Question] = c
	}
	first := byQuestion["2 + 2 = ?"]
	require.Len(t, first.Answers, 3)
	correct := 0
	for _, a := range first.Answers {
		if a.IsCorrect {
			correct++
			assert.Equal(t, "4", a.Text)
		}
	}
	assert.Equal(t, 1, correct)

	again, err := imp.ImportFile(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, 0, again.Created)
	assert.Equal(t, 4, again.Skipped)
	assert.Equal(t, 0, again.SubjectsCreated)
	assert.Equal(t, 0, again.TopicsCreated)
}

func TestImporter_ImportFile_Excel(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "catalog.xlsx")

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	rows := [][]interface{}{
		{"Subject", "Topic", "Question", "Correct", "Wrong"},
		{"Physics", "Mechanics", "Unit of force?", "Newton", "Joule", "Watt"},
		{"Physics", "Optics", "Speed of light, km/s?", "300000", "150000"},
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	repo := newSQLiteRepo(t)
	report, err := New(repo, zap.NewNop()).ImportFile(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, Report{
		Processed:       2,
		SubjectsCreated: 1,
		TopicsCreated:   2,
		Created:         2,
		Errors:          []string{},
	}, report)

	candidates, err := repo.EntryTestCandidates(context.Background(), nil)
	require.NoError(t, err)
	assert.Len(t, candidates, 2)
}

func TestImporter_ImportFile_Unsupported(t *testing.T) {
	t.Parallel()

	_, err := New(nil, zap.NewNop()).ImportFile(context.Background(), "catalog.json")
	require.ErrorIs(t, err, ErrUnsupportedFormat)

	_, err = New(nil, zap.NewNop()).ImportFile(context.Background(), filepath.Join(t.TempDir(), "missing.csv"))
	require.Error(t, err)
}

func TestImporter_Import(t *testing.T) {
	t.Parallel()

	mathID := uuid.New()
	topicID := uuid.New()

	tests := []struct {
		name       string
		rows       [][]string
		f          func(*mock_importer.MockCatalogRI)
		wantReport Report
	}{
		{
			name: "subject failure is reported and the run goes on",
			rows: [][]string{
				{"Chemistry", "Atoms", "H2O is?", "water", "salt"},
				{"Math", "Algebra", "1 + 1 = ?", "2", "3"},
			},
			f: func(m *mock_importer.MockCatalogRI) {
				m.EXPECT().EnsureSubject(gomock.Any(), "Chemistry").Return(uuid.Nil, false, models.ErrStorage)
				m.EXPECT().EnsureSubject(gomock.Any(), "Math").Return(mathID, false, nil)
				m.EXPECT().EnsureTopic(gomock.Any(), mathID, "Algebra").Return(topicID, false, nil)
				m.EXPECT().CreateFlashcard(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, card models.Flashcard) (bool, error) {
					assert.Equal(t, topicID, card.TopicID)
					assert.Equal(t, "1 + 1 = ?", card.Question)
					require.Len(t, card.Answers, 2)
					assert.True(t, card.Answers[0].IsCorrect)
					assert.False(t, card.Answers[1].IsCorrect)
					return true, nil
				})
			},
			wantReport: Report{Processed: 2, Created: 1, Errors: []string{`row 1: subject "Chemistry": ` + models.ErrStorage.Error()}},
		},
		{
			name: "subject and topic ids are looked up once",
			rows: [][]string{
				{"Math", "Algebra", "q1", "a", "b"},
				{"Math", "Algebra", "q2", "a", "b"},
			},
			f: func(m *mock_importer.MockCatalogRI) {
				m.EXPECT().EnsureSubject(gomock.Any(), "Math").Return(mathID, true, nil).Times(1)
				m.EXPECT().EnsureTopic(gomock.Any(), mathID, "Algebra").Return(topicID, true, nil).Times(1)
				m.EXPECT().CreateFlashcard(gomock.Any(), gomock.Any()).Return(true, nil).Times(2)
			},
			wantReport: Report{Processed: 2, SubjectsCreated: 1, TopicsCreated: 1, Created: 2, Errors: []string{}},
		},
		{
			name: "invalid rows never reach storage",
			rows: [][]string{
				{"", "Algebra", "q", "a", "b"},
				{"Math", "", "q", "a", "b"},
				{"Math", "Algebra", "", "a", "b"},
				{"Math", "Algebra", "q", "", "b"},
				{"Math", "Algebra", "q"},
				{" ", " "},
			},
			wantReport: Report{Processed: 5, Errors: []string{
				"row 1: subject cannot be empty",
				"row 2: topic cannot be empty",
				"row 3: question cannot be empty",
				"row 4: correct answer cannot be empty",
				"row 5: expected subject, topic, question, correct answer and at least one wrong answer",
			}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			m := mock_importer.NewMockCatalogRI(ctrl)
			if tt.f != nil {
				tt.f(m)
			}

			report, err := New(m, zap.NewNop()).Import(context.Background(), tt.rows)
			require.NoError(t, err)
			assert.Equal(t, tt.wantReport, report)
		})
	}
}

func TestImporter_Import_Canceled(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	report, err := New(mock_importer.NewMockCatalogRI(ctrl), zap.NewNop()).
		Import(ctx, [][]string{{"Math", "Algebra", "q", "a", "b"}})
	require.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, report.Processed)
}

func TestTrimRow(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		row  []string
		want []string
	}{
		{name: "trims cells", row: []string{" a ", "b "}, want: []string{"a", "b"}},
		{name: "drops trailing blanks", row: []string{"a", "", " "}, want: []string{"a"}},
		{name: "keeps inner blanks", row: []string{"a", "", "c"}, want: []string{"a", "", "c"}},
		{name: "blank row", row: []string{" ", ""}, want: []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, trimRow(tt.row))
		})
	}
}
