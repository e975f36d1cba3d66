package importer

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/DanRulev/uniprep.git/internal/models"
	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

var ErrUnsupportedFormat = errors.New("unsupported file format")

type CatalogRI interface {
	EnsureSubject(ctx context.Context, name string) (uuid.UUID, bool, error)
	EnsureTopic(ctx context.Context, subjectID uuid.UUID, name string) (uuid.UUID, bool, error)
	CreateFlashcard(ctx context.Context, card models.Flashcard) (bool, error)
}

// Report holds the counters of one import run.
type Report struct {
	Processed       int
	SubjectsCreated int
	TopicsCreated   int
	Created         int
	Skipped         int
	Errors          []string
}

type Importer struct {
	repo CatalogRI
	log  *zap.Logger
}

func New(repo CatalogRI, log *zap.Logger) *Importer {
	return &Importer{
		repo: repo,
		log:  log,
	}
}

// ImportFile reads rows of subject, topic, question, correct answer and wrong
// answers from the first sheet of an .xlsx file or from a .csv file.
func (i *Importer) ImportFile(ctx context.Context, path string) (Report, error) {
	var (
		rows [][]string
		err  error
	)

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".xlsx", ".xlsm":
		rows, err = readExcel(path)
	case ".csv":
		rows, err = readCSVFile(path)
	default:
		return Report{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	if err != nil {
		return Report{}, err
	}

	return i.Import(ctx, rows)
}

// Import stores the given rows. A leading header row is skipped. Invalid rows
// are reported and do not stop the run; a cancelled context does.
func (i *Importer) Import(ctx context.Context, rows [][]string) (Report, error) {
	report := Report{Errors: make([]string, 0)}

	subjects := make(map[string]uuid.UUID)
	topics := make(map[string]uuid.UUID)

	for n, row := range rows {
		rowNum := n + 1
		row = trimRow(row)

		if len(row) == 0 || (n == 0 && isHeader(row)) {
			continue
		}

		if err := ctx.Err(); err != nil {
			return report, err
		}

		report.Processed++

		created, err := i.importRow(ctx, row, subjects, topics, &report)
		if err != nil {
			if ctx.Err() != nil {
				return report, ctx.Err()
			}
			i.log.Warn("failed to import row", zap.Int("row", rowNum), zap.Error(err))
			report.Errors = append(report.Errors, fmt.Sprintf("row %d: %v", rowNum, err))
			continue
		}

		if created {
			report.Created++
		} else {
			report.Skipped++
		}
	}

	i.log.Info("catalog import finished",
		zap.Int("processed", report.Processed),
		zap.Int("created", report.Created),
		zap.Int("skipped", report.Skipped),
		zap.Int("errors", len(report.Errors)),
	)

	return report, nil
}

func (i *Importer) importRow(ctx context.Context, row []string, subjects, topics map[string]uuid.UUID, report *Report) (bool, error) {
	if len(row) < 5 {
		return false, errors.New("expected subject, topic, question, correct answer and at least one wrong answer")
	}

	subjectName, topicName, question, correct := row[0], row[1], row[2], row[3]
	switch {
	case subjectName == "":
		return false, errors.New("subject cannot be empty")
	case topicName == "":
		return false, errors.New("topic cannot be empty")
	case question == "":
		return false, errors.New("question cannot be empty")
	case correct == "":
		return false, errors.New("correct answer cannot be empty")
	}

	var wrong []string
	for _, w := range row[4:] {
		if w != "" {
			wrong = append(wrong, w)
		}
	}
	if len(wrong) == 0 {
		return false, errors.New("at least one wrong answer is required")
	}

	subjectID, ok := subjects[subjectName]
	if !ok {
		id, created, err := i.repo.EnsureSubject(ctx, subjectName)
		if err != nil {
			return false, fmt.Errorf("subject %q: %w", subjectName, err)
		}
		if created {
			report.SubjectsCreated++
		}
		subjectID = id
		subjects[subjectName] = id
	}

	topicKey := subjectID.String() + "/" + topicName
	topicID, ok := topics[topicKey]
	if !ok {
		id, created, err := i.repo.EnsureTopic(ctx, subjectID, topicName)
		if err != nil {
			return false, fmt.Errorf("topic %q: %w", topicName, err)
		}
		if created {
			report.TopicsCreated++
		}
		topicID = id
		topics[topicKey] = id
	}

	card := models.Flashcard{
		ID:        uuid.New(),
		TopicID:   topicID,
		SubjectID: subjectID,
		Question:  question,
		Answers:   make([]models.Answer, 0, len(wrong)+1),
	}
	card.Answers = append(card.Answers, models.Answer{ID: uuid.New(), FlashcardID: card.ID, Text: correct, IsCorrect: true})
	for _, w := range wrong {
		card.Answers = append(card.Answers, models.Answer{ID: uuid.New(), FlashcardID: card.ID, Text: w})
	}

	created, err := i.repo.CreateFlashcard(ctx, card)
	if err != nil {
		return false, fmt.Errorf("flashcard: %w", err)
	}

	return created, nil
}

func readExcel(path string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.New("workbook has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to get rows: %w", err)
	}

	return rows, nil
}

func readCSVFile(path string) ([][]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer file.Close()

	return readCSV(file)
}

func readCSV(r io.Reader) ([][]string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("error reading CSV: %w", err)
	}

	return rows, nil
}

// trimRow trims every cell and drops trailing empty cells. An all-blank row
// comes back empty.
func trimRow(row []string) []string {
	out := make([]string, len(row))
	last := -1
	for i, cell := range row {
		out[i] = strings.TrimSpace(cell)
		if out[i] != "" {
			last = i
		}
	}
	return out[:last+1]
}

func isHeader(row []string) bool {
	return strings.EqualFold(row[0], "subject")
}
