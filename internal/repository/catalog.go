package repository

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/DanRulev/uniprep.git/internal/models"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type CatalogR struct {
	db QueryI
	tx TxBeginner
}

func NewCatalogRepository(db DBI) *CatalogR {
	return &CatalogR{db: db, tx: db}
}

func (c *CatalogR) Flashcard(ctx context.Context, id uuid.UUID) (models.Flashcard, error) {
	query := `
		SELECT f.id, f.topic_id, t.subject_id, f.question
		FROM flashcards f
		JOIN topics t ON t.id = f.topic_id
		WHERE f.id = $1`

	var card models.Flashcard
	if err := c.db.GetContext(ctx, &card, query, id); err != nil {
		return models.Flashcard{}, storageErr("get flashcard "+id.String(), err)
	}

	return card, nil
}

func (c *CatalogR) FlashcardsByTopic(ctx context.Context, topicID uuid.UUID, skip, take int) ([]models.Flashcard, error) {
	query := `
		SELECT f.id, f.topic_id, t.subject_id, f.question
		FROM flashcards f
		JOIN topics t ON t.id = f.topic_id
		WHERE f.topic_id = $1
		ORDER BY f.id
		LIMIT $2 OFFSET $3`

	cards := make([]models.Flashcard, 0, take)
	if err := c.db.SelectContext(ctx, &cards, query, topicID, take, skip); err != nil {
		return nil, storageErr("list flashcards by topic", err)
	}

	if err := c.AttachAnswers(ctx, cards); err != nil {
		return nil, err
	}

	return cards, nil
}

// EntryTestCandidates returns every flashcard of the subject, or of the whole
// catalog when subjectID is nil. Answers are not loaded.
func (c *CatalogR) EntryTestCandidates(ctx context.Context, subjectID *uuid.UUID) ([]models.Flashcard, error) {
	query := `
		SELECT f.id, f.topic_id, t.subject_id, f.question
		FROM flashcards f
		JOIN topics t ON t.id = f.topic_id`
	var args []any
	if subjectID != nil {
		query += ` WHERE t.subject_id = $1`
		args = append(args, *subjectID)
	}
	query += ` ORDER BY f.id`

	var cards []models.Flashcard
	if err := c.db.SelectContext(ctx, &cards, query, args...); err != nil {
		return nil, storageErr("list entry test candidates", err)
	}

	return cards, nil
}

// DueFlashcards returns the user's cards with next_review <= now, most overdue
// first. Ties are broken by flashcard id so pages do not overlap.
func (c *CatalogR) DueFlashcards(ctx context.Context, userID int64, topicID *uuid.UUID, now time.Time, skip, take int) ([]models.DueFlashcard, error) {
	var sb strings.Builder
	sb.WriteString(`
		SELECT f.id, f.topic_id, t.subject_id, f.question,
			r."interval", r.repetition, r.ef, r.next_review
		FROM review_state r
		JOIN flashcards f ON f.id = r.flashcard_id
		JOIN topics t ON t.id = f.topic_id
		WHERE r.user_id = $1 AND r.next_review <= $2`)

	args := []any{userID, now.UTC()}
	if topicID != nil {
		args = append(args, *topicID)
		sb.WriteString(` AND f.topic_id = $` + strconv.Itoa(len(args)))
	}

	args = append(args, take, skip)
	sb.WriteString(`
		ORDER BY r.next_review ASC, f.id ASC
		LIMIT $` + strconv.Itoa(len(args)-1) + ` OFFSET $` + strconv.Itoa(len(args)))

	due := make([]models.DueFlashcard, 0, take)
	if err := c.db.SelectContext(ctx, &due, sb.String(), args...); err != nil {
		return nil, storageErr("list due flashcards", err)
	}

	cards := make([]models.Flashcard, len(due))
	for i := range due {
		cards[i] = due[i].Flashcard
	}
	if err := c.AttachAnswers(ctx, cards); err != nil {
		return nil, err
	}
	for i := range due {
		due[i].Answers = cards[i].Answers
	}

	return due, nil
}

// AttachAnswers loads the answers of all cards with a single query.
func (c *CatalogR) AttachAnswers(ctx context.Context, cards []models.Flashcard) error {
	if len(cards) == 0 {
		return nil
	}

	ids := make([]uuid.UUID, len(cards))
	for i, card := range cards {
		ids[i] = card.ID
	}

	query, args, err := sqlx.In(`
		SELECT id, flashcard_id, text, is_correct
		FROM answers
		WHERE flashcard_id IN (?)
		ORDER BY flashcard_id, id`, ids)
	if err != nil {
		return storageErr("build answers query", err)
	}

	var answers []models.Answer
	if err := c.db.SelectContext(ctx, &answers, c.db.Rebind(query), args...); err != nil {
		return storageErr("list answers", err)
	}

	byCard := make(map[uuid.UUID][]models.Answer, len(cards))
	for _, a := range answers {
		byCard[a.FlashcardID] = append(byCard[a.FlashcardID], a)
	}
	for i := range cards {
		cards[i].Answers = byCard[cards[i].ID]
		if cards[i].Answers == nil {
			cards[i].Answers = []models.Answer{}
		}
	}

	return nil
}

// AnswersWithTopics resolves answer ids to their correctness and topic.
func (c *CatalogR) AnswersWithTopics(ctx context.Context, answerIDs []uuid.UUID) ([]models.AnswerWithTopic, error) {
	if len(answerIDs) == 0 {
		return []models.AnswerWithTopic{}, nil
	}

	query, args, err := sqlx.In(`
		SELECT a.id, a.is_correct, t.id AS topic_id, t.name AS topic_name
		FROM answers a
		JOIN flashcards f ON f.id = a.flashcard_id
		JOIN topics t ON t.id = f.topic_id
		WHERE a.id IN (?)`, answerIDs)
	if err != nil {
		return nil, storageErr("build answers query", err)
	}

	var answers []models.AnswerWithTopic
	if err := c.db.SelectContext(ctx, &answers, c.db.Rebind(query), args...); err != nil {
		return nil, storageErr("list answers with topics", err)
	}

	return answers, nil
}

// EnsureSubject returns the id of the subject with the given name, creating it
// when missing. created reports whether this call inserted it.
func (c *CatalogR) EnsureSubject(ctx context.Context, name string) (uuid.UUID, bool, error) {
	res, err := c.db.ExecContext(ctx,
		`INSERT INTO subjects (id, name) VALUES ($1, $2) ON CONFLICT (name) DO NOTHING`,
		uuid.New(), name)
	if err != nil {
		return uuid.Nil, false, storageErr("insert subject", err)
	}

	var id uuid.UUID
	if err := c.db.GetContext(ctx, &id, `SELECT id FROM subjects WHERE name = $1`, name); err != nil {
		return uuid.Nil, false, storageErr("get subject", err)
	}

	return id, affected(res) > 0, nil
}

func (c *CatalogR) EnsureTopic(ctx context.Context, subjectID uuid.UUID, name string) (uuid.UUID, bool, error) {
	res, err := c.db.ExecContext(ctx,
		`INSERT INTO topics (id, subject_id, name) VALUES ($1, $2, $3) ON CONFLICT (subject_id, name) DO NOTHING`,
		uuid.New(), subjectID, name)
	if err != nil {
		return uuid.Nil, false, storageErr("insert topic", err)
	}

	var id uuid.UUID
	if err := c.db.GetContext(ctx, &id, `SELECT id FROM topics WHERE subject_id = $1 AND name = $2`, subjectID, name); err != nil {
		return uuid.Nil, false, storageErr("get topic", err)
	}

	return id, affected(res) > 0, nil
}

// CreateFlashcard inserts the card with its answers in one transaction. It
// reports false without error when the topic already has the same question.
func (c *CatalogR) CreateFlashcard(ctx context.Context, card models.Flashcard) (bool, error) {
	created := false

	err := withTx(ctx, c.tx, func(q QueryI) error {
		res, err := q.ExecContext(ctx,
			`INSERT INTO flashcards (id, topic_id, question) VALUES ($1, $2, $3) ON CONFLICT (topic_id, question) DO NOTHING`,
			card.ID, card.TopicID, card.Question)
		if err != nil {
			return storageErr("insert flashcard", err)
		}
		if affected(res) == 0 {
			return nil
		}

		for _, a := range card.Answers {
			_, err := q.ExecContext(ctx,
				`INSERT INTO answers (id, flashcard_id, text, is_correct) VALUES ($1, $2, $3, $4)`,
				a.ID, card.ID, a.Text, a.IsCorrect)
			if err != nil {
				return storageErr("insert answer", err)
			}
		}

		created = true
		return nil
	})

	return created, err
}

func affected(res interface{ RowsAffected() (int64, error) }) int64 {
	if res == nil {
		return 0
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0
	}
	return n
}
