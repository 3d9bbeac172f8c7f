package repository

import (
	"context"

	sqlcgen "github.com/gokatarajesh/trivia-api/internal/db/sqlc"
)

type questionStore interface {
	ListQuestions(ctx context.Context, filter sqlcgen.QuestionFilter) ([]sqlcgen.Question, error)
	GetQuestion(ctx context.Context, id int32) (sqlcgen.Question, error)
	InsertQuestion(ctx context.Context, arg sqlcgen.InsertQuestionParams) (sqlcgen.Question, error)
	DeleteQuestion(ctx context.Context, id int32) (int64, error)
	CountQuestions(ctx context.Context) (int64, error)
}

// QuestionRepository wraps sqlc queries for question access.
type QuestionRepository struct {
	store questionStore
}

func NewQuestionRepository(store questionStore) *QuestionRepository {
	return &QuestionRepository{store: store}
}

// ListQuestions returns the questions selected by filter.
func (r *QuestionRepository) ListQuestions(ctx context.Context, filter sqlcgen.QuestionFilter) ([]sqlcgen.Question, error) {
	rows, err := r.store.ListQuestions(ctx, filter)
	return rows, translate(err)
}

func (r *QuestionRepository) GetQuestion(ctx context.Context, id int32) (sqlcgen.Question, error) {
	row, err := r.store.GetQuestion(ctx, id)
	return row, translate(err)
}

// InsertQuestion stores a new question. A category that does not exist
// surfaces as ErrConstraint.
func (r *QuestionRepository) InsertQuestion(ctx context.Context, params sqlcgen.InsertQuestionParams) (sqlcgen.Question, error) {
	row, err := r.store.InsertQuestion(ctx, params)
	return row, translate(err)
}

// DeleteQuestion removes a question, returning ErrNotFound when no row matched.
func (r *QuestionRepository) DeleteQuestion(ctx context.Context, id int32) error {
	n, err := r.store.DeleteQuestion(ctx, id)
	if err != nil {
		return translate(err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *QuestionRepository) CountQuestions(ctx context.Context) (int64, error) {
	n, err := r.store.CountQuestions(ctx)
	return n, translate(err)
}
