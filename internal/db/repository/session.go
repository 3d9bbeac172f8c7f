package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	sqlcgen "github.com/gokatarajesh/trivia-api/internal/db/sqlc"
)

// Store is the full set of trivia operations available inside a session.
type Store interface {
	ListCategories(ctx context.Context) ([]sqlcgen.Category, error)
	GetCategory(ctx context.Context, id int32) (sqlcgen.Category, error)
	ListQuestions(ctx context.Context, filter sqlcgen.QuestionFilter) ([]sqlcgen.Question, error)
	GetQuestion(ctx context.Context, id int32) (sqlcgen.Question, error)
	InsertQuestion(ctx context.Context, params sqlcgen.InsertQuestionParams) (sqlcgen.Question, error)
	DeleteQuestion(ctx context.Context, id int32) error
	CountQuestions(ctx context.Context) (int64, error)
}

// Session is a Store bound to one pooled connection. Close returns the
// connection to the pool and must be called exactly once.
type Session interface {
	Store
	Close()
}

// Opener hands out sessions.
type Opener interface {
	Open(ctx context.Context) (Session, error)
}

// Pool opens sessions on a pgx connection pool.
type Pool struct {
	pool *pgxpool.Pool
}

var _ Opener = (*Pool)(nil)

func NewPool(pool *pgxpool.Pool) *Pool {
	return &Pool{pool: pool}
}

// Open acquires a dedicated connection for the caller.
func (p *Pool) Open(ctx context.Context) (Session, error) {
	conn, err := p.pool.Acquire(ctx)
	if err != nil {
		return nil, fmt.Errorf("acquire connection: %w", err)
	}
	queries := sqlcgen.New(conn)
	return &session{
		CategoryRepository: NewCategoryRepository(queries),
		QuestionRepository: NewQuestionRepository(queries),
		release:            conn.Release,
	}, nil
}

type session struct {
	*CategoryRepository
	*QuestionRepository
	release func()
}

func (s *session) Close() {
	if s.release != nil {
		s.release()
		s.release = nil
	}
}
