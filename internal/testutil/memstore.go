// Package testutil holds in-memory doubles shared by package tests.
package testutil

import (
	"context"
	"slices"
	"strconv"
	"strings"
	"sync"

	"github.com/gokatarajesh/trivia-api/internal/db/repository"
	sqlcgen "github.com/gokatarajesh/trivia-api/internal/db/sqlc"
)

// MemStore is an in-memory repository.Opener. Questions keep insertion
// order, which stands in for store order. The *Err fields force the matching
// operation to fail.
type MemStore struct {
	mu         sync.Mutex
	categories []sqlcgen.Category
	questions  []sqlcgen.Question
	nextID     int32
	opened     int
	closed     int

	OpenErr   error
	ListErr   error
	InsertErr error
	DeleteErr error
	CountErr  error
}

var _ repository.Opener = (*MemStore)(nil)

// NewMemStore seeds a store. Inserted ids continue after the highest seeded id.
func NewMemStore(categories []sqlcgen.Category, questions []sqlcgen.Question) *MemStore {
	m := &MemStore{
		categories: slices.Clone(categories),
		questions:  slices.Clone(questions),
	}
	for _, q := range questions {
		m.nextID = max(m.nextID, q.ID)
	}
	return m
}

// Seed returns the six classic categories and n questions spread over them
// round-robin, ids 1..n, difficulty cycling 1..5.
func Seed(n int) ([]sqlcgen.Category, []sqlcgen.Question) {
	categories := []sqlcgen.Category{
		{ID: 1, Type: "Science"},
		{ID: 2, Type: "Art"},
		{ID: 3, Type: "Geography"},
		{ID: 4, Type: "History"},
		{ID: 5, Type: "Entertainment"},
		{ID: 6, Type: "Sports"},
	}
	questions := make([]sqlcgen.Question, 0, n)
	for i := 1; i <= n; i++ {
		questions = append(questions, sqlcgen.Question{
			ID:         int32(i),
			Question:   "Question " + strconv.Itoa(i),
			Answer:     "Answer " + strconv.Itoa(i),
			Category:   int32((i-1)%len(categories) + 1),
			Difficulty: int32((i-1)%5 + 1),
		})
	}
	return categories, questions
}

// Open hands out a session over the shared data.
func (m *MemStore) Open(context.Context) (repository.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.OpenErr != nil {
		return nil, m.OpenErr
	}
	m.opened++
	return &memSession{store: m}, nil
}

// Balanced reports whether every opened session was closed exactly once.
func (m *MemStore) Balanced() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.opened == m.closed
}

// Questions returns a copy of the stored questions.
func (m *MemStore) Questions() []sqlcgen.Question {
	m.mu.Lock()
	defer m.mu.Unlock()
	return slices.Clone(m.questions)
}

type memSession struct {
	store  *MemStore
	closed bool
}

func (s *memSession) Close() {
	if s.closed {
		return
	}
	s.closed = true
	s.store.mu.Lock()
	s.store.closed++
	s.store.mu.Unlock()
}

func (s *memSession) ListCategories(context.Context) ([]sqlcgen.Category, error) {
	m := s.store
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	return slices.Clone(m.categories), nil
}

func (s *memSession) GetCategory(_ context.Context, id int32) (sqlcgen.Category, error) {
	m := s.store
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, c := range m.categories {
		if c.ID == id {
			return c, nil
		}
	}
	return sqlcgen.Category{}, repository.ErrNotFound
}

func (s *memSession) ListQuestions(_ context.Context, filter sqlcgen.QuestionFilter) ([]sqlcgen.Question, error) {
	m := s.store
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ListErr != nil {
		return nil, m.ListErr
	}

	out := make([]sqlcgen.Question, 0, len(m.questions))
	for _, q := range m.questions {
		if filter.CategoryID != nil && q.Category != *filter.CategoryID {
			continue
		}
		if filter.Search != nil && !strings.Contains(strings.ToLower(q.Question), strings.ToLower(*filter.Search)) {
			continue
		}
		out = append(out, q)
	}
	if filter.OrderByID {
		slices.SortFunc(out, func(a, b sqlcgen.Question) int { return int(a.ID - b.ID) })
	}
	return out, nil
}

func (s *memSession) GetQuestion(_ context.Context, id int32) (sqlcgen.Question, error) {
	m := s.store
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, q := range m.questions {
		if q.ID == id {
			return q, nil
		}
	}
	return sqlcgen.Question{}, repository.ErrNotFound
}

func (s *memSession) InsertQuestion(_ context.Context, params sqlcgen.InsertQuestionParams) (sqlcgen.Question, error) {
	m := s.store
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.InsertErr != nil {
		return sqlcgen.Question{}, m.InsertErr
	}
	if !slices.ContainsFunc(m.categories, func(c sqlcgen.Category) bool { return c.ID == params.Category }) {
		return sqlcgen.Question{}, repository.ErrConstraint
	}
	m.nextID++
	q := sqlcgen.Question{
		ID:         m.nextID,
		Question:   params.Question,
		Answer:     params.Answer,
		Category:   params.Category,
		Difficulty: params.Difficulty,
	}
	m.questions = append(m.questions, q)
	return q, nil
}

func (s *memSession) DeleteQuestion(_ context.Context, id int32) error {
	m := s.store
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.DeleteErr != nil {
		return m.DeleteErr
	}
	idx := slices.IndexFunc(m.questions, func(q sqlcgen.Question) bool { return q.ID == id })
	if idx < 0 {
		return repository.ErrNotFound
	}
	m.questions = slices.Delete(m.questions, idx, idx+1)
	return nil
}

func (s *memSession) CountQuestions(context.Context) (int64, error) {
	m := s.store
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.CountErr != nil {
		return 0, m.CountErr
	}
	return int64(len(m.questions)), nil
}
