package question

import (
	"context"
	"errors"
	"fmt"

	"github.com/gokatarajesh/trivia-api/internal/db/repository"
	sqlcgen "github.com/gokatarajesh/trivia-api/internal/db/sqlc"
	"github.com/gokatarajesh/trivia-api/internal/logging"
	"github.com/gokatarajesh/trivia-api/internal/metrics"
)

// CategoryCache stores the category map between requests. Get returns a nil
// map on a miss.
type CategoryCache interface {
	Get(ctx context.Context) (CategoryMap, error)
	Set(ctx context.Context, categories CategoryMap) error
}

// Service implements the trivia operations. Every call opens its own store
// session and releases it before returning.
type Service struct {
	store repository.Opener
	cache CategoryCache
	rand  Source
}

type ServiceOptions struct {
	// Rand overrides the quiz picker's random source.
	Rand Source
}

// NewService wires the service. cache may be nil.
func NewService(store repository.Opener, cache CategoryCache, opts ServiceOptions) *Service {
	src := opts.Rand
	if src == nil {
		src = globalSource{}
	}
	return &Service{
		store: store,
		cache: cache,
		rand:  src,
	}
}

func (s *Service) open(ctx context.Context) (repository.Session, error) {
	sess, err := s.store.Open(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInternal, err)
	}
	return sess, nil
}

// Categories returns every category keyed by id.
func (s *Service) Categories(ctx context.Context) (CategoryMap, error) {
	if cached := s.cachedCategories(ctx); cached != nil {
		return cached, nil
	}
	sess, err := s.open(ctx)
	if err != nil {
		return nil, err
	}
	defer sess.Close()
	return s.loadCategories(ctx, sess)
}

// RefreshCategories reloads categories from the store into the cache.
func (s *Service) RefreshCategories(ctx context.Context) error {
	if s.cache == nil {
		return nil
	}
	sess, err := s.open(ctx)
	if err != nil {
		return err
	}
	defer sess.Close()
	_, err = s.loadCategories(ctx, sess)
	return err
}

func (s *Service) cachedCategories(ctx context.Context) CategoryMap {
	if s.cache == nil {
		return nil
	}
	cached, err := s.cache.Get(ctx)
	switch {
	case err != nil:
		metrics.CategoryCache.WithLabelValues("error").Inc()
		logger := logging.FromContext(ctx)
		logger.Warn().Err(err).Msg("category cache read failed")
		return nil
	case cached == nil:
		metrics.CategoryCache.WithLabelValues("miss").Inc()
		return nil
	default:
		metrics.CategoryCache.WithLabelValues("hit").Inc()
		return cached
	}
}

func (s *Service) loadCategories(ctx context.Context, store repository.Store) (CategoryMap, error) {
	rows, err := store.ListCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: list categories: %w", ErrInternal, err)
	}
	categories := toCategoryMap(rows)
	if s.cache != nil {
		if err := s.cache.Set(ctx, categories); err != nil {
			logger := logging.FromContext(ctx)
			logger.Warn().Err(err).Msg("category cache write failed")
		}
	}
	return categories, nil
}

func (s *Service) categories(ctx context.Context, store repository.Store) (CategoryMap, error) {
	if cached := s.cachedCategories(ctx); cached != nil {
		return cached, nil
	}
	return s.loadCategories(ctx, store)
}

// ListQuestions returns one page of all questions with the listing context.
// An empty page is ErrNotFound.
func (s *Service) ListQuestions(ctx context.Context, page int) (QuestionPage, error) {
	sess, err := s.open(ctx)
	if err != nil {
		return QuestionPage{}, err
	}
	defer sess.Close()

	rows, err := sess.ListQuestions(ctx, sqlcgen.QuestionFilter{})
	if err != nil {
		return QuestionPage{}, fmt.Errorf("%w: list questions: %w", ErrInternal, err)
	}
	window := Paginate(toDomainList(rows), page)
	if len(window) == 0 {
		return QuestionPage{}, fmt.Errorf("%w: page %d is empty", ErrNotFound, page)
	}

	categories, err := s.categories(ctx, sess)
	if err != nil {
		return QuestionPage{}, err
	}
	current, err := s.currentCategory(ctx, sess)
	if err != nil {
		return QuestionPage{}, err
	}

	return QuestionPage{
		Questions:       window,
		TotalQuestions:  len(rows),
		Categories:      categories,
		CurrentCategory: current,
	}, nil
}

func (s *Service) currentCategory(ctx context.Context, store repository.Store) (string, error) {
	row, err := store.GetCategory(ctx, currentCategoryID)
	if errors.Is(err, repository.ErrNotFound) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("%w: current category: %w", ErrInternal, err)
	}
	return row.Type, nil
}

// QuestionsByCategory returns one page of the questions in categoryID. An
// unknown category is ErrNotFound; an empty page is not.
func (s *Service) QuestionsByCategory(ctx context.Context, categoryID, page int) (CategoryQuestions, error) {
	id, ok := toInt32(categoryID)
	if !ok {
		return CategoryQuestions{}, fmt.Errorf("%w: category %d", ErrNotFound, categoryID)
	}

	sess, err := s.open(ctx)
	if err != nil {
		return CategoryQuestions{}, err
	}
	defer sess.Close()

	category, err := sess.GetCategory(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return CategoryQuestions{}, fmt.Errorf("%w: category %d", ErrNotFound, categoryID)
	}
	if err != nil {
		return CategoryQuestions{}, fmt.Errorf("%w: get category: %w", ErrInternal, err)
	}

	rows, err := sess.ListQuestions(ctx, sqlcgen.QuestionFilter{CategoryID: &id})
	if err != nil {
		return CategoryQuestions{}, fmt.Errorf("%w: list category questions: %w", ErrInternal, err)
	}

	return CategoryQuestions{
		Questions:       Paginate(toDomainList(rows), page),
		TotalQuestions:  len(rows),
		CurrentCategory: category.Type,
	}, nil
}

// SearchQuestions pages through questions containing req.Term. An empty
// term, no match at all and an empty page are all ErrNotFound.
func (s *Service) SearchQuestions(ctx context.Context, req SearchRequest, page int) (SearchResult, error) {
	if req.Term == "" {
		return SearchResult{}, fmt.Errorf("%w: empty search term", ErrNotFound)
	}

	sess, err := s.open(ctx)
	if err != nil {
		return SearchResult{}, err
	}
	defer sess.Close()

	term := req.Term
	rows, err := sess.ListQuestions(ctx, sqlcgen.QuestionFilter{Search: &term})
	if err != nil {
		return SearchResult{}, fmt.Errorf("%w: search questions: %w", ErrInternal, err)
	}
	if len(rows) == 0 {
		return SearchResult{}, fmt.Errorf("%w: no question matches %q", ErrNotFound, req.Term)
	}
	window := Paginate(toDomainList(rows), page)
	if len(window) == 0 {
		return SearchResult{}, fmt.Errorf("%w: search page %d is empty", ErrNotFound, page)
	}

	total, err := sess.CountQuestions(ctx)
	if err != nil {
		return SearchResult{}, fmt.Errorf("%w: count questions: %w", ErrInternal, err)
	}

	return SearchResult{
		Questions:      window,
		TotalQuestions: int(total),
	}, nil
}

// CreateQuestion inserts req and returns it with the requested page of the
// id-ordered listing. Any store failure on this path is ErrUnprocessable.
func (s *Service) CreateQuestion(ctx context.Context, req CreateRequest, page int) (CreateResult, error) {
	category, ok := toInt32(req.Category)
	if !ok {
		return CreateResult{}, fmt.Errorf("%w: category %d out of range", ErrUnprocessable, req.Category)
	}
	difficulty, ok := toInt32(req.Difficulty)
	if !ok {
		return CreateResult{}, fmt.Errorf("%w: difficulty %d out of range", ErrUnprocessable, req.Difficulty)
	}

	sess, err := s.open(ctx)
	if err != nil {
		return CreateResult{}, err
	}
	defer sess.Close()

	row, err := sess.InsertQuestion(ctx, sqlcgen.InsertQuestionParams{
		Question:   req.Question,
		Answer:     req.Answer,
		Category:   category,
		Difficulty: difficulty,
	})
	if err != nil {
		return CreateResult{}, fmt.Errorf("%w: insert question: %w", ErrUnprocessable, err)
	}

	rows, err := sess.ListQuestions(ctx, sqlcgen.QuestionFilter{OrderByID: true})
	if err != nil {
		return CreateResult{}, fmt.Errorf("%w: list questions: %w", ErrUnprocessable, err)
	}

	logger := logging.FromContext(ctx)
	logger.Info().Int32("question_id", row.ID).Msg("question created")
	return CreateResult{
		Created:        toDomain(row),
		Questions:      Paginate(toDomainList(rows), page),
		TotalQuestions: len(rows),
	}, nil
}

// DeleteQuestion removes question id. An unknown id is ErrUnprocessable;
// a store failure is ErrInternal.
func (s *Service) DeleteQuestion(ctx context.Context, id int) error {
	qid, ok := toInt32(id)
	if !ok {
		return fmt.Errorf("%w: question %d does not exist", ErrUnprocessable, id)
	}

	sess, err := s.open(ctx)
	if err != nil {
		return err
	}
	defer sess.Close()

	err = sess.DeleteQuestion(ctx, qid)
	if errors.Is(err, repository.ErrNotFound) {
		return fmt.Errorf("%w: question %d does not exist", ErrUnprocessable, id)
	}
	if err != nil {
		return fmt.Errorf("%w: delete question: %w", ErrInternal, err)
	}

	logger := logging.FromContext(ctx)
	logger.Info().Int("question_id", id).Msg("question deleted")
	return nil
}

// NextQuizQuestion picks a random question the caller has not seen yet.
// It returns nil, nil once every candidate has been served. A specific
// category with no stored questions at all is ErrNotFound.
func (s *Service) NextQuizQuestion(ctx context.Context, req QuizRequest) (*Question, error) {
	filter := sqlcgen.QuestionFilter{}
	if req.CategoryID != AllCategories {
		id, ok := toInt32(req.CategoryID)
		if !ok {
			metrics.QuizOutcomes.WithLabelValues("empty_category").Inc()
			return nil, fmt.Errorf("%w: category %d has no questions", ErrNotFound, req.CategoryID)
		}
		filter.CategoryID = &id
	}

	sess, err := s.open(ctx)
	if err != nil {
		return nil, err
	}
	defer sess.Close()

	rows, err := sess.ListQuestions(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("%w: list quiz candidates: %w", ErrInternal, err)
	}
	if req.CategoryID != AllCategories && len(rows) == 0 {
		metrics.QuizOutcomes.WithLabelValues("empty_category").Inc()
		return nil, fmt.Errorf("%w: category %d has no questions", ErrNotFound, req.CategoryID)
	}

	picked, ok := PickUnseen(toDomainList(rows), req.PreviousQuestions, s.rand)
	if !ok {
		metrics.QuizOutcomes.WithLabelValues("exhausted").Inc()
		logger := logging.FromContext(ctx)
		logger.Debug().
			Int("category_id", req.CategoryID).
			Int("previous", len(req.PreviousQuestions)).
			Msg("quiz exhausted")
		return nil, nil
	}
	metrics.QuizOutcomes.WithLabelValues("served").Inc()
	return &picked, nil
}
