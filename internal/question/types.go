package question

import (
	sqlcgen "github.com/gokatarajesh/trivia-api/internal/db/sqlc"
)

// AllCategories is the quiz category id meaning "no category filter".
const AllCategories = 0

// currentCategoryID is the category reported as current on the main listing.
const currentCategoryID = 1

// Question is the client-facing trivia question.
type Question struct {
	ID         int    `json:"id"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Category   int    `json:"category"`
	Difficulty int    `json:"difficulty"`
}

// CategoryMap maps category id to its type label. It encodes as a JSON
// object keyed by the decimal id.
type CategoryMap map[int]string

// QuestionPage is the main listing: one page plus listing context.
type QuestionPage struct {
	Questions       []Question
	TotalQuestions  int
	Categories      CategoryMap
	CurrentCategory string
}

// CategoryQuestions is one page of a single category's questions.
type CategoryQuestions struct {
	Questions       []Question
	TotalQuestions  int
	CurrentCategory string
}

// SearchResult is one page of search matches. TotalQuestions counts every
// stored question, not only the matches.
type SearchResult struct {
	Questions      []Question
	TotalQuestions int
}

// CreateResult echoes the stored question alongside the id-ordered listing.
type CreateResult struct {
	Created        Question
	Questions      []Question
	TotalQuestions int
}

func toDomain(row sqlcgen.Question) Question {
	return Question{
		ID:         int(row.ID),
		Question:   row.Question,
		Answer:     row.Answer,
		Category:   int(row.Category),
		Difficulty: int(row.Difficulty),
	}
}

func toDomainList(rows []sqlcgen.Question) []Question {
	out := make([]Question, 0, len(rows))
	for _, row := range rows {
		out = append(out, toDomain(row))
	}
	return out
}

func toCategoryMap(rows []sqlcgen.Category) CategoryMap {
	out := make(CategoryMap, len(rows))
	for _, row := range rows {
		out[int(row.ID)] = row.Type
	}
	return out
}
