package question

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"
)

// QuestionsRequest is the decoded body of POST /questions. It is either a
// SearchRequest or a CreateRequest.
type QuestionsRequest interface {
	isQuestionsRequest()
}

// SearchRequest asks for questions whose text contains Term.
type SearchRequest struct {
	Term string
}

// CreateRequest carries a fully validated new question.
type CreateRequest struct {
	Question   string
	Answer     string
	Difficulty int
	Category   int
}

func (SearchRequest) isQuestionsRequest() {}
func (CreateRequest) isQuestionsRequest() {}

// DecodeQuestionsRequest selects search mode when the body carries a
// non-null searchTerm and create mode otherwise. Create mode requires
// question, answer, difficulty and category to be present and non-null.
func DecodeQuestionsRequest(r io.Reader) (QuestionsRequest, error) {
	fields, err := decodeObject(r)
	if err != nil {
		return nil, err
	}

	if raw, ok := present(fields, "searchTerm"); ok {
		var term string
		if err := json.Unmarshal(raw, &term); err != nil {
			return nil, fmt.Errorf("%w: searchTerm must be a string", ErrUnprocessable)
		}
		return SearchRequest{Term: term}, nil
	}

	var req CreateRequest
	for _, name := range []string{"question", "answer", "difficulty", "category"} {
		raw, ok := present(fields, name)
		if !ok {
			return nil, fmt.Errorf("%w: missing %s", ErrUnprocessable, name)
		}
		switch name {
		case "question", "answer":
			var s string
			if err := json.Unmarshal(raw, &s); err != nil {
				return nil, fmt.Errorf("%w: %s must be a string", ErrUnprocessable, name)
			}
			if name == "question" {
				req.Question = s
			} else {
				req.Answer = s
			}
		default:
			n, err := parseInt(raw)
			if err != nil {
				return nil, fmt.Errorf("%w: %s: %v", ErrUnprocessable, name, err)
			}
			if name == "difficulty" {
				req.Difficulty = n
			} else {
				req.Category = n
			}
		}
	}
	return req, nil
}

// QuizRequest is the decoded body of POST /quizzes.
type QuizRequest struct {
	PreviousQuestions []int
	CategoryID        int
}

// DecodeQuizRequest requires quiz_category.id; previous_questions may be
// absent or null.
func DecodeQuizRequest(r io.Reader) (QuizRequest, error) {
	fields, err := decodeObject(r)
	if err != nil {
		return QuizRequest{}, err
	}

	var req QuizRequest
	if raw, ok := present(fields, "previous_questions"); ok {
		var items []json.RawMessage
		if err := json.Unmarshal(raw, &items); err != nil {
			return QuizRequest{}, fmt.Errorf("%w: previous_questions must be a list", ErrBadRequest)
		}
		req.PreviousQuestions = make([]int, 0, len(items))
		for _, item := range items {
			id, err := parseInt(item)
			if err != nil {
				return QuizRequest{}, fmt.Errorf("%w: previous_questions: %v", ErrBadRequest, err)
			}
			req.PreviousQuestions = append(req.PreviousQuestions, id)
		}
	}

	rawCategory, ok := present(fields, "quiz_category")
	if !ok {
		return QuizRequest{}, fmt.Errorf("%w: missing quiz_category", ErrBadRequest)
	}
	var category map[string]json.RawMessage
	if err := json.Unmarshal(rawCategory, &category); err != nil {
		return QuizRequest{}, fmt.Errorf("%w: quiz_category must be an object", ErrBadRequest)
	}
	rawID, ok := present(category, "id")
	if !ok {
		return QuizRequest{}, fmt.Errorf("%w: missing quiz_category.id", ErrBadRequest)
	}
	if req.CategoryID, err = parseInt(rawID); err != nil {
		return QuizRequest{}, fmt.Errorf("%w: quiz_category.id: %v", ErrBadRequest, err)
	}
	return req, nil
}

func decodeObject(r io.Reader) (map[string]json.RawMessage, error) {
	var fields map[string]json.RawMessage
	if err := json.NewDecoder(r).Decode(&fields); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadRequest, err)
	}
	if fields == nil {
		return nil, fmt.Errorf("%w: body must be a JSON object", ErrBadRequest)
	}
	return fields, nil
}

// present reports whether key exists with a non-null value.
func present(fields map[string]json.RawMessage, key string) (json.RawMessage, bool) {
	raw, ok := fields[key]
	if !ok || bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return nil, false
	}
	return raw, true
}

// parseInt accepts an integral JSON number or a string holding one.
func parseInt(raw json.RawMessage) (int, error) {
	var v any
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(&v); err != nil {
		return 0, err
	}

	var text string
	switch t := v.(type) {
	case json.Number:
		text = t.String()
	case string:
		text = t
	default:
		return 0, fmt.Errorf("expected integer, got %s", raw)
	}

	if n, err := strconv.Atoi(text); err == nil {
		return n, nil
	}
	f, err := strconv.ParseFloat(text, 64)
	if err != nil || f != math.Trunc(f) || f > math.MaxInt32 || f < math.MinInt32 {
		return 0, fmt.Errorf("expected integer, got %s", raw)
	}
	return int(f), nil
}
