package question

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/gokatarajesh/trivia-api/internal/auth"
	"github.com/gokatarajesh/trivia-api/internal/logging"
	httperrors "github.com/gokatarajesh/trivia-api/pkg/http/errors"
)

// Authorizer gates question mutations. A nil Authorizer allows everything.
type Authorizer interface {
	Authorize(r *http.Request) error
}

// HTTPHandler exposes the trivia REST endpoints.
type HTTPHandler struct {
	svc    *Service
	authz  Authorizer
	logger zerolog.Logger
}

// NewHTTPHandler constructs the REST handler. authz may be nil.
func NewHTTPHandler(svc *Service, authz Authorizer, logger zerolog.Logger) *HTTPHandler {
	return &HTTPHandler{
		svc:    svc,
		authz:  authz,
		logger: logger.With().Str("component", "question_http").Logger(),
	}
}

// Register mounts the routes on mux.
func (h *HTTPHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /categories", h.GetCategories)
	mux.HandleFunc("GET /categories/{id}/questions", h.GetCategoryQuestions)
	mux.HandleFunc("GET /questions", h.GetQuestions)
	mux.HandleFunc("POST /questions", h.PostQuestions)
	mux.HandleFunc("DELETE /questions/{id}", h.DeleteQuestion)
	mux.HandleFunc("POST /quizzes", h.PostQuizzes)
}

type categoriesResponse struct {
	Success    bool        `json:"success"`
	Categories CategoryMap `json:"categories"`
}

type questionsResponse struct {
	Success         bool        `json:"success"`
	Questions       []Question  `json:"questions"`
	TotalQuestions  int         `json:"total_questions"`
	Categories      CategoryMap `json:"categories"`
	CurrentCategory string      `json:"current_category"`
}

type categoryQuestionsResponse struct {
	Success         bool       `json:"success"`
	Questions       []Question `json:"questions"`
	TotalQuestions  int        `json:"total_questions"`
	CurrentCategory string     `json:"current_category"`
}

type searchResponse struct {
	Success        bool       `json:"success"`
	Questions      []Question `json:"questions"`
	TotalQuestions int        `json:"total_questions"`
}

type createResponse struct {
	Success         bool       `json:"success"`
	Created         int        `json:"created"`
	QuestionCreated string     `json:"question_created"`
	Questions       []Question `json:"questions"`
	TotalQuestions  int        `json:"total_questions"`
}

type deleteResponse struct {
	Success    bool `json:"success"`
	QuestionID int  `json:"question_id"`
}

type quizResponse struct {
	Success  bool      `json:"success"`
	Question *Question `json:"question,omitempty"`
}

// GetCategories handles GET /categories.
func (h *HTTPHandler) GetCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.svc.Categories(r.Context())
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, categoriesResponse{Success: true, Categories: categories})
}

// GetQuestions handles GET /questions?page=N.
func (h *HTTPHandler) GetQuestions(w http.ResponseWriter, r *http.Request) {
	page, err := h.svc.ListQuestions(r.Context(), pageParam(r))
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, questionsResponse{
		Success:         true,
		Questions:       page.Questions,
		TotalQuestions:  page.TotalQuestions,
		Categories:      page.Categories,
		CurrentCategory: page.CurrentCategory,
	})
}

// GetCategoryQuestions handles GET /categories/{id}/questions.
func (h *HTTPHandler) GetCategoryQuestions(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		httperrors.RespondNotFound(w)
		return
	}
	result, err := h.svc.QuestionsByCategory(r.Context(), id, pageParam(r))
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, categoryQuestionsResponse{
		Success:         true,
		Questions:       result.Questions,
		TotalQuestions:  result.TotalQuestions,
		CurrentCategory: result.CurrentCategory,
	})
}

// PostQuestions handles POST /questions, which searches when the body has a
// searchTerm and creates a question otherwise.
func (h *HTTPHandler) PostQuestions(w http.ResponseWriter, r *http.Request) {
	req, err := DecodeQuestionsRequest(r.Body)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	switch req := req.(type) {
	case SearchRequest:
		h.search(w, r, req)
	case CreateRequest:
		if !h.authorize(w, r) {
			return
		}
		h.create(w, r, req)
	}
}

func (h *HTTPHandler) search(w http.ResponseWriter, r *http.Request, req SearchRequest) {
	result, err := h.svc.SearchQuestions(r.Context(), req, pageParam(r))
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, searchResponse{
		Success:        true,
		Questions:      result.Questions,
		TotalQuestions: result.TotalQuestions,
	})
}

func (h *HTTPHandler) create(w http.ResponseWriter, r *http.Request, req CreateRequest) {
	result, err := h.svc.CreateQuestion(r.Context(), req, pageParam(r))
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, createResponse{
		Success:         true,
		Created:         result.Created.ID,
		QuestionCreated: result.Created.Question,
		Questions:       result.Questions,
		TotalQuestions:  result.TotalQuestions,
	})
}

// DeleteQuestion handles DELETE /questions/{id}.
func (h *HTTPHandler) DeleteQuestion(w http.ResponseWriter, r *http.Request) {
	if !h.authorize(w, r) {
		return
	}
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		httperrors.RespondUnprocessable(w)
		return
	}
	if err := h.svc.DeleteQuestion(r.Context(), id); err != nil {
		h.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, deleteResponse{Success: true, QuestionID: id})
}

// PostQuizzes handles POST /quizzes.
func (h *HTTPHandler) PostQuizzes(w http.ResponseWriter, r *http.Request) {
	req, err := DecodeQuizRequest(r.Body)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	q, err := h.svc.NextQuizQuestion(r.Context(), req)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, quizResponse{Success: true, Question: q})
}

func (h *HTTPHandler) authorize(w http.ResponseWriter, r *http.Request) bool {
	if h.authz == nil {
		return true
	}
	err := h.authz.Authorize(r)
	switch {
	case err == nil:
		return true
	case errors.Is(err, auth.ErrForbidden):
		httperrors.RespondForbidden(w)
	default:
		logger := logging.FromContextOr(r.Context(), h.logger)
		logger.Warn().Err(err).Msg("editor authorization failed")
		httperrors.RespondUnauthorized(w)
	}
	return false
}

// StatusFor maps a service error onto its HTTP status.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrUnprocessable):
		return http.StatusUnprocessableEntity
	case errors.Is(err, ErrBadRequest):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func (h *HTTPHandler) respondError(w http.ResponseWriter, r *http.Request, err error) {
	status := StatusFor(err)
	logger := logging.FromContextOr(r.Context(), h.logger)
	if status >= http.StatusInternalServerError {
		logger.Error().Err(err).Msg("request failed")
	} else {
		logger.Debug().Err(err).Int("status", status).Msg("request rejected")
	}
	httperrors.RespondError(w, status)
}

func pageParam(r *http.Request) int {
	return ParsePage(r.URL.Query().Get("page"))
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		http.Error(w, "failed to encode response", http.StatusInternalServerError)
	}
}
