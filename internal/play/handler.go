// Package play serves the live quiz over WebSocket. Each connection keeps
// the ids it has served for its own lifetime; nothing is persisted.
package play

import (
	"bytes"
	"context"
	"errors"
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"github.com/gokatarajesh/trivia-api/internal/logging"
	"github.com/gokatarajesh/trivia-api/internal/question"
	httperrors "github.com/gokatarajesh/trivia-api/pkg/http/errors"
	ws "github.com/gokatarajesh/trivia-api/pkg/http/ws"
)

// QuizService picks the next unseen question.
type QuizService interface {
	NextQuizQuestion(ctx context.Context, req question.QuizRequest) (*question.Question, error)
}

// Handler upgrades GET /ws/quizzes and runs one quiz per connection.
type Handler struct {
	svc      QuizService
	upgrader *websocket.Upgrader
	logger   zerolog.Logger
}

// NewHandler creates the live quiz handler.
func NewHandler(svc QuizService, upgrader *websocket.Upgrader, logger zerolog.Logger) *Handler {
	return &Handler{
		svc:      svc,
		upgrader: upgrader,
		logger:   logger.With().Str("component", "play").Logger(),
	}
}

var errNotStarted = errors.New("quiz not started")

type quiz struct {
	started    bool
	categoryID int
	served     []int
}

// HandleWebSocket upgrades the request and serves messages until the peer
// disconnects.
func (h *Handler) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	logger := logging.FromContextOr(r.Context(), h.logger)

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Warn().Err(err).Msg("WebSocket upgrade failed")
		return
	}

	wsConn := ws.NewConnection(conn, logger)
	go wsConn.WritePump()

	ctx := logging.IntoContext(r.Context(), logger)
	state := &quiz{}
	wsConn.ReadPump(
		func(msg ws.Message) error {
			return h.handleMessage(ctx, wsConn, state, msg)
		},
		func(err error) {
			logger.Debug().Err(err).Msg("invalid message")
			h.sendError(wsConn, "", http.StatusBadRequest)
		},
	)

	wsConn.Close()
	logger.Debug().Int("served", len(state.served)).Msg("quiz connection closed")
}

func (h *Handler) handleMessage(ctx context.Context, conn *ws.Connection, state *quiz, msg ws.Message) error {
	switch msg.Type {
	case ws.TypeStart:
		return h.handleStart(ctx, conn, state, msg)
	case ws.TypeNext:
		if !state.started {
			h.sendError(conn, msg.RequestID, http.StatusBadRequest)
			return errNotStarted
		}
		return h.serveNext(ctx, conn, state, msg.RequestID)
	default:
		return h.sendError(conn, msg.RequestID, http.StatusBadRequest)
	}
}

// handleStart resets the connection's quiz. The payload follows the POST
// /quizzes body: quiz_category is required and previous_questions seeds the
// served set.
func (h *Handler) handleStart(ctx context.Context, conn *ws.Connection, state *quiz, msg ws.Message) error {
	req, err := question.DecodeQuizRequest(bytes.NewReader(msg.Payload))
	if err != nil {
		h.sendError(conn, msg.RequestID, question.StatusFor(err))
		return err
	}

	*state = quiz{
		started:    true,
		categoryID: req.CategoryID,
		served:     append([]int(nil), req.PreviousQuestions...),
	}
	return h.serveNext(ctx, conn, state, msg.RequestID)
}

func (h *Handler) serveNext(ctx context.Context, conn *ws.Connection, state *quiz, requestID string) error {
	q, err := h.svc.NextQuizQuestion(ctx, question.QuizRequest{
		PreviousQuestions: state.served,
		CategoryID:        state.categoryID,
	})
	if err != nil {
		h.sendError(conn, requestID, question.StatusFor(err))
		return err
	}

	if q == nil {
		return h.send(conn, requestID, ws.TypeQuizComplete, ws.QuizCompletePayload{Served: len(state.served)})
	}
	state.served = append(state.served, q.ID)
	return h.send(conn, requestID, ws.TypeQuestion, ws.QuestionPayload{Question: q, Served: len(state.served)})
}

func (h *Handler) send(conn *ws.Connection, requestID, msgType string, payload any) error {
	msg, err := ws.NewMessage(msgType, payload)
	if err != nil {
		return err
	}
	msg.RequestID = requestID
	return conn.Send(msg)
}

func (h *Handler) sendError(conn *ws.Connection, requestID string, status int) error {
	return h.send(conn, requestID, ws.TypeError, ws.ErrorPayload{
		Error:   status,
		Message: httperrors.MessageFor(status),
	})
}
