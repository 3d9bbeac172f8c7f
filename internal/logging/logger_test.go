package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWithWriterProductionIsJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(&buf, "trivia-api", "production")
	logger.Info().Int("question_id", 7).Msg("question deleted")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "trivia-api", line["app"])
	assert.Equal(t, "production", line["env"])
	assert.Equal(t, "question deleted", line["message"])
	assert.EqualValues(t, 7, line["question_id"])
}

func TestContextRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(&buf, "trivia-api", "production")

	ctx := IntoContext(context.Background(), logger)
	fromCtx := FromContext(ctx)
	fromCtx.Info().Msg("from context")
	assert.Contains(t, buf.String(), "from context")
}

func TestFromContextWithoutLoggerIsNop(t *testing.T) {
	logger := FromContext(context.Background())
	// Nop loggers are disabled, so nothing is emitted and nothing panics.
	logger.Info().Msg("dropped")
	assert.Equal(t, "disabled", logger.GetLevel().String())
}

func TestFromContextOrFallsBack(t *testing.T) {
	var buf bytes.Buffer
	fallback := NewWithWriter(&buf, "trivia-api", "production")

	got := FromContextOr(context.Background(), fallback)
	got.Info().Msg("fallback used")
	assert.Contains(t, buf.String(), "fallback used")
}
