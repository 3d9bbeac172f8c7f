package ws

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMessageEncodesPayload(t *testing.T) {
	msg, err := NewMessage(TypeQuizComplete, QuizCompletePayload{Served: 3})
	require.NoError(t, err)
	assert.Equal(t, TypeQuizComplete, msg.Type)
	assert.JSONEq(t, `{"served":3}`, string(msg.Payload))
}

func TestNewMessageWithoutPayload(t *testing.T) {
	msg, err := NewMessage(TypeNext, nil)
	require.NoError(t, err)
	assert.Nil(t, msg.Payload)
}

func TestDecode(t *testing.T) {
	msg, err := Decode([]byte(`{"type":"start","payload":{"quiz_category":{"id":2}}}`))
	require.NoError(t, err)
	assert.Equal(t, TypeStart, msg.Type)
	assert.JSONEq(t, `{"quiz_category":{"id":2}}`, string(msg.Payload))

	_, err = Decode([]byte(`{"payload":{}}`))
	assert.Error(t, err)

	_, err = Decode([]byte(`not json`))
	assert.Error(t, err)
}
