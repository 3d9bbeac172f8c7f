package question

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeQuestionsRequest(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		want    QuestionsRequest
		wantErr error
	}{
		{
			name: "search",
			body: `{"searchTerm":"title"}`,
			want: SearchRequest{Term: "title"},
		},
		{
			name: "empty search term still searches",
			body: `{"searchTerm":""}`,
			want: SearchRequest{Term: ""},
		},
		{
			name: "search wins over create fields",
			body: `{"searchTerm":"x","question":"q","answer":"a","difficulty":1,"category":1}`,
			want: SearchRequest{Term: "x"},
		},
		{
			name: "null search term means create",
			body: `{"searchTerm":null,"question":"q","answer":"a","difficulty":1,"category":2}`,
			want: CreateRequest{Question: "q", Answer: "a", Difficulty: 1, Category: 2},
		},
		{
			name: "create with numeric strings",
			body: `{"question":"Who let the dogs out?","answer":"Baha Men","difficulty":"2","category":"5"}`,
			want: CreateRequest{Question: "Who let the dogs out?", Answer: "Baha Men", Difficulty: 2, Category: 5},
		},
		{
			name: "create with integral float",
			body: `{"question":"q","answer":"a","difficulty":3.0,"category":1}`,
			want: CreateRequest{Question: "q", Answer: "a", Difficulty: 3, Category: 1},
		},
		{
			name:    "missing answer",
			body:    `{"question":"q","difficulty":1,"category":1}`,
			wantErr: ErrUnprocessable,
		},
		{
			name:    "null category",
			body:    `{"question":"q","answer":"a","difficulty":1,"category":null}`,
			wantErr: ErrUnprocessable,
		},
		{
			name:    "non-numeric difficulty",
			body:    `{"question":"q","answer":"a","difficulty":"one","category":1}`,
			wantErr: ErrUnprocessable,
		},
		{
			name:    "fractional category",
			body:    `{"question":"q","answer":"a","difficulty":1,"category":1.5}`,
			wantErr: ErrUnprocessable,
		},
		{
			name:    "question not a string",
			body:    `{"question":7,"answer":"a","difficulty":1,"category":1}`,
			wantErr: ErrUnprocessable,
		},
		{
			name:    "search term not a string",
			body:    `{"searchTerm":5}`,
			wantErr: ErrUnprocessable,
		},
		{
			name:    "empty object",
			body:    `{}`,
			wantErr: ErrUnprocessable,
		},
		{
			name:    "malformed json",
			body:    `{"searchTerm":`,
			wantErr: ErrBadRequest,
		},
		{
			name:    "not an object",
			body:    `null`,
			wantErr: ErrBadRequest,
		},
		{
			name:    "array body",
			body:    `[1,2]`,
			wantErr: ErrBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeQuestionsRequest(strings.NewReader(tt.body))
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecodeQuizRequest(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		want    QuizRequest
		wantErr error
	}{
		{
			name: "all categories",
			body: `{"previous_questions":[],"quiz_category":{"id":0,"type":"click"}}`,
			want: QuizRequest{PreviousQuestions: []int{}, CategoryID: 0},
		},
		{
			name: "category with history",
			body: `{"previous_questions":[4,"9"],"quiz_category":{"id":"3","type":"Geography"}}`,
			want: QuizRequest{PreviousQuestions: []int{4, 9}, CategoryID: 3},
		},
		{
			name: "previous questions missing",
			body: `{"quiz_category":{"id":2}}`,
			want: QuizRequest{CategoryID: 2},
		},
		{
			name: "previous questions null",
			body: `{"previous_questions":null,"quiz_category":{"id":2}}`,
			want: QuizRequest{CategoryID: 2},
		},
		{
			name:    "missing quiz category",
			body:    `{"previous_questions":[]}`,
			wantErr: ErrBadRequest,
		},
		{
			name:    "missing category id",
			body:    `{"quiz_category":{"type":"Art"}}`,
			wantErr: ErrBadRequest,
		},
		{
			name:    "category not an object",
			body:    `{"quiz_category":2}`,
			wantErr: ErrBadRequest,
		},
		{
			name:    "previous questions not a list",
			body:    `{"previous_questions":5,"quiz_category":{"id":1}}`,
			wantErr: ErrBadRequest,
		},
		{
			name:    "previous question not an int",
			body:    `{"previous_questions":["x"],"quiz_category":{"id":1}}`,
			wantErr: ErrBadRequest,
		},
		{
			name:    "empty body",
			body:    ``,
			wantErr: ErrBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeQuizRequest(strings.NewReader(tt.body))
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
