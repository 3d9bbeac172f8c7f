package question

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

// fixedSource always picks the same index, clamped to the range.
type fixedSource int

func (f fixedSource) Intn(n int) int { return min(int(f), n-1) }

func questionsWithIDs(ids ...int) []Question {
	out := make([]Question, 0, len(ids))
	for _, id := range ids {
		out = append(out, Question{ID: id})
	}
	return out
}

func TestPickUnseenSkipsPrevious(t *testing.T) {
	candidates := questionsWithIDs(1, 2, 3, 4)
	src := rand.New(rand.NewSource(7))

	for i := 0; i < 200; i++ {
		q, ok := PickUnseen(candidates, []int{1, 3}, src)
		assert.True(t, ok)
		assert.Contains(t, []int{2, 4}, q.ID)
	}
}

func TestPickUnseenUsesSourceOverUnseenOnly(t *testing.T) {
	candidates := questionsWithIDs(10, 20, 30)

	q, ok := PickUnseen(candidates, []int{10}, fixedSource(0))
	assert.True(t, ok)
	assert.Equal(t, 20, q.ID)

	q, ok = PickUnseen(candidates, []int{10}, fixedSource(1))
	assert.True(t, ok)
	assert.Equal(t, 30, q.ID)
}

func TestPickUnseenExhausted(t *testing.T) {
	_, ok := PickUnseen(questionsWithIDs(1, 2), []int{2, 1, 99}, nil)
	assert.False(t, ok)

	_, ok = PickUnseen(nil, nil, nil)
	assert.False(t, ok)
}

func TestPickUnseenCoversEveryCandidate(t *testing.T) {
	candidates := questionsWithIDs(1, 2, 3, 4, 5)
	src := rand.New(rand.NewSource(1))

	var served []int
	for {
		q, ok := PickUnseen(candidates, served, src)
		if !ok {
			break
		}
		assert.NotContains(t, served, q.ID)
		served = append(served, q.ID)
	}
	assert.ElementsMatch(t, []int{1, 2, 3, 4, 5}, served)
}
