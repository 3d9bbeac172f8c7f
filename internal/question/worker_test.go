package question

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/gokatarajesh/trivia-api/internal/testutil"
)

func TestCategoryWarmerRefreshesBeforeWaiting(t *testing.T) {
	categories, questions := testutil.Seed(0)
	cache := &memoryCache{}
	svc := NewService(testutil.NewMemStore(categories, questions), cache, ServiceOptions{})
	warmer := NewCategoryWarmer(svc, time.Hour, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := warmer.Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, cache.sets)
	assert.Len(t, cache.lastSet, 6)
}

func TestCategoryWarmerWithoutCacheIsNoop(t *testing.T) {
	categories, questions := testutil.Seed(0)
	store := testutil.NewMemStore(categories, questions)
	svc := NewService(store, nil, ServiceOptions{})

	assert.NoError(t, svc.RefreshCategories(context.Background()))
	assert.True(t, store.Balanced())
}
