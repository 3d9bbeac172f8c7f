//go:build integration
// +build integration

package repository

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gokatarajesh/trivia-api/internal/db/migrations"
	sqlcgen "github.com/gokatarajesh/trivia-api/internal/db/sqlc"
)

var testDSN string

func TestMain(m *testing.M) {
	pool, err := dockertest.NewPool("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "connect to docker: %v\n", err)
		os.Exit(1)
	}

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "16-alpine",
		Env: []string{
			"POSTGRES_USER=trivia",
			"POSTGRES_PASSWORD=trivia",
			"POSTGRES_DB=trivia_test",
		},
	}, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
		hc.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "start postgres: %v\n", err)
		os.Exit(1)
	}
	_ = resource.Expire(120)

	testDSN = fmt.Sprintf("host=localhost port=%s user=trivia password=trivia dbname=trivia_test sslmode=disable",
		resource.GetPort("5432/tcp"))

	pool.MaxWait = 60 * time.Second
	if err := pool.Retry(func() error {
		db, err := sql.Open("pgx", testDSN)
		if err != nil {
			return err
		}
		defer db.Close()
		return db.Ping()
	}); err != nil {
		fmt.Fprintf(os.Stderr, "postgres never became ready: %v\n", err)
		_ = pool.Purge(resource)
		os.Exit(1)
	}

	db, err := sql.Open("pgx", testDSN)
	if err == nil {
		err = migrations.Up(context.Background(), db)
		db.Close()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "migrate: %v\n", err)
		_ = pool.Purge(resource)
		os.Exit(1)
	}

	code := m.Run()
	_ = pool.Purge(resource)
	os.Exit(code)
}

func openSession(t *testing.T) Session {
	t.Helper()
	ctx := context.Background()
	pgPool, err := pgxpool.New(ctx, testDSN)
	require.NoError(t, err)
	t.Cleanup(pgPool.Close)

	sess, err := NewPool(pgPool).Open(ctx)
	require.NoError(t, err)
	t.Cleanup(sess.Close)
	return sess
}

func TestSeededCategories(t *testing.T) {
	sess := openSession(t)

	cats, err := sess.ListCategories(context.Background())
	require.NoError(t, err)
	require.Len(t, cats, 6)
	assert.Equal(t, "Science", cats[0].Type)
}

func TestQuestionLifecycle(t *testing.T) {
	ctx := context.Background()
	sess := openSession(t)

	created, err := sess.InsertQuestion(ctx, sqlcgen.InsertQuestionParams{
		Question:   "Who let the dogs",
		Answer:     "Who who who who",
		Category:   2,
		Difficulty: 5,
	})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	got, err := sess.GetQuestion(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)

	term := "DOGS"
	found, err := sess.ListQuestions(ctx, sqlcgen.QuestionFilter{Search: &term})
	require.NoError(t, err)
	assert.NotEmpty(t, found)

	require.NoError(t, sess.DeleteQuestion(ctx, created.ID))
	_, err = sess.GetQuestion(ctx, created.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, sess.DeleteQuestion(ctx, created.ID), ErrNotFound)
}

func TestInsertUnknownCategory(t *testing.T) {
	sess := openSession(t)

	_, err := sess.InsertQuestion(context.Background(), sqlcgen.InsertQuestionParams{
		Question: "q", Answer: "a", Category: 9999, Difficulty: 1,
	})
	assert.ErrorIs(t, err, ErrConstraint)
}

func TestListByCategory(t *testing.T) {
	sess := openSession(t)

	id := int32(1)
	rows, err := sess.ListQuestions(context.Background(), sqlcgen.QuestionFilter{CategoryID: &id})
	require.NoError(t, err)
	require.NotEmpty(t, rows)
	for _, row := range rows {
		assert.Equal(t, int32(1), row.Category)
	}
}
