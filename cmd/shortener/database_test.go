package main

import (
	"context"
	"io"
	"os"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDatabase(t *testing.T) {
	databaseURL := os.Getenv("TEST_DATABASE_URL")
	if databaseURL == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}
	ctx := context.Background()
	db, err := ConnectDB(ctx, databaseURL, 5*time.Second, log.New(io.Discard))
	require.NoError(t, err)
	defer db.Close()

	// a second connect must tolerate the existing table
	again, err := ConnectDB(ctx, databaseURL, 5*time.Second, log.New(io.Discard))
	require.NoError(t, err)
	again.Close()

	target := "https://example.com/" + time.Now().Format(time.RFC3339Nano)
	id, err := db.SaveURL(ctx, target)
	require.NoError(t, err)

	same, err := db.SaveURL(ctx, target)
	require.NoError(t, err)
	assert.Equal(t, id, same)

	got, err := db.GetURL(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, target, got)

	_, err = db.GetURL(ctx, -1)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, db.Ping(ctx))
}
