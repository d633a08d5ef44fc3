package posgrest_test

import (
	"context"
	"os"
	"testing"

	"github.com/jeffleon2/draftea-prepaid-service/config"
	"github.com/jeffleon2/draftea-prepaid-service/internal/models"
	"github.com/jeffleon2/draftea-prepaid-service/internal/repository/posgrest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestJournalRoundTrip needs a reachable Postgres described by the DB_* variables.
func TestJournalRoundTrip(t *testing.T) {
	if os.Getenv("DB_HOST") == "" {
		t.Skip("DB_HOST not set; skipping DB integration test")
	}

	dbConfig := config.DB{
		HOST:     os.Getenv("DB_HOST"),
		USER:     os.Getenv("DB_USER"),
		PASSWORD: os.Getenv("DB_PASSWORD"),
		NAME:     os.Getenv("DB_NAME"),
		PORT:     os.Getenv("DB_PORT"),
		SSLMODE:  os.Getenv("DB_SSLMODE"),
	}
	db, err := dbConfig.GormConnect()
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.LedgerEntry{}))

	ctx := context.Background()
	repo := posgrest.New[models.LedgerEntry](db)
	authorizationID := int64(77)
	entry := &models.LedgerEntry{
		CardID:          900001,
		AuthorizationID: &authorizationID,
		Kind:            models.EntryEarmark,
		Amount:          500,
	}

	require.NoError(t, repo.Create(ctx, entry))
	t.Cleanup(func() { db.Where("card_id = ?", int64(900001)).Delete(&models.LedgerEntry{}) })
	assert.NotEmpty(t, entry.ID)

	entries, err := repo.GetBy(ctx, "card_id = ?", int64(900001))
	require.NoError(t, err)
	require.NotEmpty(t, *entries)

	got := (*entries)[len(*entries)-1]
	assert.Equal(t, entry.ID, got.ID)
	assert.Equal(t, models.EntryEarmark, got.Kind)
	assert.Equal(t, entry.Amount, got.Amount)
	require.NotNil(t, got.AuthorizationID)
	assert.Equal(t, authorizationID, *got.AuthorizationID)

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, len(*all), len(*entries))
}
