package repositories

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/rewipay-ledger/internal/models"
)

func TestDocumentFileRepository_LoadCreatesMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "database.json")
	repo := NewDocumentFileRepository(path)

	doc, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, doc.Users)
	assert.NotNil(t, doc.Transactions)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"users": []`)
	assert.Contains(t, string(data), `"utility_bills": []`)
}

func TestDocumentFileRepository_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "database.json")
	repo := NewDocumentFileRepository(path)
	ctx := context.Background()

	doc := models.NewDocument()
	doc.Users = append(doc.Users, models.User{ID: 1, WalletAddress: "0xABC", Balance: decimal.RequireFromString("5500.25")})
	require.NoError(t, repo.Save(ctx, doc))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"balance": 5500.25`)

	loaded, err := repo.Load(ctx)
	require.NoError(t, err)
	require.Len(t, loaded.Users, 1)
	assert.Equal(t, "0xABC", loaded.Users[0].WalletAddress)
	assert.True(t, loaded.Users[0].Balance.Equal(decimal.RequireFromString("5500.25")))

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary files must not be left behind")
}

func TestDocumentFileRepository_LoadsDocumentWithMissingCollections(t *testing.T) {
	path := filepath.Join(t.TempDir(), "database.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"users":[{"id":3,"wallet_address":"0x1","balance":10000,"created_at":"2025-01-01T00:00:00Z"}],"transactions":[]}`), 0o644))

	doc, err := NewDocumentFileRepository(path).Load(context.Background())
	require.NoError(t, err)
	require.Len(t, doc.Users, 1)
	assert.NotNil(t, doc.MarketplaceOrders)
	assert.NotNil(t, doc.FlightBookings)
	assert.NotNil(t, doc.HotelBookings)
	assert.NotNil(t, doc.UtilityBills)
}

func TestDocumentFileRepository_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "database.json")
	require.NoError(t, os.WriteFile(path, []byte(`{not json`), 0o644))

	_, err := NewDocumentFileRepository(path).Load(context.Background())
	assert.ErrorIs(t, err, models.ErrStoreIO)
}

func TestDocumentFileRepository_SaveIntoFile(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	// The parent "directory" is a regular file.
	repo := NewDocumentFileRepository(filepath.Join(blocker, "database.json"))
	err := repo.Save(context.Background(), models.NewDocument())
	assert.ErrorIs(t, err, models.ErrStoreIO)
}
