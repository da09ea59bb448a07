package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDocument_AllCollectionsPresent(t *testing.T) {
	data, err := EncodeDocument(NewDocument())
	require.NoError(t, err)

	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &raw))

	for _, name := range []string{
		CollectionUsers,
		CollectionTransactions,
		CollectionMarketplacePurchases,
		CollectionMarketplaceOrders,
		CollectionFlightBookings,
		CollectionHotelBookings,
		CollectionUtilityBills,
	} {
		assert.JSONEq(t, `[]`, string(raw[name]), name)
	}
}

func TestDecodeDocument(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		users   int
		wantErr bool
	}{
		{name: "empty input", input: "", users: 0},
		{name: "whitespace", input: "  \n", users: 0},
		{name: "missing collections", input: `{"users":[{"id":1,"wallet_address":"0xABC","balance":10000,"created_at":"2025-06-28T10:00:00Z"}]}`, users: 1},
		{name: "malformed", input: `{"users":`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := DecodeDocument([]byte(tt.input))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Len(t, doc.Users, tt.users)
			assert.NotNil(t, doc.Transactions)
			assert.NotNil(t, doc.UtilityBills)
			assert.NotNil(t, doc.Sequences)
		})
	}
}

func TestDocument_NextID(t *testing.T) {
	doc := NewDocument()

	assert.Equal(t, int64(1), doc.NextID(CollectionUsers, 0))
	assert.Equal(t, int64(2), doc.NextID(CollectionUsers, 1))

	// Documents without counters continue after the largest stored id.
	assert.Equal(t, int64(8), doc.NextID(CollectionTransactions, 7))

	// Ids are never reused, even if the largest record disappears.
	assert.Equal(t, int64(9), doc.NextID(CollectionTransactions, 3))

	var zero Document
	assert.Equal(t, int64(1), zero.NextID(CollectionFlightBookings, 0))
}

func TestEncodeDocument_AmountsAreNumbers(t *testing.T) {
	doc := NewDocument()
	doc.Users = append(doc.Users, User{
		ID:            1,
		WalletAddress: "0xABC",
		Balance:       decimal.RequireFromString("9500.5"),
		CreatedAt:     time.Date(2025, 6, 28, 10, 0, 0, 0, time.UTC),
	})

	data, err := EncodeDocument(doc)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"balance": 9500.5`)

	back, err := DecodeDocument(data)
	require.NoError(t, err)
	require.Len(t, back.Users, 1)
	assert.True(t, back.Users[0].Balance.Equal(decimal.RequireFromString("9500.5")))
}
