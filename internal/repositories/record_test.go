package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/rewipay-ledger/internal/models"
)

func fixedClock(start time.Time) func() time.Time {
	current := start
	return func() time.Time {
		current = current.Add(time.Second)
		return current
	}
}

func TestRecordRepository_SaveAssignsSequentialIDs(t *testing.T) {
	uow, _ := newFileUnitOfWork(t)
	repo := NewTransactionRepository(uow)
	ctx := context.Background()

	for i := 1; i <= 3; i++ {
		tx, err := repo.Record(ctx, 1, models.TransactionTypeFlightBooking, decimal.NewFromInt(-10), "Flight")
		require.NoError(t, err)
		assert.Equal(t, int64(i), tx.ID)
		assert.False(t, tx.CreatedAt.IsZero())
	}

	// Separate collections keep separate counters.
	flights := NewFlightBookingRepository(uow)
	booking, err := flights.Save(ctx, &models.FlightBooking{UserID: 1, FlightID: "FL1000"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), booking.ID)
}

func TestRecordRepository_IDsContinueFromStoredMaximum(t *testing.T) {
	store := &memoryStore{}
	uow := NewUnitOfWork(store)
	ctx := context.Background()

	// A document written without counters.
	require.NoError(t, uow.Update(ctx, func(doc *models.Document) error {
		doc.Transactions = append(doc.Transactions, models.Transaction{ID: 41, UserID: 1})
		doc.Sequences = map[string]int64{}
		return nil
	}))

	tx, err := NewTransactionRepository(uow).Record(ctx, 1, models.TransactionTypeTransferIn, decimal.NewFromInt(5), "in")
	require.NoError(t, err)
	assert.Equal(t, int64(42), tx.ID)
}

func TestRecordRepository_ListByUserID(t *testing.T) {
	uow, _ := newFileUnitOfWork(t)
	repo := NewTransactionRepository(uow)
	repo.now = fixedClock(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	ctx := context.Background()

	for i := 0; i < 60; i++ {
		_, err := repo.Record(ctx, 1, models.TransactionTypeMarketplacePurchase, decimal.NewFromInt(int64(-i)), "p")
		require.NoError(t, err)
	}
	_, err := repo.Record(ctx, 2, models.TransactionTypeTransferIn, decimal.NewFromInt(1), "other")
	require.NoError(t, err)

	list, err := repo.ListByUserID(ctx, 1, 50)
	require.NoError(t, err)
	require.Len(t, list, 50)
	assert.Equal(t, int64(60), list[0].ID)
	assert.Equal(t, int64(11), list[49].ID)
	for i := 1; i < len(list); i++ {
		assert.True(t, list[i-1].CreatedAt.After(list[i].CreatedAt))
		assert.Equal(t, int64(1), list[i].UserID)
	}

	all, err := repo.ListByUserID(ctx, 1, 0)
	require.NoError(t, err)
	assert.Len(t, all, 60)

	none, err := repo.ListByUserID(ctx, 3, 50)
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestRecordRepository_ListBreaksTiesByID(t *testing.T) {
	uow, _ := newFileUnitOfWork(t)
	repo := NewHotelBookingRepository(uow)
	at := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	repo.now = func() time.Time { return at }
	ctx := context.Background()

	for range 3 {
		_, err := repo.Save(ctx, &models.HotelBooking{UserID: 7, HotelID: "HTL1"})
		require.NoError(t, err)
	}

	list, err := repo.ListByUserID(ctx, 7, 10)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, []int64{3, 2, 1}, []int64{list[0].ID, list[1].ID, list[2].ID})
}

func TestRecordRepository_Count(t *testing.T) {
	uow, _ := newFileUnitOfWork(t)
	repo := NewUtilityBillRepository(uow)
	ctx := context.Background()

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	_, err = repo.Save(ctx, &models.UtilityBill{UserID: 1, BillerID: "1"})
	require.NoError(t, err)

	n, err = repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}
