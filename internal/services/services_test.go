package services

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/rewipay-ledger/internal/models"
	"github.com/sbilibin2017/rewipay-ledger/internal/repositories"
)

// testStack wires the services over a file-backed document in a temp dir.
type testStack struct {
	uow          *repositories.UnitOfWork
	accounts     *repositories.AccountRepository
	transactions *repositories.TransactionRepository

	ledger      *LedgerService
	flights     *FlightService
	hotels      *HotelService
	marketplace *MarketplaceService
	utility     *UtilityService

	flightRepo   *repositories.RecordRepository[models.FlightBooking, *models.FlightBooking]
	hotelRepo    *repositories.RecordRepository[models.HotelBooking, *models.HotelBooking]
	purchaseRepo *repositories.RecordRepository[models.MarketplacePurchase, *models.MarketplacePurchase]
	orderRepo    *repositories.RecordRepository[models.MarketplaceOrder, *models.MarketplaceOrder]
	billRepo     *repositories.RecordRepository[models.UtilityBill, *models.UtilityBill]
}

func newTestStack(t *testing.T, publisher Publisher) *testStack {
	t.Helper()

	store := repositories.NewDocumentFileRepository(filepath.Join(t.TempDir(), "database.json"))
	uow := repositories.NewUnitOfWork(store)

	s := &testStack{
		uow:          uow,
		accounts:     repositories.NewAccountRepository(uow, models.DefaultInitialBalance),
		transactions: repositories.NewTransactionRepository(uow),
		flightRepo:   repositories.NewFlightBookingRepository(uow),
		hotelRepo:    repositories.NewHotelBookingRepository(uow),
		purchaseRepo: repositories.NewMarketplacePurchaseRepository(uow),
		orderRepo:    repositories.NewMarketplaceOrderRepository(uow),
		billRepo:     repositories.NewUtilityBillRepository(uow),
	}
	s.ledger = NewLedgerService(uow, s.accounts, s.transactions, publisher, DefaultListLimit)
	s.flights = NewFlightService(s.ledger, s.flightRepo)
	s.hotels = NewHotelService(s.ledger, s.hotelRepo)
	s.marketplace = NewMarketplaceService(s.ledger, s.purchaseRepo, s.orderRepo)
	s.utility = NewUtilityService(s.ledger, s.billRepo)
	return s
}

// snapshot returns the encoded document for before/after comparisons.
func (s *testStack) snapshot(t *testing.T) string {
	t.Helper()
	var out string
	err := s.uow.View(context.Background(), func(doc *models.Document) error {
		data, err := models.EncodeDocument(doc)
		out = string(data)
		return err
	})
	require.NoError(t, err)
	return out
}

func (s *testStack) balance(t *testing.T, walletAddress string) decimal.Decimal {
	t.Helper()
	user, err := s.accounts.GetByWalletAddress(context.Background(), walletAddress)
	require.NoError(t, err)
	require.NotNil(t, user)
	return user.Balance
}

func (s *testStack) transactionCount(t *testing.T) int {
	t.Helper()
	n, err := s.transactions.Count(context.Background())
	require.NoError(t, err)
	return n
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// decEq matches a decimal.Decimal by value rather than representation.
type decEq struct{ want decimal.Decimal }

func (m decEq) Matches(x interface{}) bool {
	d, ok := x.(decimal.Decimal)
	return ok && d.Equal(m.want)
}

func (m decEq) String() string { return "is decimal " + m.want.String() }
