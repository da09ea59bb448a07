package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/sbilibin2017/rewipay-ledger/internal/logger"
	"github.com/sbilibin2017/rewipay-ledger/internal/models"
)

//go:generate mockgen -source=ledger.go -destination=ledger_mock.go -package=services

// DefaultListLimit caps every list endpoint when no limit is given.
const DefaultListLimit = 50

// Transactor runs fn as one atomic unit: every change made through ctx is
// persisted together or not at all.
type Transactor interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// AccountRepository resolves wallet addresses to accounts.
type AccountRepository interface {
	GetByWalletAddress(ctx context.Context, walletAddress string) (*models.User, error)                      // Returns nil when missing
	GetOrCreate(ctx context.Context, walletAddress string) (*models.User, error)                             // Creates on first reference
	UpdateBalance(ctx context.Context, walletAddress string, balance decimal.Decimal) (*models.User, error) // Overwrites the balance
}

// TransactionRepository is the append-only ledger.
type TransactionRepository interface {
	Record(ctx context.Context, userID int64, txType models.TransactionType, amount decimal.Decimal, description string) (*models.Transaction, error)
	ListByUserID(ctx context.Context, userID int64, limit int) ([]models.Transaction, error)
}

// Publisher receives the ledger entries of every committed unit.
type Publisher interface {
	Publish(ctx context.Context, events ...models.TransactionEvent)
}

// Receipt is the outcome of a balance-changing operation.
type Receipt struct {
	User        *models.User        // Account after the operation
	Transaction *models.Transaction // Ledger entry written
}

// LedgerService owns every balance change. Each change updates the balance
// and appends the matching ledger entry in the same unit of work.
type LedgerService struct {
	tx           Transactor
	accounts     AccountRepository
	transactions TransactionRepository
	publisher    Publisher
	listLimit    int
}

// NewLedgerService creates a LedgerService. A nil publisher disables events.
func NewLedgerService(
	tx Transactor,
	accounts AccountRepository,
	transactions TransactionRepository,
	publisher Publisher,
	listLimit int,
) *LedgerService {
	if listLimit <= 0 {
		listLimit = DefaultListLimit
	}
	return &LedgerService{
		tx:           tx,
		accounts:     accounts,
		transactions: transactions,
		publisher:    publisher,
		listLimit:    listLimit,
	}
}

// ListLimit returns the configured default list size.
func (s *LedgerService) ListLimit() int {
	return s.listLimit
}

// GetOrCreateAccount returns the account of walletAddress, creating it on first use.
func (s *LedgerService) GetOrCreateAccount(ctx context.Context, walletAddress string) (*models.User, error) {
	user, err := s.accounts.GetOrCreate(ctx, walletAddress)
	if err != nil {
		logger.Log.Errorw("failed to get or create account", "wallet_address", walletAddress, "error", err)
		return nil, err
	}
	return user, nil
}

// RecordTransaction appends a ledger entry without touching any balance.
func (s *LedgerService) RecordTransaction(
	ctx context.Context,
	userID int64,
	txType models.TransactionType,
	amount decimal.Decimal,
	description string,
) (*models.Transaction, error) {
	txn, err := s.transactions.Record(ctx, userID, txType, amount, description)
	if err != nil {
		logger.Log.Errorw("failed to record transaction", "user_id", userID, "type", txType, "error", err)
		return nil, err
	}
	return txn, nil
}

// ListTransactions returns the newest entries of walletAddress. A
// non-positive limit falls back to the configured default.
func (s *LedgerService) ListTransactions(ctx context.Context, walletAddress string, limit int) ([]models.Transaction, error) {
	user, err := s.GetOrCreateAccount(ctx, walletAddress)
	if err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = s.listLimit
	}

	txns, err := s.transactions.ListByUserID(ctx, user.ID, limit)
	if err != nil {
		logger.Log.Errorw("failed to list transactions", "wallet_address", walletAddress, "error", err)
		return nil, err
	}
	return txns, nil
}

// Charge debits price from walletAddress and appends a ledger entry of
// -price. apply runs in the same unit with the debited account and writes
// the feature record; if it fails, the debit is discarded too. A balance
// below price is rejected with *models.InsufficientBalanceError and nothing
// is written.
func (s *LedgerService) Charge(
	ctx context.Context,
	walletAddress string,
	price decimal.Decimal,
	txType models.TransactionType,
	description string,
	apply func(ctx context.Context, payer *models.User) error,
) (*Receipt, error) {
	if !price.IsPositive() {
		return nil, fmt.Errorf("%w: price %s", models.ErrInvalidAmount, price)
	}

	if _, err := s.GetOrCreateAccount(ctx, walletAddress); err != nil {
		return nil, err
	}

	var receipt *Receipt
	err := s.atomically(ctx, func(ctx context.Context) error {
		var err error
		receipt, err = s.Debit(ctx, walletAddress, price, txType, description)
		if err != nil {
			return err
		}
		if apply != nil {
			return apply(ctx, receipt.User)
		}
		return nil
	})
	if err != nil {
		logger.Log.Errorw("charge failed",
			"wallet_address", walletAddress,
			"price", price,
			"type", txType,
			"error", err,
		)
		return nil, err
	}
	return receipt, nil
}

// Debit decreases the balance by amount after checking it is covered.
// It joins the unit carried by ctx, or opens its own.
func (s *LedgerService) Debit(
	ctx context.Context,
	walletAddress string,
	amount decimal.Decimal,
	txType models.TransactionType,
	description string,
) (*Receipt, error) {
	var receipt *Receipt
	err := s.atomically(ctx, func(ctx context.Context) error {
		user, err := s.accounts.GetByWalletAddress(ctx, walletAddress)
		if err != nil {
			return err
		}
		if user == nil {
			return fmt.Errorf("%w: %s", models.ErrAccountNotFound, walletAddress)
		}
		if user.Balance.LessThan(amount) {
			return &models.InsufficientBalanceError{Required: amount, Available: user.Balance}
		}
		receipt, err = s.apply(ctx, walletAddress, user.Balance.Sub(amount), txType, amount.Neg(), description)
		return err
	})
	if err != nil {
		return nil, err
	}
	return receipt, nil
}

// Credit increases the balance of walletAddress by amount.
// It joins the unit carried by ctx, or opens its own.
func (s *LedgerService) Credit(
	ctx context.Context,
	walletAddress string,
	amount decimal.Decimal,
	txType models.TransactionType,
	description string,
) (*Receipt, error) {
	var receipt *Receipt
	err := s.atomically(ctx, func(ctx context.Context) error {
		user, err := s.accounts.GetByWalletAddress(ctx, walletAddress)
		if err != nil {
			return err
		}
		if user == nil {
			return fmt.Errorf("%w: %s", models.ErrAccountNotFound, walletAddress)
		}
		receipt, err = s.apply(ctx, walletAddress, user.Balance.Add(amount), txType, amount, description)
		return err
	})
	if err != nil {
		return nil, err
	}
	return receipt, nil
}

// Adjust overwrites the balance of walletAddress and records the difference
// as a balance_adjustment entry. An unchanged balance records nothing.
func (s *LedgerService) Adjust(ctx context.Context, walletAddress string, balance decimal.Decimal) (*Receipt, error) {
	var receipt *Receipt
	err := s.atomically(ctx, func(ctx context.Context) error {
		user, err := s.accounts.GetByWalletAddress(ctx, walletAddress)
		if err != nil {
			return err
		}
		if user == nil {
			return fmt.Errorf("%w: %s", models.ErrAccountNotFound, walletAddress)
		}

		delta := balance.Sub(user.Balance)
		if delta.IsZero() {
			receipt = &Receipt{User: user}
			return nil
		}
		receipt, err = s.apply(ctx, walletAddress, balance, models.TransactionTypeBalanceAdjustment, delta, "Balance adjustment")
		return err
	})
	if err != nil {
		return nil, err
	}
	return receipt, nil
}

// apply writes the new balance and its ledger entry. It must run inside a unit.
func (s *LedgerService) apply(
	ctx context.Context,
	walletAddress string,
	balance decimal.Decimal,
	txType models.TransactionType,
	amount decimal.Decimal,
	description string,
) (*Receipt, error) {
	user, err := s.accounts.UpdateBalance(ctx, walletAddress, balance)
	if err != nil {
		return nil, err
	}
	txn, err := s.transactions.Record(ctx, user.ID, txType, amount, description)
	if err != nil {
		return nil, err
	}

	if pending := pendingFromContext(ctx); pending != nil {
		pending.add(models.TransactionEvent{
			EventID:       uuid.NewString(),
			TransactionID: txn.ID,
			WalletAddress: walletAddress,
			Type:          txn.Type,
			Amount:        txn.Amount,
			Balance:       user.Balance,
			Timestamp:     txn.CreatedAt.Unix(),
		})
	}
	return &Receipt{User: user, Transaction: txn}, nil
}

// atomically runs fn in a unit of work. The outermost call publishes the
// events collected inside the unit once it has been committed.
func (s *LedgerService) atomically(ctx context.Context, fn func(ctx context.Context) error) error {
	if pendingFromContext(ctx) != nil {
		return s.tx.Do(ctx, fn)
	}

	pending := &pendingEvents{}
	ctx = context.WithValue(ctx, pendingKey, pending)
	if err := s.tx.Do(ctx, fn); err != nil {
		return err
	}

	if s.publisher != nil {
		s.publisher.Publish(context.WithoutCancel(ctx), pending.events...)
	}
	return nil
}

// pendingEvents collects events of a unit that has not committed yet.
type pendingEvents struct {
	mu     sync.Mutex
	events []models.TransactionEvent
}

func (p *pendingEvents) add(event models.TransactionEvent) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
}

type pendingKeyType struct{}

var pendingKey = pendingKeyType{}

func pendingFromContext(ctx context.Context) *pendingEvents {
	p, _ := ctx.Value(pendingKey).(*pendingEvents)
	return p
}

// Charger is the part of the ledger used by feature services.
type Charger interface {
	GetOrCreateAccount(ctx context.Context, walletAddress string) (*models.User, error)
	Charge(ctx context.Context, walletAddress string, price decimal.Decimal, txType models.TransactionType, description string,
		apply func(ctx context.Context, payer *models.User) error) (*Receipt, error)
	ListLimit() int
}
