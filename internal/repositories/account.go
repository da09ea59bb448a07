package repositories

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/sbilibin2017/rewipay-ledger/internal/logger"
	"github.com/sbilibin2017/rewipay-ledger/internal/models"
)

// AccountRepository maps wallet addresses to users.
type AccountRepository struct {
	uow            *UnitOfWork
	users          *RecordRepository[models.User, *models.User]
	initialBalance decimal.Decimal
}

// NewAccountRepository creates a registry that credits new wallets with initialBalance.
func NewAccountRepository(uow *UnitOfWork, initialBalance decimal.Decimal) *AccountRepository {
	return &AccountRepository{
		uow: uow,
		users: NewRecordRepository[models.User](uow, models.CollectionUsers,
			func(doc *models.Document) *[]models.User { return &doc.Users }),
		initialBalance: initialBalance,
	}
}

// GetByWalletAddress returns the user with exactly this address, or nil.
func (r *AccountRepository) GetByWalletAddress(ctx context.Context, walletAddress string) (*models.User, error) {
	var user *models.User
	err := r.uow.View(ctx, func(doc *models.Document) error {
		user = findUser(doc, walletAddress)
		return nil
	})

	logger.Log.Infow("account lookup",
		"wallet_address", walletAddress,
		"found", user != nil,
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return user, nil
}

// Create registers walletAddress with the given balance.
func (r *AccountRepository) Create(ctx context.Context, walletAddress string, balance decimal.Decimal) (*models.User, error) {
	var user *models.User
	err := r.uow.Do(ctx, func(ctx context.Context) error {
		if findUser(GetDocumentFromContext(ctx), walletAddress) != nil {
			return fmt.Errorf("%w: %s", models.ErrAccountExists, walletAddress)
		}
		created, err := r.users.Save(ctx, &models.User{
			WalletAddress: walletAddress,
			Balance:       balance,
		})
		user = created
		return err
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

// GetOrCreate returns the user for walletAddress, creating it with the
// initial balance on first reference.
func (r *AccountRepository) GetOrCreate(ctx context.Context, walletAddress string) (*models.User, error) {
	user, err := r.GetByWalletAddress(ctx, walletAddress)
	if err != nil || user != nil {
		return user, err
	}

	err = r.uow.Do(ctx, func(ctx context.Context) error {
		if existing := findUser(GetDocumentFromContext(ctx), walletAddress); existing != nil {
			user = existing
			return nil
		}
		created, err := r.users.Save(ctx, &models.User{
			WalletAddress: walletAddress,
			Balance:       r.initialBalance,
		})
		user = created
		return err
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

// UpdateBalance overwrites the balance of walletAddress.
func (r *AccountRepository) UpdateBalance(ctx context.Context, walletAddress string, balance decimal.Decimal) (*models.User, error) {
	var user *models.User
	err := r.uow.Update(ctx, func(doc *models.Document) error {
		for i := range doc.Users {
			if doc.Users[i].WalletAddress == walletAddress {
				doc.Users[i].Balance = balance
				u := doc.Users[i]
				user = &u
				return nil
			}
		}
		return fmt.Errorf("%w: %s", models.ErrAccountNotFound, walletAddress)
	})

	logger.Log.Infow("balance updated",
		"wallet_address", walletAddress,
		"balance", balance,
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return user, nil
}

func findUser(doc *models.Document, walletAddress string) *models.User {
	for _, u := range doc.Users {
		if u.WalletAddress == walletAddress {
			return &u
		}
	}
	return nil
}
