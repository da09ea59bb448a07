package repositories

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/sbilibin2017/rewipay-ledger/internal/models"
)

// TransactionRepository is the append-only ledger. It has no update or
// delete operation.
type TransactionRepository struct {
	*RecordRepository[models.Transaction, *models.Transaction]
}

// NewTransactionRepository creates the ledger repository.
func NewTransactionRepository(uow *UnitOfWork) *TransactionRepository {
	return &TransactionRepository{
		RecordRepository: NewRecordRepository[models.Transaction](uow, models.CollectionTransactions,
			func(doc *models.Document) *[]models.Transaction { return &doc.Transactions }),
	}
}

// Record appends a ledger entry for userID.
func (r *TransactionRepository) Record(
	ctx context.Context,
	userID int64,
	txType models.TransactionType,
	amount decimal.Decimal,
	description string,
) (*models.Transaction, error) {
	return r.Save(ctx, &models.Transaction{
		UserID:      userID,
		Type:        txType,
		Amount:      amount,
		Description: description,
	})
}
