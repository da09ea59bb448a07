package services

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/sbilibin2017/rewipay-ledger/internal/models"
)

// PurchaseRepository stores single-product purchases.
type PurchaseRepository interface {
	Save(ctx context.Context, purchase *models.MarketplacePurchase) (*models.MarketplacePurchase, error)
}

// OrderRepository stores cart orders.
type OrderRepository interface {
	Save(ctx context.Context, order *models.MarketplaceOrder) (*models.MarketplaceOrder, error)
	ListByUserID(ctx context.Context, userID int64, limit int) ([]models.MarketplaceOrder, error)
}

// MarketplaceService sells products for the wallet balance.
type MarketplaceService struct {
	ledger    Charger
	purchases PurchaseRepository
	orders    OrderRepository
}

func NewMarketplaceService(ledger Charger, purchases PurchaseRepository, orders OrderRepository) *MarketplaceService {
	return &MarketplaceService{ledger: ledger, purchases: purchases, orders: orders}
}

// Purchase charges the product price and stores a confirmed purchase.
func (s *MarketplaceService) Purchase(ctx context.Context, walletAddress string, purchase models.MarketplacePurchase) (*models.MarketplacePurchase, decimal.Decimal, error) {
	if purchase.ProductID == "" || purchase.ProductName == "" {
		return nil, decimal.Zero, fmt.Errorf("%w: product is required", models.ErrMalformedInput)
	}

	var saved *models.MarketplacePurchase
	receipt, err := s.ledger.Charge(ctx, walletAddress, purchase.Price, models.TransactionTypeMarketplacePurchase,
		"Purchase: "+purchase.ProductName,
		func(ctx context.Context, payer *models.User) error {
			purchase.UserID = payer.ID
			purchase.Status = models.StatusConfirmed
			var err error
			saved, err = s.purchases.Save(ctx, &purchase)
			return err
		})
	if err != nil {
		return nil, decimal.Zero, err
	}
	return saved, receipt.User.Balance, nil
}

// PlaceOrder charges order.TotalAmount and stores a pending order. The
// total is taken as given; it is not recomputed from the items.
func (s *MarketplaceService) PlaceOrder(ctx context.Context, walletAddress string, order models.MarketplaceOrder) (*models.MarketplaceOrder, decimal.Decimal, error) {
	if len(order.Items) == 0 {
		return nil, decimal.Zero, fmt.Errorf("%w: order has no items", models.ErrMalformedInput)
	}

	var saved *models.MarketplaceOrder
	receipt, err := s.ledger.Charge(ctx, walletAddress, order.TotalAmount, models.TransactionTypeMarketplaceOrder,
		fmt.Sprintf("Order: %d item(s)", len(order.Items)),
		func(ctx context.Context, payer *models.User) error {
			order.UserID = payer.ID
			order.Status = models.StatusPending
			var err error
			saved, err = s.orders.Save(ctx, &order)
			return err
		})
	if err != nil {
		return nil, decimal.Zero, err
	}
	return saved, receipt.User.Balance, nil
}

// ListOrders returns the newest orders of walletAddress.
func (s *MarketplaceService) ListOrders(ctx context.Context, walletAddress string) ([]models.MarketplaceOrder, error) {
	user, err := s.ledger.GetOrCreateAccount(ctx, walletAddress)
	if err != nil {
		return nil, err
	}
	return s.orders.ListByUserID(ctx, user.ID, s.ledger.ListLimit())
}
