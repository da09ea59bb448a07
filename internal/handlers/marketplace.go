package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/sbilibin2017/rewipay-ledger/internal/models"
)

//go:generate mockgen -source=marketplace.go -destination=marketplace_mock.go -package=handlers

// ProductPurchaser defines the interface that the service must implement.
type ProductPurchaser interface {
	Purchase(ctx context.Context, walletAddress string, purchase models.MarketplacePurchase) (*models.MarketplacePurchase, decimal.Decimal, error)
}

// OrderPlacer defines the interface that the service must implement.
type OrderPlacer interface {
	PlaceOrder(ctx context.Context, walletAddress string, order models.MarketplaceOrder) (*models.MarketplaceOrder, decimal.Decimal, error)
}

// OrderLister defines the interface that the service must implement.
type OrderLister interface {
	ListOrders(ctx context.Context, walletAddress string) ([]models.MarketplaceOrder, error)
}

// PurchaseRequest represents the JSON body for a single-product purchase
// swagger:model PurchaseRequest
type PurchaseRequest struct {
	// required: true
	WalletAddress string `json:"walletAddress" validate:"required"`

	// required: true
	ProductID string `json:"productId" validate:"required"`

	// required: true
	ProductName string `json:"productName" validate:"required"`

	// required: true
	Price decimal.Decimal `json:"price" validate:"gt=0" swaggertype:"number"`
}

// PurchaseResponse represents a successful purchase
// swagger:model PurchaseResponse
type PurchaseResponse struct {
	// default: true
	Success bool `json:"success"`

	PurchaseID int64 `json:"purchaseId"`

	NewBalance decimal.Decimal `json:"newBalance" swaggertype:"number"`
}

// PlaceOrderRequest represents the JSON body for a cart checkout
// swagger:model PlaceOrderRequest
type PlaceOrderRequest struct {
	// required: true
	WalletAddress string `json:"walletAddress" validate:"required"`

	// Cart lines, at least one
	// required: true
	Items []models.OrderItem `json:"items" validate:"required,min=1,dive"`

	// required: true
	ShippingDetails models.ShippingDetails `json:"shippingDetails"`

	// Amount charged to the wallet
	// required: true
	TotalAmount decimal.Decimal `json:"totalAmount" validate:"gt=0" swaggertype:"number"`
}

// PlaceOrderResponse represents a successful checkout
// swagger:model PlaceOrderResponse
type PlaceOrderResponse struct {
	// default: true
	Success bool `json:"success"`

	OrderID int64 `json:"orderId"`

	NewBalance decimal.Decimal `json:"newBalance" swaggertype:"number"`
}

// OrdersResponse lists marketplace orders
// swagger:model OrdersResponse
type OrdersResponse struct {
	Orders []models.MarketplaceOrder `json:"orders"`
}

// NewPurchaseHandler returns an HTTP handler buying a single product.
// @Summary Buy a product
// @Tags marketplace
// @Accept json
// @Produce json
// @Param request body handlers.PurchaseRequest true "Purchase Request"
// @Success 200 {object} handlers.PurchaseResponse
// @Failure 400 {object} handlers.InsufficientBalanceResponse "Insufficient balance or invalid request"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /marketplace/purchase [post]
func NewPurchaseHandler(svc ProductPurchaser) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req PurchaseRequest
		if !decodeRequest(w, r, &req) {
			return
		}

		saved, balance, err := svc.Purchase(r.Context(), req.WalletAddress, models.MarketplacePurchase{
			ProductID:   req.ProductID,
			ProductName: req.ProductName,
			Price:       req.Price,
		})
		if err != nil {
			writeServiceError(w, err, "failed to purchase product",
				"wallet_address", req.WalletAddress, "product_id", req.ProductID)
			return
		}

		writeJSON(w, http.StatusOK, PurchaseResponse{Success: true, PurchaseID: saved.ID, NewBalance: balance})
	}
}

// NewPlaceOrderHandler returns an HTTP handler checking out a cart.
// @Summary Place an order
// @Description Charges totalAmount and stores a pending order. The total is not recomputed from the items.
// @Tags marketplace
// @Accept json
// @Produce json
// @Param request body handlers.PlaceOrderRequest true "Order Request"
// @Success 200 {object} handlers.PlaceOrderResponse
// @Failure 400 {object} handlers.InsufficientBalanceResponse "Insufficient balance or invalid request"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /marketplace/place-order [post]
func NewPlaceOrderHandler(svc OrderPlacer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req PlaceOrderRequest
		if !decodeRequest(w, r, &req) {
			return
		}

		saved, balance, err := svc.PlaceOrder(r.Context(), req.WalletAddress, models.MarketplaceOrder{
			Items:           req.Items,
			ShippingDetails: req.ShippingDetails,
			TotalAmount:     req.TotalAmount,
		})
		if err != nil {
			writeServiceError(w, err, "failed to place order",
				"wallet_address", req.WalletAddress, "items", len(req.Items))
			return
		}

		writeJSON(w, http.StatusOK, PlaceOrderResponse{Success: true, OrderID: saved.ID, NewBalance: balance})
	}
}

// NewListOrdersHandler returns an HTTP handler listing a wallet's orders.
// @Summary List orders
// @Tags marketplace
// @Produce json
// @Param walletAddress path string true "Wallet address"
// @Success 200 {object} handlers.OrdersResponse
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /marketplace/orders/{walletAddress} [get]
func NewListOrdersHandler(svc OrderLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		walletAddress := chi.URLParam(r, "walletAddress")

		orders, err := svc.ListOrders(r.Context(), walletAddress)
		if err != nil {
			writeServiceError(w, err, "failed to list orders", "wallet_address", walletAddress)
			return
		}

		writeJSON(w, http.StatusOK, OrdersResponse{Orders: orders})
	}
}
