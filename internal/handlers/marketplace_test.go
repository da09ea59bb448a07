package handlers

import (
	"context"
	"net/http"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/sbilibin2017/rewipay-ledger/internal/models"
)

func TestPurchaseHandler(t *testing.T) {
	tests := []struct {
		name           string
		body           any
		setupMocks     func(m *MockProductPurchaser)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "purchase confirmed",
			body: PurchaseRequest{WalletAddress: "0xABC", ProductID: "p-1", ProductName: "Headphones", Price: dec("1999.99")},
			setupMocks: func(m *MockProductPurchaser) {
				m.EXPECT().Purchase(gomock.Any(), "0xABC", gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, p models.MarketplacePurchase) (*models.MarketplacePurchase, decimal.Decimal, error) {
						assert.Equal(t, "p-1", p.ProductID)
						assert.True(t, p.Price.Equal(dec("1999.99")))
						p.ID = 9
						return &p, dec("8000.01"), nil
					})
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"success":true,"purchaseId":9,"newBalance":8000.01}`,
		},
		{
			name:           "negative price",
			body:           `{"walletAddress":"0xABC","productId":"p-1","productName":"Headphones","price":-1}`,
			setupMocks:     func(m *MockProductPurchaser) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"Invalid request","details":{"price":"Value must be greater than 0"}}`,
		},
		{
			name: "unexpected failure",
			body: PurchaseRequest{WalletAddress: "0xABC", ProductID: "p-1", ProductName: "Headphones", Price: dec("10")},
			setupMocks: func(m *MockProductPurchaser) {
				m.EXPECT().Purchase(gomock.Any(), "0xABC", gomock.Any()).Return(nil, decimal.Zero, assert.AnError)
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"error":"Internal server error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			m := NewMockProductPurchaser(ctrl)
			tt.setupMocks(m)

			rr := serve(t, NewPurchaseHandler(m), http.MethodPost, "/api/marketplace/purchase", "/api/marketplace/purchase", tt.body)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.JSONEq(t, tt.expectedBody, rr.Body.String())
		})
	}
}

func TestPlaceOrderHandler(t *testing.T) {
	shipping := `"shippingDetails":{"name":"Asha","address":"1 MG Road","city":"Pune","state":"MH","zipCode":"411001","phone":"999"}`

	tests := []struct {
		name           string
		body           string
		setupMocks     func(m *MockOrderPlacer)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "order placed",
			body: `{"walletAddress":"0xABC","items":[{"productId":"p-1","productName":"Mug","price":250,"quantity":2}],` +
				shipping + `,"totalAmount":500}`,
			setupMocks: func(m *MockOrderPlacer) {
				m.EXPECT().PlaceOrder(gomock.Any(), "0xABC", gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, o models.MarketplaceOrder) (*models.MarketplaceOrder, decimal.Decimal, error) {
						if assert.Len(t, o.Items, 1) {
							assert.Equal(t, "p-1", o.Items[0].ProductID)
							assert.Equal(t, 2, o.Items[0].Quantity)
						}
						assert.Equal(t, "Pune", o.ShippingDetails.City)
						assert.Equal(t, "411001", o.ShippingDetails.ZipCode)
						assert.True(t, o.TotalAmount.Equal(dec("500")))
						o.ID = 11
						return &o, dec("9500"), nil
					})
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"success":true,"orderId":11,"newBalance":9500}`,
		},
		{
			name:           "empty cart",
			body:           `{"walletAddress":"0xABC","items":[],` + shipping + `,"totalAmount":500}`,
			setupMocks:     func(m *MockOrderPlacer) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"Invalid request","details":{"items":"Must contain at least 1 element(s)"}}`,
		},
		{
			name: "item without product id",
			body: `{"walletAddress":"0xABC","items":[{"productName":"Mug","price":250,"quantity":1}],` +
				shipping + `,"totalAmount":250}`,
			setupMocks:     func(m *MockOrderPlacer) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"Invalid request","details":{"items[0].productId":"This field is required"}}`,
		},
		{
			name: "insufficient balance",
			body: `{"walletAddress":"0xABC","items":[{"productId":"p-1","productName":"TV","price":50000,"quantity":1}],` +
				shipping + `,"totalAmount":50000}`,
			setupMocks: func(m *MockOrderPlacer) {
				m.EXPECT().PlaceOrder(gomock.Any(), "0xABC", gomock.Any()).
					Return(nil, decimal.Zero, &models.InsufficientBalanceError{Required: dec("50000"), Available: dec("10000")})
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"Insufficient balance","required":50000,"available":10000}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			m := NewMockOrderPlacer(ctrl)
			tt.setupMocks(m)

			rr := serve(t, NewPlaceOrderHandler(m), http.MethodPost, "/api/marketplace/place-order", "/api/marketplace/place-order", tt.body)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.JSONEq(t, tt.expectedBody, rr.Body.String())
		})
	}
}

func TestListOrdersHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := NewMockOrderLister(ctrl)
	m.EXPECT().ListOrders(gomock.Any(), "0xABC").Return([]models.MarketplaceOrder{
		{ID: 11, UserID: 1, Status: models.StatusPending},
	}, nil)

	rr := serve(t, NewListOrdersHandler(m), http.MethodGet,
		"/api/marketplace/orders/{walletAddress}", "/api/marketplace/orders/0xABC", nil)

	assert.Equal(t, http.StatusOK, rr.Code)
	resp := decodeBody(t, rr)
	orders, ok := resp["orders"].([]any)
	if assert.True(t, ok) && assert.Len(t, orders, 1) {
		assert.Equal(t, "pending", orders[0].(map[string]any)["status"])
	}
}
