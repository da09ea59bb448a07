package handlers

import (
	"net/http"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/sbilibin2017/rewipay-ledger/internal/models"
)

func TestGetBalanceHandler(t *testing.T) {
	tests := []struct {
		name           string
		setupMocks     func(m *MockBalanceGetter)
		expectedStatus int
		expectedKey    string
	}{
		{
			name: "successful balance fetch",
			setupMocks: func(m *MockBalanceGetter) {
				m.EXPECT().GetBalance(gomock.Any(), "0xABC").Return(dec("10000"), nil)
			},
			expectedStatus: http.StatusOK,
			expectedKey:    "balance",
		},
		{
			name: "store failure",
			setupMocks: func(m *MockBalanceGetter) {
				m.EXPECT().GetBalance(gomock.Any(), "0xABC").Return(decimal.Zero, models.ErrStoreIO)
			},
			expectedStatus: http.StatusInternalServerError,
			expectedKey:    "error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			m := NewMockBalanceGetter(ctrl)
			tt.setupMocks(m)

			rr := serve(t, NewGetBalanceHandler(m), http.MethodGet,
				"/api/user/{walletAddress}/balance", "/api/user/0xABC/balance", nil)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.Contains(t, decodeBody(t, rr), tt.expectedKey)
		})
	}
}

func TestGetBalanceHandler_ReturnsNumber(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := NewMockBalanceGetter(ctrl)
	m.EXPECT().GetBalance(gomock.Any(), "0xABC").Return(dec("9500.5"), nil)

	rr := serve(t, NewGetBalanceHandler(m), http.MethodGet,
		"/api/user/{walletAddress}/balance", "/api/user/0xABC/balance", nil)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"balance":9500.5}`, rr.Body.String())
}

func TestSetBalanceHandler(t *testing.T) {
	tests := []struct {
		name           string
		body           any
		setupMocks     func(m *MockBalanceSetter)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "balance overwritten",
			body: `{"amount": 2500}`,
			setupMocks: func(m *MockBalanceSetter) {
				m.EXPECT().SetBalance(gomock.Any(), "0xABC", decEq("2500")).
					Return(&models.User{ID: 1, WalletAddress: "0xABC", Balance: dec("2500")}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"success":true,"balance":2500}`,
		},
		{
			name: "zero is a valid balance",
			body: `{"amount": 0}`,
			setupMocks: func(m *MockBalanceSetter) {
				m.EXPECT().SetBalance(gomock.Any(), "0xABC", decEq("0")).
					Return(&models.User{ID: 1, WalletAddress: "0xABC", Balance: decimal.Zero}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"success":true,"balance":0}`,
		},
		{
			name:           "missing amount",
			body:           `{}`,
			setupMocks:     func(m *MockBalanceSetter) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"Invalid request","details":{"amount":"This field is required"}}`,
		},
		{
			name:           "invalid json",
			body:           `not-json`,
			setupMocks:     func(m *MockBalanceSetter) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"Invalid request body"}`,
		},
		{
			name: "negative amount rejected by service",
			body: `{"amount": -5}`,
			setupMocks: func(m *MockBalanceSetter) {
				m.EXPECT().SetBalance(gomock.Any(), "0xABC", decEq("-5")).Return(nil, models.ErrInvalidAmount)
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"Invalid amount"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			m := NewMockBalanceSetter(ctrl)
			tt.setupMocks(m)

			rr := serve(t, NewSetBalanceHandler(m), http.MethodPost,
				"/api/user/{walletAddress}/balance", "/api/user/0xABC/balance", tt.body)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.JSONEq(t, tt.expectedBody, rr.Body.String())
		})
	}
}
