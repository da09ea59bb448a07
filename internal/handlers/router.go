package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/sbilibin2017/rewipay-ledger/internal/middlewares"
)

// LedgerAPI is served by the ledger service.
type LedgerAPI interface {
	BalanceGetter
	BalanceSetter
	TransactionLister
	Transferer
}

// CatalogAPI is served by the catalog service.
type CatalogAPI interface {
	AirportLister
	FlightSearcher
	HotelSearcher
	BillQuoter
}

// FlightAPI is served by the flight service.
type FlightAPI interface {
	FlightBooker
	FlightBookingLister
}

// HotelAPI is served by the hotel service.
type HotelAPI interface {
	HotelBooker
	HotelBookingLister
}

// MarketplaceAPI is served by the marketplace service.
type MarketplaceAPI interface {
	ProductPurchaser
	OrderPlacer
	OrderLister
}

// UtilityAPI is served by the utility service.
type UtilityAPI interface {
	BillPayer
	BillLister
}

// Services groups everything the router dispatches to.
type Services struct {
	Ledger      LedgerAPI
	Catalog     CatalogAPI
	Flights     FlightAPI
	Hotels      HotelAPI
	Marketplace MarketplaceAPI
	Utility     UtilityAPI
}

// NewRouter builds the HTTP API with its middleware stack.
func NewRouter(svc Services, allowedOrigins []string) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware)
	r.Use(middlewares.CORSHandler(allowedOrigins))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
	})

	r.Route("/api", func(r chi.Router) {
		r.Route("/user/{walletAddress}", func(r chi.Router) {
			r.Get("/balance", NewGetBalanceHandler(svc.Ledger))
			r.Post("/balance", NewSetBalanceHandler(svc.Ledger))
			r.Get("/transactions", NewListTransactionsHandler(svc.Ledger))
			r.Post("/transfer", NewTransferHandler(svc.Ledger))
		})

		r.Get("/airports/india", NewListAirportsHandler(svc.Catalog))

		r.Route("/flights", func(r chi.Router) {
			r.Post("/search", NewSearchFlightsHandler(svc.Catalog))
			r.Post("/book", NewBookFlightHandler(svc.Flights))
			r.Get("/bookings/{walletAddress}", NewListFlightBookingsHandler(svc.Flights))
		})

		r.Route("/hotels", func(r chi.Router) {
			r.Post("/search", NewSearchHotelsHandler(svc.Catalog))
			r.Post("/book", NewBookHotelHandler(svc.Hotels))
			r.Get("/bookings/{walletAddress}", NewListHotelBookingsHandler(svc.Hotels))
		})

		r.Route("/marketplace", func(r chi.Router) {
			r.Post("/purchase", NewPurchaseHandler(svc.Marketplace))
			r.Post("/place-order", NewPlaceOrderHandler(svc.Marketplace))
			r.Get("/orders/{walletAddress}", NewListOrdersHandler(svc.Marketplace))
		})

		r.Route("/utility", func(r chi.Router) {
			r.Post("/fetch-bill", NewFetchBillHandler(svc.Catalog))
			r.Post("/pay-bill", NewPayBillHandler(svc.Utility))
			r.Get("/bills/{walletAddress}", NewListBillsHandler(svc.Utility))
		})
	})

	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	return r
}
