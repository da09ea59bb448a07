package repositories

import (
	"context"
	"sort"
	"time"

	"github.com/sbilibin2017/rewipay-ledger/internal/logger"
	"github.com/sbilibin2017/rewipay-ledger/internal/models"
)

// recordPtr constrains P to *T implementing models.Record.
type recordPtr[T any] interface {
	*T
	models.Record
}

// RecordRepository appends to and lists one collection of the document.
// Every collection follows the same contract: ids are sequential per
// collection, created_at is stamped on save, lists are newest first.
type RecordRepository[T any, P recordPtr[T]] struct {
	uow        *UnitOfWork
	collection string
	items      func(doc *models.Document) *[]T
	now        func() time.Time
}

// NewRecordRepository creates a repository over the collection selected by items.
func NewRecordRepository[T any, P recordPtr[T]](
	uow *UnitOfWork,
	collection string,
	items func(doc *models.Document) *[]T,
) *RecordRepository[T, P] {
	return &RecordRepository[T, P]{
		uow:        uow,
		collection: collection,
		items:      items,
		now:        time.Now,
	}
}

// Save assigns the next id and the creation time to record and appends it.
func (r *RecordRepository[T, P]) Save(ctx context.Context, record *T) (*T, error) {
	var saved T
	err := r.uow.Update(ctx, func(doc *models.Document) error {
		items := r.items(doc)

		var maxID int64
		for i := range *items {
			if id := P(&(*items)[i]).GetID(); id > maxID {
				maxID = id
			}
		}

		P(record).Stamp(doc.NextID(r.collection, maxID), r.now().UTC())
		*items = append(*items, *record)
		saved = *record
		return nil
	})

	logger.Log.Infow("record saved",
		"collection", r.collection,
		"id", P(record).GetID(),
		"user_id", P(record).GetUserID(),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return &saved, nil
}

// ListByUserID returns at most limit records owned by userID, newest first.
// A non-positive limit returns every record.
func (r *RecordRepository[T, P]) ListByUserID(ctx context.Context, userID int64, limit int) ([]T, error) {
	result := []T{}
	err := r.uow.View(ctx, func(doc *models.Document) error {
		for _, item := range *r.items(doc) {
			if P(&item).GetUserID() == userID {
				result = append(result, item)
			}
		}
		return nil
	})
	if err != nil {
		logger.Log.Errorw("failed to list records", "collection", r.collection, "user_id", userID, "error", err)
		return nil, err
	}

	sort.SliceStable(result, func(i, j int) bool {
		a, b := P(&result[i]), P(&result[j])
		if !a.GetCreatedAt().Equal(b.GetCreatedAt()) {
			return a.GetCreatedAt().After(b.GetCreatedAt())
		}
		return a.GetID() > b.GetID()
	})

	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}

	logger.Log.Infow("records listed",
		"collection", r.collection,
		"user_id", userID,
		"limit", limit,
		"result", len(result),
	)
	return result, nil
}

// Count returns the number of records in the collection.
func (r *RecordRepository[T, P]) Count(ctx context.Context) (int, error) {
	var n int
	err := r.uow.View(ctx, func(doc *models.Document) error {
		n = len(*r.items(doc))
		return nil
	})
	return n, err
}

// NewFlightBookingRepository returns the repository of flight bookings.
func NewFlightBookingRepository(uow *UnitOfWork) *RecordRepository[models.FlightBooking, *models.FlightBooking] {
	return NewRecordRepository[models.FlightBooking](uow, models.CollectionFlightBookings,
		func(doc *models.Document) *[]models.FlightBooking { return &doc.FlightBookings })
}

// NewHotelBookingRepository returns the repository of hotel bookings.
func NewHotelBookingRepository(uow *UnitOfWork) *RecordRepository[models.HotelBooking, *models.HotelBooking] {
	return NewRecordRepository[models.HotelBooking](uow, models.CollectionHotelBookings,
		func(doc *models.Document) *[]models.HotelBooking { return &doc.HotelBookings })
}

// NewMarketplacePurchaseRepository returns the repository of single-product purchases.
func NewMarketplacePurchaseRepository(uow *UnitOfWork) *RecordRepository[models.MarketplacePurchase, *models.MarketplacePurchase] {
	return NewRecordRepository[models.MarketplacePurchase](uow, models.CollectionMarketplacePurchases,
		func(doc *models.Document) *[]models.MarketplacePurchase { return &doc.MarketplacePurchases })
}

// NewMarketplaceOrderRepository returns the repository of cart orders.
func NewMarketplaceOrderRepository(uow *UnitOfWork) *RecordRepository[models.MarketplaceOrder, *models.MarketplaceOrder] {
	return NewRecordRepository[models.MarketplaceOrder](uow, models.CollectionMarketplaceOrders,
		func(doc *models.Document) *[]models.MarketplaceOrder { return &doc.MarketplaceOrders })
}

// NewUtilityBillRepository returns the repository of paid utility bills.
func NewUtilityBillRepository(uow *UnitOfWork) *RecordRepository[models.UtilityBill, *models.UtilityBill] {
	return NewRecordRepository[models.UtilityBill](uow, models.CollectionUtilityBills,
		func(doc *models.Document) *[]models.UtilityBill { return &doc.UtilityBills })
}
