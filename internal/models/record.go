package models

import "time"

// Record is implemented by every entry stored in a document collection.
type Record interface {
	GetID() int64
	GetUserID() int64
	GetCreatedAt() time.Time
	// Stamp assigns the identity fields when the record is first stored.
	Stamp(id int64, createdAt time.Time)
}
