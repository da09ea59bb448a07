package models

// RecordStatus is the lifecycle state of a feature record.
type RecordStatus string

const (
	StatusConfirmed RecordStatus = "confirmed"
	StatusPending   RecordStatus = "pending"
	StatusPaid      RecordStatus = "paid"
)
