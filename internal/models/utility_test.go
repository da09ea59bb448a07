package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDueDateFrom(t *testing.T) {
	tests := []struct {
		name string
		paid time.Time
		want string
	}{
		{name: "same month", paid: time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC), want: "2025-06-17"},
		{name: "crosses month", paid: time.Date(2025, 6, 28, 9, 0, 0, 0, time.UTC), want: "2025-07-05"},
		{name: "crosses year", paid: time.Date(2025, 12, 30, 23, 0, 0, 0, time.UTC), want: "2026-01-06"},
		{name: "converted to UTC", paid: time.Date(2025, 6, 11, 2, 0, 0, 0, time.FixedZone("IST", 5*3600+1800)), want: "2025-06-17"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DueDateFrom(tt.paid))
		})
	}
}
