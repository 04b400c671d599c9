package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Delivery is the fulfilment record created when a completed goal is redeemed
type Delivery struct {
	CreatedAt             time.Time      `db:"created_at"`
	UpdatedAt             time.Time      `db:"updated_at"`
	EstimatedDeliveryDate *time.Time     `db:"estimated_delivery_date"`
	ActualDeliveryDate    *time.Time     `db:"actual_delivery_date"`
	DestinationLat        *float64       `db:"destination_lat"`
	DestinationLng        *float64       `db:"destination_lng"`
	DriverLat             *float64       `db:"driver_lat"`
	DriverLng             *float64       `db:"driver_lng"`
	ShippingAddress       string         `db:"shipping_address"`
	TrackingNumber        string         `db:"tracking_number"`
	Status                DeliveryStatus `db:"status"`
	ID                    uuid.UUID      `db:"id"`
	GoalID                uuid.UUID      `db:"goal_id"`
}

// DeliveryTracking is one append-only location/status snapshot
type DeliveryTracking struct {
	RecordedAt time.Time      `db:"recorded_at"`
	Latitude   *float64       `db:"latitude"`
	Longitude  *float64       `db:"longitude"`
	Label      string         `db:"label"`
	Status     DeliveryStatus `db:"status"`
	ID         uuid.UUID      `db:"id"`
	DeliveryID uuid.UUID      `db:"delivery_id"`
}

// Address is a saved shipping address owned by a user
type Address struct {
	CreatedAt  time.Time `db:"created_at"`
	Latitude   *float64  `db:"latitude"`
	Longitude  *float64  `db:"longitude"`
	Recipient  string    `db:"recipient"`
	Line1      string    `db:"line1"`
	Line2      string    `db:"line2"`
	City       string    `db:"city"`
	State      string    `db:"state"`
	PostalCode string    `db:"postal_code"`
	Country    string    `db:"country"`
	ID         uuid.UUID `db:"id"`
	UserID     uuid.UUID `db:"user_id"`
}

// Format renders the address as a single shipping label line
func (a *Address) Format() string {
	parts := []string{a.Recipient, a.Line1, a.Line2, a.City}
	region := strings.TrimSpace(strings.Join([]string{a.State, a.PostalCode}, " "))
	parts = append(parts, region, a.Country)

	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, ", ")
}

// Coarse returns a lower-precision query used when the full address cannot be geocoded
func (a *Address) Coarse() string {
	return strings.Join([]string{strings.TrimSpace(a.City), strings.TrimSpace(a.Country)}, ", ")
}
