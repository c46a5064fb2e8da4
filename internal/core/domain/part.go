package domain

import "errors"

var (
	ErrPartNotFound  = errors.New("part not found")
	ErrOrderNotFound = errors.New("order not found")
)

// Part is a spare-parts inventory line item.
type Part struct {
	ID           string  `json:"id" bson:"_id,omitempty"`
	Name         string  `json:"name" bson:"name"`
	Description  string  `json:"description,omitempty" bson:"description,omitempty"`
	Category     string  `json:"category" bson:"category"`
	PartType     string  `json:"part_type,omitempty" bson:"part_type,omitempty"`
	Manufacturer string  `json:"manufacturer,omitempty" bson:"manufacturer,omitempty"`
	PartNumber   string  `json:"part_number,omitempty" bson:"part_number,omitempty"`
	Quantity     int     `json:"quantity" bson:"quantity"`
	MinQuantity  int     `json:"min_quantity" bson:"min_quantity"`
	LeadTimeDays int     `json:"lead_time_days" bson:"lead_time_days"`
	WearRating   int     `json:"wear_rating,omitempty" bson:"wear_rating,omitempty"`
	Location     string  `json:"location,omitempty" bson:"location,omitempty"`
	UnitCost     float64 `json:"unit_cost,omitempty" bson:"unit_cost,omitempty"`
	Supplier     string  `json:"supplier,omitempty" bson:"supplier,omitempty"`
}

// LowStock reports whether the part has fallen to or below its reorder floor.
func (p *Part) LowStock() bool {
	return p.Quantity <= p.MinQuantity
}

// OrderStatus is the lifecycle of an incoming parts order.
type OrderStatus string

const (
	OrderPending  OrderStatus = "pending"
	OrderShipped  OrderStatus = "shipped"
	OrderReceived OrderStatus = "received"
)

// IncomingOrder is a pending restock delivery for a part.
type IncomingOrder struct {
	ID               string      `json:"id" bson:"_id,omitempty"`
	PartID           string      `json:"part_id,omitempty" bson:"part_id,omitempty"`
	PartName         string      `json:"part_name,omitempty" bson:"part_name,omitempty"`
	OrderNumber      string      `json:"order_number,omitempty" bson:"order_number,omitempty"`
	TrackingNumber   string      `json:"tracking_number,omitempty" bson:"tracking_number,omitempty"`
	Supplier         string      `json:"supplier,omitempty" bson:"supplier,omitempty"`
	Quantity         int         `json:"quantity" bson:"quantity"`
	Status           OrderStatus `json:"status" bson:"status"`
	OrderDate        int64       `json:"order_date,omitempty" bson:"order_date,omitempty"`
	ExpectedDelivery int64       `json:"expected_delivery,omitempty" bson:"expected_delivery,omitempty"`
}

// PaginatedParts is a single page of the parts inventory.
type PaginatedParts struct {
	Items      []Part `json:"items"`
	Total      int64  `json:"total"`
	Page       int    `json:"page"`
	PageSize   int    `json:"page_size"`
	TotalPages int    `json:"total_pages"`
}
