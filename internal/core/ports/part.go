package ports

import (
	"context"

	"github.com/cimco/maintenance-system/internal/core/domain"
)

// PartFilter narrows a paginated parts listing. An empty or "All" category
// matches everything; Search matches part names case-insensitively.
type PartFilter struct {
	Category string
	Search   string
}

// PartRepository defines persistence for the spare-parts inventory.
type PartRepository interface {
	ListPaginated(ctx context.Context, page, pageSize int, filter PartFilter) (*domain.PaginatedParts, error)
	Create(ctx context.Context, part *domain.Part) (*domain.Part, error)
	AdjustQuantity(ctx context.Context, id string, delta int) (*domain.Part, error)
	UpdateLocation(ctx context.Context, id string, location string) error
	Delete(ctx context.Context, id string) error
	ListLowStock(ctx context.Context) ([]domain.Part, error)
}

// OrderRepository defines persistence for incoming parts orders.
type OrderRepository interface {
	ListIncoming(ctx context.Context) ([]domain.IncomingOrder, error)
	Find(ctx context.Context, id string) (*domain.IncomingOrder, error)
	MarkReceived(ctx context.Context, id string) error
}

// PartService exposes inventory operations to the transport layer.
type PartService interface {
	ListPaginated(ctx context.Context, page, pageSize int, filter PartFilter) (*domain.PaginatedParts, error)
	Create(ctx context.Context, part *domain.Part) (*domain.Part, error)
	AdjustQuantity(ctx context.Context, id string, delta int) (*domain.Part, error)
	UpdateLocation(ctx context.Context, id string, location string) error
	Delete(ctx context.Context, id string) error
	ListLowStock(ctx context.Context) ([]domain.Part, error)
	ListIncomingOrders(ctx context.Context) ([]domain.IncomingOrder, error)
	ReceiveOrder(ctx context.Context, id string) error
}
