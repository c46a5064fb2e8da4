package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/cimco/maintenance-system/internal/core/domain"
	"github.com/cimco/maintenance-system/internal/core/ports"
)

const (
	defaultPageSize = 50
	maxPageSize     = 200
)

type PartService struct {
	parts  ports.PartRepository
	orders ports.OrderRepository
	logger zerolog.Logger
}

func NewPartService(parts ports.PartRepository, orders ports.OrderRepository, logger zerolog.Logger) *PartService {
	return &PartService{parts: parts, orders: orders, logger: logger}
}

// ListPaginated returns one page of the inventory. Page numbers start at 1;
// out-of-range sizes are normalised before hitting the repository.
func (s *PartService) ListPaginated(ctx context.Context, page, pageSize int, filter ports.PartFilter) (*domain.PaginatedParts, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = defaultPageSize
	} else if pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	return s.parts.ListPaginated(ctx, page, pageSize, filter)
}

func (s *PartService) Create(ctx context.Context, part *domain.Part) (*domain.Part, error) {
	created, err := s.parts.Create(ctx, part)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Str("part", created.Name).Str("category", created.Category).Msg("part created")
	return created, nil
}

// AdjustQuantity applies a signed delta to the stock level. The repository
// floors the result at zero.
func (s *PartService) AdjustQuantity(ctx context.Context, id string, delta int) (*domain.Part, error) {
	part, err := s.parts.AdjustQuantity(ctx, id, delta)
	if err != nil {
		return nil, err
	}
	if part.LowStock() {
		s.logger.Warn().Str("part", part.Name).Int("quantity", part.Quantity).Int("min_quantity", part.MinQuantity).Msg("part at or below reorder floor")
	}
	return part, nil
}

func (s *PartService) UpdateLocation(ctx context.Context, id string, location string) error {
	return s.parts.UpdateLocation(ctx, id, location)
}

func (s *PartService) Delete(ctx context.Context, id string) error {
	return s.parts.Delete(ctx, id)
}

func (s *PartService) ListLowStock(ctx context.Context) ([]domain.Part, error) {
	return s.parts.ListLowStock(ctx)
}

func (s *PartService) ListIncomingOrders(ctx context.Context) ([]domain.IncomingOrder, error) {
	return s.orders.ListIncoming(ctx)
}

// ReceiveOrder marks an incoming order as received and restocks the linked
// part. The restock is best-effort: a failed quantity bump does not undo the
// status change, it is logged and the order stays received.
func (s *PartService) ReceiveOrder(ctx context.Context, id string) error {
	order, err := s.orders.Find(ctx, id)
	if err != nil {
		return err
	}
	if order.Status == domain.OrderReceived {
		return nil
	}

	if err := s.orders.MarkReceived(ctx, id); err != nil {
		return fmt.Errorf("mark order received: %w", err)
	}

	if order.PartID != "" {
		if _, err := s.parts.AdjustQuantity(ctx, order.PartID, order.Quantity); err != nil && !errors.Is(err, domain.ErrPartNotFound) {
			s.logger.Error().Err(err).Str("order_id", id).Str("part_id", order.PartID).Msg("failed to restock part for received order")
		}
	}

	s.logger.Info().Str("order_id", id).Int("quantity", order.Quantity).Msg("order received")
	return nil
}
