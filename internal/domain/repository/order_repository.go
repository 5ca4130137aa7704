package repository

import (
	"context"
	"errors"

	"catalog/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrOrderNotFound is a domain-specific error returned when an order is not found.
var ErrOrderNotFound = errors.New("order not found")

// OrderRepository defines the standard operations for order persistence.
type OrderRepository interface {
	// FindByID retrieves an order with its items and shipping address.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// ListByUser returns all orders placed by the given user, newest first.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error)

	// List returns one page of all orders, newest first, with the total count.
	List(ctx context.Context, offset, limit int) ([]*entity.Order, int64, error)

	// Create persists an order together with its items and shipping address.
	Create(ctx context.Context, order *entity.Order) error

	// Update persists order state changes (paid/delivered flags and timestamps).
	Update(ctx context.Context, order *entity.Order) error
}
