package impl

import (
	"context"
	"log/slog"
	"time"

	"catalog/config"
	"catalog/internal/domain/entity"
	domainerrors "catalog/internal/domain/errors"
	"catalog/internal/domain/repository"
	"catalog/internal/usecase"
	"catalog/pkg/pagination"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// orderService implements the OrderUsecase interface.
type orderService struct {
	txManager repository.TransactionManager
	catalog   *config.CatalogConfig
	logger    *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(
	txManager repository.TransactionManager,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.OrderUsecase {
	return &orderService{
		txManager: txManager,
		catalog:   cfg.Catalog,
		logger:    logger,
	}
}

// CreateOrder places an order. Each line snapshots the product's current
// name, price and first image, and stock is decremented under row locks so
// concurrent checkouts serialize per product.
func (srv *orderService) CreateOrder(ctx context.Context, userID uuid.UUID, input *usecase.CreateOrderInput) (*entity.Order, error) {
	srv.logger.Info("Creating order", "userID", userID, "items", len(input.Items))

	if len(input.Items) == 0 {
		return nil, domainerrors.ErrNoOrderItems
	}
	for _, itemIn := range input.Items {
		if itemIn.Qty <= 0 {
			return nil, domainerrors.ErrValidationFailed.WithDetails("order item qty must be positive")
		}
	}

	order := &entity.Order{
		UserID:        userID,
		PaymentMethod: input.PaymentMethod,
		ItemsPrice:    input.ItemsPrice,
		ShippingPrice: input.ShippingPrice,
		TaxPrice:      input.TaxPrice,
		TotalPrice:    input.TotalPrice,
		ShippingAddress: &entity.ShippingAddress{
			Address:    input.ShippingAddress.Address,
			City:       input.ShippingAddress.City,
			PostalCode: input.ShippingAddress.PostalCode,
			Country:    input.ShippingAddress.Country,
		},
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		productRepo := repoFactory.ProductRepo()

		for _, itemIn := range input.Items {
			product, err := productRepo.FindByIDForUpdate(ctx, itemIn.ProductID)
			if err != nil {
				if errors.Is(err, repository.ErrProductNotFound) {
					return domainerrors.ErrProductNotFound
				}

				return errors.Wrap(err, "failed to lock product")
			}

			item := &entity.OrderItem{
				ProductID: product.ID,
				Name:      product.Name,
				Qty:       itemIn.Qty,
				Price:     product.Price,
			}
			if len(product.Images) > 0 {
				item.Image = product.Images[0].Key
			}
			order.Items = append(order.Items, item)

			product.CountInStock -= itemIn.Qty
			if err := productRepo.Update(ctx, product); err != nil {
				return errors.Wrap(err, "failed to update product stock")
			}
		}

		if err := repoFactory.OrderRepo().Create(ctx, order); err != nil {
			return errors.Wrap(err, "failed to create order")
		}

		return nil
	})
	if err != nil {
		// Items built inside a failed attempt must not leak into a retry.
		order.Items = nil

		return nil, err
	}

	return order, nil
}

// ListMyOrders returns the caller's orders, newest first.
func (srv *orderService) ListMyOrders(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error) {
	var orders []*entity.Order

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.OrderRepo().ListByUser(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to list orders")
		}
		orders = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return orders, nil
}

// GetOrder returns the order to its owner or to an admin.
func (srv *orderService) GetOrder(ctx context.Context, id, requesterID uuid.UUID, isAdmin bool) (*entity.Order, error) {
	var order *entity.Order

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.OrderRepo().FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrOrderNotFound) {
				return domainerrors.ErrOrderNotFound
			}

			return errors.Wrap(err, "failed to find order")
		}

		if !isAdmin && found.UserID != requesterID {
			return domainerrors.ErrForbidden
		}
		order = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return order, nil
}

// ListOrders returns one page of all orders for administrators.
func (srv *orderService) ListOrders(ctx context.Context, page int) (*usecase.OrderPage, error) {
	params := pagination.Normalize(page, srv.catalog.PageSize)

	var result usecase.OrderPage

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		orders, total, err := repoFactory.OrderRepo().List(ctx, params.Offset(), params.PageSize)
		if err != nil {
			return errors.Wrap(err, "failed to list orders")
		}

		result = usecase.OrderPage{
			Orders: orders,
			Page:   params.Page,
			Pages:  pagination.Pages(total, params.PageSize),
			Total:  total,
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &result, nil
}

// MarkOrderPaid flags the order as paid now.
func (srv *orderService) MarkOrderPaid(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	return srv.updateStatus(ctx, id, func(order *entity.Order) {
		now := time.Now()
		order.IsPaid = true
		order.PaidAt = &now
	})
}

// MarkOrderDelivered flags the order as delivered now.
func (srv *orderService) MarkOrderDelivered(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	return srv.updateStatus(ctx, id, func(order *entity.Order) {
		now := time.Now()
		order.IsDelivered = true
		order.DeliveredAt = &now
	})
}

func (srv *orderService) updateStatus(ctx context.Context, id uuid.UUID, apply func(*entity.Order)) (*entity.Order, error) {
	var order *entity.Order

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		orderRepo := repoFactory.OrderRepo()

		found, err := orderRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrOrderNotFound) {
				return domainerrors.ErrOrderNotFound
			}

			return errors.Wrap(err, "failed to find order")
		}

		apply(found)

		if err := orderRepo.Update(ctx, found); err != nil {
			return errors.Wrap(err, "failed to update order")
		}
		order = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return order, nil
}
