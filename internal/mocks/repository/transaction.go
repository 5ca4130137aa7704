// Package repository provides hand-maintained test doubles for the
// persistence contracts.
package repository

import (
	"context"

	"catalog/internal/domain/repository"
)

// FakeRepositoryFactory hands out the configured repository mocks.
type FakeRepositoryFactory struct {
	Products *MockProductRepository
	Reviews  *MockReviewRepository
	Users    *MockUserRepository
	Orders   *MockOrderRepository
}

func (f *FakeRepositoryFactory) ProductRepo() repository.ProductRepository {
	return f.Products
}

func (f *FakeRepositoryFactory) ReviewRepo() repository.ReviewRepository {
	return f.Reviews
}

func (f *FakeRepositoryFactory) UserRepo() repository.UserRepository {
	return f.Users
}

func (f *FakeRepositoryFactory) OrderRepo() repository.OrderRepository {
	return f.Orders
}

// FakeTransactionManager runs the callback against a fixed factory without a
// database, returning whatever the callback returns. Rollback/commit behavior
// is covered by the real implementation's tests.
type FakeTransactionManager struct {
	Factory repository.RepositoryFactory
}

func (m *FakeTransactionManager) Execute(_ context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	return fn(m.Factory)
}
