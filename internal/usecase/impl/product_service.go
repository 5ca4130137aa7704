// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"

	"catalog/config"
	"catalog/internal/domain/entity"
	domainerrors "catalog/internal/domain/errors"
	"catalog/internal/domain/repository"
	"catalog/internal/domain/service"
	"catalog/internal/usecase"
	"catalog/pkg/pagination"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Placeholder values for freshly created products. Admins create first and
// fill in the details through the update form.
const (
	sampleProductName     = "Sample Name"
	sampleProductBrand    = "Sample Brand"
	sampleProductCategory = "Sample Category"
)

// productService implements the ProductUsecase interface.
type productService struct {
	txManager  repository.TransactionManager
	imageStore service.ImageStore
	catalog    *config.CatalogConfig
	logger     *slog.Logger
}

// NewProductService is the constructor for productService.
func NewProductService(
	txManager repository.TransactionManager,
	imageStore service.ImageStore,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.ProductUsecase {
	return &productService{
		txManager:  txManager,
		imageStore: imageStore,
		catalog:    cfg.Catalog,
		logger:     logger,
	}
}

// ListProducts returns one keyword-filtered page of the catalog.
func (srv *productService) ListProducts(ctx context.Context, keyword string, page int) (*usecase.ProductPage, error) {
	params := pagination.Normalize(page, srv.catalog.PageSize)

	var result usecase.ProductPage

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		products, total, err := repoFactory.ProductRepo().List(ctx, keyword, params.Offset(), params.PageSize)
		if err != nil {
			return errors.Wrap(err, "failed to list products")
		}

		// A page past the end falls back to the first page
		pages := pagination.Pages(total, params.PageSize)
		if params.Page > pages {
			params.Page = 1
			products, total, err = repoFactory.ProductRepo().List(ctx, keyword, params.Offset(), params.PageSize)
			if err != nil {
				return errors.Wrap(err, "failed to list products")
			}
			pages = pagination.Pages(total, params.PageSize)
		}

		result = usecase.ProductPage{
			Products: products,
			Page:     params.Page,
			Pages:    pages,
			Total:    total,
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return &result, nil
}

// TopProducts returns the best rated products for the carousel.
func (srv *productService) TopProducts(ctx context.Context) ([]*entity.Product, error) {
	var products []*entity.Product

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.ProductRepo().TopRated(ctx, srv.catalog.TopRatedMinRating, srv.catalog.TopRatedLimit)
		if err != nil {
			return errors.Wrap(err, "failed to list top rated products")
		}
		products = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list top rated products")
	}

	return products, nil
}

// GetProduct retrieves one product with its reviews, images and colors.
func (srv *productService) GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var product *entity.Product

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.ProductRepo().FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				return domainerrors.ErrProductNotFound
			}

			return errors.Wrap(err, "failed to find product")
		}
		product = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return product, nil
}

// CreateProduct inserts a placeholder product owned by the caller.
func (srv *productService) CreateProduct(ctx context.Context, creatorID uuid.UUID) (*entity.Product, error) {
	srv.logger.Info("Creating placeholder product", "creatorID", creatorID)

	product := &entity.Product{
		UserID:   creatorID,
		Name:     sampleProductName,
		Brand:    sampleProductBrand,
		Category: sampleProductCategory,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.ProductRepo().Create(ctx, product)
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create product")
	}

	return product, nil
}

// UpdateProduct applies a partial update. Nil input fields keep their stored
// values; a non-nil colors list replaces the stored colors wholesale.
func (srv *productService) UpdateProduct(ctx context.Context, id uuid.UUID, input *usecase.UpdateProductInput) (*entity.Product, error) {
	srv.logger.Info("Updating product", "productID", id)

	var product *entity.Product

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		productRepo := repoFactory.ProductRepo()

		// 1. Find the product
		found, err := productRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				return domainerrors.ErrProductNotFound
			}

			return errors.Wrap(err, "failed to find product")
		}

		// 2. Apply only the supplied fields
		if input.Name != nil {
			found.Name = *input.Name
		}
		if input.Price != nil {
			found.Price = *input.Price
		}
		if input.Brand != nil {
			found.Brand = *input.Brand
		}
		if input.Category != nil {
			found.Category = *input.Category
		}
		if input.CountInStock != nil {
			found.CountInStock = *input.CountInStock
		}
		if input.Description != nil {
			found.Description = *input.Description
		}

		if err := productRepo.Update(ctx, found); err != nil {
			return errors.Wrap(err, "failed to update product")
		}

		// 3. A supplied colors list is authoritative: incomplete entries are skipped
		if input.Colors != nil {
			colors := make([]*entity.ProductColor, 0, len(*input.Colors))
			for _, colorIn := range *input.Colors {
				if colorIn.Name == "" || colorIn.RGB == "" {
					continue
				}
				colors = append(colors, &entity.ProductColor{
					ProductID: id,
					Name:      colorIn.Name,
					RGB:       colorIn.RGB,
				})
			}

			if err := productRepo.ReplaceColors(ctx, id, colors); err != nil {
				return errors.Wrap(err, "failed to replace product colors")
			}
		}

		// 4. Return the refreshed product
		refreshed, err := productRepo.FindByID(ctx, id)
		if err != nil {
			return errors.Wrap(err, "failed to reload product")
		}
		product = refreshed

		return nil
	})
	if err != nil {
		return nil, err
	}

	return product, nil
}

// DeleteProduct removes a product with its images, colors and reviews.
// Stored blobs are cleaned up best-effort after the rows are gone.
func (srv *productService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	srv.logger.Info("Deleting product", "productID", id)

	var imageKeys []string

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		productRepo := repoFactory.ProductRepo()

		found, err := productRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				return domainerrors.ErrProductNotFound
			}

			return errors.Wrap(err, "failed to find product")
		}
		for _, image := range found.Images {
			imageKeys = append(imageKeys, image.Key)
		}

		if err := productRepo.Delete(ctx, id); err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				return domainerrors.ErrProductNotFound
			}

			return errors.Wrap(err, "failed to delete product")
		}

		return nil
	})
	if err != nil {
		return err
	}

	for _, key := range imageKeys {
		if err := srv.imageStore.Delete(ctx, key); err != nil {
			srv.logger.Warn("Failed to delete product image blob", "key", key, "error", err)
		}
	}

	return nil
}

// AddProductImage stores the uploaded bytes and records the key on the product.
func (srv *productService) AddProductImage(ctx context.Context, productID uuid.UUID, input *usecase.AddImageInput) (*entity.ProductImage, error) {
	srv.logger.Info("Adding product image", "productID", productID)

	key, err := srv.imageStore.Save(ctx, input.Body, input.ContentType)
	if err != nil {
		return nil, errors.Wrap(err, "failed to store image")
	}

	image := &entity.ProductImage{
		ProductID: productID,
		Key:       key,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		productRepo := repoFactory.ProductRepo()

		if _, err := productRepo.FindByID(ctx, productID); err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				return domainerrors.ErrProductNotFound
			}

			return errors.Wrap(err, "failed to find product")
		}

		if err := productRepo.AddImage(ctx, image); err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				return domainerrors.ErrProductNotFound
			}

			return errors.Wrap(err, "failed to add product image")
		}

		return nil
	})
	if err != nil {
		// The row never landed; drop the orphaned blob.
		if delErr := srv.imageStore.Delete(ctx, key); delErr != nil {
			srv.logger.Warn("Failed to delete orphaned image blob", "key", key, "error", delErr)
		}

		return nil, err
	}

	return image, nil
}

// DeleteProductImage removes the image row when the (product, image) pair
// matches, then drops the blob best-effort.
func (srv *productService) DeleteProductImage(ctx context.Context, productID, imageID uuid.UUID) error {
	srv.logger.Info("Deleting product image", "productID", productID, "imageID", imageID)

	var key string

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		image, err := repoFactory.ProductRepo().DeleteImage(ctx, productID, imageID)
		if err != nil {
			if errors.Is(err, repository.ErrImageNotFound) {
				return domainerrors.ErrProductImageNotFound
			}

			return errors.Wrap(err, "failed to delete product image")
		}
		key = image.Key

		return nil
	})
	if err != nil {
		return err
	}

	if err := srv.imageStore.Delete(ctx, key); err != nil {
		srv.logger.Warn("Failed to delete image blob", "key", key, "error", err)
	}

	return nil
}

// AddProductColor appends a color variant. Name and rgb are both required.
func (srv *productService) AddProductColor(ctx context.Context, productID uuid.UUID, input *usecase.ColorInput) (*entity.ProductColor, error) {
	if input.Name == "" || input.RGB == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("color name and rgb are required")
	}

	color := &entity.ProductColor{
		ProductID: productID,
		Name:      input.Name,
		RGB:       input.RGB,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		productRepo := repoFactory.ProductRepo()

		if _, err := productRepo.FindByID(ctx, productID); err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				return domainerrors.ErrProductNotFound
			}

			return errors.Wrap(err, "failed to find product")
		}

		if err := productRepo.AddColor(ctx, color); err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				return domainerrors.ErrProductNotFound
			}

			return errors.Wrap(err, "failed to add product color")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return color, nil
}

// DeleteProductColor removes the color when the (product, color) pair matches.
func (srv *productService) DeleteProductColor(ctx context.Context, productID, colorID uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.ProductRepo().DeleteColor(ctx, productID, colorID); err != nil {
			if errors.Is(err, repository.ErrColorNotFound) {
				return domainerrors.ErrProductColorNotFound
			}

			return errors.Wrap(err, "failed to delete product color")
		}

		return nil
	})

	return err
}
