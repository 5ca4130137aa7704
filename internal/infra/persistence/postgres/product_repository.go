package postgres

import (
	"context"

	"catalog/internal/domain/entity"
	domainerrors "catalog/internal/domain/errors"
	"catalog/internal/domain/repository"
	"catalog/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// productRepository implements the domain.ProductRepository interface using GORM.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
// It returns the repository as a domain interface, adhering to dependency inversion.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{db: db}
}

// FindByID retrieves a single product with its images, colors and reviews preloaded.
func (repo *productRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var productM model.ProductModel
	err := repo.db.WithContext(ctx).
		Preload("Images").
		Preload("Colors").
		Preload("Reviews", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at DESC")
		}).
		First(&productM, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by id")
	}

	return toProductDomain(&productM), nil
}

// FindByIDForUpdate retrieves a product while holding a FOR UPDATE row lock.
// Must be called inside a transaction; the lock is released on commit/rollback.
// Images are preloaded so callers can snapshot them while holding the lock.
func (repo *productRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var productM model.ProductModel
	err := repo.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}).
		Preload("Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC")
		}).
		First(&productM, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to lock product row")
	}

	return toProductDomain(&productM), nil
}

// List returns one page of keyword-matched products, newest first, plus the total count.
func (repo *productRepository) List(ctx context.Context, keyword string, offset, limit int) ([]*entity.Product, int64, error) {
	query := repo.db.WithContext(ctx).Model(&model.ProductModel{})
	if keyword != "" {
		query = query.Where("name ILIKE ?", "%"+keyword+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count products")
	}

	var productMs []*model.ProductModel
	err := query.
		Preload("Images").
		Preload("Colors").
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&productMs).Error
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to list products")
	}

	products := make([]*entity.Product, 0, len(productMs))
	for _, productM := range productMs {
		products = append(products, toProductDomain(productM))
	}

	return products, total, nil
}

// TopRated returns up to limit products with rating >= minRating, best first.
func (repo *productRepository) TopRated(ctx context.Context, minRating float64, limit int) ([]*entity.Product, error) {
	var productMs []*model.ProductModel
	err := repo.db.WithContext(ctx).
		Preload("Images").
		Preload("Colors").
		Where("rating >= ?", minRating).
		Order("rating DESC").
		Limit(limit).
		Find(&productMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list top rated products")
	}

	products := make([]*entity.Product, 0, len(productMs))
	for _, productM := range productMs {
		products = append(products, toProductDomain(productM))
	}

	return products, nil
}

// Create persists a new product.
func (repo *productRepository) Create(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)

	if err := repo.db.WithContext(ctx).Create(productM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid creator reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required product information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create product")
	}

	product.ID = productM.ID
	product.CreatedAt = productM.CreatedAt
	product.UpdatedAt = productM.UpdatedAt

	return nil
}

// Update persists scalar product fields. Owned collections are managed
// through the dedicated color/image operations.
func (repo *productRepository) Update(ctx context.Context, product *entity.Product) error {
	updates := map[string]any{
		"name":           product.Name,
		"brand":          product.Brand,
		"category":       product.Category,
		"description":    product.Description,
		"price":          product.Price,
		"count_in_stock": product.CountInStock,
	}

	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ?", product.ID).
		Updates(updates)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update product")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// UpdateRating persists the denormalized rating aggregate.
func (repo *productRepository) UpdateRating(ctx context.Context, id uuid.UUID, rating float64, numReviews int) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ?", id).
		Updates(map[string]any{"rating": rating, "num_reviews": numReviews})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update product rating")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// Delete removes a product. Owned rows go with it via the association
// constraints; the explicit child deletes keep the behavior identical on
// databases created without FK cascades.
func (repo *productRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := repo.db.WithContext(ctx).Where("product_id = ?", id).Delete(&model.ProductImageModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete product images")
	}
	if err := repo.db.WithContext(ctx).Where("product_id = ?", id).Delete(&model.ProductColorModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete product colors")
	}
	if err := repo.db.WithContext(ctx).Where("product_id = ?", id).Delete(&model.ReviewModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete product reviews")
	}

	result := repo.db.WithContext(ctx).Delete(&model.ProductModel{}, "id = ?", id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete product")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// ReplaceColors deletes every color owned by the product and inserts the given set.
func (repo *productRepository) ReplaceColors(ctx context.Context, productID uuid.UUID, colors []*entity.ProductColor) error {
	if err := repo.db.WithContext(ctx).Where("product_id = ?", productID).Delete(&model.ProductColorModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to clear product colors")
	}

	if len(colors) == 0 {
		return nil
	}

	colorMs := make([]*model.ProductColorModel, 0, len(colors))
	for _, color := range colors {
		colorMs = append(colorMs, &model.ProductColorModel{
			ProductID: productID,
			Name:      color.Name,
			RGB:       color.RGB,
		})
	}

	if err := repo.db.WithContext(ctx).Create(&colorMs).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to insert product colors")
	}

	for i, colorM := range colorMs {
		colors[i].ID = colorM.ID
		colors[i].ProductID = colorM.ProductID
	}

	return nil
}

// AddColor appends a single color variant.
func (repo *productRepository) AddColor(ctx context.Context, color *entity.ProductColor) error {
	colorM := &model.ProductColorModel{
		ProductID: color.ProductID,
		Name:      color.Name,
		RGB:       color.RGB,
	}

	if err := repo.db.WithContext(ctx).Create(colorM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrProductNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to add product color")
	}

	color.ID = colorM.ID

	return nil
}

// DeleteColor removes the color only when both ids match an existing row.
func (repo *productRepository) DeleteColor(ctx context.Context, productID, colorID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ? AND product_id = ?", colorID, productID).
		Delete(&model.ProductColorModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete product color")
	}
	if result.RowsAffected == 0 {
		return repository.ErrColorNotFound
	}

	return nil
}

// AddImage appends a single extra image row.
func (repo *productRepository) AddImage(ctx context.Context, image *entity.ProductImage) error {
	imageM := &model.ProductImageModel{
		ProductID: image.ProductID,
		Key:       image.Key,
	}

	if err := repo.db.WithContext(ctx).Create(imageM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrProductNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to add product image")
	}

	image.ID = imageM.ID
	image.CreatedAt = imageM.CreatedAt

	return nil
}

// DeleteImage removes the image row only when both ids match, returning the
// deleted row so the caller can clean up the stored blob.
func (repo *productRepository) DeleteImage(ctx context.Context, productID, imageID uuid.UUID) (*entity.ProductImage, error) {
	var imageM model.ProductImageModel
	err := repo.db.WithContext(ctx).
		First(&imageM, "id = ? AND product_id = ?", imageID, productID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrImageNotFound
		}

		return nil, errors.Wrap(err, "failed to find product image")
	}

	if err := repo.db.WithContext(ctx).Delete(&imageM).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to delete product image")
	}

	return toProductImageDomain(&imageM), nil
}

// --- Mapper Functions ---
// These helpers convert between domain entities and persistence models.

func toProductDomain(data *model.ProductModel) *entity.Product {
	if data == nil {
		return nil
	}

	images := make([]*entity.ProductImage, 0, len(data.Images))
	for _, imageM := range data.Images {
		images = append(images, toProductImageDomain(imageM))
	}

	colors := make([]*entity.ProductColor, 0, len(data.Colors))
	for _, colorM := range data.Colors {
		colors = append(colors, &entity.ProductColor{
			ID:        colorM.ID,
			ProductID: colorM.ProductID,
			Name:      colorM.Name,
			RGB:       colorM.RGB,
		})
	}

	reviews := make([]*entity.Review, 0, len(data.Reviews))
	for _, reviewM := range data.Reviews {
		reviews = append(reviews, toReviewDomain(reviewM))
	}

	return &entity.Product{
		ID:           data.ID,
		UserID:       data.UserID,
		Name:         data.Name,
		Brand:        data.Brand,
		Category:     data.Category,
		Description:  data.Description,
		Price:        data.Price,
		CountInStock: data.CountInStock,
		Rating:       data.Rating,
		NumReviews:   data.NumReviews,
		Images:       images,
		Colors:       colors,
		Reviews:      reviews,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

func fromProductDomain(data *entity.Product) *model.ProductModel {
	if data == nil {
		return nil
	}

	return &model.ProductModel{
		ID:           data.ID,
		UserID:       data.UserID,
		Name:         data.Name,
		Brand:        data.Brand,
		Category:     data.Category,
		Description:  data.Description,
		Price:        data.Price,
		CountInStock: data.CountInStock,
		Rating:       data.Rating,
		NumReviews:   data.NumReviews,
	}
}

func toProductImageDomain(data *model.ProductImageModel) *entity.ProductImage {
	if data == nil {
		return nil
	}

	return &entity.ProductImage{
		ID:        data.ID,
		ProductID: data.ProductID,
		Key:       data.Key,
		CreatedAt: data.CreatedAt,
	}
}
