// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"catalog/internal/delivery/http/middleware"
	"catalog/internal/delivery/http/response"
	"catalog/internal/usecase"
	"catalog/pkg/pagination"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ProductHandler holds dependencies for catalog handlers.
type ProductHandler struct {
	uc     usecase.ProductUsecase
	logger *slog.Logger
}

// NewProductHandler is the constructor for ProductHandler, injected by Fx.
func NewProductHandler(uc usecase.ProductUsecase, logger *slog.Logger) *ProductHandler {
	return &ProductHandler{
		uc:     uc,
		logger: logger,
	}
}

// colorRequest is one color entry in a product payload.
type colorRequest struct {
	Name string `json:"name"`
	RGB  string `json:"rgb"`
}

// updateProductRequest uses pointers so an absent field is distinguishable
// from a zero value; only supplied fields are applied.
type updateProductRequest struct {
	Name         *string         `json:"name"`
	Price        *float64        `json:"price"`
	Brand        *string         `json:"brand"`
	Category     *string         `json:"category"`
	CountInStock *int            `json:"countInStock"`
	Description  *string         `json:"description"`
	Colors       *[]colorRequest `json:"colors"`
}

// ListProducts handles the paginated, keyword-filtered catalog listing.
func (h *ProductHandler) ListProducts(c echo.Context) error {
	keyword := c.QueryParam("keyword")
	page := pagination.ParsePage(c.QueryParam("page"))

	result, err := h.uc.ListProducts(c.Request().Context(), keyword, page)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newProductPageResponse(result), "")
}

// TopProducts handles the top rated products request.
func (h *ProductHandler) TopProducts(c echo.Context) error {
	products, err := h.uc.TopProducts(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newProductListResponse(products), "")
}

// GetProduct handles the single product detail request.
func (h *ProductHandler) GetProduct(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid product id")
	}

	product, err := h.uc.GetProduct(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newProductResponse(product), "")
}

// CreateProduct handles the placeholder product creation request.
func (h *ProductHandler) CreateProduct(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	product, err := h.uc.CreateProduct(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, newProductResponse(product), "Product created successfully")
}

// UpdateProduct handles the partial product update request.
func (h *ProductHandler) UpdateProduct(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid product id")
	}

	var req updateProductRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}

	input := &usecase.UpdateProductInput{
		Name:         req.Name,
		Price:        req.Price,
		Brand:        req.Brand,
		Category:     req.Category,
		CountInStock: req.CountInStock,
		Description:  req.Description,
	}
	if req.Colors != nil {
		colors := make([]usecase.ColorInput, 0, len(*req.Colors))
		for _, colorReq := range *req.Colors {
			colors = append(colors, usecase.ColorInput{Name: colorReq.Name, RGB: colorReq.RGB})
		}
		input.Colors = &colors
	}

	product, err := h.uc.UpdateProduct(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newProductResponse(product), "Product updated successfully")
}

// DeleteProduct handles the product deletion request.
func (h *ProductHandler) DeleteProduct(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid product id")
	}

	if err := h.uc.DeleteProduct(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Product deleted successfully")
}

// AddImage handles the multipart image upload request.
func (h *ProductHandler) AddImage(c echo.Context) error {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid product id")
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Image file is required")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return errors.Wrap(err, "failed to open uploaded file")
	}
	defer file.Close()

	image, err := h.uc.AddProductImage(c.Request().Context(), productID, &usecase.AddImageInput{
		Body:        file,
		ContentType: fileHeader.Header.Get("Content-Type"),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, newImageResponse(image), "Image uploaded successfully")
}

// DeleteImage handles the image deletion request.
func (h *ProductHandler) DeleteImage(c echo.Context) error {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid product id")
	}
	imageID, err := uuid.Parse(c.Param("imageId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid image id")
	}

	if err := h.uc.DeleteProductImage(c.Request().Context(), productID, imageID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Image deleted successfully")
}

// AddColor handles the color variant creation request.
func (h *ProductHandler) AddColor(c echo.Context) error {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid product id")
	}

	var req colorRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid color input")
	}

	color, err := h.uc.AddProductColor(c.Request().Context(), productID, &usecase.ColorInput{
		Name: req.Name,
		RGB:  req.RGB,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, newColorResponse(color), "Color added successfully")
}

// DeleteColor handles the color variant deletion request.
func (h *ProductHandler) DeleteColor(c echo.Context) error {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid product id")
	}
	colorID, err := uuid.Parse(c.Param("colorId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid color id")
	}

	if err := h.uc.DeleteProductColor(c.Request().Context(), productID, colorID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Color deleted successfully")
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
