package handler

import (
	"time"

	"catalog/internal/domain/entity"
	"catalog/internal/usecase"
)

// Wire representations of the domain entities. Keeping them here shields the
// JSON shape from entity changes and keeps sensitive fields out of responses.

type imageResponse struct {
	ID        string    `json:"id"`
	ProductID string    `json:"productId"`
	Key       string    `json:"image"`
	CreatedAt time.Time `json:"createdAt"`
}

type colorResponse struct {
	ID        string `json:"id"`
	ProductID string `json:"productId"`
	Name      string `json:"name"`
	RGB       string `json:"rgb"`
}

type reviewResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Rating    float64   `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"createdAt"`
}

type productResponse struct {
	ID           string           `json:"id"`
	UserID       string           `json:"user"`
	Name         string           `json:"name"`
	Brand        string           `json:"brand"`
	Category     string           `json:"category"`
	Description  string           `json:"description"`
	Price        float64          `json:"price"`
	CountInStock int              `json:"countInStock"`
	Rating       float64          `json:"rating"`
	NumReviews   int              `json:"numReviews"`
	Images       []imageResponse  `json:"images"`
	Colors       []colorResponse  `json:"colors"`
	Reviews      []reviewResponse `json:"reviews,omitempty"`
	CreatedAt    time.Time        `json:"createdAt"`
}

type productPageResponse struct {
	Products []productResponse `json:"products"`
	Page     int               `json:"page"`
	Pages    int               `json:"pages"`
	Total    int64             `json:"total"`
}

type userResponse struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Username string `json:"username"`
	Name     string `json:"name"`
	MobileNo string `json:"mobileNo,omitempty"`
	IsAdmin  bool   `json:"isAdmin"`
}

type authResponse struct {
	User         userResponse `json:"user"`
	AccessToken  string       `json:"accessToken"`
	RefreshToken string       `json:"refreshToken"`
}

type orderItemResponse struct {
	ID        string  `json:"id"`
	ProductID string  `json:"product"`
	Name      string  `json:"name"`
	Qty       int     `json:"qty"`
	Price     float64 `json:"price"`
	Image     string  `json:"image,omitempty"`
}

type shippingAddressResponse struct {
	Address    string `json:"address"`
	City       string `json:"city"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
}

type orderResponse struct {
	ID              string                   `json:"id"`
	UserID          string                   `json:"user"`
	PaymentMethod   string                   `json:"paymentMethod"`
	ItemsPrice      float64                  `json:"itemsPrice"`
	ShippingPrice   float64                  `json:"shippingPrice"`
	TaxPrice        float64                  `json:"taxPrice"`
	TotalPrice      float64                  `json:"totalPrice"`
	IsPaid          bool                     `json:"isPaid"`
	PaidAt          *time.Time               `json:"paidAt,omitempty"`
	IsDelivered     bool                     `json:"isDelivered"`
	DeliveredAt     *time.Time               `json:"deliveredAt,omitempty"`
	Items           []orderItemResponse      `json:"orderItems"`
	ShippingAddress *shippingAddressResponse `json:"shippingAddress,omitempty"`
	CreatedAt       time.Time                `json:"createdAt"`
}

type orderPageResponse struct {
	Orders []orderResponse `json:"orders"`
	Page   int             `json:"page"`
	Pages  int             `json:"pages"`
	Total  int64           `json:"total"`
}

func newImageResponse(image *entity.ProductImage) imageResponse {
	return imageResponse{
		ID:        image.ID.String(),
		ProductID: image.ProductID.String(),
		Key:       image.Key,
		CreatedAt: image.CreatedAt,
	}
}

func newColorResponse(color *entity.ProductColor) colorResponse {
	return colorResponse{
		ID:        color.ID.String(),
		ProductID: color.ProductID.String(),
		Name:      color.Name,
		RGB:       color.RGB,
	}
}

func newReviewResponse(review *entity.Review) reviewResponse {
	return reviewResponse{
		ID:        review.ID.String(),
		Name:      review.Name,
		Rating:    review.Rating,
		Comment:   review.Comment,
		CreatedAt: review.CreatedAt,
	}
}

func newProductResponse(product *entity.Product) productResponse {
	images := make([]imageResponse, 0, len(product.Images))
	for _, image := range product.Images {
		images = append(images, newImageResponse(image))
	}

	colors := make([]colorResponse, 0, len(product.Colors))
	for _, color := range product.Colors {
		colors = append(colors, newColorResponse(color))
	}

	reviews := make([]reviewResponse, 0, len(product.Reviews))
	for _, review := range product.Reviews {
		reviews = append(reviews, newReviewResponse(review))
	}

	return productResponse{
		ID:           product.ID.String(),
		UserID:       product.UserID.String(),
		Name:         product.Name,
		Brand:        product.Brand,
		Category:     product.Category,
		Description:  product.Description,
		Price:        product.Price,
		CountInStock: product.CountInStock,
		Rating:       product.Rating,
		NumReviews:   product.NumReviews,
		Images:       images,
		Colors:       colors,
		Reviews:      reviews,
		CreatedAt:    product.CreatedAt,
	}
}

func newProductListResponse(products []*entity.Product) []productResponse {
	result := make([]productResponse, 0, len(products))
	for _, product := range products {
		result = append(result, newProductResponse(product))
	}

	return result
}

func newProductPageResponse(page *usecase.ProductPage) productPageResponse {
	return productPageResponse{
		Products: newProductListResponse(page.Products),
		Page:     page.Page,
		Pages:    page.Pages,
		Total:    page.Total,
	}
}

func newUserResponse(user *entity.User) userResponse {
	return userResponse{
		ID:       user.ID.String(),
		Email:    user.Email,
		Username: user.Username,
		Name:     user.Name,
		MobileNo: user.MobileNo,
		IsAdmin:  user.IsAdmin,
	}
}

func newUserListResponse(users []*entity.User) []userResponse {
	result := make([]userResponse, 0, len(users))
	for _, user := range users {
		result = append(result, newUserResponse(user))
	}

	return result
}

func newAuthResponse(output *usecase.AuthOutput) authResponse {
	return authResponse{
		User:         newUserResponse(output.User),
		AccessToken:  output.AccessToken,
		RefreshToken: output.RefreshToken,
	}
}

func newOrderResponse(order *entity.Order) orderResponse {
	items := make([]orderItemResponse, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, orderItemResponse{
			ID:        item.ID.String(),
			ProductID: item.ProductID.String(),
			Name:      item.Name,
			Qty:       item.Qty,
			Price:     item.Price,
			Image:     item.Image,
		})
	}

	var shipping *shippingAddressResponse
	if order.ShippingAddress != nil {
		shipping = &shippingAddressResponse{
			Address:    order.ShippingAddress.Address,
			City:       order.ShippingAddress.City,
			PostalCode: order.ShippingAddress.PostalCode,
			Country:    order.ShippingAddress.Country,
		}
	}

	return orderResponse{
		ID:              order.ID.String(),
		UserID:          order.UserID.String(),
		PaymentMethod:   order.PaymentMethod,
		ItemsPrice:      order.ItemsPrice,
		ShippingPrice:   order.ShippingPrice,
		TaxPrice:        order.TaxPrice,
		TotalPrice:      order.TotalPrice,
		IsPaid:          order.IsPaid,
		PaidAt:          order.PaidAt,
		IsDelivered:     order.IsDelivered,
		DeliveredAt:     order.DeliveredAt,
		Items:           items,
		ShippingAddress: shipping,
		CreatedAt:       order.CreatedAt,
	}
}

func newOrderListResponse(orders []*entity.Order) []orderResponse {
	result := make([]orderResponse, 0, len(orders))
	for _, order := range orders {
		result = append(result, newOrderResponse(order))
	}

	return result
}

func newOrderPageResponse(page *usecase.OrderPage) orderPageResponse {
	return orderPageResponse{
		Orders: newOrderListResponse(page.Orders),
		Page:   page.Page,
		Pages:  page.Pages,
		Total:  page.Total,
	}
}
