package handler

import (
	"context"
	"errors"
	"net/http"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/rl1809/shelf-service/internal/core/domain"
	"github.com/rl1809/shelf-service/internal/core/service"
)

// ShelfUseCase is the service surface the transports depend on.
type ShelfUseCase interface {
	RecordShelf(ctx context.Context, shopperID string, shelf []domain.ShelfItem) error
	RecordProduct(ctx context.Context, product domain.Product) error
	QueryProducts(ctx context.Context, query domain.ProductQuery) ([]domain.RankedProduct, error)
	Ping(ctx context.Context) error
}

const (
	msgShelfRecorded   = "Shopper info updated"
	msgProductRecorded = "Product metadata updated"
	msgUnknownShopper  = "Shopper ID does not exist"
)

var validate = newValidator()

// newValidator reports fields by their JSON or query parameter name.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		for _, tag := range []string{"json", "form"} {
			name, _, _ := strings.Cut(f.Tag.Get(tag), ",")
			if name != "" && name != "-" {
				return name
			}
		}
		return f.Name
	})
	return v
}

type HTTPHandler struct {
	shelves ShelfUseCase
}

type ShelfItemRequest struct {
	ProductID      ID       `json:"productId" validate:"required"`
	RelevancyScore *float64 `json:"relevancyScore" validate:"required"`
}

type RecordShelfRequest struct {
	ShopperID ID                 `json:"shopperId" validate:"required"`
	Shelf     []ShelfItemRequest `json:"shelf" validate:"dive"`
}

// RecordProductRequest leaves Category and Brand nil when they are absent
// or null; they are stored as NULL.
type RecordProductRequest struct {
	ProductID ID      `json:"productId" validate:"required"`
	Category  *string `json:"category"`
	Brand     *string `json:"brand"`
}

type ProductsQueryParams struct {
	ShopperID string `form:"shopperId" validate:"required"`
	Category  string `form:"category"`
	Brand     string `form:"brand"`
	Limit     *int   `form:"limit" validate:"omitempty,gt=0"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func NewHTTPHandler(shelves ShelfUseCase) *HTTPHandler {
	return &HTTPHandler{shelves: shelves}
}

// Register mounts the API routes on r.
func (h *HTTPHandler) Register(r gin.IRouter) {
	r.GET("/health", h.HealthCheck)

	api := r.Group("/api")
	api.POST("/shoppers", h.RecordShelf)
	api.POST("/products", h.RecordProduct)
	api.GET("/products", h.QueryProducts)
}

func (h *HTTPHandler) RecordShelf(c *gin.Context) {
	var req RecordShelfRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		respondError(c, http.StatusBadRequest, validationMessage(err))
		return
	}

	shelf := make([]domain.ShelfItem, len(req.Shelf))
	for i, item := range req.Shelf {
		shelf[i] = domain.ShelfItem{ProductID: item.ProductID.String(), RelevancyScore: *item.RelevancyScore}
	}

	if err := h.shelves.RecordShelf(c.Request.Context(), req.ShopperID.String(), shelf); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, MessageResponse{Message: msgShelfRecorded})
}

func (h *HTTPHandler) RecordProduct(c *gin.Context) {
	var req RecordProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		respondError(c, http.StatusBadRequest, validationMessage(err))
		return
	}

	err := h.shelves.RecordProduct(c.Request.Context(), domain.Product{
		ProductID: req.ProductID.String(),
		Category:  req.Category,
		Brand:     req.Brand,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, MessageResponse{Message: msgProductRecorded})
}

func (h *HTTPHandler) QueryProducts(c *gin.Context) {
	var params ProductsQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondError(c, http.StatusBadRequest, "invalid query parameters")
		return
	}
	if err := validate.Struct(params); err != nil {
		respondError(c, http.StatusBadRequest, validationMessage(err))
		return
	}

	query := domain.ProductQuery{
		ShopperID: params.ShopperID,
		Category:  params.Category,
		Brand:     params.Brand,
	}
	if params.Limit != nil {
		query.Limit = *params.Limit
	}

	products, err := h.shelves.QueryProducts(c.Request.Context(), query)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, products)
}

func (h *HTTPHandler) HealthCheck(c *gin.Context) {
	if err := h.shelves.Ping(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func respondError(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, ErrorResponse{Error: message})
}

// respondServiceError maps service errors to status codes. Store failures
// surface their raw message.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrShopperNotFound):
		respondError(c, http.StatusBadRequest, msgUnknownShopper)
	case errors.Is(err, service.ErrInvalidRequest):
		respondError(c, http.StatusBadRequest, err.Error())
	default:
		_ = c.Error(err)
		respondError(c, http.StatusInternalServerError, err.Error())
	}
}

func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err.Error()
	}
	fe := verrs[0]
	_, field, found := strings.Cut(fe.Namespace(), ".")
	if !found {
		field = fe.Field()
	}
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "gt":
		return field + " must be greater than " + fe.Param()
	default:
		return field + " is invalid"
	}
}
