package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/haydenfisher75-hub/MiniDashboard-HaydenFisher/internal/logger"
	"github.com/haydenfisher75-hub/MiniDashboard-HaydenFisher/internal/metrics"
	"github.com/haydenfisher75-hub/MiniDashboard-HaydenFisher/internal/service"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type ItemHandler struct {
	svc service.ItemService
}

func NewItemHandler(svc service.ItemService) *ItemHandler {
	return &ItemHandler{svc: svc}
}

type ItemResponse struct {
	ID           int        `json:"id"`
	Name         string     `json:"name"`
	Description  string     `json:"description"`
	TypeID       int        `json:"typeId"`
	TypeName     string     `json:"typeName"`
	CategoryID   int        `json:"categoryId"`
	CategoryName string     `json:"categoryName"`
	ProductCode  string     `json:"productCode"`
	Price        float64    `json:"price"`
	Quantity     int        `json:"quantity"`
	Discount     float64    `json:"discount"`
	DiscountDate *time.Time `json:"discountDate,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    *time.Time `json:"updatedAt,omitempty"`
}

type ItemRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	TypeID      int     `json:"typeId"`
	CategoryID  int     `json:"categoryId"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
	Discount    float64 `json:"discount"`
}

func (r *ItemRequest) validate() string {
	switch {
	case r.Name == "" || len(r.Name) > 200:
		return "name is required and must be at most 200 characters"
	case r.Description == "" || len(r.Description) > 1000:
		return "description is required and must be at most 1000 characters"
	case r.TypeID < 1:
		return "typeId must be a valid type"
	case r.CategoryID < 1:
		return "categoryId must be a valid category"
	case r.Price <= 0:
		return "price must be greater than zero"
	case r.Quantity < 0:
		return "quantity cannot be negative"
	case r.Discount < 0 || r.Discount > 100:
		return "discount must be between 0 and 100"
	}
	return ""
}

func (r *ItemRequest) toInput() service.ItemInput {
	return service.ItemInput{
		Name:        r.Name,
		Description: r.Description,
		TypeID:      r.TypeID,
		CategoryID:  r.CategoryID,
		Price:       r.Price,
		Quantity:    r.Quantity,
		Discount:    r.Discount,
	}
}

func (h *ItemHandler) List(c echo.Context) error {
	items, err := h.svc.List(c.Request().Context())
	if err != nil {
		logger.FromContext(c).Error("list items failed", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, NewErrorResponse("internal_error", "failed to fetch items"))
	}
	return c.JSON(http.StatusOK, toItemResponses(items))
}

func (h *ItemHandler) Get(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "invalid id"))
	}
	item, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		logger.FromContext(c).Error("get item failed", zap.Int("id", id), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, NewErrorResponse("internal_error", "failed to fetch item"))
	}
	if item == nil {
		return c.JSON(http.StatusNotFound, NewErrorResponse("not_found", "item not found"))
	}
	return c.JSON(http.StatusOK, toItemResponse(item))
}

func (h *ItemHandler) Search(c echo.Context) error {
	items, err := h.svc.Search(c.Request().Context(), c.QueryParam("query"))
	if err != nil {
		logger.FromContext(c).Error("search items failed", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, NewErrorResponse("internal_error", "failed to search items"))
	}
	return c.JSON(http.StatusOK, toItemResponses(items))
}

func (h *ItemHandler) Create(c echo.Context) error {
	var req ItemRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "invalid json"))
	}
	if msg := req.validate(); msg != "" {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", msg))
	}

	item, err := h.svc.Create(c.Request().Context(), req.toInput())
	if err != nil {
		return h.mutationError(c, "create", err)
	}

	metrics.ItemOperationsTotal.WithLabelValues("create", "ok").Inc()
	logger.FromContext(c).Info("item created",
		zap.Int("id", item.ID),
		zap.String("product_code", item.ProductCode))
	return c.JSON(http.StatusCreated, toItemResponse(item))
}

func (h *ItemHandler) Update(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "invalid id"))
	}
	var req ItemRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "invalid json"))
	}
	if msg := req.validate(); msg != "" {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", msg))
	}

	item, err := h.svc.Update(c.Request().Context(), id, req.toInput())
	if err != nil {
		return h.mutationError(c, "update", err)
	}
	if item == nil {
		return c.JSON(http.StatusNotFound, NewErrorResponse("not_found", "item not found"))
	}

	metrics.ItemOperationsTotal.WithLabelValues("update", "ok").Inc()
	return c.JSON(http.StatusOK, toItemResponse(item))
}

func (h *ItemHandler) Delete(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "invalid id"))
	}
	found, err := h.svc.Delete(c.Request().Context(), id)
	if err != nil {
		logger.FromContext(c).Error("delete item failed", zap.Int("id", id), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, NewErrorResponse("internal_error", "failed to delete item"))
	}
	if !found {
		return c.JSON(http.StatusNotFound, NewErrorResponse("not_found", "item not found"))
	}

	metrics.ItemOperationsTotal.WithLabelValues("delete", "ok").Inc()
	return c.NoContent(http.StatusNoContent)
}

// mutationError maps the service error taxonomy to response codes: conflicts
// to 409, validation to 400, everything else to 500.
func (h *ItemHandler) mutationError(c echo.Context, op string, err error) error {
	var conflict *service.ConflictError
	if errors.As(err, &conflict) {
		metrics.ItemOperationsTotal.WithLabelValues(op, "conflict").Inc()
		return c.JSON(http.StatusConflict, NewErrorResponse("conflict", conflict.Message))
	}
	var invalid *service.ValidationError
	if errors.As(err, &invalid) {
		metrics.ItemOperationsTotal.WithLabelValues(op, "invalid").Inc()
		return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", invalid.Message))
	}
	metrics.ItemOperationsTotal.WithLabelValues(op, "error").Inc()
	logger.FromContext(c).Error(op+" item failed", zap.Error(err))
	return c.JSON(http.StatusInternalServerError, NewErrorResponse("internal_error", "failed to "+op+" item"))
}

func toItemResponse(item *service.EnrichedItem) ItemResponse {
	return ItemResponse{
		ID:           item.ID,
		Name:         item.Name,
		Description:  item.Description,
		TypeID:       item.TypeID,
		TypeName:     item.TypeName,
		CategoryID:   item.CategoryID,
		CategoryName: item.CategoryName,
		ProductCode:  item.ProductCode,
		Price:        item.Price,
		Quantity:     item.Quantity,
		Discount:     item.Discount,
		DiscountDate: item.DiscountDate,
		CreatedAt:    item.CreatedAt,
		UpdatedAt:    item.UpdatedAt,
	}
}

func toItemResponses(items []service.EnrichedItem) []ItemResponse {
	resp := make([]ItemResponse, 0, len(items))
	for i := range items {
		resp = append(resp, toItemResponse(&items[i]))
	}
	return resp
}
