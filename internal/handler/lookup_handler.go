package handler

import (
	"net/http"
	"strconv"

	"github.com/haydenfisher75-hub/MiniDashboard-HaydenFisher/internal/logger"
	"github.com/haydenfisher75-hub/MiniDashboard-HaydenFisher/internal/model"
	"github.com/haydenfisher75-hub/MiniDashboard-HaydenFisher/internal/repository"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// LookupHandler serves the read-only type and category reference data.
type LookupHandler struct {
	types      repository.TypeRepository
	categories repository.CategoryRepository
}

func NewLookupHandler(types repository.TypeRepository, categories repository.CategoryRepository) *LookupHandler {
	return &LookupHandler{types: types, categories: categories}
}

type TypeResponse struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type CategoryResponse struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Prefix string `json:"prefix"`
	TypeID int    `json:"typeId"`
}

func (h *LookupHandler) ListTypes(c echo.Context) error {
	types, err := h.types.GetAll(c.Request().Context())
	if err != nil {
		logger.FromContext(c).Error("list types failed", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, NewErrorResponse("internal_error", "failed to fetch types"))
	}
	resp := make([]TypeResponse, 0, len(types))
	for _, t := range types {
		resp = append(resp, TypeResponse{ID: t.ID, Name: t.Name})
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *LookupHandler) ListCategories(c echo.Context) error {
	var (
		categories []model.Category
		err        error
	)
	if raw := c.QueryParam("typeId"); raw != "" {
		typeID, convErr := strconv.Atoi(raw)
		if convErr != nil {
			return c.JSON(http.StatusBadRequest, NewErrorResponse("bad_request", "invalid typeId"))
		}
		categories, err = h.categories.GetByTypeID(c.Request().Context(), typeID)
	} else {
		categories, err = h.categories.GetAll(c.Request().Context())
	}
	if err != nil {
		logger.FromContext(c).Error("list categories failed", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, NewErrorResponse("internal_error", "failed to fetch categories"))
	}

	resp := make([]CategoryResponse, 0, len(categories))
	for _, cat := range categories {
		resp = append(resp, CategoryResponse{ID: cat.ID, Name: cat.Name, Prefix: cat.Prefix, TypeID: cat.TypeID})
	}
	return c.JSON(http.StatusOK, resp)
}
