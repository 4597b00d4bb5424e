package server

import (
	"net/http"

	"github.com/haydenfisher75-hub/MiniDashboard-HaydenFisher/internal/handler"
	appmw "github.com/haydenfisher75-hub/MiniDashboard-HaydenFisher/internal/middleware"
	"github.com/haydenfisher75-hub/MiniDashboard-HaydenFisher/internal/repository"
	"github.com/haydenfisher75-hub/MiniDashboard-HaydenFisher/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"
)

type Server struct {
	e *echo.Echo
}

func New(db *gorm.DB) *Server {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(appmw.RequestID)
	e.Use(appmw.RequestLog)
	e.Use(appmw.Metrics)
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{"Content-Type", "X-Request-ID"},
	}))

	itemRepo := repository.NewItemRepository(db)
	typeRepo := repository.NewTypeRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)

	itemSvc := service.NewItemService(itemRepo, typeRepo, categoryRepo)
	itemHandler := handler.NewItemHandler(itemSvc)
	lookupHandler := handler.NewLookupHandler(typeRepo, categoryRepo)

	e.GET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"ok": "true"})
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/api")
	api.GET("/items", itemHandler.List)
	api.GET("/items/search", itemHandler.Search)
	api.GET("/items/:id", itemHandler.Get)
	api.POST("/items", itemHandler.Create)
	api.PUT("/items/:id", itemHandler.Update)
	api.DELETE("/items/:id", itemHandler.Delete)
	api.GET("/types", lookupHandler.ListTypes)
	api.GET("/categories", lookupHandler.ListCategories)

	return &Server{e: e}
}

func (s *Server) Start(addr string) error {
	return s.e.Start(addr)
}

// Echo exposes the underlying router for tests.
func (s *Server) Echo() *echo.Echo {
	return s.e
}
