package server

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rackline/consign-backend/internal/handler"
	appmw "github.com/rackline/consign-backend/internal/middleware"
	"github.com/rackline/consign-backend/internal/repository"
	"github.com/rackline/consign-backend/internal/service"
	"gorm.io/gorm"
)

type Server struct {
	e         *echo.Echo
	itemRepo  repository.ItemRepository
	auditRepo repository.AuditRepository
	earnRepo  repository.EarningsRepository
	sha       string
	build     string
}

func New(db *gorm.DB, log *slog.Logger, sha, buildTime string) *Server {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.Logger())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{"Content-Type", "Authorization", "X-Actor", "X-Request-ID"},
		AllowCredentials: true,
		AllowOriginFunc: func(origin string) (bool, error) {
			low := strings.ToLower(origin)
			if strings.HasPrefix(low, "http://localhost:") || strings.HasPrefix(low, "http://127.0.0.1:") ||
				strings.HasPrefix(low, "https://localhost:") || strings.HasPrefix(low, "https://127.0.0.1:") {
				return true, nil
			}
			return false, nil
		},
	}))
	e.Use(appmw.Actor)

	itemRepo := repository.NewItemRepository(db)
	auditRepo := repository.NewAuditRepository(db)
	earnRepo := repository.NewEarningsRepository(db)

	auditSvc := service.NewAuditService(auditRepo, log)
	earnSvc := service.NewEarningsService(earnRepo)
	itemSvc := service.NewItemService(itemRepo)
	lifecycleSvc := service.NewLifecycleService(itemRepo, earnSvc, auditSvc)

	itemHandler := handler.NewItemHandler(itemSvc)
	lifecycleHandler := handler.NewLifecycleHandler(lifecycleSvc)
	earningsHandler := handler.NewEarningsHandler(earnSvc)
	auditHandler := handler.NewAuditHandler(auditSvc)

	e.GET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"ok":         "true",
			"git_sha":    sha,
			"build_time": buildTime,
		})
	})

	api := e.Group("/api")
	api.GET("/items", itemHandler.List)
	api.GET("/items/grouped", itemHandler.Grouped)
	api.GET("/items/facets", itemHandler.Facets)
	api.GET("/items/:id", itemHandler.Get)
	api.POST("/items", itemHandler.Create)

	api.POST("/items/transition", lifecycleHandler.TransitionMany)
	api.POST("/items/discount/shelf", lifecycleHandler.ShelfDiscount)
	api.POST("/items/:id/transition", lifecycleHandler.Transition)
	api.POST("/items/:id/sale", lifecycleHandler.Sell)
	api.POST("/items/:id/ship", lifecycleHandler.Ship)
	api.POST("/items/:id/deliver", lifecycleHandler.Deliver)
	api.POST("/items/:id/discount", lifecycleHandler.Discount)

	api.GET("/sellers/:id/earnings", earningsHandler.Get)
	api.GET("/audit", auditHandler.List)

	return &Server{
		e:         e,
		itemRepo:  itemRepo,
		auditRepo: auditRepo,
		earnRepo:  earnRepo,
		sha:       sha,
		build:     buildTime,
	}
}

func (s *Server) Start(addr string) error {
	return s.e.Start(addr)
}

func (s *Server) SetDB(db *gorm.DB) {
	s.itemRepo.SetDB(db)
	s.auditRepo.SetDB(db)
	s.earnRepo.SetDB(db)
}
