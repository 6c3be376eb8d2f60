// Package server exposes the HTTP surface: health, metrics, commission
// record inspection, a manual sync trigger and the product/currency
// catalog endpoints.
package server

import (
	"context"
	"net/http"

	"github.com/bwmarrin/snowflake"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/smallbiznis/komisi/internal/clock"
	commissiondomain "github.com/smallbiznis/komisi/internal/commission/domain"
	companydomain "github.com/smallbiznis/komisi/internal/company/domain"
	"github.com/smallbiznis/komisi/internal/config"
	productdomain "github.com/smallbiznis/komisi/internal/product/domain"
	referencedomain "github.com/smallbiznis/komisi/internal/reference/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	Config        config.Config
	Log           *zap.Logger
	DB            *gorm.DB
	GenID         *snowflake.Node
	Clock         clock.Clock
	CommissionSvc commissiondomain.Service
	ProductRepo   productdomain.Repository
	CompanyRepo   companydomain.Repository
	ReferenceRepo referencedomain.Repository
}

type Server struct {
	cfg           config.Config
	log           *zap.Logger
	engine        *gin.Engine
	db            *gorm.DB
	genID         *snowflake.Node
	clock         clock.Clock
	commissionSvc commissiondomain.Service
	productRepo   productdomain.Repository
	companyRepo   companydomain.Repository
	referenceRepo referencedomain.Repository
}

func New(p Params) *Server {
	s := &Server{
		cfg:           p.Config,
		log:           p.Log.Named("server"),
		engine:        gin.New(),
		db:            p.DB,
		genID:         p.GenID,
		clock:         p.Clock,
		commissionSvc: p.CommissionSvc,
		productRepo:   p.ProductRepo,
		companyRepo:   p.CompanyRepo,
		referenceRepo: p.ReferenceRepo,
	}

	s.engine.Use(gin.Recovery())
	s.registerRoutes()
	return s
}

func (s *Server) Engine() *gin.Engine {
	return s.engine
}

func (s *Server) registerRoutes() {
	s.engine.GET("/health", s.handleHealth)
	s.engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := s.engine.Group("/v1")
	v1.GET("/commission/records", s.listCommissionRecords)
	v1.POST("/commission/sync", s.triggerCommissionSync)

	v1.GET("/products", s.listProducts)
	v1.POST("/products", s.createProduct)
	v1.GET("/products/:id", s.getProduct)
	v1.GET("/companies/:id", s.getCompany)
	v1.GET("/currencies/:code", s.getCurrency)
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": s.cfg.AppName,
		"version": s.cfg.AppVersion,
	})
}

// Module provides and runs the HTTP server.
var Module = fx.Module("server",
	fx.Provide(New),
	fx.Invoke(Start),
)

func Start(lc fx.Lifecycle, cfg config.Config, log *zap.Logger, srv *Server) {
	httpSrv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: srv.Engine(),
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Error("http server stopped", zap.Error(err))
				}
			}()
			log.Info("http server listening", zap.String("addr", cfg.HTTPAddr))
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return httpSrv.Shutdown(ctx)
		},
	})
}
