package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	productdomain "github.com/smallbiznis/komisi/internal/product/domain"
	"github.com/smallbiznis/komisi/pkg/db"
	"go.uber.org/zap"
)

type createProductRequest struct {
	Code           string          `json:"code" binding:"required"`
	Name           string          `json:"name" binding:"required"`
	Description    *string         `json:"description"`
	CommissionRate decimal.Decimal `json:"commission_rate"`
}

func (s *Server) createProduct(c *gin.Context) {
	var req createProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request"})
		return
	}
	if req.CommissionRate.Sign() < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "negative_commission_rate"})
		return
	}

	now := s.clock.Now()
	product := productdomain.Product{
		ID:             s.genID.Generate(),
		Code:           req.Code,
		Name:           req.Name,
		Description:    req.Description,
		Active:         true,
		CommissionRate: req.CommissionRate,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.productRepo.Create(c.Request.Context(), s.db, &product); err != nil {
		if db.IsDuplicateKeyErr(err) {
			c.JSON(http.StatusConflict, gin.H{"error": "duplicate_product_code"})
			return
		}
		s.log.Error("create product failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal_error"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": product})
}

func (s *Server) getProduct(c *gin.Context) {
	id := parseIDParam(c.Param("id"))
	if id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_product_id"})
		return
	}

	product, err := s.productRepo.FindByID(c.Request.Context(), s.db, id)
	if err != nil {
		s.log.Error("find product failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal_error"})
		return
	}
	if product == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "product_not_found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":           product,
		"commissionable": product.Commissionable(),
	})
}

func (s *Server) getCompany(c *gin.Context) {
	id := parseIDParam(c.Param("id"))
	if id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_company_id"})
		return
	}

	company, err := s.companyRepo.FindByID(c.Request.Context(), s.db, id)
	if err != nil {
		s.log.Error("find company failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal_error"})
		return
	}
	if company == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "company_not_found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": company})
}

func (s *Server) listProducts(c *gin.Context) {
	products, err := s.productRepo.FindAll(c.Request.Context(), s.db)
	if err != nil {
		s.log.Error("list products failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal_error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": products})
}

func (s *Server) getCurrency(c *gin.Context) {
	currency, err := s.referenceRepo.FindCurrency(c.Request.Context(), c.Param("code"))
	if err != nil {
		s.log.Error("find currency failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal_error"})
		return
	}
	if currency == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "currency_not_found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": currency})
}
