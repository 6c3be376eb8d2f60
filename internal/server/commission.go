package server

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	commissiondomain "github.com/smallbiznis/komisi/internal/commission/domain"
	"go.uber.org/zap"
)

func (s *Server) listCommissionRecords(c *gin.Context) {
	req := commissiondomain.ListRequest{
		CompanyID:  parseIDParam(c.Query("company_id")),
		DocumentID: parseIDParam(c.Query("document_id")),
	}

	records, err := s.commissionSvc.List(c.Request.Context(), req)
	if err != nil {
		s.log.Error("list commission records failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal_error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": records})
}

func (s *Server) triggerCommissionSync(c *gin.Context) {
	report, err := s.commissionSvc.Sync(c.Request.Context())
	if err != nil {
		s.log.Error("manual commission sync failed", zap.Error(err))

		var syncErr *commissiondomain.SyncError
		if errors.As(err, &syncErr) {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "sync_failed",
				"phase": string(syncErr.Phase),
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "sync_failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": report})
}

func parseIDParam(raw string) int64 {
	if raw == "" {
		return 0
	}
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0
	}
	return value
}
