package migration

import (
	commissiondomain "github.com/smallbiznis/komisi/internal/commission/domain"
	companydomain "github.com/smallbiznis/komisi/internal/company/domain"
	"github.com/smallbiznis/komisi/internal/config"
	documentdomain "github.com/smallbiznis/komisi/internal/document/domain"
	productdomain "github.com/smallbiznis/komisi/internal/product/domain"
	referencedomain "github.com/smallbiznis/komisi/internal/reference/domain"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

var Module = fx.Module("migrations",
	fx.Invoke(func(conn *gorm.DB, cfg config.Config) error {
		if cfg.DBType != "postgres" {
			// Non-postgres dialects (sqlite dev mode) fall back to gorm's
			// schema sync.
			return conn.AutoMigrate(
				&referencedomain.Currency{},
				&companydomain.Company{},
				&productdomain.Product{},
				&documentdomain.Uom{},
				&documentdomain.Document{},
				&documentdomain.DocumentLine{},
				&commissiondomain.CommissionRecord{},
			)
		}

		sqlDB, err := conn.DB()
		if err != nil {
			return err
		}
		return RunMigrations(sqlDB)
	}),
)
