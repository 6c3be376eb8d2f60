package main

import (
	"github.com/bwmarrin/snowflake"
	"github.com/smallbiznis/komisi/internal/clock"
	"github.com/smallbiznis/komisi/internal/commission"
	"github.com/smallbiznis/komisi/internal/company"
	"github.com/smallbiznis/komisi/internal/config"
	"github.com/smallbiznis/komisi/internal/document"
	"github.com/smallbiznis/komisi/internal/logger"
	"github.com/smallbiznis/komisi/internal/migration"
	"github.com/smallbiznis/komisi/internal/product"
	"github.com/smallbiznis/komisi/internal/reference"
	"github.com/smallbiznis/komisi/internal/scheduler"
	"github.com/smallbiznis/komisi/internal/server"
	"github.com/smallbiznis/komisi/pkg/db"
	"go.uber.org/fx"
)

func main() {
	app := fx.New(
		config.Module,
		logger.Module,
		fx.Provide(RegisterSnowflake),
		db.Module,
		clock.Module,
		migration.Module,

		reference.Module,
		company.Module,
		product.Module,
		document.Module,
		commission.Module,

		scheduler.Module,
		server.Module,
	)
	app.Run()
}

func RegisterSnowflake() *snowflake.Node {
	node, err := snowflake.NewNode(1)
	if err != nil {
		panic(err)
	}
	return node
}
