package main

import (
	"context"
	"time"

	"github.com/openroam/travelblog/config"
	"github.com/openroam/travelblog/models"
	"github.com/openroam/travelblog/routes"
	"github.com/openroam/travelblog/utils"
)

func main() {
	cfg := config.Load()

	if err := utils.InitLogger(cfg); err != nil {
		panic(err)
	}

	db := config.InitDatabase(
		&models.Author{},
		&models.Category{},
		&models.Post{},
		&models.Comment{},
		&models.Subscriber{},
		&models.UploadedFile{},
	)

	r := routes.SetupRouter(db)

	// Best-effort sweep for category references left dangling by a crash
	// mid-cascade.
	utils.StartCategoryRepair(context.Background(), db, time.Duration(cfg.RepairIntervalMinutes)*time.Minute)

	utils.Sugar.Infof("Starting server on port %s (graceful)", cfg.AppPort)
	if err := utils.GraceServer(":"+cfg.AppPort, r); err != nil {
		utils.Sugar.Fatalf("server stopped with error: %v", err)
	}
}
