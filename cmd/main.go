package main

import (
	"log"

	"github.com/mniTejaswini/recipe-app/config"
	"github.com/mniTejaswini/recipe-app/routes"
)

func main() {
	cfg := config.Load()

	db, err := config.ConnectDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := config.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	r := routes.SetupRouter(cfg, db)
	if err := r.Run(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Server exited: %v", err)
	}
}
