package main

import (
	"context"
	"log"

	"happycust-be/internal/bootstrap"
	"happycust-be/internal/config"
	"happycust-be/internal/server"
	"happycust-be/internal/tracer"
	"happycust-be/pkg/database"
)

func main() {
	shutdownTracer := tracer.InitTracer()
	defer shutdownTracer(context.Background())

	cfg := config.Load()

	gormDB, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Panicf("Unable to connect to GORM DB: %v", err)
	}

	container := bootstrap.NewContainer(gormDB, cfg)

	// Submission fan-out (dashboard notifications + owner email)
	go func() {
		log.Println("Background: Starting Consumer Service...")
		if err := container.ConsumerService.Consume(context.Background()); err != nil {
			log.Printf("Background Consumer Error: %v", err)
		}
	}()

	srv := server.New(cfg, container, container.Logger)

	log.Fatal(srv.Run())
}
