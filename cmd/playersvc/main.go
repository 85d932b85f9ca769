package main

import (
	config "github.com/avvvet/playhub-services/configs"
	"github.com/avvvet/playhub-services/internal/db"
	playercfg "github.com/avvvet/playhub-services/internal/playersvc/config"
	handlers "github.com/avvvet/playhub-services/internal/playersvc/handlers"
	"github.com/avvvet/playhub-services/internal/playersvc/models"
	"github.com/avvvet/playhub-services/internal/playersvc/service"
	"github.com/avvvet/playhub-services/internal/playersvc/store"
	"github.com/avvvet/playhub-services/internal/rest"
	log "github.com/sirupsen/logrus"
)

const SERVICE_NAME = "player"

func main() {
	config.LoadEnv(SERVICE_NAME)
	cfg, err := playercfg.Load()
	if err != nil {
		log.Fatalf("invalid %s service configuration: %v", SERVICE_NAME, err)
	}
	instanceId := config.CreateUniqueInstance(SERVICE_NAME)
	config.Logging(SERVICE_NAME+"_service_"+instanceId, cfg.LogDir, cfg.LogLevel)
	log.Infof("%s service with Instance ID: %s is ready", SERVICE_NAME, instanceId)

	// pg connection
	database, err := db.Connect(cfg.DBUrl)
	if err != nil {
		log.Fatalf("Failed to connect to DB: %v", err)
	}
	defer database.Close()
	log.Printf("pg connection established successfully")

	if err := database.Migrate(&models.Player{}); err != nil {
		log.Fatalf("Failed to migrate players table: %v", err)
	}

	playerStore := store.NewPlayerStore(database.Gorm)
	playerService := service.NewPlayerService(playerStore)

	// Setup router
	r := config.NewRouter(cfg.Common)

	// Init handlers and routes
	tokenAuth := rest.NewTokenAuth(cfg.JWTSecret)
	rest.LogServiceToken(tokenAuth, SERVICE_NAME+"_service_"+instanceId)
	h := handlers.NewHandler(playerService, tokenAuth)
	h.SetRoutes(r)

	config.Serve(SERVICE_NAME, cfg.Port, r)
}
