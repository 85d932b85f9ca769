package main

import (
	"net/http"

	config "github.com/avvvet/playhub-services/configs"
	"github.com/avvvet/playhub-services/internal/db"
	"github.com/avvvet/playhub-services/internal/gamesvc/broker"
	"github.com/avvvet/playhub-services/internal/gamesvc/client"
	gamecfg "github.com/avvvet/playhub-services/internal/gamesvc/config"
	handlers "github.com/avvvet/playhub-services/internal/gamesvc/handlers"
	"github.com/avvvet/playhub-services/internal/gamesvc/models"
	"github.com/avvvet/playhub-services/internal/gamesvc/service"
	"github.com/avvvet/playhub-services/internal/gamesvc/store"
	nats "github.com/avvvet/playhub-services/internal/nats"
	"github.com/avvvet/playhub-services/internal/rest"
	log "github.com/sirupsen/logrus"
)

const SERVICE_NAME = "game"

func main() {
	config.LoadEnv(SERVICE_NAME)
	cfg, err := gamecfg.Load()
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

	if err := database.Migrate(&models.Game{}); err != nil {
		log.Fatalf("Failed to migrate games table: %v", err)
	}

	// game lifecycle events, only when NATS is configured
	events := broker.NewBroker(nil, cfg.EventsTopic)
	if cfg.NatsURL != "" {
		n, err := nats.Connect(SERVICE_NAME+"_service_"+instanceId, cfg.NatsURL, cfg.NatsToken)
		if err != nil {
			log.Fatalf("Error: unable to connect to NATS server %v", err)
		}
		defer n.Conn.Close()
		log.Printf("NATS connection established successfully %s", n.Url)
		events = broker.NewBroker(n.Conn, cfg.EventsTopic)
	}

	players := client.New(cfg.PlayerService, &http.Client{})
	gameStore := store.NewGameStore(database.Gorm)
	gameService := service.NewGameService(gameStore, players, events)

	// Setup router
	r := config.NewRouter(cfg.Common)

	// Init handlers and routes
	tokenAuth := rest.NewTokenAuth(cfg.JWTSecret)
	rest.LogServiceToken(tokenAuth, SERVICE_NAME+"_service_"+instanceId)
	h := handlers.NewHandler(gameService, tokenAuth)
	h.SetRoutes(r)

	config.Serve(SERVICE_NAME, cfg.Port, r)
}
