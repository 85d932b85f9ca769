package main

import (
	config "github.com/avvvet/playhub-services/configs"
	"github.com/avvvet/playhub-services/internal/nats"
	"github.com/avvvet/playhub-services/internal/rest"
	"github.com/avvvet/playhub-services/internal/socketsvc/broker"
	socketcfg "github.com/avvvet/playhub-services/internal/socketsvc/config"
	"github.com/avvvet/playhub-services/internal/socketsvc/routes"
	"github.com/avvvet/playhub-services/internal/socketsvc/ws"
	log "github.com/sirupsen/logrus"
)

const SERVICE_NAME = "socket"

func main() {
	config.LoadEnv(SERVICE_NAME)
	cfg, err := socketcfg.Load()
	if err != nil {
		log.Fatalf("invalid %s service configuration: %v", SERVICE_NAME, err)
	}
	instanceId := config.CreateUniqueInstance(SERVICE_NAME)
	config.Logging(SERVICE_NAME+"_service_"+instanceId, cfg.LogDir, cfg.LogLevel)
	log.Infof("%s service with Instance ID: %s is ready", SERVICE_NAME, instanceId)

	// Connect to NATS
	n, err := nats.Connect(SERVICE_NAME+"_service_"+instanceId, cfg.NatsURL, cfg.NatsToken)
	if err != nil {
		log.Fatalf("Error: unable to connect to NATS server %v", err)
	}
	defer n.Conn.Close()
	log.Printf("NATS connection established successfully %s", n.Url)

	// Setup router
	r := config.NewRouter(cfg.Common)

	// Initialize websocket hub and routes
	s := ws.NewWs()
	tokenAuth := rest.NewTokenAuth(cfg.JWTSecret)
	rest.LogServiceToken(tokenAuth, SERVICE_NAME+"_service_"+instanceId)
	routes.SetRoutes(r, s, tokenAuth)

	// subscribe to game events
	b := broker.NewBroker(n.Conn, s.Broadcast)
	sub, err := b.Subscribe(cfg.EventsTopic)
	if err != nil {
		log.Fatalf("Error: unable to subscribe to %s %v", cfg.EventsTopic, err)
	}
	defer sub.Unsubscribe()

	config.Serve(SERVICE_NAME, cfg.Port, r)
}
