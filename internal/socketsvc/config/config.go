package config

import (
	common "github.com/avvvet/playhub-services/configs"
)

type Config struct {
	common.Common

	Port        string `env:"SOCKET_SERVICE_PORT" envDefault:"8082"`
	NatsURL     string `env:"NATS_URL"` // empty means nats.DefaultURL
	NatsToken   string `env:"NATS_TOKEN"`
	EventsTopic string `env:"GAME_EVENTS_TOPIC" envDefault:"game.events"`
}

func Load() (Config, error) {
	var cfg Config
	err := common.Parse(&cfg)
	return cfg, err
}
