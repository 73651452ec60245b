package main

import (
	"log"

	"github.com/joho/godotenv"

	corecmd "github.com/Soskid107/Hikma-bot-sub000/core/cmd"
	"github.com/Soskid107/Hikma-bot-sub000/internal/app"
	"github.com/Soskid107/Hikma-bot-sub000/internal/config"
)

func main() {
	// Local development convenience; production sets real env vars.
	_ = godotenv.Load()

	err := corecmd.Run(corecmd.Options{
		DefaultConfigPath: "config.yaml",
		LoadConfig: func(path string) (corecmd.ConfigCarrier, error) {
			return config.Load(path)
		},
		Bootstrap: func(cfg corecmd.ConfigCarrier) (corecmd.TelegramApp, error) {
			return app.Bootstrap(cfg.(*config.Config))
		},
	})
	if err != nil {
		log.Fatalf("bot exited: %v", err)
	}
}
