package main

import (
	"log"

	"github.com/plutomall/rokbot/audit"
	"github.com/plutomall/rokbot/config"
	"github.com/plutomall/rokbot/discord"
	"github.com/plutomall/rokbot/web"
)

func main() {
	if err := audit.Init(); err != nil {
		log.Fatalf("Failed to initialize audit log: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Keep-alive endpoint for the external uptime monitor.
	go func() {
		if err := web.Run(":3000"); err != nil {
			log.Printf("Keep-alive server error: %v", err)
		}
	}()

	if err := discord.StartBot(cfg); err != nil {
		log.Fatalf("Bot error: %v", err)
	}

	log.Println("Bot shut down.")
}
