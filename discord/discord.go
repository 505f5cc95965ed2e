package discord

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/bwmarrin/discordgo"
	"github.com/plutomall/rokbot/audit"
	"github.com/plutomall/rokbot/config"
	"github.com/plutomall/rokbot/ocr"
	"github.com/plutomall/rokbot/qa"
)

// StartBot opens the gateway connection, registers the slash commands and
// blocks until an interrupt signal arrives.
func StartBot(cfg *config.Config) error {
	session, err := discordgo.New("Bot " + cfg.DiscordBotToken)
	if err != nil {
		return err
	}

	if err := setupLogging(); err != nil {
		return err
	}

	store := qa.NewStore(cfg.QAFile)
	if err := store.Init(); err != nil {
		// Store I/O never takes the process down; Load degrades to empty.
		log.Printf("Failed to create QA file: %v", err)
	}
	engine := ocr.NewTesseractEngine()

	recorder, err := audit.NewScanRecorder(filepath.Join("data", "scans.duckdb"))
	if err != nil {
		// The recorder only feeds the escalation footer, so the bot can run
		// without it.
		log.Printf("Scan recorder unavailable: %v", err)
		recorder = nil
	} else {
		defer recorder.Close()
	}

	setupHandlers(session, cfg, store, engine, recorder)
	session.Identify.Intents = discordgo.IntentsGuilds | discordgo.IntentsGuildMessages | discordgo.IntentsMessageContent

	if err := session.Open(); err != nil {
		return err
	}

	if err := registerCommands(session); err != nil {
		session.Close()
		return fmt.Errorf("failed to register commands: %w", err)
	}

	log.Println("Bot is running. Press CTRL-C to exit.")
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	log.Println("Bot shutting down...")
	return session.Close()
}

func setupLogging() error {
	if err := os.MkdirAll("log", 0755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}
	logFile, err := os.OpenFile("log/app.log", os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		return fmt.Errorf("failed to open log file 'log/app.log': %w", err)
	}
	log.SetOutput(logFile)
	return nil
}

func registerCommands(s *discordgo.Session) error {
	commands := []*discordgo.ApplicationCommand{
		{
			Name:        "addqa",
			Description: "Add a question and its answer to the store",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "question",
					Description: "The question text",
					Required:    true,
				},
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "answer",
					Description: "The answer text",
					Required:    true,
				},
			},
		},
		{
			Name:        "listqa",
			Description: "List all stored questions",
		},
		{
			Name:        "deleteqa",
			Description: "Delete a stored question",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "question",
					Description: "The exact question to delete",
					Required:    true,
				},
			},
		},
	}

	created, err := s.ApplicationCommandBulkOverwrite(s.State.User.ID, "", commands)
	if err != nil {
		return err
	}
	for _, c := range created {
		log.Printf("Registered command: %s", c.Name)
	}
	return nil
}
