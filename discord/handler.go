package discord

import (
	"log"

	"github.com/bwmarrin/discordgo"
	"github.com/plutomall/rokbot/audit"
	"github.com/plutomall/rokbot/config"
	"github.com/plutomall/rokbot/ocr"
	"github.com/plutomall/rokbot/qa"
)

func setupHandlers(s *discordgo.Session, cfg *config.Config, store *qa.Store, engine ocr.Engine, recorder *audit.ScanRecorder) {
	scanner := NewScanner(cfg, store, engine, recorder)

	s.AddHandler(onReady)

	s.AddHandler(func(s *discordgo.Session, m *discordgo.MessageCreate) {
		if m.Author == nil || m.Author.ID == s.State.User.ID || m.Author.Bot {
			return
		}
		scanner.HandleMessage(s, m)
	})

	s.AddHandler(func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		if i.Type != discordgo.InteractionApplicationCommand {
			return
		}

		switch i.ApplicationCommandData().Name {
		case "addqa":
			addQACommandHandler(s, i, store, cfg)
		case "listqa":
			listQACommandHandler(s, i, store)
		case "deleteqa":
			deleteQACommandHandler(s, i, store, cfg)
		}
	})
}

func onReady(s *discordgo.Session, event *discordgo.Ready) {
	log.Printf("Bot is ready! %s#%s", s.State.User.Username, s.State.User.Discriminator)
	if err := s.UpdateGameStatus(0, "Rise of Kingdoms trivia"); err != nil {
		log.Printf("Failed to update status: %v", err)
	}
}
