package discord

import (
	"fmt"
	"log"

	"github.com/bwmarrin/discordgo"
	"github.com/plutomall/rokbot/config"
	"github.com/plutomall/rokbot/qa"
)

func deleteQACommandHandler(s InteractionSession, i *discordgo.InteractionCreate, store *qa.Store, cfg *config.Config) {
	if !hasAdminRole(i.Member, cfg.AdminRoleID) {
		respondEphemeral(s, i, "You need the admin role to delete questions.")
		return
	}

	question := i.ApplicationCommandData().Options[0].StringValue()

	// Delete is stricter than scan matching: only an exact case-insensitive
	// match is removed.
	found, err := store.Delete(question)
	if err != nil {
		log.Printf("Failed to delete QA pair: %v", err)
		respondEphemeral(s, i, "Failed to delete the question. Please try again.")
		return
	}
	if !found {
		respondEphemeral(s, i, fmt.Sprintf("No question exactly matching %q was found.", question))
		return
	}

	logCommandAudit("deleteqa", i, question)
	respondEphemeral(s, i, fmt.Sprintf("Deleted: %q", question))
}
