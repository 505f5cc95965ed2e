package discord

import (
	"fmt"
	"log"

	"github.com/bwmarrin/discordgo"
	"github.com/plutomall/rokbot/config"
	"github.com/plutomall/rokbot/qa"
)

func addQACommandHandler(s InteractionSession, i *discordgo.InteractionCreate, store *qa.Store, cfg *config.Config) {
	if !hasAdminRole(i.Member, cfg.AdminRoleID) {
		respondEphemeral(s, i, "You need the admin role to add questions.")
		return
	}

	options := i.ApplicationCommandData().Options
	question := options[0].StringValue()
	answer := options[1].StringValue()

	// "Already exists" uses the same containment rule as scan matching, so
	// near-duplicates are rejected, not just exact copies.
	if existing, found := qa.Match(question, store.Load()); found {
		respondEphemeral(s, i, fmt.Sprintf("A similar question already exists: %q", existing.Question))
		return
	}

	if err := store.Add(qa.Pair{Question: question, Answer: answer}); err != nil {
		log.Printf("Failed to save QA pair: %v", err)
		respondEphemeral(s, i, "Failed to save the question. Please try again.")
		return
	}

	logCommandAudit("addqa", i, question)
	respondEphemeral(s, i, fmt.Sprintf("Added: %q", question))
}
