package discord

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/plutomall/rokbot/qa"
)

func listQACommandHandler(s InteractionSession, i *discordgo.InteractionCreate, store *qa.Store) {
	pairs := store.Load()
	if len(pairs) == 0 {
		respondEphemeral(s, i, "No questions are stored yet.")
		return
	}

	var b strings.Builder
	for n, p := range pairs {
		fmt.Fprintf(&b, "%d. %s\n", n+1, p.Question)
	}
	respondEphemeral(s, i, b.String())
}
