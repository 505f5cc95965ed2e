package discord

import (
	"log"

	"github.com/bwmarrin/discordgo"
	"github.com/plutomall/rokbot/audit"
)

func respondEphemeral(s InteractionSession, i *discordgo.InteractionCreate, content string) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: content,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
	if err != nil {
		log.Printf("Failed to send ephemeral response: %v", err)
	}
}

// hasAdminRole reports whether the invoking member holds the configured admin
// role. An empty role ID fails closed.
func hasAdminRole(member *discordgo.Member, roleID string) bool {
	if member == nil || roleID == "" {
		return false
	}
	for _, r := range member.Roles {
		if r == roleID {
			return true
		}
	}
	return false
}

func logCommandAudit(eventType string, i *discordgo.InteractionCreate, question string) {
	var userID, userName string
	if i.Member != nil && i.Member.User != nil {
		userID = i.Member.User.ID
		userName = i.Member.User.Username
	}
	if err := audit.LogCommand(eventType, userID, userName, question); err != nil {
		log.Printf("Failed to write command audit entry: %v", err)
	}
}
