package discord

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/plutomall/rokbot/config"
	"github.com/plutomall/rokbot/qa"
)

const (
	answerEmbedColor     = 0xf1c40f
	escalationEmbedColor = 0xe74c3c
)

func answerEmbed(cfg *config.Config, username string, pair qa.Pair) *discordgo.MessageEmbed {
	fields := splitToEmbedFields(pair.Answer)
	if len(fields) > 0 {
		fields[0].Name = "Answer"
	}

	embed := &discordgo.MessageEmbed{
		Title:       "Answer Found!",
		Description: "Here is the answer to the question in your screenshot.",
		Color:       answerEmbedColor,
		Fields:      fields,
		Footer: &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("Requested by %s • %s", username, cfg.BotVersion),
		},
	}
	if cfg.ThumbnailURL != "" {
		embed.Thumbnail = &discordgo.MessageEmbedThumbnail{URL: cfg.ThumbnailURL}
	}
	return embed
}

func escalationEmbed(mention, question, reason, imageURL string, unmatched int) *discordgo.MessageEmbed {
	if question == "" {
		question = "(no question detected)"
	}

	embed := &discordgo.MessageEmbed{
		Title:       "Unanswered Question",
		Description: reason,
		Color:       escalationEmbedColor,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Question", Value: question},
			{Name: "Requested by", Value: mention},
		},
		Image: &discordgo.MessageEmbedImage{URL: imageURL},
	}
	if unmatched > 0 {
		embed.Footer = &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("%d unanswered scans so far", unmatched),
		}
	}
	return embed
}

// linkButtons builds one link button per configured social URL. No configured
// URLs means no components at all.
func linkButtons(cfg *config.Config) []discordgo.MessageComponent {
	var buttons []discordgo.MessageComponent
	add := func(label, url string) {
		if url == "" {
			return
		}
		buttons = append(buttons, discordgo.Button{
			Label: label,
			Style: discordgo.LinkButton,
			URL:   url,
		})
	}
	add("YouTube", cfg.SocialLinks.YouTube)
	add("PlutoMall", cfg.SocialLinks.PlutoMall)
	add("Facebook", cfg.SocialLinks.Facebook)

	if len(buttons) == 0 {
		return nil
	}
	return []discordgo.MessageComponent{discordgo.ActionsRow{Components: buttons}}
}

func splitToEmbedFields(text string) []*discordgo.MessageEmbedField {
	const maxFieldLength = 1024 // Discord's embed field value limit
	var fields []*discordgo.MessageEmbedField

	if text == "" {
		return fields
	}

	for i := 0; i < len(text); i += maxFieldLength {
		end := i + maxFieldLength
		if end > len(text) {
			end = len(text)
		}
		fields = append(fields, &discordgo.MessageEmbedField{
			Value:  text[i:end],
			Inline: false,
		})
	}
	return fields
}
