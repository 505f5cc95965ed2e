package discord

import "github.com/bwmarrin/discordgo"

// ChannelSession is the subset of discordgo session methods the image
// pipeline uses. It exists so the pipeline can be tested with a mock.
type ChannelSession interface {
	ChannelMessageSend(channelID string, content string, options ...discordgo.RequestOption) (*discordgo.Message, error)
	ChannelMessageSendComplex(channelID string, data *discordgo.MessageSend, options ...discordgo.RequestOption) (*discordgo.Message, error)
	ChannelMessageDelete(channelID, messageID string, options ...discordgo.RequestOption) error
}

// InteractionSession is the subset used by the slash command handlers.
type InteractionSession interface {
	InteractionRespond(interaction *discordgo.Interaction, resp *discordgo.InteractionResponse, options ...discordgo.RequestOption) error
}

var _ ChannelSession = (*discordgo.Session)(nil)
var _ InteractionSession = (*discordgo.Session)(nil)
