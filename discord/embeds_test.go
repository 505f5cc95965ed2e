package discord

import (
	"strings"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/plutomall/rokbot/config"
	"github.com/plutomall/rokbot/qa"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnswerEmbed(t *testing.T) {
	cfg := &config.Config{BotVersion: "1.2.0", ThumbnailURL: "https://example.com/logo.png"}
	pair := qa.Pair{Question: "which hero is best", Answer: "Richard"}

	embed := answerEmbed(cfg, "tester", pair)

	require.Len(t, embed.Fields, 1)
	assert.Equal(t, "Answer", embed.Fields[0].Name)
	assert.Equal(t, "Richard", embed.Fields[0].Value)
	assert.Equal(t, "Requested by tester • 1.2.0", embed.Footer.Text)
	require.NotNil(t, embed.Thumbnail)
	assert.Equal(t, "https://example.com/logo.png", embed.Thumbnail.URL)
}

func TestAnswerEmbedWithoutThumbnail(t *testing.T) {
	cfg := &config.Config{BotVersion: "1.2.0"}

	embed := answerEmbed(cfg, "tester", qa.Pair{Question: "q", Answer: "a"})

	assert.Nil(t, embed.Thumbnail)
}

func TestEscalationEmbedNoQuestionPlaceholder(t *testing.T) {
	embed := escalationEmbed("@tester", "", "No question detected", "https://cdn.example/img.png", 0)

	require.Len(t, embed.Fields, 2)
	assert.Equal(t, "(no question detected)", embed.Fields[0].Value)
	assert.Equal(t, "@tester", embed.Fields[1].Value)
	assert.Equal(t, "https://cdn.example/img.png", embed.Image.URL)
	assert.Nil(t, embed.Footer)
}

func TestEscalationEmbedUnmatchedFooter(t *testing.T) {
	embed := escalationEmbed("@tester", "which hero?", "No matching answer", "u", 7)

	require.NotNil(t, embed.Footer)
	assert.Contains(t, embed.Footer.Text, "7 unanswered")
}

func TestLinkButtons(t *testing.T) {
	t.Run("no configured links", func(t *testing.T) {
		assert.Nil(t, linkButtons(&config.Config{}))
	})

	t.Run("only configured links become buttons", func(t *testing.T) {
		cfg := &config.Config{
			SocialLinks: config.SocialLinks{
				YouTube:  "https://youtube.com/@rok",
				Facebook: "https://facebook.com/rok",
			},
		}

		components := linkButtons(cfg)
		require.Len(t, components, 1)

		row, ok := components[0].(discordgo.ActionsRow)
		require.True(t, ok)
		require.Len(t, row.Components, 2)

		first, ok := row.Components[0].(discordgo.Button)
		require.True(t, ok)
		assert.Equal(t, "YouTube", first.Label)
		assert.Equal(t, discordgo.LinkButton, first.Style)

		second, ok := row.Components[1].(discordgo.Button)
		require.True(t, ok)
		assert.Equal(t, "Facebook", second.Label)
	})
}

func TestSplitToEmbedFields(t *testing.T) {
	const maxLen = 1024

	tests := []struct {
		name      string
		input     string
		numFields int
	}{
		{name: "empty", input: "", numFields: 0},
		{name: "short", input: "Richard", numFields: 1},
		{name: "exactly max", input: strings.Repeat("a", maxLen), numFields: 1},
		{name: "just over max", input: strings.Repeat("a", maxLen) + "b", numFields: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fields := splitToEmbedFields(tt.input)
			assert.Len(t, fields, tt.numFields)
			for _, f := range fields {
				assert.LessOrEqual(t, len(f.Value), maxLen)
			}
		})
	}
}
