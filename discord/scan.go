package discord

import (
	"context"
	"fmt"
	"log"

	"github.com/bwmarrin/discordgo"
	"github.com/plutomall/rokbot/audit"
	"github.com/plutomall/rokbot/config"
	"github.com/plutomall/rokbot/ocr"
	"github.com/plutomall/rokbot/qa"
)

// Scanner runs the screenshot-to-answer pipeline for message attachments:
// fetch bytes, OCR, extract the question, match it against the store, then
// answer or escalate to the admin channel.
type Scanner struct {
	cfg      *config.Config
	store    *qa.Store
	engine   ocr.Engine
	recorder *audit.ScanRecorder // may be nil
	fetch    func(url string) ([]byte, error)
}

func NewScanner(cfg *config.Config, store *qa.Store, engine ocr.Engine, recorder *audit.ScanRecorder) *Scanner {
	return &Scanner{
		cfg:      cfg,
		store:    store,
		engine:   engine,
		recorder: recorder,
		fetch:    downloadImage,
	}
}

// HandleMessage scans each image attachment of a message. Attachments are
// processed one after another, so a slow OCR call on the first delays the
// next.
func (sc *Scanner) HandleMessage(s ChannelSession, m *discordgo.MessageCreate) {
	if sc.cfg.ImageChannelID != "" && m.ChannelID != sc.cfg.ImageChannelID {
		return
	}
	for _, att := range m.Attachments {
		if att == nil || !isImageAttachment(att.URL) {
			continue
		}
		sc.scanAttachment(s, m, att)
	}
}

func (sc *Scanner) scanAttachment(s ChannelSession, m *discordgo.MessageCreate, att *discordgo.MessageAttachment) {
	waitMsg, err := s.ChannelMessageSend(m.ChannelID, "Scanning your screenshot, please wait...")
	if err != nil {
		log.Printf("Failed to send wait message: %v", err)
	}

	// Fetch and OCR failures both degrade to empty text, which falls through
	// to the no-question path below.
	var text string
	image, err := sc.fetch(att.URL)
	if err != nil {
		log.Printf("Failed to download attachment %s: %v", att.URL, err)
	} else {
		text, err = sc.engine.Recognize(context.Background(), image)
		if err != nil {
			log.Printf("OCR failed for attachment %s: %v", att.URL, err)
		}
	}

	question, ok := qa.ExtractQuestion(text)

	// The wait message must be gone before the final response shows up.
	if waitMsg != nil {
		if err := s.ChannelMessageDelete(m.ChannelID, waitMsg.ID); err != nil {
			log.Printf("Failed to delete wait message: %v", err)
		}
	}

	if !ok {
		sc.recordScan(m, "", "", false)
		sc.sendApology(s, m, fmt.Sprintf("Sorry %s, I couldn't detect a question in that screenshot.", m.Author.Mention()))
		sc.escalate(s, m, att, "", "No question detected")
		return
	}

	pair, found := qa.Match(question, sc.store.Load())
	if !found {
		sc.recordScan(m, question, "", false)
		sc.sendApology(s, m, fmt.Sprintf("Sorry %s, I don't have an answer for that question yet. The admins have been notified.", m.Author.Mention()))
		sc.escalate(s, m, att, question, "No matching answer in the store")
		return
	}

	sc.recordScan(m, question, pair.Answer, true)

	responseChannel := m.ChannelID
	if sc.cfg.ResponseChannelID != "" {
		responseChannel = sc.cfg.ResponseChannelID
	}
	msg := &discordgo.MessageSend{
		Embeds:     []*discordgo.MessageEmbed{answerEmbed(sc.cfg, m.Author.Username, pair)},
		Components: linkButtons(sc.cfg),
	}
	if _, err := s.ChannelMessageSendComplex(responseChannel, msg); err != nil {
		log.Printf("Failed to send answer embed: %v", err)
	}
}

func (sc *Scanner) sendApology(s ChannelSession, m *discordgo.MessageCreate, content string) {
	if _, err := s.ChannelMessageSend(m.ChannelID, content); err != nil {
		log.Printf("Failed to send apology message: %v", err)
	}
}

func (sc *Scanner) recordScan(m *discordgo.MessageCreate, question, answer string, matched bool) {
	if err := audit.LogScan(m.GuildID, m.ChannelID, m.Author.ID, m.Author.Username, question, answer, matched); err != nil {
		log.Printf("Failed to write scan audit entry: %v", err)
	}
	if sc.recorder == nil {
		return
	}
	if err := sc.recorder.RecordScan(m.Author.ID, m.Author.Username, m.ChannelID, question, answer, matched); err != nil {
		log.Printf("Failed to record scan: %v", err)
	}
}

// escalate forwards an unanswered question to the admin channel.
func (sc *Scanner) escalate(s ChannelSession, m *discordgo.MessageCreate, att *discordgo.MessageAttachment, question, reason string) {
	if sc.cfg.AdminChannelID == "" {
		return
	}

	var unmatched int
	if sc.recorder != nil {
		n, err := sc.recorder.CountUnmatched()
		if err != nil {
			log.Printf("Failed to count unmatched scans: %v", err)
		} else {
			unmatched = n
		}
	}

	msg := &discordgo.MessageSend{
		Embeds: []*discordgo.MessageEmbed{
			escalationEmbed(m.Author.Mention(), question, reason, att.URL, unmatched),
		},
	}
	if _, err := s.ChannelMessageSendComplex(sc.cfg.AdminChannelID, msg); err != nil {
		log.Printf("Failed to send escalation embed: %v", err)
	}
}
