package audit

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// LogPath is a variable so tests can redirect the audit trail.
var LogPath = "data/audit.jsonl"

// Entry is one audit record: a screenshot scan or a store-mutating command.
type Entry struct {
	Timestamp time.Time `json:"timestamp"`
	EventType string    `json:"event_type"`
	GuildID   string    `json:"guild_id,omitempty"`
	ChannelID string    `json:"channel_id,omitempty"`
	UserID    string    `json:"user_id"`
	UserName  string    `json:"user_name"`
	Question  string    `json:"question,omitempty"`
	Answer    string    `json:"answer,omitempty"`
	Matched   bool      `json:"matched,omitempty"`
}

// Init makes sure the data directory for the audit trail exists.
func Init() error {
	dir := filepath.Dir(LogPath)
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create data directory: %w", err)
		}
	}
	return nil
}

func writeEntry(entry Entry) error {
	if err := Init(); err != nil {
		return err
	}

	file, err := os.OpenFile(LogPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open audit log file: %w", err)
	}
	defer file.Close()

	jsonData, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to marshal audit entry: %w", err)
	}

	if _, err := file.Write(append(jsonData, '\n')); err != nil {
		return fmt.Errorf("failed to write audit entry: %w", err)
	}
	return nil
}

// LogScan records the outcome of one screenshot scan.
func LogScan(guildID, channelID, userID, userName, question, answer string, matched bool) error {
	return writeEntry(Entry{
		Timestamp: time.Now(),
		EventType: "scan",
		GuildID:   guildID,
		ChannelID: channelID,
		UserID:    userID,
		UserName:  userName,
		Question:  question,
		Answer:    answer,
		Matched:   matched,
	})
}

// LogCommand records a store-mutating slash command (addqa or deleteqa).
func LogCommand(eventType, userID, userName, question string) error {
	return writeEntry(Entry{
		Timestamp: time.Now(),
		EventType: eventType,
		UserID:    userID,
		UserName:  userName,
		Question:  question,
	})
}
