package main

import (
	"os"
	"testing"
)

func TestBotConfigFileExists(t *testing.T) {
	if _, err := os.Stat("json/bot.json"); os.IsNotExist(err) {
		t.Errorf("json/bot.json file does not exist")
	}
}
