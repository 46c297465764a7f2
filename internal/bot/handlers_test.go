package bot

import (
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
)

// commandUpdate builds a Telegram update whose text is a bot command,
// with the entity covering the command itself.
func commandUpdate(command, args string) tgbotapi.Update {
	text := command
	if args != "" {
		text += " " + args
	}
	return tgbotapi.Update{
		Message: &tgbotapi.Message{
			Text: text,
			Chat: &tgbotapi.Chat{ID: 1},
			Entities: []tgbotapi.MessageEntity{
				{Type: "bot_command", Offset: 0, Length: len(command)},
			},
		},
	}
}

// These paths never reach the stats service, so a nil service is fine.

func TestHandleCommandStart(t *testing.T) {
	h := NewHandler(nil)

	msg := h.HandleCommand(commandUpdate("/start", ""))
	assert.Contains(t, msg.Text, "Welcome to StatBot")
}

func TestHandleCommandUnknown(t *testing.T) {
	h := NewHandler(nil)

	msg := h.HandleCommand(commandUpdate("/standings", ""))
	assert.Contains(t, msg.Text, "Unknown command")
}

func TestHandleCommandMissingArgs(t *testing.T) {
	h := NewHandler(nil)

	tests := []struct {
		command string
		args    string
		want    string
	}{
		{"/roster", "", "Usage: /roster <team>"},
		{"/player", "", "Usage: /player <team> <player name>"},
		{"/player", "KC", "Usage: /player <team> <player name>"},
		{"/teamstats", "", "Usage: /teamstats <team>"},
		{"/recent", "", "Usage: /recent <team> [n]"},
	}

	for _, tt := range tests {
		msg := h.HandleCommand(commandUpdate(tt.command, tt.args))
		assert.Containsf(t, msg.Text, tt.want, "command %q %q", tt.command, tt.args)
	}
}

func TestHandleRecentBadCount(t *testing.T) {
	h := NewHandler(nil)

	msg := h.HandleCommand(commandUpdate("/recent", "KC many"))
	assert.Contains(t, msg.Text, "non-negative number")

	msg = h.HandleCommand(commandUpdate("/recent", "KC -1"))
	assert.Contains(t, msg.Text, "non-negative number")
}
