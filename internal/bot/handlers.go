package bot

import (
	"fmt"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/omarshaarawi/statbot/internal/service"
)

const defaultRecentGames = 3

type Handler struct {
	statsService *service.StatsService
}

func NewHandler(statsService *service.StatsService) *Handler {
	return &Handler{statsService: statsService}
}

func (h *Handler) HandleCommand(update tgbotapi.Update) tgbotapi.MessageConfig {
	msg := tgbotapi.NewMessage(update.Message.Chat.ID, "")
	command := strings.ToLower(update.Message.Command())
	args := update.Message.CommandArguments()
	msg.ParseMode = "Markdown"

	switch command {
	case "start":
		msg.Text = "Welcome to StatBot! Use /help to see available commands."
	case "help":
		msg.Text = "Available commands:\n/roster <team> - View a team's roster\n/player <team> <player name> - Get a player's season stats\n/teamstats <team> - Get a team's season stats\n/recent <team> [n] - Get boxscores for the last n completed games"
	case "roster":
		h.handleRoster(&msg, args)
	case "player":
		h.handlePlayer(&msg, args)
	case "teamstats":
		h.handleTeamStats(&msg, args)
	case "recent":
		h.handleRecent(&msg, args)
	default:
		msg.Text = "Unknown command. Use /help to see available commands."
	}

	return msg
}

func (h *Handler) handleRoster(msg *tgbotapi.MessageConfig, args string) {
	team := strings.TrimSpace(args)
	if team == "" {
		msg.Text = "Please provide a team abbreviation. Usage: /roster <team>"
		return
	}
	roster, err := h.statsService.GetTeamRoster(team)
	if err != nil {
		msg.Text = fmt.Sprintf("Error fetching roster: %v", err)
	} else {
		msg.Text = roster
	}
}

func (h *Handler) handlePlayer(msg *tgbotapi.MessageConfig, args string) {
	parts := strings.SplitN(strings.TrimSpace(args), " ", 2)
	if len(parts) < 2 {
		msg.Text = "Please provide a team and player. Usage: /player <team> <player name>"
		return
	}
	result, err := h.statsService.GetPlayerStats(parts[0], parts[1])
	if err != nil {
		msg.Text = fmt.Sprintf("Error fetching player stats: %v", err)
	} else {
		msg.Text = result
	}
}

func (h *Handler) handleTeamStats(msg *tgbotapi.MessageConfig, args string) {
	team := strings.TrimSpace(args)
	if team == "" {
		msg.Text = "Please provide a team abbreviation. Usage: /teamstats <team>"
		return
	}
	stats, err := h.statsService.GetTeamStats(team)
	if err != nil {
		msg.Text = fmt.Sprintf("Error fetching team stats: %v", err)
	} else {
		msg.Text = stats
	}
}

func (h *Handler) handleRecent(msg *tgbotapi.MessageConfig, args string) {
	fields := strings.Fields(args)
	if len(fields) == 0 {
		msg.Text = "Please provide a team abbreviation. Usage: /recent <team> [n]"
		return
	}

	count := defaultRecentGames
	if len(fields) > 1 {
		n, err := strconv.Atoi(fields[1])
		if err != nil || n < 0 {
			msg.Text = "The game count must be a non-negative number. Usage: /recent <team> [n]"
			return
		}
		count = n
	}

	report, err := h.statsService.GetRecentGames(fields[0], count)
	if err != nil {
		msg.Text = fmt.Sprintf("Error fetching recent games: %v", err)
	} else {
		msg.Text = report
	}
}
