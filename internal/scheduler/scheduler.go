package scheduler

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/omarshaarawi/statbot/internal/service"
)

type Scheduler struct {
	s            gocron.Scheduler
	statsService *service.StatsService
	sendMessage  func(string) error
	favoriteTeam string
	recapGames   int
}

func NewScheduler(statsService *service.StatsService, sendMessage func(string) error, favoriteTeam string, recapGames int) (*Scheduler, error) {
	location, err := time.LoadLocation("America/Chicago") // CDT
	if err != nil {
		slog.Error("Failed to load location", "error", err)
	}

	s, err := gocron.NewScheduler(
		gocron.WithLocation(location),
	)

	if err != nil {
		return nil, fmt.Errorf("failed to create scheduler: %w", err)
	}

	return &Scheduler{
		s:            s,
		statsService: statsService,
		sendMessage:  sendMessage,
		favoriteTeam: favoriteTeam,
		recapGames:   recapGames,
	}, nil
}

func (s *Scheduler) Start() error {
	var err error

	// Weekly recap - Tuesday 8:00 CDT, after Monday night games wrap
	_, err = s.s.NewJob(
		gocron.WeeklyJob(1, gocron.NewWeekdays(time.Tuesday), gocron.NewAtTimes(gocron.NewAtTime(8, 0, 0))),
		gocron.NewTask(s.sendWeeklyRecap),
	)
	if err != nil {
		return fmt.Errorf("failed to create weekly recap job: %w", err)
	}

	// Season stats - Wednesday 8:00 CDT
	_, err = s.s.NewJob(
		gocron.WeeklyJob(1, gocron.NewWeekdays(time.Wednesday), gocron.NewAtTimes(gocron.NewAtTime(8, 0, 0))),
		gocron.NewTask(s.sendTeamStats),
	)
	if err != nil {
		return fmt.Errorf("failed to create team stats job: %w", err)
	}

	s.s.Start()
	return nil
}

func (s *Scheduler) Stop() error {
	return s.s.Shutdown()
}

func (s *Scheduler) sendWeeklyRecap() {
	recap, fresh, err := s.statsService.GetWeeklyRecap(s.favoriteTeam, s.recapGames)
	if err != nil {
		slog.Error("Failed to get weekly recap", "error", err)
		return
	}
	if !fresh {
		return
	}
	s.sendMessage(recap)
}

func (s *Scheduler) sendTeamStats() {
	stats, err := s.statsService.GetTeamStats(s.favoriteTeam)
	if err != nil {
		slog.Error("Failed to get team stats", "error", err)
		return
	}
	s.sendMessage(stats)
}
