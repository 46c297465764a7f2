package config

import "github.com/kelseyhightower/envconfig"

type Config struct {
	TelegramBot TelegramBot
	ESPNAPI     ESPNAPI
}

type TelegramBot struct {
	Token  string `envconfig:"TELEGRAM_TOKEN" required:"true"`
	ChatID int64  `envconfig:"CHAT_ID" required:"true"`
}

type ESPNAPI struct {
	BaseURL      string `envconfig:"ESPN_BASE_URL" default:"https://site.api.espn.com/apis"`
	FavoriteTeam string `envconfig:"FAVORITE_TEAM" default:"KC"`
	RecapGames   int    `envconfig:"RECAP_GAMES" default:"1"`
}

func New() (*Config, error) {
	var c Config
	err := envconfig.Process("", &c)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
