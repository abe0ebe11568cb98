package config

import (
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	Server   Server
	Upstream Upstream
	Session  Session
	ListView ListView
}

type Server struct {
	Port string
}

// Upstream describes the remote content-management API every request is
// forwarded to. All authenticated calls carry "Authorization: Token <v>".
type Upstream struct {
	BaseURL string
	Timeout time.Duration
}

type Session struct {
	// TTL is the idle lifetime of a tab session. Browser tabs never tell
	// the server they closed, so idle sessions are swept after this long.
	TTL time.Duration
}

type ListView struct {
	PageSize int
}

func NewConfig() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	viper.AutomaticEnv()

	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("UPSTREAM_TIMEOUT", "30s")
	viper.SetDefault("SESSION_TTL", "8h")
	viper.SetDefault("LIST_PAGE_SIZE", 10)

	if err := viper.ReadInConfig(); err != nil {
		log.Warn().Err(err).Msg("Error reading config file")
	}

	var config Config

	config.Server.Port = viper.GetString("SERVER_PORT")
	config.Upstream.BaseURL = viper.GetString("UPSTREAM_BASE_URL")
	config.Upstream.Timeout = viper.GetDuration("UPSTREAM_TIMEOUT")
	config.Session.TTL = viper.GetDuration("SESSION_TTL")
	config.ListView.PageSize = viper.GetInt("LIST_PAGE_SIZE")

	log.Info().Interface("config", config).Msg("Config loaded")
	return &config, nil
}
