package configs

import (
	"errors"
	"os"
	"strings"

	"github.com/kkyr/fig"
	"go.uber.org/zap"
)

type DB struct {
	Host               string `validate:"required"`
	Port               int    `default:"5432"`
	User               string `default:"postgres"`
	Password           string `validate:"required"`
	Database           string `default:"postgres"`
	MaxIdleConnections int    `default:"10"`
	MaxOpenConnections int    `default:"10"`
}

type Server struct {
	Port int `default:"8080"`
}

type Auth struct {
	SecretKey string `validate:"required"`
}

type Integrations struct {
	Beer []string `default:"untappd_web"`
}

type Uploads struct {
	Directory string `default:"./uploads"`
	BaseURL   string `default:"http://localhost:8080"`
}

type Moderation struct {
	// Days a pub profile stays locked after an edit. Zero disables the
	// cooldown.
	PubEditCooldownDays int `default:"15"`
}

type Config struct {
	DB           DB
	Server       Server
	Auth         Auth
	Integrations Integrations
	Uploads      Uploads
	Moderation   Moderation
}

const envPrefix = "LUPPOLO" // env prefix for env vars

var ErrConfiguration = errors.New("configuration error")

func GetConfig(configFileName string, logger *zap.Logger) (*Config, error) {
	config := Config{}
	homeDir, _ := os.UserHomeDir()

	logger.Info("Loading config", zap.String("file", configFileName))

	err := fig.Load(&config, fig.File(configFileName), fig.Dirs(".", homeDir), fig.UseEnv(envPrefix))
	if err != nil {
		if strings.Contains(err.Error(), "file not found") {
			logger.Warn("Could not find config file", zap.String("file", configFileName))

			err = fig.Load(&config, fig.IgnoreFile(), fig.UseEnv(envPrefix))
			if err != nil {
				return nil, err
			}
		} else {
			return nil, err
		}
	}

	return &config, nil
}
