package config

import (
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

var (
	ErrMissingWebhookURL = errors.New("DISCORD_WEBHOOK_URL environment variable is required")
	ErrInvalidWebhookURL = errors.New("DISCORD_WEBHOOK_URL must be an absolute http(s) URL")
	ErrInvalidPort       = errors.New("PORT must not be empty")
)

type Config struct {
	App     App     `mapstructure:",squash"`
	Server  Server  `mapstructure:",squash"`
	Log     Log     `mapstructure:",squash"`
	Discord Discord `mapstructure:",squash"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

// Log define o destino do arquivo de log rotativo
type Log struct {
	File       string `mapstructure:"log_file"`
	MaxSizeMB  int    `mapstructure:"log_max_size_mb"`
	MaxBackups int    `mapstructure:"log_max_backups"`
	Format     string `mapstructure:"log_format"`
}

type Discord struct {
	WebhookURL string        `mapstructure:"discord_webhook_url"`
	Timeout    time.Duration `mapstructure:"webhook_timeout"`
}

func SetDefaults(v *viper.Viper) {
	v.SetDefault("HOST", "0.0.0.0")
	v.SetDefault("PORT", "5000")

	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FILE", "app.log")
	v.SetDefault("LOG_MAX_SIZE_MB", 1)
	v.SetDefault("LOG_MAX_BACKUPS", 1)
	v.SetDefault("LOG_FORMAT", "text")

	// Sem default real: o processo não sobe sem a URL do webhook
	v.SetDefault("DISCORD_WEBHOOK_URL", "")
	v.SetDefault("WEBHOOK_TIMEOUT", "10s")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile()

	v := viper.New()
	SetDefaults(v)

	v.SetConfigType("env")
	v.SetConfigFile(".env")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		logrus.Debug("Usando variáveis de ambiente (viper não conseguiu ler .env): ", err)
	}

	config := &Config{}
	err := v.Unmarshal(config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, errors.Wrap(err, "erro ao decodificar configuração")
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate garante que a configuração mínima para servir requisições está presente
func (c *Config) Validate() error {
	if c.Discord.WebhookURL == "" {
		return ErrMissingWebhookURL
	}

	u, err := url.Parse(c.Discord.WebhookURL)
	if err != nil || !u.IsAbs() || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return ErrInvalidWebhookURL
	}

	if c.Server.Port == "" {
		return ErrInvalidPort
	}

	if c.Discord.Timeout <= 0 {
		c.Discord.Timeout = 10 * time.Second
	}

	return nil
}

// Addr retorna o endereço de escuta do servidor HTTP
func (s Server) Addr() string {
	return s.Host + ":" + s.Port
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
	}

	for _, location := range locations {
		// godotenv.Load não sobrescreve variáveis já definidas no ambiente
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado de:", location)
			return
		}
	}

	logrus.Debug("Nenhum arquivo .env encontrado, usando apenas variáveis de ambiente")
}
