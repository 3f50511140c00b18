package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config es la configuración completa del simulador.
type Config struct {
	Draw DrawConfig `yaml:"draw"`
	Log  LogConfig  `yaml:"log"`
}

// DrawConfig controla los parámetros del sorteo.
type DrawConfig struct {
	PoolSize     int   `yaml:"pool_size"`
	TicketSize   int   `yaml:"ticket_size"`
	NumTickets   int   `yaml:"num_tickets"`
	TicketPrice  int64 `yaml:"ticket_price"`
	MinMatches   int   `yaml:"min_matches"`
	TopPrize     int64 `yaml:"top_prize"`
	PrizeDivisor int64 `yaml:"prize_divisor"`
}

// LogConfig controla el formato y nivel de logging.
type LogConfig struct {
	Level  string `yaml:"level"`  // debug | info | warn | error
	Format string `yaml:"format"` // text | json
}

// Load carga la configuración desde el archivo YAML y el archivo .env si
// existe. Los valores del entorno sobreescriben los del YAML para las keys
// que correspondan. Si el YAML no existe se usan los defaults del juego
// clásico, así el simulador arranca sin configurar nada.
func Load(path string) (*Config, error) {
	// Cargar .env si existe (silencia error si no hay archivo)
	_ = godotenv.Load()

	var cfg Config
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		// sin archivo: defaults más overrides de entorno
	case err != nil:
		return nil, fmt.Errorf("config.Load: read %q: %w", path, err)
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("config.Load: parse YAML: %w", err)
		}
	}

	applyEnvOverrides(&cfg)
	setDefaults(&cfg)

	return &cfg, nil
}

// applyEnvOverrides sobreescribe valores con variables de entorno si están presentes.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("LOG_FORMAT"); v != "" {
		cfg.Log.Format = v
	}
}

// setDefaults asegura que los valores requeridos tengan valores sensatos.
// Los defaults son los del juego clásico: 6 aciertos sobre un bombo de 40.
func setDefaults(cfg *Config) {
	if cfg.Draw.PoolSize <= 0 {
		cfg.Draw.PoolSize = 40
	}
	if cfg.Draw.TicketSize <= 0 {
		cfg.Draw.TicketSize = 6
	}
	if cfg.Draw.NumTickets <= 0 {
		cfg.Draw.NumTickets = 100
	}
	if cfg.Draw.TicketPrice <= 0 {
		cfg.Draw.TicketPrice = 10
	}
	if cfg.Draw.MinMatches <= 0 {
		cfg.Draw.MinMatches = 2
	}
	if cfg.Draw.TopPrize <= 0 {
		cfg.Draw.TopPrize = 100_000
	}
	if cfg.Draw.PrizeDivisor <= 0 {
		cfg.Draw.PrizeDivisor = 10
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "text"
	}
}
