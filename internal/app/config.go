package app

import (
	"errors"
	"fmt"
	"os"

	"merchfn/internal/user"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

const (
	BackendFirestore = "firestore"
	BackendPostgres  = "postgres"
	BackendMemory    = "memory"

	DefaultConfigPath = "config/config.yaml"
	EnvConfigPath     = "CONFIG_PATH"
)

var (
	ErrUnknownBackend    = errors.New("unknown backend")
	ErrNoCredentials     = errors.New("FIREBASE_SERVICE_ACCOUNT_JSON is not set")
	ErrNoSecret          = errors.New("JWT_SECRET is required for caller verification")
	ErrInvalidCredential = errors.New("invalid service account json")
)

type Config struct {
	Backend      string   `yaml:"backend" envconfig:"BACKEND"`
	AppID        string   `yaml:"app_id" envconfig:"APP_ID"`
	ServerPort   string   `yaml:"srv_port" envconfig:"SRV_PORT"`
	LogLevel     string   `yaml:"log_level" envconfig:"LOG_LEVEL"`
	CfgDB        ConfigDB `yaml:"db" envconfig:"DB"`
	MaxOpenConns int      `yaml:"max_open_conns" envconfig:"MAX_OPEN_CONNS"`
	Secret       string   `yaml:"secret" envconfig:"JWT_SECRET"`
	// Выключено по умолчанию: исходное поведение grant-admin - без проверки вызывающего.
	RequireAdminCaller bool `yaml:"require_admin_caller" envconfig:"REQUIRE_ADMIN_CALLER"`

	// Стартовые аккаунты для бэкенда memory.
	SeedAccounts map[string]user.Account `yaml:"seed_accounts" ignored:"true"`

	// Ключ сервисного аккаунта firebase приходит только из окружения.
	ServiceAccountJSON string `yaml:"-" envconfig:"FIREBASE_SERVICE_ACCOUNT_JSON"`
}

// Без envconfig тегов: ключи только DB_LOGIN, DB_PORT и т.д. С тегом envconfig
// читает голое имя (PORT, HOST) как запасное, а их выставляет платформа.
type ConfigDB struct {
	Login    string `yaml:"login"`
	Password string `yaml:"password"`
	Port     uint   `yaml:"port"`
	Database string `yaml:"database"`
	Host     string `yaml:"host"`
}

func defaultConfig() Config {
	return Config{
		Backend:      BackendFirestore,
		AppID:        "default-app-id",
		ServerPort:   ":8080",
		LogLevel:     "info",
		MaxOpenConns: 10,
		CfgDB: ConfigDB{
			Host: "localhost",
			Port: 5432,
		},
	}
}

/*
NewConfig собирает конфиг в три слоя:
  - значения по умолчанию
  - yaml файл, если он есть (в облачной функции его обычно нет)
  - переменные окружения поверх всего
*/
func NewConfig(configPath string) (*Config, error) {
	c := defaultConfig()

	cfg, err := os.ReadFile(configPath)
	switch {
	case err == nil:
		if err = yaml.Unmarshal(cfg, &c); err != nil {
			return nil, err
		}
	case errors.Is(err, os.ErrNotExist):
		// работаем только на окружении
	default:
		return nil, err
	}

	if err = envconfig.Process("", &c); err != nil {
		return nil, err
	}

	if err = c.Validate(); err != nil {
		return nil, err
	}

	return &c, nil
}

// ConfigPath - путь из CONFIG_PATH или путь по умолчанию.
func ConfigPath() string {
	if p, found := os.LookupEnv(EnvConfigPath); found && p != "" {
		return p
	}
	return DefaultConfigPath
}

func (c *Config) Validate() error {
	switch c.Backend {
	case BackendFirestore:
		if c.ServiceAccountJSON == "" {
			return ErrNoCredentials
		}
	case BackendPostgres, BackendMemory:
		if c.RequireAdminCaller && c.Secret == "" {
			return ErrNoSecret
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownBackend, c.Backend)
	}

	return nil
}

func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s "+"password=%s dbname=%s sslmode=disable",
		c.CfgDB.Host, c.CfgDB.Port, c.CfgDB.Login, c.CfgDB.Password, c.CfgDB.Database,
	)
}
