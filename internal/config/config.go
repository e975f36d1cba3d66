package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/DanRulev/uniprep.git/pkg/validator"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig      `mapstructure:"app" validate:"required"`
	HTTP     HTTPConfig     `mapstructure:"http" validate:"required"`
	BotToken string         `mapstructure:"bot_token"`
	DB       DBConfig       `mapstructure:"db" validate:"required"`
	AI       AIConfig       `mapstructure:"ai"`
	Auth     AuthConfig     `mapstructure:"auth"`
	Reminder ReminderConfig `mapstructure:"reminder"`
	Review   ReviewConfig   `mapstructure:"review"`
	Env      string         `mapstructure:"env" validate:"oneof=development production staging"`
}

type AppConfig struct {
	Timeout time.Duration `mapstructure:"timeout" validate:"min=1"`
}

type HTTPConfig struct {
	Addr         string        `mapstructure:"addr" validate:"required"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout" validate:"min=0"`
	WriteTimeout time.Duration `mapstructure:"write_timeout" validate:"min=0"`
}

type DBConfig struct {
	Driver string `mapstructure:"driver" validate:"oneof=postgres sqlite3"`
	Path   string `mapstructure:"path" validate:"required_if=Driver sqlite3"`
	Conn   DBConn `mapstructure:"conn"`
	Cfg    DBCfg  `mapstructure:"cfg"`
}

type DBConn struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSL      string `mapstructure:"ssl" validate:"omitempty,oneof=disable require verify-full"`
}

type DBCfg struct {
	MaxOpenConns    int           `mapstructure:"max_open_conns" validate:"min=1,max=1000"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns" validate:"min=0,max=100"`
	ConnMaxLifeTime time.Duration `mapstructure:"conn_max_life_time" validate:"min=0"`
	ConnMaxIdleTime time.Duration `mapstructure:"conn_max_idle_time" validate:"min=0"`
}

type AIConfig struct {
	APIKey  string        `mapstructure:"api_key"`
	BaseURL string        `mapstructure:"base_url" validate:"omitempty,url"`
	Model   string        `mapstructure:"model"`
	Timeout time.Duration `mapstructure:"timeout" validate:"min=0"`
}

// AuthConfig signs the web API tokens. JWTSecret is only required to serve
// HTTP.
type AuthConfig struct {
	JWTSecret  string        `mapstructure:"jwt_secret" validate:"omitempty,min=32"`
	AccessTTL  time.Duration `mapstructure:"access_ttl" validate:"min=1"`
	RefreshTTL time.Duration `mapstructure:"refresh_ttl" validate:"min=1,gtfield=AccessTTL"`
	BcryptCost int           `mapstructure:"bcrypt_cost" validate:"min=4,max=31"`
}

type ReminderConfig struct {
	Every     time.Duration `mapstructure:"every" validate:"min=0"`
	StartHour int           `mapstructure:"start_hour" validate:"min=0,max=23"`
	EndHour   int           `mapstructure:"end_hour" validate:"min=0,max=23,gtefield=StartHour"`
}

type ReviewConfig struct {
	DefaultTake   int `mapstructure:"default_take" validate:"min=1"`
	MaxTake       int `mapstructure:"max_take" validate:"min=1,gtefield=DefaultTake"`
	EntryTestTake int `mapstructure:"entry_test_take" validate:"min=1"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("env", "development")
	v.SetDefault("app.timeout", 10*time.Second)
	v.SetDefault("http.addr", ":8080")
	v.SetDefault("http.read_timeout", 10*time.Second)
	v.SetDefault("http.write_timeout", 10*time.Second)
	v.SetDefault("db.driver", "postgres")
	v.SetDefault("db.cfg.max_open_conns", 10)
	v.SetDefault("db.cfg.max_idle_conns", 5)
	v.SetDefault("ai.base_url", "https://api.openai.com/v1")
	v.SetDefault("ai.model", "gpt-5-nano")
	v.SetDefault("ai.timeout", 30*time.Second)
	v.SetDefault("auth.access_ttl", 15*time.Minute)
	v.SetDefault("auth.refresh_ttl", 7*24*time.Hour)
	v.SetDefault("auth.bcrypt_cost", 10)
	v.SetDefault("reminder.every", time.Hour)
	v.SetDefault("reminder.start_hour", 4)
	v.SetDefault("reminder.end_hour", 18)
	v.SetDefault("review.default_take", 10)
	v.SetDefault("review.max_take", 100)
	v.SetDefault("review.entry_test_take", 20)
}

var envBindings = map[string]string{
	"bot_token":        "BOT_TOKEN",
	"http.addr":        "HTTP_ADDR",
	"db.driver":        "DB_DRIVER",
	"db.path":          "DB_PATH",
	"db.conn.host":     "DB_HOST",
	"db.conn.port":     "DB_PORT",
	"db.conn.user":     "DB_USER",
	"db.conn.password": "DB_PASSWORD",
	"db.conn.name":     "DB_NAME",
	"db.conn.ssl":      "DB_SSL",
	"ai.api_key":       "AI_API_KEY",
	"auth.jwt_secret":  "JWT_SECRET",
}

func Init() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	v := viper.New()

	v.AutomaticEnv()
	setDefaults(v)

	configName := os.Getenv("CONFIG_NAME")
	if configName == "" {
		configName = "default"
	}

	v.AddConfigPath("configs")
	v.SetConfigName(configName)

	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", env, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg := Config{}

	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c Config) validate() error {
	if err := validator.ValidateStruct(c); err != nil {
		return err
	}

	if c.DB.Driver == "postgres" {
		conn := c.DB.Conn
		if conn.Host == "" || conn.Port == "" || conn.User == "" || conn.Name == "" {
			return fmt.Errorf("%w: postgres requires db.conn host, port, user and name", validator.ErrInvalid)
		}
	}

	return nil
}
