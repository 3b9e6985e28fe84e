// internal/config/config.go
package config

import (
	"log"

	"github.com/spf13/viper"
)

type ServerConfig struct {
	Port string `mapstructure:"port"`
}

type DatabaseConfig struct {
	URL string `mapstructure:"url"`
}

type AppConfig struct {
	QuizLimit      int `mapstructure:"quiz_limit"`       // 1セッションの最大出題数
	OptionCount    int `mapstructure:"option_count"`     // 選択肢の数（正解1 + 誤答2）
	WordFetchLimit int `mapstructure:"word_fetch_limit"` // 出題候補の取得上限
}

type CORSConfig struct {
	AllowedOrigins   []string `mapstructure:"allowed_origins"`
	AllowedMethods   []string `mapstructure:"allowed_methods"`
	AllowedHeaders   []string `mapstructure:"allowed_headers"`
	ExposedHeaders   []string `mapstructure:"exposed_headers"`
	AllowCredentials bool     `mapstructure:"allow_credentials"`
	MaxAge           int      `mapstructure:"max_age"`
}

type LINEConfig struct {
	AccessToken string `mapstructure:"access_token"`
	Endpoint    string `mapstructure:"endpoint"`
}

type SESConfig struct {
	Region          string `mapstructure:"region"`
	AuthType        string `mapstructure:"auth_type"` // "static_credentials" or "iam_role"
	AccessKeyID     string `mapstructure:"access_key_id"`
	SecretAccessKey string `mapstructure:"secret_access_key"`
	From            string `mapstructure:"from"`
	To              string `mapstructure:"to"`
}

type NotifierConfig struct {
	Type string `mapstructure:"type"` // "line" | "ses" | "log"
}

type SchedulerConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	SweepAt string `mapstructure:"sweep_at"` // "HH:MM" 通知スイープの実行時刻
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Database  DatabaseConfig  `mapstructure:"database"`
	App       AppConfig       `mapstructure:"app"`
	CORS      CORSConfig      `mapstructure:"cors"`
	Notifier  NotifierConfig  `mapstructure:"notifier"`
	LINE      LINEConfig      `mapstructure:"line"`
	SES       SESConfig       `mapstructure:"ses"`
	Scheduler SchedulerConfig `mapstructure:"scheduler"`
	Log       LogConfig       `mapstructure:"log"`
}

var Cfg Config

func LoadConfig(path string) error {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(path)
	viper.AddConfigPath(".")

	viper.SetEnvPrefix("APP")
	viper.AutomaticEnv()
	viper.BindEnv("database.url", "DATABASE_URL")
	viper.BindEnv("line.access_token", "LINE_ACCESS_TOKEN")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Println("Warning: Config file not found. Using default settings or environment variables if available.")
		} else {
			log.Printf("Error reading config file: %s\n", err)
			return err
		}
	}

	if err := viper.Unmarshal(&Cfg); err != nil {
		log.Printf("Error unmarshalling config: %s\n", err)
		return err
	}

	// --- デフォルト値の設定 ---
	if Cfg.Server.Port == "" {
		Cfg.Server.Port = ":3002"
	}
	if Cfg.App.QuizLimit <= 0 {
		Cfg.App.QuizLimit = 20
	}
	if Cfg.App.OptionCount <= 0 {
		Cfg.App.OptionCount = 3
	}
	if Cfg.App.WordFetchLimit <= 0 {
		Cfg.App.WordFetchLimit = 100
	}
	if Cfg.Scheduler.SweepAt == "" {
		Cfg.Scheduler.SweepAt = "09:00"
	}
	if !viper.IsSet("scheduler.enabled") {
		Cfg.Scheduler.Enabled = true
	}
	if Cfg.Notifier.Type == "" {
		Cfg.Notifier.Type = "log"
	}
	if Cfg.LINE.Endpoint == "" {
		Cfg.LINE.Endpoint = "https://api.line.me/v2/bot/message/push"
	}
	if Cfg.Database.URL == "" {
		log.Println("Warning: Database URL is not set in config.")
	}

	log.Println("Config loaded successfully")
	log.Printf("Server Port: %s", Cfg.Server.Port)
	log.Printf("Quiz Limit: %d", Cfg.App.QuizLimit)
	log.Printf("Notifier Type: %s", Cfg.Notifier.Type)

	return nil
}
