package config

import (
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env           string        `yaml:"env" env-default:"local"`
	AppSecret     string        `yaml:"app_secret" env-required:"true" env:"APP_SECRET"`
	TokenTTL      time.Duration `yaml:"token_ttl" env-default:"1h"`
	HTTPServer    `yaml:"http_server"`
	Storage       `yaml:"storage"`
	Postgres      `yaml:"postgres"`
	Redis         `yaml:"redis"`
	RabbitMQ      `yaml:"rabbitmq"`
	Stripe        `yaml:"stripe"`
	Notifications `yaml:"notifications"`
}

type HTTPServer struct {
	Address     string        `yaml:"address" env-default:"localhost:8080"`
	Timeout     time.Duration `yaml:"timeout" env-default:"4s"`
	IdleTimeout time.Duration `yaml:"idle_timeout" env-default:"60s"`
}

// Storage picks the persistence backend: memory (default) or postgres.
type Storage struct {
	Driver string `yaml:"driver" env-default:"memory"`
}

type Postgres struct {
	Host     string `yaml:"host" env-default:"postgres"`
	Port     int    `yaml:"port" env-default:"5432"`
	User     string `yaml:"user" env-default:"postgres"`
	Password string `yaml:"password" env:"POSTGRES_PASSWORD"`
	DBName   string `yaml:"dbname" env-default:"connemaraqueens"`
	SSLMode  string `yaml:"sslmode" env-default:"disable"`
}

type Redis struct {
	Enabled  bool   `yaml:"enabled" env-default:"false"`
	Host     string `yaml:"host" env-default:"redis:6379"`
	Password string `yaml:"password" env:"REDIS_PASSWORD"`
	DB       int    `yaml:"db" env-default:"0"`
}

type RabbitMQ struct {
	URL       string `yaml:"url" env:"RABBITMQ_URL"`
	QueueName string `yaml:"queue_name" env-default:"notifications_queue"`
}

type Stripe struct {
	SecretKey string `yaml:"secret_key" env-required:"true" env:"STRIPE_SECRET_KEY"`
}

// Notifications picks the sink: log (default) or rabbitmq.
type Notifications struct {
	Sink string `yaml:"sink" env-default:"log"`
}

func MustLoad(configPath string) *Config {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		log.Fatalf("config file does not exist: %s", configPath)
	}

	var cfg Config

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("cannot read config: %s", configPath)
	}

	return &cfg
}
