package config

import (
	"log"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

type NotifierConfig struct {
	Env                string `yaml:"env" env-default:"local"`
	RabbitMQURL        string `yaml:"rabbitmq_url" env-required:"true" env:"RABBITMQ_URL"`
	QueueName          string `yaml:"queue_name" env-default:"notifications_queue"`
	AdministratorEmail string `yaml:"administrator_email" env-required:"true"`
	Email              `yaml:"email"`
}

type Email struct {
	Host     string `yaml:"host" env-default:"smtp.gmail.com"`
	Port     int    `yaml:"port" env-default:"587"`
	Username string `yaml:"username" env-required:"true"`
	Password string `yaml:"password" env-required:"true" env:"SMTP_PASSWORD"`
}

func MustLoadNotifier(configPath string) *NotifierConfig {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		log.Fatalf("config file does not exist: %s", configPath)
	}

	var cfg NotifierConfig

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("cannot read config: %s", configPath)
	}

	return &cfg
}
