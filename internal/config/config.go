package config

import (
	"log"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

type DealConfig struct {
	Env string     `yaml:"env" env:"ENV" env-default:"local"`
	HTTPServer    `yaml:"http_server"`
	DealDB        `yaml:"deal_db"`
	LogConfig     `yaml:"log_config"`
	KafkaService  `yaml:"kafka-service"`
	PushService   `yaml:"push-service"`
}

type HTTPServer struct {
	Host string `yaml:"host" env-default:"0.0.0.0"`
	Port string `yaml:"port" env-default:"8080"`
}

type DealDB struct {
	Driver         string `yaml:"driver" env:"DEAL_DB_DRIVER" env-default:"postgres"`
	Dsn            string `yaml:"dsn" env:"DEAL_DB_DSN"`
	MigrationsPath string `yaml:"migrations_path" env-default:"migrations"`
}

type LogConfig struct {
	LogLevel  string `yaml:"log_level" env-default:"info"`
	LogFormat string `yaml:"log_format" env-default:"json"`
	LogOutput string `yaml:"log_output" env-default:"stdout"`
}

type KafkaService struct {
	Host       string `yaml:"host"`
	Port       string `yaml:"port"`
	Username   string `yaml:"username"`
	Password   string `yaml:"password"`
	Mechanism  string `yaml:"mechanism"`
	TLSEnabled bool   `yaml:"tls_enabled"`
}

// PushService is the delivery collaborator that owns the actual push
// transport. The engine only hands device payloads to it.
type PushService struct {
	Endpoint string `yaml:"endpoint" env:"PUSH_SERVICE_ENDPOINT"`
}

func MustLoad() *DealConfig {

	// Processing env config variable and file
	configPath := os.Getenv("DEAL_CONFIG_PATH")

	if configPath == "" {
		log.Fatalf("DEAL_CONFIG_PATH was not found\n")
	}

	if _, err := os.Stat(configPath); err != nil {
		log.Fatalf("failed to find config file: %v\n", err)
	}

	// YAML to struct object
	var cfg DealConfig
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("failed to read config file: %v", err)
	}

	return &cfg
}
