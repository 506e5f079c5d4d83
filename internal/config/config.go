package config

import (
	"os"

	"github.com/go-yaml/yaml"
)

type Config struct {
	Server    Server    `yaml:"server"`
	Supabase  Supabase  `yaml:"supabase"`
	Archivist Archivist `yaml:"archivist"`
	Admin     Admin     `yaml:"admin"`
}

type Server struct {
	ListenAddr    string `yaml:"listenAddr"`
	PostgresDsn   string `yaml:"postgresDsn"`
	RedisAddr     string `yaml:"redisAddr"`
	RedisDB       int    `yaml:"redisDB"`
	MemcachedAddr string `yaml:"memcachedAddr"`
	EnableTrace   bool   `yaml:"enableTrace"`
	TraceEndpoint string `yaml:"traceEndpoint"`
}

type Supabase struct {
	URL           string `yaml:"url"`
	AnonKey       string `yaml:"anonKey"`
	StorageBucket string `yaml:"storageBucket"`
}

type Archivist struct {
	APIKey  string `yaml:"apiKey"`
	BaseURL string `yaml:"baseURL"`
	Model   string `yaml:"model"`
}

type Admin struct {
	Secret string `yaml:"secret"`
}

// Load reads the config file and fills in defaults. A missing file is
// the caller's concern: the service still runs, in demo mode.
func Load(path string) (Config, error) {
	var config Config

	file, err := os.Open(path)
	if err != nil {
		return applyDefaults(config), err
	}
	defer file.Close()

	if err := yaml.NewDecoder(file).Decode(&config); err != nil {
		return applyDefaults(Config{}), err
	}

	return applyDefaults(config), nil
}

func applyDefaults(config Config) Config {
	if config.Server.ListenAddr == "" {
		config.Server.ListenAddr = ":8000"
	}
	if config.Supabase.StorageBucket == "" {
		config.Supabase.StorageBucket = "dossier-images"
	}
	if config.Archivist.Model == "" {
		config.Archivist.Model = "gemini-2.5-flash"
	}
	return config
}
