package config

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	AuthAddr      string        `yaml:"auth_addr"`
	CatalogAddr   string        `yaml:"catalog_addr"`
	JWTSecret     string        `yaml:"jwt_secret"`
	APITimeout    time.Duration `yaml:"timeout"`
	DatabasePath  string        `yaml:"database_path"`
	TokenDuration time.Duration `yaml:"token_duration"`
}

func LoadConfig(path string) (*Config, error) {
	apiTimeout := 15 * time.Second
	// tokens are deliberately short-lived; clients re-login on expiry
	tokenDuration := 5 * time.Minute

	cfg := &Config{
		AuthAddr:      getEnv("TECHPORTAL_AUTH_ADDR", ":8080"),
		CatalogAddr:   getEnv("TECHPORTAL_CATALOG_ADDR", ":5001"),
		JWTSecret:     getEnv("TECHPORTAL_JWT_SECRET", "supersecretkey"),
		APITimeout:    apiTimeout,
		DatabasePath:  getEnv("TECHPORTAL_DATABASE_PATH", "techportal.db"),
		TokenDuration: tokenDuration,
	}
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()

		dec := yaml.NewDecoder(f)
		if err := dec.Decode(cfg); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return def
}
