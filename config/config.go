package config

import (
	"fmt"

	"github.com/spf13/viper"

	jwtutil "medora-backend/app/jwt"
	"medora-backend/app/password"
)

type HTTP struct {
	Host string
	Port int
}

type DB struct {
	Driver string
	DSN    string
}

type JWT struct {
	Secret string
	ExpMin int
}

type Config struct {
	HTTP       HTTP
	DB         DB
	JWT        JWT
	BcryptCost int
}

// DefaultSecret is a development placeholder; deployments must override
// it via SECRET_KEY or the config file.
const DefaultSecret = "dev-secret-change-me"

// Load reads an optional YAML file and applies env overrides on top of
// defaults. An empty JWT secret is a startup error: the service refuses
// to run rather than issue tokens it cannot sign properly.
func Load(path string) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("http.host", "0.0.0.0")
	v.SetDefault("http.port", 8000)
	v.SetDefault("db.driver", "sqlite")
	v.SetDefault("db.dsn", "dev.db")
	v.SetDefault("jwt.secret", DefaultSecret)
	v.SetDefault("jwt.exp_min", jwtutil.DefaultExpMin)
	v.SetDefault("bcrypt.cost", password.DefaultCost)

	// Env surface kept from the original deployment.
	_ = v.BindEnv("db.driver", "DATABASE_DRIVER")
	_ = v.BindEnv("db.dsn", "DATABASE_URL")
	_ = v.BindEnv("jwt.secret", "SECRET_KEY")
	_ = v.BindEnv("http.port", "PORT")

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := &Config{
		HTTP:       HTTP{Host: v.GetString("http.host"), Port: v.GetInt("http.port")},
		DB:         DB{Driver: v.GetString("db.driver"), DSN: v.GetString("db.dsn")},
		JWT:        JWT{Secret: v.GetString("jwt.secret"), ExpMin: v.GetInt("jwt.exp_min")},
		BcryptCost: v.GetInt("bcrypt.cost"),
	}
	if cfg.JWT.Secret == "" {
		return nil, fmt.Errorf("jwt secret must not be empty")
	}
	if cfg.JWT.ExpMin <= 0 {
		cfg.JWT.ExpMin = jwtutil.DefaultExpMin
	}
	return cfg, nil
}
