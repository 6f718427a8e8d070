package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type Server struct {
	Host      string
	Port      int
	StaticDir string
}

type DB struct {
	Driver string
	Path   string
	Host   string
	Port   int
	User   string
	Pass   string
	Name   string
}

type Seed struct {
	AdminUser string
	AdminPass string
}

type Config struct {
	Server Server
	DB     DB
	Seed   Seed
}

func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	// Defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.static_dir", "web")
	v.SetDefault("db.driver", "sqlite")
	v.SetDefault("db.path", "portal.db")
	v.SetDefault("db.host", "127.0.0.1")
	v.SetDefault("db.port", 3306)
	v.SetDefault("db.user", "root")
	v.SetDefault("db.pass", "")
	v.SetDefault("db.name", "quiz_portal")
	v.SetDefault("seed.admin_user", "admin")
	v.SetDefault("seed.admin_pass", "admin123")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	return &Config{
		Server: Server{
			Host:      v.GetString("server.host"),
			Port:      v.GetInt("server.port"),
			StaticDir: v.GetString("server.static_dir"),
		},
		DB: DB{
			Driver: v.GetString("db.driver"),
			Path:   v.GetString("db.path"),
			Host:   v.GetString("db.host"),
			Port:   v.GetInt("db.port"),
			User:   v.GetString("db.user"),
			Pass:   v.GetString("db.pass"),
			Name:   v.GetString("db.name"),
		},
		Seed: Seed{
			AdminUser: v.GetString("seed.admin_user"),
			AdminPass: v.GetString("seed.admin_pass"),
		},
	}, nil
}
