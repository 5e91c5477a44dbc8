package core

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	AppName string
	Env     string // DEV (local; default), TEST, QA, PROD
	Debug   bool

	// the single built-in admin account; a placeholder, not a security model
	AdminUsername string
	AdminPassword string

	// storage bindings
	DataDir   string
	RedisAddr string

	RollbarToken string
}

// LoadConfig populates Config from defaults, an optional .env file and
// environment variables prefixed with the current ENV (e.g. DEV_DATADIR).
func LoadConfig() *Config {
	conf := viper.New()
	conf.SetTypeByDefaultValue(true)

	// defaults
	conf.SetDefault("debug", true)
	conf.SetDefault("appName", "Campuslite")
	conf.SetDefault("adminUsername", "vicky")
	conf.SetDefault("adminPassword", "vickyvji")
	conf.SetDefault("dataDir", ".campuslite")
	conf.SetDefault("redisAddr", "")
	conf.SetDefault("rollbarToken", "")

	env := os.Getenv("ENV")
	if env == "" {
		env = "DEV"
	}
	conf.SetEnvPrefix(env)

	// load .env if it exists (ignore if it does not)
	dotEnvPath := ".env." + strings.ToLower(env)
	if _, err := os.Stat(dotEnvPath); err == nil {
		if err := godotenv.Load(dotEnvPath); err != nil {
			log.Fatalf("config.godotenv(%s): %v", dotEnvPath, err)
		}
	} else if !os.IsNotExist(err) {
		log.Fatalf("config.os.Stat(%s): %v", dotEnvPath, err)
	}
	conf.AutomaticEnv()

	return &Config{
		AppName:       conf.GetString("appName"),
		Env:           env,
		Debug:         conf.GetBool("debug"),
		AdminUsername: conf.GetString("adminUsername"),
		AdminPassword: conf.GetString("adminPassword"),
		DataDir:       conf.GetString("dataDir"),
		RedisAddr:     conf.GetString("redisAddr"),
		RollbarToken:  conf.GetString("rollbarToken"),
	}
}
