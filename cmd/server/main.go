package main

import (
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/bildungswerk/kursbuero/internal/db"
	"github.com/bildungswerk/kursbuero/internal/mqtt"
	"github.com/bildungswerk/kursbuero/internal/redis"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	if err := godotenv.Load(); err != nil {
		log.Info().Msg("no .env file found, relying on process environment")
	}
	env := LoadEnvironment()

	if err := db.Init(env.DatabaseURL); err != nil {
		log.Fatal().Err(err).Msg("db init failed")
	}
	if err := db.RunMigrations(env.MigrationsPath); err != nil {
		log.Fatal().Err(err).Msg("db migrate failed")
	}
	store := db.NewStore(nil)

	if env.RedisAddress != "" {
		redis.InitRedis(env.RedisAddress, env.RedisUsername, env.RedisPassword)
	}

	if err := mqtt.Init(env.MQTTBrokerURL, env.MQTTClientID); err != nil {
		log.Fatal().Err(err).Msg("mqtt init failed")
	}
	defer mqtt.Cleanup()

	storageSystem := InitStorage(env)

	if env.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()
	RegisterRoutes(r, env, store, storageSystem)

	log.Info().Str("address", env.ServerAddress).Msg("starting server")
	if err := r.Run(env.ServerAddress); err != nil {
		log.Fatal().Err(err).Msg("server error")
	}
}
