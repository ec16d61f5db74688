package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/expense-tracker/backend/internal/auth"
	"github.com/expense-tracker/backend/internal/config"
	"github.com/expense-tracker/backend/internal/events"
	"github.com/expense-tracker/backend/internal/models"
	"github.com/expense-tracker/backend/internal/router"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	// gin uses debug as the default mode, we use release for
	// security reasons
	gin.SetMode(cfg.GinMode)

	// Log format can be explicitly set.
	// If it is not set, it defaults to human readable for development
	// and JSON for release
	output := io.Writer(os.Stdout)
	if (cfg.LogFormat == "" && gin.IsDebugging()) || cfg.LogFormat == "human" {
		output = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if gin.IsDebugging() {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(output).With().Timestamp().Logger()

	// Create the data directory
	err = os.MkdirAll(filepath.Dir(cfg.DBFile), os.ModePerm)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	err = models.Connect(cfg.DBFile)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	if cfg.AMQPURL != "" {
		publisher, err := events.NewAMQPPublisher(cfg.AMQPURL)
		if err != nil {
			log.Fatal().Msg(err.Error())
		}
		defer publisher.Close()

		events.Default = publisher
		log.Info().Msg("publishing events to AMQP")
	}

	if cfg.SeedDemoData {
		err = seedDemoUser()
		if err != nil {
			log.Fatal().Msg(err.Error())
		}
	}

	r, err := router.Config(cfg)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	router.AttachRoutes(cfg, r.Group(""))

	if err := r.Run(fmt.Sprintf(":%d", cfg.Port)); err != nil {
		log.Fatal().Msg(err.Error())
	}
}

// seedDemoUser creates a demo account with the default categories and
// distributions. Subsequent startups reuse the existing account.
func seedDemoUser() error {
	hash, err := auth.HashPassword("demo-password")
	if err != nil {
		return err
	}

	user := models.User{
		Name:     "Demo User",
		Email:    "demo@example.com",
		Password: hash,
	}

	err = models.DB.FirstOrCreate(&user, models.User{Email: user.Email}).Error
	if err != nil {
		return err
	}

	err = models.CreateSeedData(models.DB, user)
	if err != nil {
		return err
	}

	log.Info().Str("email", user.Email).Msg("demo data seeded")
	return nil
}
