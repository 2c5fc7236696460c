package main

import (
	"flag"
	"os"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/kmadriaga/bankdesk"
)

func main() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()

	var cfg bankdesk.Config
	cfp := flag.String("config", "config.yml", "path to configuration file")
	flag.Parse()
	cfgfl, err := os.Open(*cfp)
	if err != nil {
		logger.Fatal().Err(err).Msg("error opening config file")
	}
	if err = yaml.NewDecoder(cfgfl).Decode(&cfg); err != nil {
		logger.Fatal().Err(err).Msg("error decoding config file")
	}
	cfgfl.Close()

	lh, err := bankdesk.NewLocalHelper(cfg.Database.ConnectionString)
	if err != nil {
		logger.Fatal().Err(err).Msg("error starting local helper")
	}
	if _, err = lh.InitDB(); err != nil {
		logger.Fatal().Err(err).Msg("error initializing database")
	}
	accts, err := lh.SeedAccounts("Alice Santos", "Bob Reyes", "Carla Dizon")
	if err != nil {
		logger.Fatal().Err(err).Msg("error seeding accounts")
	}
	for _, acct := range accts {
		logger.Info().Int64("acc_no", acct.AccNo).Str("name", acct.Name).Msg("seeded account")
	}
}
