package main

import (
	"flag"
	"net/http"
	"os"

	"github.com/bwmarrin/snowflake"
	"github.com/rs/zerolog"
	"github.com/sony/gobreaker/v2"
	"golang.org/x/sync/semaphore"
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

	if err = bankdesk.MigrateUp(cfg.Database.ConnectionString); err != nil {
		logger.Fatal().Err(err).Msg("error applying migrations")
	}

	pgendpt, err := bankdesk.NewPostgresEndpoint(cfg.Database.ConnectionString, &logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("error starting database")
	}

	node, err := snowflake.NewNode(1)
	if err != nil {
		logger.Fatal().Err(err).Msg("error starting snowflake node")
	}

	svc, err := bankdesk.NewService(pgendpt, node, &logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("error starting service")
	}

	limit := func(n int64) *semaphore.Weighted {
		if n <= 0 {
			n = 64
		}
		return semaphore.NewWeighted(n)
	}
	limits := &bankdesk.ServiceLimits{
		Deposit:   limit(cfg.Limits.Deposit),
		Withdraw:  limit(cfg.Limits.Withdraw),
		Decide:    limit(cfg.Limits.Decide),
		Statement: limit(cfg.Limits.Statement),
	}
	brkrs := &bankdesk.ServiceBreaker{
		Deposit:  gobreaker.NewTwoStepCircuitBreaker[*bankdesk.BalanceChange](gobreaker.Settings{Name: "deposit"}),
		Withdraw: gobreaker.NewTwoStepCircuitBreaker[*bankdesk.BalanceChange](gobreaker.Settings{Name: "withdraw"}),
		Decide:   gobreaker.NewTwoStepCircuitBreaker[*bankdesk.Decision](gobreaker.Settings{Name: "decide"}),
	}

	var wired bankdesk.Service = svc
	for _, mw := range []bankdesk.Middleware{
		bankdesk.NewCircuitBreakMiddleware(brkrs),
		bankdesk.NewLimitMiddleware(limits),
		bankdesk.NewValidationMiddleware(),
	} {
		wired = mw(wired)
	}

	hndlr := bankdesk.NewHTTPHandler(wired, &logger)

	listen := cfg.Listen
	if listen == "" {
		listen = ":5000"
	}
	logger.Info().Str("listen", listen).Msg("backend running")
	if err = http.ListenAndServe(listen, hndlr); err != nil {
		logger.Fatal().Err(err).Msg("server exited")
	}
}
