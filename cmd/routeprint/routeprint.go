package main

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/travigo/routeprint/pkg/api"
	"github.com/travigo/routeprint/pkg/routeprint"
	"github.com/urfave/cli/v2"
)

func main() {
	if os.Getenv("ROUTEPRINT_LOG_FORMAT") != "JSON" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}

	if os.Getenv("ROUTEPRINT_DEBUG") == "YES" {
		log.Logger = log.Logger.Level(zerolog.DebugLevel)
	} else {
		log.Logger = log.Logger.Level(zerolog.InfoLevel)
	}

	app := &cli.App{
		Name:        "routeprint",
		Usage:       "Turn a route search print page into pasteable text",
		Description: "Fetches the print view of a transit.yahoo.co.jp route search and prints its stations, times, lines and platforms",

		Commands: []*cli.Command{
			routeprint.RegisterCLI(),
			api.RegisterCLI(),
		},
	}

	err := app.Run(os.Args)
	if err != nil {
		log.Fatal().Err(err).Send()
	}
}
