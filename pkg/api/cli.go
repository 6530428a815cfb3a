package api

import (
	"github.com/rs/zerolog/log"
	"github.com/travigo/routeprint/pkg/routeprint"
	"github.com/urfave/cli/v2"
)

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Serve printed routes over HTTP",
		Flags: append([]cli.Flag{
			&cli.StringFlag{
				Name:  "listen",
				Value: ":8080",
				Usage: "listen target for the web server",
			},
		}, routeprint.LoaderFlags()...),
		Action: func(c *cli.Context) error {
			printer, err := routeprint.SetupPrinter(c)
			if err != nil {
				return err
			}

			log.Info().Str("listen", c.String("listen")).Msg("Starting web server")

			return SetupServer(c.String("listen"), printer)
		},
	}
}
