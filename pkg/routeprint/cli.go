package routeprint

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/travigo/routeprint/pkg/cachedresults"
	"github.com/travigo/routeprint/pkg/formatter"
	"github.com/travigo/routeprint/pkg/loader"
	"github.com/urfave/cli/v2"
)

// LoaderFlags are shared by every command that fetches route pages.
func LoaderFlags() []cli.Flag {
	return []cli.Flag{
		&cli.DurationFlag{
			Name:  "timeout",
			Usage: "timeout for fetching a route page",
		},
		&cli.IntFlag{
			Name:  "retries",
			Usage: "retry temporarily unavailable route pages this many times",
		},
		&cli.StringFlag{
			Name:  "user-agent",
			Usage: "User-Agent header sent with requests",
		},
		&cli.BoolFlag{
			Name:  "cache",
			Usage: "cache rendered routes in Redis (ROUTEPRINT_REDIS_ADDRESS)",
		},
	}
}

func LoaderConfig(c *cli.Context) (loader.Config, error) {
	config, err := loader.ConfigFromEnvironment()
	if err != nil {
		return config, err
	}

	if c.IsSet("timeout") {
		config.Timeout = c.Duration("timeout")
	}
	if c.IsSet("retries") {
		config.Retries = c.Int("retries")
	}
	if c.IsSet("user-agent") {
		config.UserAgent = c.String("user-agent")
	}

	return config, nil
}

// SetupPrinter builds a Printer from the environment and the shared flags.
func SetupPrinter(c *cli.Context) (*Printer, error) {
	config, err := LoaderConfig(c)
	if err != nil {
		return nil, err
	}

	var cache *cachedresults.Cache
	if c.Bool("cache") {
		if cache, err = cachedresults.NewFromEnvironment(); err != nil {
			return nil, fmt.Errorf("connecting to Redis: %w", err)
		}
	}

	return NewPrinter(config, cache)
}

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:      "format",
		Usage:     "Print routes from route search print pages as text",
		ArgsUsage: "URL...",
		Flags: append([]cli.Flag{
			&cli.StringFlag{
				Name:  "output",
				Value: string(formatter.OutputText),
				Usage: "output format: text, json or yaml",
			},
			&cli.IntFlag{
				Name:  "concurrency",
				Value: 4,
				Usage: "number of pages fetched at once",
			},
		}, LoaderFlags()...),
		Action: func(c *cli.Context) error {
			if c.NArg() == 0 {
				return errors.New("at least one route URL is required")
			}

			output, err := formatter.ParseOutput(c.String("output"))
			if err != nil {
				return err
			}

			printer, err := SetupPrinter(c)
			if err != nil {
				return err
			}

			results := printer.RenderAll(c.Context, c.Args().Slice(), output, c.Int("concurrency"))

			failed := 0
			printed := 0
			for _, result := range results {
				if result.Err != nil {
					failed++
					log.Error().Err(result.Err).Str("url", result.Source).Msg("Failed to print route")
					continue
				}

				if printed > 0 {
					fmt.Fprintln(c.App.Writer)
				}
				fmt.Fprintln(c.App.Writer, result.Rendered)
				printed++
			}

			if failed > 0 {
				return fmt.Errorf("%d of %d routes could not be printed", failed, len(results))
			}

			return nil
		},
	}
}
