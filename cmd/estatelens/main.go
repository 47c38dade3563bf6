package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/estatelens/estatelens/internal/app"
	"github.com/estatelens/estatelens/internal/fetch"
)

// Exit codes distinguish the typed pipeline failures so shell callers can
// apply their own retry policy.
const (
	exitUnsupported = 2
	exitBlocked     = 3
	exitTimeout     = 4
	exitHTTP        = 5
)

func main() {
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	// Optional .env for local runs; absence is fine.
	_ = godotenv.Load()

	var (
		rawURL     string
		inputPath  string
		configPath string
		userAgent  string
		acceptLang string
		timeout    time.Duration
		ratePerSec float64
		asOfYear   int
		verbose    bool
	)

	flag.StringVar(&rawURL, "url", "", "Listing detail page URL (required)")
	flag.StringVar(&inputPath, "input", "", "Path to previously fetched HTML; skips the network fetch")
	flag.StringVar(&configPath, "config", "", "Optional YAML/JSON config file")
	flag.StringVar(&userAgent, "ua", os.Getenv("ESTATELENS_UA"), "Override user agent")
	flag.StringVar(&acceptLang, "accept-language", "", "Override Accept-Language header")
	flag.DurationVar(&timeout, "timeout", fetch.DefaultTimeout, "Fetch wall-clock timeout")
	flag.Float64Var(&ratePerSec, "rate", 0, "Max requests per second (0 = unlimited)")
	flag.IntVar(&asOfYear, "as-of-year", 0, "Anchor year for building-age conversion (0 = current year)")
	flag.BoolVar(&verbose, "v", false, "Enable verbose logging")
	flag.Parse()

	if rawURL == "" {
		fmt.Fprintln(os.Stderr, "usage: estatelens -url <listing URL> [-input archived.html]")
		os.Exit(2)
	}

	cfg := app.Config{
		UserAgent:      userAgent,
		AcceptLanguage: acceptLang,
		FetchTimeout:   timeout,
		RatePerSecond:  ratePerSec,
		AsOfYear:       asOfYear,
		Verbose:        verbose,
	}
	if configPath != "" {
		fc, err := app.LoadConfigFile(configPath)
		if err != nil {
			log.Fatal().Err(err).Str("path", configPath).Msg("config file")
		}
		app.ApplyFileConfig(fc, &cfg)
	}
	if cfg.Verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	var prefetched string
	if inputPath != "" {
		b, err := os.ReadFile(inputPath)
		if err != nil {
			log.Fatal().Err(err).Str("path", inputPath).Msg("read input")
		}
		prefetched = string(b)
	}

	svc := app.New(cfg)
	l, err := svc.ExtractListing(context.Background(), rawURL, prefetched)
	if err != nil {
		var se *fetch.StatusError
		switch {
		case errors.Is(err, app.ErrUnsupportedSource):
			log.Error().Err(err).Msg("no extractor for this host")
			os.Exit(exitUnsupported)
		case errors.Is(err, app.ErrBlockedPage):
			log.Error().Err(err).Msg("challenge page; retry later or from another address")
			os.Exit(exitBlocked)
		case errors.Is(err, fetch.ErrTimeout):
			log.Error().Err(err).Msg("fetch timed out")
			os.Exit(exitTimeout)
		case errors.As(err, &se):
			log.Error().Int("status", se.Status).Msg("fetch failed")
			os.Exit(exitHTTP)
		default:
			log.Fatal().Err(err).Msg("extraction failed")
		}
	}

	out, err := json.MarshalIndent(l, "", "  ")
	if err != nil {
		log.Fatal().Err(err).Msg("encode listing")
	}
	fmt.Println(string(out))
}
