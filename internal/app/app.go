package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	"github.com/estatelens/estatelens/internal/extract"
	"github.com/estatelens/estatelens/internal/fetch"
	"github.com/estatelens/estatelens/internal/interstitial"
	"github.com/estatelens/estatelens/internal/listing"
	"github.com/estatelens/estatelens/internal/source"
)

// ErrUnsupportedSource is returned when a URL's host matches no known
// profile. No fetch or extraction happens in that case.
var ErrUnsupportedSource = errors.New("unsupported source")

// ErrBlockedPage is returned when the document is an authentication wall or
// anti-bot challenge rather than a listing. Extracting from such a page
// would silently produce wrong data, so the pipeline stops before the
// extractor runs.
var ErrBlockedPage = errors.New("blocked or interstitial page")

// Service runs the URL → NormalizedListing pipeline. Extraction itself is
// pure and synchronous; the fetcher is the only component that does I/O, so
// one Service is safe to share across goroutines.
type Service struct {
	cfg      Config
	client   *fetch.Client
	asOfYear int
}

// New builds a Service from cfg. AsOfYear defaults to the current calendar
// year when unset; tests pin it for determinism.
func New(cfg Config) *Service {
	var limiter *rate.Limiter
	if cfg.RatePerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.RatePerSecond), 1)
	}
	asOf := cfg.AsOfYear
	if asOf == 0 {
		asOf = time.Now().Year()
	}
	return &Service{
		cfg: cfg,
		client: &fetch.Client{
			UserAgent:      cfg.UserAgent,
			AcceptLanguage: cfg.AcceptLanguage,
			Timeout:        cfg.FetchTimeout,
			Limiter:        limiter,
		},
		asOfYear: asOf,
	}
}

// ExtractListing classifies the URL, fetches the document unless prefetched
// text is supplied, and extracts the canonical record. Hard failures are
// limited to classification, blocked pages, and transport errors; per-field
// misses degrade to absent fields with diagnostics.
func (s *Service) ExtractListing(ctx context.Context, rawURL string, prefetched string) (*listing.NormalizedListing, error) {
	profile := source.Classify(rawURL)
	if profile == source.Unsupported {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedSource, rawURL)
	}

	body := prefetched
	if body == "" {
		res, err := s.client.Get(ctx, rawURL)
		if err != nil {
			return nil, err
		}
		body = res.Body
	}

	if interstitial.Detect(body) {
		log.Warn().Str("url", rawURL).Str("source", profile.String()).Msg("challenge page served instead of listing")
		return nil, ErrBlockedPage
	}

	asm := listing.Assembler{AsOfYear: s.asOfYear}
	doc, err := extract.NewDocument(body)
	if err != nil {
		// Graceful degradation: an unparseable page yields an empty record
		// with a note, not a pipeline error.
		log.Warn().Err(err).Str("url", rawURL).Msg("document parse failed")
		l := asm.Assemble(extract.Result{})
		l.Diagnostics.Note = "document parse failed"
		return &l, nil
	}

	ex, ok := extract.ForProfile(profile)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedSource, rawURL)
	}
	res := ex.Extract(doc)
	l := asm.Assemble(res)
	if s.cfg.Verbose {
		log.Debug().
			Str("url", rawURL).
			Str("source", profile.String()).
			Int("candidates", len(res.Candidates)).
			Int("rejected", l.Diagnostics.SanitizeRejections).
			Msg("listing assembled")
	}
	return &l, nil
}
