// iab-map maps product metadata to IAB Ad Product Taxonomy categories
// from the command line.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/mixpeek/iab-product-mapper/cache"
	"github.com/mixpeek/iab-product-mapper/config"
	"github.com/mixpeek/iab-product-mapper/iab"
	"github.com/mixpeek/iab-product-mapper/llm"
	"github.com/mixpeek/iab-product-mapper/mapper"
	"github.com/mixpeek/iab-product-mapper/mixpeek"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	config.LoadEnvFile()
	cfg := config.FromEnv()

	var (
		title         = flag.String("title", "", "product title")
		description   = flag.String("description", "", "product description")
		category      = flag.String("category", "", "merchant category")
		brand         = flag.String("brand", "", "brand name")
		keywords      = flag.String("keywords", "", "comma-separated keywords")
		mode          = flag.String("mode", cfg.Mode, "mapping mode: deterministic, semantic or hybrid")
		minConfidence = flag.Float64("min-confidence", cfg.MinConfidence, "minimum confidence threshold")
		noSecondary   = flag.Bool("no-secondary", false, "omit secondary categories")
		lookup        = flag.String("lookup", "", "look up a category by id or IAB-AP code and exit")
		health        = flag.Bool("health", false, "print a health report and exit")
		verbose       = flag.Bool("verbose", false, "enable debug logging")
	)
	flag.Parse()

	if *verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	m := buildMapper(ctx, cfg)

	switch {
	case *lookup != "":
		runLookup(m, *lookup)
	case *health:
		printJSON(m.HealthCheck(ctx))
	default:
		opts := []mapper.Option{
			mapper.WithMode(mapper.Mode(*mode)),
			mapper.WithMinConfidence(*minConfidence),
		}
		if *noSecondary {
			opts = append(opts, mapper.WithoutSecondary())
		}

		product := mapper.Product{
			Title:       *title,
			Description: *description,
			Category:    *category,
			Brand:       *brand,
		}
		if *keywords != "" {
			for _, kw := range strings.Split(*keywords, ",") {
				product.Keywords = append(product.Keywords, strings.TrimSpace(kw))
			}
		}

		result := m.MapProduct(ctx, product, opts...)
		printJSON(result)
		if !result.Success {
			os.Exit(1)
		}
	}
}

// buildMapper wires a mapper from config: Mixpeek if an API key is set,
// Gemini as fallback, deterministic-only otherwise; SQLite cache when a
// path is configured, in-memory cache otherwise.
func buildMapper(ctx context.Context, cfg config.Config) *mapper.Mapper {
	var classifier mapper.Classifier
	if cfg.MixpeekApiKey != "" {
		client, err := mixpeek.NewClient(mixpeek.ClientOpts{
			ApiKey:    cfg.MixpeekApiKey,
			Namespace: cfg.MixpeekNamespace,
			BaseURL:   cfg.MixpeekEndpoint,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("failed to initialize mixpeek client")
		}
		classifier = client
		log.Debug().Msg("using mixpeek classifier")
	} else if cfg.GeminiApiKey != "" {
		gemini, err := llm.NewGeminiClassifier(ctx)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to initialize gemini classifier")
		}
		classifier = gemini
		log.Debug().Msg("using gemini classifier")
	} else {
		log.Debug().Msg("no classifier configured, deterministic matching only")
	}

	var resultCache mapper.Cache
	if cfg.CachePath != "" {
		sqliteCache, err := cache.NewSQLite(cfg.CachePath, cfg.CacheTTL)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to open cache database")
		}
		resultCache = sqliteCache
		log.Debug().Str("path", cfg.CachePath).Msg("using sqlite cache")
	} else {
		resultCache = cache.NewMemory(cfg.CacheTTL, 0)
	}

	return mapper.New(mapper.Opts{
		Classifier:    classifier,
		Cache:         resultCache,
		Mode:          mapper.Mode(cfg.Mode),
		MinConfidence: &cfg.MinConfidence,
	})
}

func runLookup(m *mapper.Mapper, idOrCode string) {
	id, ok := iab.IDFromCode(idOrCode)
	if !ok {
		parsed, err := strconv.Atoi(strings.TrimSpace(idOrCode))
		if err != nil {
			log.Fatal().Str("input", idOrCode).Msg("not a category id or IAB-AP code")
		}
		id = parsed
	}

	info, ok := m.LookupCategory(id)
	if !ok {
		log.Fatal().Int("id", id).Msg("unknown category")
	}
	printJSON(info)
}

func printJSON(v any) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		log.Fatal().Err(err).Msg("failed to marshal output")
	}
	fmt.Println(string(data))
}
