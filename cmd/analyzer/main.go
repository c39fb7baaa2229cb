package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/cl0ver012/The-DVM-Scoring-Engine/internal/analysis"
	"github.com/cl0ver012/The-DVM-Scoring-Engine/internal/clients/scoring"
	"github.com/cl0ver012/The-DVM-Scoring-Engine/internal/config"
	"github.com/cl0ver012/The-DVM-Scoring-Engine/internal/demo"
	"github.com/cl0ver012/The-DVM-Scoring-Engine/internal/domain"
	"github.com/cl0ver012/The-DVM-Scoring-Engine/pkg/logger"
)

func main() {
	demoMode := flag.Bool("demo", false, "serve fixture data from a local stub instead of the live backend")
	token := flag.String("token", "", "token address to analyze")
	rankTab := flag.String("rank", "", "ranking tab to build (New, Surging or All)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "configuration error: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Pretty: cfg.DevMode,
	})
	logger.SetGlobalLogger(log)

	log.Info().
		Str("environment", string(cfg.Environment)).
		Str("api", cfg.APIBaseURL).
		Bool("demo", *demoMode).
		Msg("Starting DVM analyzer")

	baseURL := cfg.APIBaseURL
	if *demoMode {
		stubURL, shutdown, err := startStub(log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to start demo stub")
		}
		defer shutdown()
		baseURL = stubURL
		log.Info().Str("stub", stubURL).Msg("Demo stub serving fixture data")
	}

	client := scoring.NewClient(baseURL, cfg.APITimeout, log)
	orch := analysis.New(client, analysis.Hooks{
		OnState: func(s analysis.State) {
			log.Debug().Str("state", string(s)).Msg("Workflow state changed")
		},
		OnCoverage: func(pct float64, bucket domain.CoverageBucket) {
			log.Info().Float64("coverage_pct", pct).Str("bucket", string(bucket)).Msg("Extraction coverage")
		},
		OnWarning: func(msg string) {
			log.Warn().Msg(msg)
		},
	}, log)

	ctx := context.Background()

	switch {
	case *token != "":
		runAnalysis(ctx, orch, *token)
	case *rankTab != "":
		runRanking(ctx, orch, domain.RankingTab(*rankTab))
	case *demoMode:
		for _, scenario := range demo.Scenarios() {
			fmt.Printf("\n=== Scenario: %s (%s) ===\n", scenario.Name, scenario.ID)
			runAnalysis(ctx, orch, scenario.Token.Address)
		}
		for _, tab := range []domain.RankingTab{domain.TabNew, domain.TabSurging, domain.TabAll} {
			fmt.Printf("\n=== Ranking: %s ===\n", tab)
			runRanking(ctx, orch, tab)
		}
	default:
		flag.Usage()
		os.Exit(2)
	}
}

// startStub serves the fixture backend on an ephemeral local port. The
// returned shutdown func blocks until in-flight requests drain.
func startStub(log zerolog.Logger) (string, func(), error) {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return "", nil, fmt.Errorf("failed to bind stub listener: %w", err)
	}

	srv := &http.Server{Handler: demo.NewServer(log).Handler()}
	go func() {
		if err := srv.Serve(listener); err != nil && err != http.ErrServerClosed {
			log.Error().Err(err).Msg("Demo stub stopped unexpectedly")
		}
	}()

	shutdown := func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			log.Error().Err(err).Msg("Demo stub forced to shut down")
		}
	}

	return "http://" + listener.Addr().String(), shutdown, nil
}

func runAnalysis(ctx context.Context, orch *analysis.Orchestrator, token string) {
	view, err := orch.Analyze(ctx, token)
	if err != nil {
		var notification *analysis.Notification
		if errors.As(err, &notification) {
			fmt.Printf("Analysis failed (%s): %s\n", notification.Kind, notification.Message)
			return
		}
		fmt.Printf("Analysis failed: %v\n", err)
		return
	}

	fmt.Printf("Token:    %s (%s)\n", view.Token.Name, view.Token.Symbol)
	fmt.Printf("Coverage: %.1f%% (%s)\n", view.CoveragePercent, view.CoverageBucket)

	if !view.Passed() {
		fmt.Println("Pre-filter: FAILED")
		for _, reason := range view.Prefilter.Messages {
			fmt.Printf("  - %s\n", reason)
		}
		return
	}

	fmt.Println("Pre-filter: passed")
	fmt.Printf("Total score: %s\n", view.Scores.Total)
	fmt.Printf("  Momentum:    %s\n", view.Scores.Momentum)
	fmt.Printf("  Smart money: %s\n", view.Scores.SmartMoney)
	fmt.Printf("  Sentiment:   %s\n", view.Scores.Sentiment)
	fmt.Printf("  Event:       %s\n", view.Scores.Event)
	for _, tf := range view.Timeframes {
		fmt.Printf("  [%s] %s\n", tf.Label, tf.Score)
	}
	if view.ReportMarkdown != "" {
		fmt.Printf("\n%s\n", view.ReportMarkdown)
	}
}

func runRanking(ctx context.Context, orch *analysis.Orchestrator, tab domain.RankingTab) {
	rows, ok := demo.RankingFixtures()[tab]
	if !ok {
		fmt.Printf("Unknown ranking tab %q (expected New, Surging or All)\n", tab)
		return
	}

	view, err := orch.Rank(ctx, tab, rows)
	if err != nil {
		fmt.Printf("Ranking failed: %v\n", err)
		return
	}

	for _, row := range view.Rows {
		fmt.Printf("%2d. %-8s %-20s price %s  mcap %s  vol %s  holders %s  score %s\n",
			row.Rank, row.Symbol, row.Name, row.Price, row.MarketCap, row.Volume, row.Holders, row.Score)
	}
	if view.Stats.Defined {
		fmt.Printf("    mean score %.1f, best %.1f across %d tokens\n",
			view.Stats.Mean, view.Stats.Max, view.Stats.Count)
	}
}
