package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ratiocycle/graphx"
	"ratiocycle/internal/config"
	"ratiocycle/internal/corelog"
	"ratiocycle/internal/metrics"
	"ratiocycle/ratio"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

func main() {
	configPath := flag.String("config", "configs/config.yaml", "Path to configuration file")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found, using environment variables")
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	corelog.Setup(cfg.Logging)
	log.Info().Msg("Starting ratiocycle - parametric cycle-ratio solver")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		log.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
		cancel()
	}()

	if err := run(ctx, cfg); err != nil && err != context.Canceled {
		log.Fatal().Err(err).Msg("Application error")
	}

	log.Info().Msg("ratiocycle shutdown complete")
}

func run(ctx context.Context, cfg *config.Config) error {
	m := metrics.New()
	if cfg.Metrics.Enabled {
		if err := m.StartServer(cfg.Metrics.Port, cfg.Metrics.Path); err != nil {
			return err
		}
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			m.Shutdown(shutdownCtx)
		}()
		log.Info().Int("port", cfg.Metrics.Port).Msg("Metrics server started")
	}

	g, err := config.LoadProblem(cfg.Problem.Path)
	if err != nil {
		return err
	}
	log.Info().Int("nodes", g.NumNodes()).Int("edges", g.NumEdges()).Str("path", cfg.Problem.Path).Msg("Graph problem loaded")
	m.SetGraphStats(g.NumNodes(), g.NumEdges())

	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		return solveOnce(egCtx, cfg, g, m)
	})

	if err := eg.Wait(); err != nil && err != context.Canceled {
		return err
	}
	return nil
}

func solveOnce(ctx context.Context, cfg *config.Config, g *graphx.Graph[string], m *metrics.Metrics) error {
	cost := func(e graphx.Edge[string]) float64 { return e.Attrs.Cost() }
	time0 := func(e graphx.Edge[string]) float64 { return e.Attrs.Time() }

	opts := []ratio.SolverOption[string, graphx.Edge[string], float64, float64]{
		ratio.WithOnRelaxPass[string, graphx.Edge[string], float64, float64](m.RecordRelaxPass),
		ratio.WithOnCycleFound[string, graphx.Edge[string], float64, float64](m.RecordCycleFound),
		ratio.WithOnOuterIteration[string, graphx.Edge[string], float64, float64](m.RecordOuterIteration),
		ratio.WithOnBudgetExceeded[string, graphx.Edge[string], float64, float64](m.RecordBudgetExhausted),
	}
	if cfg.Solver.MaxOuterIterations > 0 {
		opts = append(opts, ratio.WithMaxOuterIterations[string, graphx.Edge[string], float64, float64](cfg.Solver.MaxOuterIterations))
	}
	if cfg.Solver.MaxRelaxIterations > 0 {
		opts = append(opts, ratio.WithMaxRelaxIterations[string, graphx.Edge[string], float64, float64](cfg.Solver.MaxRelaxIterations))
	}

	var solver *ratio.Solver[string, graphx.Edge[string], float64, float64]
	if cfg.Problem.Objective == "max" {
		solver = ratio.NewMaxCycleRatioSolver[string, graphx.Edge[string]](g, cost, time0, opts...)
	} else {
		solver = ratio.NewMinCycleRatioSolver[string, graphx.Edge[string]](g, cost, time0, opts...)
	}

	dist := graphx.InitialDist[string](g)
	start := time.Now()
	r, cycle, err := solver.Run(dist, cfg.Solver.InitialRatio)
	m.RecordSolveLatency(time.Since(start))
	if err != nil {
		log.Error().Err(err).Float64("best_ratio", r).Msg("Solve ended before converging")
		return err
	}

	m.SetSolverRatio(r)
	log.Info().
		Float64("ratio", r).
		Str("objective", cfg.Problem.Objective).
		Int("cycle_len", cycle.Len()).
		Msg("Solve complete")

	<-ctx.Done()
	return ctx.Err()
}
