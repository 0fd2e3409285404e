package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tburke/sociograph/pkg/analytics"
	"github.com/tburke/sociograph/pkg/config"
	"github.com/tburke/sociograph/pkg/graph"
	"github.com/tburke/sociograph/pkg/loader"
	"github.com/tburke/sociograph/pkg/logging"
	"github.com/tburke/sociograph/pkg/metrics"
	"github.com/tburke/sociograph/pkg/report"
)

func main() {
	configPath := flag.String("config", "", "Path to YAML run configuration")
	inputPath := flag.String("input", "", "Edge-list file (overrides config)")
	databaseURL := flag.String("db", "", "PostgreSQL URL (overrides config)")
	skipInvalid := flag.Bool("skip-invalid", false, "Drop self-loops and malformed records instead of failing")
	sampleK := flag.Int("sample", 0, "Betweenness source sample size (0 = exact)")
	workers := flag.Int("workers", 0, "Worker count for parallel betweenness (0 = serial)")
	topN := flag.Int("top", 0, "Ranked nodes per centrality table")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Flag overrides
	if *inputPath != "" {
		cfg.Source.Kind = "edgelist"
		cfg.Source.Path = *inputPath
	}
	if *databaseURL != "" {
		cfg.Source.Kind = "postgres"
		cfg.Source.DatabaseURL = *databaseURL
	}
	if *skipInvalid {
		cfg.Source.SkipInvalid = true
	}
	if *sampleK > 0 {
		cfg.Analysis.SampleK = *sampleK
	}
	if *workers > 0 {
		cfg.Analysis.Workers = *workers
	}
	if *topN > 0 {
		cfg.Analysis.TopN = *topN
	}

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger := logging.NewJSONLogger(os.Stderr, logging.ParseLevel(cfg.LogLevel))
	logging.SetDefaultLogger(logger)
	logger.Info("Starting analysis run", logging.Component("cli"))

	reg := metrics.DefaultRegistry()
	startTime := time.Now()

	if cfg.Metrics.Enabled {
		go serveMetrics(reg, cfg.Metrics.Listen, logger)
	}

	g := graph.New()
	if err := loadGraph(g, cfg, logger, reg); err != nil {
		log.Fatalf("Failed to load graph: %v", err)
	}

	summary := report.NewSummary(g)
	reg.UpdateGraphMetrics(summary.Nodes, summary.Edges, summary.Components, summary.Density, summary.AverageDegree)

	tables, partition, err := analyze(g, cfg, summary, logger, reg)
	if err != nil {
		log.Fatalf("Analysis failed: %v", err)
	}

	summary.Duration = time.Since(startTime)
	reg.UpdateSystemMetrics(startTime)

	fmt.Print(report.Render(summary, tables, partition))
}

func loadGraph(g *graph.Graph, cfg *config.Config, logger logging.Logger, reg *metrics.Registry) error {
	var src loader.EdgeSource
	var err error

	switch cfg.Source.Kind {
	case "postgres":
		src, err = loader.NewPGSource(context.Background(), cfg.Source.DatabaseURL, cfg.Source.Query)
	default:
		src, err = loader.OpenFile(cfg.Source.Path)
	}
	if err != nil {
		return err
	}
	defer src.Close()

	_, err = loader.Load(g, src, loader.Options{
		SkipInvalid: cfg.Source.SkipInvalid,
		Logger:      logger,
		Metrics:     reg,
	})
	return err
}

func analyze(g *graph.Graph, cfg *config.Config, summary *report.Summary, logger logging.Logger, reg *metrics.Registry) ([]report.ScoreTable, *analytics.PartitionResult, error) {
	n := g.NodeCount()

	// Centrality suite
	timer := logging.StartTimer(logger, "Centrality computed", logging.Algorithm("centrality"))
	start := time.Now()
	centrality, err := analytics.ComputeAllCentrality(g, analytics.BetweennessOptions{
		Normalized: cfg.Analysis.Normalized,
		SampleK:    cfg.Analysis.SampleK,
		Workers:    cfg.Analysis.Workers,
		Seed:       cfg.Analysis.Seed,
	})
	if err != nil {
		timer.EndError(err)
		reg.RecordAnalysis("centrality", "error", time.Since(start), n)
		return nil, nil, err
	}
	timer.End()
	reg.RecordAnalysis("centrality", "success", time.Since(start), n)

	tables := []report.ScoreTable{
		{Title: "Top by degree", Rows: analytics.TopNodes(centrality.Degree, cfg.Analysis.TopN)},
		{Title: "Top by closeness", Rows: analytics.TopNodes(centrality.Closeness, cfg.Analysis.TopN)},
		{Title: "Top by betweenness", Rows: analytics.TopNodes(centrality.Betweenness, cfg.Analysis.TopN)},
	}

	// Path statistics are only defined when the graph is connected
	if analytics.IsConnected(g) && n > 1 {
		start = time.Now()
		avg, err := analytics.AverageShortestPathLength(g)
		if err != nil {
			reg.RecordAnalysis("paths", "error", time.Since(start), n)
			return nil, nil, err
		}
		d, err := analytics.Diameter(g)
		if err != nil {
			reg.RecordAnalysis("paths", "error", time.Since(start), n)
			return nil, nil, err
		}
		summary.AttachPathStats(avg, d)
		reg.RecordAnalysis("paths", "success", time.Since(start), n)
	}

	// Maximal cliques
	timer = logging.StartTimer(logger, "Cliques enumerated", logging.Algorithm("cliques"))
	start = time.Now()
	cliques := analytics.FindCliques(g)
	timer.End()
	reg.RecordAnalysis("cliques", "success", time.Since(start), n)
	reg.CliquesFound.Set(float64(len(cliques)))
	logger.Info("Clique enumeration finished", logging.Count(len(cliques)))

	// Communities
	timer = logging.StartTimer(logger, "Communities detected", logging.Algorithm("louvain"))
	start = time.Now()
	partition := analytics.BestPartition(g, analytics.CommunityOptions{
		Seed:      cfg.Analysis.Seed,
		MaxLevels: cfg.Analysis.MaxLevels,
	})
	timer.End()
	reg.RecordAnalysis("louvain", "success", time.Since(start), n)
	reg.RecordPartition(len(partition.Communities), partition.Modularity)
	summary.AttachPartition(partition)

	return tables, partition, nil
}

func serveMetrics(reg *metrics.Registry, listen string, logger logging.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg.GetPrometheusRegistry(), promhttp.HandlerOpts{}))

	logger.Info("Metrics listener started", logging.String("listen", listen))
	if err := http.ListenAndServe(listen, mux); err != nil {
		logger.Error("Metrics listener failed", logging.Error(err))
	}
}
