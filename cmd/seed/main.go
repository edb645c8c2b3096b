package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/ananyac/lifelink/backend/internal/config"
	"github.com/ananyac/lifelink/backend/internal/graph"
	"github.com/ananyac/lifelink/backend/internal/logging"
	"github.com/ananyac/lifelink/backend/internal/repository"
	"github.com/ananyac/lifelink/backend/internal/service"
)

var errMissingDataset = errors.New("dataset not found")

func main() {
	var (
		datasetDir = flag.String("dataset-dir", "./seed-data", "Directory containing banks.json and donors.json")
		banksPath  = flag.String("banks", "", "Path to banks.json (overrides dataset-dir)")
		donorsPath = flag.String("donors", "", "Path to donors.json (overrides dataset-dir)")
		workers    = flag.Int("workers", 4, "Number of concurrent workers for seeding")
	)
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger := logging.New(cfg.Logging).With("component", "seed")

	bankFile, donorFile, err := resolveDatasetPaths(*datasetDir, *banksPath, *donorsPath)
	if err != nil {
		logger.Error("dataset resolution failed", "error", err)
		os.Exit(1)
	}

	banks, err := loadBankInputs(bankFile)
	if err != nil {
		logger.Error("failed to load banks", "error", err, "path", bankFile)
		os.Exit(1)
	}
	if len(banks) == 0 {
		logger.Error("banks dataset empty", "path", bankFile)
		os.Exit(1)
	}

	donors, err := loadDonorInputs(donorFile)
	if err != nil {
		logger.Error("failed to load donors", "error", err, "path", donorFile)
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	graphClient, err := buildGraphClient(ctx, logger, cfg)
	if err != nil {
		logger.Error("failed to create graph client", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := graphClient.Close(context.Background()); err != nil {
			logger.Warn("closing graph client failed", "error", err)
		}
	}()

	repo := repository.New(graphClient)
	svc := service.NewBankService(repo)
	ingestor := service.NewBulkIngestor(svc, *workers)

	start := time.Now()
	logger.Info("seeding blood banks", "count", len(banks), "workers", *workers)
	if err := ingestor.IngestBanks(ctx, banks); err != nil {
		logger.Error("bank seeding failed", "error", err)
		os.Exit(1)
	}

	if len(donors) > 0 {
		logger.Info("seeding donors", "count", len(donors))
		if err := ingestor.IngestDonors(ctx, donors); err != nil {
			logger.Error("donor seeding failed", "error", err)
			os.Exit(1)
		}
	}

	logger.Info("seeding complete", "duration", time.Since(start).String(), "banks", len(banks), "donors", len(donors))
}

func resolveDatasetPaths(baseDir, banksPath, donorsPath string) (string, string, error) {
	resolve := func(explicitPath, fallbackFile string) (string, error) {
		if explicitPath != "" {
			if _, err := os.Stat(explicitPath); err != nil {
				return "", fmt.Errorf("stat %s: %w", explicitPath, err)
			}
			return explicitPath, nil
		}
		path := filepath.Join(baseDir, fallbackFile)
		if _, err := os.Stat(path); err != nil {
			return "", fmt.Errorf("%w: %s", errMissingDataset, path)
		}
		return path, nil
	}

	bankFile, err := resolve(banksPath, "banks.json")
	if err != nil {
		return "", "", err
	}
	donorFile, err := resolve(donorsPath, "donors.json")
	if err != nil {
		return "", "", err
	}
	return bankFile, donorFile, nil
}

func loadBankInputs(path string) ([]service.BankInput, error) {
	var banks []service.BankInput
	if err := loadJSON(path, &banks); err != nil {
		return nil, err
	}
	return banks, nil
}

func loadDonorInputs(path string) ([]service.DonorInput, error) {
	var donors []service.DonorInput
	if err := loadJSON(path, &donors); err != nil {
		return nil, err
	}
	return donors, nil
}

func loadJSON(path string, target any) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer file.Close()

	decoder := json.NewDecoder(file)
	if err := decoder.Decode(target); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}

func buildGraphClient(ctx context.Context, logger *slog.Logger, cfg config.Config) (graph.Client, error) {
	if cfg.Graph.URI == "" {
		return nil, fmt.Errorf("GRAPH_URI is required for seeding")
	}
	opts := graph.Options{
		URI:            cfg.Graph.URI,
		Database:       cfg.Graph.Database,
		Username:       cfg.Graph.Username,
		Password:       cfg.Graph.Password,
		MaxConnections: cfg.Graph.MaxConnections,
	}
	client, err := graph.NewNeo4jClient(ctx, opts)
	if err != nil {
		return nil, err
	}
	if err := client.VerifyConnectivity(ctx); err != nil {
		_ = client.Close(ctx)
		return nil, err
	}
	logger.Info("connected to graph", "uri", cfg.Graph.URI, "database", cfg.Graph.Database)
	return client, nil
}
