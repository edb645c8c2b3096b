package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/ananyac/lifelink/backend/internal/generator"
)

func main() {
	cfg := generator.DefaultConfig()
	var (
		banks          = flag.Int("banks", cfg.NumBanks, "number of blood banks to generate")
		donors         = flag.Int("donors", cfg.NumDonors, "number of donors to generate")
		inactiveChance = flag.Float64("inactive-chance", cfg.InactiveChance, "probability a bank is generated inactive")
		emptyChance    = flag.Float64("empty-chance", cfg.EmptyChance, "probability a blood type has zero units in stock")
		maxUnits       = flag.Int("max-units", cfg.MaxUnits, "maximum units of any blood type per bank")
		seed           = flag.Int64("seed", cfg.Seed, "random seed for deterministic generation")
		outputDir      = flag.String("output-dir", "data", "directory to write banks.json and donors.json")
		writeStdout    = flag.Bool("stdout", false, "write combined dataset to stdout instead of files")
	)
	flag.Parse()

	genCfg := generator.Config{
		NumBanks:       *banks,
		NumDonors:      *donors,
		InactiveChance: clampProbability(*inactiveChance),
		EmptyChance:    clampProbability(*emptyChance),
		MaxUnits:       *maxUnits,
		Seed:           *seed,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	gen := generator.New(genCfg)
	dataset, err := gen.Generate(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "generation failed: %v\n", err)
		os.Exit(1)
	}

	if *writeStdout {
		if err := json.NewEncoder(os.Stdout).Encode(dataset); err != nil {
			fmt.Fprintf(os.Stderr, "failed to write dataset to stdout: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := generator.WriteDataset(dataset, *outputDir); err != nil {
		fmt.Fprintf(os.Stderr, "failed to write dataset: %v\n", err)
		os.Exit(1)
	}

	fmt.Fprintf(os.Stdout, "Generated %d blood banks and %d donors into %s\n", len(dataset.Banks), len(dataset.Donors), *outputDir)
}

func clampProbability(value float64) float64 {
	if value < 0 {
		return 0
	}
	if value > 1 {
		return 1
	}
	return value
}
