package main

import (
	"fmt"
	"os"

	"github.com/Adam11-11/Projet-Immobilier/config"
	"github.com/Adam11-11/Projet-Immobilier/scraper/immoparticuliers"
	"github.com/Adam11-11/Projet-Immobilier/services"
	"github.com/Adam11-11/Projet-Immobilier/storage"
	"github.com/Adam11-11/Projet-Immobilier/utils"
)

func main() {
	logger := utils.NewLogger()
	cfg := config.Load()

	logger.Info("=== Île-de-France listings pipeline starting ===")
	logger.Info("Config — pages: %d | raw: %s | final: %s",
		cfg.PagesToScrape, cfg.RawCSVPath, cfg.FinalCSVPath)

	// Stage 1: scrape → raw CSV.
	if cfg.SkipScrape {
		logger.Info("SKIP_SCRAPE set — reusing existing %s", cfg.RawCSVPath)
	} else {
		collector := immoparticuliers.New(cfg, logger)
		listings, err := collector.Collect()
		if err != nil {
			logger.Error("Scrape failed: %v", err)
			os.Exit(1)
		}
		if len(listings) == 0 {
			logger.Error("No valid listings were scraped. Exiting.")
			os.Exit(1)
		}

		rawWriter, err := storage.NewCSVWriter(cfg.RawCSVPath)
		if err != nil {
			logger.Error("Failed to create raw CSV writer: %v", err)
			os.Exit(1)
		}
		if err := rawWriter.WriteRaw(listings); err != nil {
			logger.Error("Raw CSV write failed: %v", err)
			os.Exit(1)
		}
		if err := rawWriter.Close(); err != nil {
			logger.Error("Raw CSV close failed: %v", err)
			os.Exit(1)
		}
		logger.Info("Raw listings saved to %s", cfg.RawCSVPath)
	}

	// Stage 2 always restarts from the flat file so it can rerun alone.
	raw, err := storage.ReadRaw(cfg.RawCSVPath)
	if err != nil {
		logger.Error("Failed to reload raw CSV: %v", err)
		os.Exit(1)
	}

	cleaner := services.NewCleaner(logger)
	clean := cleaner.Clean(raw)
	if len(clean) == 0 {
		logger.Error("All listings were dropped during cleaning. Exiting.")
		os.Exit(1)
	}

	aliases := services.DefaultAliases()
	if cfg.AliasFile != "" {
		loaded, err := services.LoadAliases(cfg.AliasFile)
		if err != nil {
			logger.Warn("Alias file unusable, using built-in table: %v", err)
		} else {
			aliases = loaded
		}
	}

	gazetteer, err := storage.ReadGazetteer(cfg.GazetteerPath)
	if err != nil {
		logger.Error("Failed to load gazetteer: %v", err)
		os.Exit(1)
	}

	normalizer := services.NewNormalizer(aliases)
	geocoder := services.NewGeocoder(logger, normalizer, gazetteer)
	geocoder.Enrich(clean)

	finalWriter, err := storage.NewCSVWriter(cfg.FinalCSVPath)
	if err != nil {
		logger.Error("Failed to create final CSV writer: %v", err)
		os.Exit(1)
	}
	if err := finalWriter.WriteClean(clean); err != nil {
		logger.Error("Final CSV write failed: %v", err)
		os.Exit(1)
	}
	if err := finalWriter.Close(); err != nil {
		logger.Error("Final CSV close failed: %v", err)
		os.Exit(1)
	}

	insightSvc := services.NewInsightService(logger)
	report := insightSvc.Generate(clean)
	insightSvc.Print(report)

	fmt.Printf("  Done. Raw CSV → %s | Final dataset → %s\n\n",
		cfg.RawCSVPath, cfg.FinalCSVPath)
}
