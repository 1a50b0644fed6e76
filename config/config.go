package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all run parameters. Every value has a hard default matching
// the standard Île-de-France run, so the binary works with no .env at all.
type Config struct {
	BaseURL       string
	PagesToScrape int

	RawCSVPath    string
	FinalCSVPath  string
	GazetteerPath string
	AliasFile     string

	// SkipScrape reuses an existing raw CSV so the clean/join stage can be
	// re-run without hitting the site again.
	SkipScrape bool
}

// Load reads the .env file (if any) and returns a populated Config struct.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("[config] No .env file found, falling back to system env vars")
	}

	return &Config{
		BaseURL:       getEnv("BASE_URL", "https://www.immo-entre-particuliers.com/annonces/france-ile-de-france"),
		PagesToScrape: getEnvInt("PAGES_TO_SCRAPE", 282),

		RawCSVPath:    getEnv("RAW_CSV_PATH", "./output/annonces_ile_de_france.csv"),
		FinalCSVPath:  getEnv("FINAL_CSV_PATH", "./output/annonces_ile_de_france_final.csv"),
		GazetteerPath: getEnv("GAZETTEER_PATH", "./cities.csv"),
		AliasFile:     getEnv("ALIAS_FILE", ""),

		SkipScrape: getEnvBool("SKIP_SCRAPE", false),
	}
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		n, err := strconv.Atoi(val)
		if err == nil {
			return n
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if val := os.Getenv(key); val != "" {
		b, err := strconv.ParseBool(val)
		if err == nil {
			return b
		}
	}
	return fallback
}
