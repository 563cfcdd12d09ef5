package main

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os"

	"github.com/pe-tools/impact-atlas/pkg/server"
	"github.com/pe-tools/impact-atlas/pkg/services/comparison"
	"github.com/pe-tools/impact-atlas/pkg/services/config"
	"github.com/pe-tools/impact-atlas/pkg/store/bucket"
	"github.com/pe-tools/impact-atlas/pkg/store/duckdb"
	duckdbgeo "github.com/pe-tools/impact-atlas/pkg/store/duckdb/geo"
	"github.com/pe-tools/impact-atlas/pkg/store/geo"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var settingsPath string

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Start the web server for Impact Atlas",
		RunE:  runServer,
	}

	rootCmd.Flags().StringVarP(&settingsPath, "settings", "s", "settings.yaml",
		"Path to the server settings file")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Error loading .env file: %v\n", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	ctx := logger.WithContext(cmd.Context())

	settings, err := config.LoadSettings(settingsPath)
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	registry, err := config.NewRegistry(settings.Data.Profiles)
	if err != nil {
		return fmt.Errorf("failed to create country profile registry: %w", err)
	}

	profiles, err := registry.GetProfiles(ctx)
	if err != nil {
		return fmt.Errorf("failed to read country profiles: %w", err)
	}
	logger.Info().Msgf("Configuration found at `%s` successfully loaded.", settings.Data.Profiles)
	for _, profile := range profiles {
		logger.Info().Msgf("Country: `%s`, Version: `%s`", profile.Name, profile.Version)
	}

	// The geographic store is optional: without it the constituency
	// sub-report is omitted and everything else still works.
	var geoStore geo.Store
	if settings.Data.GeoDBPath != "" {
		if err := fetchGeoData(ctx, registry, settings); err != nil {
			logger.Warn().Err(err).Msg("constituency data unavailable")
		} else {
			db, err := duckdb.NewDB(duckdb.Settings{DbPath: settings.Data.GeoDBPath})
			if err != nil {
				return fmt.Errorf("failed to open geo database: %w", err)
			}
			geoStore, err = duckdbgeo.NewStore(db)
			if err != nil {
				return err
			}
		}
	}

	service := comparison.NewService(registry, geoStore)

	mux := server.ConfigureRouter(logger, server.Dependencies{
		Comparison: service,
		Registry:   registry,
	})

	host := os.Getenv("SERVER_HOST")
	port := os.Getenv("SERVER_PORT")
	if host == "" {
		host = settings.Server.Host
	}
	if port == "" {
		port = settings.Server.Port
	}
	if host == "" || port == "" {
		logger.Error().Msgf("Missing server host/port configuration")
		os.Exit(1)
	}

	addr := net.JoinHostPort(host, port)
	logger.Info().Msgf("starting server on %s", addr)

	return http.ListenAndServe(addr, mux)
}

// fetchGeoData downloads the constituency database for the uk profile when
// a data bucket is configured and the local cache is missing.
func fetchGeoData(ctx context.Context, registry config.Registry, settings *config.Settings) error {
	profile, err := registry.GetProfile(ctx, "uk")
	if err != nil {
		return err
	}
	if profile.DataBucket == "" || profile.GeoDataKey == "" {
		// Nothing to fetch; the local file must already exist.
		if _, err := os.Stat(settings.Data.GeoDBPath); err != nil {
			return fmt.Errorf("geo database not found at %s: %w", settings.Data.GeoDBPath, err)
		}
		return nil
	}

	downloader, err := bucket.NewDownloader(ctx, profile.DataBucket)
	if err != nil {
		return err
	}
	_, err = downloader.Fetch(ctx, profile.GeoDataKey, settings.Data.GeoDBPath)
	return err
}
