// Command to-preflight checks that a Traffic Ops instance is ready for the
// contract suite: it resolves the connection settings the suite would use,
// logs in, creates the prerequisite CDN and prints it as JSON. The CDN is
// left in place.
//
// Usage:
//
//	to-preflight --to-url=https://to.example.test --to-user=admin --to-password=secret
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"

	"github.com/MKhiriev/to-api-contract/internal/config"
	"github.com/MKhiriev/to-api-contract/internal/fixtures"
	"github.com/MKhiriev/to-api-contract/internal/logger"
	"github.com/MKhiriev/to-api-contract/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, argv []string) error {
	opts, err := config.ParseFlags(config.NewFlagSet("to-preflight"), argv)
	if err != nil {
		return err
	}

	settings, err := config.LoadSettings(opts)
	if err != nil {
		return fmt.Errorf("error getting configs: %w", err)
	}

	level, err := logger.ParseLevel(settings.LogLevel)
	if err != nil {
		return err
	}
	log := logger.NewLogger("to-preflight", level)
	log.WithLevel(zerolog.NoLevel).Object("build", models.NewBuildInfo(buildVersion, buildDate, buildCommit)).Send()

	fx := fixtures.New(opts, settings, log)

	cdn, err := fx.CDNPostData(ctx)
	if err != nil {
		return fmt.Errorf("create prerequisite cdn: %w", err)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(cdn)
}
