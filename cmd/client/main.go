package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-notes-keeper/internal/adapter"
	"github.com/MKhiriev/go-notes-keeper/internal/client"
	"github.com/MKhiriev/go-notes-keeper/internal/config"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	log := logger.NewClientLogger("go-notes-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	fs := flag.NewFlagSet("client", flag.ExitOnError)
	addr := fs.String("addr", cfg.Adapter.HTTPAddress, "notes API base URL")
	token := fs.String("token", os.Getenv("NOTES_TOKEN"), "bearer token for protected commands")
	version := fs.Bool("version", false, "print build info and exit")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "usage: client [-addr URL] [-token T] <command> [args]\n\ncommands:\n%s\n\nflags:\n", client.Usage())
		fs.PrintDefaults()
	}
	_ = fs.Parse(os.Args[1:])

	if *version {
		fmt.Print(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))
		return
	}

	cfg.Adapter.HTTPAddress = *addr
	api, err := adapter.NewHTTPNotesAPI(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create notes api adapter")
	}
	api.SetToken(*token)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err = client.NewApp(api, os.Stdout, log).Run(ctx, fs.Args()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}
