// Package main provides a CLI that builds a report card from flags and
// prints it as text or JSON.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	platformcmd "github.com/louisbranch/reportcard/internal/platform/cmd"
	"github.com/louisbranch/reportcard/internal/platform/config"
	apperrors "github.com/louisbranch/reportcard/internal/platform/errors"
	"github.com/louisbranch/reportcard/internal/tools/cardtool"
)

func main() {
	cfg, err := cardtool.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.ExitCodef(apperrors.GetCode(err).ExitCode(), "parse flags: %s", apperrors.Localize(err, ""))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = platformcmd.RunWithTelemetry(ctx, platformcmd.ServiceReportCard, func(ctx context.Context) error {
		return cardtool.Run(ctx, cfg, os.Stdout)
	})
	if err != nil {
		stop()
		config.ExitCodef(apperrors.GetCode(err).ExitCode(), "reportcard: %s", apperrors.Localize(err, cfg.Locale))
	}
}
