package main

import (
	"context"
	"log/slog"
	"os"

	"texasogwells-backend/lib/serviceutil"
	"texasogwells-backend/lib/telemetry"
)

func InitTelemetry(ctx context.Context, verbose bool) {
	telemetry.InitSlog(verbose)

	_, err := telemetry.SetupFromEnv(ctx, "wellquery")
	if os.IsNotExist(err) {
		slog.Warn("no telemetry.json5 found, traces and metrics are disabled")
		return
	}
	if err != nil {
		serviceutil.Fatal("setup telemetry", err)
	}

	telemetry.InstrumentPerfStats(ctx)
}
