package main

import (
	"flag"
	"net/http"
	"os"

	"texasogwells-backend/lib/configutil"
	"texasogwells-backend/lib/scrapers/rrc"
	"texasogwells-backend/lib/serviceutil"
	"texasogwells-backend/services/wellquery"
)

type UpstreamConfig struct {
	BaseUrl string `json:"base_url"`
}

type Config struct {
	Port     int            `json:"port"`
	Upstream UpstreamConfig `json:"upstream"`
}

const defaultUpstream = "https://webapps.rrc.texas.gov"

func main() {
	verbose := flag.Bool("v", false, "Enable verbose logging/instrumentation.")
	flag.Parse()

	ctx := serviceutil.SignalContext()

	InitTelemetry(ctx, *verbose)

	cfg, err := configutil.ReadConfig[Config]("config.json5")
	if err != nil && !os.IsNotExist(err) {
		serviceutil.Fatal("read config", err)
	}
	if cfg.Port == 0 {
		cfg.Port = 8000
	}
	if cfg.Upstream.BaseUrl == "" {
		cfg.Upstream.BaseUrl = defaultUpstream
	}

	client, err := rrc.NewClient(rrc.ClientOptions{
		BaseUrl: cfg.Upstream.BaseUrl,
	})
	if err != nil {
		serviceutil.Fatal("init rrc client", err)
	}

	mux := http.NewServeMux()
	wellquery.NewService(client).Register(mux)

	go serviceutil.StartHttpServer(cfg.Port, mux)
	<-ctx.Done()
}
