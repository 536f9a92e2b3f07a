package rrc

import (
	"net/url"
	"time"

	"texasogwells-backend/lib/telemetry"

	cloudflarebp "github.com/DaRealFreak/cloudflare-bp-go"
	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("scrapers/rrc")

// the portal rejects or serves degraded markup to clients that do not
// identify as a browser
const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/123.0.0.0 Safari/537.36"

const (
	entryEndpoint      = "/PDQ/generalReportAction.do"
	leaseQueryEndpoint = "/PDQ/leaseQueryAction.do"
	productionEndpoint = "/PDQ/productionReportAction.do"
)

type Client struct {
	BaseUrl *url.URL
	Http    *resty.Client
}

type ClientOptions struct {
	BaseUrl string
}

func NewClient(opts ClientOptions) (*Client, error) {
	baseUrl, err := url.Parse(opts.BaseUrl)
	if err != nil {
		return nil, err
	}

	client := resty.New()
	client.SetBaseURL(opts.BaseUrl)
	// the session cookie is attached explicitly per request, a jar
	// would smuggle state between sessions
	client.SetCookieJar(nil)
	client.SetHeader("User-Agent", userAgent)
	client.SetRedirectPolicy(resty.DomainCheckRedirectPolicy(baseUrl.Hostname()))
	client.SetTimeout(time.Second * 30)
	client.GetClient().Transport = cloudflarebp.AddCloudFlareByPass(client.GetClient().Transport)

	telemetry.InstrumentResty(client, "scrapers/rrc/http")

	return &Client{
		BaseUrl: baseUrl,
		Http:    client,
	}, nil
}
