package atwiki

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"gcmatome/internal/components/assert"
	"gcmatome/internal/components/restyutil"
	"gcmatome/internal/components/telemetry"
	"gcmatome/pkg/htmlutil"

	cloudflarebp "github.com/DaRealFreak/cloudflare-bp-go"
	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"golang.org/x/time/rate"
)

const (
	report_client_fetch = "client.fetch"
)

var tracer = otel.Tracer("gcmatome/scrapers/atwiki")

// AcquisitionError means a page could not be fetched or parsed, it is the
// only error that leaves the scraper for a single page.
type AcquisitionError struct {
	URL string
	Err error
}

func (e *AcquisitionError) Error() string {
	return fmt.Sprintf("acquire '%s': %v", e.URL, e.Err)
}

func (e *AcquisitionError) Unwrap() error {
	return e.Err
}

// Client fetches and parses pages of the wiki.
type Client struct {
	baseUrl *url.URL
	http    *resty.Client
	tel     telemetry.API
}

func NewClient(config Config, tel telemetry.API) (Client, error) {
	assert.NotNil(tel)
	config = config.withDefaults()

	tel = telemetry.NewScopedAPI("atwiki", tel)

	baseUrl := config.BaseUrl
	if !strings.HasSuffix(baseUrl, "/") {
		baseUrl += "/"
	}
	parsedBaseUrl, err := url.Parse(baseUrl)
	if err != nil {
		return Client{}, err
	}
	if !parsedBaseUrl.IsAbs() {
		return Client{}, fmt.Errorf("base url '%s' is not absolute", config.BaseUrl)
	}

	httpClient := resty.New()
	if config.CloudflareBypass {
		httpClient.GetClient().Transport = cloudflarebp.AddCloudFlareByPass(httpClient.GetClient().Transport)
	}
	httpClient.SetHeader("user-agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/123.0.0.0 Safari/537.36")
	httpClient.SetRedirectPolicy(resty.DomainCheckRedirectPolicy(parsedBaseUrl.Hostname()))
	httpClient.SetTimeout(time.Duration(config.TimeoutSeconds) * time.Second)

	// the wiki is a shared free host, be polite
	rateLimiter := rate.NewLimiter(rate.Limit(config.RequestsPerSecond), config.Burst)
	httpClient.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
		return rateLimiter.Wait(req.Context())
	})

	telemetry.InstrumentResty(httpClient, tel)

	if config.DumpDir != "" {
		output, err := restyutil.NewFilesystemOutput(config.DumpDir)
		if err != nil {
			return Client{}, fmt.Errorf("dump dir: %w", err)
		}
		restyutil.DumpResponses(httpClient, output)
	}

	return Client{
		baseUrl: parsedBaseUrl,
		http:    httpClient,
		tel:     tel,
	}, nil
}

// PageURL returns the url of the page with the given id.
func (c Client) PageURL(id string) string {
	return c.baseUrl.JoinPath("pages", id+".html").String()
}

// Fetch downloads and parses a page, any failure is an *AcquisitionError.
func (c Client) Fetch(ctx context.Context, link string) (htmlutil.Document, error) {
	ctx, span := tracer.Start(ctx, "client:Fetch")
	defer span.End()
	span.SetAttributes(attribute.String("url", link))

	fail := func(err error) (htmlutil.Document, error) {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to acquire page")
		return nil, &AcquisitionError{URL: link, Err: err}
	}

	res, err := c.http.R().
		SetContext(ctx).
		Get(link)
	if err != nil {
		c.tel.ReportBroken(report_client_fetch, fmt.Errorf("request: %w", err), link)
		return fail(err)
	}
	if res.IsError() {
		err = fmt.Errorf("unexpected status: %s", res.Status())
		c.tel.ReportBroken(report_client_fetch, err, link)
		return fail(err)
	}

	doc, err := htmlutil.ParseDocument(bytes.NewBuffer(res.Body()))
	if err != nil {
		c.tel.ReportBroken(report_client_fetch, fmt.Errorf("parse html: %w", err), link)
		return fail(err)
	}
	return doc, nil
}
