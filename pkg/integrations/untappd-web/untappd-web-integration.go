// Package untappdweb scrapes beer and brewery metadata from the Untappd
// website. There is no public API; the scraper reads the ld+json blocks the
// site embeds for search engines, falling back to page content.
package untappdweb

import (
	"net/url"
	"strings"

	"github.com/gocolly/colly/v2"
	"go.uber.org/zap"
)

const (
	IntegrationName = "untappd_web"

	defaultBaseURL = "https://untappd.com"
	userAgent      = "Mozilla/5.0 (X11; Ubuntu; Linux x86_64; rv:15.0) Gecko/20100101 Firefox/15.0.1"
)

type Integration struct {
	logger  *zap.Logger
	baseURL string
}

type Option func(*Integration)

// WithBaseURL points the scraper somewhere other than the live site. Tests
// use it to serve recorded pages from a local server.
func WithBaseURL(baseURL string) Option {
	return func(i *Integration) {
		i.baseURL = strings.TrimSuffix(baseURL, "/")
	}
}

func New(logger *zap.Logger, options ...Option) *Integration {
	integration := &Integration{logger: logger, baseURL: defaultBaseURL}

	for _, option := range options {
		option(integration)
	}

	return integration
}

func (i *Integration) newCollector() *colly.Collector {
	options := []colly.CollectorOption{colly.UserAgent(userAgent)}

	if parsed, err := url.Parse(i.baseURL); err == nil && parsed.Hostname() != "" {
		options = append(options, colly.AllowedDomains(parsed.Hostname(), parsed.Host))
	}

	return colly.NewCollector(options...)
}

// lastPathSegment pulls the numeric id off links like /b/brewery-beer/4086.
func lastPathSegment(link string) string {
	return link[strings.LastIndex(link, "/")+1:]
}
