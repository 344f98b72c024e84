// backend/internal/scraping/collectors/setam/collector.go
package setam

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/ps-vitor/setam-sys/backend/internal/config"
	"github.com/ps-vitor/setam-sys/backend/internal/domain"
	"github.com/ps-vitor/setam-sys/backend/pkg/logger"
)

// StartURL is the land-auction category listing the collector walks.
const StartURL = "https://setam.net.ua/neruhomist/zemlya/filters/state=102"

// DocumentSource fetches a page and returns its parsed tree.
type DocumentSource interface {
	Document(ctx context.Context, url string) (*goquery.Document, error)
}

type SetamCollector struct {
	source       DocumentSource
	layout       Layout
	labels       config.LabelConfig
	placeholders domain.Placeholders
	startURL     string
	log          *logger.Logger
}

var _ domain.Scraper = (*SetamCollector)(nil)

func NewSetamCollector(source DocumentSource, cfg config.SetamConfig, log *logger.Logger) *SetamCollector {
	if log == nil {
		log = logger.Discard()
	}
	return &SetamCollector{
		source:       source,
		layout:       NewLayout(cfg),
		labels:       cfg.Labels,
		placeholders: cfg.Placeholders,
		startURL:     StartURL,
		log:          log,
	}
}

// Run walks the listing page and extracts every detail page in discovery
// order. Only a failure to read the start page is returned as an error;
// broken listings are logged and reported in RunResult.Skipped.
func (c *SetamCollector) Run(ctx context.Context) (domain.RunResult, error) {
	links, err := c.Enumerate(ctx)
	if err != nil {
		return domain.RunResult{}, err
	}

	result := domain.RunResult{
		Listings: len(links),
		Records:  make([]domain.Record, 0, len(links)),
	}
	for _, link := range links {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		rec, err := c.Extract(ctx, link)
		if err != nil {
			c.log.Warn("listing skipped", "url", link, "err", err)
			result.Skipped = append(result.Skipped, domain.SkippedListing{URL: link, Err: err})
			continue
		}
		result.Records = append(result.Records, rec)
	}

	c.log.Info("run finished",
		"listings", result.Listings,
		"records", len(result.Records),
		"skipped", len(result.Skipped),
	)
	return result, nil
}

// Enumerate returns the absolute detail-page URLs of the listing block.
// An empty listing block yields an empty slice and no error.
func (c *SetamCollector) Enumerate(ctx context.Context) ([]string, error) {
	doc, err := c.source.Document(ctx, c.startURL)
	if err != nil {
		c.log.Error("start page unavailable", "url", c.startURL, "err", err)
		return nil, fmt.Errorf("%w: %w", ErrSiteUnreachable, err)
	}

	articles := c.layout.Articles(doc)
	links := make([]string, 0, articles.Length())
	var resolveErr error
	articles.EachWithBreak(func(i int, article *goquery.Selection) bool {
		href, ok := c.layout.ArticleLink(article)
		if !ok {
			c.log.Warn("article without link", "index", i)
			return true
		}
		link, err := ResolveLink(c.startURL, href)
		if err != nil {
			resolveErr = err
			return false
		}
		links = append(links, link)
		return true
	})
	if resolveErr != nil {
		return nil, resolveErr
	}

	if len(links) == 0 {
		c.log.Info("no listings found", "url", c.startURL)
	}
	return links, nil
}

// Extract fetches one detail page and assembles its record.
func (c *SetamCollector) Extract(ctx context.Context, link string) (domain.Record, error) {
	doc, err := c.source.Document(ctx, link)
	if err != nil {
		return domain.Record{}, err
	}
	return c.ExtractDocument(doc, link)
}

// ExtractDocument assembles the record of an already parsed detail page.
// It fails rather than return a record with missing columns.
func (c *SetamCollector) ExtractDocument(doc *goquery.Document, link string) (domain.Record, error) {
	fail := func(field string, err error) (domain.Record, error) {
		return domain.Record{}, &ExtractionError{URL: link, Field: field, Err: err}
	}

	blocks := c.layout.ItemBlocks(doc)
	if blocks.Length() < 2 {
		return fail("item blocks", fmt.Errorf("found %d item blocks, need a summary and a description block", blocks.Length()))
	}
	summary, details := blocks.Eq(0), blocks.Eq(1)

	rows := c.layout.DateRows(summary)
	if rows.Length() != domain.DateSlots {
		return fail("date rows", fmt.Errorf("found %d date rows, need %d", rows.Length(), domain.DateSlots))
	}
	var dates [domain.DateSlots]domain.Pair
	for i := range dates {
		pair, err := ParsePair(TextFragments(rows.Eq(i)))
		if err != nil {
			return fail(fmt.Sprintf("date row %d", i), err)
		}
		dates[i] = pair
	}

	price, err := ParsePair(TextFragments(c.layout.StartPrice(summary)))
	if err != nil {
		return fail("start price", err)
	}

	published, err := ParsePair(TextFragments(c.layout.PaymentRow(summary)))
	if err != nil {
		return fail("publicity date", err)
	}

	description := strings.Join(NormalizeFragments(OwnTextFragments(c.layout.DescriptionParagraphs(details))), " ")

	return domain.Record{
		Source:        domain.Pair{Label: c.labels.Source, Value: link},
		Dates:         dates,
		Description:   domain.Pair{Label: c.labels.Description, Value: description},
		StartPrice:    price,
		PublicityDate: published,
		Placeholders:  c.placeholders,
	}, nil
}

// ResolveLink makes href absolute against the scheme and host of startURL.
// Hrefs that already start with "http" are returned unchanged.
func ResolveLink(startURL, href string) (string, error) {
	root, err := siteRoot(startURL)
	if err != nil {
		return "", err
	}
	return joinRoot(root, href), nil
}

func siteRoot(startURL string) (string, error) {
	u, err := url.Parse(startURL)
	if err != nil {
		return "", fmt.Errorf("parse start url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return "", errors.New("start url must be absolute")
	}
	return u.Scheme + "://" + u.Host, nil
}

func joinRoot(root, href string) string {
	if strings.HasPrefix(href, "http") {
		return href
	}
	if !strings.HasPrefix(href, "/") {
		href = "/" + href
	}
	return root + href
}
