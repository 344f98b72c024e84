// backend/internal/scrapers/setam/client.go
package setam

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"
	"golang.org/x/net/html/charset"

	"github.com/ps-vitor/setam-sys/backend/pkg/logger"
)

var errEmptyDocument = errors.New("document is empty")

// Client fetches setam pages one at a time. It never retries.
type Client struct {
	http *resty.Client
	log  *logger.Logger
}

func NewClient(log *logger.Logger) *Client {
	if log == nil {
		log = logger.Discard()
	}
	return &Client{http: resty.New(), log: log}
}

// Fetch performs a single GET and returns the body decoded to UTF-8.
// Every failure is reported as a *FetchError.
func (c *Client) Fetch(ctx context.Context, url string) (string, error) {
	res, err := c.http.R().
		SetContext(ctx).
		Get(url)
	if err != nil {
		c.log.Debug("request failed", "url", url, "err", err)
		return "", &FetchError{URL: url, Err: err}
	}
	if !res.IsSuccess() {
		c.log.Debug("unexpected status", "url", url, "status", res.StatusCode())
		return "", &FetchError{
			URL:        url,
			StatusCode: res.StatusCode(),
			Err:        fmt.Errorf("status code error: %d", res.StatusCode()),
		}
	}

	text, err := decodeBody(res.Body(), res.Header().Get("Content-Type"))
	if err != nil {
		c.log.Debug("undecodable response", "url", url, "err", err)
		return "", &FetchError{URL: url, StatusCode: res.StatusCode(), Err: err}
	}
	return text, nil
}

// Document fetches url and builds its tree. A failed fetch never reaches
// the tree builder.
func (c *Client) Document(ctx context.Context, url string) (*goquery.Document, error) {
	text, err := c.Fetch(ctx, url)
	if err != nil {
		return nil, err
	}
	doc, err := BuildTree(text)
	if err != nil {
		var perr *ParseError
		if errors.As(err, &perr) {
			perr.URL = url
		}
		c.log.Debug("exception while building html tree", "url", url, "err", err)
		return nil, err
	}
	return doc, nil
}

// BuildTree parses markup into a queryable document. Blank input is a
// *ParseError rather than an empty tree.
func BuildTree(text string) (*goquery.Document, error) {
	if strings.TrimSpace(text) == "" {
		return nil, &ParseError{Err: errEmptyDocument}
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(text))
	if err != nil {
		return nil, &ParseError{Err: err}
	}
	return doc, nil
}

// decodeBody converts body to UTF-8. An empty body decodes to empty text so
// that BuildTree reports it as a parse failure.
func decodeBody(body []byte, contentType string) (string, error) {
	if len(body) == 0 {
		return "", nil
	}
	r, err := charset.NewReader(bytes.NewReader(body), contentType)
	if err != nil {
		return "", fmt.Errorf("detect charset: %w", err)
	}
	decoded, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("decode body: %w", err)
	}
	return string(decoded), nil
}
