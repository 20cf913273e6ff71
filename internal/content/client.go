package content

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"

	"bloomfront/internal/domain"
	applog "bloomfront/internal/log"
)

// Client talks to the content/catalog service. All requests are sequential
// from the caller's point of view; the optional limiter paces them.
type Client struct {
	base    string
	origin  string
	hc      *http.Client
	limiter *rate.Limiter
}

// New builds a client for the given absolute API base and origin. rps > 0
// enables pacing of upstream requests; 0 leaves them unthrottled.
func New(base, origin string, rps float64) *Client {
	var lim *rate.Limiter
	if rps > 0 {
		lim = rate.NewLimiter(rate.Limit(rps), 1)
	}
	return &Client{
		base:   base,
		origin: origin,
		hc: &http.Client{
			Timeout: 30 * time.Second,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		limiter: lim,
	}
}

// SiteContent fetches the combined content payload. Every section key is
// optional in the response.
func (c *Client) SiteContent(ctx context.Context) (*domain.SiteContent, error) {
	var sc domain.SiteContent
	if err := c.getJSON(ctx, c.base+"/site-content/", &sc); err != nil {
		return nil, err
	}
	return &sc, nil
}

// productPage is the DRF pagination envelope.
type productPage struct {
	Count    int              `json:"count"`
	Next     *string          `json:"next"`
	Previous *string          `json:"previous"`
	Results  []domain.Product `json:"results"`
}

// Products walks the paginated products resource end-to-end and returns the
// concatenated result set, optionally scoped to one category.
func (c *Client) Products(ctx context.Context, categoryID string) ([]domain.Product, error) {
	u := c.base + "/products/"
	if categoryID != "" {
		u += "?category=" + url.QueryEscape(categoryID)
	}
	return c.fetchAll(ctx, u)
}

// fetchAll follows the `next` cursor until the service stops returning one.
// No page ceiling is imposed; termination is the upstream's responsibility.
func (c *Client) fetchAll(ctx context.Context, startURL string) ([]domain.Product, error) {
	var all []domain.Product
	cursor := startURL
	page := 0
	for cursor != "" {
		page++
		reqURL := c.resolveRef(cursor)
		body, err := c.get(ctx, reqURL)
		if err != nil {
			return nil, err
		}
		results, next, err := decodePage(reqURL, body)
		if err != nil {
			return nil, err
		}
		all = append(all, results...)
		applog.Info(nil, "catalog.page", map[string]any{"page": page, "items": len(results), "more": next != ""})
		cursor = next
	}
	return all, nil
}

// decodePage accepts either a bare array (a single, final page) or the
// {count,next,previous,results} envelope.
func decodePage(reqURL string, body []byte) (results []domain.Product, next string, err error) {
	trimmed := bytes.TrimLeft(body, " \t\r\n")
	if len(trimmed) > 0 && trimmed[0] == '[' {
		if err := json.Unmarshal(trimmed, &results); err != nil {
			return nil, "", &DecodeError{URL: reqURL, Err: err}
		}
		return results, "", nil
	}
	var pg productPage
	if err := json.Unmarshal(trimmed, &pg); err != nil {
		return nil, "", &DecodeError{URL: reqURL, Err: err}
	}
	if pg.Next != nil {
		next = *pg.Next
	}
	return pg.Results, next, nil
}

func (c *Client) get(ctx context.Context, reqURL string) ([]byte, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, &NetworkError{URL: reqURL, Err: err}
		}
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, &NetworkError{URL: reqURL, Err: err}
	}
	req.Header.Set("Accept", "application/json")
	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, &NetworkError{URL: reqURL, Err: err}
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &NetworkError{URL: reqURL, Status: resp.StatusCode}
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &NetworkError{URL: reqURL, Err: err}
	}
	return body, nil
}

func (c *Client) getJSON(ctx context.Context, reqURL string, v any) error {
	body, err := c.get(ctx, reqURL)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, v); err != nil {
		return &DecodeError{URL: reqURL, Err: err}
	}
	return nil
}
