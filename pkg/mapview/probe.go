package mapview

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

const maxProbeBytes = 1 << 20

// Probe fetches each map page once and uses its <title> as the label.
// Pages that cannot be fetched keep the index type as their label. Probing
// stops once ctx is done.
func (c *Catalog) Probe(ctx context.Context, client *http.Client, timeout time.Duration, logger *slog.Logger) {
	if client == nil {
		client = http.DefaultClient
	}
	if logger == nil {
		logger = slog.Default()
	}
	for i, e := range c.entries {
		if ctx.Err() != nil {
			logger.Warn("map probe cancelled", "remaining", len(c.entries)-i)
			return
		}
		title, err := fetchTitle(ctx, client, timeout, e.URL)
		if err != nil {
			logger.Warn("map probe failed", "type", e.Type, "url", e.URL, "err", err)
			continue
		}
		if title != "" {
			c.entries[i].Label = e.Type + " " + title
		}
	}
}

func fetchTitle(ctx context.Context, client *http.Client, timeout time.Duration, u string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return "", err
	}
	resp, err := client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("status %d", resp.StatusCode)
	}
	if ct := strings.ToLower(resp.Header.Get("Content-Type")); ct != "" && !strings.Contains(ct, "text/html") {
		return "", fmt.Errorf("unsupported content-type: %s", ct)
	}
	doc, err := goquery.NewDocumentFromReader(io.LimitReader(resp.Body, maxProbeBytes))
	if err != nil {
		return "", err
	}
	return strings.Join(strings.Fields(doc.Find("title").First().Text()), " "), nil
}
