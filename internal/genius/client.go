package genius

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/sukalov/lyrical/internal/logger"
	"github.com/sukalov/lyrical/internal/transport"
)

// DefaultBaseURL is the Genius API root
const DefaultBaseURL = "https://api.genius.com"

// Client queries the Genius search API. It implements Catalog.
type Client struct {
	http    *transport.Client
	token   string
	baseURL string
}

func NewClient(http *transport.Client, token string) *Client {
	return &Client{
		http:    http,
		token:   token,
		baseURL: DefaultBaseURL,
	}
}

// WithBaseURL points the client at another API root
func (c *Client) WithBaseURL(baseURL string) *Client {
	c.baseURL = baseURL
	return c
}

// Query runs a single page search and converts the hits to catalog entries
func (c *Client) Query(ctx context.Context, query string) ([]CatalogEntry, error) {
	logger.Debug(fmt.Sprintf("genius: searching for `%s`", query))

	var resp searchResponse
	err := c.http.GetJSON(ctx, transport.Request{
		URL: c.baseURL + "/search",
		Query: url.Values{
			"q":        {query},
			"per_page": {strconv.Itoa(PageSize)},
		},
		BearerToken: c.token,
	}, &resp)
	if err != nil {
		return nil, fmt.Errorf("genius search request failed: %w", err)
	}

	entries := make([]CatalogEntry, 0, len(resp.Response.Hits))
	for i, hit := range resp.Response.Hits {
		if hit.Result == nil {
			return nil, fmt.Errorf("genius search hit %d has no result", i)
		}

		entry := CatalogEntry{
			Kind:              hit.Type,
			ArtistNames:       hit.Result.ArtistNames,
			TitleWithFeatured: hit.Result.TitleWithFeatured,
		}
		if hit.Result.URL != nil {
			entry.URL = *hit.Result.URL
		}
		entries = append(entries, entry)
	}

	logger.Debug(fmt.Sprintf("genius: %d hits for `%s`", len(entries), query))
	return entries, nil
}
