package genius

import (
	"context"
	"fmt"
	"strings"

	"github.com/sukalov/lyrical/internal/logger"
)

// annotationOpeners start the parenthetical part of a title, like "(Remix)"
const annotationOpeners = "({["

// Catalog runs a raw search and returns hits in relevance order, at most
// PageSize of them.
type Catalog interface {
	Query(ctx context.Context, query string) ([]CatalogEntry, error)
}

// Searcher resolves artist and title pairs to lyrics page URLs
type Searcher struct {
	catalog Catalog
}

func NewSearcher(catalog Catalog) *Searcher {
	return &Searcher{catalog: catalog}
}

// Search returns up to maxResults song URLs whose artist and title contain
// the given artist and title, case-insensitively, in catalog order. When
// nothing matches and the title carries an annotation such as "(Live)",
// the search is repeated once with the annotation cut off.
func (s *Searcher) Search(ctx context.Context, artist, title string, maxResults uint) ([]string, error) {
	artist = strings.ToLower(artist)
	title = strings.ToLower(title)

	entries, err := s.catalog.Query(ctx, artist+" "+title)
	if err != nil {
		return nil, fmt.Errorf("search failed: %w", err)
	}

	results := filterMatches(entries, artist, title, maxResults)
	if len(results) > 0 {
		return results, nil
	}

	cut := strings.IndexAny(title, annotationOpeners)
	if cut < 0 {
		return results, nil
	}

	title = strings.TrimSpace(title[:cut])
	query := artist + " - " + title
	logger.Info(fmt.Sprintf("No results found, retrying search with `%s`", query))

	entries, err = s.catalog.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("retried search failed: %w", err)
	}

	return filterMatches(entries, artist, title, maxResults), nil
}

// SearchLyrics returns the URL of the best match, or a *NoResultsError
func (s *Searcher) SearchLyrics(ctx context.Context, artist, title string) (string, error) {
	results, err := s.Search(ctx, artist, title, 1)
	if err != nil {
		return "", err
	}

	if len(results) == 0 {
		return "", &NoResultsError{Query: fmt.Sprintf("%s - %s", artist, title)}
	}

	return results[0], nil
}

// filterMatches expects artist and title to be lower-cased already
func filterMatches(entries []CatalogEntry, artist, title string, maxResults uint) []string {
	results := make([]string, 0, min(uint(len(entries)), maxResults))

	for _, entry := range entries {
		if uint(len(results)) >= maxResults {
			break
		}

		if entry.Kind != KindSong {
			continue
		}

		if artist != "" && !containsFold(entry.ArtistNames, artist) {
			continue
		}

		if !containsFold(entry.TitleWithFeatured, title) {
			continue
		}

		results = append(results, entry.URL)
	}

	return results
}

func containsFold(field *string, lowered string) bool {
	return field != nil && strings.Contains(strings.ToLower(*field), lowered)
}
