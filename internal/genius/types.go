package genius

// KindSong is the hit type of song entries in search results
const KindSong = "song"

// PageSize is the number of hits requested per catalog query
const PageSize = 20

// CatalogEntry is one ranked hit returned by the catalog search
type CatalogEntry struct {
	Kind              string  `json:"type"`
	ArtistNames       *string `json:"artist_names,omitempty"`
	TitleWithFeatured *string `json:"title_with_featured,omitempty"`
	URL               string  `json:"url"`
}

// searchResponse mirrors the parts of the /search payload we read
type searchResponse struct {
	Meta struct {
		Status  int    `json:"status"`
		Message string `json:"message"`
	} `json:"meta"`
	Response struct {
		Hits []searchHit `json:"hits"`
	} `json:"response"`
}

type searchHit struct {
	Type   string `json:"type"`
	Result *struct {
		ArtistNames       *string `json:"artist_names"`
		TitleWithFeatured *string `json:"title_with_featured"`
		URL               *string `json:"url"`
	} `json:"result"`
}
