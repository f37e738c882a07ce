package genius

import "fmt"

// NoResultsError is returned by SearchLyrics when nothing matched.
// Query has the form "{artist} - {title}".
type NoResultsError struct {
	Query string
}

func (e *NoResultsError) Error() string {
	return fmt.Sprintf("No lyrics found for `%s`", e.Query)
}
