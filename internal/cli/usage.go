package cli

import (
	"fmt"
	"io"
)

const usageText = `Fetch and print plain text song lyrics from genius.com.

Available options:

--help                       Print this help text and exit.
--title  <title>  (required) Title of the song to search lyrics for.
--artist <artist> (optional) Restrict search results by the name of the song's
                             artist.
--url    <url>    (optional) Rather than searching, fetch lyrics from this
                             genius.com url directly. If present ` + "`--artist`" + `,
                             ` + "`--title`" + `, and ` + "`--list`" + ` will be ignored.
--list   [count]  (optional) Print list of [count] (default 20) genius.com search
                             results, rather than song lyrics. Useful for
                             further filtering, manually or through external tools.

Environment:

LYRICAL_TOKEN                Genius API access token. Defaults to the first line
                             of $XDG_CONFIG_HOME/lyrical/token.
LYRICAL_LOG_LEVEL            debug, info, warn or error (default info).
LYRICAL_REDIS_URL            Cache search results in redis when set.
`

// Usage writes the help text to w
func Usage(w io.Writer) {
	fmt.Fprint(w, usageText)
}
