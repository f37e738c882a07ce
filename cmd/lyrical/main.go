package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/sukalov/lyrical/internal/cli"
	"github.com/sukalov/lyrical/internal/config"
	"github.com/sukalov/lyrical/internal/genius"
	"github.com/sukalov/lyrical/internal/logger"
	"github.com/sukalov/lyrical/internal/lyrics"
	"github.com/sukalov/lyrical/internal/redis"
	"github.com/sukalov/lyrical/internal/transport"
)

func main() {
	config.LoadDotEnv()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	settings, err := config.FromEnv(os.Getenv)
	if err != nil {
		fmt.Fprintln(os.Stdout, err)
		return
	}

	setupLogger(settings)

	a := &app{
		settings:  settings,
		http:      transport.NewClient(),
		readFile:  os.ReadFile,
		stdout:    os.Stdout,
		openCache: openRedisCache,
	}
	a.run(ctx, os.Args)
}

func setupLogger(settings config.Settings) {
	cfg := logger.Config{
		Level:  logger.ParseLevel(settings.LogLevel),
		Output: os.Stderr,
	}

	if settings.LogForwardingEnabled() {
		bot, err := logger.NewTelegramClient(settings.LogBotToken)
		if err != nil {
			fmt.Fprintf(os.Stderr, "log forwarding disabled: %v\n", err)
		} else {
			cfg.Bot = bot
			cfg.ChannelID = settings.LogChannelID
		}
	}

	logger.Init(cfg)
}

type app struct {
	settings config.Settings
	http     *transport.Client
	readFile func(string) ([]byte, error)
	stdout   io.Writer

	// newCatalog and openCache are replaced in tests
	newCatalog func(token string) genius.Catalog
	openCache  func(address, password string) (searchCache, error)
}

type searchCache interface {
	genius.CacheStore
	io.Closer
}

func openRedisCache(address, password string) (searchCache, error) {
	cache, err := redis.NewCache(address, password)
	if err != nil {
		return nil, err
	}
	return cache, nil
}

// run never reports failure through the exit code: every error is printed
// as a single line and the process exits normally
func (a *app) run(ctx context.Context, rawArgs []string) {
	if err := a.execute(ctx, rawArgs); err != nil {
		fmt.Fprintln(a.stdout, err)
	}
}

func (a *app) execute(ctx context.Context, rawArgs []string) error {
	args, err := cli.Parse(rawArgs, a.stdout)
	if err != nil {
		return err
	}

	switch {
	case args.Help:
		cli.Usage(a.stdout)
		return nil
	case args.URL != nil:
		return a.printLyrics(ctx, *args.URL)
	}

	searcher, closeCache, err := a.searcher()
	if err != nil {
		return err
	}
	defer closeCache()

	if args.List {
		results, err := searcher.Search(ctx, args.Artist, args.Title, args.ListLimit())
		if err != nil {
			return err
		}
		fmt.Fprintln(a.stdout, strings.Join(results, "\n"))
		return nil
	}

	url, err := searcher.SearchLyrics(ctx, args.Artist, args.Title)
	if err != nil {
		var noResults *genius.NoResultsError
		if !errors.As(err, &noResults) {
			logger.Error(fmt.Sprintf("search for %s - %s failed: %v", args.Artist, args.Title, err))
		}
		return err
	}

	return a.printLyrics(ctx, url)
}

func (a *app) printLyrics(ctx context.Context, url string) error {
	result, err := lyrics.NewService(a.http).ExtractLyrics(ctx, url)
	if err != nil {
		return err
	}

	fmt.Fprintln(a.stdout, lyrics.Format(result))
	return nil
}

// searcher builds the search pipeline. The returned func releases the cache
// connection and is always safe to call.
func (a *app) searcher() (*genius.Searcher, func(), error) {
	token, err := a.settings.LoadToken(a.readFile)
	if err != nil {
		return nil, nil, err
	}

	var catalog genius.Catalog
	if a.newCatalog != nil {
		catalog = a.newCatalog(token)
	} else {
		catalog = genius.NewClient(a.http, token)
	}

	closeCache := func() {}
	if a.settings.CacheEnabled() && a.openCache != nil {
		cache, err := a.openCache(a.settings.RedisURL, a.settings.RedisPassword)
		if err != nil {
			logger.Warn(fmt.Sprintf("search cache disabled: %v", err))
		} else {
			catalog = genius.NewCachedCatalog(catalog, cache, a.settings.CacheTTL)
			closeCache = func() {
				if err := cache.Close(); err != nil {
					logger.Warn(fmt.Sprintf("failed to close search cache: %v", err))
				}
			}
		}
	}

	return genius.NewSearcher(catalog), closeCache, nil
}
