package cli

import (
	"bufio"
	"context"
	"log"
	"os"
	"time"

	"github.com/mindfulapp/mindful/internal/client/ai"
	"github.com/mindfulapp/mindful/internal/client/api"
	"github.com/mindfulapp/mindful/internal/client/cache"
	"github.com/mindfulapp/mindful/internal/client/config"
	"github.com/mindfulapp/mindful/internal/client/store"
	"github.com/mindfulapp/mindful/internal/logging"
)

type App struct {
	config    *config.Config
	api       *api.RESTClient
	store     *store.Store
	cache     *cache.Cache
	gen       *ai.Generator
	log       logging.Logger
	reader    *bufio.Reader
	userName  string
	geminiKey string
}

func NewApp(c *config.Config) (*App, error) {
	ctx := context.Background()
	logger := logging.NewDefault()

	cch, err := cache.InitDatabase(ctx, c.CacheDSN)
	if err != nil {
		log.Printf("error initializing cache database: %s", err.Error())
		return nil, err
	}

	a := &App{
		config:    c,
		cache:     cch,
		log:       logger,
		reader:    bufio.NewReader(os.Stdin),
		geminiKey: c.GeminiAPIKey,
	}

	tokens := &api.TokenSource{}
	userName, access, refresh, err := cch.Session(ctx)
	if err != nil {
		log.Printf("error restoring session: %s", err.Error())
	} else if access != "" {
		tokens.Set(access, refresh)
		a.userName = userName
	}

	a.api = api.NewRESTClient(c.ServerURL,
		api.WithTokens(tokens),
		api.WithLogger(logger),
		api.WithGeminiKey(func() string { return a.geminiKey }),
	)
	a.store = store.New(a.api, store.WithLogger(logger), store.WithSnapshotter(cch))

	return a, nil
}

func (a *App) isLoggedIn() bool {
	return a.api.Tokens().Access() != ""
}

// generator lazily constructs the AI client; the key can be set at runtime
// via settings, so construction cannot happen in NewApp.
func (a *App) generator(ctx context.Context) (*ai.Generator, error) {
	if a.gen != nil {
		return a.gen, nil
	}
	g, err := ai.New(ctx, a.geminiKey, a.log)
	if err != nil {
		return nil, err
	}
	a.gen = g
	return g, nil
}

// setGeminiKey swaps the key used for both the collaborator header and the
// local generator. The generator is rebuilt on next use.
func (a *App) setGeminiKey(key string) {
	a.geminiKey = key
	a.gen = nil
}

// Run seeds the synchronizer from the cache, kicks off the initial refetch
// and the periodic watcher, and enters the REPL. It blocks until the user
// exits.
func (a *App) Run(ctx context.Context) {
	defer a.cache.Close()

	if err := a.store.Seed(ctx); err != nil {
		log.Printf("error seeding from cache: %s", err.Error())
	}

	log.Println("Welcome to Mindful CLI (type 'help' for commands)")

	if !a.isLoggedIn() {
		_ = a.Login(ctx)
	}

	if a.isLoggedIn() {
		go func() {
			if err := a.store.RefetchAllWithRetry(ctx); err != nil {
				log.Printf("initial refetch failed: %s", err.Error())
			}
		}()
	}

	go a.StartRefetchWatcher(ctx, a.config.RefetchInterval)

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}

func (a *App) getStatus() string {
	if a.userName != "" {
		return "(" + a.userName + ")"
	}
	return ""
}

// StartRefetchWatcher periodically re-pulls every collection so local state
// converges with the collaborator even after optimistic races.
func (a *App) StartRefetchWatcher(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if !a.isLoggedIn() {
				continue
			}
			rctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			if err := a.store.RefetchAll(rctx); err != nil {
				log.Printf("background refetch: %s", err.Error())
			}
			cancel()

		case <-ctx.Done():
			return
		}
	}
}
