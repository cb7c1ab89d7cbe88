package config

import (
	"flag"
	"os"
	"time"

	"github.com/mindfulapp/mindful/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   base URL of the backend REST collaborator (default from Config)
//	-i int      background refetch interval in seconds (default from Config)
//	-d string   sqlite DSN of the local cache database (default from Config)
//
// Note: The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	// Filter args to include only those handled here.
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-i", "-d"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerURL, "a", cfg.ServerURL, "base URL of the backend server")
	fs.StringVar(&cfg.CacheDSN, "d", cfg.CacheDSN, "sqlite DSN of the local cache")
	refetchInterval := fs.Int("i", int(cfg.RefetchInterval.Seconds()), "background refetch interval (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RefetchInterval = time.Duration(*refetchInterval) * time.Second
}
