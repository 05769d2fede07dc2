package config

import (
	"flag"
	"os"

	"github.com/wetrippo/wishlist/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   base URL of the remote wishlist API (default from Config)
//	-d string   local database path (default from Config)
//	-s string   public site root for share links (default from Config)
//
// Note: the function filters os.Args to only include the flags it knows
// about, using flagx.FilterArgs, to avoid interference with other packages.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-s"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.APIBaseURL, "a", cfg.APIBaseURL, "base URL of the wishlist API")
	fs.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "local database path")
	fs.StringVar(&cfg.ShareBaseURL, "s", cfg.ShareBaseURL, "public site root for share links")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
