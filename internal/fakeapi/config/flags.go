package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/devshowcase/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
//	-a string    listen address (e.g. ":5000")
//	-k string    JWT HMAC secret key
//	-ttl int     token validity, minutes
//	-l string    log level
//	-seed bool   load demo data
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-k", "-ttl", "-l", "-seed"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.Addr, "a", cfg.Addr, "address and port to run server")
	fs.StringVar(&cfg.SecretKey, "k", cfg.SecretKey, "secret key")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level (debug|info|warn|error)")
	fs.BoolVar(&cfg.Seed, "seed", cfg.Seed, "load demo data")
	ttl := fs.Int("ttl", int(cfg.TokenTTL.Minutes()), "token validity (in minutes)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.TokenTTL = time.Duration(*ttl) * time.Minute
}
