package config

import (
	"flag"
	"os"
	"time"

	"github.com/mkoshelev/lockvault/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-s string   blob store backend (memory|file|sqlite|postgres|s3)
//	-f string   file backend root directory
//	-l string   sqlite backend database path
//	-d string   PostgreSQL DSN
//	-u string   S3 root user
//	-p string   S3 root password
//	-b string   S3 bucket name
//	-g string   S3 region
//	-e string   S3 base endpoint (e.g., "http://127.0.0.1:9000/")
//	-k string   session token HMAC secret
//	-t int      session token validity, hours
//
// The function first filters os.Args to only the flags it recognizes using
// flagx.FilterArgs, avoiding collisions with other components.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-s", "-f", "-l", "-d", "-u", "-p", "-b", "-g", "-e", "-k", "-t"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.Store, "s", config.Store, "blob store backend")
	fs.StringVar(&config.FileRoot, "f", config.FileRoot, "file backend root directory")
	fs.StringVar(&config.SQLitePath, "l", config.SQLitePath, "sqlite backend database path")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.S3RootUser, "u", config.S3RootUser, "S3 root user")
	fs.StringVar(&config.S3RootPassword, "p", config.S3RootPassword, "S3 root password")
	fs.StringVar(&config.S3Bucket, "b", config.S3Bucket, "S3 bucket")
	fs.StringVar(&config.S3Region, "g", config.S3Region, "S3 region")
	fs.StringVar(&config.S3BaseEndpoint, "e", config.S3BaseEndpoint, "S3 base endpoint")
	fs.StringVar(&config.SessionSecret, "k", config.SessionSecret, "session token secret key")

	sessionTokenValidity := fs.Int("t", int(config.SessionTokenValidity.Hours()), "session_token_validity (in hours)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.SessionTokenValidity = time.Duration(*sessionTokenValidity) * time.Hour
}
