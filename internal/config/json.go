package config

import (
	"encoding/json"
	"os"

	"github.com/mkoshelev/lockvault/internal/flagx"
	"github.com/mkoshelev/lockvault/internal/timex"
)

// JsonConfig mirrors Config for JSON unmarshalling. Interval fields use
// timex.Duration so both "720h" strings and integer nanoseconds parse.
// It is an intermediate DTO; after unmarshalling its fields are copied into
// the runtime Config.
type JsonConfig struct {
	Store                string         `json:"store"`
	FileRoot             string         `json:"file_root"`
	SQLitePath           string         `json:"sqlite_path"`
	DatabaseDSN          string         `json:"database_dsn"`
	S3RootUser           string         `json:"s3_root_user"`
	S3RootPassword       string         `json:"s3_root_password"`
	S3Bucket             string         `json:"s3_bucket"`
	S3Region             string         `json:"s3_region"`
	S3BaseEndpoint       string         `json:"s3_base_endpoint"`
	SessionSecret        string         `json:"session_secret"`
	SessionTokenValidity timex.Duration `json:"session_token_validity"`
}

// parseJson overlays values from the JSON file named by the -c/-config
// flags, if any. A missing flag means no file is loaded; an unreadable or
// invalid file panics, since running with half-applied configuration is
// worse than not starting.
func parseJson(config *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	config.Store = c.Store
	config.FileRoot = c.FileRoot
	config.SQLitePath = c.SQLitePath
	config.DatabaseDSN = c.DatabaseDSN
	config.S3RootUser = c.S3RootUser
	config.S3RootPassword = c.S3RootPassword
	config.S3Bucket = c.S3Bucket
	config.S3Region = c.S3Region
	config.S3BaseEndpoint = c.S3BaseEndpoint
	config.SessionSecret = c.SessionSecret
	config.SessionTokenValidity = c.SessionTokenValidity.Duration
}
