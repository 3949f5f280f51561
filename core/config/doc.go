// Package config provides configuration management for the SplitNest CLI.
//
// It combines three sources, highest precedence first:
//   - the configuration record in <dir>/.env.local (only MONGODB_URI is consumed)
//   - environment variables: MONGODB_URI and SPLITNEST_* for the tool's own settings
//   - defaults declared in `default` struct tags
//
// # Configuration Structure
//
// The Config struct is divided into subsections:
//   - Log: logging level and format
//   - Database: MongoDB URI, database/collection names and timeout
//   - Setup: defaults written into a new .env.local
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Database.URI)
package config
