package config

import "time"

// SetupConfig holds the defaults written into a new configuration file.
type SetupConfig struct {
	// MongoURI is the connection string written as MONGODB_URI.
	MongoURI string `mapstructure:"mongo_uri" default:"mongodb://localhost:27017/splitnest"`
	// AppURL is the web application URL written as NEXTAUTH_URL.
	AppURL string `mapstructure:"app_url" default:"http://localhost:3000"`
	// ProbeTimeoutSeconds bounds each runtime detection command.
	ProbeTimeoutSeconds int `mapstructure:"probe_timeout_seconds" default:"5"`
}

// ProbeTimeout returns the per-probe timeout, defaulting to 5 seconds.
func (c SetupConfig) ProbeTimeout() time.Duration {
	if c.ProbeTimeoutSeconds <= 0 {
		return 5 * time.Second
	}
	return time.Duration(c.ProbeTimeoutSeconds) * time.Second
}
