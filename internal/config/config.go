// Package config loads application configuration from environment variables.
package config

// Config holds all runtime configuration values. Each field corresponds to
// an environment variable. Unlike a service with credentials to protect,
// everything here has a sensible default, so a bare environment still
// boots a working instance.
type Config struct {
    AppName     string // display name of the service
    AppVersion  string // semantic version reported by the welcome payload
    Description string // one-line description of the API
    Participant string // name shown in the welcome greeting
    Host        string // interface to bind the HTTP server on
    Port        string // HTTP port to listen on
    Env         string // application environment (e.g. "development", "production")

    AMQPURL       string // broker URL for usage events (empty keeps the broker default)
    UsageEvents   bool   // publish a usage event after each successful operation
    UsageConsumer bool   // run the background consumer that drains usage events
}

// Load reads configuration values from environment variables and returns a
// Config. Every value falls back to the defaults the service has always
// shipped with.
func Load() Config {
    return Config{
        AppName:     envStr("APP_NAME", "Token Generation API"),
        AppVersion:  envStr("APP_VERSION", "1.0.0"),
        Description: envStr("APP_DESCRIPTION", "API for generating tokens and checksums from text"),
        Participant: envStr("PARTICIPANT_NAME", "Deepak"),
        Host:        envStr("HOST", "0.0.0.0"),
        Port:        envStr("PORT", "8000"),
        Env:         envStr("ENVIRONMENT", "development"),

        AMQPURL:       envStr("RABBITMQ_URL", envStr("AMQP_URL", "")),
        UsageEvents:   envBool("USAGE_EVENTS_ENABLED", false),
        UsageConsumer: envBool("USAGE_CONSUMER_ENABLED", false),
    }
}

// Addr returns the host:port pair the HTTP server binds to.
func (c Config) Addr() string {
    return c.Host + ":" + c.Port
}
