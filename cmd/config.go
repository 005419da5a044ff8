package cmd

import "time"

// Config carries all runtime settings the application reads from the
// environment.
type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	RedisURL string
	CartTTL  time.Duration

	ResolverDegradedFallback bool
	PendingReminderAge       time.Duration
}
