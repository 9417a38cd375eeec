package cmd

import "time"

// Config carries the runtime settings read from the environment.
type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	RedisAddr   string
	AdminAPIKey string

	BusinessOpenHour   int
	BusinessCloseHour  int
	BusinessClosedDays []time.Weekday
	BusinessTimezone   string
	SkipBusinessHours  bool

	ThrottleLimit  int64
	ThrottleWindow time.Duration

	TxTimeout time.Duration
}
