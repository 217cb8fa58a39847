package cmd

import "time"

type Config struct {
	HTTPPort           string
	OrdersDir          string
	SessionIdleTimeout time.Duration
}
