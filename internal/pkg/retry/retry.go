package retry

import (
	"time"

	"github.com/avast/retry-go/v4"
)

const (
	defaultDelay    = 500 * time.Millisecond
	defaultMaxDelay = 4 * time.Second
)

type RetryConfig struct {
	Delay    time.Duration `env:"DELAY" envDefault:"500ms"`
	MaxDelay time.Duration `env:"MAX_DELAY" envDefault:"4s"`
}

// ToRetryOptions builds options for maxRetries retries on top of the first
// attempt. Only the last error is reported when all attempts fail.
func (rc *RetryConfig) ToRetryOptions(maxRetries uint) []retry.Option {
	return []retry.Option{
		retry.Attempts(maxRetries + 1),
		retry.Delay(rc.Delay),
		retry.MaxDelay(rc.MaxDelay),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(true),
	}
}

func DefaultRetryConfig() *RetryConfig {
	return &RetryConfig{
		Delay:    defaultDelay,
		MaxDelay: defaultMaxDelay,
	}
}
