package mailer

import (
	"fmt"
	"time"
)

// Config holds the delivery engine knobs and the platform identity injected
// into every template context. Connection parameters (host, credentials,
// timeout) live on the transport configuration.
type Config struct {
	// FromAddress is the sender of every outbound message.
	FromAddress string `env:"EMAIL_FROM_ADDRESS,required"`

	BatchSize     int           `env:"EMAIL_BATCH_SIZE" envDefault:"50"`
	RetryAttempts int           `env:"EMAIL_RETRY_ATTEMPTS" envDefault:"3"`
	RetryDelay    time.Duration `env:"EMAIL_RETRY_DELAY" envDefault:"5s"`
	MaxRecipients int           `env:"EMAIL_MAX_RECIPIENTS" envDefault:"50"`
	PoolSize      int           `env:"EMAIL_POOL_SIZE" envDefault:"5"`

	// AsyncEnabled gates fire-and-forget sends; with it off every send is
	// synchronous regardless of SendParams.Async.
	AsyncEnabled bool `env:"EMAIL_ASYNC_ENABLED" envDefault:"true"`

	// Platform metadata, exposed to templates as site_name, company_address,
	// support_email and unsubscribe_link.
	PlatformName    string `env:"EMAIL_PLATFORM_NAME" envDefault:"Sendkit"`
	PlatformAddress string `env:"EMAIL_PLATFORM_ADDRESS"`
	SupportEmail    string `env:"EMAIL_SUPPORT_EMAIL"`
	UnsubscribeLink string `env:"EMAIL_UNSUBSCRIBE_LINK"`
}

// Validate reports configuration the engine cannot run with.
func (c Config) Validate() error {
	if c.FromAddress == "" {
		return fmt.Errorf("%w: FromAddress is required", ErrInvalidConfig)
	}
	if !ValidAddress(c.FromAddress) {
		return fmt.Errorf("%w: FromAddress must be a valid email address", ErrInvalidConfig)
	}
	if c.BatchSize < 1 {
		return fmt.Errorf("%w: BatchSize must be positive", ErrInvalidConfig)
	}
	if c.MaxRecipients < 1 {
		return fmt.Errorf("%w: MaxRecipients must be positive", ErrInvalidConfig)
	}
	if c.PoolSize < 1 {
		return fmt.Errorf("%w: PoolSize must be positive", ErrInvalidConfig)
	}
	if c.RetryAttempts < 0 {
		return fmt.Errorf("%w: RetryAttempts must not be negative", ErrInvalidConfig)
	}
	if c.RetryDelay < 0 {
		return fmt.Errorf("%w: RetryDelay must not be negative", ErrInvalidConfig)
	}
	return nil
}
