package vector

import (
	"go.llib.dev/frameless/pkg/env"
	"go.llib.dev/frameless/pkg/logging"
	"go.llib.dev/frameless/pkg/zerokit"
	"go.llib.dev/frameless/port/option"
)

// Config holds the tunables of a Vector.
type Config struct {
	// MaxCapacity is the largest capacity the buffer may grow to.
	// Any growth past it is reported as ErrOutOfMemory.
	// Zero means that only the platform limit applies.
	MaxCapacity int `env:"VECTOR_MAX_CAPACITY"`
	// Logger receives the reallocation events.
	// When nil, the package level logger.Default is used.
	Logger *logging.Logger
}

func (c Config) Configure(t *Config) {
	t.MaxCapacity = zerokit.Coalesce(c.MaxCapacity, t.MaxCapacity)
	t.Logger = zerokit.Coalesce(c.Logger, t.Logger)
}

type Option option.Option[Config]

// MaxCapacity caps the buffer growth of the Vector.
func MaxCapacity(n int) Option {
	return option.Func[Config](func(c *Config) {
		c.MaxCapacity = n
	})
}

// WithLogger routes the reallocation events of the Vector to l.
func WithLogger(l *logging.Logger) Option {
	return option.Func[Config](func(c *Config) {
		c.Logger = l
	})
}

// LoadConfig reads the Config from the environment.
//
//	VECTOR_MAX_CAPACITY  upper bound for the buffer capacity (default: unbounded)
func LoadConfig() (Config, error) {
	var c Config
	if err := env.Load(&c); err != nil {
		return Config{}, err
	}
	if c.MaxCapacity < 0 {
		return Config{}, ErrInvalidConfig.F("VECTOR_MAX_CAPACITY must not be negative: %d", c.MaxCapacity)
	}
	return c, nil
}

func toConfig(opts []Option) Config {
	return option.ToConfig[Config](opts)
}
