package scramblesuit

import (
	"crypto/rand"
	"errors"
	"os"
	"time"

	"github.com/scramblesuit/scramblesuit-go/internal/protocol"
	sslog "github.com/scramblesuit/scramblesuit-go/internal/slog"
)

// Clone clones a Config.
func (c *Config) Clone() *Config {
	copy := *c
	return &copy
}

func validateConfig(config *Config) error {
	if config == nil {
		return nil
	}
	if config.TicketLifetime < 0 {
		return errors.New("scramblesuit: Config.TicketLifetime must not be negative")
	}
	return nil
}

// populateConfig populates fields in the Config with their default values, if none are set.
// It may be called with nil.
func populateConfig(config *Config) *Config {
	if config == nil {
		config = &Config{}
	} else {
		config = config.Clone()
	}
	if config.Rand == nil {
		config.Rand = rand.Reader
	}
	if config.Time == nil {
		config.Time = time.Now
	}
	if config.TicketLifetime == 0 {
		config.TicketLifetime = protocol.DefaultTicketLifetime
	}
	if config.Logger == nil {
		config.Logger = sslog.NewLogger(os.Stderr)
	}
	return config
}
