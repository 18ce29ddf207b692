package bootstrap

import (
	"time"

	"github.com/calinovidiu96/vending-machine/internal/pkg/database"
	"github.com/calinovidiu96/vending-machine/internal/pkg/env"
)

type VendingConfig struct {
	HttpPort   string                    `env:"HTTP_PORT" envDefault:":5001"`
	DbSettings database.PostgresSettings `envPrefix:"DB_"`
	LogLevel   int                       `env:"LOG_LEVEL" envDefault:"0"`

	JwtSecret string `env:"JWT_SECRET,required,notEmpty"`
	// JwtTTL of zero issues tokens that live as long as their session.
	JwtTTL             time.Duration `env:"JWT_TTL" envDefault:"0s"`
	SessionEnforcement bool          `env:"SESSION_ENFORCEMENT" envDefault:"true"`

	PurchaseMaxRetries uint64 `env:"PURCHASE_MAX_RETRIES" envDefault:"3"`
}

// LoadConfig reads the configuration from the environment, after seeding it
// from dotEnvFiles that exist.
func LoadConfig(dotEnvFiles ...string) (VendingConfig, error) {
	if err := env.LoadDotEnv(dotEnvFiles...); err != nil {
		return VendingConfig{}, err
	}

	return env.Parse[VendingConfig]()
}
