package config

import (
	"fmt"

	"github.com/healthchain/healthchain-backend/internal/domain"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	pool, err := domain.ParseAddress(c.Reward.PoolAddress)
	if err != nil {
		return fmt.Errorf("reward.pool_address: %w", err)
	}
	c.Reward.PoolAddress = pool.String()

	treasury, err := domain.ParseAddress(c.Token.TreasuryAddress)
	if err != nil {
		return fmt.Errorf("token.treasury_address: %w", err)
	}
	c.Token.TreasuryAddress = treasury.String()

	operator, err := domain.ParseAddress(c.Exchange.OperatorAddress)
	if err != nil {
		return fmt.Errorf("exchange.operator_address: %w", err)
	}
	c.Exchange.OperatorAddress = operator.String()

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in (0, 65535] (got %d)", c.Server.Port)
	}

	return nil
}

// RewardPool returns the validated reward pool address.
func (c *Config) RewardPool() domain.Address {
	return domain.Address(c.Reward.PoolAddress)
}

// Treasury returns the validated treasury address.
func (c *Config) Treasury() domain.Address {
	return domain.Address(c.Token.TreasuryAddress)
}

// ExchangeOperator returns the validated exchange operator address.
func (c *Config) ExchangeOperator() domain.Address {
	return domain.Address(c.Exchange.OperatorAddress)
}
