package config

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if c.Auth.PasswordHashCost < bcrypt.MinCost || c.Auth.PasswordHashCost > bcrypt.MaxCost {
		return fmt.Errorf("auth.password_hash_cost must be between %d and %d (got %d)",
			bcrypt.MinCost, bcrypt.MaxCost, c.Auth.PasswordHashCost)
	}

	if c.LLM.Model == "" {
		return fmt.Errorf("llm.model must not be empty")
	}

	if c.Brief.JournalLimit <= 0 {
		return fmt.Errorf("brief.journal_limit must be > 0 (got %d)", c.Brief.JournalLimit)
	}
	if c.Brief.MaxTokens <= 0 {
		return fmt.Errorf("brief.max_tokens must be > 0 (got %d)", c.Brief.MaxTokens)
	}
	if c.Brief.SummaryMaxTokens <= 0 {
		return fmt.Errorf("brief.summary_max_tokens must be > 0 (got %d)", c.Brief.SummaryMaxTokens)
	}

	if c.Storage.MaxFileSize <= 0 {
		return fmt.Errorf("storage.max_file_size must be > 0 (got %d)", c.Storage.MaxFileSize)
	}

	return nil
}
