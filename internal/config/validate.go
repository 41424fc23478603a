// internal/config/validate.go
package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/altuslabsxyz/questline/pkg/scval"
)

// ValidLogLevels are the allowed log level values.
var ValidLogLevels = []string{"debug", "info", "warn", "error"}

// ValidLogFormats are the allowed log output formats.
var ValidLogFormats = []string{"text", "json"}

func oneOf(v string, allowed []string) bool {
	for _, a := range allowed {
		if v == a {
			return true
		}
	}
	return false
}

func validHTTPURL(raw string) bool {
	u, err := url.Parse(raw)
	return err == nil && (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// Validate validates the configuration and returns every problem found.
func Validate(cfg *Config) error {
	var errs []string

	// Network
	if !validHTTPURL(cfg.Network.RPCURL) {
		errs = append(errs, fmt.Sprintf("rpc_url %q must be an http(s) URL", cfg.Network.RPCURL))
	}
	if cfg.Network.Passphrase == "" {
		errs = append(errs, "passphrase is required")
	}
	if cfg.Network.RequestTimeout <= 0 {
		errs = append(errs, "request_timeout must be positive")
	}

	// Contracts may be unset until a command needs them.
	for _, c := range []struct{ key, id string }{
		{"quest_platform", cfg.Contracts.QuestPlatform},
		{"badge_nft", cfg.Contracts.BadgeNFT},
		{"reward_token", cfg.Contracts.RewardToken},
	} {
		if c.id != "" && !scval.IsContractAddress(c.id) {
			errs = append(errs, fmt.Sprintf("contracts.%s %q is not a contract id", c.key, c.id))
		}
	}

	// Wallet
	switch cfg.Wallet.Mode {
	case WalletModeAgent:
		if !validHTTPURL(cfg.Wallet.AgentURL) {
			errs = append(errs, fmt.Sprintf("agent_url %q must be an http(s) URL", cfg.Wallet.AgentURL))
		}
	case WalletModePrompt:
	default:
		errs = append(errs, fmt.Sprintf("invalid wallet mode %q (must be one of: %s, %s)",
			cfg.Wallet.Mode, WalletModeAgent, WalletModePrompt))
	}

	// Submission
	if cfg.Submission.PollInterval <= 0 {
		errs = append(errs, "poll_interval must be positive")
	}
	if cfg.Submission.Timeout <= 0 {
		errs = append(errs, "timeout must be positive")
	}
	if cfg.Submission.Timeout > 0 && cfg.Submission.PollInterval > cfg.Submission.Timeout {
		errs = append(errs, "poll_interval must not exceed timeout")
	}
	if cfg.Submission.BaseFee < 1 {
		errs = append(errs, "base_fee must be at least 1")
	}

	// Server
	if !oneOf(cfg.Server.LogLevel, ValidLogLevels) {
		errs = append(errs, fmt.Sprintf("invalid log_level %q (must be one of: %s)",
			cfg.Server.LogLevel, strings.Join(ValidLogLevels, ", ")))
	}
	if !oneOf(cfg.Server.LogFormat, ValidLogFormats) {
		errs = append(errs, fmt.Sprintf("invalid log_format %q (must be one of: %s)",
			cfg.Server.LogFormat, strings.Join(ValidLogFormats, ", ")))
	}

	// Storage
	if cfg.Storage.DataDir == "" {
		errs = append(errs, "data_dir is required")
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(errs, "\n  - "))
	}
	return nil
}

// RequireContracts reports which of the named contract ids are unset.
func RequireContracts(cfg *Config, names ...string) error {
	var missing []string
	for _, name := range names {
		var id string
		switch name {
		case "quest_platform":
			id = cfg.Contracts.QuestPlatform
		case "badge_nft":
			id = cfg.Contracts.BadgeNFT
		case "reward_token":
			id = cfg.Contracts.RewardToken
		}
		if id == "" {
			missing = append(missing, "contracts."+name)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing contract configuration: %s", strings.Join(missing, ", "))
	}
	return nil
}
