// internal/config/config.go
package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/altuslabsxyz/questline/internal/contracts"
)

// Config is the single source of truth for questctl configuration.
// Priority: defaults < config file < environment variables < CLI flags
type Config struct {
	Network    NetworkConfig    `toml:"network"`
	Contracts  ContractsConfig  `toml:"contracts"`
	Wallet     WalletConfig     `toml:"wallet"`
	Submission SubmissionConfig `toml:"submission"`
	Server     ServerConfig     `toml:"server"`
	Storage    StorageConfig    `toml:"storage"`
}

// NetworkConfig holds ledger RPC settings.
type NetworkConfig struct {
	RPCURL         string        `toml:"rpc_url"`
	Passphrase     string        `toml:"passphrase"`
	RequestTimeout time.Duration `toml:"request_timeout"`
}

// ContractsConfig holds the deployed contract ids.
type ContractsConfig struct {
	QuestPlatform string `toml:"quest_platform"`
	BadgeNFT      string `toml:"badge_nft"`
	RewardToken   string `toml:"reward_token"`
}

// Addresses returns the ids in the form the contract schemas use.
func (c ContractsConfig) Addresses() contracts.Addresses {
	return contracts.Addresses{
		QuestPlatform: c.QuestPlatform,
		BadgeNFT:      c.BadgeNFT,
		RewardToken:   c.RewardToken,
	}
}

// Wallet modes.
const (
	WalletModeAgent  = "agent"
	WalletModePrompt = "prompt"
)

// WalletConfig selects the signing delegate.
type WalletConfig struct {
	Mode     string `toml:"mode"`
	AgentURL string `toml:"agent_url"`
}

// SubmissionConfig tunes fee preparation and confirmation polling.
type SubmissionConfig struct {
	PollInterval time.Duration `toml:"poll_interval"`
	Timeout      time.Duration `toml:"timeout"`
	BaseFee      int64         `toml:"base_fee"`
}

// ServerConfig holds JSON API and logging settings.
type ServerConfig struct {
	Listen    string `toml:"listen"`
	LogLevel  string `toml:"log_level"`
	LogFormat string `toml:"log_format"`
}

// StorageConfig holds the submission journal location.
type StorageConfig struct {
	DataDir string `toml:"data_dir"`
}

// Defaults for a local testnet setup.
const (
	DefaultRPCURL     = "https://soroban-testnet.stellar.org"
	DefaultPassphrase = "Test SDF Network ; September 2015"
	DefaultAgentURL   = "http://127.0.0.1:8765"
	DefaultListen     = "127.0.0.1:8080"
)

// DefaultDataDir returns the default data directory path.
func DefaultDataDir() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".questline")
}

// DefaultConfig returns configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Network: NetworkConfig{
			RPCURL:         DefaultRPCURL,
			Passphrase:     DefaultPassphrase,
			RequestTimeout: 30 * time.Second,
		},
		Wallet: WalletConfig{
			Mode:     WalletModeAgent,
			AgentURL: DefaultAgentURL,
		},
		Submission: SubmissionConfig{
			PollInterval: 2 * time.Second,
			Timeout:      60 * time.Second,
			BaseFee:      100,
		},
		Server: ServerConfig{
			Listen:    DefaultListen,
			LogLevel:  "info",
			LogFormat: "text",
		},
		Storage: StorageConfig{
			DataDir: DefaultDataDir(),
		},
	}
}
