// internal/config/loader.go
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// ConfigFileName is the default config file name.
const ConfigFileName = "questctl.toml"

// Environment variable names
const (
	EnvRPCURL         = "QUESTLINE_RPC_URL"
	EnvPassphrase     = "QUESTLINE_NETWORK_PASSPHRASE"
	EnvRequestTimeout = "QUESTLINE_REQUEST_TIMEOUT"

	EnvQuestContract = "QUESTLINE_QUEST_CONTRACT"
	EnvBadgeContract = "QUESTLINE_BADGE_CONTRACT"
	EnvTokenContract = "QUESTLINE_TOKEN_CONTRACT"

	EnvWalletMode = "QUESTLINE_WALLET_MODE"
	EnvAgentURL   = "QUESTLINE_AGENT_URL"

	EnvPollInterval  = "QUESTLINE_POLL_INTERVAL"
	EnvSubmitTimeout = "QUESTLINE_SUBMIT_TIMEOUT"
	EnvBaseFee       = "QUESTLINE_BASE_FEE"

	EnvListen    = "QUESTLINE_LISTEN"
	EnvLogLevel  = "QUESTLINE_LOG_LEVEL"
	EnvLogFormat = "QUESTLINE_LOG_FORMAT"

	EnvDataDir = "QUESTLINE_DATA_DIR"
)

// DefaultConfigPath returns ~/.questline/questctl.toml.
func DefaultConfigPath() string {
	return filepath.Join(DefaultDataDir(), ConfigFileName)
}

// Flags are CLI overrides. Empty fields are not set.
type Flags struct {
	RPCURL     string
	Passphrase string
	WalletMode string
	AgentURL   string
	Listen     string
	LogLevel   string
	LogFormat  string
	DataDir    string
}

// Loader loads configuration from file, environment, and flags on top of
// defaults.
type Loader struct {
	configPath string // explicit config path (empty = use default)
	flags      Flags
}

// NewLoader creates a new config loader. An explicit configPath must exist;
// the default path may be absent.
func NewLoader(configPath string) *Loader {
	return &Loader{configPath: configPath}
}

// WithFlags sets the CLI overrides applied last.
func (l *Loader) WithFlags(flags Flags) *Loader {
	l.flags = flags
	return l
}

// Path returns the config file the loader reads.
func (l *Loader) Path() string {
	if l.configPath != "" {
		return l.configPath
	}
	return DefaultConfigPath()
}

// Load loads configuration with priority: defaults < file < env < flags.
// Malformed values in any layer are reported together.
func (l *Loader) Load() (*Config, error) {
	cfg := DefaultConfig()

	fileCfg, err := l.loadFile()
	if err != nil {
		return nil, err
	}

	var errs []string
	if fileCfg != nil {
		errs = append(errs, mergeFileConfig(cfg, fileCfg)...)
	}
	errs = append(errs, applyEnvVars(cfg)...)
	l.flags.Apply(cfg)

	if len(errs) > 0 {
		return nil, fmt.Errorf("invalid configuration:\n  - %s", strings.Join(errs, "\n  - "))
	}
	return cfg, nil
}

// loadFile loads and parses the config file.
// Returns nil if the default config file does not exist.
func (l *Loader) loadFile() (*FileConfig, error) {
	path := l.Path()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && l.configPath == "" {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var fileCfg FileConfig
	if err := toml.Unmarshal(data, &fileCfg); err != nil {
		return nil, fmt.Errorf("invalid TOML in %s: %w", path, err)
	}
	return &fileCfg, nil
}

func parseDuration(key, value string, dst *time.Duration) string {
	d, err := time.ParseDuration(value)
	if err != nil {
		return fmt.Sprintf("%s: invalid duration %q", key, value)
	}
	*dst = d
	return ""
}

// mergeFileConfig merges non-nil FileConfig values into Config.
func mergeFileConfig(cfg *Config, file *FileConfig) []string {
	var errs []string
	add := func(msg string) {
		if msg != "" {
			errs = append(errs, msg)
		}
	}

	// Network
	if file.Network.RPCURL != nil {
		cfg.Network.RPCURL = *file.Network.RPCURL
	}
	if file.Network.Passphrase != nil {
		cfg.Network.Passphrase = *file.Network.Passphrase
	}
	if file.Network.RequestTimeout != nil {
		add(parseDuration("network.request_timeout", *file.Network.RequestTimeout, &cfg.Network.RequestTimeout))
	}

	// Contracts
	if file.Contracts.QuestPlatform != nil {
		cfg.Contracts.QuestPlatform = *file.Contracts.QuestPlatform
	}
	if file.Contracts.BadgeNFT != nil {
		cfg.Contracts.BadgeNFT = *file.Contracts.BadgeNFT
	}
	if file.Contracts.RewardToken != nil {
		cfg.Contracts.RewardToken = *file.Contracts.RewardToken
	}

	// Wallet
	if file.Wallet.Mode != nil {
		cfg.Wallet.Mode = *file.Wallet.Mode
	}
	if file.Wallet.AgentURL != nil {
		cfg.Wallet.AgentURL = *file.Wallet.AgentURL
	}

	// Submission
	if file.Submission.PollInterval != nil {
		add(parseDuration("submission.poll_interval", *file.Submission.PollInterval, &cfg.Submission.PollInterval))
	}
	if file.Submission.Timeout != nil {
		add(parseDuration("submission.timeout", *file.Submission.Timeout, &cfg.Submission.Timeout))
	}
	if file.Submission.BaseFee != nil {
		cfg.Submission.BaseFee = *file.Submission.BaseFee
	}

	// Server
	if file.Server.Listen != nil {
		cfg.Server.Listen = *file.Server.Listen
	}
	if file.Server.LogLevel != nil {
		cfg.Server.LogLevel = *file.Server.LogLevel
	}
	if file.Server.LogFormat != nil {
		cfg.Server.LogFormat = *file.Server.LogFormat
	}

	// Storage
	if file.Storage.DataDir != nil {
		cfg.Storage.DataDir = *file.Storage.DataDir
	}

	return errs
}

// applyEnvVars applies environment variable overrides to config.
func applyEnvVars(cfg *Config) []string {
	var errs []string
	add := func(msg string) {
		if msg != "" {
			errs = append(errs, msg)
		}
	}

	if v := os.Getenv(EnvRPCURL); v != "" {
		cfg.Network.RPCURL = v
	}
	if v := os.Getenv(EnvPassphrase); v != "" {
		cfg.Network.Passphrase = v
	}
	if v := os.Getenv(EnvRequestTimeout); v != "" {
		add(parseDuration(EnvRequestTimeout, v, &cfg.Network.RequestTimeout))
	}

	if v := os.Getenv(EnvQuestContract); v != "" {
		cfg.Contracts.QuestPlatform = v
	}
	if v := os.Getenv(EnvBadgeContract); v != "" {
		cfg.Contracts.BadgeNFT = v
	}
	if v := os.Getenv(EnvTokenContract); v != "" {
		cfg.Contracts.RewardToken = v
	}

	if v := os.Getenv(EnvWalletMode); v != "" {
		cfg.Wallet.Mode = v
	}
	if v := os.Getenv(EnvAgentURL); v != "" {
		cfg.Wallet.AgentURL = v
	}

	if v := os.Getenv(EnvPollInterval); v != "" {
		add(parseDuration(EnvPollInterval, v, &cfg.Submission.PollInterval))
	}
	if v := os.Getenv(EnvSubmitTimeout); v != "" {
		add(parseDuration(EnvSubmitTimeout, v, &cfg.Submission.Timeout))
	}
	if v := os.Getenv(EnvBaseFee); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			cfg.Submission.BaseFee = n
		} else {
			add(fmt.Sprintf("%s: invalid integer %q", EnvBaseFee, v))
		}
	}

	if v := os.Getenv(EnvListen); v != "" {
		cfg.Server.Listen = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.Server.LogLevel = v
	}
	if v := os.Getenv(EnvLogFormat); v != "" {
		cfg.Server.LogFormat = v
	}

	if v := os.Getenv(EnvDataDir); v != "" {
		cfg.Storage.DataDir = v
	}

	return errs
}

// Apply copies the set flags onto cfg.
func (f Flags) Apply(cfg *Config) {
	if f.RPCURL != "" {
		cfg.Network.RPCURL = f.RPCURL
	}
	if f.Passphrase != "" {
		cfg.Network.Passphrase = f.Passphrase
	}
	if f.WalletMode != "" {
		cfg.Wallet.Mode = f.WalletMode
	}
	if f.AgentURL != "" {
		cfg.Wallet.AgentURL = f.AgentURL
	}
	if f.Listen != "" {
		cfg.Server.Listen = f.Listen
	}
	if f.LogLevel != "" {
		cfg.Server.LogLevel = f.LogLevel
	}
	if f.LogFormat != "" {
		cfg.Server.LogFormat = f.LogFormat
	}
	if f.DataDir != "" {
		cfg.Storage.DataDir = f.DataDir
	}
}
