// internal/config/file.go
package config

// FileConfig represents the raw questctl.toml file contents.
// All fields are pointers to distinguish "not set" from "set to zero/false".
type FileConfig struct {
	Network    FileNetworkConfig    `toml:"network"`
	Contracts  FileContractsConfig  `toml:"contracts"`
	Wallet     FileWalletConfig     `toml:"wallet"`
	Submission FileSubmissionConfig `toml:"submission"`
	Server     FileServerConfig     `toml:"server"`
	Storage    FileStorageConfig    `toml:"storage"`
}

// FileNetworkConfig is the TOML representation of NetworkConfig.
// Durations are strings since TOML cannot decode directly to time.Duration.
type FileNetworkConfig struct {
	RPCURL         *string `toml:"rpc_url"`
	Passphrase     *string `toml:"passphrase"`
	RequestTimeout *string `toml:"request_timeout"`
}

// FileContractsConfig is the TOML representation of ContractsConfig.
type FileContractsConfig struct {
	QuestPlatform *string `toml:"quest_platform"`
	BadgeNFT      *string `toml:"badge_nft"`
	RewardToken   *string `toml:"reward_token"`
}

// FileWalletConfig is the TOML representation of WalletConfig.
type FileWalletConfig struct {
	Mode     *string `toml:"mode"`
	AgentURL *string `toml:"agent_url"`
}

// FileSubmissionConfig is the TOML representation of SubmissionConfig.
type FileSubmissionConfig struct {
	PollInterval *string `toml:"poll_interval"`
	Timeout      *string `toml:"timeout"`
	BaseFee      *int64  `toml:"base_fee"`
}

// FileServerConfig is the TOML representation of ServerConfig.
type FileServerConfig struct {
	Listen    *string `toml:"listen"`
	LogLevel  *string `toml:"log_level"`
	LogFormat *string `toml:"log_format"`
}

// FileStorageConfig is the TOML representation of StorageConfig.
type FileStorageConfig struct {
	DataDir *string `toml:"data_dir"`
}

// IsEmpty returns true if no configuration values are set.
func (f *FileConfig) IsEmpty() bool {
	return f.Network.RPCURL == nil &&
		f.Network.Passphrase == nil &&
		f.Network.RequestTimeout == nil &&
		f.Contracts.QuestPlatform == nil &&
		f.Contracts.BadgeNFT == nil &&
		f.Contracts.RewardToken == nil &&
		f.Wallet.Mode == nil &&
		f.Wallet.AgentURL == nil &&
		f.Submission.PollInterval == nil &&
		f.Submission.Timeout == nil &&
		f.Submission.BaseFee == nil &&
		f.Server.Listen == nil &&
		f.Server.LogLevel == nil &&
		f.Server.LogFormat == nil &&
		f.Storage.DataDir == nil
}

// ToFile converts an effective config into its file form, every field set.
func ToFile(cfg *Config) *FileConfig {
	str := func(s string) *string { return &s }
	fee := cfg.Submission.BaseFee
	return &FileConfig{
		Network: FileNetworkConfig{
			RPCURL:         str(cfg.Network.RPCURL),
			Passphrase:     str(cfg.Network.Passphrase),
			RequestTimeout: str(cfg.Network.RequestTimeout.String()),
		},
		Contracts: FileContractsConfig{
			QuestPlatform: str(cfg.Contracts.QuestPlatform),
			BadgeNFT:      str(cfg.Contracts.BadgeNFT),
			RewardToken:   str(cfg.Contracts.RewardToken),
		},
		Wallet: FileWalletConfig{
			Mode:     str(cfg.Wallet.Mode),
			AgentURL: str(cfg.Wallet.AgentURL),
		},
		Submission: FileSubmissionConfig{
			PollInterval: str(cfg.Submission.PollInterval.String()),
			Timeout:      str(cfg.Submission.Timeout.String()),
			BaseFee:      &fee,
		},
		Server: FileServerConfig{
			Listen:    str(cfg.Server.Listen),
			LogLevel:  str(cfg.Server.LogLevel),
			LogFormat: str(cfg.Server.LogFormat),
		},
		Storage: FileStorageConfig{
			DataDir: str(cfg.Storage.DataDir),
		},
	}
}
