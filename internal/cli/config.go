package cli

import (
	"errors"
	"strings"
	"time"

	charmlog "github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	lserrors "github.com/matzehuels/licensescan/pkg/errors"
	"github.com/matzehuels/licensescan/pkg/integrations/github"
	"github.com/matzehuels/licensescan/pkg/integrations/pypi"
	"github.com/matzehuels/licensescan/pkg/pipeline"
	"github.com/matzehuels/licensescan/pkg/resolve"
)

const envPrefix = "LICENSESCAN"

// Configuration keys. Environment variables use the prefix and upper-case
// the key with dots replaced by underscores (LICENSESCAN_GITHUB_TOKEN).
const (
	keyGitHubToken    = "github.token"
	keyGitHubBaseURL  = "github.raw_base_url"
	keyPrimaryBranch  = "github.primary_branch"
	keyFallbackBranch = "github.fallback_branch"
	keyGitHubTimeout  = "github.timeout"
	keyPyPIBaseURL    = "pypi.base_url"
	keyPyPITimeout    = "pypi.timeout"
	keyBatchSize      = "resolve.batch_size"
	keyBatchDelay     = "resolve.batch_delay"
	keyServerAddr     = "server.addr"
	keyLogLevel       = "log.level"
)

const defaultServerAddr = ":8080"

// Config is the merged view of defaults, config file, environment and flags.
type Config struct {
	GitHubToken    string
	GitHubBaseURL  string
	PrimaryBranch  string
	FallbackBranch string
	GitHubTimeout  time.Duration
	PyPIBaseURL    string
	PyPITimeout    time.Duration
	BatchSize      int
	BatchDelay     time.Duration
	ServerAddr     string
	LogLevel       string
}

// newConfig returns a viper instance with defaults and environment binding.
func newConfig() *viper.Viper {
	v := viper.New()
	v.SetDefault(keyGitHubBaseURL, github.DefaultRawBaseURL)
	v.SetDefault(keyPrimaryBranch, resolve.DefaultPrimaryBranch)
	v.SetDefault(keyFallbackBranch, resolve.DefaultFallbackBranch)
	v.SetDefault(keyGitHubTimeout, github.DefaultTimeout)
	v.SetDefault(keyPyPIBaseURL, pypi.DefaultBaseURL)
	v.SetDefault(keyPyPITimeout, pypi.DefaultTimeout)
	v.SetDefault(keyBatchSize, resolve.DefaultBatchSize)
	v.SetDefault(keyBatchDelay, resolve.DefaultBatchDelay)
	v.SetDefault(keyServerAddr, defaultServerAddr)
	v.SetDefault(keyLogLevel, "info")

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	_ = v.BindEnv(keyGitHubToken, envPrefix+"_GITHUB_TOKEN", "GITHUB_TOKEN")
	return v
}

// initConfig loads .env into the process environment and reads the config
// file. An explicit configFile must exist; the search path is optional.
func initConfig(v *viper.Viper, configFile string) error {
	_ = godotenv.Load()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return lserrors.Wrap(lserrors.ErrCodeInvalidInput, err, "read config file %s", configFile)
		}
		return nil
	}

	v.SetConfigName(appName)
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME/.config/" + appName)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return lserrors.Wrap(lserrors.ErrCodeInvalidInput, err, "read config file")
	}
	return nil
}

// loadConfig snapshots v into a Config.
func loadConfig(v *viper.Viper) Config {
	return Config{
		GitHubToken:    v.GetString(keyGitHubToken),
		GitHubBaseURL:  v.GetString(keyGitHubBaseURL),
		PrimaryBranch:  v.GetString(keyPrimaryBranch),
		FallbackBranch: v.GetString(keyFallbackBranch),
		GitHubTimeout:  v.GetDuration(keyGitHubTimeout),
		PyPIBaseURL:    v.GetString(keyPyPIBaseURL),
		PyPITimeout:    v.GetDuration(keyPyPITimeout),
		BatchSize:      v.GetInt(keyBatchSize),
		BatchDelay:     v.GetDuration(keyBatchDelay),
		ServerAddr:     v.GetString(keyServerAddr),
		LogLevel:       v.GetString(keyLogLevel),
	}
}

// pipelineOptions maps the config onto runner options.
func (c Config) pipelineOptions() pipeline.Options {
	return pipeline.Options{
		GitHubToken:    c.GitHubToken,
		GitHubBaseURL:  c.GitHubBaseURL,
		GitHubTimeout:  c.GitHubTimeout,
		PyPIBaseURL:    c.PyPIBaseURL,
		PyPITimeout:    c.PyPITimeout,
		PrimaryBranch:  c.PrimaryBranch,
		FallbackBranch: c.FallbackBranch,
		BatchSize:      c.BatchSize,
		BatchDelay:     c.BatchDelay,
	}
}

// logLevel resolves the configured level; verbose always wins.
func (c Config) logLevel(verbose bool) charmlog.Level {
	if verbose {
		return charmlog.DebugLevel
	}
	level, err := charmlog.ParseLevel(c.LogLevel)
	if err != nil {
		return charmlog.InfoLevel
	}
	return level
}
