package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/ogurasousui/employee-pairs/internal/platform/config"
	"github.com/ogurasousui/employee-pairs/internal/platform/logging"
)

const defaultConfigPath = "assets/local.yaml"

// cli はサブコマンド間で共有する状態です。
type cli struct {
	configPath string
	verbose    bool

	cfg    *config.Config
	logger *zap.Logger
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	c := &cli{}

	root := &cobra.Command{
		Use:   "pairs",
		Short: "Find the pair of employees who worked together the longest",
		Long: `pairs reads a comma-separated list of work assignments
(employee id, project id, start date, end date) and reports the pair of
employees who overlapped on at least two projects for the most days.

An end date of NULL means the assignment is still ongoing.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.init()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if c.logger != nil {
				_ = c.logger.Sync()
			}
		},
	}

	root.PersistentFlags().StringVar(&c.configPath, "config", "", "path to config file (defaults to CONFIG_PATH env or "+defaultConfigPath+")")
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(newFindCmd(c), newFormatsCmd())
	return root
}

func (c *cli) init() error {
	cfg, err := loadConfig(c.configPath)
	if err != nil {
		return err
	}
	if c.verbose {
		cfg.Log.ZapLevel = zapcore.DebugLevel
	}

	logger, err := logging.New(cfg.Log)
	if err != nil {
		return err
	}

	c.cfg = cfg
	c.logger = logger
	return nil
}

// loadConfig は既定のパスに設定ファイルが無い場合のみ既定値で動作します。
func loadConfig(flagValue string) (*config.Config, error) {
	path, explicit := effectiveConfigPath(flagValue)

	cfg, err := config.Load(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return config.Default(), nil
		}
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

func effectiveConfigPath(flagValue string) (string, bool) {
	if flagValue != "" {
		return flagValue, true
	}
	if env := os.Getenv("CONFIG_PATH"); env != "" {
		return env, true
	}
	return defaultConfigPath, false
}
