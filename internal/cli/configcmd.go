package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/Ahmed-As3ad/e-commerce/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage shopctl configuration",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default config file",
	RunE:  runConfigInit,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config and token file locations",
	RunE:  runConfigPath,
}

func init() {
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configPathCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}

	path := cfgFile
	if path == "" {
		path = filepath.Join(config.Dir(), "config.yaml")
	}

	if err := cfg.Write(path); err != nil {
		return err
	}

	if jsonOut {
		return printJSON(map[string]string{"status": "written", "path": path})
	}
	fmt.Printf("%s Config written to %s\n", colorGreen("✓"), path)
	return nil
}

func runConfigPath(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}

	if jsonOut {
		return printJSON(map[string]string{
			"config_dir": config.Dir(),
			"token_path": cfg.TokenPath,
			"base_url":   cfg.BaseURL,
		})
	}

	fmt.Printf("Config dir: %s\n", config.Dir())
	fmt.Printf("Token file: %s\n", cfg.TokenPath)
	fmt.Printf("API base:   %s\n", cfg.BaseURL)
	return nil
}
