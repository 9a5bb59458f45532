package config

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"ytpick/internal/dirs"
	"ytpick/internal/util/deps"
)

// Keys shared between flags, env (YTPICK_*) and the config file.
const (
	KeyVerbose         = "verbose"
	KeyQuiet           = "quiet"
	KeyDLBinary        = "dl_binary"
	KeyPreset          = "preset"
	KeyDirs            = "dirs"
	KeyThumbnailHelper = "thumbnail_helper"
)

// Init wires Viper with config paths, env, defaults, and flag bindings.
// It is non-fatal: any errors are returned for optional handling by caller.
func Init(root *cobra.Command) error {
	// Ensure base directories exist
	_ = dirs.EnsureAll()

	// Setup config search path
	if cfgDir, err := dirs.ConfigDir(); err == nil {
		viper.AddConfigPath(cfgDir)
	}
	viper.SetConfigName("config") // supports config.{yaml|yml|json|toml}

	// Environment variables: YTPICK_*
	viper.SetEnvPrefix("YTPICK")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	viper.SetDefault(KeyThumbnailHelper, deps.DefaultThumbnailHelper)

	// Bind root persistent flags to Viper keys
	_ = viper.BindPFlag(KeyVerbose, root.PersistentFlags().Lookup("verbose"))
	_ = viper.BindPFlag(KeyQuiet, root.PersistentFlags().Lookup("quiet"))
	_ = viper.BindPFlag(KeyDLBinary, root.PersistentFlags().Lookup("dl-binary"))

	// Read config file if present (ignore not found)
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return err
		}
	}
	return nil
}

// BindRunFlags binds the flags of a selecting command. Cobra gives every
// subcommand its own flag set, so this runs per command before execution.
func BindRunFlags(cmd *cobra.Command) {
	if f := cmd.Flags().Lookup("preset"); f != nil {
		_ = viper.BindPFlag(KeyPreset, f)
	}
	if f := cmd.Flags().Lookup("dirs"); f != nil {
		_ = viper.BindPFlag(KeyDirs, f)
	}
}
