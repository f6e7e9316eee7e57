// Package cmd provides CLI commands for authormail.
package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func setupLogger() {
	logLevel := strings.ToUpper(os.Getenv("LOG_LEVEL"))
	if logLevel == "" {
		logLevel = "INFO"
	}

	var level slog.Level
	switch logLevel {
	case "DEBUG":
		level = slog.LevelDebug
	case "INFO":
		level = slog.LevelInfo
	case "WARN", "WARNING":
		level = slog.LevelWarn
	case "ERROR":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	handler := slog.NewTextHandler(os.Stderr, opts)
	logger := slog.New(handler)

	slog.SetDefault(logger)
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("authormail")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "authormail"))
		}
	}

	viper.SetEnvPrefix("AUTHORMAIL")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		slog.Debug("using config file", "path", viper.ConfigFileUsed())
	}
}

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "authormail",
	Short: "Extract author contact triples from literature-database exports",
	Long: `Authormail extracts normalized (article title, author name, author email)
triples from heterogeneous bibliographic export formats: MEDLINE tagged text,
free-text abstract dumps, tab-delimited spreadsheets, and XML result lists.

Examples:
  authormail extract pubmed -i export.nbib -o contacts.csv
  authormail extract mdpi < reviewers.tsv
  cat results.xml | authormail extract europepmc --format table
  authormail sources`,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	setupLogger()
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./authormail.yaml or ~/.config/authormail/authormail.yaml)")

	rootCmd.AddCommand(extractCmd)
	rootCmd.AddCommand(sourcesCmd)
}
