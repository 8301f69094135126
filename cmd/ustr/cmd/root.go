package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	ustr "github.com/42atomys/go-ustr"
	"github.com/42atomys/go-ustr/internal/config"
)

var (
	cfgFile   string
	verbose   bool
	logFormat string

	cfg    = config.Default()
	logger = slog.New(slog.NewTextHandler(os.Stderr, nil))
)

var rootCmd = &cobra.Command{
	Use:   "ustr",
	Short: "Load, inspect, search and transcode Unicode text files",
	Long: `ustr works on text files in UTF-8, UTF-16 or UTF-32.

The encoding of a file is taken from its byte-order mark; files without
one are read as UTF-8. Line endings are normalized to LF on load.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

// Execute runs the command tree and reports a failure on stderr.
func Execute() error {
	c, err := rootCmd.ExecuteC()
	if err != nil {
		printError(c.CommandPath(), err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (.toml, .yaml or .yml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "log format: text or json")
}

// setup loads the configuration and installs the logger.
func setup(cmd *cobra.Command, args []string) error {
	c, err := config.Load(cfgFile)
	if err != nil {
		return err
	}
	if logFormat != "" {
		c.LogFormat = logFormat
	}
	if verbose {
		c.LogLevel = "debug"
	}
	if err := c.Validate(); err != nil {
		return err
	}

	level, _ := config.ParseLevel(c.LogLevel)
	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler = slog.NewTextHandler(cmd.ErrOrStderr(), opts)
	if c.LogFormat == "json" {
		handler = slog.NewJSONHandler(cmd.ErrOrStderr(), opts)
	}

	cfg = c
	logger = slog.New(handler)
	logger.Debug("configuration loaded", "file", cfgFile, "encoding", cfg.Encoding, "byte_order", cfg.ByteOrder)
	return nil
}

// loadDocument reads a file and logs what was detected.
func loadDocument(path string) (*ustr.Document, error) {
	doc, err := ustr.Load(path)
	if err != nil {
		return nil, err
	}
	logger.Debug("document loaded",
		"path", path,
		"mark", doc.Mark,
		"encoding", doc.Encoding(),
		"units", doc.Size(),
		"scalars", doc.Length())
	return doc, nil
}

func printError(msg string, err error) {
	fmt.Fprintf(os.Stderr, "Error: %s: %v\n", msg, err)
}
