package cmd

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	logLevel string
	logger   = newLogger(os.Stderr, "warn")
)

var rootCmd = &cobra.Command{
	Use:   "shoot-seeder",
	Short: "Convert shoot history CSV exports into database seed JSON",
	Long: `Shoot Seeder reads a photography shoot history CSV export and prints
JSON seed data: unique clients (deduplicated by email) and every shoot.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logger.Fatal("command failed", "err", err)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Log level: debug, info, warn or error")
	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(tuiCmd)
}

// envFlags maps environment variables onto convert flags. Flags given on
// the command line win.
var envFlags = map[string]string{
	"SHOOT_CSV":        "csv",
	"SHOOT_LAYOUT":     "layout",
	"SHOOT_FORMAT":     "format",
	"SHOOT_OUTPUT_DIR": "output-dir",
}

func initConfig() {
	envErr := godotenv.Load()

	if v := os.Getenv("LOG_LEVEL"); v != "" && !rootCmd.PersistentFlags().Changed("log-level") {
		logLevel = v
	}
	logger = newLogger(os.Stderr, logLevel)

	if envErr != nil {
		logger.Debug("no .env file loaded", "err", envErr)
	}

	flags := convertCmd.Flags()
	for env, name := range envFlags {
		v := os.Getenv(env)
		if v == "" || flags.Changed(name) {
			continue
		}
		if err := flags.Set(name, v); err != nil {
			logger.Warn("ignoring environment value", "env", env, "err", err)
		}
	}
}

func newLogger(w io.Writer, level string) *log.Logger {
	l := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
		Prefix:          "shoot-seeder",
	})
	lvl, err := log.ParseLevel(level)
	if err != nil {
		lvl = log.WarnLevel
	}
	l.SetLevel(lvl)
	return l
}
