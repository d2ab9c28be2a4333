// Package cli wires configuration, logging and the renderers into the
// mazeworks command.
package cli

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/leonelquinteros/gotext"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"mazeworks/pkg/engine/input"
	"mazeworks/pkg/game/config"
)

var version = "dev"

// envPrefix prefixes every environment override, e.g. MAZEWORKS_ROWS
const envPrefix = "MAZEWORKS"

// flagKeys maps persistent flag names to configuration keys
var flagKeys = map[string]string{
	"rows":      "rows",
	"cols":      "cols",
	"seed":      "seed",
	"speed":     "speed",
	"renderer":  "renderer",
	"log-level": "log_level",
	"log-file":  "log_file",
	"dump-dir":  "dump_dir",
	"locale":    "locale",
}

// app is the state shared by all commands of one invocation
type app struct {
	v       *viper.Viper
	cfgFile string
	cfg     config.Config

	runID   string
	log     *logrus.Logger
	entry   *logrus.Entry
	logFile io.Closer
}

// NewRootCmd builds the command tree with a fresh configuration
func NewRootCmd() *cobra.Command {
	a := &app{v: viper.New()}
	d := config.Defaults()

	root := &cobra.Command{
		Use:   "mazeworks",
		Short: "Animated maze generation and shortest-path search",
		Long: `Carves a perfect maze with randomized Prim's algorithm and finds the
shortest path through it with breadth-first search, animating every step
in the terminal or in a window.`,
		Version:           version,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: a.teardown,
		RunE:              a.runInteractive,
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&a.cfgFile, "config", "c", "", "config file (default: ./mazeworks.yaml)")
	flags.Int("rows", d.Rows, "grid rows (odd, at least 5)")
	flags.Int("cols", d.Cols, "grid columns (odd, at least 5)")
	flags.Int64("seed", d.Seed, "random seed (0 picks one from the clock)")
	flags.String("speed", d.Speed, "animation speed: "+strings.Join(config.SpeedNames, ", "))
	flags.String("renderer", d.Renderer, "front end: tui or ebiten")
	flags.String("log-level", d.LogLevel, "log level: debug, info, warn, error")
	flags.String("log-file", d.LogFile, "write logs to this file instead of stderr")
	flags.String("dump-dir", d.DumpDir, "directory for map dumps and screenshots")
	flags.String("locale", d.Locale, "language for interface text")
	for name, key := range flagKeys {
		_ = a.v.BindPFlag(key, flags.Lookup(name))
	}

	root.AddCommand(
		a.newRunCmd(),
		a.newGenerateCmd(),
		a.newSolveCmd(),
		a.newDumpCmd(),
	)
	return root
}

// Execute runs the root command
func Execute() error {
	return NewRootCmd().Execute()
}

// SetVersion sets the version string (called from main with ldflags)
func SetVersion(v string) {
	version = v
}

// setup loads configuration, then creates the logger and the locale
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	if err := a.loadConfig(); err != nil {
		return err
	}
	if err := a.initLogger(cmd.ErrOrStderr()); err != nil {
		return err
	}
	gotext.Configure("locales", a.cfg.Locale, "default")
	if err := input.ApplyBindings(a.cfg.Bindings); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	a.entry.WithFields(logrus.Fields{
		"command": cmd.Name(),
		"config":  a.v.ConfigFileUsed(),
	}).Debug("configuration loaded")
	return nil
}

func (a *app) teardown(*cobra.Command, []string) {
	if a.logFile != nil {
		_ = a.logFile.Close()
	}
}

// loadConfig layers defaults, config file, .env, environment and flags
func (a *app) loadConfig() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("loading .env: %w", err)
	}

	v := a.v
	for _, key := range []string{"start.row", "start.col", "end.row", "end.col"} {
		v.SetDefault(key, 0)
	}
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if a.cfgFile != "" {
		v.SetConfigFile(a.cfgFile)
	} else {
		v.SetConfigName("mazeworks")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg config.Config
	if err := v.Unmarshal(&cfg); err != nil {
		return fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	a.cfg = cfg
	return nil
}

// initLogger builds the logger every run logs through, tagged with a run id
func (a *app) initLogger(stderr io.Writer) error {
	level, err := logrus.ParseLevel(a.cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	log := logrus.New()
	log.SetLevel(level)
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	log.SetOutput(stderr)

	if a.cfg.LogFile != "" {
		f, err := os.OpenFile(a.cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return fmt.Errorf("opening log file: %w", err)
		}
		log.SetOutput(f)
		a.logFile = f
	}

	a.runID = uuid.NewString()
	a.log = log
	a.entry = log.WithField("run_id", a.runID)
	return nil
}
