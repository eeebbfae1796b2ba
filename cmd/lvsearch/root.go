package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/katalvlaran/lvsearch/instrument"
)

// Flag and config keys.
const (
	keyConfig        = "config"
	keyLogLevel      = "log-level"
	keyLogFormat     = "log-format"
	keyProm          = "prom"
	keyAlgorithm     = "algorithm"
	keyMaxExpansions = "max-expansions"
	keyDepth         = "depth"
	keyTree          = "tree"
	keyTimeout       = "timeout"
	keySeed          = "seed"
)

var (
	errUnknownAlgorithm = errors.New("lvsearch: unknown algorithm")
	errNeedDepth        = errors.New("lvsearch: depth-limited needs --depth >= 0")
)

// app carries what every subcommand needs once flags and config are resolved.
type app struct {
	v   *viper.Viper
	log *logrus.Logger
	reg *prometheus.Registry
	rec *instrument.Recorder
	out io.Writer
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{v: viper.New(), log: logrus.New(), out: stdout}
	a.log.SetOutput(stderr)

	root := &cobra.Command{
		Use:           "lvsearch",
		Short:         "Run classic state-space search algorithms on bundled problems",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		PersistentPostRunE: func(*cobra.Command, []string) error {
			if !a.v.GetBool(keyProm) {
				return nil
			}
			return instrument.WriteText(a.out, a.reg)
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	pf := root.PersistentFlags()
	pf.String(keyConfig, "", "config file (yaml, toml or json)")
	pf.String(keyLogLevel, "warning", "log level: trace, debug, info, warning, error")
	pf.String(keyLogFormat, "text", "log format: text or json")
	pf.Bool(keyProm, false, "print Prometheus metrics of the run to stdout")

	root.AddCommand(
		newRouteCmd(a),
		newPuzzleCmd(a),
		newQueensCmd(a),
		newGridCmd(a),
		newOnlineCmd(a),
	)

	return root
}

// addSearchFlags registers the flags shared by the offline search commands.
func addSearchFlags(fs *pflag.FlagSet, algorithm string) {
	fs.StringP(keyAlgorithm, "a", algorithm, "bfs, dfs, depth-limited, iterative-deepening, ucs, greedy, astar, rbfs or bidirectional")
	fs.Int(keyMaxExpansions, 0, "stop after this many expansions (0 = no limit)")
	fs.Int(keyDepth, -1, "depth limit, required by depth-limited; cap for iterative-deepening (-1 = no cap)")
	fs.Bool(keyTree, false, "tree search: do not keep an explored set")
	fs.Duration(keyTimeout, 0, "abort the search after this long (0 = no timeout)")
	fs.Int64(keySeed, 1, "seed for random instances and randomized algorithms")
}

// setup binds flags, environment and config file, then builds the logger and
// the metrics recorder.
func (a *app) setup(cmd *cobra.Command) error {
	a.v.SetEnvPrefix("LVSEARCH")
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()
	if err := a.v.BindPFlags(cmd.Flags()); err != nil {
		return fmt.Errorf("lvsearch: bind flags: %w", err)
	}
	if path := a.v.GetString(keyConfig); path != "" {
		a.v.SetConfigFile(path)
		if err := a.v.ReadInConfig(); err != nil {
			return fmt.Errorf("lvsearch: read config: %w", err)
		}
	}

	level, err := logrus.ParseLevel(a.v.GetString(keyLogLevel))
	if err != nil {
		return fmt.Errorf("lvsearch: %w", err)
	}
	a.log.SetLevel(level)
	switch format := a.v.GetString(keyLogFormat); format {
	case "json":
		a.log.SetFormatter(&logrus.JSONFormatter{})
	case "text":
		a.log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	default:
		return fmt.Errorf("lvsearch: unknown log format %q", format)
	}

	a.reg = prometheus.NewRegistry()
	a.rec, err = instrument.NewRecorder(a.reg)

	return err
}

// context returns the run context, bounded by --timeout when set.
func (a *app) context(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if d := a.v.GetDuration(keyTimeout); d > 0 {
		return context.WithTimeout(ctx, d)
	}

	return context.WithCancel(ctx)
}

// elapsed logs how long a command took.
func (a *app) elapsed(what string, start time.Time) {
	a.log.WithFields(logrus.Fields{"command": what, "elapsed": time.Since(start)}).Info("done")
}
