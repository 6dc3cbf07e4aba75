package commands

import (
	"context"
	"io"
	"os"
	"os/signal"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/rangemap/internal/config"
)

// rootOptions carries persistent flags and the state resolved from them.
type rootOptions struct {
	configPath  string
	logLevel    string
	logFormat   string
	trace       bool
	strictChain bool
	watch       bool

	cfg config.Config
	log *logrus.Logger
}

// Execute runs the CLI with os.Args and cancels on interrupt.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return NewRootCommand(os.Stdout, os.Stderr).ExecuteContext(ctx)
}

// NewRootCommand builds the command tree writing results to out and logs
// and errors to errOut.
func NewRootCommand(out, errOut io.Writer) *cobra.Command {
	o := &rootOptions{}
	root := &cobra.Command{
		Use:           "almanac",
		Short:         "Lowest location reachable through an almanac's maps",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return o.resolve(cmd)
		},
	}
	root.SetOut(out)
	root.SetErr(errOut)

	pf := root.PersistentFlags()
	pf.StringVar(&o.configPath, "config", "", "TOML config file")
	pf.StringVar(&o.logLevel, "log-level", "", "log level (panic|fatal|error|warn|info|debug|trace)")
	pf.StringVar(&o.logFormat, "log-format", "", "log format (text|json)")
	pf.BoolVar(&o.trace, "trace", false, "log the interval set after every stage")
	pf.BoolVar(&o.strictChain, "strict-chain", false, "fail when map categories do not chain")
	pf.BoolVar(&o.watch, "watch", false, "re-run whenever the input file is written")

	root.AddCommand(pointsCmd(o), rangesCmd(o), checkCmd(o))
	return root
}

// resolve loads the config file and applies explicitly set flags on top.
func (o *rootOptions) resolve(cmd *cobra.Command) error {
	cfg := config.Default()
	if o.configPath != "" {
		loaded, err := config.Load(o.configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.LogLevel = o.logLevel
	}
	if flags.Changed("log-format") {
		cfg.LogFormat = o.logFormat
	}
	if flags.Changed("trace") {
		cfg.Trace = o.trace
	}
	if flags.Changed("strict-chain") {
		cfg.StrictChain = o.strictChain
	}
	if flags.Changed("watch") {
		cfg.Watch = o.watch
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	log, err := newLogger(cfg, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	o.cfg = cfg
	o.log = log
	return nil
}
