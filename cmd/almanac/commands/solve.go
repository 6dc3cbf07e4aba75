package commands

import (
	"errors"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/rangemap/almanac"
	"github.com/katalvlaran/rangemap/interval"
	"github.com/katalvlaran/rangemap/remap"
)

// mode selects how the seed line is read.
type mode int

const (
	modePoints mode = iota // every seed is one value
	modeRanges             // seeds are (start, length) pairs
)

func (m mode) String() string {
	if m == modeRanges {
		return "ranges"
	}
	return "points"
}

func pointsCmd(o *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "points FILE",
		Short: "Lowest location over individual seed values",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.runOrWatch(cmd, args[0], func() error { return o.solve(cmd, args[0], modePoints) })
		},
	}
}

func rangesCmd(o *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "ranges FILE",
		Short: "Lowest location over seed (start, length) ranges",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.runOrWatch(cmd, args[0], func() error { return o.solve(cmd, args[0], modeRanges) })
		},
	}
}

// load parses path and applies the chain policy.
func (o *rootOptions) load(path string) (*almanac.Almanac, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	a, err := almanac.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if err := a.CheckChain(); err != nil {
		if o.cfg.StrictChain {
			return nil, err
		}
		o.log.WithError(err).Warn("map categories do not chain")
	}
	o.log.WithFields(logrus.Fields{
		"file":   path,
		"seeds":  len(a.Seeds),
		"stages": len(a.Stages),
	}).Debug("almanac parsed")
	return a, nil
}

// solve prints the lowest location of path in the given mode.
func (o *rootOptions) solve(cmd *cobra.Command, path string, m mode) error {
	a, err := o.load(path)
	if err != nil {
		return err
	}

	var lo int64
	switch m {
	case modeRanges:
		seeds, err := a.SeedRanges()
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		lo, err = remap.MinimumReachable(seeds, a.Stages, remap.WithOnStage(o.traceStage))
		if err != nil {
			return err
		}
	default:
		lo, err = remap.MinimumPoint(a.Seeds, a.Stages)
		if err != nil {
			return err
		}
	}

	o.log.WithFields(logrus.Fields{"mode": m.String(), "lowest": lo}).Debug("solved")
	_, err = fmt.Fprintf(cmd.OutOrStdout(), "lowest location: %d\n", lo)
	return err
}

// traceStage logs the set produced by one stage when tracing is on.
func (o *rootOptions) traceStage(i int, st remap.Stage, out interval.Set) {
	if !o.cfg.Trace {
		return
	}
	entry := o.log.WithFields(logrus.Fields{
		"stage":     i,
		"map":       st.Name(),
		"intervals": len(out),
		"covered":   out.TotalLen(),
	})
	if lo, err := out.Min(); err == nil {
		entry = entry.WithField("min", lo)
	} else if !errors.Is(err, interval.ErrEmptySet) {
		entry = entry.WithError(err)
	}
	entry.Info("stage applied")
}
