package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func checkCmd(o *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "check FILE",
		Short: "Parse an almanac and report rule overlaps and category chaining",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.runOrWatch(cmd, args[0], func() error { return o.check(cmd, args[0]) })
		},
	}
}

// check prints the shape of the almanac at path.
func (o *rootOptions) check(cmd *cobra.Command, path string) error {
	a, err := o.load(path)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "seeds: %d\n", len(a.Seeds))
	fmt.Fprintf(w, "stages: %d\n", len(a.Stages))
	for _, st := range a.Stages {
		fmt.Fprintf(w, "%s: %d rules\n", st.Name(), len(st.Rules))
		for _, pair := range st.Overlaps() {
			fmt.Fprintf(w, "  rules %d and %d overlap; first declared wins\n", pair[0], pair[1])
		}
	}
	if err := a.CheckChain(); err != nil {
		fmt.Fprintf(w, "chain: %v\n", err)
	} else {
		fmt.Fprintln(w, "chain: ok")
	}
	if _, err := a.SeedRanges(); err != nil {
		fmt.Fprintf(w, "seed ranges: %v\n", err)
	}
	return nil
}
