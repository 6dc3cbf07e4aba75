// Package commands wires the almanac sub-commands onto a cobra root.
package commands
