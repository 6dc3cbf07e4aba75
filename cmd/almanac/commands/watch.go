package commands

import (
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
)

// runOrWatch runs once, or with watching enabled keeps re-running after
// every write to path until the command context is cancelled. In watch
// mode run errors are logged, not returned.
func (o *rootOptions) runOrWatch(cmd *cobra.Command, path string, run func() error) error {
	if !o.cfg.Watch {
		return run()
	}
	if err := run(); err != nil {
		o.log.WithError(err).Error("run failed")
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	// Editors often replace the file, so watch its directory and filter.
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		return err
	}
	o.log.WithField("file", abs).Info("watching for changes")

	ctx := cmd.Context()
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != abs || !(event.Has(fsnotify.Write) || event.Has(fsnotify.Create)) {
				continue
			}
			o.log.WithField("op", event.Op.String()).Debug("input changed")
			if err := run(); err != nil {
				o.log.WithError(err).Error("run failed")
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			o.log.WithError(err).Warn("watcher error")
		}
	}
}
