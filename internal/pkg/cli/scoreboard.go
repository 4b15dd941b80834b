package cli

import (
	"bytes"
	"path/filepath"
	"time"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/swimboard/swimboard/internal/pkg/render"
)

const scoreboardFileName = "scoreboard.html"

func scoreboardCommand(root *rootCommand) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scoreboard",
		Short: "Generate a static HTML scoreboard from cached responses",
		RunE: func(cmd *cobra.Command, args []string) error {
			views, err := eventViews(root, cmd)
			if err != nil {
				return err
			}

			var out bytes.Buffer
			if err := render.RenderScoreboard(&out, views, time.Now()); err != nil {
				return err
			}

			dir := outputDir(root)
			if err := root.fs.MkdirAll(dir, 0o755); err != nil {
				return err
			}
			path := filepath.Join(dir, scoreboardFileName)
			if err := afero.WriteFile(root.fs, path, out.Bytes(), 0o644); err != nil {
				return err
			}

			root.logger.Infof(`Scoreboard with %d event(s) written to "%s".`, len(views), path)
			return nil
		},
	}
	cmd.Flags().Bool("live", false, "load data from the API instead of the cache")
	return cmd
}
