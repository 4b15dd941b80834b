package cli

import (
	"github.com/spf13/cobra"

	"github.com/swimboard/swimboard/internal/pkg/render"
)

func heatsCommand(root *rootCommand) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "heats",
		Short: "Print heat and lane assignments from cached responses",
		RunE: func(cmd *cobra.Command, args []string) error {
			views, err := eventViews(root, cmd)
			if err != nil {
				return err
			}
			render.RenderHeatReport(cmd.OutOrStdout(), views)
			return nil
		},
	}
	cmd.Flags().Bool("live", false, "load data from the API instead of the cache")
	return cmd
}
