package cli

import (
	"fmt"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/spf13/cobra"

	"github.com/swimboard/swimboard/internal/pkg/export"
	"github.com/swimboard/swimboard/internal/pkg/model"
)

func exportCommand(root *rootCommand) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Run a server-side export and download the artifact",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := root.ValidateOptions([]string{"ApiHost", "Username", "Password", "MeetId"}); err != nil {
				return err
			}

			swimApi, err := root.GetSwimApi()
			if err != nil {
				return err
			}
			manager := export.NewManager(swimApi, root.fs, clockwork.NewRealClock(), root.logger)
			meetId := root.options.MeetId

			if list, _ := cmd.Flags().GetBool("list"); list {
				return listExportTasks(root, meetId)
			}

			opts := export.DefaultOptions()
			opts.Type, _ = cmd.Flags().GetString("export-type")
			opts.Format, _ = cmd.Flags().GetString("export-format")
			opts.TeamFilter, _ = cmd.Flags().GetInt("team")
			opts.SessionFilter, _ = cmd.Flags().GetInt("session")
			maxAttempts, _ := cmd.Flags().GetInt("max-attempts")
			interval, _ := cmd.Flags().GetDuration("poll-interval")
			filename, _ := cmd.Flags().GetString("filename")

			taskId, err := manager.CreateTask(meetId, opts)
			if err != nil {
				return err
			}
			root.logger.Infof(`Export task "%s" created, waiting for the result.`, taskId)

			result := manager.Poll(meetId, taskId, maxAttempts, interval)
			switch result.State {
			case export.StateCompleted:
				if filename == "" {
					filename = result.Filename
				}
				path, err := manager.Download(result.Href, outputDir(root), filename)
				if err != nil {
					return err
				}
				root.logger.Infof(`Export downloaded to "%s".`, path)
				return nil
			case export.StateFailed:
				return fmt.Errorf("export failed: %s", result.ErrorMessage)
			case export.StateTimedOut:
				return fmt.Errorf(
					`export did not finish in %d attempt(s), last state "%s", try again with a higher "--max-attempts"`,
					result.Attempts, result.LastTaskState,
				)
			default:
				return fmt.Errorf("export status check failed: %s", result.ErrorMessage)
			}
		},
	}

	cmd.Flags().SortFlags = true
	cmd.Flags().Bool("list", false, "list existing export tasks and exit")
	cmd.Flags().String("export-type", "result", `export type: "result", "merge-results" or "merge-entries"`)
	cmd.Flags().String("export-format", "hy3", "export file format")
	cmd.Flags().Int("team", export.AllFilter, "limit the export to one team id")
	cmd.Flags().Int("session", export.AllFilter, "limit the export to one session number")
	cmd.Flags().Int("max-attempts", 30, "number of status checks before giving up")
	cmd.Flags().Duration("poll-interval", 2*time.Second, "delay between status checks")
	cmd.Flags().StringP("filename", "f", "", "local filename for the downloaded artifact")
	return cmd
}

func listExportTasks(root *rootCommand, meetId string) error {
	swimApi, err := root.GetSwimApi()
	if err != nil {
		return err
	}
	doc, err := swimApi.ListExportTasks(meetId)
	if err != nil {
		return err
	}
	if len(doc.Data) == 0 {
		root.logger.Info("No export tasks found.")
		return nil
	}

	root.logger.Infof("Found %d export task(s):", len(doc.Data))
	for _, resource := range doc.Data {
		task := model.ExportTask{Resource: resource}
		line := fmt.Sprintf(`  %s  %-10s %s`, task.ID(), task.CurrentState(), task.ExportType())
		if created := task.CreatedAt(); created != "" {
			line += "  " + created
		}
		root.logger.Info(line)
	}
	return nil
}
