package cli

import (
	"path/filepath"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/swimboard/swimboard/internal/pkg/docgen"
)

const docsFileName = "API_DOCUMENTATION.md"

func docsCommand(root *rootCommand) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "docs",
		Short: "Generate Markdown API documentation from cached responses",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newCache(root)
			if err != nil {
				return err
			}

			files := loadFiles(root, c.All)
			output := docgen.Generate(files)

			dir := outputDir(root)
			if err := root.fs.MkdirAll(dir, 0o755); err != nil {
				return err
			}
			path := filepath.Join(dir, docsFileName)
			if err := afero.WriteFile(root.fs, path, []byte(output), 0o644); err != nil {
				return err
			}

			root.logger.Infof(`Documented %d cached file(s).`, len(files))
			root.logger.Infof(`Documentation written to "%s".`, path)
			return nil
		},
	}
	return cmd
}
