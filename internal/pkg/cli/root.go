// Package cli wires the sub-commands: docs, scoreboard, heats and export.
package cli

import (
	"context"
	"crypto/rand"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/swimboard/swimboard/internal/pkg/api"
	"github.com/swimboard/swimboard/internal/pkg/build"
	"github.com/swimboard/swimboard/internal/pkg/log"
	"github.com/swimboard/swimboard/internal/pkg/options"
)

const description = `
Swimboard

Swim meet toolkit for the Swimtopia API:
generate API docs and scoreboards from cached responses,
print heat assignments, run server-side exports.
`

type rootCommand struct {
	cmd          *cobra.Command
	fs           afero.Fs
	options      *options.Options
	ctx          context.Context // context for API requests
	api          *api.SwimApi    // use GetSwimApi to initialize
	start        time.Time       // cmd start time
	initialized  bool            // init method was called
	logFile      *os.File        // log file instance
	logFileClear bool            // temporary log file, removed when no error occurs
	logger       *zap.SugaredLogger
}

// NewRootCommand creates parent of all sub-commands.
func NewRootCommand(stdin io.Reader, stdout io.Writer, stderr io.Writer) *rootCommand {
	root := &rootCommand{
		fs:      afero.NewOsFs(),
		options: &options.Options{},
		ctx:     context.Background(),
		start:   time.Now(),
	}

	root.cmd = &cobra.Command{
		Use:          "swimboard",
		Version:      build.Version(),
		Short:        description,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Print help if no command specified
			return root.cmd.Help()
		},
	}

	root.cmd.SetIn(stdin)
	root.cmd.SetOut(stdout)
	root.cmd.SetErr(stderr)
	root.cmd.SetVersionTemplate("{{.Version}}")

	// Persistent flags for all sub-commands
	root.options.BindPersistentFlags(root.cmd.PersistentFlags())

	// Root command flags
	root.cmd.Flags().SortFlags = true
	root.cmd.Flags().BoolP("version", "V", false, "print version")

	// Init when flags are parsed
	root.cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		return root.init(cmd)
	}

	// Sub-commands
	root.cmd.AddCommand(
		docsCommand(root),
		scoreboardCommand(root),
		heatsCommand(root),
		exportCommand(root),
	)

	return root
}

// Execute command or sub-command.
func (root *rootCommand) Execute() (exitCode int) {
	defer root.tearDown()
	if err := root.cmd.Execute(); err != nil {
		// Init, it can be uninitialized, if error occurred before PersistentPreRun call
		_ = root.init(root.cmd)
		// Error is already logged by cobra through the warn writer
		return 1
	}
	return 0
}

func (root *rootCommand) ValidateOptions(required []string) error {
	if err := root.options.Validate(required); len(err) > 0 {
		root.logger.Warn("Invalid parameters:\n", err)
		return fmt.Errorf("invalid parameters, see output above")
	}
	return nil
}

// GetSwimApi returns the authenticated API client, initialized on first use.
func (root *rootCommand) GetSwimApi() (*api.SwimApi, error) {
	if root.api == nil {
		swimApi, err := api.NewSwimApiFromOptions(root.ctx, root.logger, root.options)
		if err != nil {
			return nil, err
		}
		root.api = swimApi
	}
	return root.api, nil
}

// init sets logger and options after flags are parsed.
func (root *rootCommand) init(cmd *cobra.Command) (err error) {
	if root.initialized {
		return
	}
	root.initialized = true

	// Logger must always be set up, even if options loading fails
	warnings, err := root.options.Load(cmd.Flags())
	root.setupLogger()
	root.logDebugInfo()
	for _, warning := range warnings {
		root.logger.Warn(warning)
	}
	return err
}

// setupLogger according to the options.
func (root *rootCommand) setupLogger() {
	logFile, logFileErr := root.getLogFile()
	root.logger = log.NewLogger(root.cmd.OutOrStdout(), root.cmd.ErrOrStderr(), logFile, root.options.Verbose)
	root.logFile = logFile
	root.cmd.SetOut(log.ToInfoWriter(root.logger))
	root.cmd.SetErr(log.ToWarnWriter(root.logger))

	// Warn if user specified log file and it cannot be opened
	if logFileErr != nil && !root.logFileClear {
		root.logger.Warnf("Cannot open log file: %s", logFileErr)
	}
}

func (root *rootCommand) logDebugInfo() {
	log.ToDebugWriter(root.logger).WriteStringNoErr(root.cmd.Version)
	root.logger.Debugf("Running command %v", os.Args)
	root.logger.Debug(root.options.Dump())
}

// getLogFile opens the file defined in the flags or creates a temp file.
func (root *rootCommand) getLogFile() (logFile *os.File, logFileErr error) {
	if len(root.options.LogFilePath) > 0 {
		root.logFileClear = false // log file defined by user will be preserved
	} else {
		// Unique suffix if multiple instances start simultaneously
		randomHash := ""
		randomBytes := make([]byte, 6)
		if _, err := rand.Read(randomBytes); err == nil {
			randomHash = fmt.Sprintf("-%x", randomBytes)
		}
		root.options.LogFilePath = filepath.Join(os.TempDir(), fmt.Sprintf("swimboard-%d%s.txt", time.Now().Unix(), randomHash))
		root.logFileClear = true // temp log file will be removed, preserved only on error
	}

	logFile, logFileErr = os.OpenFile(root.options.LogFilePath, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o600)
	if logFileErr != nil {
		root.options.LogFilePath = ""
	}
	return
}

// tearDown makes clean-up after command execution.
func (root *rootCommand) tearDown() {
	if err := recover(); err != nil {
		if root.logFile != nil {
			_ = root.logFile.Close()
		}
		panic(err)
	}

	if root.logFile != nil {
		if err := root.logFile.Close(); err != nil {
			panic(fmt.Errorf("cannot close log file \"%s\": %s", root.options.LogFilePath, err))
		}
	}

	// No error -> remove log file if temporary
	if root.logFileClear {
		if err := os.Remove(root.options.LogFilePath); err != nil {
			panic(fmt.Errorf("cannot remove temp log file \"%s\": %s", root.options.LogFilePath, err))
		}
	}
}
