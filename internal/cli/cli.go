// Package cli provides the command line interface.
package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/temirov/dirtree/internal/config"
	"github.com/temirov/dirtree/internal/output"
	"github.com/temirov/dirtree/internal/services/clipboard"
	"github.com/temirov/dirtree/internal/services/stream"
	"github.com/temirov/dirtree/internal/tree"
	"github.com/temirov/dirtree/internal/types"
	"github.com/temirov/dirtree/internal/utils"
)

const (
	formatFlagName       = "format"
	ignoreFlagName       = "ignore"
	copyFlagName         = "copy"
	configFlagName       = "config"
	versionFlagName      = "version"
	versionTemplate      = "dirtree version: %s\n"
	defaultPath          = "."
	rootUse              = "dirtree [directory]"
	rootShortDescription = "print a directory tree"
	rootLongDescription  = `dirtree prints the contents of a directory as a tree.
Directories are listed before files, each group in byte order. The .git and
node_modules directories are skipped together with everything below them.`
	rootUsageExample = `  # Render the current directory
  dirtree

  # Render ./cmd and also skip vendor directories
  dirtree --ignore vendor ./cmd

  # Emit JSON and copy it to the clipboard
  dirtree --format json --copy .`

	formatFlagDescription  = "output format (raw or json)"
	ignoreFlagDescription  = "additional directory name to skip"
	copyFlagDescription    = "copy the rendered output to the clipboard"
	configFlagDescription  = "configuration file used instead of ./" + utils.LocalConfigFileName
	versionFlagDescription = "display application version"

	invalidFormatMessage        = "Invalid format value '%s'"
	workingDirectoryErrorFormat = "unable to determine working directory: %w"
	errorCopyFormat             = "copy output to clipboard: %w"
	errorFlushFormat            = "flush %s output: %w"
)

// versionProvider is replaced in tests.
var versionProvider = utils.GetApplicationVersion

// commandDependencies are the process resources the command writes to.
type commandDependencies struct {
	stdout io.Writer
	copier clipboard.Copier
}

// treeFlags stores the raw flag values.
type treeFlags struct {
	format      string
	ignore      []string
	copyEnabled bool
	configPath  string
	showVersion bool
}

// treeSettings is the effective configuration after merging files and flags.
type treeSettings struct {
	format      string
	ignore      tree.IgnoreSet
	copyEnabled bool
}

// Execute runs the dirtree application.
func Execute() error {
	rootCommand := createRootCommand(commandDependencies{
		stdout: os.Stdout,
		copier: clipboard.NewService(),
	})
	rootCommand.SetArgs(normalizeBooleanFlagArguments(rootCommand, os.Args[1:]))
	return rootCommand.Execute()
}

// createRootCommand builds the root Cobra command.
func createRootCommand(dependencies commandDependencies) *cobra.Command {
	var flags treeFlags

	rootCommand := &cobra.Command{
		Use:           rootUse,
		Short:         rootShortDescription,
		Long:          rootLongDescription,
		Example:       rootUsageExample,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(command *cobra.Command, arguments []string) error {
			if flags.showVersion {
				_, err := fmt.Fprintf(command.OutOrStdout(), versionTemplate, versionProvider())
				return err
			}
			directory := defaultPath
			if len(arguments) == 1 {
				directory = arguments[0]
			}
			settings, settingsError := resolveSettings(command, flags)
			if settingsError != nil {
				return settingsError
			}
			return runTree(command.Context(), directory, settings, dependencies)
		},
	}
	rootCommand.SetOut(dependencies.stdout)

	rootCommand.Flags().StringVar(&flags.format, formatFlagName, types.FormatRaw, formatFlagDescription)
	rootCommand.Flags().StringArrayVar(&flags.ignore, ignoreFlagName, nil, ignoreFlagDescription)
	rootCommand.Flags().StringVar(&flags.configPath, configFlagName, "", configFlagDescription)
	registerBooleanFlag(rootCommand.Flags(), &flags.showVersion, versionFlagName, false, versionFlagDescription)
	registerBooleanFlag(rootCommand.Flags(), &flags.copyEnabled, copyFlagName, false, copyFlagDescription)
	return rootCommand
}

// resolveSettings layers command line flags over the configuration files.
func resolveSettings(command *cobra.Command, flags treeFlags) (treeSettings, error) {
	workingDirectory, workingDirectoryError := os.Getwd()
	if workingDirectoryError != nil {
		return treeSettings{}, fmt.Errorf(workingDirectoryErrorFormat, workingDirectoryError)
	}
	applicationConfig, configError := config.LoadApplicationConfiguration(config.LoadOptions{
		WorkingDirectory: workingDirectory,
		ExplicitFilePath: flags.configPath,
	})
	if configError != nil {
		return treeSettings{}, configError
	}

	settings := treeSettings{
		format: types.FormatRaw,
		ignore: tree.DefaultIgnoreSet().With(applicationConfig.Ignore...).With(flags.ignore...),
	}
	if applicationConfig.Format != "" {
		settings.format = applicationConfig.Format
	}
	if command.Flags().Changed(formatFlagName) {
		settings.format = flags.format
	}
	settings.format = strings.ToLower(strings.TrimSpace(settings.format))
	if !types.IsSupportedFormat(settings.format) {
		return treeSettings{}, fmt.Errorf(invalidFormatMessage, settings.format)
	}

	if applicationConfig.Clipboard != nil {
		settings.copyEnabled = *applicationConfig.Clipboard
	}
	if command.Flags().Changed(copyFlagName) {
		settings.copyEnabled = flags.copyEnabled
	}
	return settings, nil
}

// runTree streams the traversal of directory into the selected renderer.
func runTree(ctx context.Context, directory string, settings treeSettings, dependencies commandDependencies) error {
	var copied bytes.Buffer
	destination := dependencies.stdout
	if settings.copyEnabled {
		destination = io.MultiWriter(dependencies.stdout, &copied)
	}

	renderer, rendererError := output.NewStreamRenderer(settings.format, destination)
	if rendererError != nil {
		return rendererError
	}

	producer := func(streamCtx context.Context, ch chan<- stream.Event) error {
		return stream.StreamTree(streamCtx, stream.TreeOptions{Root: directory, Ignore: settings.ignore}, ch)
	}
	if streamError := dispatchStream(ctx, producer, renderer.Handle); streamError != nil {
		return streamError
	}
	if flushError := renderer.Flush(); flushError != nil {
		return fmt.Errorf(errorFlushFormat, settings.format, flushError)
	}

	if settings.copyEnabled && dependencies.copier != nil {
		if copyError := dependencies.copier.Copy(copied.String()); copyError != nil {
			return fmt.Errorf(errorCopyFormat, copyError)
		}
	}
	return nil
}

// dispatchStream runs produce and consume concurrently over an unbuffered
// channel. The consumer sees events in the order they were produced.
func dispatchStream(
	ctx context.Context,
	produce func(context.Context, chan<- stream.Event) error,
	consume func(stream.Event) error,
) error {
	if ctx == nil {
		ctx = context.Background()
	}
	group, streamCtx := errgroup.WithContext(ctx)
	events := make(chan stream.Event)

	group.Go(func() error {
		defer close(events)
		return produce(streamCtx, events)
	})

	group.Go(func() error {
		for {
			select {
			case <-streamCtx.Done():
				return streamCtx.Err()
			case event, ok := <-events:
				if !ok {
					return nil
				}
				if err := consume(event); err != nil {
					return err
				}
			}
		}
	})

	if err := group.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
