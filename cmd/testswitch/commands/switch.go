package commands

import (
	"io"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/testswitch/internal/cli/prompt"
	"github.com/thoreinstein/testswitch/internal/editor"
	"github.com/thoreinstein/testswitch/internal/errors"
	"github.com/thoreinstein/testswitch/internal/logging"
	"github.com/thoreinstein/testswitch/internal/switcher"
	"github.com/thoreinstein/testswitch/internal/workspace"
)

// hostOptions describe the editor state passed on the command line.
type hostOptions struct {
	open     []string
	openFrom string
	folders  []string
}

type switchOptions struct {
	hostOptions
	print bool
	first bool
}

func addHostFlags(cmd *cobra.Command, o *hostOptions) {
	f := cmd.Flags()
	f.StringArrayVarP(&o.open, "open", "o", nil, "open document, searched before the folders (repeatable)")
	f.StringVar(&o.openFrom, "open-from", "", "read open documents, one per line, from a file or - for stdin")
	f.StringArrayVarP(&o.folders, "folder", "f", nil, "project folder to walk (repeatable; default: git root or working directory)")
}

func addSwitchFlags(cmd *cobra.Command, o *switchOptions) {
	addHostFlags(cmd, &o.hostOptions)
	f := cmd.Flags()
	f.BoolVar(&o.print, "print", false, "print the chosen path instead of opening it")
	f.BoolVar(&o.first, "first", false, "take the first match without prompting")
}

func newSwitchCmd(root *rootOptions) *cobra.Command {
	opts := &switchOptions{}
	cmd := &cobra.Command{
		Use:   "switch <file>",
		Short: "Open the test for a source file, or the source for a test",
		Long: `Switch from <file> to its counterpart.

A file whose name starts with a configured prefix or ends with a configured
suffix is a test; its source names are found by removing the affix. Any other
file is a source; its test names are built by adding each suffix and prefix.

Open documents (--open, --open-from) are searched first. The folders are
walked only when no open document matches.`,
		Example: `  # Open the test for a source file in $EDITOR
  testswitch switch src/widget.js

  # Print the path for an editor integration
  testswitch switch --print --first spec/widget_spec.js

  # Pass the open buffers on stdin
  printf '%s\n' src/widget.js spec/widget_spec.js | testswitch switch --open-from - src/widget.js

  See Also: testswitch resolve`,
		Args: usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSwitch(cmd, root, opts, args[0])
		},
	}
	addSwitchFlags(cmd, opts)
	return cmd
}

func runSwitch(cmd *cobra.Command, root *rootOptions, opts *switchOptions, file string) error {
	cfg, err := root.settings()
	if err != nil {
		return err
	}

	ws, err := opts.workspace(cmd, file)
	if err != nil {
		return err
	}

	// In print mode stdout carries only the path.
	uiOut := cmd.OutOrStdout()
	if opts.print {
		uiOut = cmd.ErrOrStderr()
	}
	noticeOut := uiOut
	if root.quiet {
		noticeOut = io.Discard
	}

	s := &switcher.Switcher{
		Config:   cfg,
		Host:     ws,
		Selector: opts.selector(cmd.InOrStdin(), uiOut),
		Opener:   opts.opener(cmd),
		Notifier: prompt.NewNotifier(noticeOut),
	}

	res, err := s.Run(cmd.Context())
	if errors.Is(err, errors.ErrNoActiveDocument) {
		return errors.NewUserError(err, "Pass the file to switch from: testswitch <file>")
	}
	if errors.Is(err, prompt.ErrInvalidSelection) {
		return errors.NewUserError(err, "Answer with one of the listed numbers, or q to cancel")
	}
	if err != nil {
		return err
	}

	logging.FromContext(cmd.Context()).Info("switch finished",
		"outcome", string(res.Outcome),
		"path", res.Path)
	return nil
}

func (o *switchOptions) selector(in io.Reader, out io.Writer) switcher.Selector {
	if o.first {
		return prompt.FirstSelector{}
	}
	return prompt.NewSelector(in, out)
}

func (o *switchOptions) opener(cmd *cobra.Command) switcher.Opener {
	if o.print {
		return editor.PrintOpener{W: cmd.OutOrStdout()}
	}
	return editor.New(cmd.Context())
}

// workspace assembles the host state for file from the flags.
func (o *hostOptions) workspace(cmd *cobra.Command, file string) (*workspace.Workspace, error) {
	ctx := cmd.Context()
	ws := &workspace.Workspace{Logger: logging.FromContext(ctx)}

	if file != "" {
		active, err := filepath.Abs(file)
		if err != nil {
			return nil, errors.Wrapf(err, "resolving %s", file)
		}
		ws.Active = active
	}

	docs := o.open
	if o.openFrom != "" {
		listed, err := workspace.LoadDocumentList(o.openFrom, cmd.InOrStdin())
		if err != nil {
			return nil, errors.NewUserError(err, "Check the --open-from path")
		}
		docs = append(append([]string{}, docs...), listed...)
	}
	var err error
	if ws.Documents, err = absPaths(docs); err != nil {
		return nil, err
	}

	if ws.Folders, err = absPaths(o.folders); err != nil {
		return nil, err
	}
	if len(ws.Folders) == 0 {
		if ws.Folders, err = workspace.DefaultFolders(ctx, ws.Active); err != nil {
			return nil, errors.NewSystemError(err, "Pass project folders with --folder")
		}
	}

	logging.FromContext(ctx).Debug("workspace",
		"active", ws.Active,
		"documents", len(ws.Documents),
		"folders", ws.Folders)
	return ws, nil
}
