// Package switcher finds the test file for a source file and the source file
// for a test, using configurable name prefixes and suffixes.
//
// The matching rules are pure functions over path sequences; the host
// (active document, open documents, project folders) and the user-facing
// surface (notification, selection list, opening a file) are injected as
// small interfaces so the command can run from a CLI, an editor plugin, or a
// test.
package switcher

import (
	"context"
	"iter"

	"github.com/thoreinstein/testswitch/internal/config"
	"github.com/thoreinstein/testswitch/internal/errors"
	"github.com/thoreinstein/testswitch/internal/logging"
)

// NotFoundMessage is shown when no counterpart exists.
const NotFoundMessage = "No test or source file was found to switch to."

// Host exposes the editor state a switch works from.
type Host interface {
	// ActiveDocument returns the current file, or false when there is none.
	ActiveDocument() (string, bool)
	// OpenDocuments yields the paths of open documents in host order.
	OpenDocuments() iter.Seq[string]
	// FolderPaths yields every file under the project folders.
	FolderPaths() iter.Seq[string]
}

// Selector lets the user pick one of several paths.
// It returns errors.ErrSelectionCancelled when the user backs out.
type Selector interface {
	SelectPath(paths []string) (string, error)
}

// Opener opens a file for the user.
type Opener interface {
	Open(path string) error
}

// Notifier shows an informational message.
type Notifier interface {
	Notify(msg string)
}

// Outcome is how a switch ended.
type Outcome string

const (
	OutcomeNotFound  Outcome = "not_found"
	OutcomeOpened    Outcome = "opened"
	OutcomeCancelled Outcome = "cancelled"
)

// Result describes a resolved (and possibly executed) switch.
type Result struct {
	Plan    Plan     `json:"plan"`
	Phase   Phase    `json:"phase"`
	Options []string `json:"options"`
	Outcome Outcome  `json:"outcome,omitempty"`
	Path    string   `json:"path,omitempty"`
}

// Switcher runs the switch command against a host.
type Switcher struct {
	Config   *config.Config
	Host     Host
	Selector Selector
	Opener   Opener
	Notifier Notifier
}

// Resolve computes the plan and the matching paths without touching the UI.
func (s *Switcher) Resolve(ctx context.Context) (Result, error) {
	logger := logging.FromContext(ctx)

	active, ok := s.Host.ActiveDocument()
	if !ok {
		return Result{}, errors.ErrNoActiveDocument
	}

	plan := NewPlan(active, s.Config)
	logger.Debug("planned switch",
		"active", active,
		"base_name", plan.BaseName,
		"is_test", plan.IsTest,
		"candidates", plan.Candidates,
		"extensions", plan.Extensions)

	options, phase := findOptions(plan.Candidates, plan.Extensions, s.Host.OpenDocuments(), s.Host.FolderPaths())
	logger.Debug("resolved options", "phase", string(phase), "count", len(options))

	if options == nil {
		options = []string{}
	}
	return Result{Plan: plan, Phase: phase, Options: options}, nil
}

// Run resolves the counterpart and acts on it: no match notifies, one match
// opens, several matches ask the selector first. A cancelled selection is
// not an error.
func (s *Switcher) Run(ctx context.Context) (Result, error) {
	res, err := s.Resolve(ctx)
	if err != nil {
		return res, err
	}

	var path string
	switch len(res.Options) {
	case 0:
		s.Notifier.Notify(NotFoundMessage)
		res.Outcome = OutcomeNotFound
		return res, nil
	case 1:
		path = res.Options[0]
	default:
		path, err = s.Selector.SelectPath(res.Options)
		if errors.Is(err, errors.ErrSelectionCancelled) {
			logging.FromContext(ctx).Debug("selection cancelled")
			res.Outcome = OutcomeCancelled
			return res, nil
		}
		if err != nil {
			return res, errors.Wrap(err, "selecting counterpart")
		}
	}

	if err := s.Opener.Open(path); err != nil {
		return res, errors.Wrapf(err, "opening %s", path)
	}
	res.Outcome = OutcomeOpened
	res.Path = path
	return res, nil
}
