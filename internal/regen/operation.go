package regen

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/simonhull/quill/internal/patch"
)

// Runner runs an external command to completion.
// *exec.Executor satisfies it.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) error
}

// Operation is one filesystem or tool step of a regeneration.
//
// Description returns the console line printed before the step runs
// (e.g. "Building UI gns3/ui/main_window.ui").
type Operation interface {
	Execute(ctx context.Context) error
	Description() string
}

// RemoveOp deletes an artifact before a forced rebuild so that nothing from
// the previous generation survives a partial write.
type RemoveOp struct {
	Path string
}

func (op *RemoveOp) Execute(ctx context.Context) error {
	if err := os.Remove(op.Path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("removing %s: %w", op.Path, err)
	}
	return nil
}

func (op *RemoveOp) Description() string {
	return fmt.Sprintf("Removing %s", op.Path)
}

// GenerateOp runs the kind's tool for one source.
// A failing tool is reported as *ToolError.
type GenerateOp struct {
	Runner   Runner
	Kind     Kind
	Source   string
	Artifact string
}

func (op *GenerateOp) Execute(ctx context.Context) error {
	dir := filepath.Dir(op.Artifact)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("cannot create directory %s: %w", dir, err)
	}

	if err := op.Runner.Run(ctx, op.Kind.Tool, op.Kind.Args(op.Source, op.Artifact)...); err != nil {
		return &ToolError{Tool: filepath.Base(op.Kind.Tool), Source: op.Source, Err: err}
	}
	return nil
}

func (op *GenerateOp) Description() string {
	return fmt.Sprintf("Building %s %s", op.Kind.Label, op.Source)
}

// PatchOp applies the kind's rules to a freshly generated artifact.
type PatchOp struct {
	Path    string
	Label   string
	Purpose string
	Rules   patch.Chain

	// Changed is set by Execute when the artifact content was rewritten.
	Changed bool
}

func (op *PatchOp) Execute(ctx context.Context) error {
	changed, err := op.Rules.ApplyFile(op.Path)
	if err != nil {
		return err
	}
	op.Changed = changed
	return nil
}

func (op *PatchOp) Description() string {
	if op.Purpose == "" {
		return fmt.Sprintf("Patching %s %s", op.Label, op.Path)
	}
	return fmt.Sprintf("Patching %s %s %s", op.Label, op.Path, op.Purpose)
}

// ExecuteOptions configures execution behavior
type ExecuteOptions struct {
	DryRun   bool
	Announce func(msg string) // Receives each step description before it runs
}

// Execute runs operations in order and stops at the first error.
// In dry-run mode it only announces what would run.
func Execute(ctx context.Context, ops []Operation, opts ExecuteOptions) error {
	announce := opts.Announce
	if announce == nil {
		announce = func(string) {}
	}

	for _, op := range ops {
		if opts.DryRun {
			announce("[DRY RUN] " + op.Description())
			continue
		}
		announce(op.Description())
		if err := op.Execute(ctx); err != nil {
			return err
		}
	}

	return nil
}
