package regen

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/simonhull/quill/internal/filesystem"
	"github.com/simonhull/quill/internal/output"
)

// Report lists what a run did, by path.
type Report struct {
	Built   []string // Sources whose generator succeeded
	Patched []string // Artifacts rewritten by patch rules
	Skipped []string // Sources whose artifact was fresh
	Failed  []string // Sources whose generator failed
	Planned []string // Sources that would be rebuilt (dry run)
}

// Merge appends other's entries to r.
func (r *Report) Merge(other Report) {
	r.Built = append(r.Built, other.Built...)
	r.Patched = append(r.Patched, other.Patched...)
	r.Skipped = append(r.Skipped, other.Skipped...)
	r.Failed = append(r.Failed, other.Failed...)
	r.Planned = append(r.Planned, other.Planned...)
}

// Job pairs a kind with the directories it reads and writes.
// TargetDir is ignored for recursive kinds, which write next to each source.
type Job struct {
	Kind      Kind
	SourceDir string
	TargetDir string
}

// Options configures a Regenerator
type Options struct {
	Logger *zap.Logger
	Walk   filesystem.WalkOptions
}

// Regenerator rebuilds stale artifacts, one file at a time.
type Regenerator struct {
	runner Runner
	logger *zap.Logger
	walk   filesystem.WalkOptions
}

// New creates a Regenerator that invokes generators through runner.
func New(runner Runner, opts *Options) *Regenerator {
	if opts == nil {
		opts = &Options{}
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Regenerator{
		runner: runner,
		logger: logger,
		walk:   opts.Walk,
	}
}

// Run executes jobs in order and merges their reports.
func (r *Regenerator) Run(ctx context.Context, jobs []Job, policy Policy) (Report, error) {
	var report Report
	for _, job := range jobs {
		var (
			part Report
			err  error
		)
		if job.Kind.Recursive {
			part, err = r.RegenerateTree(ctx, job.SourceDir, job.Kind, policy)
		} else {
			part, err = r.Regenerate(ctx, job.SourceDir, job.TargetDir, job.Kind, policy)
		}
		report.Merge(part)
		if err != nil {
			return report, err
		}
	}
	return report, nil
}

// RegenerateTree regenerates root and every directory below it, writing each
// artifact next to its source.
func (r *Regenerator) RegenerateTree(ctx context.Context, root string, kind Kind, policy Policy) (Report, error) {
	var report Report

	dirs, err := filesystem.Dirs(root, r.walk)
	if err != nil {
		return report, err
	}

	for _, dir := range dirs {
		part, err := r.Regenerate(ctx, dir, dir, kind, policy)
		report.Merge(part)
		if err != nil {
			return report, err
		}
	}
	return report, nil
}

// Regenerate rebuilds the stale artifacts for the sources directly inside
// sourceDir, writing them into targetDir. Subdirectories are not visited.
func (r *Regenerator) Regenerate(ctx context.Context, sourceDir, targetDir string, kind Kind, policy Policy) (Report, error) {
	var report Report

	sources, err := filesystem.Files(sourceDir, kind.SourceExt)
	if err != nil {
		return report, err
	}

	force := policy.ForceFor(kind)
	for _, source := range sources {
		artifact := kind.ArtifactPath(source, targetDir)
		log := r.logger.With(
			zap.String("kind", kind.Name),
			zap.String("source", source),
			zap.String("artifact", artifact),
		)

		reason, err := Evaluate(source, artifact, force)
		if err != nil {
			return report, err
		}
		if !reason.Stale() {
			log.Debug("artifact is up to date")
			report.Skipped = append(report.Skipped, source)
			continue
		}
		log.Debug("regenerating artifact", zap.String("reason", string(reason)))

		ops := r.plan(kind, source, artifact, reason)
		err = Execute(ctx, ops, ExecuteOptions{DryRun: policy.DryRun, Announce: output.Info})

		var toolErr *ToolError
		switch {
		case err == nil && policy.DryRun:
			report.Planned = append(report.Planned, source)
		case err == nil:
			report.Built = append(report.Built, source)
			if p := patchOf(ops); p != nil && p.Changed {
				report.Patched = append(report.Patched, artifact)
			}
		case errors.As(err, &toolErr) && policy.ContinueOnToolError:
			log.Debug("generator failed, continuing", zap.Error(err))
			output.Warn(toolErr.Error())
			report.Failed = append(report.Failed, source)
		default:
			return report, fmt.Errorf("regenerating %s: %w", source, err)
		}
	}

	return report, nil
}

func (r *Regenerator) plan(kind Kind, source, artifact string, reason Reason) []Operation {
	var ops []Operation
	if reason == ReasonForced {
		ops = append(ops, &RemoveOp{Path: artifact})
	}
	ops = append(ops, &GenerateOp{Runner: r.runner, Kind: kind, Source: source, Artifact: artifact})
	if kind.Rules.Targets(artifact) {
		ops = append(ops, &PatchOp{Path: artifact, Label: kind.Label, Purpose: kind.PatchPurpose, Rules: kind.Rules})
	}
	return ops
}

func patchOf(ops []Operation) *PatchOp {
	for _, op := range ops {
		if p, ok := op.(*PatchOp); ok {
			return p
		}
	}
	return nil
}
