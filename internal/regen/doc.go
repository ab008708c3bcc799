// Package regen rebuilds generated artifacts from declarative source files.
//
// A Kind describes one family of sources: which extension identifies them,
// how the artifact is named, which external tool produces it and which patch
// rules run afterwards. The Regenerator visits source directories, asks the
// staleness evaluator whether each artifact must be rebuilt, and if so runs
// the tool and the patch rules.
//
// # Staleness
//
// An artifact is rebuilt when it is missing, when its source has a strictly
// newer modification time, or when the policy forces the kind. Equal
// timestamps count as fresh, so a second run without source changes does no
// work.
//
// # Failures
//
// A generator that exits with an error yields a *ToolError. With
// Policy.ContinueOnToolError the file is reported as failed and the run moves
// on; otherwise the run stops. Filesystem errors always stop the run.
package regen
