package regen

import (
	"path/filepath"
	"strconv"
	"strings"

	"github.com/simonhull/quill/internal/patch"
)

// Names of the built-in kinds.
const (
	UIKindName       = "ui"
	ResourceKindName = "resource"
)

// Kind describes one family of source files and how their artifacts are built.
type Kind struct {
	Name           string
	Label          string // Used in console messages, e.g. "UI"
	SourceExt      string // e.g. ".ui"
	ArtifactSuffix string // Replaces SourceExt, e.g. "_ui.py"
	Tool           string
	Args           func(source, artifact string) []string
	Rules          patch.Chain
	PatchPurpose   string // Appended to the patch console line, e.g. "to import resources"

	// Recursive kinds are built next to their sources in every directory of a
	// tree. Flat kinds read one directory and write into a fixed target.
	Recursive bool
}

// ArtifactPath names the artifact for source inside targetDir.
func (k Kind) ArtifactPath(source, targetDir string) string {
	name := strings.TrimSuffix(filepath.Base(source), k.SourceExt)
	return filepath.Join(targetDir, name+k.ArtifactSuffix)
}

// UIOptions configures the Qt Designer kind.
type UIOptions struct {
	Tool           string // pyuic6
	Suffix         string // _ui.py
	MainWindow     string // main_window_ui.py
	ResourceImport string // from . import resources_rc
}

// NewUIKind builds the kind for Qt Designer .ui files.
// The main window artifact gets the resource import appended.
func NewUIKind(opts UIOptions) Kind {
	return Kind{
		Name:           UIKindName,
		Label:          "UI",
		SourceExt:      ".ui",
		ArtifactSuffix: opts.Suffix,
		Tool:           opts.Tool,
		Args: func(source, artifact string) []string {
			return []string{"-o", artifact, source}
		},
		Rules: patch.Chain{
			patch.AppendTo{Label: "import-resources", BaseName: opts.MainWindow, Text: opts.ResourceImport},
		},
		PatchPurpose: "to import resources",
		Recursive:    true,
	}
}

// ResourceOptions configures the Qt resource kind.
type ResourceOptions struct {
	Tool        string // pyrcc5
	Suffix      string // _rc.py
	Compression int
	ReplaceFrom string // PyQt5
	ReplaceTo   string // PyQt6
}

// NewResourceKind builds the kind for Qt .qrc resource bundles.
func NewResourceKind(opts ResourceOptions) Kind {
	return Kind{
		Name:           ResourceKindName,
		Label:          "resources",
		SourceExt:      ".qrc",
		ArtifactSuffix: opts.Suffix,
		Tool:           opts.Tool,
		Args: func(source, artifact string) []string {
			return []string{"-compress", strconv.Itoa(opts.Compression), "-o", artifact, source}
		},
		Rules: patch.Chain{
			patch.Replace{Label: "pyqt-version", Old: opts.ReplaceFrom, New: opts.ReplaceTo},
		},
	}
}
