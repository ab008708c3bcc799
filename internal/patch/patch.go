// Package patch applies small text transforms to generated files.
//
// Generated code sometimes needs a fix-up that the generator itself cannot
// express: an extra import, or a framework name that the tool writes for the
// wrong major version. Each fix-up is a named Rule; rules for one artifact
// kind are grouped into a Chain and applied in order right after generation.
package patch

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Rule is a pure transform over the text of one artifact.
// path is the artifact location and is only consulted for matching.
type Rule interface {
	Name() string
	Apply(path, text string) string
}

// Matcher is implemented by rules that only touch some artifacts.
type Matcher interface {
	Matches(path string) bool
}

// Replace substitutes every occurrence of Old with New.
type Replace struct {
	Label string
	Old   string
	New   string
}

func (r Replace) Name() string {
	if r.Label != "" {
		return r.Label
	}
	return fmt.Sprintf("replace %q with %q", r.Old, r.New)
}

func (r Replace) Apply(_, text string) string {
	if r.Old == "" {
		return text
	}
	return strings.ReplaceAll(text, r.Old, r.New)
}

// AppendTo appends Text verbatim to artifacts whose base name is BaseName.
// The text is not parsed or merged. Text that already ends with the literal
// is left alone, so a rule applied twice still yields a single copy.
type AppendTo struct {
	Label    string
	BaseName string
	Text     string
}

func (a AppendTo) Name() string {
	if a.Label != "" {
		return a.Label
	}
	return fmt.Sprintf("append to %s", a.BaseName)
}

// Matches reports whether the rule targets path.
func (a AppendTo) Matches(path string) bool {
	return filepath.Base(path) == a.BaseName
}

func (a AppendTo) Apply(path, text string) string {
	if !a.Matches(path) || a.Text == "" || strings.HasSuffix(text, a.Text) {
		return text
	}
	return text + a.Text
}

// Chain is an ordered list of rules.
type Chain []Rule

// Apply runs every rule in order.
func (c Chain) Apply(path, text string) string {
	for _, rule := range c {
		text = rule.Apply(path, text)
	}
	return text
}

// Targets reports whether any rule may change path.
// Rules without a Matcher apply to every artifact.
func (c Chain) Targets(path string) bool {
	for _, rule := range c {
		m, ok := rule.(Matcher)
		if !ok || m.Matches(path) {
			return true
		}
	}
	return false
}

// Names lists the rule names in order.
func (c Chain) Names() []string {
	names := make([]string, len(c))
	for i, rule := range c {
		names[i] = rule.Name()
	}
	return names
}

// ApplyFile rewrites path with the chain applied to its content.
// The file is only written when the content changes. Read and write errors
// are returned as-is wrapped with the path.
func (c Chain) ApplyFile(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		return false, fmt.Errorf("patching %s: %w", path, err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return false, fmt.Errorf("patching %s: %w", path, err)
	}

	patched := c.Apply(path, string(data))
	if patched == string(data) {
		return false, nil
	}

	if err := os.WriteFile(path, []byte(patched), info.Mode().Perm()); err != nil {
		return false, fmt.Errorf("patching %s: %w", path, err)
	}
	return true, nil
}
