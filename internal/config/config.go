package config

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
)

// Skip-rule match strategies. The strategy decides how a configured
// fragment is compared against a candidate file name, extension or
// directory name.
const (
	// StrategyContains skips a candidate that contains the fragment.
	StrategyContains = "contains"

	// StrategyExact skips a candidate equal to the fragment.
	StrategyExact = "exact"

	// StrategyPrefix skips a candidate that starts with the fragment.
	StrategyPrefix = "prefix"

	// StrategySuffix skips a candidate that ends with the fragment.
	StrategySuffix = "suffix"

	// StrategyRegex treats each fragment as a regular expression.
	StrategyRegex = "regex"

	// StrategyGlob treats each fragment as a glob pattern.
	StrategyGlob = "glob"
)

// Strategies lists every accepted match strategy in documentation order.
var Strategies = []string{
	StrategyContains, StrategyExact, StrategyPrefix, StrategySuffix, StrategyRegex, StrategyGlob,
}

// DefaultFullWordRegex classifies letters, digits and underscore as
// word-forming characters.
const DefaultFullWordRegex = `[\p{L}\p{N}_]`

// SkipRules lists the fragments that exclude files and directories from
// processing.
type SkipRules struct {
	// Extensions are compared against the text after the last dot of a
	// file name (without the dot).
	Extensions []string `json:"extensions" yaml:"extensions"`

	// FileNames are compared against the file name without its extension.
	FileNames []string `json:"fileNames" yaml:"fileNames"`

	// DirectoryNames are compared against a directory's base name.
	DirectoryNames []string `json:"directoryNames" yaml:"directoryNames"`

	// MatchStrategy selects the comparison; empty means StrategyContains.
	MatchStrategy string `json:"matchStrategy,omitempty" yaml:"matchStrategy,omitempty"`
}

// Strategy returns the effective match strategy.
func (s SkipRules) Strategy() string {
	if s.MatchStrategy == "" {
		return StrategyContains
	}
	return strings.ToLower(s.MatchStrategy)
}

// String renders the rules as one tab-indented line per list.
func (s SkipRules) String() string {
	return fmt.Sprintf("\tExtensions: %s\n\tFiles: %s\n\tDirectories: %s\n\tStrategy: %s",
		strings.Join(s.Extensions, ", "),
		strings.Join(s.FileNames, ", "),
		strings.Join(s.DirectoryNames, ", "),
		s.Strategy(),
	)
}

// Configuration holds every toggle of a rename run. It is loaded once and
// treated as read-only while a run is in progress.
type Configuration struct {
	// Skip holds the exclusion rules.
	Skip SkipRules `json:"skip" yaml:"skip"`

	// MatchCase makes matching case-sensitive.
	MatchCase bool `json:"matchCase" yaml:"matchCase"`

	// FullWord only replaces matches whose neighbours are not word-forming.
	FullWord bool `json:"fullWord" yaml:"fullWord"`

	// FullWordRegex matches a single word-forming character.
	FullWordRegex string `json:"fullWordRegex" yaml:"fullWordRegex"`

	// RenameFiles enables renaming of files whose names match.
	RenameFiles bool `json:"renameFiles" yaml:"renameFiles"`

	// RenameDirectories enables renaming of directories whose names match.
	RenameDirectories bool `json:"renameDirectories" yaml:"renameDirectories"`

	// RenameWithinFileContent enables rewriting of file contents. When off,
	// files are skipped entirely, renames included.
	RenameWithinFileContent bool `json:"renameWithinFileContent" yaml:"renameWithinFileContent"`

	// UseFileExtensionWhileRenaming feeds the whole file name, extension
	// included, to the matcher. When false only the name before the
	// extension is matched and the extension is carried over unchanged.
	UseFileExtensionWhileRenaming bool `json:"useFileExtensionWhileRenamingFile" yaml:"useFileExtensionWhileRenamingFile"`

	// OpenDirectoryAfter opens the root directory in the host file browser
	// once the run finishes.
	OpenDirectoryAfter bool `json:"openDirectoryAfter" yaml:"openDirectoryAfter"`

	// SkipBinaryFiles leaves the content of non-text files untouched.
	SkipBinaryFiles bool `json:"skipBinaryFiles,omitempty" yaml:"skipBinaryFiles,omitempty"`
}

// Default returns the configuration used when no file is found.
func Default() Configuration {
	return Configuration{
		Skip: SkipRules{
			Extensions:     []string{},
			FileNames:      []string{},
			DirectoryNames: []string{".git"},
			MatchStrategy:  StrategyContains,
		},
		FullWordRegex:           DefaultFullWordRegex,
		RenameFiles:             true,
		RenameDirectories:       true,
		RenameWithinFileContent: true,
	}
}

// Validate checks the fields that can be wrong independently of a run.
// Regular expressions are compiled by the components that use them.
func (c *Configuration) Validate() error {
	if lo.Contains(Strategies, c.Skip.Strategy()) {
		return nil
	}
	return fmt.Errorf("invalid skip.matchStrategy %q (valid: %s)", c.Skip.MatchStrategy, strings.Join(Strategies, ", "))
}

// String lists every field by name, one per line. Nested values start on
// the line after their name.
func (c Configuration) String() string {
	var b strings.Builder
	b.WriteString("Skip: \n")
	b.WriteString(c.Skip.String())
	b.WriteString("\n")
	fmt.Fprintf(&b, "MatchCase: %t\n", c.MatchCase)
	fmt.Fprintf(&b, "FullWord: %t\n", c.FullWord)
	fmt.Fprintf(&b, "FullWordRegex: %s\n", c.FullWordRegex)
	fmt.Fprintf(&b, "RenameFiles: %t\n", c.RenameFiles)
	fmt.Fprintf(&b, "RenameDirectories: %t\n", c.RenameDirectories)
	fmt.Fprintf(&b, "RenameWithinFileContent: %t\n", c.RenameWithinFileContent)
	fmt.Fprintf(&b, "UseFileExtensionWhileRenamingFile: %t\n", c.UseFileExtensionWhileRenaming)
	fmt.Fprintf(&b, "OpenDirectoryAfter: %t\n", c.OpenDirectoryAfter)
	fmt.Fprintf(&b, "SkipBinaryFiles: %t\n", c.SkipBinaryFiles)
	return b.String()
}
