package skip

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/gobwas/glob"
	"github.com/samber/lo"

	"github.com/shinji-kodama/renamer/internal/config"
)

// Predicate reports whether candidate is matched by a configured fragment.
type Predicate func(candidate, fragment string) bool

// Contains is the default predicate: the fragment is a literal,
// case-sensitive substring of the candidate.
func Contains(candidate, fragment string) bool {
	return strings.Contains(candidate, fragment)
}

// Exact matches when candidate equals fragment.
func Exact(candidate, fragment string) bool {
	return candidate == fragment
}

// Prefix matches when candidate starts with fragment.
func Prefix(candidate, fragment string) bool {
	return strings.HasPrefix(candidate, fragment)
}

// Suffix matches when candidate ends with fragment.
func Suffix(candidate, fragment string) bool {
	return strings.HasSuffix(candidate, fragment)
}

// Filter applies skip rules to file and directory names.
type Filter struct {
	rules    config.SkipRules
	contains Predicate
}

// New creates a Filter with an explicit predicate. Empty fragments are
// dropped, since under substring containment they would match every name.
func New(rules config.SkipRules, predicate Predicate) *Filter {
	if predicate == nil {
		predicate = Contains
	}
	return &Filter{
		rules: config.SkipRules{
			Extensions:     nonEmpty(rules.Extensions),
			FileNames:      nonEmpty(rules.FileNames),
			DirectoryNames: nonEmpty(rules.DirectoryNames),
			MatchStrategy:  rules.MatchStrategy,
		},
		contains: predicate,
	}
}

// FromRules creates a Filter using the predicate named by
// rules.MatchStrategy. Regex and glob fragments are compiled up front so a
// bad pattern is reported before any file is touched.
func FromRules(rules config.SkipRules) (*Filter, error) {
	predicate, err := PredicateFor(rules)
	if err != nil {
		return nil, err
	}
	return New(rules, predicate), nil
}

// PredicateFor builds the predicate for rules.MatchStrategy.
func PredicateFor(rules config.SkipRules) (Predicate, error) {
	switch rules.Strategy() {
	case config.StrategyContains:
		return Contains, nil
	case config.StrategyExact:
		return Exact, nil
	case config.StrategyPrefix:
		return Prefix, nil
	case config.StrategySuffix:
		return Suffix, nil
	case config.StrategyRegex:
		return compiled(rules, func(fragment string) (func(string) bool, error) {
			re, err := regexp.Compile(fragment)
			if err != nil {
				return nil, err
			}
			return re.MatchString, nil
		})
	case config.StrategyGlob:
		return compiled(rules, func(fragment string) (func(string) bool, error) {
			g, err := glob.Compile(fragment)
			if err != nil {
				return nil, err
			}
			return g.Match, nil
		})
	default:
		return nil, fmt.Errorf("unknown skip match strategy %q", rules.MatchStrategy)
	}
}

// compiled precompiles every fragment of rules with compile and returns a
// predicate that looks the compiled matcher up by fragment.
func compiled(rules config.SkipRules, compile func(string) (func(string) bool, error)) (Predicate, error) {
	all := lo.Uniq(nonEmpty(lo.Flatten([][]string{rules.Extensions, rules.FileNames, rules.DirectoryNames})))

	matchers := make(map[string]func(string) bool, len(all))
	for _, fragment := range all {
		m, err := compile(fragment)
		if err != nil {
			return nil, fmt.Errorf("invalid skip pattern %q: %w", fragment, err)
		}
		matchers[fragment] = m
	}

	return func(candidate, fragment string) bool {
		m, ok := matchers[fragment]
		return ok && m(candidate)
	}, nil
}

// ShouldSkipDirectory reports whether a directory with the given base name
// is excluded, along with its whole subtree.
func (f *Filter) ShouldSkipDirectory(name string) bool {
	return f.any(f.rules.DirectoryNames, name)
}

// ShouldSkipFile reports whether a file is excluded. The name is split at
// its last dot: the part after it is checked against the extension rules,
// the part before it against the file name rules. A name without a dot has
// no extension.
func (f *Filter) ShouldSkipFile(fileName string) bool {
	base, ext, hasExt := splitExtension(fileName)

	if hasExt && f.any(f.rules.Extensions, ext) {
		return true
	}
	return f.any(f.rules.FileNames, base)
}

// Rules returns the effective rules, with empty fragments removed.
func (f *Filter) Rules() config.SkipRules {
	return f.rules
}

func (f *Filter) any(fragments []string, candidate string) bool {
	return lo.SomeBy(fragments, func(fragment string) bool {
		return f.contains(candidate, fragment)
	})
}

func splitExtension(fileName string) (base, ext string, ok bool) {
	dot := strings.LastIndexByte(fileName, '.')
	if dot < 0 {
		return fileName, "", false
	}
	return fileName[:dot], fileName[dot+1:], true
}

func nonEmpty(fragments []string) []string {
	return lo.Filter(fragments, func(s string, _ int) bool { return s != "" })
}
