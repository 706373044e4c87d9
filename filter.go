package alto

/*
Directive-based level filtering.

A filter specification is a comma-separated list of clauses read once at
startup (usually from the GO_LOG environment variable):

	GO_LOG="tokio=warn,my_module=info,my_module::inner=trace"

Each `target=level` clause appends a directive; a bare `level` clause sets
the default used when no directive prefix matches a record's target. Among
matching directives the longest prefix governs; equal-length ties go to the
last-specified one, so repeating a clause acts as an override.
*/

import (
	"os"
	"strings"
)

// Directive is a single filtering rule: records whose target starts with
// Prefix are enabled only at Level or more severe. Immutable after parsing.
type Directive struct {
	Prefix string
	Level  Level
}

// DirectiveSet holds the parsed directives in specification order plus the
// global default level. Built once at startup and read-only afterwards, so
// it is safe for concurrent use without locking.
type DirectiveSet struct {
	directives []Directive
	deflt      Level
}

// ParseError reports a malformed filter specification clause. The host may
// fail fast on it or fall back to defaults; DirectivesFromEnv does the
// latter automatically.
type ParseError struct {
	Spec   string // the full specification being parsed
	Clause string // the offending clause
}

func (e *ParseError) Error() string {
	return "alto: unrecognized level in filter clause `" + e.Clause + "`"
}

// ParseDirectives parses a filter specification string into a DirectiveSet.
//
// Whitespace around clause separators is insignificant and empty clauses
// (trailing or doubled commas) are ignored rather than erroring, since
// environment-supplied filters must not crash the host process. A clause
// with an unrecognized level name yields a *ParseError identifying it.
//
// An empty specification yields no directives and the fallback default
// level [DEFAULT_FILTER_LEVEL] (Info). This fallback is an invariant of the
// package, not a tunable.
func ParseDirectives(spec string) (*DirectiveSet, error) {
	ds := &DirectiveSet{deflt: DEFAULT_FILTER_LEVEL}
	for clause := range strings.SplitSeq(spec, ",") {
		clause = strings.TrimSpace(clause)
		if clause == "" {
			continue
		}
		if target, name, found := strings.Cut(clause, "="); found {
			level, ok := ParseLevel(strings.TrimSpace(name))
			if !ok {
				return nil, &ParseError{Spec: spec, Clause: clause}
			}
			ds.directives = append(ds.directives, Directive{
				Prefix: strings.TrimSpace(target),
				Level:  level,
			})
		} else {
			level, ok := ParseLevel(clause)
			if !ok {
				return nil, &ParseError{Spec: spec, Clause: clause}
			}
			// bare level clause overrides the default, last one wins
			ds.deflt = level
		}
	}
	return ds, nil
}

// DirectivesFromEnv builds a DirectiveSet from the FILTER_ENV_VAR ("GO_LOG")
// environment variable. A malformed specification falls back to an empty
// set with the default level instead of failing: a bad filter must never
// take the host process down.
func DirectivesFromEnv() *DirectiveSet {
	ds, err := ParseDirectives(os.Getenv(FILTER_ENV_VAR))
	if err != nil {
		return &DirectiveSet{deflt: DEFAULT_FILTER_LEVEL}
	}
	return ds
}

// Default returns the level that gates targets matched by no directive.
func (ds *DirectiveSet) Default() Level {
	return ds.deflt
}

// Directives returns the parsed directives in specification order.
func (ds *DirectiveSet) Directives() []Directive {
	return ds.directives
}

// Enabled reports whether a record with the given target and level passes
// the filter.
//
// Matching is a plain string-prefix check, not path-segment-aware: a
// directive `foo` matches target `foobar` too. Among matching directives
// the one with the longest prefix governs (>= keeps the last-specified
// winner on equal lengths); with no match the default level applies. The
// record is enabled when its level is at least as severe as the governing
// minimum.
//
// Pure and stateless: no I/O, no mutation, safe to call concurrently.
func (ds *DirectiveSet) Enabled(target string, level Level) bool {
	minimum := ds.deflt
	best := -1
	for _, d := range ds.directives {
		if len(d.Prefix) >= best && strings.HasPrefix(target, d.Prefix) {
			best = len(d.Prefix)
			minimum = d.Level
		}
	}
	return level <= minimum
}
