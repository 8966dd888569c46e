package linker

import (
	"regexp"
	"strings"
)

// Kind identifies which reference set a token belongs to.
type Kind int

const (
	// KindPR is a pull-request reference such as #123.
	KindPR Kind = iota
	// KindCommit is an abbreviated or full commit hash.
	KindCommit
)

// String returns the lowercase name, "pr" or "commit".
func (k Kind) String() string {
	switch k {
	case KindPR:
		return "pr"
	case KindCommit:
		return "commit"
	default:
		return "unknown"
	}
}

// linkDefPattern matches an existing reference-link definition line.
// Group 1 is the identifier.
var linkDefPattern = regexp.MustCompile(`^\[([^\]]+)\]:\s[^\n]+`)

// tokenMatcher finds one kind of reference token in a line. RE2 has no
// lookbehind, so the bracket guard is applied to each candidate in classify.
type tokenMatcher struct {
	kind    Kind
	pattern *regexp.Regexp
}

var (
	prMatcher     = tokenMatcher{kind: KindPR, pattern: regexp.MustCompile(`#[0-9]+`)}
	commitMatcher = tokenMatcher{kind: KindCommit, pattern: regexp.MustCompile(`\b[0-9a-f]{7,40}\b`)}
)

// verdict is what to do with one candidate match.
type verdict int

const (
	// wrap records the token and rewrites it as [token][].
	wrap verdict = iota
	// keep records the token but leaves the text alone: it is already [token][].
	keep
	// ignore leaves the candidate alone without recording it.
	ignore
)

// classify decides how the candidate line[start:end] is handled.
func (m tokenMatcher) classify(line string, start, end int) verdict {
	before := line[:start]

	// The digits of a linked PR such as [#1234567][] are not a commit hash.
	if m.kind == KindCommit && strings.HasSuffix(before, "[#") {
		return ignore
	}
	if !strings.HasSuffix(before, "[") {
		return wrap
	}
	if strings.HasPrefix(line[end:], "][]") {
		return keep
	}
	return ignore
}

// apply rewrites every bare token in line and records each recognized token
// into refs. It returns the new line and the number of tokens wrapped.
func (m tokenMatcher) apply(line string, refs *refSet) (string, int) {
	locs := m.pattern.FindAllStringIndex(line, -1)
	if len(locs) == 0 {
		return line, 0
	}

	var b strings.Builder
	b.Grow(len(line) + len(locs)*len("[][]"))

	last, wrapped := 0, 0
	for _, loc := range locs {
		start, end := loc[0], loc[1]
		token := line[start:end]

		v := m.classify(line, start, end)
		if v == ignore {
			continue
		}
		refs.add(token)
		if v == keep {
			continue
		}

		b.WriteString(line[last:start])
		b.WriteString(Reference(token))
		last = end
		wrapped++
	}

	if wrapped == 0 {
		return line, 0
	}
	b.WriteString(line[last:])
	return b.String(), wrapped
}

// Reference returns the inline reference-link shorthand for token.
func Reference(token string) string {
	return "[" + token + "][]"
}

// refSet is an insertion-ordered set of identifiers.
type refSet struct {
	order []string
	seen  map[string]struct{}
}

func newRefSet() refSet {
	return refSet{seen: make(map[string]struct{})}
}

// add inserts id and reports whether it was new.
func (s *refSet) add(id string) bool {
	if _, ok := s.seen[id]; ok {
		return false
	}
	s.seen[id] = struct{}{}
	s.order = append(s.order, id)
	return true
}

func (s *refSet) has(id string) bool {
	_, ok := s.seen[id]
	return ok
}

func (s *refSet) len() int {
	return len(s.order)
}

// items returns the identifiers in first-seen order.
func (s *refSet) items() []string {
	return s.order
}
