package linker

import "strings"

// DefaultBaseURL is the repository links point at when nothing else is configured.
const DefaultBaseURL = "https://github.com/hydradatabase/hydra"

// Definition is a generated link-definition line.
type Definition struct {
	ID   string
	URL  string
	Kind Kind
}

// String renders the definition as `[id]: url`.
func (d Definition) String() string {
	return "[" + d.ID + "]: " + d.URL
}

// Stats summarizes a run.
type Stats struct {
	Lines         int `json:"lines"`
	LinesChanged  int `json:"lines_changed"`
	PRsLinked     int `json:"prs_linked"`
	CommitsLinked int `json:"commits_linked"`
	PRRefs        int `json:"pr_refs"`
	CommitRefs    int `json:"commit_refs"`
	KnownLinks    int `json:"known_links"`
	Definitions   int `json:"definitions"`
	AlreadyKnown  int `json:"already_known"`
}

// Changed reports whether the run altered its input in any way.
func (s Stats) Changed() bool {
	return s.LinesChanged > 0 || s.Definitions > 0
}

// Linker holds the state of one pass. It is not safe for concurrent use;
// create one per input stream.
type Linker struct {
	baseURL string

	known   refSet
	prs     refSet
	commits refSet

	lines, linesChanged int
	prsLinked           int
	commitsLinked       int
}

// New returns a Linker that builds link targets under baseURL.
func New(baseURL string) *Linker {
	return &Linker{
		baseURL: trimBase(baseURL),
		known:   newRefSet(),
		prs:     newRefSet(),
		commits: newRefSet(),
	}
}

// BaseURL returns the repository URL link targets are built from.
func (l *Linker) BaseURL() string {
	return l.baseURL
}

// Line rewrites a single line, without its terminator, and records any
// references or link definitions it contains.
func (l *Linker) Line(line string) string {
	l.lines++

	if m := linkDefPattern.FindStringSubmatch(line); m != nil {
		l.known.add(m[1])
		return line
	}

	out, prs := prMatcher.apply(line, &l.prs)
	out, commits := commitMatcher.apply(out, &l.commits)

	l.prsLinked += prs
	l.commitsLinked += commits
	if prs+commits > 0 {
		l.linesChanged++
	}
	return out
}

// Definitions returns the link definitions missing from the text seen so far:
// PR references first, then commits, each in first-seen order. Identifiers
// already defined by a link-definition line anywhere in the input are skipped.
func (l *Linker) Definitions() []Definition {
	defs := make([]Definition, 0, l.prs.len()+l.commits.len())
	for _, id := range l.prs.items() {
		if l.known.has(id) {
			continue
		}
		defs = append(defs, Definition{ID: id, URL: PullURL(l.baseURL, id), Kind: KindPR})
	}
	for _, id := range l.commits.items() {
		if l.known.has(id) {
			continue
		}
		defs = append(defs, Definition{ID: id, URL: CommitURL(l.baseURL, id), Kind: KindCommit})
	}
	return defs
}

// Stats returns counters for the lines processed so far.
func (l *Linker) Stats() Stats {
	defs := len(l.Definitions())
	return Stats{
		Lines:         l.lines,
		LinesChanged:  l.linesChanged,
		PRsLinked:     l.prsLinked,
		CommitsLinked: l.commitsLinked,
		PRRefs:        l.prs.len(),
		CommitRefs:    l.commits.len(),
		KnownLinks:    l.known.len(),
		Definitions:   defs,
		AlreadyKnown:  l.prs.len() + l.commits.len() - defs,
	}
}

// PullURL returns the pull-request page for a PR reference such as "#42".
func PullURL(baseURL, id string) string {
	return trimBase(baseURL) + "/pull/" + strings.TrimPrefix(id, "#")
}

// CommitURL returns the commit page for a hash.
func CommitURL(baseURL, hash string) string {
	return trimBase(baseURL) + "/commit/" + hash
}

func trimBase(baseURL string) string {
	return strings.TrimRight(baseURL, "/")
}
