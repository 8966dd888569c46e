// Package git finds the hosted repository a changelog belongs to.
//
// Repositories are opened with go-git, so no git executable is needed. The
// lookup walks up from a directory to the enclosing repository, reads the URL
// of a named remote and turns it into the https base URL that pull-request and
// commit links are built under:
//
//	base, err := git.RepoBaseURL(".", "origin")
//	// git@github.com:hydradatabase/hydra.git -> https://github.com/hydradatabase/hydra
//
// # Remote URL Forms
//
// BaseURL accepts the forms git itself accepts for hosted remotes:
//
//	git@github.com:owner/repo.git
//	ssh://git@github.com:22/owner/repo.git
//	https://github.com/owner/repo.git
//	git://github.com/owner/repo
//
// Local paths and file:// remotes have no web page and are rejected.
//
// # Error Handling
//
// Errors are *output.ExitError values:
//   - ExitUserError (1) when there is no repository, the remote doesn't exist,
//     or its URL isn't a hosted repository
//   - ExitSystemError (2) when the repository can't be read
package git
