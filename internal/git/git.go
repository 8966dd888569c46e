package git

import (
	"errors"
	"fmt"
	"os"

	gogit "github.com/go-git/go-git/v5"

	"github.com/hydradatabase/autolink/internal/output"
)

// openRepo opens the repository containing dir, walking up parent
// directories. An empty dir means the working directory.
func openRepo(dir string) (*gogit.Repository, error) {
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, output.NewSystemErrorWithCause("getting current directory: "+err.Error(), err)
		}
		dir = wd
	}

	repo, err := gogit.PlainOpenWithOptions(dir, &gogit.PlainOpenOptions{
		DetectDotGit: true,
	})
	if errors.Is(err, gogit.ErrRepositoryNotExists) {
		return nil, output.NewUserErrorWithCause(fmt.Sprintf("%s is not in a git repository", dir), err)
	}
	if err != nil {
		return nil, output.NewSystemErrorWithCause(fmt.Sprintf("opening repository at %s: %v", dir, err), err)
	}
	return repo, nil
}

// RemoteURL returns the first fetch URL of the named remote of the
// repository containing dir.
func RemoteURL(dir, name string) (string, error) {
	repo, err := openRepo(dir)
	if err != nil {
		return "", err
	}

	remote, err := repo.Remote(name)
	if errors.Is(err, gogit.ErrRemoteNotFound) {
		return "", output.NewUserError(fmt.Sprintf("remote %q not found", name))
	}
	if err != nil {
		return "", output.NewSystemErrorWithCause(fmt.Sprintf("reading remote %q: %v", name, err), err)
	}

	urls := remote.Config().URLs
	if len(urls) == 0 || urls[0] == "" {
		return "", output.NewUserError(fmt.Sprintf("remote %q has no URL", name))
	}
	return urls[0], nil
}

// RepoBaseURL derives the https base URL from the named remote of the
// repository containing dir.
func RepoBaseURL(dir, name string) (string, error) {
	raw, err := RemoteURL(dir, name)
	if err != nil {
		return "", err
	}
	return BaseURL(raw)
}
