package git

import (
	"os"
	"path/filepath"
	"testing"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hydradatabase/autolink/internal/output"
)

// initRepo creates a repository in a temp dir with the given remotes.
func initRepo(t *testing.T, remotes map[string]string) string {
	t.Helper()
	dir := t.TempDir()

	repo, err := gogit.PlainInit(dir, false)
	require.NoError(t, err)

	for name, url := range remotes {
		_, err := repo.CreateRemote(&config.RemoteConfig{Name: name, URLs: []string{url}})
		require.NoError(t, err)
	}
	return dir
}

func TestRemoteURL(t *testing.T) {
	dir := initRepo(t, map[string]string{
		"origin":   "git@github.com:hydradatabase/hydra.git",
		"upstream": "https://github.com/citusdata/citus.git",
	})

	got, err := RemoteURL(dir, "origin")
	require.NoError(t, err)
	assert.Equal(t, "git@github.com:hydradatabase/hydra.git", got)

	got, err = RemoteURL(dir, "upstream")
	require.NoError(t, err)
	assert.Equal(t, "https://github.com/citusdata/citus.git", got)
}

func TestRemoteURL_FromSubdirectory(t *testing.T) {
	dir := initRepo(t, map[string]string{"origin": "git@github.com:o/r.git"})
	sub := filepath.Join(dir, "docs", "changes")
	require.NoError(t, os.MkdirAll(sub, 0o755))

	got, err := RepoBaseURL(sub, "origin")
	require.NoError(t, err)
	assert.Equal(t, "https://github.com/o/r", got)
}

func TestRemoteURL_MissingRemote(t *testing.T) {
	dir := initRepo(t, nil)

	_, err := RemoteURL(dir, "origin")
	require.Error(t, err)
	assert.Equal(t, output.ExitUserError, output.GetExitCode(err))
	assert.Contains(t, err.Error(), `remote "origin" not found`)
}

func TestRemoteURL_NotARepo(t *testing.T) {
	dir := t.TempDir()

	_, err := RemoteURL(dir, "origin")
	require.Error(t, err)
	assert.Equal(t, output.ExitUserError, output.GetExitCode(err))
}

func TestRepoBaseURL_LocalRemote(t *testing.T) {
	dir := initRepo(t, map[string]string{"origin": "/srv/git/hydra.git"})

	_, err := RepoBaseURL(dir, "origin")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a hosted repository")
}
