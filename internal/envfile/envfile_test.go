package envfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeEnv(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestRead_NonexistentFile(t *testing.T) {
	vars, err := Read("/nonexistent/.env", "AUTOLINK_")
	require.NoError(t, err)
	assert.Empty(t, vars)
}

func TestRead_FiltersByPrefix(t *testing.T) {
	path := writeEnv(t, "AUTOLINK_BASE_URL=https://github.com/o/r\nANTHROPIC_API_KEY=secret\nAUTOLINK_REMOTE=origin\n")

	vars, err := Read(path, "AUTOLINK_")
	require.NoError(t, err)

	assert.Equal(t, map[string]string{
		"AUTOLINK_BASE_URL": "https://github.com/o/r",
		"AUTOLINK_REMOTE":   "origin",
	}, vars)
}

func TestRead_LeavesProcessEnvironmentAlone(t *testing.T) {
	t.Setenv("AUTOLINK_REMOTE", "")
	path := writeEnv(t, "AUTOLINK_REMOTE=upstream\n")

	_, err := Read(path, "AUTOLINK_")
	require.NoError(t, err)
	assert.Empty(t, os.Getenv("AUTOLINK_REMOTE"))
}

func TestRead_SkipsCommentsBlankAndEmpty(t *testing.T) {
	path := writeEnv(t, "# repository\n\nAUTOLINK_REMOTE=\nnot a pair\n=nokey\nAUTOLINK_BASE_URL=https://x.test/r\n")

	vars, err := Read(path, "AUTOLINK_")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"AUTOLINK_BASE_URL": "https://x.test/r"}, vars)
}

func TestParseLine(t *testing.T) {
	tests := []struct {
		name      string
		line      string
		wantKey   string
		wantValue string
		wantOK    bool
	}{
		{"simple", "KEY=value", "KEY", "value", true},
		{"double quoted", `KEY="value with spaces"`, "KEY", "value with spaces", true},
		{"single quoted", `KEY='value'`, "KEY", "value", true},
		{"mismatched quotes", `KEY="value'`, "KEY", `"value'`, true},
		{"export prefix", "export KEY=value", "KEY", "value", true},
		{"spaces around equals", "KEY = value", "KEY", "value", true},
		{"value with equals", "KEY=https://x.test/?a=b", "KEY", "https://x.test/?a=b", true},
		{"empty value", "KEY=", "KEY", "", true},
		{"no equals", "KEYVALUE", "", "", false},
		{"empty key", "=value", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, value, ok := parseLine(tt.line)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantKey, key)
			assert.Equal(t, tt.wantValue, value)
		})
	}
}
