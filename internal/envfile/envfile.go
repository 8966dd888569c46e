// Package envfile reads AUTOLINK_* settings from a .env file.
//
// Unlike a shell-style loader it never touches the process environment: the
// file is one more configuration layer, ranked below real environment
// variables.
package envfile

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// Read returns the variables in the .env file at path whose names start
// with prefix. A missing file yields an empty map. Empty values are dropped
// so they never shadow a lower layer.
func Read(path, prefix string) (map[string]string, error) {
	vars := make(map[string]string)

	file, err := os.Open(path) //nolint:gosec // path comes from configuration, not from input text
	if err != nil {
		if os.IsNotExist(err) {
			return vars, nil
		}
		return nil, fmt.Errorf("opening env file %s: %w", path, err)
	}
	defer file.Close() //nolint:errcheck // best-effort close on read-only file

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		key, value, ok := parseLine(line)
		if !ok || !strings.HasPrefix(key, prefix) || value == "" {
			continue
		}
		vars[key] = value
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading env file %s: %w", path, err)
	}
	return vars, nil
}

// parseLine splits KEY=VALUE, dropping an export prefix and one pair of
// matching quotes around the value.
func parseLine(line string) (key, value string, ok bool) {
	key, value, ok = strings.Cut(line, "=")
	if !ok {
		return "", "", false
	}

	key = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(key), "export "))
	value = strings.TrimSpace(value)
	if key == "" {
		return "", "", false
	}

	if len(value) >= 2 {
		first, last := value[0], value[len(value)-1]
		if first == last && (first == '"' || first == '\'') {
			value = value[1 : len(value)-1]
		}
	}
	return key, value, true
}
