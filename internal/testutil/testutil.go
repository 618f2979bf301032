// Package testutil provides shared test helpers for config files and
// session fixtures.
package testutil

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hellodocs/flashdeck/internal/session"
)

// SetupTestConfig creates a config file pointing at the given API base
// URL, with the session file and export directory under tmpDir. Returns
// the path to the generated config file.
func SetupTestConfig(t *testing.T, tmpDir, baseURL string) string {
	t.Helper()

	configContent := fmt.Sprintf(`api:
  base_url: %s
  timeout_seconds: 2
session:
  file: %s
outputs:
  export_directory: %s
`,
		baseURL,
		filepath.Join(tmpDir, "session.json"),
		filepath.Join(tmpDir, "exports"),
	)

	cfgPath := filepath.Join(tmpDir, "config.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(configContent), 0644))
	return cfgPath
}

// WriteSessionFile persists a session fixture the way the store does.
func WriteSessionFile(t *testing.T, path string, sess session.Session) {
	t.Helper()

	data, err := json.Marshal(sess)
	require.NoError(t, err)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, data, 0600))
}
