package ai

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeProfiles(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "profiles.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

const sampleProfiles = `profiles:
  - name: Rookie
    difficulty: easy
  - name: Veteran
    difficulty: hard
    seed: 42
`

func TestParseProfileFile(t *testing.T) {
	path := writeProfiles(t, sampleProfiles)

	profiles, err := ParseProfileFile(path)
	require.NoError(t, err)
	require.Len(t, profiles, 2)
	assert.Equal(t, ProfileEntry{Name: "Rookie", Difficulty: "easy"}, profiles[0])
	assert.Equal(t, ProfileEntry{Name: "Veteran", Difficulty: "hard", Seed: 42}, profiles[1])
}

func TestParseProfileFileRejectsBadInput(t *testing.T) {
	path := writeProfiles(t, "profiles:\n  - name: Boss\n    difficulty: brutal\n")
	_, err := ParseProfileFile(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownDifficulty)
	assert.Contains(t, err.Error(), "Boss")

	_, err = ParseProfileFile(writeProfiles(t, "profiles: [\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse profile YAML")

	_, err = ParseProfileFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestProfileLookups(t *testing.T) {
	path := writeProfiles(t, sampleProfiles)

	p, err := ProfileByName(path, "Veteran")
	require.NoError(t, err)
	assert.Equal(t, int64(42), p.Seed)

	_, err = ProfileByName(path, "Nobody")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")

	p, err = ProfileByNumber(path, 1)
	require.NoError(t, err)
	assert.Equal(t, "Rookie", p.Name)

	_, err = ProfileByNumber(path, 0)
	assert.Error(t, err)
	_, err = ProfileByNumber(path, 3)
	assert.Error(t, err)
}
