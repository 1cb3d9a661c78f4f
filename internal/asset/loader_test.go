package asset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDir_SkipsMalformedFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "good.json"),
		[]byte(`{"id": "a1", "advisor_id": "ADV001", "text": "hello"}`), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.json"),
		[]byte(`{{{`), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"),
		[]byte(`ignored`), 0644))

	assets, failures, err := LoadDir(dir)
	require.NoError(t, err)
	require.Len(t, assets, 1)
	assert.Equal(t, "a1", assets[0].ID)
	require.Len(t, failures, 1)
	assert.Contains(t, failures[0].Path, "bad.json")
}

func TestLoadDir_DerivesIDFromFilename(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "linkedin_adv001.json"),
		[]byte(`{"advisor_id": "ADV001", "text": "hello"}`), 0644))

	assets, _, err := LoadDir(dir)
	require.NoError(t, err)
	require.Len(t, assets, 1)
	assert.Equal(t, "linkedin_adv001", assets[0].ID)
	assert.NotEmpty(t, assets[0].FilePath)
}

func TestLoadDir_MissingDirIsFatal(t *testing.T) {
	_, _, err := LoadDir(filepath.Join(t.TempDir(), "absent"))
	assert.Error(t, err)
}
