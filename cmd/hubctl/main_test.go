package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/dangerclosesec/hub/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedKinds(t *testing.T) {
	kinds, err := seedKinds("all")
	require.NoError(t, err)
	assert.Equal(t, model.Kinds, kinds)

	kinds, err = seedKinds("schools")
	require.NoError(t, err)
	assert.Equal(t, []model.Kind{model.KindSchool}, kinds)

	_, err = seedKinds("planets")
	assert.Error(t, err)
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Cleanup(func() {
		dataDir, refresh, verbose = "", false, false
	})

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestSeedCommand(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("DB_PATH", filepath.Join(dir, "hub.db"))
	t.Setenv("DB_LOG_LEVEL", "silent")
	t.Setenv("LOG_LEVEL", "error")

	require.NoError(t, os.WriteFile(filepath.Join(dir, "people.json"),
		[]byte(`[{"name": "Ada Lovelace"}, {"bio": "no name"}]`), 0o644))

	out, err := execute(t, "seed", "people", "--data-dir", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "Skipped 1 entries without a name.")
	assert.Contains(t, out, "Created 1 and updated 0 people entries.")

	out, err = execute(t, "seed", "people", "--data-dir", dir, "--refresh")
	require.NoError(t, err)
	assert.Contains(t, out, "Deleted 1 existing people.")
	assert.Contains(t, out, "Created 1 and updated 0 people entries.")

	_, err = execute(t, "seed", "schools", "--data-dir", dir)
	assert.Error(t, err, "missing fixture file")
}
