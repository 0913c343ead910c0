package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/lvlsolve/rivercross"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeScenario(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0644))
	return path
}

func TestLoadScenario_EmptyPathIsClassic(t *testing.T) {
	sc, err := loadScenario("")
	require.NoError(t, err)

	assert.Equal(t, "classic", sc.name)
	assert.Equal(t, rivercross.AllRight, sc.puzzle.Initial())
	assert.Equal(t, rivercross.AllLeft, sc.puzzle.Goal())
}

func TestLoadScenario_Mirror(t *testing.T) {
	path := writeScenario(t, `version: 1
name: mirror
initial:
  peasant: left
  wolf: left
  goat: left
  cabbage: left
goal:
  peasant: right
  wolf: right
  goat: right
  cabbage: right
`)

	sc, err := loadScenario(path)
	require.NoError(t, err)

	assert.Equal(t, "mirror", sc.name)
	assert.Equal(t, rivercross.AllLeft, sc.puzzle.Initial())
	assert.Equal(t, rivercross.AllRight, sc.puzzle.Goal())
}

func TestLoadScenario_NameDefaultsToPath(t *testing.T) {
	path := writeScenario(t, `version: 1
initial:
  peasant: right
  wolf: right
  goat: right
  cabbage: right
goal:
  peasant: left
  wolf: left
  goat: left
  cabbage: left
`)

	sc, err := loadScenario(path)
	require.NoError(t, err)

	assert.Equal(t, path, sc.name)
}

func TestLoadScenario_UnsupportedVersion(t *testing.T) {
	path := writeScenario(t, `version: 2
name: future
initial:
  peasant: right
  wolf: right
  goat: right
  cabbage: right
goal:
  peasant: left
  wolf: left
  goat: left
  cabbage: left
`)

	_, err := loadScenario(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported scenario version: 2")
}

func TestLoadScenario_UnknownBank(t *testing.T) {
	path := writeScenario(t, `version: 1
initial:
  peasant: middle
  wolf: right
  goat: right
  cabbage: right
goal:
  peasant: left
  wolf: left
  goat: left
  cabbage: left
`)

	_, err := loadScenario(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "initial:")
	assert.Contains(t, err.Error(), `unknown bank "middle" for peasant`)
}

func TestLoadScenario_MissingTraveler(t *testing.T) {
	path := writeScenario(t, `version: 1
initial:
  peasant: right
  wolf: right
  goat: right
  cabbage: right
goal:
  peasant: left
  wolf: left
  goat: left
`)

	_, err := loadScenario(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "goal:")
	assert.Contains(t, err.Error(), "missing bank for cabbage")
}

func TestLoadScenario_MissingFile(t *testing.T) {
	_, err := loadScenario(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadScenario_MalformedYAML(t *testing.T) {
	path := writeScenario(t, "{not yaml: [")

	_, err := loadScenario(path)
	assert.Error(t, err)
}
