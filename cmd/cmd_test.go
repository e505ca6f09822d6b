package cmd

import (
	"bytes"
	"path/filepath"
	"testing"
	"time"

	"github.com/theirongolddev/deeday/internal/birthday"
	"github.com/theirongolddev/deeday/internal/config"
	"github.com/theirongolddev/deeday/internal/model"
	"github.com/theirongolddev/deeday/internal/roster"
	"github.com/theirongolddev/deeday/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runCLI executes the root command against a file-backed roster in dataDir.
func runCLI(t *testing.T, dataDir string, args ...string) error {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	flagDataDir, flagBackend, flagLogLevel, flagToday = "", "", "", ""
	flagSearch, flagSort, flagWithin = "", "", 0

	full := append([]string{"--data-dir", dataDir, "--backend", store.BackendFile, "--log-level", "error"}, args...)
	rootCmd.SetArgs(full)
	return rootCmd.Execute()
}

func loadRoster(t *testing.T, dataDir string) *roster.Store {
	t.Helper()
	return roster.Open(store.NewFile(filepath.Join(dataDir, roster.DefaultKey+".json")))
}

func TestAddThenRemove(t *testing.T) {
	dir := t.TempDir()

	require.NoError(t, runCLI(t, dir, "add", "Ann", "1990-03-20", "Sister"))

	r := loadRoster(t, dir)
	require.Equal(t, 1, r.Len())
	ann := r.List()[0]
	assert.Equal(t, "Ann", ann.Name)
	assert.Equal(t, model.NewDate(1990, time.March, 20), ann.Birthdate)

	require.NoError(t, runCLI(t, dir, "rm", ann.ShortID()))
	assert.Equal(t, 0, loadRoster(t, dir).Len())
}

func TestAddIncompleteWritesNothing(t *testing.T) {
	dir := t.TempDir()

	require.NoError(t, runCLI(t, dir, "add", "Ann", "1990-03-20"))
	assert.NoFileExists(t, filepath.Join(dir, roster.DefaultKey+".json"))
}

func TestAddRejectsBadDate(t *testing.T) {
	dir := t.TempDir()

	err := runCLI(t, dir, "add", "Ann", "1990-13-01", "Sister")
	require.ErrorIs(t, err, model.ErrInvalidDate)
}

func TestRemoveUnknownIDIsNoop(t *testing.T) {
	dir := t.TempDir()

	require.NoError(t, runCLI(t, dir, "rm", "does-not-exist"))
	assert.NoFileExists(t, filepath.Join(dir, roster.DefaultKey+".json"))
}

func TestListRejectsUnknownSort(t *testing.T) {
	err := runCLI(t, t.TempDir(), "list", "--sort", "alphabetical")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--sort")
}

func TestTodayFlagRejectsBadDate(t *testing.T) {
	err := runCLI(t, t.TempDir(), "--today", "someday", "list")
	require.ErrorIs(t, err, model.ErrInvalidDate)
}

func TestRenderEntries(t *testing.T) {
	today := model.NewDate(2024, time.March, 15)
	members := []model.Member{
		{ID: "aaaaaaaa-1", Name: "Ann", Birthdate: model.NewDate(1990, time.March, 20), Relationship: "Sister"},
		{ID: "bbbbbbbb-2", Name: "Bob", Birthdate: model.NewDate(1988, time.January, 10), Relationship: "Brother"},
	}
	entries := birthday.Annotate(members, today)

	out := renderEntries(entries, "Soonest first")

	assert.Contains(t, out, "Soonest first")
	assert.Contains(t, out, "aaaaaaaa")
	assert.Contains(t, out, "March 20")
	assert.Contains(t, out, "5 day(s) away – turning 34")
	assert.Contains(t, out, "  301 │")
}

func TestWriteReadMembers(t *testing.T) {
	members := []model.Member{
		{ID: "a1", Name: "Ann", Birthdate: model.NewDate(1990, time.March, 20), Relationship: "Sister"},
		{ID: "b2", Name: "Leap", Birthdate: model.NewDate(2000, time.February, 29), Relationship: "Cousin"},
	}

	for _, format := range []string{"json", "yaml", "toml"} {
		t.Run(format, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, writeMembers(&buf, format, members))

			got, err := readMembers(&buf, format)
			require.NoError(t, err)
			assert.Equal(t, members, got)
		})
	}
}

func TestWriteMembersUnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	require.Error(t, writeMembers(&buf, "csv", nil))
}

func TestApplySetup(t *testing.T) {
	cfg := config.DefaultConfig()
	applySetup(&cfg, setupValues{
		theme:    "catppuccin-mocha",
		backend:  store.BackendFile,
		sort:     config.SortUpcoming,
		upcoming: "14",
	})

	assert.Equal(t, store.BackendFile, cfg.General.Backend)
	assert.Equal(t, config.SortUpcoming, cfg.Display.Sort)
	assert.Equal(t, 14, cfg.Display.UpcomingDays)

	// Out-of-range values leave the previous choice alone.
	applySetup(&cfg, setupValues{backend: "postgres", sort: "random", upcoming: "x"})
	assert.Equal(t, store.BackendFile, cfg.General.Backend)
	assert.Equal(t, config.SortUpcoming, cfg.Display.Sort)
	assert.Equal(t, 14, cfg.Display.UpcomingDays)
}

func TestValidateUpcoming(t *testing.T) {
	assert.NoError(t, validateUpcoming("30"))
	assert.Error(t, validateUpcoming("0"))
	assert.Error(t, validateUpcoming("400"))
	assert.Error(t, validateUpcoming("soon"))
}
