package transport_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/google/go-cmp/cmp"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apstndb/flagbind/binding"
	"github.com/apstndb/flagbind/flagmeta"
	"github.com/apstndb/flagbind/transport"
)

func writeFile(t *testing.T, fs afero.Fs, path, content string) {
	t.Helper()
	require.NoError(t, afero.WriteFile(fs, path, []byte(content), 0o644))
}

func TestFileSourceLoadDiffs(t *testing.T) {
	t.Parallel()
	fs := afero.NewMemMapFs()
	src := &transport.FileSource{Fs: fs, Path: "/etc/flags.yaml"}
	rec := &recorder{}

	steps := []struct {
		name    string
		content string
		want    []string
	}{
		{
			name: "initial load",
			content: heredoc.Doc(`
				spawn_z_offset: 150
				quest_mode: ENDLESS
				hidden_quests_csv: [q1, q2]
				pvp_enabled: true
				tick_interval: null
			`),
			want: []string{"hidden_quests_csv=q1,q2", "pvp_enabled=true", "quest_mode=ENDLESS", "spawn_z_offset=150"},
		},
		{
			name: "unchanged",
			content: heredoc.Doc(`
				quest_mode: ENDLESS
				spawn_z_offset: 150
				hidden_quests_csv: [q1, q2]
				pvp_enabled: true
			`),
			want: nil,
		},
		{
			name: "changed, nulled and removed",
			content: heredoc.Doc(`
				spawn_z_offset: -3
				quest_mode: null
				tick_interval: 2s
			`),
			want: []string{"hidden_quests_csv", "pvp_enabled", "quest_mode", "spawn_z_offset=-3", "tick_interval=2s"},
		},
		{
			name:    "json",
			content: `{"spawn_z_offset": -3, "motd": ""}`,
			want:    []string{"motd=", "tick_interval"},
		},
		{
			name:    "empty file resets everything",
			content: "",
			want:    []string{"motd", "spawn_z_offset"},
		},
	}

	for _, step := range steps {
		writeFile(t, fs, src.Path, step.content)
		require.NoError(t, src.Load(rec.apply), step.name)
		if diff := cmp.Diff(step.want, rec.take()); diff != "" {
			t.Errorf("%s: updates mismatch (-want +got):\n%s", step.name, diff)
		}
	}
}

func TestFileSourceLoadErrors(t *testing.T) {
	t.Parallel()
	fs := afero.NewMemMapFs()
	src := &transport.FileSource{Fs: fs, Path: "/flags.yaml"}
	rec := &recorder{}

	var loadErr *transport.LoadError
	require.ErrorAs(t, src.Load(rec.apply), &loadErr)
	assert.Equal(t, "/flags.yaml", loadErr.Path)
	assert.ErrorIs(t, loadErr, os.ErrNotExist)

	writeFile(t, fs, src.Path, "a: 1\n")
	require.NoError(t, src.Load(rec.apply))
	assert.Equal(t, []string{"a=1"}, rec.take())

	writeFile(t, fs, src.Path, "a: {nested: map}\n")
	assert.ErrorAs(t, src.Load(rec.apply), &loadErr)

	writeFile(t, fs, src.Path, "a: [1\n")
	assert.ErrorAs(t, src.Load(rec.apply), &loadErr)
	assert.Empty(t, rec.take())

	// The snapshot from the last good load is kept.
	writeFile(t, fs, src.Path, "a: 1\nb: x\n")
	require.NoError(t, src.Load(rec.apply))
	assert.Equal(t, []string{"b=x"}, rec.take())
}

func TestFileSourceApplyFailures(t *testing.T) {
	t.Parallel()
	fs := afero.NewMemMapFs()
	boom := errors.New("boom")
	rec := &recorder{fail: map[string]error{"bad": boom}}
	writeFile(t, fs, "/flags.yaml", "bad: 1\ngood: 2\n")

	src := &transport.FileSource{Fs: fs, Path: "/flags.yaml"}
	err := src.Load(rec.apply)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, []string{"good=2"}, rec.take())

	t.Run("run logs and continues by default", func(t *testing.T) {
		src := &transport.FileSource{Fs: fs, Path: "/flags.yaml"}
		assert.NoError(t, src.Run(context.Background(), rec.apply))
		assert.Equal(t, []string{"good=2"}, rec.take())
	})

	t.Run("run stops with StopOnError", func(t *testing.T) {
		src := &transport.FileSource{Fs: fs, Path: "/flags.yaml", OnError: transport.StopOnError}
		assert.ErrorIs(t, src.Run(context.Background(), rec.apply), boom)
		rec.take()
	})

	t.Run("run fails on unreadable file", func(t *testing.T) {
		src := &transport.FileSource{Fs: fs, Path: "/missing.yaml"}
		var loadErr *transport.LoadError
		assert.ErrorAs(t, src.Run(context.Background(), rec.apply), &loadErr)
	})
}

func TestFileSourceWithEngine(t *testing.T) {
	t.Parallel()
	var offset int
	e := binding.NewEngine()
	require.NoError(t, e.Register(binding.Declarations(func() []binding.Declaration {
		return []binding.Declaration{{
			Property: "SpawnVerticalOffset",
			Accessor: binding.IntField(&offset),
			Metadata: flagmeta.New("spawn_z_offset", flagmeta.Int(10)),
		}}
	})))

	fs := afero.NewMemMapFs()
	src := &transport.FileSource{Fs: fs, Path: "flags.yaml"}

	writeFile(t, fs, src.Path, "spawn_z_offset: 150\nunrelated: x\n")
	require.NoError(t, src.Load(e.ApplyUpdate))
	assert.Equal(t, 150, offset)

	writeFile(t, fs, src.Path, "unrelated: y\n")
	require.NoError(t, src.Load(e.ApplyUpdate))
	assert.Equal(t, 10, offset)
}

func TestFileSourceWatch(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	path := filepath.Join(dir, "flags.yaml")
	require.NoError(t, os.WriteFile(path, []byte("spawn_z_offset: 1\n"), 0o644))

	rec := &recorder{}
	src := transport.NewFileSource(path)
	src.Watch = true
	src.Debounce = 10 * time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- src.Run(ctx, rec.apply) }()

	require.Eventually(t, func() bool {
		rec.mu.Lock()
		defer rec.mu.Unlock()
		return len(rec.updates) == 1
	}, 5*time.Second, 10*time.Millisecond)
	assert.Equal(t, []string{"spawn_z_offset=1"}, rec.take())

	require.NoError(t, os.WriteFile(path, []byte("spawn_z_offset: 2\n"), 0o644))
	require.Eventually(t, func() bool {
		rec.mu.Lock()
		defer rec.mu.Unlock()
		return len(rec.updates) > 0
	}, 5*time.Second, 10*time.Millisecond)
	assert.Equal(t, []string{"spawn_z_offset=2"}, rec.take())

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("FileSource.Run did not return after cancel")
	}
}
