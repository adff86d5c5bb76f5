package systems

import (
	"bytes"
	"errors"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/automoto/followhead/components"
	cfg "github.com/automoto/followhead/config"
	"github.com/automoto/followhead/prefabs"
	"github.com/automoto/followhead/shared/headfollow"
)

type fakeChanges struct {
	pending []string
	errs    []error
}

func (f *fakeChanges) Drain() []string {
	out := f.pending
	f.pending = nil
	return out
}

func (f *fakeChanges) DrainErrors() []error {
	out := f.errs
	f.errs = nil
	return out
}

func TestPrefabReloaderAppliesFollowKeys(t *testing.T) {
	dir := t.TempDir()
	prev := prefabs.Dir
	prefabs.Dir = dir
	t.Cleanup(func() { prefabs.Dir = prev })

	data := []byte("follow:\n  distance_from_camera: 2.0\n  mirrored: true\n")
	if err := os.WriteFile(filepath.Join(dir, prefabs.SnackBarFile), data, 0o644); err != nil {
		t.Fatal(err)
	}

	e := newTestECS()
	bar := spawnBar(e, headfollow.DefaultConfig())
	src := &fakeChanges{}
	reload := NewPrefabReloader(src)

	src.pending = []string{filepath.Join(dir, "other.yaml")}
	reload(e)
	if c := components.Follower.Get(bar).Config(); c.DistanceFromCamera != 1.0 || c.Mirrored {
		t.Fatalf("unrelated files must not reload the panel, got %+v", c)
	}

	src.pending = []string{filepath.Join(dir, prefabs.SnackBarFile)}
	reload(e)
	c := components.Follower.Get(bar).Config()
	if c.DistanceFromCamera != 2.0 || !c.Mirrored {
		t.Fatalf("expected the prefab applied, got %+v", c)
	}
	if !c.LockY {
		t.Fatalf("keys missing from the prefab must keep their values")
	}
	if got := getOrCreateMessageState(e.World).Text; got != cfg.Message.PrefabReloaded {
		t.Fatalf("expected the reload message, got %q", got)
	}
}

func TestPrefabReloaderLogsWatchErrors(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	t.Cleanup(func() { log.SetOutput(os.Stderr) })

	e := newTestECS()
	src := &fakeChanges{errs: []error{errors.New("queue overflow"), errors.New("gone")}}
	reload := NewPrefabReloader(src)

	reload(e)
	out := buf.String()
	if strings.Count(out, "Warning: Prefab watcher error") != 2 {
		t.Fatalf("expected one warning per watcher error, got:\n%s", out)
	}
	if !strings.Contains(out, "queue overflow") {
		t.Fatalf("expected the error text logged, got:\n%s", out)
	}

	buf.Reset()
	reload(e)
	if buf.Len() != 0 {
		t.Fatalf("errors must be logged once, got:\n%s", buf.String())
	}
	if got := getOrCreateMessageState(e.World).Text; got != "" {
		t.Fatalf("watch errors must not reload the prefab, got message %q", got)
	}
}
