package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/julianstephens/zoneline/internal/clock"
	"github.com/julianstephens/zoneline/internal/config"
	"github.com/julianstephens/zoneline/internal/render"
	"github.com/julianstephens/zoneline/internal/storage/sqlite"
)

func writeConfig(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

const treeDoc = `default_timezone = "JST"

[[timezone.define]]
name = "UTC"
offset = 0

[[timezone.define]]
name = "JST"
offset = 9
`

func TestReadInputPrecedence(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "config.toml", treeDoc)

	ctx := &Context{ConfigDir: dir, EnvPrefix: "ZLCLITEST_"}
	in, err := ctx.ReadInput()
	if err != nil {
		t.Fatalf("ReadInput() error = %v", err)
	}
	if _, ok := in.(config.Tree); !ok {
		t.Errorf("ReadInput() = %T, want Tree from the config file", in)
	}

	ctx.Overrides = map[string]string{"timezone1": "CET/1"}
	in, err = ctx.ReadInput()
	if err != nil {
		t.Fatalf("ReadInput() error = %v", err)
	}
	flat, ok := in.(config.Flat)
	if !ok || len(flat) != 1 || flat[0].Value != "CET/1" {
		t.Errorf("ReadInput() = %#v, want the override", in)
	}

	t.Setenv("ZLCLITEST_TIMEZONE1", "EET/2")
	in, _ = ctx.ReadInput()
	if flat := in.(config.Flat); flat[0].Value != "EET/2" {
		t.Errorf("environment should win over --set, got %v", flat)
	}
}

func TestReadInputNoConfig(t *testing.T) {
	ctx := &Context{ConfigDir: t.TempDir(), EnvPrefix: "ZLCLITEST_"}
	in, err := ctx.ReadInput()
	if err != nil {
		t.Fatalf("ReadInput() error = %v", err)
	}
	if flat, ok := in.(config.Flat); !ok || len(flat) != 0 {
		t.Errorf("ReadInput() = %#v, want empty Flat", in)
	}
	if ctx.ConfigFile() != "" {
		t.Errorf("ConfigFile() = %q, want empty", ctx.ConfigFile())
	}
}

func TestNewControllerBrokenConfig(t *testing.T) {
	dir := t.TempDir()
	ctx := &Context{
		ConfigPath: writeConfig(t, dir, "config.yaml", "timezone: [unclosed\n"),
		EnvPrefix:  "ZLCLITEST_",
	}
	ctrl, err := ctx.NewController(render.Plain{})
	if err == nil {
		t.Error("NewController() error = nil, want read error")
	}
	if ctrl == nil || ctrl.Selected() != "UTC" {
		t.Error("NewController() should fall back to defaults")
	}
}

func TestNewControllerRestoresSelection(t *testing.T) {
	dir := t.TempDir()
	store := sqlite.NewStore(filepath.Join(dir, "state.db"))
	defer store.Close()

	at := time.Date(2024, time.March, 9, 23, 45, 0, 0, time.UTC)
	ctx := &Context{
		ConfigDir: dir,
		EnvPrefix: "ZLCLITEST_",
		Store:     store,
		Clock:     clock.Fixed(at),
	}
	writeConfig(t, dir, "config.toml", treeDoc)
	ctx.OpenStore()
	if ctx.Store == nil {
		t.Fatal("OpenStore() dropped the store")
	}

	ctrl, err := ctx.NewController(render.Plain{})
	if err != nil {
		t.Fatalf("NewController() error = %v", err)
	}
	if ctrl.Selected() != "JST" {
		t.Errorf("Selected() = %q, want configured default JST", ctrl.Selected())
	}

	if err := ctx.SaveSelection("UTC"); err != nil {
		t.Fatal(err)
	}
	ctrl, _ = ctx.NewController(render.Plain{})
	if ctrl.Selected() != "UTC" {
		t.Errorf("Selected() = %q, want saved UTC", ctrl.Selected())
	}

	if err := store.SaveSelection("CET"); err != nil {
		t.Fatal(err)
	}
	ctrl, _ = ctx.NewController(render.Plain{})
	if ctrl.Selected() != "JST" {
		t.Errorf("Selected() = %q, want default for a stale selection", ctrl.Selected())
	}

	if got, _ := store.GetLoadedAt(); !got.Equal(at) {
		t.Errorf("GetLoadedAt() = %v, want %v", got, at)
	}
}

func TestOpenStoreFailure(t *testing.T) {
	dir := t.TempDir()
	blocker := writeConfig(t, dir, "file", "")
	ctx := &Context{Store: sqlite.NewStore(filepath.Join(blocker, "state.db"))}
	ctx.OpenStore()
	if ctx.Store != nil {
		t.Error("OpenStore() should drop a store that cannot be created")
	}
	if err := ctx.SaveSelection("UTC"); err != nil {
		t.Errorf("SaveSelection() without a store = %v, want nil", err)
	}
}

func TestPainter(t *testing.T) {
	ctx := &Context{Out: &bytes.Buffer{}}
	tests := []struct {
		name   string
		format string
		mode   ColorMode
		check  func(render.Painter) bool
	}{
		{"tmux", "tmux", ColorAlways, func(p render.Painter) bool { _, ok := p.(render.Tmux); return ok }},
		{"never", "ansi", ColorNever, func(p render.Painter) bool { _, ok := p.(render.Plain); return ok }},
		{"always", "ansi", ColorAlways, func(p render.Painter) bool { _, ok := p.(*render.ANSI); return ok }},
		{"auto without tty", "ansi", ColorAuto, func(p render.Painter) bool { _, ok := p.(render.Plain); return ok }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if p := ctx.Painter(tt.format, tt.mode); !tt.check(p) {
				t.Errorf("Painter(%q, %q) = %T", tt.format, tt.mode, p)
			}
		})
	}
}

func TestPrintf(t *testing.T) {
	var out bytes.Buffer
	ctx := &Context{Out: &out}
	ctx.Printf("%s/%d\n", "JST", 9)
	if out.String() != "JST/9\n" {
		t.Errorf("Printf wrote %q", out.String())
	}
}
