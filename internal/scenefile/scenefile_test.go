package scenefile

import (
	"context"
	"github.com/Yeicor/winhelp"
	"github.com/Yeicor/winhelp/render3d"
	"github.com/deadsy/sdfx/vec/v2i"
	v3 "github.com/deadsy/sdfx/vec/v3"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

const cubeScene = `
fov = 500.0
background = [30.0, 30.0, 40.0]

[camera]
position = [0.0, 0.0, -5.0]

[[object]]
kind = "cube"
size = 1.0
colour = [255.0, 0.0, 0.0]
`

func writeScene(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func centre(s *winhelp.Surface) uint32 {
	p, _ := s.Pixel(s.Size.X/2, s.Size.Y/2)
	return p
}

func TestParse(t *testing.T) {
	f, err := Parse([]byte(cubeScene + `
[wireframe]
colour = [255.0, 255.0, 255.0]

[[object]]
kind = "sphere"
offset = [3.0, 0.0, 0.0]
`))
	if err != nil {
		t.Fatal(err)
	}
	if f.FOV != 500 || f.Camera.Position != [3]float64{0, 0, -5} {
		t.Fatalf("expected fov 500 and camera at z=-5, but got %v / %v", f.FOV, f.Camera.Position)
	}
	if len(f.Objects) != 2 {
		t.Fatalf("expected 2 objects, but got %d", len(f.Objects))
	}
	if sphere := f.Objects[1]; sphere.Size != 1 || sphere.Cells != defaultCells || sphere.Offset[0] != 3 {
		t.Fatalf("expected sphere defaults to be filled in, but got %+v", sphere)
	}
	if f.Wireframe == nil || f.Shading != nil {
		t.Fatalf("expected only the wireframe table to be set")
	}
	if f.BackgroundColour() != (winhelp.RGB{R: 30, G: 30, B: 40}) {
		t.Fatalf("expected background (30, 30, 40), but got %v", f.BackgroundColour())
	}
}

func TestParse_Defaults(t *testing.T) {
	f, err := Parse([]byte(``))
	if err != nil {
		t.Fatal(err)
	}
	if f.FOV != defaultFOV {
		t.Fatalf("expected the default fov, but got %v", f.FOV)
	}
}

func TestParse_Errors(t *testing.T) {
	for name, content := range map[string]string{
		"syntax":       "fov = ",
		"unknown kind": "[[object]]\nkind = \"teapot\"",
		"mesh no path": "[[object]]\nkind = \"mesh\"",
	} {
		if _, err := Parse([]byte(content)); err == nil {
			t.Fatalf("expected an error for %s", name)
		}
	}
}

func TestBuild(t *testing.T) {
	f, err := Parse([]byte(cubeScene + `
[[object]]
kind = "cube"
size = 0.5
offset = [0.0, 0.0, 10.0]

[[object]]
kind = "box"
size = 0.5
cells = 8
`))
	if err != nil {
		t.Fatal(err)
	}
	r, err := f.Build()
	if err != nil {
		t.Fatal(err)
	}
	if len(r.Objects) != 3 {
		t.Fatalf("expected 3 objects, but got %d", len(r.Objects))
	}
	if r.CameraPos != (v3.Vec{Z: -5}) || r.FOV != 500 {
		t.Fatalf("expected the file camera, but got %v / %v", r.CameraPos, r.FOV)
	}
	if got := r.Objects[1].Faces[0].AvgZ; got != 9.5 {
		t.Fatalf("expected the offset cube front face at z=9.5, but got %v", got)
	}
	if len(r.Objects[2].Faces) == 0 {
		t.Fatalf("expected the box to be meshed")
	}
}

func TestBuild_Orbit(t *testing.T) {
	f, err := Parse([]byte("[camera]\norbit = true\n[[object]]\nkind = \"cube\"\noffset = [5.0, 0.0, 0.0]"))
	if err != nil {
		t.Fatal(err)
	}
	r, err := f.Build()
	if err != nil {
		t.Fatal(err)
	}
	if r.CameraPos == (v3.Vec{}) {
		t.Fatalf("expected the orbit to move the camera")
	}
}

func TestBuild_MissingMesh(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scene.toml")
	writeScene(t, path, "[[object]]\nkind = \"mesh\"\npath = \"missing.stl\"")
	f, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if _, err = f.Build(); err == nil {
		t.Fatalf("expected a mesh load error")
	}
}

func TestLive_RenderAndReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.toml")
	writeScene(t, path, cubeScene)
	l, err := NewLive(path)
	if err != nil {
		t.Fatal(err)
	}
	s := winhelp.NewSurface(v2i.Vec{X: 800, Y: 600})
	if !l.Render(s) {
		t.Fatalf("expected the frame to be rendered")
	}
	if got := centre(s); got != 0xFFFF0000 {
		t.Fatalf("expected a red cube in the centre, but got %#x", got)
	}
	if got, _ := s.Pixel(0, 0); got != 0xFF1E1E28 {
		t.Fatalf("expected the background in the corner, but got %#x", got)
	}

	writeScene(t, path, cubeScene+"\n[[object]]\nkind = \"cube\"\nsize = 0.5\ncolour = [0.0, 0.0, 255.0]\noffset = [0.0, 0.0, -2.0]\n")
	if err = l.Reload(context.Background()); err != nil {
		t.Fatal(err)
	}
	if l.Version() != 2 {
		t.Fatalf("expected version 2, but got %d", l.Version())
	}
	l.Render(s)
	if got := centre(s); got != 0xFF0000FF {
		t.Fatalf("expected the nearer blue cube in the centre, but got %#x", got)
	}
}

func TestLive_KeepsMovedCamera(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.toml")
	writeScene(t, path, cubeScene)
	l, err := NewLive(path)
	if err != nil {
		t.Fatal(err)
	}
	l.Update(func(r *render3d.Renderer) {
		r.CameraPos.X = 2
	})
	writeScene(t, path, strings.Replace(cubeScene, "fov = 500.0", "fov = 400.0", 1))
	if err = l.Reload(context.Background()); err != nil {
		t.Fatal(err)
	}
	l.Update(func(r *render3d.Renderer) {
		if r.FOV != 400 {
			t.Fatalf("expected the new fov, but got %v", r.FOV)
		}
		if r.CameraPos.X != 2 {
			t.Fatalf("expected the moved camera to survive the reload, but got %v", r.CameraPos)
		}
	})
}

func TestLive_SkipsFrameWhileLocked(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.toml")
	writeScene(t, path, cubeScene)
	l, err := NewLive(path)
	if err != nil {
		t.Fatal(err)
	}
	s := winhelp.NewSurface(v2i.Vec{X: 8, Y: 8})
	l.lock.Lock()
	rendered := l.Render(s)
	l.lock.Unlock()
	if rendered {
		t.Fatalf("expected the frame to be skipped while the scene is locked")
	}
	if !l.Render(s) {
		t.Fatalf("expected the frame to be rendered once unlocked")
	}
}

func TestLive_ReloadFailureKeepsScene(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.toml")
	writeScene(t, path, cubeScene)
	l, err := NewLive(path)
	if err != nil {
		t.Fatal(err)
	}
	writeScene(t, path, "fov = ")
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()
	if err = l.Reload(ctx); err == nil {
		t.Fatalf("expected the broken file to fail")
	}
	if l.Version() != 1 {
		t.Fatalf("expected the previous scene to be kept, but got version %d", l.Version())
	}
}

func TestLive_Watch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.toml")
	writeScene(t, path, cubeScene)
	l, err := NewLive(path)
	if err != nil {
		t.Fatal(err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	watchDone := make(chan error, 1)
	go func() {
		watchDone <- l.Watch(ctx)
	}()

	deadline := time.Now().Add(5 * time.Second)
	for l.Version() < 2 {
		if time.Now().After(deadline) {
			t.Fatalf("expected the change to be picked up")
		}
		writeScene(t, path, cubeScene) // The watcher may not be ready for the first write
		time.Sleep(50 * time.Millisecond)
	}
	cancel()
	if err = <-watchDone; err != nil {
		t.Fatal(err)
	}
}
