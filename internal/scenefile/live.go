package scenefile

import (
	"context"
	"fmt"
	"github.com/Yeicor/winhelp"
	"github.com/Yeicor/winhelp/render3d"
	"github.com/cenkalti/backoff/v5"
	"github.com/fsnotify/fsnotify"
	"github.com/subchen/go-trylock/v2"
	"path/filepath"
	"sync/atomic"
	"time"
)

// renderTimeout is how long Render waits for a reload in progress before skipping the frame.
const renderTimeout = 5 * time.Millisecond

const reloadTries = 5

type rwTryLocker interface {
	Lock()
	Unlock()
	RTryLock(ctx context.Context) bool
	RUnlock()
}

// Live keeps the renderer of a scene file up to date with its contents.
type Live struct {
	path string

	lock       rwTryLocker
	file       *File
	renderer   *render3d.Renderer
	background winhelp.RGB

	version atomic.Int64 // Number of successful loads
}

// NewLive loads the scene at path. The first load must succeed.
func NewLive(path string) (*Live, error) {
	l := &Live{path: filepath.Clean(path), lock: trylock.New()}
	f, err := Load(l.path)
	if err != nil {
		return nil, err
	}
	if err = l.swap(f); err != nil {
		return nil, err
	}
	return l, nil
}

// Version increases every time the scene is (re)loaded.
func (l *Live) Version() int64 {
	return l.version.Load()
}

// Render clears s with the scene background and renders the scene. It returns false without drawing if a reload
// holds the scene for too long, so the caller can present the previous frame instead.
func (l *Live) Render(s *winhelp.Surface) bool {
	ctx, cancel := context.WithTimeout(context.Background(), renderTimeout)
	defer cancel()
	if !l.lock.RTryLock(ctx) {
		return false
	}
	defer l.lock.RUnlock()
	s.FillRGB(l.background)
	l.renderer.Render(s)
	return true
}

// Update runs fn with exclusive access to the current renderer (e.g. to move the camera).
func (l *Live) Update(fn func(r *render3d.Renderer)) {
	l.lock.Lock()
	defer l.lock.Unlock()
	fn(l.renderer)
}

// Reload reads the file again and swaps the scene in. Editors often write files in several steps, so failed
// reads are retried with exponential backoff before giving up. The current scene is kept on failure.
func (l *Live) Reload(ctx context.Context) error {
	f, err := backoff.Retry(ctx, func() (*File, error) {
		return Load(l.path)
	}, backoff.WithBackOff(backoff.NewExponentialBackOff()), backoff.WithMaxTries(reloadTries))
	if err != nil {
		return fmt.Errorf("reload %s: %w", l.path, err)
	}
	return l.swap(f)
}

func (l *Live) swap(f *File) error {
	r, err := f.Build()
	if err != nil {
		return fmt.Errorf("build %s: %w", l.path, err)
	}
	l.lock.Lock()
	defer l.lock.Unlock()
	if l.renderer != nil && l.file != nil && l.file.Camera == f.Camera {
		// The camera was not edited: keep wherever the user moved it
		r.CameraPos, r.CameraRot = l.renderer.CameraPos, l.renderer.CameraRot
	}
	l.file, l.renderer, l.background = f, r, f.BackgroundColour()
	l.version.Add(1)
	winhelp.LogInfo("loaded scene %s (%d objects)", l.path, len(r.Objects))
	return nil
}

// Watch reloads the scene whenever its file changes, until ctx is done. Reload errors are logged, not returned.
func (l *Live) Watch(ctx context.Context) error {
	watcher, err := newFsWatcher()
	if err != nil {
		return fmt.Errorf("watch %s: %w", l.path, err)
	}
	defer watcher.Close()
	// Watch the directory: editors replace files instead of writing them in place
	if err = watcher.Add(filepath.Dir(l.path)); err != nil {
		return fmt.Errorf("watch %s: %w", l.path, err)
	}
	for {
		select {
		case <-ctx.Done():
			return nil
		case e, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(e.Name) != l.path || e.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			winhelp.LogDebug("scene file event: %s", e)
			if err := l.Reload(ctx); err != nil {
				winhelp.LogError("can't reload scene: %s", err)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			winhelp.LogWarn("scene watcher: %s", err)
		}
	}
}
