package styles

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// WatchTheme watches a TOML theme file and delivers each reloaded theme
// on the returned channel. The watcher never touches the package style
// state itself: the caller applies the received theme (ApplyThemeColors)
// from its own event loop, keeping style reads and writes on a single
// goroutine. Edits are debounced so editors that write in several steps
// trigger a single reload. Errors are reported through onErr, which may
// be nil. The stop function releases the watcher.
func WatchTheme(path string, onErr func(error)) (<-chan Theme, func(), error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, nil, err
	}

	// Watch the directory, not the file: editors replace files on save
	// and a file watch dies with the old inode.
	dir := filepath.Dir(path)
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return nil, nil, err
	}

	themes := make(chan Theme, 1)
	done := make(chan struct{})

	go func() {
		defer watcher.Close()
		defer close(themes)

		debounceDelay := 100 * time.Millisecond
		var (
			debounce *time.Timer
			fire     <-chan time.Time
		)
		defer func() {
			if debounce != nil {
				debounce.Stop()
			}
		}()

		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != filepath.Clean(path) {
					continue
				}
				if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
					continue
				}
				if debounce == nil {
					debounce = time.NewTimer(debounceDelay)
				} else {
					if !debounce.Stop() {
						select {
						case <-debounce.C:
						default:
						}
					}
					debounce.Reset(debounceDelay)
				}
				fire = debounce.C

			case <-fire:
				fire = nil
				theme, err := LoadTheme(path)
				if err != nil {
					if onErr != nil {
						onErr(err)
					}
					continue
				}
				select {
				case themes <- theme:
				default:
				}

			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				if onErr != nil {
					onErr(err)
				}

			case <-done:
				return
			}
		}
	}()

	var stopOnce sync.Once
	stop := func() { stopOnce.Do(func() { close(done) }) }
	return themes, stop, nil
}
