// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
)

// =============================================================================
// SPRITE ART WATCHER
// =============================================================================

// SpriteWatcher live-reloads on-disk sprite art overrides while the demo
// runs, so art can be tweaked without restarting. Purely cosmetic: any
// failure to watch just means no live reload.
type SpriteWatcher struct {
	watcher *fsnotify.Watcher
	sprite  *Sprite
	dir     string
	done    chan struct{}
}

// NewSpriteWatcher watches assetDir/character for *.txt art changes and
// pushes them into the sprite. Returns nil (not an error) when the
// directory cannot be watched; callers treat a nil watcher as "no reload".
func NewSpriteWatcher(sprite *Sprite, assetDir string) *SpriteWatcher {
	dir := filepath.Join(assetDir, "character")

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil
	}
	if err := w.Add(dir); err != nil {
		w.Close()
		return nil
	}

	sw := &SpriteWatcher{
		watcher: w,
		sprite:  sprite,
		dir:     dir,
		done:    make(chan struct{}),
	}
	go sw.loop()
	return sw
}

// Close stops the watcher.
func (sw *SpriteWatcher) Close() {
	close(sw.done)
	sw.watcher.Close()
}

func (sw *SpriteWatcher) loop() {
	for {
		select {
		case <-sw.done:
			return
		case event, ok := <-sw.watcher.Events:
			if !ok {
				return
			}
			if filepath.Ext(event.Name) != ".txt" {
				continue
			}
			name := strings.TrimSuffix(filepath.Base(event.Name), ".txt")
			resource := "assets/character/" + name + ".png"

			switch {
			case event.Op&(fsnotify.Write|fsnotify.Create) != 0:
				sw.sprite.LoadOverrides(filepath.Dir(sw.dir))
			case event.Op&(fsnotify.Remove|fsnotify.Rename) != 0:
				sw.sprite.SetOverride(resource, "")
			}
		case _, ok := <-sw.watcher.Errors:
			if !ok {
				return
			}
			// Watch errors are cosmetic; keep going.
		}
	}
}
