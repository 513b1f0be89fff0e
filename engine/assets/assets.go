package assets

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/spaghettifunk/pong/engine/assets/loaders"
	"github.com/spaghettifunk/pong/engine/core"
)

var ErrManagerClosed = errors.New("asset manager already closed")

type AssetType uint8

const (
	AssetTypeNone AssetType = iota
	// Compiled SPIR-V consumed by the renderer.
	AssetTypeShaderBinary
	// GLSL source compiled by `mage build:shaders`.
	AssetTypeShaderSource
)

type AssetInfo struct {
	Path       string
	Type       AssetType
	Loaded     bool
	LastLoaded time.Time
}

// AssetChange is a file system event on a tracked asset.
type AssetChange struct {
	Path    string
	Type    AssetType
	Op      fsnotify.Op
	// Loaded is set when the renderer is currently using the file.
	Loaded bool
}

type AssetManager struct {
	assets map[string]AssetInfo
	shader *loaders.ShaderLoader

	mutex sync.RWMutex

	fsnotify *fsnotify.Watcher
	isClosed bool
}

// NewAssetManager creates the manager; with watch set, directories passed to
// Initialize are observed for changes that Poll reports.
func NewAssetManager(watch bool) (*AssetManager, error) {
	am := &AssetManager{
		assets: make(map[string]AssetInfo),
		shader: &loaders.ShaderLoader{},
	}
	if watch {
		fsWatch, err := fsnotify.NewWatcher()
		if err != nil {
			return nil, err
		}
		am.fsnotify = fsWatch
	}
	return am, nil
}

// Initialize indexes every known asset under the given directories.
func (am *AssetManager) Initialize(dirs ...string) error {
	if am.isClosed {
		return ErrManagerClosed
	}
	for _, dir := range dirs {
		if err := am.watchDir(dir); err != nil {
			return err
		}
	}
	return nil
}

func (am *AssetManager) watchDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("reading asset directory %s: %w", dir, err)
	}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		am.handleFileEvent(filepath.Join(dir, e.Name()))
	}
	if am.fsnotify != nil {
		if err := am.fsnotify.Add(dir); err != nil {
			return fmt.Errorf("watching %s: %w", dir, err)
		}
		core.LogDebug("watching %s for asset changes", dir)
	}
	return nil
}

// LoadShader reads a SPIR-V blob and marks it as in use.
func (am *AssetManager) LoadShader(path string) (*loaders.ShaderBinary, error) {
	if am.isClosed {
		return nil, ErrManagerClosed
	}
	bin, err := am.shader.Load(path)
	if err != nil {
		return nil, err
	}

	key := assetKey(path)
	am.mutex.Lock()
	am.assets[key] = AssetInfo{
		Path:       path,
		Type:       AssetTypeShaderBinary,
		Loaded:     true,
		LastLoaded: time.Now(),
	}
	am.mutex.Unlock()

	core.LogDebug("loaded shader %s (%d bytes)", path, bin.Size())
	return bin, nil
}

func (am *AssetManager) Info(path string) (AssetInfo, bool) {
	am.mutex.RLock()
	defer am.mutex.RUnlock()
	info, ok := am.assets[assetKey(path)]
	return info, ok
}

// Poll drains pending watcher events without blocking.
func (am *AssetManager) Poll() []AssetChange {
	if am.fsnotify == nil || am.isClosed {
		return nil
	}
	var changes []AssetChange
	for {
		select {
		case e, ok := <-am.fsnotify.Events:
			if !ok {
				return changes
			}
			if c, tracked := am.handleEvent(e); tracked {
				changes = append(changes, c)
			}
		case err, ok := <-am.fsnotify.Errors:
			if !ok {
				return changes
			}
			core.LogError("asset watcher: %s", err)
		default:
			return changes
		}
	}
}

func (am *AssetManager) handleEvent(e fsnotify.Event) (AssetChange, bool) {
	assetType := determineAssetType(e.Name)
	if assetType == AssetTypeNone {
		return AssetChange{}, false
	}
	if e.Op&fsnotify.Remove != 0 || e.Op&fsnotify.Rename != 0 {
		info, _ := am.Info(e.Name)
		if !info.Loaded {
			am.removeAsset(e.Name)
		}
		return AssetChange{Path: e.Name, Type: assetType, Op: e.Op, Loaded: info.Loaded}, true
	}
	if e.Op&(fsnotify.Create|fsnotify.Write) == 0 {
		return AssetChange{}, false
	}
	info := am.handleFileEvent(e.Name)
	return AssetChange{Path: e.Name, Type: assetType, Op: e.Op, Loaded: info.Loaded}, true
}

func (am *AssetManager) Shutdown() error {
	if am.isClosed {
		return nil
	}
	am.isClosed = true
	if am.fsnotify != nil {
		return am.fsnotify.Close()
	}
	return nil
}

// Handle the creation or modification of a file
func (am *AssetManager) handleFileEvent(path string) AssetInfo {
	am.mutex.Lock()
	defer am.mutex.Unlock()

	assetType := determineAssetType(path)
	if assetType == AssetTypeNone {
		return AssetInfo{}
	}
	key := assetKey(path)
	info, ok := am.assets[key]
	if !ok {
		info = AssetInfo{Path: path, Type: assetType}
	}
	am.assets[key] = info
	return info
}

// Remove the asset from the index if it was deleted
func (am *AssetManager) removeAsset(path string) {
	am.mutex.Lock()
	defer am.mutex.Unlock()

	delete(am.assets, assetKey(path))
}

func assetKey(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return filepath.Clean(path)
}

func determineAssetType(path string) AssetType {
	switch filepath.Ext(path) {
	case ".spv":
		return AssetTypeShaderBinary
	case ".vert", ".frag":
		return AssetTypeShaderSource
	default:
		return AssetTypeNone
	}
}
