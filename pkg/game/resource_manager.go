package game

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg" // Register JPEG decoder
	_ "image/png"  // Register PNG decoder
	"io/fs"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"gopkg.in/yaml.v3"
)

// ResourceManager is responsible for centralized management of game images.
// Images are read from an fs.FS (the embedded assets at runtime, an
// fstest.MapFS in tests) and cached by path, so each file is decoded once.
//
// Missing files fail fast: the returned error wraps fs.ErrNotExist.
//
// Thread Safety Note:
// This implementation is NOT thread-safe. The game loop is single-threaded.
//
// Usage:
//
//	rm := NewResourceManager(embedded.FS())
//	img, err := rm.LoadImage("assets/images/maps/minion_valley.png")
type ResourceManager struct {
	fsys       fs.FS
	imageCache map[string]*ebiten.Image

	config      *ResourceConfig
	resourceMap map[string]string // Resource ID -> file path
}

// NewResourceManager creates a ResourceManager reading from fsys.
func NewResourceManager(fsys fs.FS) *ResourceManager {
	return &ResourceManager{
		fsys:        fsys,
		imageCache:  make(map[string]*ebiten.Image),
		resourceMap: make(map[string]string),
	}
}

// LoadImage loads an image file from the specified path and caches it for future use.
// If the image has already been loaded, it returns the cached version.
func (rm *ResourceManager) LoadImage(path string) (*ebiten.Image, error) {
	if cachedImage, exists := rm.imageCache[path]; exists {
		return cachedImage, nil
	}

	data, err := fs.ReadFile(rm.fsys, path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file %s: %w", path, err)
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", path, err)
	}

	ebitenImg := ebiten.NewImageFromImage(img)
	rm.imageCache[path] = ebitenImg
	return ebitenImg, nil
}

// GetImage returns a previously loaded image, or nil if it is not cached.
func (rm *ResourceManager) GetImage(path string) *ebiten.Image {
	return rm.imageCache[path]
}

// LoadResourceConfig 读取资源清单并建立 ID -> 路径映射
func (rm *ResourceManager) LoadResourceConfig(configPath string) error {
	data, err := fs.ReadFile(rm.fsys, configPath)
	if err != nil {
		return fmt.Errorf("failed to read resource config %s: %w", configPath, err)
	}

	var cfg ResourceConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return fmt.Errorf("failed to parse resource config %s: %w", configPath, err)
	}

	rm.config = &cfg
	rm.buildResourceMap()
	log.Printf("[ResourceManager] 加载资源配置 %s: %d 个组, %d 个资源",
		configPath, len(cfg.Groups), len(rm.resourceMap))
	return nil
}

// buildResourceMap 展开所有资源组
func (rm *ResourceManager) buildResourceMap() {
	rm.resourceMap = make(map[string]string)
	if rm.config == nil {
		return
	}
	for _, group := range rm.config.Groups {
		for _, img := range group.Images {
			rm.resourceMap[img.ID] = buildFullPath(rm.config.BasePath, img.Path)
		}
	}
}

// ResourcePath 返回资源 ID 对应的完整路径
func (rm *ResourceManager) ResourcePath(resourceID string) (string, bool) {
	path, ok := rm.resourceMap[resourceID]
	return path, ok
}

// LoadImageByID 通过资源 ID 加载图片
func (rm *ResourceManager) LoadImageByID(resourceID string) (*ebiten.Image, error) {
	path, ok := rm.resourceMap[resourceID]
	if !ok {
		return nil, fmt.Errorf("resource ID %s: %w", resourceID, fs.ErrNotExist)
	}
	return rm.LoadImage(path)
}

// LoadResourceGroup 预加载一个资源组中的全部图片，遇到缺失文件立即失败
func (rm *ResourceManager) LoadResourceGroup(groupName string) error {
	if rm.config == nil {
		return fmt.Errorf("resource config not loaded")
	}
	group, ok := rm.config.Groups[groupName]
	if !ok {
		return fmt.Errorf("resource group %s not found", groupName)
	}

	for _, img := range group.Images {
		if _, err := rm.LoadImage(buildFullPath(rm.config.BasePath, img.Path)); err != nil {
			return fmt.Errorf("failed to load group %s: %w", groupName, err)
		}
	}
	log.Printf("[ResourceManager] 加载资源组 %s（%d 张图片）", groupName, len(group.Images))
	return nil
}
