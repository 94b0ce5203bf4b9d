package game

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

// SceneFactory 场景工厂函数类型
// 用于按地图 ID 创建游戏场景，避免 game 与 scenes 之间的循环依赖
type SceneFactory func(mapID string) (Scene, error)

// SceneManager manages the game's high-level state by controlling which scene is active.
// It ensures only one scene's Update and Draw methods are called at any given time.
type SceneManager struct {
	currentScene Scene
	sceneFactory SceneFactory
}

// NewSceneManager creates and returns a new SceneManager instance.
// The manager starts with no active scene; use SwitchTo to set the initial scene.
func NewSceneManager() *SceneManager {
	return &SceneManager{}
}

// SetSceneFactory 设置场景工厂函数
func (sm *SceneManager) SetSceneFactory(factory SceneFactory) {
	sm.sceneFactory = factory
}

// SwitchTo changes the active scene to the provided scene.
func (sm *SceneManager) SwitchTo(scene Scene) {
	sm.currentScene = scene
}

// GetCurrentScene 返回当前活动的场景，没有时返回 nil
func (sm *SceneManager) GetCurrentScene() Scene {
	return sm.currentScene
}

// LoadMap 通过工厂创建指定地图的场景并切换过去
// 创建失败时保留当前场景
func (sm *SceneManager) LoadMap(mapID string) bool {
	log.Printf("[SceneManager] 加载地图: %s", mapID)

	if sm.sceneFactory == nil {
		log.Printf("[SceneManager] 错误: 未设置 SceneFactory")
		return false
	}

	newScene, err := sm.sceneFactory(mapID)
	if err != nil {
		log.Printf("[SceneManager] 错误: 无法创建地图 %s 的场景: %v", mapID, err)
		return false
	}
	sm.SwitchTo(newScene)
	log.Printf("[SceneManager] 已切换到地图: %s", mapID)
	return true
}

// Update updates the currently active scene.
// If no scene is active, this method does nothing.
func (sm *SceneManager) Update(deltaTime float64) {
	if sm.currentScene != nil {
		sm.currentScene.Update(deltaTime)
	}
}

// Draw renders the currently active scene to the provided screen.
// If no scene is active, this method does nothing.
func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if sm.currentScene != nil {
		sm.currentScene.Draw(screen)
	}
}
