package systems

import (
	"fmt"
	"log"
	"math/rand"

	"github.com/decker502/minion-td/pkg/components"
	"github.com/decker502/minion-td/pkg/config"
	"github.com/decker502/minion-td/pkg/ecs"
	"github.com/decker502/minion-td/pkg/entities"
	"github.com/decker502/minion-td/pkg/game"
	"github.com/decker502/minion-td/pkg/maps"
)

// WaveSystem 波次生成与出怪
//
// 第 n 波的敌人由 WaveConfig.Composition 决定并打乱顺序，按间隔逐个出生在路径起点。
// 出怪队列为空且场上没有敌人时本波结束，之后需等待冷却才能开始下一波；第一波可以立即开始。
type WaveSystem struct {
	entityManager *ecs.EntityManager
	gameState     *game.GameState
	waveConfig    *config.WaveConfig
	enemyConfig   *config.EnemyConfig
	path          []maps.PathPoint
	rng           *rand.Rand

	currentWave   int
	inProgress    bool
	queue         []string
	spawnInterval float64
	nextSpawnTime float64
	cooldownStart float64
}

// NewWaveSystem 创建波次系统，rng 为 nil 时使用随机种子
func NewWaveSystem(em *ecs.EntityManager, gs *game.GameState, waves *config.WaveConfig, enemies *config.EnemyConfig, path []maps.PathPoint, rng *rand.Rand) *WaveSystem {
	if rng == nil {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}
	return &WaveSystem{
		entityManager: em,
		gameState:     gs,
		waveConfig:    waves,
		enemyConfig:   enemies,
		path:          path,
		rng:           rng,
	}
}

// CurrentWave 当前（或最近一次）波次编号，尚未开始时为 0
func (s *WaveSystem) CurrentWave() int {
	return s.currentWave
}

// InProgress 是否有波次正在进行
func (s *WaveSystem) InProgress() bool {
	return s.inProgress
}

// Pending 尚未出生的敌人数
func (s *WaveSystem) Pending() int {
	return len(s.queue)
}

// EnemiesRemaining 本波剩余敌人（场上 + 待出生）
func (s *WaveSystem) EnemiesRemaining() int {
	return len(ecs.GetEntitiesWith1[*components.EnemyComponent](s.entityManager)) + len(s.queue)
}

// CooldownRemaining 距离可以开始下一波的秒数
func (s *WaveSystem) CooldownRemaining() float64 {
	if s.inProgress || s.currentWave == 0 {
		return 0
	}
	return max(0, s.waveConfig.Cooldown-(s.gameState.GameTime-s.cooldownStart))
}

// CanStartNextWave 是否可以开始下一波
func (s *WaveSystem) CanStartNextWave() bool {
	return s.checkStart() == nil
}

func (s *WaveSystem) checkStart() error {
	if s.inProgress {
		return ErrWaveInProgress
	}
	if s.waveConfig.TotalWaves > 0 && s.currentWave >= s.waveConfig.TotalWaves {
		return ErrAllWavesDone
	}
	if s.CooldownRemaining() > 0 {
		return ErrWaveCooldown
	}
	return nil
}

// StartWave 开始下一波
func (s *WaveSystem) StartWave() error {
	if err := s.checkStart(); err != nil {
		return fmt.Errorf("cannot start wave %d: %w", s.currentWave+1, err)
	}

	s.currentWave++
	s.inProgress = true
	s.queue = s.Composition(s.currentWave)
	s.rng.Shuffle(len(s.queue), func(i, j int) { s.queue[i], s.queue[j] = s.queue[j], s.queue[i] })
	s.spawnInterval = s.waveConfig.SpawnInterval.Interval(s.currentWave)
	s.nextSpawnTime = s.gameState.GameTime

	log.Printf("[WaveSystem] 第 %d 波开始: %d 个敌人, 出怪间隔 %.2f 秒",
		s.currentWave, len(s.queue), s.spawnInterval)
	return nil
}

// Composition 返回第 wave 波的敌人类型列表（未打乱）
func (s *WaveSystem) Composition(wave int) []string {
	var result []string
	for _, c := range s.waveConfig.Composition {
		for i := 0; i < c.Count(wave); i++ {
			result = append(result, c.Type)
		}
	}
	return result
}

// Update 出怪并检查本波是否结束，本波结束时返回 true
func (s *WaveSystem) Update(deltaTime float64) bool {
	if !s.inProgress {
		return false
	}

	now := s.gameState.GameTime
	if len(s.queue) > 0 && now >= s.nextSpawnTime {
		enemyType := s.queue[0]
		s.queue = s.queue[1:]
		s.spawn(enemyType)
		s.nextSpawnTime = now + s.spawnInterval
	}

	if len(s.queue) > 0 || len(ecs.GetEntitiesWith1[*components.EnemyComponent](s.entityManager)) > 0 {
		return false
	}

	s.inProgress = false
	s.cooldownStart = now
	log.Printf("[WaveSystem] 第 %d 波结束", s.currentWave)

	if s.waveConfig.TotalWaves > 0 && s.currentWave >= s.waveConfig.TotalWaves {
		s.gameState.Win()
	}
	return true
}

func (s *WaveSystem) spawn(enemyType string) {
	stats, ok := s.enemyConfig.Get(enemyType)
	if !ok {
		log.Printf("[WaveSystem] 跳过未知敌人类型 %q", enemyType)
		return
	}
	if _, err := entities.NewEnemy(s.entityManager, enemyType, stats, s.path); err != nil {
		log.Printf("[WaveSystem] 生成敌人 %s 失败: %v", enemyType, err)
	}
}
