package systems

import "errors"

// 塔操作错误
var (
	ErrUnknownTowerType   = errors.New("unknown tower type")
	ErrNotBuildable       = errors.New("cell is not buildable")
	ErrCellOccupied       = errors.New("cell already has a tower")
	ErrInsufficientCoins  = errors.New("not enough coins")
	ErrNoSelection        = errors.New("no tower selected")
	ErrUpgradeUnavailable = errors.New("upgrade not available")
)

// 波次错误
var (
	ErrWaveInProgress = errors.New("wave already in progress")
	ErrWaveCooldown   = errors.New("wave cooldown has not elapsed")
	ErrAllWavesDone   = errors.New("all waves completed")
)
