package game

import (
	"fmt"
	"log"
	"sort"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// MapRecord 单张地图的最好成绩
type MapRecord struct {
	BestWave int  `yaml:"bestWave"` // 到达过的最高波次
	Won      bool `yaml:"won"`      // 是否通关过
}

// 存储路径常量
const (
	recordsObject   = "records"
	recordsProperty = "maps"
)

// RecordManager 按地图 ID 保存最好成绩
// gdataManager 为 nil 时仅在内存中记录
type RecordManager struct {
	gdataManager *gdata.Manager
	records      map[string]MapRecord
}

// NewRecordManager 创建记录管理器并加载已有记录
func NewRecordManager(gdataManager *gdata.Manager) *RecordManager {
	rm := &RecordManager{
		gdataManager: gdataManager,
		records:      make(map[string]MapRecord),
	}
	if err := rm.Load(); err != nil {
		log.Printf("[RecordManager] 警告: 加载记录失败: %v", err)
	}
	return rm
}

// Load 从 gdata 读取记录
func (rm *RecordManager) Load() error {
	rm.records = make(map[string]MapRecord)
	if rm.gdataManager == nil || !rm.gdataManager.ObjectPropExists(recordsObject, recordsProperty) {
		return nil
	}

	data, err := rm.gdataManager.LoadObjectProp(recordsObject, recordsProperty)
	if err != nil {
		return fmt.Errorf("failed to load records: %w", err)
	}

	var loaded map[string]MapRecord
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return fmt.Errorf("failed to unmarshal records: %w", err)
	}
	for id, rec := range loaded {
		rm.records[id] = rec
	}
	return nil
}

// Save 写入 gdata，降级模式下直接返回 nil
func (rm *RecordManager) Save() error {
	if rm.gdataManager == nil {
		return nil
	}

	data, err := yaml.Marshal(rm.records)
	if err != nil {
		return fmt.Errorf("failed to marshal records: %w", err)
	}
	if err := rm.gdataManager.SaveObjectProp(recordsObject, recordsProperty, data); err != nil {
		return fmt.Errorf("failed to save records: %w", err)
	}
	return nil
}

// Get 返回地图的记录
func (rm *RecordManager) Get(mapID string) MapRecord {
	return rm.records[mapID]
}

// Submit 提交一次游戏结果，成绩提高时返回 true
func (rm *RecordManager) Submit(mapID string, wave int, won bool) bool {
	rec := rm.records[mapID]
	improved := false
	if wave > rec.BestWave {
		rec.BestWave = wave
		improved = true
	}
	if won && !rec.Won {
		rec.Won = true
		improved = true
	}
	if improved {
		rm.records[mapID] = rec
		log.Printf("[RecordManager] %s 新纪录: 第 %d 波（胜利=%v）", mapID, rec.BestWave, rec.Won)
	}
	return improved
}

// MapIDs 返回有记录的地图 ID（排序）
func (rm *RecordManager) MapIDs() []string {
	ids := make([]string, 0, len(rm.records))
	for id := range rm.records {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
