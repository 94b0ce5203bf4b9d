package game

import (
	"fmt"
	"testing"
	"time"

	"github.com/quasilyte/gdata/v2"
)

// newTestGdataManager 在临时 HOME 下创建 gdata Manager，无法创建时跳过测试
func newTestGdataManager(t *testing.T, name string) *gdata.Manager {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_DATA_HOME", home)

	manager, err := gdata.Open(gdata.Config{
		AppName: fmt.Sprintf("minion_td_test_%s_%d", name, time.Now().UnixNano()),
	})
	if err != nil {
		t.Skipf("cannot create gdata manager: %v", err)
	}
	return manager
}
