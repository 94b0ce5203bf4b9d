package game

import "testing"

func TestRecordSubmit(t *testing.T) {
	rm := NewRecordManager(nil)

	tests := []struct {
		name string
		wave int
		won  bool
		want bool
	}{
		{"首次记录", 3, false, true},
		{"更低波次", 2, false, false},
		{"同波次", 3, false, false},
		{"更高波次", 7, false, true},
		{"通关", 7, true, true},
		{"再次通关", 7, true, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := rm.Submit("minion_valley", tt.wave, tt.won); got != tt.want {
				t.Errorf("Submit(%d,%v): got %v, want %v", tt.wave, tt.won, got, tt.want)
			}
		})
	}

	rec := rm.Get("minion_valley")
	if rec.BestWave != 7 || !rec.Won {
		t.Errorf("final record: %+v", rec)
	}
	if rm.Get("unknown") != (MapRecord{}) {
		t.Error("unknown map should have an empty record")
	}
	if err := rm.Save(); err != nil {
		t.Errorf("Save in degraded mode should not fail: %v", err)
	}
}

func TestRecordPersistence(t *testing.T) {
	manager := newTestGdataManager(t, "records")

	rm := NewRecordManager(manager)
	rm.Submit("twin_bridges", 12, false)
	rm.Submit("minion_valley", 20, true)
	if err := rm.Save(); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	reloaded := NewRecordManager(manager)
	ids := reloaded.MapIDs()
	if len(ids) != 2 || ids[0] != "minion_valley" || ids[1] != "twin_bridges" {
		t.Errorf("MapIDs: got %v", ids)
	}
	if reloaded.Get("twin_bridges").BestWave != 12 {
		t.Errorf("twin_bridges: %+v", reloaded.Get("twin_bridges"))
	}
}
