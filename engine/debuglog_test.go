package engine

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDebugLogUpsert(t *testing.T) {
	d := NewDebugLog(4)
	d.Log("fps", 60)
	d.Log("pos", "1,2")
	d.Log("fps", 59.5)

	want := []DebugLine{{Key: "fps", Value: "59.5"}, {Key: "pos", Value: "1,2"}}
	if diff := cmp.Diff(want, d.Lines()); diff != "" {
		t.Errorf("lines mismatch (-want +got):\n%s", diff)
	}
}

func TestDebugLogBounded(t *testing.T) {
	d := NewDebugLog(3)
	for i := range 5 {
		d.Log(fmt.Sprintf("k%d", i), i)
	}
	if d.Len() != 3 {
		t.Errorf("Expected 3 lines, got %d", d.Len())
	}
	if d.Log("k4", 1) {
		t.Error("Expected new key to be dropped when full")
	}
	if !d.Log("k0", "again") {
		t.Error("Expected existing key to update when full")
	}

	d.Clear()
	if d.Len() != 0 {
		t.Errorf("Expected empty log, got %d", d.Len())
	}
	if !d.Log("k9", 9) {
		t.Error("Expected log to accept keys after clear")
	}
}
