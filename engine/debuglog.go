package engine

import "fmt"

// DebugLogCapacity bounds the number of distinct keys kept in the debug log
const DebugLogCapacity = 100

// DebugLine is one keyed entry of the debug log
type DebugLine struct {
	Key   string
	Value string
}

// DebugLog is a bounded keyed log shown by the debug overlay. Logging an
// existing key overwrites its value in place; new keys are dropped once the
// log is full.
type DebugLog struct {
	capacity int
	lines    []DebugLine
	index    map[string]int
}

func NewDebugLog(capacity int) *DebugLog {
	return &DebugLog{
		capacity: capacity,
		index:    make(map[string]int),
	}
}

// Log upserts key. Returns false when the key was dropped
func (d *DebugLog) Log(key string, value any) bool {
	v := fmt.Sprint(value)
	if i, ok := d.index[key]; ok {
		d.lines[i].Value = v
		return true
	}
	if len(d.lines) >= d.capacity {
		return false
	}
	d.index[key] = len(d.lines)
	d.lines = append(d.lines, DebugLine{Key: key, Value: v})
	return true
}

// Lines returns the entries in first-logged order
func (d *DebugLog) Lines() []DebugLine {
	return d.lines
}

func (d *DebugLog) Len() int {
	return len(d.lines)
}

func (d *DebugLog) Clear() {
	d.lines = d.lines[:0]
	clear(d.index)
}
