package engine

import "reflect"

// ResourceStore holds one value per type: the clock, input, cursor, debug
// log and whatever plugins add. Systems run one at a time on the game loop,
// so the store is not locked.
type ResourceStore struct {
	byType map[reflect.Type]any
}

func NewResourceStore() *ResourceStore {
	return &ResourceStore{byType: make(map[reflect.Type]any)}
}

// AddResource stores v under T, replacing any previous value. Store
// pointers when systems need to mutate the resource.
func AddResource[T any](rs *ResourceStore, v T) {
	rs.byType[reflect.TypeFor[T]()] = v
}

func GetResource[T any](rs *ResourceStore) (T, bool) {
	v, ok := rs.byType[reflect.TypeFor[T]()].(T)
	return v, ok
}

// MustGetResource panics when T was never added; plugins add their
// resources in Build, so a miss means a plugin is not installed.
func MustGetResource[T any](rs *ResourceStore) T {
	v, ok := GetResource[T](rs)
	if !ok {
		panic("engine: missing resource " + reflect.TypeFor[T]().String())
	}
	return v
}
