package engine

import (
	"fmt"
	"slices"

	"github.com/yohamta/donburi"
)

// Parent links an entity to the entity that owns it
type Parent struct {
	Entity donburi.Entity
}

// Children lists owned entities in insertion order; layout and paint
// follow this order
type Children struct {
	Entities []donburi.Entity
}

var (
	ParentComponent   = donburi.NewComponentType[Parent]()
	ChildrenComponent = donburi.NewComponentType[Children]()
)

// Insert adds the component when absent and stores v
func Insert[T any](entry *donburi.Entry, c *donburi.ComponentType[T], v T) {
	if !entry.HasComponent(c) {
		entry.AddComponent(c)
	}
	c.SetValue(entry, v)
}

// SetParent attaches child under parent, detaching it from any previous one
func SetParent(w donburi.World, child, parent donburi.Entity) {
	if old, ok := ParentOf(w, child); ok {
		detach(w, old, child)
	}
	Insert(w.Entry(child), ParentComponent, Parent{Entity: parent})

	pe := w.Entry(parent)
	if !pe.HasComponent(ChildrenComponent) {
		pe.AddComponent(ChildrenComponent)
		pe = w.Entry(parent)
	}
	kids := ChildrenComponent.Get(pe)
	kids.Entities = append(kids.Entities, child)
}

// ParentOf returns the parent of e
func ParentOf(w donburi.World, e donburi.Entity) (donburi.Entity, bool) {
	if !w.Valid(e) {
		return donburi.Null, false
	}
	entry := w.Entry(e)
	if !entry.HasComponent(ParentComponent) {
		return donburi.Null, false
	}
	return ParentComponent.Get(entry).Entity, true
}

// ChildrenOf returns a copy of the children of e
func ChildrenOf(w donburi.World, e donburi.Entity) []donburi.Entity {
	if !w.Valid(e) {
		return nil
	}
	entry := w.Entry(e)
	if !entry.HasComponent(ChildrenComponent) {
		return nil
	}
	return slices.Clone(ChildrenComponent.Get(entry).Entities)
}

func detach(w donburi.World, parent, child donburi.Entity) {
	if !w.Valid(parent) {
		return
	}
	pe := w.Entry(parent)
	if !pe.HasComponent(ChildrenComponent) {
		return
	}
	kids := ChildrenComponent.Get(pe)
	kids.Entities = slices.DeleteFunc(kids.Entities, func(e donburi.Entity) bool {
		return e == child
	})
}

// DespawnRecursive removes e and every descendant
func DespawnRecursive(w donburi.World, e donburi.Entity) {
	if !w.Valid(e) {
		return
	}
	if parent, ok := ParentOf(w, e); ok {
		detach(w, parent, e)
	}
	despawnTree(w, e)
}

func despawnTree(w donburi.World, e donburi.Entity) {
	for _, c := range ChildrenOf(w, e) {
		despawnTree(w, c)
	}
	if w.Valid(e) {
		w.Remove(e)
	}
}

// DespawnChildren removes every descendant of e but keeps e
func DespawnChildren(w donburi.World, e donburi.Entity) {
	for _, c := range ChildrenOf(w, e) {
		despawnTree(w, c)
	}
	if w.Valid(e) {
		entry := w.Entry(e)
		if entry.HasComponent(ChildrenComponent) {
			ChildrenComponent.Get(entry).Entities = nil
		}
	}
}

// DespawnWith removes every entity carrying marker together with its subtree
func DespawnWith[T any](w donburi.World, marker *donburi.ComponentType[T]) int {
	var doomed []donburi.Entity
	marker.Each(w, func(entry *donburi.Entry) {
		doomed = append(doomed, entry.Entity())
	})
	for _, e := range doomed {
		DespawnRecursive(w, e)
	}
	return len(doomed)
}

// Single returns the only entity matching q and panics otherwise
func Single(w donburi.World, q *donburi.Query) *donburi.Entry {
	if n := q.Count(w); n != 1 {
		panic(fmt.Sprintf("engine: expected exactly one match, found %d", n))
	}
	entry, _ := q.First(w)
	return entry
}
