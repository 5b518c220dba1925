package engine

import "testing"

type score struct{ points int }

type scorer interface{ total() int }

func (s *score) total() int { return s.points }

func TestResourceStore(t *testing.T) {
	rs := NewResourceStore()
	if _, ok := GetResource[*score](rs); ok {
		t.Fatal("Expected missing resource")
	}

	AddResource(rs, &score{points: 3})
	s, ok := GetResource[*score](rs)
	if !ok {
		t.Fatal("Expected resource to be present")
	}
	s.points++
	if MustGetResource[*score](rs).points != 4 {
		t.Errorf("Expected mutation through pointer to stick")
	}

	AddResource(rs, &score{points: 10})
	if got := MustGetResource[*score](rs).points; got != 10 {
		t.Errorf("Expected replaced resource, got %d", got)
	}
}

func TestResourcesKeyedByStaticType(t *testing.T) {
	rs := NewResourceStore()
	AddResource[scorer](rs, &score{points: 7})

	if got := MustGetResource[scorer](rs).total(); got != 7 {
		t.Errorf("Expected 7 through the interface key, got %d", got)
	}
	if _, ok := GetResource[*score](rs); ok {
		t.Error("Expected the concrete type to be a separate key")
	}
}

func TestMustGetResourcePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Expected panic for missing resource")
		}
	}()
	MustGetResource[*score](NewResourceStore())
}
