package styles

import (
	"fmt"
	"sort"
	"strings"
)

// ParseNodeClass builds a node class from a space separated list such as
// "w-full bg-white hover:bg-red-600 pressed:bg-red-800"
func ParseNodeClass(s string) (Class[NodeBundle], error) {
	tokens, err := parseTokens(s, nodeCatalog)
	if err != nil {
		return nil, err
	}
	return Cn(tokens...), nil
}

// ParseTextClass builds a text class, e.g. "text-5xl text-black"
func ParseTextClass(s string) (Class[TextStyle], error) {
	tokens, err := parseTokens(s, textCatalog)
	if err != nil {
		return nil, err
	}
	return Cn(tokens...), nil
}

func parseTokens[T any](s string, catalog map[string]ApplyStyle[T]) ([]ApplyStyle[T], error) {
	fields := strings.Fields(s)
	tokens := make([]ApplyStyle[T], 0, len(fields))
	for _, f := range fields {
		name, wrap := f, func(a ApplyStyle[T]) ApplyStyle[T] { return a }
		switch {
		case strings.HasPrefix(f, "hover:"):
			name, wrap = strings.TrimPrefix(f, "hover:"), Hover[T]
		case strings.HasPrefix(f, "pressed:"):
			name, wrap = strings.TrimPrefix(f, "pressed:"), Pressed[T]
		case strings.HasPrefix(f, "active:"):
			name, wrap = strings.TrimPrefix(f, "active:"), Pressed[T]
		}
		atom, ok := catalog[name]
		if !ok {
			return nil, fmt.Errorf("styles: unknown class %q", f)
		}
		tokens = append(tokens, wrap(atom))
	}
	return tokens, nil
}

// NodeAtoms lists every node class name, sorted
func NodeAtoms() []string { return names(nodeCatalog) }

// TextAtoms lists every text class name, sorted
func TextAtoms() []string { return names(textCatalog) }

func names[T any](catalog map[string]ApplyStyle[T]) []string {
	out := make([]string, 0, len(catalog))
	for k := range catalog {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
