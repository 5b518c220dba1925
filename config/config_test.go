package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("Expected valid defaults, got %v", err)
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if diff := cmp.Diff(Default(), cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.yaml")
	data := `
player:
  speed: 300
room:
  door_width: 120
  wall_color: "#112233"
dungeon:
  start: {x: 1, y: 0}
  rooms:
    - at: {x: 1, y: 0}
      floor: textures/stone.png
theme:
  menu_label: text-4xl text-black
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	want := Default()
	want.Player.Speed = 300
	want.Room.DoorWidth = 120
	want.Room.WallColor = MustColor("#112233")
	want.Dungeon = Dungeon{
		Start: Coord{1, 0},
		Rooms: []RoomDef{{At: Coord{1, 0}, Floor: "textures/stone.png"}},
	}
	want.Theme.MenuLabel = "text-4xl text-black"
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		name, yaml, want string
	}{
		{"malformed", "player: [", "parse"},
		{"bad color", "room: {wall_color: nothex}", "bad color"},
		{"door too wide", "room: {door_width: 900}", "does not fit"},
		{"player too big", "player: {size: 150}", "cannot pass"},
		{"missing start", "dungeon: {start: {x: 5, y: 5}}", "start room"},
		{"no console", "debug: {console: 0}", "console capacity"},
		{"duplicate room", "dungeon: {rooms: [{at: {x: 0, y: 0}}, {at: {x: 0, y: 0}}]}", "duplicate"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.yaml))
			if err == nil {
				t.Fatal("Expected error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("Expected %q in error, got %v", tc.want, err)
			}
		})
	}
}

func TestColorMarshal(t *testing.T) {
	v, err := MustColor("#ff8800").MarshalYAML()
	if err != nil {
		t.Fatal(err)
	}
	if v != "#ff8800" {
		t.Errorf("Expected #ff8800, got %v", v)
	}
}

func TestShippedConfigMatchesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join("..", "config.yaml"))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if diff := cmp.Diff(Default(), cfg); diff != "" {
		t.Errorf("config.yaml drifted from the defaults (-want +got):\n%s", diff)
	}
}
