// Package config loads the game configuration from YAML. Every field has a
// default so a missing file still yields a playable game.
package config

import (
	"errors"
	"fmt"
	"image/color"
	"io/fs"
	"os"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Window  Window  `yaml:"window"`
	Player  Player  `yaml:"player"`
	Room    Room    `yaml:"room"`
	Dungeon Dungeon `yaml:"dungeon"`
	Theme   Theme   `yaml:"theme"`
	Debug   Debug   `yaml:"debug"`
	Assets  Assets  `yaml:"assets"`
}

type Window struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
	TPS    int    `yaml:"tps"`
}

type Player struct {
	Size  float64 `yaml:"size"`
	Speed float64 `yaml:"speed"`
	Lives int     `yaml:"lives"`
	Color Color   `yaml:"color"`
}

// Room is the geometry shared by every room: a rectangle of walls with a
// centered door gap on each side
type Room struct {
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	WallThickness float64 `yaml:"wall_thickness"`
	DoorWidth     float64 `yaml:"door_width"`
	WallColor     Color   `yaml:"wall_color"`
	DoorColor     Color   `yaml:"door_color"`
	FloorColor    Color   `yaml:"floor_color"`
}

type Coord struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

type RoomDef struct {
	At    Coord  `yaml:"at"`
	Floor string `yaml:"floor"`
}

type Dungeon struct {
	Start Coord     `yaml:"start"`
	Rooms []RoomDef `yaml:"rooms"`
}

// Theme holds class strings in Tailwind spelling, e.g.
// "w-full bg-white hover:bg-red-600"
type Theme struct {
	MenuButton string `yaml:"menu_button"`
	MenuLabel  string `yaml:"menu_label"`
	Heart      string `yaml:"heart"`
	DebugText  string `yaml:"debug_text"`
}

type Debug struct {
	Overlay  bool   `yaml:"overlay"`
	LogLevel string `yaml:"log_level"`
	Console  int    `yaml:"console"`
}

type Assets struct {
	Dir string `yaml:"dir"`
}

// Color is a #rrggbb color in YAML
type Color struct {
	color.RGBA
}

func MustColor(hex string) Color {
	c, err := ParseColor(hex)
	if err != nil {
		panic(err)
	}
	return c
}

func ParseColor(hex string) (Color, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return Color{}, fmt.Errorf("config: bad color %q: %w", hex, err)
	}
	r, g, b := c.RGB255()
	return Color{color.RGBA{R: r, G: g, B: b, A: 0xff}}, nil
}

func (c *Color) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseColor(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

func (c Color) MarshalYAML() (any, error) {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}.Hex(), nil
}

func Default() Config {
	return Config{
		Window: Window{Width: 1200, Height: 840, Title: "Room Crawler", TPS: 60},
		Player: Player{Size: 50, Speed: 500, Lives: 3, Color: MustColor("#00e600")},
		Room: Room{
			Width:         1200,
			Height:        840,
			WallThickness: 60,
			DoorWidth:     100,
			WallColor:     MustColor("#030303"),
			DoorColor:     MustColor("#ff0000"),
			FloorColor:    MustColor("#3b2a1a"),
		},
		Dungeon: Dungeon{
			Start: Coord{0, 0},
			Rooms: []RoomDef{
				{At: Coord{0, 0}, Floor: "textures/wooden-floor.png"},
				{At: Coord{0, 1}, Floor: "textures/wooden-floor.png"},
			},
		},
		Theme: Theme{
			MenuButton: "w-full bg-white hover:bg-red-600 pressed:bg-red-800",
			MenuLabel:  "text-5xl text-black",
			Heart:      "h-16 w-16",
			DebugText:  "text-2xl text-white",
		},
		Debug:  Debug{Overlay: true, LogLevel: "info", Console: 100},
		Assets: Assets{Dir: "assets"},
	}
}

// Load reads path over the defaults. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		log.Info().Str("path", path).Msg("no config file found; using defaults")
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes YAML over the defaults and validates the result
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if len(data) > 0 {
		// a rooms list in the file replaces the default layout
		cfg.Dungeon.Rooms = nil
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: parse: %w", err)
		}
		if len(cfg.Dungeon.Rooms) == 0 {
			cfg.Dungeon.Rooms = Default().Dungeon.Rooms
		}
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	var errs []error
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height))
	}
	if c.Player.Size <= 0 || c.Player.Speed < 0 || c.Player.Lives < 0 {
		errs = append(errs, errors.New("player size must be positive, speed and lives non-negative"))
	}
	r := c.Room
	if r.WallThickness <= 0 || r.DoorWidth <= 0 {
		errs = append(errs, errors.New("room wall thickness and door width must be positive"))
	}
	if r.DoorWidth >= min(r.Width, r.Height)-2*r.WallThickness {
		errs = append(errs, fmt.Errorf("door width %v does not fit a %vx%v room", r.DoorWidth, r.Width, r.Height))
	}
	if c.Player.Size >= r.DoorWidth {
		errs = append(errs, fmt.Errorf("player size %v cannot pass a %v door", c.Player.Size, r.DoorWidth))
	}
	if c.Debug.Console <= 0 {
		errs = append(errs, fmt.Errorf("debug console capacity must be positive, got %d", c.Debug.Console))
	}
	seen := make(map[Coord]bool)
	start := false
	for _, room := range c.Dungeon.Rooms {
		if seen[room.At] {
			errs = append(errs, fmt.Errorf("duplicate room at %d,%d", room.At.X, room.At.Y))
		}
		seen[room.At] = true
		start = start || room.At == c.Dungeon.Start
	}
	if !start {
		errs = append(errs, fmt.Errorf("start room %d,%d is not in the dungeon", c.Dungeon.Start.X, c.Dungeon.Start.Y))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: invalid: %w", err)
	}
	return nil
}
