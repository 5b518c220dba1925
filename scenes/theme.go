package scenes

import (
	"errors"
	"fmt"

	"RoomCrawler/config"
	"RoomCrawler/styles"
)

// Theme holds the parsed classes shared by every screen
type Theme struct {
	MenuButton styles.Class[styles.NodeBundle]
	MenuLabel  styles.Class[styles.TextStyle]
	Heart      styles.Class[styles.NodeBundle]
	DebugText  styles.Class[styles.TextStyle]
}

// NewTheme parses the class strings of cfg. All bad entries are reported.
func NewTheme(cfg config.Theme) (Theme, error) {
	var (
		t    Theme
		errs []error
		err  error
	)
	if t.MenuButton, err = styles.ParseNodeClass(cfg.MenuButton); err != nil {
		errs = append(errs, fmt.Errorf("menu_button: %w", err))
	}
	if t.MenuLabel, err = styles.ParseTextClass(cfg.MenuLabel); err != nil {
		errs = append(errs, fmt.Errorf("menu_label: %w", err))
	}
	if t.Heart, err = styles.ParseNodeClass(cfg.Heart); err != nil {
		errs = append(errs, fmt.Errorf("heart: %w", err))
	}
	if t.DebugText, err = styles.ParseTextClass(cfg.DebugText); err != nil {
		errs = append(errs, fmt.Errorf("debug_text: %w", err))
	}
	if err := errors.Join(errs...); err != nil {
		return Theme{}, fmt.Errorf("theme: %w", err)
	}
	return t, nil
}

// MustTheme is NewTheme for trusted class strings
func MustTheme(cfg config.Theme) Theme {
	t, err := NewTheme(cfg)
	if err != nil {
		panic(err)
	}
	return t
}
