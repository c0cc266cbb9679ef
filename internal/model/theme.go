package model

// Theme is the display palette derived from the persisted dark flag.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// ThemeOf maps the dark flag to a Theme.
func ThemeOf(dark bool) Theme {
	if dark {
		return ThemeDark
	}
	return ThemeLight
}
