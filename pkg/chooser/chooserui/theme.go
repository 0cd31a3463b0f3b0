package chooserui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// Theme selects the color scheme of the picker.
type Theme int

const (
	DarkTheme Theme = iota
	LightTheme
)

func (t Theme) String() string {
	switch t {
	case DarkTheme:
		return "dark"
	case LightTheme:
		return "light"
	default:
		return fmt.Sprintf("Theme(%d)", int(t))
	}
}

// ParseTheme accepts dark (or night) and light (or day).
func ParseTheme(s string) (Theme, error) {
	switch s {
	case "", "dark", "night":
		return DarkTheme, nil
	case "light", "day":
		return LightTheme, nil
	default:
		return DarkTheme, fmt.Errorf("unknown theme %q, expected dark or light", s)
	}
}

type palette struct {
	styles tview.Theme

	folder tcell.Color
	up     tcell.Color
	file   tcell.Color
	hotkey tcell.Color
	err    tcell.Color

	// byExt overrides file by lower-cased extension.
	byExt map[string]tcell.Color
}

var palettes = map[Theme]palette{
	DarkTheme: {
		styles: tview.Styles,
		folder: folderColor,
		up:     upColor,
		file:   fileColor,
		hotkey: tcell.ColorYellow,
		err:    tcell.ColorRed,
		byExt:  fileColors,
	},
	LightTheme: {
		styles: tview.Theme{
			PrimitiveBackgroundColor:    tcell.ColorWhite,
			ContrastBackgroundColor:     tcell.ColorLightGray,
			MoreContrastBackgroundColor: tcell.ColorSilver,
			BorderColor:                 tcell.ColorBlack,
			TitleColor:                  tcell.ColorBlack,
			GraphicsColor:               tcell.ColorBlack,
			PrimaryTextColor:            tcell.ColorBlack,
			SecondaryTextColor:          tcell.ColorNavy,
			TertiaryTextColor:           tcell.ColorDarkGreen,
			InverseTextColor:            tcell.ColorBlue,
			ContrastSecondaryTextColor:  tcell.ColorDarkBlue,
		},
		folder: tcell.ColorNavy,
		up:     tcell.ColorDimGray,
		file:   tcell.ColorBlack,
		hotkey: tcell.ColorDarkBlue,
		err:    tcell.ColorDarkRed,
		byExt:  lightFileColors,
	},
}

var current = palettes[DarkTheme]

// ApplyTheme sets tview.Styles and the entry colors.
// Widgets take their colors when they are created, so call it before NewPicker.
func ApplyTheme(t Theme) {
	p, ok := palettes[t]
	if !ok {
		p = palettes[DarkTheme]
	}
	current = p
	tview.Styles = p.styles
}

func hotkey(key string) string {
	return fmt.Sprintf("[#%06x]%s[-]", current.hotkey.Hex(), key)
}
