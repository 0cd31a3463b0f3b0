package chooserui

import (
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/datatug/filechooser/pkg/files"
)

var fileColors = map[string]tcell.Color{
	"go":   tcell.ColorAqua,
	"c":    tcell.ColorDodgerBlue,
	"h":    tcell.ColorDodgerBlue,
	"js":   tcell.ColorYellow,
	"ts":   tcell.ColorDeepSkyBlue,
	"html": tcell.ColorOrangeRed,
	"css":  tcell.ColorViolet,
	"json": tcell.ColorGold,
	"xml":  tcell.ColorLightYellow,
	"yaml": tcell.ColorLightYellow,
	"yml":  tcell.ColorLightYellow,
	"md":   tcell.ColorBisque,
	"py":   tcell.ColorLightGreen,
	"sh":   tcell.ColorGreen,
	"txt":  tcell.ColorWhite,
	"csv":  tcell.ColorLightGreen,
	"log":  tcell.ColorRosyBrown,
	"jpg":  tcell.ColorMediumPurple,
	"jpeg": tcell.ColorMediumPurple,
	"png":  tcell.ColorMediumPurple,
	"gif":  tcell.ColorMediumPurple,
	"mp3":  tcell.ColorLightSalmon,
	"mp4":  tcell.ColorLightSalmon,
	"pdf":  tcell.ColorIndianRed,
	"zip":  tcell.ColorSandyBrown,
	"apk":  tcell.ColorYellowGreen,
}

var lightFileColors = map[string]tcell.Color{
	"go":   tcell.ColorDarkCyan,
	"c":    tcell.ColorMediumBlue,
	"h":    tcell.ColorMediumBlue,
	"js":   tcell.ColorDarkGoldenrod,
	"ts":   tcell.ColorSteelBlue,
	"html": tcell.ColorOrangeRed,
	"css":  tcell.ColorDarkViolet,
	"json": tcell.ColorDarkGoldenrod,
	"md":   tcell.ColorSaddleBrown,
	"py":   tcell.ColorDarkGreen,
	"sh":   tcell.ColorGreen,
	"csv":  tcell.ColorDarkGreen,
	"log":  tcell.ColorBrown,
	"jpg":  tcell.ColorRebeccaPurple,
	"jpeg": tcell.ColorRebeccaPurple,
	"png":  tcell.ColorRebeccaPurple,
	"gif":  tcell.ColorRebeccaPurple,
	"mp3":  tcell.ColorChocolate,
	"mp4":  tcell.ColorChocolate,
	"pdf":  tcell.ColorFireBrick,
	"zip":  tcell.ColorSienna,
	"apk":  tcell.ColorOliveDrab,
}

const (
	folderColor = tcell.ColorLightSkyBlue
	upColor     = tcell.ColorGray
	fileColor   = tcell.ColorWhiteSmoke
)

// colorByFileName ignores the extension's case, unlike the extension filter.
func colorByFileName(name string) tcell.Color {
	if color, ok := current.byExt[strings.ToLower(files.Extension(name))]; ok {
		return color
	}
	return current.file
}
