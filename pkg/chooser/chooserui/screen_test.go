package chooserui

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
)

func readLine(screen tcell.Screen, y, width int) string {
	var b strings.Builder
	for x := 0; x < width; x++ {
		mainc, combc, _, _ := screen.GetContent(x, y)
		str := ""
		if mainc != 0 {
			str = string(mainc) + string(combc)
		}
		if str == "" {
			b.WriteRune(' ')
			continue
		}
		b.WriteString(str)
	}
	return b.String()
}

func newSimScreen(t *testing.T, width, height int) tcell.Screen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatalf("failed to init simulation screen: %v", err)
	}
	s.SetSize(width, height)
	t.Cleanup(s.Fini)
	return s
}
