package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/SeamusWaldron/cubesim"
)

// stickerStyles maps sticker colors to terminal cell styles.
var stickerStyles = map[cubesim.Color]lipgloss.Style{
	cubesim.White:  lipgloss.NewStyle().Background(lipgloss.Color("255")).Foreground(lipgloss.Color("240")),
	cubesim.Yellow: lipgloss.NewStyle().Background(lipgloss.Color("226")).Foreground(lipgloss.Color("240")),
	cubesim.Green:  lipgloss.NewStyle().Background(lipgloss.Color("40")).Foreground(lipgloss.Color("240")),
	cubesim.Blue:   lipgloss.NewStyle().Background(lipgloss.Color("27")).Foreground(lipgloss.Color("255")),
	cubesim.Red:    lipgloss.NewStyle().Background(lipgloss.Color("196")).Foreground(lipgloss.Color("255")),
	cubesim.Orange: lipgloss.NewStyle().Background(lipgloss.Color("208")).Foreground(lipgloss.Color("240")),
}

func stickerCell(c cubesim.Color) string {
	style, ok := stickerStyles[c]
	if !ok {
		return "  "
	}
	return style.Render("  ")
}

// renderNet draws the facelet snapshot as a colored cube net:
//
//	    U
//	L F R B
//	    D
func renderNet(fl cubesim.Facelets) string {
	var b strings.Builder
	indent := strings.Repeat(" ", 6)

	for row := 0; row < 3; row++ {
		b.WriteString(indent)
		for col := 0; col < 3; col++ {
			b.WriteString(stickerCell(fl.Faces[cubesim.NetU][row*3+col]))
		}
		b.WriteString("\n")
	}

	for row := 0; row < 3; row++ {
		for _, face := range []cubesim.NetFace{cubesim.NetL, cubesim.NetF, cubesim.NetR, cubesim.NetB} {
			for col := 0; col < 3; col++ {
				b.WriteString(stickerCell(fl.Faces[face][row*3+col]))
			}
		}
		b.WriteString("\n")
	}

	for row := 0; row < 3; row++ {
		b.WriteString(indent)
		for col := 0; col < 3; col++ {
			b.WriteString(stickerCell(fl.Faces[cubesim.NetD][row*3+col]))
		}
		b.WriteString("\n")
	}

	return b.String()
}
