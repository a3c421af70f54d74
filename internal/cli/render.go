package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/cubelab/cubesim"
)

// stickerStyles maps each cube color to a styled two-character cell.
var stickerStyles = map[cubesim.Color]lipgloss.Style{
	cubesim.White:  lipgloss.NewStyle().Background(lipgloss.Color("255")).Foreground(lipgloss.Color("0")),
	cubesim.Yellow: lipgloss.NewStyle().Background(lipgloss.Color("226")).Foreground(lipgloss.Color("0")),
	cubesim.Green:  lipgloss.NewStyle().Background(lipgloss.Color("34")).Foreground(lipgloss.Color("0")),
	cubesim.Blue:   lipgloss.NewStyle().Background(lipgloss.Color("27")).Foreground(lipgloss.Color("255")),
	cubesim.Red:    lipgloss.NewStyle().Background(lipgloss.Color("196")).Foreground(lipgloss.Color("255")),
	cubesim.Orange: lipgloss.NewStyle().Background(lipgloss.Color("208")).Foreground(lipgloss.Color("0")),
}

func renderSticker(c cubesim.Color) string {
	style, ok := stickerStyles[c]
	if !ok {
		return "??"
	}
	return style.Render("  ")
}

func renderRow(face [9]cubesim.Color, row int) string {
	var b strings.Builder
	for col := 0; col < 3; col++ {
		b.WriteString(renderSticker(face[row*3+col]))
	}
	return b.String()
}

// renderNet draws the six faces as a colored cross: U on top, then
// L F R B in a band, then D.
func renderNet(facelets [6][9]cubesim.Color) string {
	u := facelets[cubesim.CubeFaceU]
	d := facelets[cubesim.CubeFaceD]
	f := facelets[cubesim.CubeFaceF]
	b := facelets[cubesim.CubeFaceB]
	r := facelets[cubesim.CubeFaceR]
	l := facelets[cubesim.CubeFaceL]

	pad := strings.Repeat(" ", 6)

	var out strings.Builder
	for row := 0; row < 3; row++ {
		out.WriteString(pad)
		out.WriteString(renderRow(u, row))
		out.WriteString("\n")
	}
	for row := 0; row < 3; row++ {
		out.WriteString(renderRow(l, row))
		out.WriteString(renderRow(f, row))
		out.WriteString(renderRow(r, row))
		out.WriteString(renderRow(b, row))
		out.WriteString("\n")
	}
	for row := 0; row < 3; row++ {
		out.WriteString(pad)
		out.WriteString(renderRow(d, row))
		out.WriteString("\n")
	}
	return out.String()
}
