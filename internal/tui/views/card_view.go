package views

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// upperHalf paints the top pixel as foreground and the bottom as background
const upperHalf = "▀"

// HalfBlocks draws img with one terminal cell per two vertical pixels
func HalfBlocks(img image.Image) string {
	b := img.Bounds()
	var sb strings.Builder
	for y := b.Min.Y; y < b.Max.Y; y += 2 {
		if y > b.Min.Y {
			sb.WriteByte('\n')
		}
		for x := b.Min.X; x < b.Max.X; x++ {
			top := hex(img.At(x, y))
			bottom := top
			if y+1 < b.Max.Y {
				bottom = hex(img.At(x, y+1))
			}
			sb.WriteString(lipgloss.NewStyle().
				Foreground(lipgloss.Color(top)).
				Background(lipgloss.Color(bottom)).
				Render(upperHalf))
		}
	}
	return sb.String()
}

func hex(c color.Color) string {
	r, g, b, _ := c.RGBA()
	return fmt.Sprintf("#%02x%02x%02x", r>>8, g>>8, b>>8)
}

// Wrap breaks text into lines no wider than width cells, splitting on
// spaces where possible and hard-breaking longer words.
func Wrap(text string, width int) []string {
	if width <= 0 {
		return []string{text}
	}
	var lines []string
	for _, para := range strings.Split(text, "\n") {
		line := ""
		for _, word := range strings.Fields(para) {
			for runewidth.StringWidth(word) > width {
				head := runewidth.Truncate(word, width, "")
				if line != "" {
					lines = append(lines, line)
					line = ""
				}
				lines = append(lines, head)
				word = strings.TrimPrefix(word, head)
			}
			switch {
			case line == "":
				line = word
			case runewidth.StringWidth(line)+1+runewidth.StringWidth(word) <= width:
				line += " " + word
			default:
				lines = append(lines, line)
				line = word
			}
		}
		lines = append(lines, line)
	}
	return lines
}

// CenterText wraps text and centers it in a cols x rows box
func CenterText(text string, cols, rows int) string {
	lines := Wrap(text, cols)
	for i, l := range lines {
		pad := (cols - runewidth.StringWidth(l)) / 2
		if pad > 0 {
			lines[i] = strings.Repeat(" ", pad) + l
		}
	}
	return lipgloss.Place(cols, rows, lipgloss.Left, lipgloss.Center, strings.Join(lines, "\n"))
}
