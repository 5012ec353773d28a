package reporter

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/acarl005/stripansi"
	"github.com/fatih/color"
)

// symbolOK is the glyph of a passing test
const symbolOK = "✓"

// defaultTheme maps every semantic color tag to its terminal attributes.
var defaultTheme = map[ColorTag][]color.Attribute{
	ColorSuccess:    {color.FgGreen},
	ColorMuted:      {color.FgCyan},
	ColorFailure:    {color.FgRed},
	ColorBroken:     {color.FgYellow},
	ColorUnresolved: {color.FgMagenta},
	ColorException:  {color.FgHiRed, color.Bold},
	ColorTitle:      {color.Bold},
}

// ConsolePrinter writes lines to an io.Writer, colored with fatih/color
type ConsolePrinter struct {
	out       io.Writer
	useColors bool
	colors    map[ColorTag]*color.Color
	mu        sync.Mutex
}

// NewConsolePrinter creates a printer that writes every line directly to out.
// A nil out writes to stdout.
func NewConsolePrinter(out io.Writer, useColors bool) *ConsolePrinter {
	if out == nil {
		out = os.Stdout
	}
	return &ConsolePrinter{
		out:       out,
		useColors: useColors,
		colors:    buildColors(useColors),
	}
}

func buildColors(useColors bool) map[ColorTag]*color.Color {
	colors := make(map[ColorTag]*color.Color, len(defaultTheme))
	for tag, attrs := range defaultTheme {
		c := color.New(attrs...)
		if useColors {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
		colors[tag] = c
	}
	return colors
}

// Println writes one line. Without colors any ANSI sequence already embedded
// in the line is stripped.
func (p *ConsolePrinter) Println(line string) {
	if !p.useColors {
		line = stripansi.Strip(line)
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	fmt.Fprintln(p.out, line)
}

// Colorize wraps text in the color of tag. Unknown tags return text as is.
func (p *ConsolePrinter) Colorize(tag ColorTag, text string) string {
	c, ok := p.colors[tag]
	if !ok {
		return text
	}
	return c.Sprint(text)
}

// OKSymbol returns the glyph of a passing test.
func (p *ConsolePrinter) OKSymbol() string {
	return symbolOK
}
