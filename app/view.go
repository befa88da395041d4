package app

import (
	"strconv"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/counter/constant"
	"github.com/lixenwraith/counter/render"
)

var (
	borderStyle = tcell.StyleDefault
	plainStyle  = tcell.StyleDefault
	keyStyle    = tcell.StyleDefault.Foreground(tcell.ColorBlue).Bold(true)
	valueStyle  = tcell.StyleDefault.Foreground(tcell.ColorYellow)
)

// legend is static, built once
var legend = render.Line{
	{Text: " " + constant.LegendDecrement + " ", Style: plainStyle},
	{Text: constant.KeyLabelDecrement, Style: keyStyle},
	{Text: " " + constant.LegendIncrement + " ", Style: plainStyle},
	{Text: constant.KeyLabelIncrement, Style: keyStyle},
	{Text: " " + constant.LegendQuit + " ", Style: plainStyle},
	{Text: constant.KeyLabelQuit + " ", Style: keyStyle},
}

// Render draws the counter card into f without touching state
func (a *App) Render(f render.Region) {
	body := f.Card(" "+constant.CounterTitle+" ", render.LineThick, borderStyle)

	f.Sub(0, f.H-1, f.W, 1).CenterLine(0, legend)

	value := render.Line{
		{Text: constant.CounterPrefix, Style: plainStyle},
		{Text: strconv.FormatInt(a.counter, 10), Style: valueStyle},
	}
	body.CenterLine((body.H-1)/2, value)
}
