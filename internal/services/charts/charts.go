// Package charts builds Plotly figure descriptions for the dashboard.
package charts

import (
	"ChainPulse/internal/domain/models"
	"ChainPulse/internal/services/regime"
)

// DefaultWindow is the number of most recent observations plotted.
const DefaultWindow = 30

// Column places a figure in the two-column dashboard grid.
type Column string

const (
	ColumnLeft  Column = "left"
	ColumnRight Column = "right"
	ColumnFull  Column = "full"
)

var bandColors = map[models.Label]string{
	models.Low:     "red",
	models.Neutral: "yellow",
	models.High:    "green",
}

// Figure is a Plotly.js figure plus its dashboard placement.
type Figure struct {
	Metric models.Metric `json:"metric"`
	Column Column        `json:"column"`
	Data   []Trace       `json:"data"`
	Layout Layout        `json:"layout"`
}

type Trace struct {
	Type string    `json:"type"`
	Mode string    `json:"mode"`
	Name string    `json:"name"`
	X    []string  `json:"x"`
	Y    []float64 `json:"y"`
	Line Line      `json:"line"`
}

type Line struct {
	Width int `json:"width"`
}

type Layout struct {
	Title        Title   `json:"title"`
	Height       int     `json:"height"`
	Margin       Margin  `json:"margin"`
	XAxis        Axis    `json:"xaxis"`
	YAxis        Axis    `json:"yaxis"`
	Shapes       []Shape `json:"shapes,omitempty"`
	PlotBGColor  string  `json:"plot_bgcolor"`
	PaperBGColor string  `json:"paper_bgcolor"`
}

type Title struct {
	Text string `json:"text"`
}

type Margin struct {
	L int `json:"l"`
	R int `json:"r"`
	T int `json:"t"`
	B int `json:"b"`
}

type Axis struct {
	Title     Title  `json:"title"`
	GridColor string `json:"gridcolor"`
}

// Shape is a horizontal band spanning the full plot width.
type Shape struct {
	Type      string       `json:"type"`
	XRef      string       `json:"xref"`
	YRef      string       `json:"yref"`
	X0        float64      `json:"x0"`
	X1        float64      `json:"x1"`
	Y0        float64      `json:"y0"`
	Y1        float64      `json:"y1"`
	FillColor string       `json:"fillcolor"`
	Opacity   float64      `json:"opacity"`
	Layer     string       `json:"layer"`
	Line      Line         `json:"line"`
	Label     models.Label `json:"-"`
}

// layout order: row by row, left column first.
var placement = []struct {
	metric models.Metric
	column Column
}{
	{models.NUPL, ColumnLeft},
	{models.MVRVLTH, ColumnRight},
	{models.MVRVSTH, ColumnLeft},
	{models.SOPRSTH, ColumnRight},
	{models.RealizedCap, ColumnFull},
}

// Build returns one figure per tracked metric, shaded by its bands, and an
// unshaded realized cap figure in billions. window <= 0 means DefaultWindow.
func Build(series models.Series, tables regime.Tables, window int) []Figure {
	if window <= 0 {
		window = DefaultWindow
	}
	tail := series.Tail(window)

	figs := make([]Figure, 0, len(placement))
	for _, p := range placement {
		var shapes []Shape
		scale := 1.0
		if p.metric == models.RealizedCap {
			scale = 1e9
		} else if tbl, ok := tables[p.metric]; ok {
			shapes = bandShapes(tbl)
		}
		figs = append(figs, newFigure(p.metric, p.column, tail, scale, shapes))
	}
	return figs
}

func newFigure(m models.Metric, col Column, rows models.Series, scale float64, shapes []Shape) Figure {
	x := make([]string, len(rows))
	y := make([]float64, len(rows))
	for i, obs := range rows {
		x[i] = obs.Date
		y[i] = obs.Value(m) / scale
	}

	return Figure{
		Metric: m,
		Column: col,
		Data: []Trace{{
			Type: "scatter",
			Mode: "lines+markers",
			Name: string(m),
			X:    x,
			Y:    y,
			Line: Line{Width: 2},
		}},
		Layout: Layout{
			Title:        Title{Text: m.ChartTitle()},
			Height:       300,
			Margin:       Margin{L: 0, R: 0, T: 30, B: 0},
			XAxis:        Axis{Title: Title{Text: "Date"}, GridColor: "#EBF0F8"},
			YAxis:        Axis{Title: Title{Text: "Value"}, GridColor: "#EBF0F8"},
			Shapes:       shapes,
			PlotBGColor:  "white",
			PaperBGColor: "white",
		},
	}
}

func bandShapes(tbl regime.ThresholdTable) []Shape {
	bands := tbl.Bands()
	shapes := make([]Shape, 0, len(bands))
	for _, b := range bands {
		shapes = append(shapes, Shape{
			Type:      "rect",
			XRef:      "paper",
			YRef:      "y",
			X0:        0,
			X1:        1,
			Y0:        b.Min,
			Y1:        b.Max,
			FillColor: bandColors[b.Label],
			Opacity:   0.1,
			Layer:     "below",
			Line:      Line{Width: 0},
			Label:     b.Label,
		})
	}
	return shapes
}
