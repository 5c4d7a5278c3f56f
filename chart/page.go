package chart

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// Page renders charts into a single HTML page with go-echarts.
// Charts appear in the order they are drawn.
type Page struct {
	page  *components.Page
	drawn map[string]bool
}

// NewPage returns an empty page with the given title
func NewPage(title string) *Page {
	p := components.NewPage()
	p.PageTitle = title

	return &Page{
		page:  p,
		drawn: map[string]bool{},
	}
}

// Targets returns one drawing target on this page per chart ID
func (p *Page) Targets() Targets {
	targets := Targets{}
	for _, id := range IDs {
		targets[id] = pageCanvas{page: p, id: id}
	}
	return targets
}

// Render writes the HTML page to w
func (p *Page) Render(w io.Writer) error {
	return p.page.Render(w)
}

type pageCanvas struct {
	page *Page
	id   string
}

func (c pageCanvas) Draw(def Definition) error {
	if def.ID != c.id {
		return fmt.Errorf("%w: %s on %s", ErrTargetMismatch, def.ID, c.id)
	}

	if c.page.drawn[c.id] {
		return fmt.Errorf("chart %s already drawn", c.id)
	}

	chart, err := newChart(def)
	if err != nil {
		return err
	}

	c.page.page.AddCharts(chart)
	c.page.drawn[c.id] = true
	return nil
}

func newChart(def Definition) (components.Charter, error) {
	global := []charts.GlobalOpts{
		charts.WithInitializationOpts(opts.Initialization{ChartID: def.ID}),
		charts.WithTitleOpts(opts.Title{Title: def.Dataset.Label}),
	}

	switch def.Kind {
	case KindLine:
		data := make([]opts.LineData, 0, len(def.Dataset.Data))
		for _, v := range def.Dataset.Data {
			data = append(data, opts.LineData{Value: v})
		}

		line := charts.NewLine()
		line.SetGlobalOptions(append(global, charts.WithYAxisOpts(opts.YAxis{Name: def.YAxisLabel}))...)
		line.SetXAxis(def.Labels).
			AddSeries(def.Dataset.Label, data,
				charts.WithLineStyleOpts(opts.LineStyle{
					Color: def.Dataset.Color(0),
					Width: float32(def.Dataset.BorderWidth),
				}),
				charts.WithItemStyleOpts(opts.ItemStyle{Color: def.Dataset.Color(0)}),
			)
		return line, nil

	case KindBar:
		data := make([]opts.BarData, 0, len(def.Dataset.Data))
		for i, v := range def.Dataset.Data {
			data = append(data, opts.BarData{
				Value: v,
				ItemStyle: &opts.ItemStyle{
					Color:       def.Dataset.Color(i),
					BorderColor: def.Dataset.Color(i),
				},
			})
		}

		bar := charts.NewBar()
		bar.SetGlobalOptions(append(global, charts.WithYAxisOpts(opts.YAxis{Name: def.YAxisLabel}))...)
		bar.SetXAxis(def.Labels).AddSeries(def.Dataset.Label, data)
		return bar, nil

	case KindDoughnut:
		data := make([]opts.PieData, 0, len(def.Dataset.Data))
		for i, v := range def.Dataset.Data {
			name := ""
			if i < len(def.Labels) {
				name = def.Labels[i]
			}
			data = append(data, opts.PieData{
				Name:      name,
				Value:     v,
				ItemStyle: &opts.ItemStyle{Color: def.Dataset.Color(i)},
			})
		}

		pie := charts.NewPie()
		pie.SetGlobalOptions(global...)
		pie.AddSeries(def.Dataset.Label, data,
			charts.WithPieChartOpts(opts.PieChart{Radius: []string{"50%", "75%"}}),
		)
		return pie, nil
	}

	return nil, fmt.Errorf("unsupported chart type %q", def.Kind)
}
