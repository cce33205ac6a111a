package service

import (
	"strconv"
	"strings"

	"github.com/esquireinternationalfinancing-code/Sxa-Exchange/internal/models"
)

// Размеры холста графика фиксированы, фронтенд масштабирует SVG через viewBox
const (
	chartWidth  = 600.0
	chartHeight = 250.0

	chartMarginTop    = 20.0
	chartMarginRight  = 20.0
	chartMarginBottom = 40.0
	chartMarginLeft   = 60.0

	chartGridLines = 5
)

// BuildChartGeometry строит геометрию линейного графика по отсортированной
// серии точек. Меньше двух точек дают пустой график без линии и подписей.
func BuildChartGeometry(points []models.HistoricalPoint) models.ChartGeometry {
	innerWidth := chartWidth - chartMarginLeft - chartMarginRight
	innerHeight := chartHeight - chartMarginTop - chartMarginBottom

	geom := models.ChartGeometry{
		Width:  chartWidth,
		Height: chartHeight,
		Margin: models.ChartMargin{
			Top:    chartMarginTop,
			Right:  chartMarginRight,
			Bottom: chartMarginBottom,
			Left:   chartMarginLeft,
		},
		InnerWidth:  innerWidth,
		InnerHeight: innerHeight,
	}

	if len(points) < 2 {
		return geom
	}

	minRate := points[0].Rate
	maxRate := points[0].Rate
	for _, p := range points[1:] {
		if p.Rate < minRate {
			minRate = p.Rate
		}
		if p.Rate > maxRate {
			maxRate = p.Rate
		}
	}
	rateRange := maxRate - minRate

	// Плоская серия отображается в вертикальную середину, деления на ноль нет
	yScale := func(rate float64) float64 {
		if rateRange == 0 {
			return innerHeight / 2
		}
		return innerHeight - ((rate-minRate)/rateRange)*innerHeight
	}
	xScale := func(index int) float64 {
		return float64(index) / float64(len(points)-1) * innerWidth
	}

	geom.MinRate = minRate
	geom.MaxRate = maxRate

	geom.Points = make([]models.ChartPoint, len(points))
	var path strings.Builder
	for i, p := range points {
		x := xScale(i)
		y := yScale(p.Rate)
		geom.Points[i] = models.ChartPoint{X: x, Y: y}

		if i == 0 {
			path.WriteString("M ")
		} else {
			path.WriteString(" L ")
		}
		path.WriteString(formatCoord(x))
		path.WriteString(" ")
		path.WriteString(formatCoord(y))
	}
	geom.Path = path.String()

	geom.GridLines = make([]float64, chartGridLines)
	geom.YAxisLabels = make([]models.AxisLabel, chartGridLines)
	for i := 0; i < chartGridLines; i++ {
		y := float64(i) / float64(chartGridLines-1) * innerHeight
		rate := maxRate - float64(i)/float64(chartGridLines-1)*rateRange

		geom.GridLines[i] = y
		geom.YAxisLabels[i] = models.AxisLabel{
			Y:     y,
			Label: strconv.FormatFloat(rate, 'f', 4, 64),
		}
	}

	geom.XAxisLabels = []models.AxisLabel{
		{X: xScale(0), Label: dateLabel(points[0])},
		{X: xScale(len(points) - 1), Label: dateLabel(points[len(points)-1])},
	}

	return geom
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// dateLabel подпись даты в коротком виде, например "Jan 2"
func dateLabel(p models.HistoricalPoint) string {
	t, err := p.Time()
	if err != nil {
		return p.Date
	}
	return t.Format("Jan 2")
}
