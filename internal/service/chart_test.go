package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/esquireinternationalfinancing-code/Sxa-Exchange/internal/models"
)

func TestBuildChartGeometry_Canvas(t *testing.T) {
	geom := BuildChartGeometry(nil)

	assert.Equal(t, 600.0, geom.Width)
	assert.Equal(t, 250.0, geom.Height)
	assert.Equal(t, 520.0, geom.InnerWidth)
	assert.Equal(t, 190.0, geom.InnerHeight)
	assert.Equal(t, models.ChartMargin{Top: 20, Right: 20, Bottom: 40, Left: 60}, geom.Margin)
}

func TestBuildChartGeometry_ScalesPoints(t *testing.T) {
	points := []models.HistoricalPoint{
		{Date: "2024-01-01", Rate: 1.0},
		{Date: "2024-01-02", Rate: 2.0},
		{Date: "2024-01-03", Rate: 1.5},
	}

	geom := BuildChartGeometry(points)

	assert.Equal(t, 1.0, geom.MinRate)
	assert.Equal(t, 2.0, geom.MaxRate)

	// минимум внизу области, максимум вверху, середина посередине
	assert.Len(t, geom.Points, 3)
	assert.Equal(t, models.ChartPoint{X: 0, Y: 190}, geom.Points[0])
	assert.Equal(t, models.ChartPoint{X: 260, Y: 0}, geom.Points[1])
	assert.Equal(t, models.ChartPoint{X: 520, Y: 95}, geom.Points[2])

	assert.Equal(t, "M 0 190 L 260 0 L 520 95", geom.Path)
}

func TestBuildChartGeometry_FlatSeries(t *testing.T) {
	points := []models.HistoricalPoint{
		{Date: "2024-01-01", Rate: 1.0},
		{Date: "2024-01-02", Rate: 1.0},
	}

	geom := BuildChartGeometry(points)

	// плоская серия: обе точки в вертикальной середине, без деления на ноль
	assert.Equal(t, 95.0, geom.Points[0].Y)
	assert.Equal(t, 95.0, geom.Points[1].Y)
	assert.Equal(t, "M 0 95 L 520 95", geom.Path)
}

func TestBuildChartGeometry_TooFewPoints(t *testing.T) {
	for _, points := range [][]models.HistoricalPoint{
		nil,
		{},
		{{Date: "2024-01-01", Rate: 1.0}},
	} {
		geom := BuildChartGeometry(points)

		assert.Empty(t, geom.Path)
		assert.Empty(t, geom.Points)
		assert.Empty(t, geom.GridLines)
		assert.Empty(t, geom.YAxisLabels)
		assert.Empty(t, geom.XAxisLabels)
	}
}

func TestBuildChartGeometry_GridAndYAxisLabels(t *testing.T) {
	points := []models.HistoricalPoint{
		{Date: "2024-01-01", Rate: 1.0},
		{Date: "2024-01-02", Rate: 2.0},
	}

	geom := BuildChartGeometry(points)

	assert.Equal(t, []float64{0, 47.5, 95, 142.5, 190}, geom.GridLines)

	assert.Len(t, geom.YAxisLabels, 5)
	expected := []string{"2.0000", "1.7500", "1.5000", "1.2500", "1.0000"}
	for i, label := range geom.YAxisLabels {
		assert.Equal(t, expected[i], label.Label)
		assert.Equal(t, geom.GridLines[i], label.Y)
	}
}

func TestBuildChartGeometry_XAxisLabels(t *testing.T) {
	points := []models.HistoricalPoint{
		{Date: "2024-01-01", Rate: 1.0},
		{Date: "2024-01-15", Rate: 1.2},
		{Date: "2024-02-09", Rate: 1.1},
	}

	geom := BuildChartGeometry(points)

	assert.Len(t, geom.XAxisLabels, 2)
	assert.Equal(t, models.AxisLabel{X: 0, Label: "Jan 1"}, geom.XAxisLabels[0])
	assert.Equal(t, models.AxisLabel{X: 520, Label: "Feb 9"}, geom.XAxisLabels[1])
}
