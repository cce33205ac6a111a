package models

// ChartMargin отступы области построения от краев холста
type ChartMargin struct {
	Top    float64 `json:"top"`
	Right  float64 `json:"right"`
	Bottom float64 `json:"bottom"`
	Left   float64 `json:"left"`
}

// ChartPoint точка линии в координатах области построения
type ChartPoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// AxisLabel подпись оси: позиция в области построения и текст
type AxisLabel struct {
	X     float64 `json:"x,omitempty"`
	Y     float64 `json:"y,omitempty"`
	Label string  `json:"label"`
}

// ChartGeometry готовая геометрия SVG-графика. Координаты точек, сетки и
// подписей заданы относительно области построения (холст минус отступы).
type ChartGeometry struct {
	Width       float64      `json:"width"`
	Height      float64      `json:"height"`
	Margin      ChartMargin  `json:"margin"`
	InnerWidth  float64      `json:"inner_width"`
	InnerHeight float64      `json:"inner_height"`
	MinRate     float64      `json:"min_rate"`
	MaxRate     float64      `json:"max_rate"`
	Points      []ChartPoint `json:"points"`
	Path        string       `json:"path"`
	GridLines   []float64    `json:"grid_lines"`
	YAxisLabels []AxisLabel  `json:"y_axis_labels"`
	XAxisLabels []AxisLabel  `json:"x_axis_labels"`
}
