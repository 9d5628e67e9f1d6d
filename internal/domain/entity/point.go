package entity

// Point is one sample of the synthetic cost-per-minute series.
type Point struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// Values extracts the numeric values of a series in order.
func Values(points []Point) []float64 {
	out := make([]float64, len(points))
	for i, p := range points {
		out[i] = p.Value
	}
	return out
}

// Labels extracts the bucket labels of a series in order.
func Labels(points []Point) []string {
	out := make([]string, len(points))
	for i, p := range points {
		out[i] = p.Label
	}
	return out
}
