package export

import (
	"fmt"
	"html/template"
	"math"
	"strings"

	"github.com/diillson/cpm-dashboard-go/pkg/money"
)

const (
	chartWidth   = 720
	chartHeight  = 260
	chartPadding = 44.0
	chartTicks   = 4
)

// areaChart desenha a série como um gráfico de área SVG com eixo Y na moeda da visão.
func areaChart(title string, series []float64, labels []string, code string) (template.HTML, error) {
	if len(series) == 0 {
		return "", fmt.Errorf("chart: series required")
	}
	if len(series) != len(labels) {
		return "", fmt.Errorf("chart: labels length must match series")
	}

	plotWidth := float64(chartWidth) - 2*chartPadding
	plotHeight := float64(chartHeight) - 2*chartPadding

	_, maxVal := bounds(series)
	minVal := 0.0
	if almostEqual(maxVal, minVal) {
		maxVal = minVal + 1
	}
	scale := plotHeight / (maxVal - minVal)

	step := 0.0
	if len(series) > 1 {
		step = plotWidth / float64(len(series)-1)
	}
	xAt := func(i int) float64 {
		if len(series) == 1 {
			return chartPadding + plotWidth/2
		}
		return chartPadding + float64(i)*step
	}

	var path strings.Builder
	for i, value := range series {
		y := chartPadding + plotHeight - (value-minVal)*scale
		if i == 0 {
			path.WriteString(fmt.Sprintf("M%.2f %.2f", xAt(i), y))
		} else {
			path.WriteString(fmt.Sprintf(" L%.2f %.2f", xAt(i), y))
		}
	}

	titleID := makeID(title, "chart-title")
	gradientID := makeID(title, "chart-fill")
	base := chartPadding + plotHeight

	var b strings.Builder
	b.WriteString(fmt.Sprintf("<svg xmlns=\"http://www.w3.org/2000/svg\" viewBox=\"0 0 %d %d\" role=\"img\" aria-labelledby=\"%s\">", chartWidth, chartHeight, titleID))
	b.WriteString(fmt.Sprintf("<title id=\"%s\">%s</title>", titleID, template.HTMLEscapeString(title)))
	b.WriteString(fmt.Sprintf("<defs><linearGradient id=\"%s\" x1=\"0\" y1=\"0\" x2=\"0\" y2=\"1\"><stop offset=\"5%%\" stop-color=\"#6366f1\" stop-opacity=\"0.35\"/><stop offset=\"95%%\" stop-color=\"#6366f1\" stop-opacity=\"0\"/></linearGradient></defs>", gradientID))

	for i := 0; i <= chartTicks; i++ {
		ratio := float64(i) / float64(chartTicks)
		y := base - ratio*plotHeight
		value := minVal + (maxVal-minVal)*ratio
		b.WriteString(fmt.Sprintf("<line x1=\"%.2f\" y1=\"%.2f\" x2=\"%.2f\" y2=\"%.2f\" stroke=\"#e5e7eb\" stroke-dasharray=\"3,3\"></line>", chartPadding, y, chartPadding+plotWidth, y))
		b.WriteString(fmt.Sprintf("<text x=\"%.2f\" y=\"%.2f\" fill=\"#475569\" font-size=\"10\" text-anchor=\"end\">%s</text>", chartPadding-6, y+4, template.HTMLEscapeString(money.AxisTick(value, code))))
	}

	b.WriteString(fmt.Sprintf("<path d=\"%s L%.2f %.2f L%.2f %.2f Z\" fill=\"url(#%s)\" stroke=\"none\"></path>", path.String(), xAt(len(series)-1), base, xAt(0), base, gradientID))
	b.WriteString(fmt.Sprintf("<path d=\"%s\" fill=\"none\" stroke=\"#6366f1\" stroke-width=\"2\" stroke-linejoin=\"round\"></path>", path.String()))

	for i, label := range labels {
		b.WriteString(fmt.Sprintf("<text x=\"%.2f\" y=\"%.2f\" fill=\"#475569\" font-size=\"10\" text-anchor=\"middle\">%s</text>", xAt(i), base+14, template.HTMLEscapeString(label)))
	}

	b.WriteString("</svg>")
	return template.HTML(b.String()), nil
}

func bounds(series []float64) (float64, float64) {
	minVal := series[0]
	maxVal := series[0]
	for _, v := range series[1:] {
		if v < minVal {
			minVal = v
		}
		if v > maxVal {
			maxVal = v
		}
	}
	return minVal, maxVal
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func makeID(base, suffix string) string {
	cleaned := strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-' || r == '_' {
			return r
		}
		return '-'
	}, strings.ToLower(strings.TrimSpace(base)))
	cleaned = strings.Trim(cleaned, "-")
	if cleaned == "" {
		cleaned = "cpm"
	}
	return fmt.Sprintf("%s-%s", cleaned, suffix)
}
