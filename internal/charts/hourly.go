package charts

import (
	"fmt"
	"math"
	"strings"

	"aquacast/internal/models"
)

// Chart layout constants. The plot area is the viewport minus these
// margins; the left margin holds the y-axis labels, the bottom margin
// the hour labels.
const (
	marginLeft   = 46.0
	marginRight  = 16.0
	marginTop    = 22.0
	marginBottom = 30.0
	yTickCount   = 6
	yTickStep    = 5.0 // tick ceiling rounds up to the nearest 5
)

// Fixed peak-hour windows highlighted on every hourly chart, and the
// two annotated marker hours inside them.
var peakBands = [2][2]int{{6, 9}, {17, 20}}
var peakMarkers = [2]int{7, 18}

// RenderHourly composes the 24-point intraday demand curve into a
// layered SVG drawing: axis lines, y ticks, dashed gridlines, shaded
// peak bands, smoothed area fill and stroke, annotated peak markers and
// sparse hour labels. Output is bit-for-bit reproducible for identical
// input and dimensions.
func RenderHourly(points []models.HourlyPoint, width, height int, lineColor string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "<svg xmlns=\"http://www.w3.org/2000/svg\" viewBox=\"0 0 %d %d\" width=\"%d\" height=\"%d\">\n",
		width, height, width, height)

	plotW := float64(width) - marginLeft - marginRight
	plotH := float64(height) - marginTop - marginBottom
	bottom := marginTop + plotH

	if len(points) == 0 {
		b.WriteString("</svg>\n")
		return b.String()
	}

	minVal, maxVal := points[0].Value, points[0].Value
	for _, p := range points {
		minVal = math.Min(minVal, p.Value)
		maxVal = math.Max(maxVal, p.Value)
	}

	// Y domain [min*0.8, max] keeps low-variance curves from rendering
	// as a near-flat line.
	yMin := minVal * 0.8
	ySpan := maxVal - yMin
	if ySpan <= 0 {
		ySpan = 1
	}

	lastHour := points[len(points)-1].Hour
	if lastHour == 0 {
		lastHour = 1
	}
	xFor := func(hour int) float64 {
		return marginLeft + float64(hour)/float64(lastHour)*plotW
	}
	yFor := func(value float64) float64 {
		return bottom - (value-yMin)/ySpan*plotH
	}

	// Peak bands sit under everything else.
	for _, band := range peakBands {
		x0 := xFor(band[0])
		x1 := xFor(band[1])
		fmt.Fprintf(&b, "<rect x=\"%.2f\" y=\"%.2f\" width=\"%.2f\" height=\"%.2f\" fill=\"#F1F5F9\"/>\n",
			x0, marginTop, x1-x0, plotH)
	}

	// Dashed gridlines at quarter heights of the plot.
	for _, frac := range []float64{0.25, 0.5, 0.75} {
		y := marginTop + plotH*frac
		fmt.Fprintf(&b, "<line x1=\"%.2f\" y1=\"%.2f\" x2=\"%.2f\" y2=\"%.2f\" stroke=\"#E2E8F0\" stroke-dasharray=\"4 4\"/>\n",
			marginLeft, y, marginLeft+plotW, y)
	}

	// Y-axis tick labels: six values evenly spaced up to the data
	// maximum rounded to the nearest 5 above.
	tickTop := math.Ceil(maxVal/yTickStep) * yTickStep
	if tickTop <= 0 {
		tickTop = yTickStep
	}
	for i := 0; i < yTickCount; i++ {
		value := tickTop * float64(i) / float64(yTickCount-1)
		y := bottom - plotH*float64(i)/float64(yTickCount-1)
		fmt.Fprintf(&b, "<text x=\"%.2f\" y=\"%.2f\" text-anchor=\"end\" font-size=\"10\" fill=\"#64748B\">%.0f</text>\n",
			marginLeft-6, y+3, value)
	}

	// Axis lines.
	fmt.Fprintf(&b, "<line x1=\"%.2f\" y1=\"%.2f\" x2=\"%.2f\" y2=\"%.2f\" stroke=\"#CBD5E1\"/>\n",
		marginLeft, marginTop, marginLeft, bottom)
	fmt.Fprintf(&b, "<line x1=\"%.2f\" y1=\"%.2f\" x2=\"%.2f\" y2=\"%.2f\" stroke=\"#CBD5E1\"/>\n",
		marginLeft, bottom, marginLeft+plotW, bottom)

	curve := make([]Point, len(points))
	for i, p := range points {
		curve[i] = Point{X: xFor(p.Hour), Y: yFor(p.Value)}
	}

	if area := BuildPath(curve, true, bottom); area != "" {
		fmt.Fprintf(&b, "<path d=\"%s\" fill=\"%s\" fill-opacity=\"0.15\" stroke=\"none\"/>\n", area, lineColor)
	}
	if stroke := BuildPath(curve, false, bottom); stroke != "" {
		fmt.Fprintf(&b, "<path d=\"%s\" fill=\"none\" stroke=\"%s\" stroke-width=\"2.5\" stroke-linecap=\"round\"/>\n",
			stroke, lineColor)
	}

	// Annotated markers on the two canonical peak hours.
	for _, hour := range peakMarkers {
		for _, p := range points {
			if p.Hour != hour {
				continue
			}
			x := xFor(p.Hour)
			y := yFor(p.Value)
			fmt.Fprintf(&b, "<circle cx=\"%.2f\" cy=\"%.2f\" r=\"4\" fill=\"%s\" stroke=\"#FFFFFF\" stroke-width=\"1.5\"/>\n",
				x, y, lineColor)
			fmt.Fprintf(&b, "<text x=\"%.2f\" y=\"%.2f\" text-anchor=\"middle\" font-size=\"10\" font-weight=\"600\" fill=\"#334155\">%.1f</text>\n",
				x, y-9, p.Value)
		}
	}

	// Sparse hour labels along the bottom.
	for _, p := range points {
		if p.Label == "" {
			continue
		}
		fmt.Fprintf(&b, "<text x=\"%.2f\" y=\"%.2f\" text-anchor=\"middle\" font-size=\"10\" fill=\"#64748B\">%s</text>\n",
			xFor(p.Hour), bottom+18, p.Label)
	}

	b.WriteString("</svg>\n")
	return b.String()
}
