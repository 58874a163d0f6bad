package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evspin/evspin/spin"
)

func TestPelletingCurveChart_RendersAllSeries(t *testing.T) {
	sw, err := spin.GeometryForPreset("SW 40Ti")
	require.NoError(t, err)
	fa, err := spin.GeometryForPreset("TLA 110")
	require.NoError(t, err)

	var buf bytes.Buffer
	err = PelletingCurveChart([]CurveSeries{
		{Name: "SW 40Ti", Geometry: sw},
		{Name: "TLA 110", Geometry: fa},
	}, spin.ReferenceMedium, 10000, 30, 30, 1000, &buf)
	require.NoError(t, err)

	html := buf.String()
	assert.True(t, strings.Contains(html, "SW 40Ti"), "chart HTML must name the first series")
	assert.True(t, strings.Contains(html, "TLA 110"), "chart HTML must name the second series")
	assert.True(t, strings.Contains(html, "echarts"), "output should embed an echarts chart")
}

func TestPelletingCurveChart_RejectsBadInput(t *testing.T) {
	sw, err := spin.GeometryForPreset("SW 40Ti")
	require.NoError(t, err)
	series := []CurveSeries{{Name: "SW 40Ti", Geometry: sw}}

	var buf bytes.Buffer
	assert.Error(t, PelletingCurveChart(nil, spin.ReferenceMedium, 10000, 30, 30, 1000, &buf))
	assert.Error(t, PelletingCurveChart(series, spin.ReferenceMedium, 10000, 30, 1000, 30, &buf))
	assert.Error(t, PelletingCurveChart(series, spin.ReferenceMedium, 10000, 30, 0, 1000, &buf))
}
