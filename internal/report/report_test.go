package report

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sartorproj/tempstats/tempseries"
)

func ptr(v float64) *float64 { return &v }

func normalSeries(t *testing.T) *tempseries.Analysis {
	t.Helper()
	a, err := tempseries.NewFromTemps([]float64{3.0, -5.0, 1.0, 5.0})
	require.NoError(t, err)
	return a
}

func TestBuild(t *testing.T) {
	r, err := Build(normalSeries(t), Query{
		Target:      ptr(6),
		LessThan:    ptr(2),
		GreaterThan: ptr(2),
		Range:       &Bounds{Lower: 0, Upper: 4},
	})
	require.NoError(t, err)

	assert.Equal(t, 4, r.Count)
	require.NotNil(t, r.Summary)
	assert.InDelta(t, 1.0, r.Summary.AvgTemp, 1e-5)
	assert.InDelta(t, 3.7416573867739413, r.Summary.DevTemp, 1e-5)
	assert.Equal(t, 1.0, *r.ClosestToZero)
	assert.Equal(t, 5.0, *r.ClosestToTarget)
	assert.Equal(t, []float64{-5, 1}, r.LessThan.Temps)
	assert.Equal(t, []float64{3, 5}, r.GreaterThan.Temps)
	assert.Equal(t, []float64{3, 1}, r.InRange.Temps)
	assert.Equal(t, []float64{-5, 1, 3, 5}, r.Sorted)
}

func TestBuild_Empty(t *testing.T) {
	r, err := Build(tempseries.New(), Query{Target: ptr(1), LessThan: ptr(0)})
	require.NoError(t, err)

	assert.Equal(t, 0, r.Count)
	assert.Nil(t, r.Summary)
	assert.Nil(t, r.ClosestToZero)
	assert.Nil(t, r.ClosestToTarget)
	require.NotNil(t, r.LessThan)
	assert.Empty(t, r.LessThan.Temps)
	assert.Empty(t, r.Sorted)
}

func TestRenderTable(t *testing.T) {
	r, err := Build(normalSeries(t), Query{Target: ptr(6), Range: &Bounds{Lower: 0, Upper: 4}})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, RenderTable(&buf, r))
	out := buf.String()

	assert.Contains(t, out, "1.00 °C")
	assert.Contains(t, out, "3.74 °C")
	assert.Contains(t, out, "Closest to 6")
	assert.Contains(t, out, "Between (0, 4)")
	assert.Contains(t, out, "-5, 1, 3, 5")
}

func TestRenderTable_Empty(t *testing.T) {
	r, err := Build(tempseries.New(), Query{})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, RenderTable(&buf, r))
	assert.Contains(t, buf.String(), "series is empty")
}

func TestRenderJSON(t *testing.T) {
	r, err := Build(normalSeries(t), Query{LessThan: ptr(2)})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, RenderJSON(&buf, r))

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, float64(4), decoded["count"])
	assert.NotContains(t, decoded, "greater_than")

	summary := decoded["summary"].(map[string]interface{})
	assert.InDelta(t, 5.0, summary["max_temp"], 1e-9)
}
