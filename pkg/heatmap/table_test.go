package heatmap

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoerceTable(t *testing.T) {
	table, err := CoerceTable(
		[]string{"c0", "c1"},
		[]string{"r0", "r1"},
		[][]string{
			{"1", "2"},
			{"3", "not a number"},
		},
	)
	require.NoError(t, err)

	assert.Equal(t, 1.0, table.At(0, 0))
	assert.Equal(t, 2.0, table.At(0, 1))
	assert.Equal(t, 3.0, table.At(1, 0))
	assert.True(t, table.IsMissing(1, 1))
	assert.False(t, table.IsMissing(0, 0))
}

func TestCoerceTable_NaNLiteralIsMissing(t *testing.T) {
	table, err := CoerceTable([]string{"c"}, []string{"r"}, [][]string{{"NaN"}})
	require.NoError(t, err)
	assert.True(t, table.IsMissing(0, 0))
}

func TestFromValues_RejectsRagged(t *testing.T) {
	_, err := FromValues([]string{"a", "b"}, []string{"r"}, [][]float64{{1}})
	require.Error(t, err)

	_, err = FromValues([]string{"a"}, []string{"r0", "r1"}, [][]float64{{1}})
	require.Error(t, err)
}

func TestTableStats(t *testing.T) {
	table, err := FromValues(
		[]string{"c0", "c1"},
		[]string{"r0", "r1"},
		[][]float64{
			{1, 2},
			{3, math.NaN()},
		},
	)
	require.NoError(t, err)

	assert.Equal(t, 1.0, table.Min())
	assert.Equal(t, 3.0, table.Max())
	// Column medians are 2 (of {1,3}) and 2 (of {2}); their median is 2,
	// which is also the median of the three numeric values.
	assert.Equal(t, 2.0, table.MedianOfMedians())
}

func TestTableStats_SkewedData(t *testing.T) {
	table, err := FromValues(
		[]string{"c0", "c1", "c2"},
		[]string{"r0"},
		[][]float64{{1, 2, 100}},
	)
	require.NoError(t, err)
	assert.Equal(t, 2.0, table.MedianOfMedians())
}

func TestTableStats_AllMissing(t *testing.T) {
	table, err := FromValues(
		[]string{"c"},
		[]string{"r"},
		[][]float64{{math.NaN()}},
	)
	require.NoError(t, err)
	assert.True(t, math.IsNaN(table.Min()))
	assert.True(t, math.IsNaN(table.Max()))
	assert.True(t, math.IsNaN(table.MedianOfMedians()))
}

func Test_median(t *testing.T) {
	assert.True(t, math.IsNaN(median(nil)))
	assert.Equal(t, 5.0, median([]float64{5}))
	assert.Equal(t, 2.0, median([]float64{3, 1, 2}))
	assert.Equal(t, 2.5, median([]float64{4, 1, 2, 3}))
}
