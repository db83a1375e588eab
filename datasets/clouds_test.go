package datasets

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/YuminosukeSato/perceptron/pkg/errors"
	"github.com/YuminosukeSato/perceptron/sklearn/linear_model"
)

func TestMakeClouds_Reproducible(t *testing.T) {
	a1, b1, err := MakeClouds(DefaultClassA, DefaultClassB, 50, 42)
	require.NoError(t, err)
	a2, b2, err := MakeClouds(DefaultClassA, DefaultClassB, 50, 42)
	require.NoError(t, err)

	assert.Equal(t, a1, a2)
	assert.Equal(t, b1, b2)
	assert.Len(t, a1, 50)
	assert.Len(t, b1, 50)

	a3, _, err := MakeClouds(DefaultClassA, DefaultClassB, 50, 43)
	require.NoError(t, err)
	assert.NotEqual(t, a1, a3)
}

func TestMakeCloud_Statistics(t *testing.T) {
	cloud := Cloud{XMean: 1, XStd: 1, Slope: 0.2, Intercept: 6, YStd: 1.6}
	pts, err := MakeCloud(cloud, 20000, rand.NewPCG(1, 2))
	require.NoError(t, err)

	c, err := Centroid(pts)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, c.X, 0.05)
	assert.InDelta(t, 0.2*1.0+6, c.Y, 0.05)
}

func TestMakeCloud_ZeroSpread(t *testing.T) {
	cloud := Cloud{XMean: 2, Slope: -1, Intercept: 3}
	pts, err := MakeCloud(cloud, 5, rand.NewPCG(1, 1))
	require.NoError(t, err)
	for _, p := range pts {
		assert.Equal(t, linear_model.Point{X: 2, Y: 1}, p)
	}
}

func TestMakeCloud_Validation(t *testing.T) {
	tests := []struct {
		name  string
		cloud Cloud
		n     int
		param string
	}{
		{"negative count", DefaultClassA, -1, "n_points"},
		{"negative x spread", Cloud{XStd: -1}, 3, "x_std"},
		{"negative y spread", Cloud{YStd: -0.5}, 3, "y_std"},
		{"NaN slope", Cloud{Slope: math.NaN()}, 3, "slope"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := MakeCloud(tt.cloud, tt.n, rand.NewPCG(0, 0))
			var valErr *errors.ValidationError
			require.True(t, errors.As(err, &valErr), "got %v", err)
			assert.Equal(t, tt.param, valErr.ParamName)
		})
	}
}

func TestMakeCloud_Empty(t *testing.T) {
	pts, err := MakeCloud(DefaultClassB, 0, rand.NewPCG(0, 0))
	require.NoError(t, err)
	assert.Empty(t, pts)

	_, err = Centroid(pts)
	assert.True(t, errors.Is(err, errors.ErrEmptyData))
	_, _, err = Bounds(pts)
	assert.True(t, errors.Is(err, errors.ErrEmptyData))
}

func TestBounds(t *testing.T) {
	pts := []linear_model.Point{{X: 1, Y: -2}, {X: -3, Y: 4}, {X: 0, Y: 0}}
	lo, hi, err := Bounds(pts)
	require.NoError(t, err)
	assert.Equal(t, linear_model.Point{X: -3, Y: -2}, lo)
	assert.Equal(t, linear_model.Point{X: 1, Y: 4}, hi)
}

func TestDefaultClouds_MostlySeparatedByDemoLine(t *testing.T) {
	classA, classB, err := MakeClouds(DefaultClassA, DefaultClassB, 200, 7)
	require.NoError(t, err)

	line := linear_model.NewBoundary(2, 3, -6)
	wrong := 0
	for _, p := range classA {
		if linear_model.Classify(p, line) == linear_model.AreaB {
			wrong++
		}
	}
	for _, p := range classB {
		if linear_model.Classify(p, line) == linear_model.AreaA {
			wrong++
		}
	}
	// ClassB straddles the starting line, so roughly half of it is wrong
	assert.Less(t, wrong, 200)
}
