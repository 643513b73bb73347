package estimate_price

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-InteriorStudio/internal/domain"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type recordedEstimate struct {
	complexity string
	material   string
	total      int64
}

type fakeMetrics struct {
	observed []recordedEstimate
}

func (m *fakeMetrics) ObserveEstimate(complexity, material string, total int64) {
	m.observed = append(m.observed, recordedEstimate{complexity, material, total})
}

func TestEstimate(t *testing.T) {
	tests := []struct {
		name string
		in   domain.CalculatorInput
		want int64
	}{
		{"medium premium with lighting", domain.CalculatorInput{Area: 100, Complexity: domain.ComplexityMedium, Material: domain.MaterialPremium, Lighting: true}, 45500},
		{"minimum simple standard", domain.CalculatorInput{Area: 50, Complexity: domain.ComplexitySimple, Material: domain.MaterialStandard}, 7500},
		{"maximum complex luxury", domain.CalculatorInput{Area: 1000, Complexity: domain.ComplexityComplex, Material: domain.MaterialLuxury, Lighting: true}, 755000},
		{"lighting only adds flat fee", domain.CalculatorInput{Area: 50, Complexity: domain.ComplexitySimple, Material: domain.MaterialStandard, Lighting: true}, 12500},
		{"rounds to nearest", domain.CalculatorInput{Area: 70, Complexity: domain.ComplexityMedium, Material: domain.MaterialPremium}, 28350},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Estimate(tt.in))
		})
	}
}

func TestEstimateBreakdown_Stages(t *testing.T) {
	b := EstimateBreakdown(domain.CalculatorInput{
		Area:       100,
		Complexity: domain.ComplexityComplex,
		Material:   domain.MaterialLuxury,
		Lighting:   true,
	})

	assert.InDelta(t, 15000, b.Base, 1e-9)
	assert.InDelta(t, 30000, b.ComplexityAdjusted, 1e-9)
	assert.InDelta(t, 75000, b.MaterialAdjusted, 1e-9)
	assert.InDelta(t, 5000, b.LightingAddon, 1e-9)
	assert.Equal(t, int64(80000), b.Total)
}

func TestUseCase_Execute_Defaults(t *testing.T) {
	metrics := &fakeMetrics{}
	uc := NewUseCase(metrics, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{})
	require.NoError(t, err)

	assert.Equal(t, domain.DefaultCalculatorInput(), resp.Input)
	assert.Equal(t, int64(45500), resp.Estimate)
	require.Len(t, metrics.observed, 1)
	assert.Equal(t, recordedEstimate{"medium", "premium", 45500}, metrics.observed[0])
}

func TestUseCase_Execute_Validation(t *testing.T) {
	intPtr := func(v int) *int { return &v }
	strPtr := func(v string) *string { return &v }

	tests := []struct {
		name    string
		req     *Request
		wantErr error
	}{
		{"area below minimum", &Request{Area: intPtr(40)}, ErrAreaOutOfRange},
		{"area above maximum", &Request{Area: intPtr(1010)}, ErrAreaOutOfRange},
		{"unknown complexity", &Request{Complexity: strPtr("baroque")}, ErrInvalidInput},
		{"unknown material", &Request{Material: strPtr("gold")}, ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			metrics := &fakeMetrics{}
			uc := NewUseCase(metrics, nopLogger{})

			resp, err := uc.Execute(context.Background(), tt.req)
			require.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, resp)
			assert.Empty(t, metrics.observed)
		})
	}
}

func TestUseCase_Execute_Bounds(t *testing.T) {
	uc := NewUseCase(&fakeMetrics{}, nopLogger{})
	off := false

	for _, area := range []int{domain.MinArea, domain.MaxArea} {
		a := area
		resp, err := uc.Execute(context.Background(), &Request{Area: &a, Lighting: &off})
		require.NoError(t, err)
		assert.Equal(t, a, resp.Input.Area)
		assert.False(t, resp.Input.Lighting)
	}
}
