package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringList_AcceptsStringOrArray(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want StringList
	}{
		{"single string", `"DDR5"`, StringList{"DDR5"}},
		{"array", `["DDR4","DDR5"]`, StringList{"DDR4", "DDR5"}},
		{"empty array", `[]`, StringList{}},
		{"empty string", `""`, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got StringList
			require.NoError(t, json.Unmarshal([]byte(tt.in), &got))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPrice_AcceptsNumberOrDisplayString(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want float64
	}{
		{"number", `399.99`, 399.99},
		{"dollar string", `"$499.99"`, 499.99},
		{"thousands separator", `"$1,299.99"`, 1299.99},
		{"currency suffix", `"499 USD"`, 499},
		{"empty string", `""`, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got Price
			require.NoError(t, json.Unmarshal([]byte(tt.in), &got))
			assert.InDelta(t, tt.want, float64(got), 0.001)
		})
	}
}

func TestBuild_SlotOperations(t *testing.T) {
	build := &Build{}

	cpu := &Component{Type: TypeCPU, Socket: "AM5"}
	require.NoError(t, build.SetSlot(cpu))
	assert.Same(t, cpu, build.CPU)
	assert.Same(t, cpu, build.Slot(TypeCPU))

	// Setting again replaces, never stacks.
	other := &Component{Type: TypeCPU, Socket: "LGA1700"}
	require.NoError(t, build.SetSlot(other))
	assert.Same(t, other, build.CPU)

	build.UnsetSlot(TypeCPU)
	assert.Nil(t, build.CPU)

	err := build.SetSlot(&Component{Type: "Keyboard"})
	assert.Error(t, err)
}

func TestBuild_Missing(t *testing.T) {
	build := &Build{}
	assert.Len(t, build.Missing(), 7)

	require.NoError(t, build.SetSlot(&Component{Type: TypeCPU}))
	require.NoError(t, build.SetSlot(&Component{Type: TypeStorage}))

	missing := build.Missing()
	assert.Len(t, missing, 6)
	assert.NotContains(t, missing, "CPU")
	assert.NotContains(t, missing, "Storage")
}

func TestBuild_JSONRoundTrip(t *testing.T) {
	build := &Build{
		CPU: &Component{
			ObjectID:        "cpu-amd-ryzen-7-7800x3d",
			Type:            TypeCPU,
			Brand:           "AMD",
			Model:           "Ryzen 7 7800X3D",
			PriceUSD:        399,
			PerformanceTier: "high-end",
			Socket:          "AM5",
			TDPWatts:        120,
			MaxTDPWatts:     162,
			MemoryType:      StringList{"DDR5"},
		},
		GPU: &Component{
			Type:                TypeGPU,
			Brand:               "NVIDIA",
			Model:               "GeForce RTX 4090",
			PriceUSD:            1599,
			LengthMM:            336,
			TDPWatts:            450,
			RecommendedPSUWatts: 850,
			CompatibilityTags:   []string{"extreme-power-gpu", "nvidia"},
		},
		Case: &Component{
			Type:              TypeCase,
			Brand:             "Fractal Design",
			Model:             "North",
			PriceUSD:          129.99,
			FormFactorSupport: StringList{"ATX", "Micro-ATX", "Mini-ITX"},
			MaxGPULengthMM:    355,
			MaxCoolerHeightMM: 170,
		},
		Overclocking: true,
	}

	data, err := json.Marshal(build)
	require.NoError(t, err)

	var restored Build
	require.NoError(t, json.Unmarshal(data, &restored))

	// Field-for-field: persistence must be an opaque, lossless cycle.
	assert.Equal(t, build, &restored)
}

func TestComponent_DisplayName(t *testing.T) {
	assert.Equal(t, "AMD Ryzen 5 7600", (&Component{Brand: "AMD", Model: "Ryzen 5 7600"}).DisplayName())
	assert.Equal(t, "RM850x", (&Component{Model: "RM850x"}).DisplayName())
	assert.Equal(t, "Corsair", (&Component{Brand: "Corsair"}).DisplayName())
}
