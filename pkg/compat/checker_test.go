package compat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-logic/speclogic-api/internal/models"
)

func am5CPU() *models.Component {
	return &models.Component{
		Type:       models.TypeCPU,
		Brand:      "AMD",
		Model:      "Ryzen 7 7800X3D",
		Socket:     "AM5",
		TDPWatts:   120,
		MemoryType: models.StringList{"DDR5"},
	}
}

func am5Board() *models.Component {
	return &models.Component{
		Type:       models.TypeMotherboard,
		Socket:     "AM5",
		FormFactor: "ATX",
		MemoryType: models.StringList{"DDR5"},
		M2Slots:    3,
	}
}

func TestCheck_EmptyBuildIsVacuouslyCompatible(t *testing.T) {
	for _, c := range []*models.Component{
		am5CPU(),
		{Type: models.TypeGPU, LengthMM: 336, TDPWatts: 450},
		{Type: models.TypeRAM, MemoryType: models.StringList{"DDR5"}},
		{Type: models.TypeCase, FormFactorSupport: models.StringList{"ATX"}},
		{Type: models.TypeStorage, FormFactor: "M.2-2280"},
	} {
		res := CheckComponentCompatibility(c, &models.Build{})
		assert.Equalf(t, models.StatusCompatible, res.Status, "type %s", c.Type)
	}
}

func TestCheck_UnknownComponentType(t *testing.T) {
	res := CheckComponentCompatibility(&models.Component{Type: "Monitor"}, &models.Build{})
	assert.Equal(t, models.StatusUnknown, res.Status)

	res = CheckComponentCompatibility(nil, &models.Build{})
	assert.Equal(t, models.StatusUnknown, res.Status)
}

func TestCheck_Deterministic(t *testing.T) {
	build := &models.Build{
		Motherboard: am5Board(),
		RAM:         &models.Component{Type: models.TypeRAM, MemoryType: models.StringList{"DDR5"}},
	}
	candidate := am5CPU()

	first := CheckComponentCompatibility(candidate, build)
	second := CheckComponentCompatibility(candidate, build)
	assert.Equal(t, first, second)
}

func TestCheck_CPUSocketMismatch(t *testing.T) {
	build := &models.Build{
		Motherboard: &models.Component{Type: models.TypeMotherboard, Socket: "LGA1700"},
	}

	res := CheckComponentCompatibility(am5CPU(), build)
	require.Equal(t, models.StatusIncompatible, res.Status)
	assert.Contains(t, res.Message, "AM5")
	assert.Contains(t, res.Message, "LGA1700")
}

func TestCheck_CPUCoolerSupportIsAdvisory(t *testing.T) {
	build := &models.Build{
		Cooler: &models.Component{Type: models.TypeCooler, SocketSupport: models.StringList{"LGA1700"}},
	}

	res := CheckComponentCompatibility(am5CPU(), build)
	assert.Equal(t, models.StatusWarning, res.Status)
	assert.Contains(t, res.Message, "AM5")
}

func TestCheck_CPUMemoryTypeAgainstRAM(t *testing.T) {
	build := &models.Build{
		RAM: &models.Component{Type: models.TypeRAM, MemoryType: models.StringList{"DDR4"}},
	}

	res := CheckComponentCompatibility(am5CPU(), build)
	assert.Equal(t, models.StatusIncompatible, res.Status)
}

func TestCheck_GPUClearance(t *testing.T) {
	enclosure := &models.Component{Type: models.TypeCase, MaxGPULengthMM: 350}

	tests := []struct {
		name   string
		length int
		want   models.CompatStatus
	}{
		{"too long", 400, models.StatusIncompatible},
		{"tight fit", 340, models.StatusWarning},
		{"comfortable", 320, models.StatusCompatible},
		{"margin exactly 20mm", 330, models.StatusCompatible},
		{"margin 19mm", 331, models.StatusWarning},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gpu := &models.Component{Type: models.TypeGPU, LengthMM: tt.length}
			res := CheckComponentCompatibility(gpu, &models.Build{Case: enclosure})
			assert.Equal(t, tt.want, res.Status, res.Message)
		})
	}
}

func TestCheck_GPURecommendedPSU(t *testing.T) {
	gpu := &models.Component{Type: models.TypeGPU, TDPWatts: 450, RecommendedPSUWatts: 850}

	res := CheckComponentCompatibility(gpu, &models.Build{
		PSU: &models.Component{Type: models.TypePSU, Wattage: 650},
	})
	require.Equal(t, models.StatusWarning, res.Status)
	assert.Contains(t, res.Message, "850")

	res = CheckComponentCompatibility(gpu, &models.Build{
		PSU: &models.Component{Type: models.TypePSU, Wattage: 1000},
	})
	assert.Equal(t, models.StatusCompatible, res.Status)
}

func TestCheck_MembershipIsExactAfterNormalization(t *testing.T) {
	enclosure := &models.Component{
		Type:              models.TypeCase,
		FormFactorSupport: models.StringList{"Micro-ATX"},
	}

	// Hyphen/space spelling differences must not matter.
	board := &models.Component{Type: models.TypeMotherboard, FormFactor: "Micro ATX"}
	res := CheckComponentCompatibility(enclosure, &models.Build{Motherboard: board})
	assert.Equal(t, models.StatusCompatible, res.Status)

	// "ATX" must not match inside "Micro-ATX".
	board = &models.Component{Type: models.TypeMotherboard, FormFactor: "ATX"}
	res = CheckComponentCompatibility(enclosure, &models.Build{Motherboard: board})
	assert.Equal(t, models.StatusIncompatible, res.Status)
}

func TestCheck_EmptyListMeansNoRestriction(t *testing.T) {
	// A case that declares no form factor list accepts any board.
	enclosure := &models.Component{Type: models.TypeCase}
	board := &models.Component{Type: models.TypeMotherboard, FormFactor: "E-ATX"}

	res := CheckComponentCompatibility(enclosure, &models.Build{Motherboard: board})
	assert.Equal(t, models.StatusCompatible, res.Status)
}

func TestCheck_RAMAgainstBoardAndCPU(t *testing.T) {
	ddr4 := &models.Component{Type: models.TypeRAM, MemoryType: models.StringList{"DDR4"}}

	res := CheckComponentCompatibility(ddr4, &models.Build{Motherboard: am5Board()})
	require.Equal(t, models.StatusIncompatible, res.Status)
	assert.Contains(t, res.Message, "DDR5")

	res = CheckComponentCompatibility(ddr4, &models.Build{CPU: am5CPU()})
	assert.Equal(t, models.StatusIncompatible, res.Status)

	// A board that takes both generations accepts either stick.
	board := &models.Component{Type: models.TypeMotherboard, MemoryType: models.StringList{"DDR4", "DDR5"}}
	res = CheckComponentCompatibility(ddr4, &models.Build{Motherboard: board})
	assert.Equal(t, models.StatusCompatible, res.Status)
}

func TestCheck_PSUAgainstBuildBudget(t *testing.T) {
	build := &models.Build{
		CPU: &models.Component{Type: models.TypeCPU, TDPWatts: 105},
		GPU: &models.Component{Type: models.TypeGPU, TDPWatts: 450},
	}
	// 100 + 105 + 450 + 200 = 855 -> 1283 -> 1500 tier.

	res := CheckComponentCompatibility(&models.Component{Type: models.TypePSU, Wattage: 850}, build)
	require.Equal(t, models.StatusWarning, res.Status)

	res = CheckComponentCompatibility(&models.Component{Type: models.TypePSU, Wattage: 1500}, build)
	assert.Equal(t, models.StatusCompatible, res.Status)
}

func TestCheck_CoolerRules(t *testing.T) {
	am5 := am5CPU()

	// Socket support is hard from the cooler's side.
	cooler := &models.Component{Type: models.TypeCooler, SocketSupport: models.StringList{"LGA1700"}, HeightMM: 160}
	res := CheckComponentCompatibility(cooler, &models.Build{CPU: am5})
	require.Equal(t, models.StatusIncompatible, res.Status)
	assert.Contains(t, res.Message, "AM5")

	// Height clearance: hard past the limit, tight inside 10mm.
	enclosure := &models.Component{Type: models.TypeCase, MaxCoolerHeightMM: 160}
	tall := &models.Component{Type: models.TypeCooler, HeightMM: 165}
	res = CheckComponentCompatibility(tall, &models.Build{Case: enclosure})
	assert.Equal(t, models.StatusIncompatible, res.Status)

	snug := &models.Component{Type: models.TypeCooler, HeightMM: 155}
	res = CheckComponentCompatibility(snug, &models.Build{Case: enclosure})
	assert.Equal(t, models.StatusWarning, res.Status)

	// Undersized TDP rating runs hot but is not blocking.
	weak := &models.Component{Type: models.TypeCooler, SocketSupport: models.StringList{"AM5"}, TDPRating: 95}
	res = CheckComponentCompatibility(weak, &models.Build{CPU: am5})
	require.Equal(t, models.StatusWarning, res.Status)
	assert.Contains(t, res.Message, "may run hot")
}

func TestCheck_StorageM2Availability(t *testing.T) {
	m2 := &models.Component{Type: models.TypeStorage, FormFactor: "M.2-2280"}

	// Board with no declared M.2 slots: worth double checking.
	board := &models.Component{Type: models.TypeMotherboard, Socket: "AM5"}
	res := CheckComponentCompatibility(m2, &models.Build{Motherboard: board})
	require.Equal(t, models.StatusWarning, res.Status)
	assert.Contains(t, res.Message, "M.2")

	res = CheckComponentCompatibility(m2, &models.Build{Motherboard: am5Board()})
	assert.Equal(t, models.StatusCompatible, res.Status)

	sata := &models.Component{Type: models.TypeStorage, FormFactor: "2.5\" SATA"}
	res = CheckComponentCompatibility(sata, &models.Build{Motherboard: board})
	assert.Equal(t, models.StatusCompatible, res.Status)
}

func TestCheck_FirstFailingHardRuleWins(t *testing.T) {
	// Board candidate with both a socket mismatch and a case mismatch:
	// the socket rule comes first in priority order.
	build := &models.Build{
		CPU:  &models.Component{Type: models.TypeCPU, Socket: "LGA1700"},
		Case: &models.Component{Type: models.TypeCase, FormFactorSupport: models.StringList{"Mini-ITX"}},
	}

	res := CheckComponentCompatibility(am5Board(), build)
	require.Equal(t, models.StatusIncompatible, res.Status)
	assert.Contains(t, res.Message, "socket")
}
