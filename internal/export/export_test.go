package export

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/spec-logic/speclogic-api/internal/models"
	"github.com/spec-logic/speclogic-api/pkg/compat"
)

func exportBuild() *models.Build {
	return &models.Build{
		CPU: &models.Component{Type: models.TypeCPU, Brand: "AMD", Model: "Ryzen 5 7600", PriceUSD: 229, TDPWatts: 65},
		GPU: &models.Component{Type: models.TypeGPU, Brand: "AMD", Model: "Radeon RX 7800 XT", PriceUSD: 499.99, TDPWatts: 263},
		PSU: &models.Component{Type: models.TypePSU, Brand: "Corsair", Model: "RM850x", PriceUSD: 139.99, Wattage: 850},
	}
}

func TestTotalPrice(t *testing.T) {
	total := TotalPrice(exportBuild())
	// Decimal summation: no float drift on .99 prices.
	assert.Equal(t, "868.98", total.StringFixed(2))

	assert.Equal(t, "0.00", TotalPrice(&models.Build{}).StringFixed(2))
}

func TestFormatBuild(t *testing.T) {
	build := exportBuild()
	power := compat.CalculatePowerRequirements(build)

	text := FormatBuild(build, power)

	assert.Contains(t, text, "PC Build Summary")
	assert.Contains(t, text, "AMD Ryzen 5 7600")
	assert.Contains(t, text, "$229.00")
	assert.Contains(t, text, "Total price: $868.98")
	assert.Contains(t, text, "Estimated draw: 503W")
	assert.Contains(t, text, "850W")

	// One line per populated slot, nothing for empty ones.
	assert.NotContains(t, text, "Motherboard")
	assert.Equal(t, 3, strings.Count(text, "($"))
}
