package compat

import (
	"fmt"
	"math"

	"github.com/spec-logic/speclogic-api/internal/models"
)

// Motherboard, storage and fans draw a roughly constant floor.
const basePowerWatts = 100

// Multiplier applied to total draw before snapping to a PSU tier.
const psuHeadroomMultiplier = 1.5

// Standard PSU ratings, used for "round up to nearest" recommendations.
var psuTiers = []int{450, 550, 650, 750, 850, 1000, 1200, 1500}

// CalculatePowerRequirements derives the power budget for the current
// selection. Pure and deterministic: same build in, same analysis out.
func CalculatePowerRequirements(build *models.Build) models.PowerAnalysis {
	cpuPower := 0
	if cpu := build.CPU; cpu != nil {
		// Prefer the documented maximum over nominal TDP when both exist.
		cpuPower = cpu.TDPWatts
		if cpu.MaxTDPWatts > 0 {
			cpuPower = cpu.MaxTDPWatts
		}
	}

	gpuPower := 0
	if gpu := build.GPU; gpu != nil {
		gpuPower = gpu.TDPWatts
	}

	totalDraw := basePowerWatts + cpuPower + gpuPower + transientBuffer(gpuPower)
	if build.Overclocking {
		totalDraw += int(math.Round(0.2 * float64(cpuPower+gpuPower)))
	}

	target := int(math.Round(float64(totalDraw) * psuHeadroomMultiplier))
	recommended, tier := snapToTier(target)

	analysis := models.PowerAnalysis{
		TotalTDP:         totalDraw,
		RecommendedPSU:   recommended,
		RecommendedTier:  tier,
		EfficiencyAtLoad: fmt.Sprintf("%d%%", int(math.Round(float64(totalDraw)/float64(recommended)*100))),
	}

	if psu := build.PSU; psu != nil {
		wattage := psu.Wattage
		headroom := wattage - totalDraw
		analysis.CurrentPSU = &wattage
		analysis.Headroom = &headroom
	}

	return analysis
}

// transientBuffer reserves margin for the brief spikes high-power GPUs draw
// above nominal TDP.
func transientBuffer(gpuPower int) int {
	switch {
	case gpuPower < 200:
		return 0
	case gpuPower < 300:
		return 75
	case gpuPower < 400:
		return 150
	default:
		return 200
	}
}

// snapToTier rounds the wattage target up to the nearest standard PSU
// rating. Targets beyond the ladder keep their raw value and report the
// open-ended "1500W+" tier.
func snapToTier(target int) (int, string) {
	for _, tier := range psuTiers {
		if tier >= target {
			return tier, fmt.Sprintf("%dW", tier)
		}
	}
	return target, "1500W+"
}
