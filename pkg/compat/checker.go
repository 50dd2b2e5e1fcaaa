// Package compat is the build-compatibility and power-budget engine. Every
// function takes an immutable build snapshot and returns fresh data; nothing
// here performs I/O or fails at runtime on well-formed input.
package compat

import (
	"fmt"
	"strings"

	"github.com/spec-logic/speclogic-api/internal/models"
	"github.com/spec-logic/speclogic-api/internal/utils"
)

// Clearance margins below these thresholds are flagged as a tight fit.
const (
	gpuTightFitMarginMM    = 20
	coolerTightFitMarginMM = 10
)

func compatible() models.CheckResult {
	return models.CheckResult{Status: models.StatusCompatible}
}

func incompatible(format string, args ...any) models.CheckResult {
	return models.CheckResult{Status: models.StatusIncompatible, Message: fmt.Sprintf(format, args...)}
}

func warning(format string, args ...any) models.CheckResult {
	return models.CheckResult{Status: models.StatusWarning, Message: fmt.Sprintf(format, args...)}
}

// CheckComponentCompatibility classifies a candidate against the current
// selection. Rules are evaluated against populated slots only; an empty slot
// passes vacuously. The first failing hard rule wins, then the first
// triggered soft rule; a candidate of unrecognized type is "unknown", never
// an error.
func CheckComponentCompatibility(candidate *models.Component, build *models.Build) models.CheckResult {
	if candidate == nil {
		return models.CheckResult{Status: models.StatusUnknown}
	}

	switch candidate.Type {
	case models.TypeCPU:
		return checkCPU(candidate, build)
	case models.TypeGPU:
		return checkGPU(candidate, build)
	case models.TypeMotherboard:
		return checkMotherboard(candidate, build)
	case models.TypeRAM:
		return checkRAM(candidate, build)
	case models.TypePSU:
		return checkPSU(candidate, build)
	case models.TypeCase:
		return checkCase(candidate, build)
	case models.TypeCooler:
		return checkCooler(candidate, build)
	case models.TypeStorage:
		return checkStorage(candidate, build)
	default:
		return models.CheckResult{Status: models.StatusUnknown}
	}
}

func checkCPU(c *models.Component, build *models.Build) models.CheckResult {
	if mb := build.Motherboard; mb != nil && c.Socket != "" && mb.Socket != "" {
		if !utils.EqualValue(c.Socket, mb.Socket) {
			return incompatible("CPU socket %s does not match motherboard socket %s", c.Socket, mb.Socket)
		}
	}

	if ram := build.RAM; ram != nil && ram.MemoryType.First() != "" {
		if !utils.ContainsValue(c.MemoryType, ram.MemoryType.First()) {
			return incompatible("CPU supports %s but selected RAM is %s",
				strings.Join(c.MemoryType, "/"), ram.MemoryType.First())
		}
	}

	// Cooler socket lists are often incomplete, so this stays advisory.
	if cooler := build.Cooler; cooler != nil && c.Socket != "" && len(cooler.SocketSupport) > 0 {
		if !utils.ContainsValue(cooler.SocketSupport, c.Socket) {
			return warning("selected cooler may not support socket %s", c.Socket)
		}
	}

	return compatible()
}

func checkGPU(c *models.Component, build *models.Build) models.CheckResult {
	enclosure := build.Case
	if enclosure != nil && c.LengthMM > 0 && enclosure.MaxGPULengthMM > 0 {
		if c.LengthMM > enclosure.MaxGPULengthMM {
			return incompatible("GPU (%dmm) exceeds case clearance (%dmm)", c.LengthMM, enclosure.MaxGPULengthMM)
		}
		if margin := enclosure.MaxGPULengthMM - c.LengthMM; margin < gpuTightFitMarginMM {
			return warning("tight fit: GPU (%dmm) leaves only %dmm of case clearance", c.LengthMM, margin)
		}
	}

	if psu := build.PSU; psu != nil && c.RecommendedPSUWatts > 0 && psu.Wattage > 0 {
		if psu.Wattage < c.RecommendedPSUWatts {
			return warning("selected %dW PSU is below the %dW recommended for this GPU",
				psu.Wattage, c.RecommendedPSUWatts)
		}
	}

	return compatible()
}

func checkMotherboard(c *models.Component, build *models.Build) models.CheckResult {
	if cpu := build.CPU; cpu != nil && c.Socket != "" && cpu.Socket != "" {
		if !utils.EqualValue(c.Socket, cpu.Socket) {
			return incompatible("motherboard socket %s does not match CPU socket %s", c.Socket, cpu.Socket)
		}
	}

	if ram := build.RAM; ram != nil && ram.MemoryType.First() != "" {
		if !utils.ContainsValue(c.MemoryType, ram.MemoryType.First()) {
			return incompatible("motherboard supports %s but selected RAM is %s",
				strings.Join(c.MemoryType, "/"), ram.MemoryType.First())
		}
	}

	if enclosure := build.Case; enclosure != nil && c.FormFactor != "" {
		if !utils.ContainsValue(enclosure.FormFactorSupport, c.FormFactor) {
			return incompatible("selected case does not support %s motherboards", c.FormFactor)
		}
	}

	return compatible()
}

func checkRAM(c *models.Component, build *models.Build) models.CheckResult {
	memType := c.MemoryType.First()
	if memType == "" {
		return compatible()
	}

	if mb := build.Motherboard; mb != nil {
		if !utils.ContainsValue(mb.MemoryType, memType) {
			return incompatible("motherboard supports %s, not %s", strings.Join(mb.MemoryType, "/"), memType)
		}
	}

	if cpu := build.CPU; cpu != nil {
		if !utils.ContainsValue(cpu.MemoryType, memType) {
			return incompatible("CPU supports %s, not %s", strings.Join(cpu.MemoryType, "/"), memType)
		}
	}

	return compatible()
}

func checkPSU(c *models.Component, build *models.Build) models.CheckResult {
	if c.Wattage > 0 {
		power := CalculatePowerRequirements(build)
		if c.Wattage < power.RecommendedPSU {
			return warning("%dW PSU is below the %dW recommended for this build", c.Wattage, power.RecommendedPSU)
		}
	}

	return compatible()
}

func checkCase(c *models.Component, build *models.Build) models.CheckResult {
	gpu := build.GPU
	cooler := build.Cooler

	if gpu != nil && gpu.LengthMM > 0 && c.MaxGPULengthMM > 0 && gpu.LengthMM > c.MaxGPULengthMM {
		return incompatible("GPU (%dmm) exceeds case clearance (%dmm)", gpu.LengthMM, c.MaxGPULengthMM)
	}

	if cooler != nil && cooler.HeightMM > 0 && c.MaxCoolerHeightMM > 0 && cooler.HeightMM > c.MaxCoolerHeightMM {
		return incompatible("cooler (%dmm) exceeds case clearance (%dmm)", cooler.HeightMM, c.MaxCoolerHeightMM)
	}

	if mb := build.Motherboard; mb != nil && mb.FormFactor != "" {
		if !utils.ContainsValue(c.FormFactorSupport, mb.FormFactor) {
			return incompatible("case does not support %s motherboards", mb.FormFactor)
		}
	}

	if gpu != nil && gpu.LengthMM > 0 && c.MaxGPULengthMM > 0 {
		if margin := c.MaxGPULengthMM - gpu.LengthMM; margin < gpuTightFitMarginMM {
			return warning("tight fit: GPU (%dmm) leaves only %dmm of case clearance", gpu.LengthMM, margin)
		}
	}

	if cooler != nil && cooler.HeightMM > 0 && c.MaxCoolerHeightMM > 0 {
		if margin := c.MaxCoolerHeightMM - cooler.HeightMM; margin < coolerTightFitMarginMM {
			return warning("tight fit: cooler (%dmm) leaves only %dmm of case clearance", cooler.HeightMM, margin)
		}
	}

	return compatible()
}

func checkCooler(c *models.Component, build *models.Build) models.CheckResult {
	cpu := build.CPU

	if cpu != nil && cpu.Socket != "" && len(c.SocketSupport) > 0 {
		if !utils.ContainsValue(c.SocketSupport, cpu.Socket) {
			return incompatible("cooler does not support socket %s", cpu.Socket)
		}
	}

	if enclosure := build.Case; enclosure != nil && c.HeightMM > 0 && enclosure.MaxCoolerHeightMM > 0 {
		if c.HeightMM > enclosure.MaxCoolerHeightMM {
			return incompatible("cooler (%dmm) exceeds case clearance (%dmm)", c.HeightMM, enclosure.MaxCoolerHeightMM)
		}
		if margin := enclosure.MaxCoolerHeightMM - c.HeightMM; margin < coolerTightFitMarginMM {
			return warning("tight fit: cooler (%dmm) leaves only %dmm of case clearance", c.HeightMM, margin)
		}
	}

	if cpu != nil && c.TDPRating > 0 && cpu.TDPWatts > c.TDPRating {
		return warning("cooler is rated for %dW but the CPU draws %dW; it may run hot", c.TDPRating, cpu.TDPWatts)
	}

	return compatible()
}

func checkStorage(c *models.Component, build *models.Build) models.CheckResult {
	if utils.EqualValue(c.FormFactor, "M.2-2280") {
		if mb := build.Motherboard; mb != nil && mb.M2Slots == 0 {
			return warning("verify M.2 slot availability on the selected motherboard")
		}
	}

	return compatible()
}
