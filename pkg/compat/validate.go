package compat

import (
	"fmt"

	"github.com/spec-logic/speclogic-api/internal/models"
	"github.com/spec-logic/speclogic-api/internal/utils"
)

// ValidateBuild produces the aggregate report for a build snapshot. Unlike
// the per-candidate checker, hard checks here do not short-circuit: every
// applicable violation is reported. Empty slots are listed as missing but
// never produce issues on their own.
func ValidateBuild(build *models.Build) models.ValidationResult {
	issues := []models.ValidationIssue{}
	power := CalculatePowerRequirements(build)

	cpu := build.CPU
	mb := build.Motherboard
	gpu := build.GPU
	ram := build.RAM
	psu := build.PSU
	enclosure := build.Case
	cooler := build.Cooler

	if cpu != nil && mb != nil && cpu.Socket != "" && mb.Socket != "" && !utils.EqualValue(cpu.Socket, mb.Socket) {
		issues = append(issues, models.ValidationIssue{
			Type:               models.IssueError,
			Code:               models.CodeSocketMismatch,
			Message:            fmt.Sprintf("CPU socket %s does not match motherboard socket %s", cpu.Socket, mb.Socket),
			AffectedComponents: []string{"cpu", "motherboard"},
			Suggestion:         fmt.Sprintf("choose a %s motherboard or a %s CPU", cpu.Socket, mb.Socket),
		})
	}

	if ram != nil && ram.MemoryType.First() != "" {
		memType := ram.MemoryType.First()
		if mb != nil && !utils.ContainsValue(mb.MemoryType, memType) {
			issues = append(issues, models.ValidationIssue{
				Type:               models.IssueError,
				Code:               models.CodeMemoryTypeMismatch,
				Message:            fmt.Sprintf("RAM is %s but the motherboard does not support it", memType),
				AffectedComponents: []string{"ram", "motherboard"},
			})
		}
		if cpu != nil && !utils.ContainsValue(cpu.MemoryType, memType) {
			issues = append(issues, models.ValidationIssue{
				Type:               models.IssueError,
				Code:               models.CodeMemoryTypeMismatch,
				Message:            fmt.Sprintf("RAM is %s but the CPU does not support it", memType),
				AffectedComponents: []string{"ram", "cpu"},
			})
		}
	}

	if gpu != nil && enclosure != nil && gpu.LengthMM > 0 && enclosure.MaxGPULengthMM > 0 && gpu.LengthMM > enclosure.MaxGPULengthMM {
		overage := gpu.LengthMM - enclosure.MaxGPULengthMM
		issues = append(issues, models.ValidationIssue{
			Type:               models.IssueError,
			Code:               models.CodeGPUTooLong,
			Message:            fmt.Sprintf("GPU (%dmm) exceeds case clearance (%dmm) by %dmm", gpu.LengthMM, enclosure.MaxGPULengthMM, overage),
			AffectedComponents: []string{"gpu", "case"},
		})
	}

	if cooler != nil && enclosure != nil && cooler.HeightMM > 0 && enclosure.MaxCoolerHeightMM > 0 && cooler.HeightMM > enclosure.MaxCoolerHeightMM {
		overage := cooler.HeightMM - enclosure.MaxCoolerHeightMM
		issues = append(issues, models.ValidationIssue{
			Type:               models.IssueError,
			Code:               models.CodeCoolerTooTall,
			Message:            fmt.Sprintf("cooler (%dmm) exceeds case clearance (%dmm) by %dmm", cooler.HeightMM, enclosure.MaxCoolerHeightMM, overage),
			AffectedComponents: []string{"cooler", "case"},
		})
	}

	if cooler != nil && cpu != nil && cpu.Socket != "" && len(cooler.SocketSupport) > 0 && !utils.ContainsValue(cooler.SocketSupport, cpu.Socket) {
		issues = append(issues, models.ValidationIssue{
			Type:               models.IssueError,
			Code:               models.CodeCoolerSocketMismatch,
			Message:            fmt.Sprintf("cooler does not support socket %s", cpu.Socket),
			AffectedComponents: []string{"cooler", "cpu"},
		})
	}

	if mb != nil && enclosure != nil && mb.FormFactor != "" && !utils.ContainsValue(enclosure.FormFactorSupport, mb.FormFactor) {
		issues = append(issues, models.ValidationIssue{
			Type:               models.IssueError,
			Code:               models.CodeFormFactorMismatch,
			Message:            fmt.Sprintf("case does not support %s motherboards", mb.FormFactor),
			AffectedComponents: []string{"motherboard", "case"},
		})
	}

	if psu != nil && psu.Wattage > 0 && power.RecommendedPSU > psu.Wattage {
		issues = append(issues, models.ValidationIssue{
			Type:               models.IssueWarning,
			Code:               models.CodePSUInsufficient,
			Message:            fmt.Sprintf("%dW PSU is below the %dW recommended for this build", psu.Wattage, power.RecommendedPSU),
			AffectedComponents: []string{"psu"},
			Suggestion:         fmt.Sprintf("upgrade to at least a %s unit", power.RecommendedTier),
		})
	}

	valid := true
	for _, issue := range issues {
		if issue.Type == models.IssueError {
			valid = false
			break
		}
	}

	missing := build.Missing()

	return models.ValidationResult{
		Valid:             valid,
		Complete:          len(missing) == 0,
		Issues:            issues,
		PowerAnalysis:     power,
		MissingComponents: missing,
	}
}
