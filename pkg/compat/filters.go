package compat

import (
	"github.com/spec-logic/speclogic-api/internal/models"
	"github.com/spec-logic/speclogic-api/internal/utils"
)

// Single-value filter UIs want one target form factor, so the deriver picks
// the most likely one instead of returning every supported value.
var formFactorPriority = []string{"ATX", "Micro-ATX", "Mini-ITX"}

// DeriveActiveFilters turns the current selection into query-narrowing
// constraints for the search layer. Stateless; callers recompute after every
// slot mutation.
func DeriveActiveFilters(build *models.Build) models.ActiveFilters {
	var filters models.ActiveFilters

	if cpu := build.CPU; cpu != nil && cpu.Socket != "" {
		filters.Socket = cpu.Socket
	} else if mb := build.Motherboard; mb != nil {
		filters.Socket = mb.Socket
	}

	// A motherboard locks the memory type only when it names exactly one;
	// a multi-type board leaves the choice to the selected RAM.
	if mb := build.Motherboard; mb != nil && len(mb.MemoryType) == 1 {
		filters.MemoryType = mb.MemoryType[0]
	} else if ram := build.RAM; ram != nil {
		filters.MemoryType = ram.MemoryType.First()
	}

	if enclosure := build.Case; enclosure != nil && len(enclosure.FormFactorSupport) > 0 {
		for _, ff := range formFactorPriority {
			if utils.ContainsValue(enclosure.FormFactorSupport, ff) {
				filters.FormFactor = ff
				break
			}
		}
	}

	return filters
}
