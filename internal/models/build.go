package models

import "fmt"

// Build is a fixed set of named slots, each holding at most one component of
// the matching type. Slots are independent containers; a Build is a plain
// value mutated only through SetSlot/UnsetSlot.
type Build struct {
	CPU         *Component `json:"cpu,omitempty"`
	Motherboard *Component `json:"motherboard,omitempty"`
	GPU         *Component `json:"gpu,omitempty"`
	RAM         *Component `json:"ram,omitempty"`
	PSU         *Component `json:"psu,omitempty"`
	Case        *Component `json:"case,omitempty"`
	Cooler      *Component `json:"cooler,omitempty"`
	Storage     *Component `json:"storage,omitempty"`

	// Overclocking widens the power budget, see CalculatePowerRequirements.
	Overclocking bool `json:"overclocking,omitempty"`
}

// RequiredTypes are the slots a build must fill to count as complete.
// Storage is optional.
var RequiredTypes = []ComponentType{
	TypeCPU, TypeMotherboard, TypeGPU, TypeRAM,
	TypePSU, TypeCase, TypeCooler,
}

// SlotKeys maps JSON slot keys to component types, in slot order.
var SlotKeys = []string{
	"cpu", "motherboard", "gpu", "ram", "psu", "case", "cooler", "storage",
}

// Slot returns the component occupying the slot for the given type, or nil.
func (b *Build) Slot(t ComponentType) *Component {
	switch t {
	case TypeCPU:
		return b.CPU
	case TypeMotherboard:
		return b.Motherboard
	case TypeGPU:
		return b.GPU
	case TypeRAM:
		return b.RAM
	case TypePSU:
		return b.PSU
	case TypeCase:
		return b.Case
	case TypeCooler:
		return b.Cooler
	case TypeStorage:
		return b.Storage
	}
	return nil
}

// SetSlot places the component into the slot matching its type, replacing
// any previous occupant. Components of unrecognized type are rejected.
func (b *Build) SetSlot(c *Component) error {
	if c == nil {
		return fmt.Errorf("build: nil component")
	}
	slot := b.slotRef(c.Type)
	if slot == nil {
		return fmt.Errorf("build: unknown component type %q", c.Type)
	}
	*slot = c
	return nil
}

// UnsetSlot empties the slot for the given type. Unknown types are a no-op.
func (b *Build) UnsetSlot(t ComponentType) {
	if slot := b.slotRef(t); slot != nil {
		*slot = nil
	}
}

func (b *Build) slotRef(t ComponentType) **Component {
	switch t {
	case TypeCPU:
		return &b.CPU
	case TypeMotherboard:
		return &b.Motherboard
	case TypeGPU:
		return &b.GPU
	case TypeRAM:
		return &b.RAM
	case TypePSU:
		return &b.PSU
	case TypeCase:
		return &b.Case
	case TypeCooler:
		return &b.Cooler
	case TypeStorage:
		return &b.Storage
	}
	return nil
}

// Selected returns the populated components in slot order.
func (b *Build) Selected() []*Component {
	var out []*Component
	for _, t := range ComponentTypes {
		if c := b.Slot(t); c != nil {
			out = append(out, c)
		}
	}
	return out
}

// Missing returns the required slot types that are still empty.
func (b *Build) Missing() []string {
	missing := []string{}
	for _, t := range RequiredTypes {
		if b.Slot(t) == nil {
			missing = append(missing, string(t))
		}
	}
	return missing
}
