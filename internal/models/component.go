package models

import "encoding/json"

// ComponentType identifies which hardware category a Component belongs to.
type ComponentType string

const (
	TypeCPU         ComponentType = "CPU"
	TypeGPU         ComponentType = "GPU"
	TypeMotherboard ComponentType = "Motherboard"
	TypeRAM         ComponentType = "RAM"
	TypePSU         ComponentType = "PSU"
	TypeCase        ComponentType = "Case"
	TypeCooler      ComponentType = "Cooler"
	TypeStorage     ComponentType = "Storage"
)

// ComponentTypes lists every recognized category, in slot order.
var ComponentTypes = []ComponentType{
	TypeCPU, TypeMotherboard, TypeGPU, TypeRAM,
	TypePSU, TypeCase, TypeCooler, TypeStorage,
}

// StringList is a "supported values" field (memory_type, socket_support,
// form_factor_support). Sources are inconsistent about whether these arrive
// as a single string or an array, so unmarshalling accepts both and always
// normalizes to a slice. An empty list means "no restriction".
type StringList []string

func (l *StringList) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		if single == "" {
			*l = nil
		} else {
			*l = StringList{single}
		}
		return nil
	}

	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return err
	}
	*l = many
	return nil
}

// First returns the first value, or "" for an empty list.
func (l StringList) First() string {
	if len(l) == 0 {
		return ""
	}
	return l[0]
}

// Component is a single catalog record. The record is flat, mirroring the
// index schema: common fields are always present, type-specific fields are
// populated only for the matching ComponentType and omitted otherwise.
type Component struct {
	ObjectID          string        `json:"object_id,omitempty"`
	Type              ComponentType `json:"component_type"`
	Brand             string        `json:"brand,omitempty"`
	Model             string        `json:"model,omitempty"`
	PriceUSD          Price         `json:"price_usd,omitempty"`
	PerformanceTier   string        `json:"performance_tier,omitempty"`
	CompatibilityTags []string      `json:"compatibility_tags,omitempty"`

	// CPU / Motherboard
	Socket string `json:"socket,omitempty"`

	// CPU / GPU
	TDPWatts int `json:"tdp_watts,omitempty"`

	// CPU
	MaxTDPWatts int `json:"max_tdp_watts,omitempty"`

	// CPU / Motherboard (list), RAM (single value)
	MemoryType StringList `json:"memory_type,omitempty"`

	// GPU
	LengthMM            int `json:"length_mm,omitempty"`
	RecommendedPSUWatts int `json:"recommended_psu_watts,omitempty"`

	// Motherboard / Storage
	FormFactor string `json:"form_factor,omitempty"`

	// Motherboard
	M2Slots int `json:"m2_slots,omitempty"`

	// PSU
	Wattage int `json:"wattage,omitempty"`

	// Case
	FormFactorSupport StringList `json:"form_factor_support,omitempty"`
	MaxGPULengthMM    int        `json:"max_gpu_length_mm,omitempty"`
	MaxCoolerHeightMM int        `json:"max_cooler_height_mm,omitempty"`

	// Cooler
	SocketSupport StringList `json:"socket_support,omitempty"`
	HeightMM      int        `json:"height_mm,omitempty"`
	TDPRating     int        `json:"tdp_rating,omitempty"`
}

// DisplayName returns "Brand Model" with whichever parts are present.
func (c *Component) DisplayName() string {
	switch {
	case c.Brand != "" && c.Model != "":
		return c.Brand + " " + c.Model
	case c.Model != "":
		return c.Model
	default:
		return c.Brand
	}
}
