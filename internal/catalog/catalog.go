// Package catalog is the in-memory component index behind the search
// endpoint. Records are loaded once from a JSON seed file, canonicalized,
// and narrowed at query time by the active filters derived from the build.
package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spec-logic/speclogic-api/internal/models"
	"github.com/spec-logic/speclogic-api/internal/utils"
	"github.com/spec-logic/speclogic-api/pkg/compat"
)

// Query narrows a catalog search. Zero values mean "no constraint".
type Query struct {
	Text    string
	Slot    models.ComponentType
	Filters models.ActiveFilters
}

// Result is one candidate annotated with its verdict against the build.
type Result struct {
	Component *models.Component   `json:"component"`
	Status    models.CompatStatus `json:"status"`
	Message   string              `json:"message,omitempty"`
}

type Catalog struct {
	byType map[models.ComponentType][]*models.Component
	count  int
}

// New builds a catalog from the given records. Sockets, memory types and
// form factors are canonicalized on the way in so later comparisons work on
// consistent spellings.
func New(components []*models.Component) *Catalog {
	cat := &Catalog{byType: make(map[models.ComponentType][]*models.Component)}
	for _, c := range components {
		if c == nil {
			continue
		}
		normalizeRecord(c)
		cat.byType[c.Type] = append(cat.byType[c.Type], c)
		cat.count++
	}
	return cat
}

// LoadFile reads a JSON array of component records from disk.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: read %s: %w", path, err)
	}

	var components []*models.Component
	if err := json.Unmarshal(data, &components); err != nil {
		return nil, fmt.Errorf("catalog: parse %s: %w", path, err)
	}

	return New(components), nil
}

// Len returns the number of indexed records.
func (cat *Catalog) Len() int {
	return cat.count
}

// Search returns the candidates matching the query, each annotated with the
// compatibility verdict against the build. A nil build is treated as empty.
func (cat *Catalog) Search(q Query, build *models.Build) []Result {
	if build == nil {
		build = &models.Build{}
	}

	types := models.ComponentTypes
	if q.Slot != "" {
		types = []models.ComponentType{q.Slot}
	}

	text := strings.ToLower(strings.TrimSpace(q.Text))

	results := []Result{}
	for _, t := range types {
		for _, c := range cat.byType[t] {
			if !matchesFilters(c, q.Filters) {
				continue
			}
			if text != "" && !strings.Contains(strings.ToLower(c.DisplayName()), text) {
				continue
			}
			verdict := compat.CheckComponentCompatibility(c, build)
			results = append(results, Result{Component: c, Status: verdict.Status, Message: verdict.Message})
		}
	}
	return results
}

func normalizeRecord(c *models.Component) {
	if c.Socket != "" {
		c.Socket = utils.NormalizeSocket(c.Socket)
	}
	for i, v := range c.MemoryType {
		c.MemoryType[i] = utils.NormalizeMemoryType(v)
	}
	if c.FormFactor != "" && c.Type == models.TypeMotherboard {
		c.FormFactor = utils.NormalizeFormFactor(c.FormFactor)
	}
	for i, v := range c.FormFactorSupport {
		c.FormFactorSupport[i] = utils.NormalizeFormFactor(v)
	}
	for i, v := range c.SocketSupport {
		c.SocketSupport[i] = utils.NormalizeSocket(v)
	}
}

// matchesFilters applies each active filter to the fields it constrains on
// this component type. Filters on fields a type does not carry pass through.
func matchesFilters(c *models.Component, f models.ActiveFilters) bool {
	if f.Socket != "" {
		switch c.Type {
		case models.TypeCPU, models.TypeMotherboard:
			if !utils.EqualValue(c.Socket, f.Socket) {
				return false
			}
		case models.TypeCooler:
			if !utils.ContainsValue(c.SocketSupport, f.Socket) {
				return false
			}
		}
	}

	if f.MemoryType != "" {
		switch c.Type {
		case models.TypeCPU, models.TypeMotherboard, models.TypeRAM:
			if !utils.ContainsValue(c.MemoryType, f.MemoryType) {
				return false
			}
		}
	}

	if f.FormFactor != "" {
		switch c.Type {
		case models.TypeMotherboard:
			if c.FormFactor != "" && !utils.EqualValue(c.FormFactor, f.FormFactor) {
				return false
			}
		case models.TypeCase:
			if !utils.ContainsValue(c.FormFactorSupport, f.FormFactor) {
				return false
			}
		}
	}

	return true
}
