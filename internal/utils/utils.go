package utils

import (
	"strings"

	"github.com/dlclark/regexp2"
)

type matcher struct {
	re   *regexp2.Regexp
	norm string
}

// Pattern tables for canonicalizing vendor-specific spellings. Order matters:
// more specific patterns (gddr6x, sfx-l) must come before their prefixes.
var (
	socketMatchers = []matcher{
		{regexp2.MustCompile(`(?i)^am5$|socket\s*am5|amd\s*am5`, 0), "AM5"},
		{regexp2.MustCompile(`(?i)^am4$|socket\s*am4|amd\s*am4`, 0), "AM4"},
		{regexp2.MustCompile(`(?i)^str5$|socket\s*str5|strx4`, 0), "sTRX4"},
		{regexp2.MustCompile(`(?i)^sp5$|socket\s*sp5`, 0), "SP5"},
		{regexp2.MustCompile(`(?i)lga\s*1700|intel\s*1700`, 0), "LGA1700"},
		{regexp2.MustCompile(`(?i)lga\s*1851|intel\s*1851`, 0), "LGA1851"},
		{regexp2.MustCompile(`(?i)lga\s*1200|intel\s*1200`, 0), "LGA1200"},
		{regexp2.MustCompile(`(?i)lga\s*1151`, 0), "LGA1151"},
		{regexp2.MustCompile(`(?i)lga\s*2066`, 0), "LGA2066"},
		{regexp2.MustCompile(`(?i)lga\s*4677`, 0), "LGA4677"},
	}

	memoryTypeMatchers = []matcher{
		{regexp2.MustCompile(`(?i)gddr6x`, 0), "GDDR6X"},
		{regexp2.MustCompile(`(?i)gddr6`, 0), "GDDR6"},
		{regexp2.MustCompile(`(?i)gddr5x`, 0), "GDDR5X"},
		{regexp2.MustCompile(`(?i)gddr5`, 0), "GDDR5"},
		{regexp2.MustCompile(`(?i)ddr5[-\s]*\d*`, 0), "DDR5"},
		{regexp2.MustCompile(`(?i)ddr4[-\s]*\d*`, 0), "DDR4"},
		{regexp2.MustCompile(`(?i)ddr3[-\s]*\d*`, 0), "DDR3"},
		{regexp2.MustCompile(`(?i)hbm3`, 0), "HBM3"},
		{regexp2.MustCompile(`(?i)hbm2e`, 0), "HBM2e"},
		{regexp2.MustCompile(`(?i)hbm2`, 0), "HBM2"},
	}

	formFactorMatchers = []matcher{
		{regexp2.MustCompile(`(?i)^atx$|full\s*atx`, 0), "ATX"},
		{regexp2.MustCompile(`(?i)micro[-\s]*atx|^matx$|^m-atx$`, 0), "Micro-ATX"},
		{regexp2.MustCompile(`(?i)mini[-\s]*itx|^itx$`, 0), "Mini-ITX"},
		{regexp2.MustCompile(`(?i)e[-\s]*atx|extended\s*atx`, 0), "E-ATX"},
		{regexp2.MustCompile(`(?i)sfx[-\s]*l`, 0), "SFX-L"},
		{regexp2.MustCompile(`(?i)^sfx$`, 0), "SFX"},
	}
)

func applyMatchers(matchers []matcher, value string) (string, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", false
	}
	for _, m := range matchers {
		if ok, _ := m.re.MatchString(value); ok {
			return m.norm, true
		}
	}
	return value, false
}

// NormalizeSocket maps socket spellings like "Socket AM5" or "lga 1700" to
// their canonical names. Unrecognized values are uppercased with spaces
// removed so equal spellings at least stay equal.
func NormalizeSocket(value string) string {
	norm, ok := applyMatchers(socketMatchers, value)
	if ok {
		return norm
	}
	return strings.ToUpper(strings.ReplaceAll(norm, " ", ""))
}

// NormalizeMemoryType maps spellings like "DDR5-6000" to the bare generation
// name ("DDR5"). Unrecognized values are uppercased as-is.
func NormalizeMemoryType(value string) string {
	norm, ok := applyMatchers(memoryTypeMatchers, value)
	if ok {
		return norm
	}
	return strings.ToUpper(norm)
}

// NormalizeFormFactor maps spellings like "micro atx" or "mATX" to the
// canonical form factor name. Unrecognized values pass through trimmed.
func NormalizeFormFactor(value string) string {
	norm, _ := applyMatchers(formFactorMatchers, value)
	return norm
}

// CanonicalValue reduces a spec value to a comparison key: lowercase, with
// hyphens and spaces stripped. "Micro-ATX" and "Micro ATX" compare equal;
// "ATX" and "Micro-ATX" stay distinct. Comparisons must use whole-key
// equality, never substring containment.
func CanonicalValue(value string) string {
	var b strings.Builder
	b.Grow(len(value))
	for _, r := range value {
		if r == '-' || r == ' ' {
			continue
		}
		if r >= 'A' && r <= 'Z' {
			r += 'a' - 'A'
		}
		b.WriteRune(r)
	}
	return b.String()
}

// EqualValue reports whether two spec values are the same after
// canonicalization.
func EqualValue(a, b string) bool {
	return CanonicalValue(a) == CanonicalValue(b)
}

// ContainsValue reports whether the list names the value, comparing
// canonicalized. An empty list is permissive: it means "no restriction",
// not "supports nothing".
func ContainsValue(list []string, value string) bool {
	if len(list) == 0 {
		return true
	}
	want := CanonicalValue(value)
	for _, v := range list {
		if CanonicalValue(v) == want {
			return true
		}
	}
	return false
}
