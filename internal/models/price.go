package models

import (
	"encoding/json"
	"strconv"
	"strings"
	"unicode"
)

// Price is a USD amount. Catalog sources are sloppy about the field: some
// emit a plain number, others a display string like "$1,299.99", so
// unmarshalling accepts both. It always marshals back as a number.
type Price float64

func (p *Price) UnmarshalJSON(data []byte) error {
	var f float64
	if err := json.Unmarshal(data, &f); err == nil {
		*p = Price(f)
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}

	f, _, err := ParsePrice(s)
	if err != nil {
		return err
	}
	*p = Price(f)
	return nil
}

// ParsePrice extracts the numeric amount and currency marker from a display
// price like "$1,299.99" or "499 USD". An empty string parses as zero.
func ParsePrice(price string) (float64, string, error) {
	price = strings.TrimSpace(price)

	if price == "" {
		return 0, "", nil
	}

	currency, number := "", ""

	for _, char := range price {
		currency, number = processCharacter(char, currency, number)
	}

	// Thousands separators leave stray dots; keep only the last one.
	if n := strings.Count(number, "."); n > 1 {
		number = strings.Replace(number, ".", "", n-1)
	}

	float, err := strconv.ParseFloat(number, 64)

	if err != nil {
		return 0, "", err
	}

	return float, strings.TrimSpace(currency), nil
}

func processCharacter(char rune, currency, number string) (string, string) {
	if isSpaceOrPlus(char) {
		return currency, number
	} else if isSeparatorChar(char) {
		number += "."
	} else if unicode.IsDigit(char) {
		number += string(char)
	} else {
		currency += string(char)
	}
	return currency, number
}

func isSeparatorChar(char rune) bool {
	return char == '.' || char == ','
}

func isSpaceOrPlus(char rune) bool {
	return char == ' ' || char == '+'
}
