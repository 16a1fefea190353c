package diary

import (
	"regexp"
	"strconv"
	"strings"
)

// grams per unit, mass units only
var massUnits = map[string]float64{
	"mg":        0.001,
	"g":         1,
	"gr":        1,
	"gram":      1,
	"grams":     1,
	"kg":        1000,
	"oz":        28.349523125,
	"lb":        453.59237,
	"lbs":       453.59237,
	"kilogram":  1000,
	"kilograms": 1000,
}

var servingMassPattern = regexp.MustCompile(`(\d+(?:[.,]\d+)?)\s*([a-z]+)`)

// ServingGrams extracts the gram quantity a serving type describes,
// e.g. "100 g" -> 100, "1 cup (240 g)" -> 240. The first quantity with a mass
// unit wins. Serving types without one ("1 piece", "1 cup", "") yield 1, so
// the consumed amount acts as a plain quantity multiplier.
func ServingGrams(servingType string) float64 {
	s := strings.ToLower(strings.TrimSpace(servingType))
	for _, m := range servingMassPattern.FindAllStringSubmatch(s, -1) {
		perUnit, ok := massUnits[m[2]]
		if !ok {
			continue
		}
		amount, err := strconv.ParseFloat(strings.ReplaceAll(m[1], ",", "."), 64)
		if err != nil || amount <= 0 {
			continue
		}
		return amount * perUnit
	}
	return 1
}
