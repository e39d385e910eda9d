package entities

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrValorInvalido = errors.New("valor monetário inválido")

// ParseValorBR converts a comma-decimal money string ("1234,56") to float64.
// An empty string parses to 0, which marks an order as not yet priced.
func ParseValorBR(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", "."), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrValorInvalido, s)
	}
	return v, nil
}

// FormatValorBR renders a float64 as a fixed-point comma-decimal string,
// the encoding stored and displayed everywhere ("150,00").
func FormatValorBR(v float64) string {
	return strings.Replace(strconv.FormatFloat(v, 'f', 2, 64), ".", ",", 1)
}
