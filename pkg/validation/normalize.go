package validation

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Normalize recorta espacios y lleva el texto a forma NFC, de modo que "Ñ" compuesta y
// descompuesta se comparen y midan igual.
func Normalize(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}

// NormalizePtr aplica Normalize sobre un puntero opcional.
func NormalizePtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := Normalize(*s)
	return &v
}
