// Package dian valida identificadores tributarios colombianos (NIT) según
// las reglas de la DIAN.
package dian

import (
	"fmt"
	"unicode"
)

// pesos para el cálculo del dígito de verificación NIT (Orden Administrativa 4 de 1989, DIAN).
// Se aplican a los 9 primeros dígitos del NIT, de izquierda a derecha.
var nitWeights = [9]int{41, 37, 29, 23, 19, 17, 13, 7, 3}

// ComputeNITVerificationDigit calcula el dígito de verificación módulo 11
// para los 9 primeros dígitos del NIT. Acepta el NIT con o sin separadores.
func ComputeNITVerificationDigit(taxID string) (byte, error) {
	digits := extractDigits(taxID)
	if len(digits) < 9 {
		return 0, fmt.Errorf("dian: se requieren al menos 9 dígitos para calcular el dígito de verificación, se encontraron %d", len(digits))
	}
	var sum int
	for i, d := range digits[:9] {
		sum += int(d-'0') * nitWeights[i]
	}
	remainder := sum % 11
	if remainder == 0 || remainder == 1 {
		return byte('0' + remainder), nil
	}
	return byte('0' + (11 - remainder)), nil
}

// ValidateNITVerificationDigit valida que el NIT (con o sin puntos/guiones)
// incluya un dígito de verificación correcto. taxID puede ser "123456789-1",
// "123.456.789-1" o "1234567891".
func ValidateNITVerificationDigit(taxID string) error {
	digits := extractDigits(taxID)
	expected, err := ComputeNITVerificationDigit(taxID)
	if err != nil {
		return err
	}
	if len(digits) != 10 {
		return fmt.Errorf("dian: el NIT debe incluir dígito de verificación (10 dígitos), se recibieron %d", len(digits))
	}
	if digits[9] != expected {
		return fmt.Errorf("dian: dígito de verificación del NIT inválido: esperado %c, recibido %c", expected, digits[9])
	}
	return nil
}

func extractDigits(s string) []byte {
	var out []byte
	for _, r := range s {
		if unicode.IsDigit(r) {
			out = append(out, byte(r))
		}
	}
	return out
}
