// Package rut valida el Rol Único Tributario chileno (módulo 11).
// Funciones puras: mismo input, mismo output, sin I/O.
package rut

import (
	"errors"
	"strings"
)

var (
	// ErrInvalidFormat el RUT no tiene la forma dígitos + guion + (dígito|K).
	ErrInvalidFormat = errors.New("rut: formato inválido")
	// ErrInvalidCheckDigit el dígito verificador no corresponde al cuerpo.
	ErrInvalidCheckDigit = errors.New("rut: dígito verificador inválido")
)

// Normalize lleva un RUT a su forma canónica: sin puntos ni espacios, en
// mayúsculas, con un único guion antes del dígito verificador.
// "12.345.678-5" → "12345678-5"; "123456785" → "12345678-5".
func Normalize(raw string) string {
	s := strings.ToUpper(strings.TrimSpace(raw))
	s = strings.ReplaceAll(s, ".", "")
	s = strings.ReplaceAll(s, " ", "")
	if !strings.Contains(s, "-") && len(s) >= 2 {
		s = s[:len(s)-1] + "-" + s[len(s)-1:]
	}
	return s
}

// Validate normaliza y valida formato y dígito verificador.
// Devuelve el RUT canónico si es válido.
func Validate(raw string) (string, error) {
	s := Normalize(raw)
	body, dv, ok := strings.Cut(s, "-")
	if !ok || body == "" || len(dv) != 1 {
		return "", ErrInvalidFormat
	}
	for _, r := range body {
		if r < '0' || r > '9' {
			return "", ErrInvalidFormat
		}
	}
	if !(dv[0] == 'K' || (dv[0] >= '0' && dv[0] <= '9')) {
		return "", ErrInvalidFormat
	}
	if ComputeCheckDigit(body) != dv[0] {
		return "", ErrInvalidCheckDigit
	}
	return s, nil
}

// ComputeCheckDigit calcula el dígito verificador para el cuerpo del RUT.
// Recorre los dígitos de derecha a izquierda con pesos cíclicos 2,3,4,5,6,7;
// el verificador es 11 - (suma mod 11), con 11 → '0' y 10 → 'K'.
func ComputeCheckDigit(body string) byte {
	sum := 0
	weight := 2
	for i := len(body) - 1; i >= 0; i-- {
		sum += int(body[i]-'0') * weight
		weight++
		if weight > 7 {
			weight = 2
		}
	}
	switch dv := 11 - (sum % 11); dv {
	case 11:
		return '0'
	case 10:
		return 'K'
	default:
		return byte('0' + dv)
	}
}
