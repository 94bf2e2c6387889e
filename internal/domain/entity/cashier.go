package entity

// Cashier representa un cajero del POS.
// RUT se guarda en forma canónica (sin puntos, mayúsculas, guion antes del
// dígito verificador) y debe pasar la validación módulo 11 antes de persistirse.
type Cashier struct {
	ID     string
	Name   string
	RUT    string // único, canónico: "12345678-5"
	Active bool
}
