package entity

// Category agrupa productos (ej: Carnes, Fiambres, Abarrotes).
type Category struct {
	ID   string
	Name string // único
}
