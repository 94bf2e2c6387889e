package dto

// BootstrapAdminRequest creación única del administrador (setup inicial).
type BootstrapAdminRequest struct {
	Username string `json:"username"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

// AdminLoginRequest credenciales del administrador.
type AdminLoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// AdminResponse administrador sin el hash de contraseña.
type AdminResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
	Active   bool   `json:"active"`
}

// AdminLoginResponse token de sesión + datos del administrador.
type AdminLoginResponse struct {
	Token string        `json:"token"`
	Admin AdminResponse `json:"admin"`
}

// CashierLoginRequest inicio de sesión POS: solo el RUT del cajero.
type CashierLoginRequest struct {
	RUT string `json:"rut"`
}

// CashierResponse cajero visible para el POS y el admin.
type CashierResponse struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	RUT    string `json:"rut"`
	Active bool   `json:"active"`
}

// CreateCashierRequest alta de cajero (admin). El RUT se normaliza y valida.
type CreateCashierRequest struct {
	Name string `json:"name"`
	RUT  string `json:"rut"`
}

// UpdateCashierRequest modificación de cajero (admin).
type UpdateCashierRequest struct {
	Name   *string `json:"name"`
	RUT    *string `json:"rut"`
	Active *bool   `json:"active"`
}
