package dto

// LoginRequest credenciales de inicio de sesión.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResult resultado de autenticación. En fallas, Message trae el motivo
// ("Invalid credentials", "User account is inactive"); nunca se distingue
// entre email inexistente y contraseña incorrecta.
type AuthResult struct {
	Success  bool   `json:"success"`
	UserID   string `json:"userId,omitempty"`
	UserName string `json:"userName,omitempty"`
	Message  string `json:"message"`
}
