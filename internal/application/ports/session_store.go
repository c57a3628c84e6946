package ports

// SessionStore sesiones opacas del lado servidor. El token es el único dato
// que viaja al cliente (cookie HTTP-only); el user id nunca sale del server.
// Get renueva la ventana de inactividad en cada acierto (expiración
// deslizante); una sesión vencida se comporta igual que una inexistente.
type SessionStore interface {
	Create(userID string) (token string)
	Get(token string) (userID string, ok bool)
	Destroy(token string)
}
