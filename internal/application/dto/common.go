package dto

// Claves del resultado de servicio. Son las únicas que cruzan la frontera
// HTTP junto con el mensaje en texto libre.
const (
	KeySuccess = "Success"
	KeyError   = "Error"
)

// Result par (key, message) que devuelven todas las operaciones mutadoras.
// Las fallas no se propagan como error al caller: se traducen a este par.
type Result struct {
	Key     string `json:"key"`
	Message string `json:"message"`
}

// Ok construye un resultado exitoso.
func Ok(message string) Result { return Result{Key: KeySuccess, Message: message} }

// Fail construye un resultado de error.
func Fail(message string) Result { return Result{Key: KeyError, Message: message} }

// IsError indica si el resultado es de error.
func (r Result) IsError() bool { return r.Key == KeyError }

// ErrorResponse cuerpo de error HTTP para fallas que no siguen el contrato
// Result (lecturas, autenticación, validación).
type ErrorResponse struct {
	Code    string            `json:"code"`
	Message string            `json:"message,omitempty"`
	Errors  map[string]string `json:"errors,omitempty"` // campo -> mensaje
}

// ComboItem opción de un combo (valor + etiqueta visible).
type ComboItem struct {
	Value string `json:"value"`
	Text  string `json:"text"`
}

// DeleteManyRequest ids seleccionados para un borrado en lote.
type DeleteManyRequest struct {
	IDs []int64 `json:"ids"`
}
