package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/EzequielRindello/StockCore/internal/application/dto"
	"github.com/EzequielRindello/StockCore/internal/application/usecase"
)

// UserHandler maneja las peticiones HTTP para User. A diferencia del resto
// de las entidades, el borrado es individual y corre los invariantes de
// administración contra el usuario autenticado.
type UserHandler struct {
	uc *usecase.UserUseCase
}

// NewUserHandler construye el handler.
func NewUserHandler(uc *usecase.UserUseCase) *UserHandler {
	return &UserHandler{uc: uc}
}

// Index devuelve la vista principal: estado de sesión, usuario actual y
// listado completo. Es la única lectura de usuarios accesible sin sesión.
func (h *UserHandler) Index(c *fiber.Ctx) error {
	out, err := h.uc.IndexView(GetUserID(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Filter devuelve los usuarios que cumplen el filtro del body.
func (h *UserHandler) Filter(c *fiber.Ctx) error {
	var in dto.UserFilterRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Filter(in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// GetForEdit devuelve la proyección de formulario (sin contraseña).
func (h *UserHandler) GetForEdit(c *fiber.Ctx) error {
	out, err := h.uc.GetForEdit(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: dto.MsgNotFound("User")})
	}
	return c.JSON(out)
}

// Create da de alta un usuario.
func (h *UserHandler) Create(c *fiber.Ctx) error {
	var form dto.UserForm
	if err := c.BodyParser(&form); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if errs := form.Validate(); len(errs) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Errors: errs})
	}
	return c.JSON(h.uc.Create(c.Context(), form))
}

// Update edita nombre, email y estado (la contraseña no viaja por acá).
func (h *UserHandler) Update(c *fiber.Ctx) error {
	var form dto.UserForm
	if err := c.BodyParser(&form); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	form.ID = c.Params("id")
	if errs := form.Validate(); len(errs) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Errors: errs})
	}
	saved, res := h.uc.Update(c.Context(), form)
	return c.JSON(fiber.Map{"form": saved, "result": res})
}

// Delete elimina un usuario respetando los invariantes de administración.
func (h *UserHandler) Delete(c *fiber.Ctx) error {
	return c.JSON(h.uc.Delete(c.Context(), c.Params("id"), GetUserID(c)))
}

// ChangePassword fija una nueva contraseña para el usuario dado.
func (h *UserHandler) ChangePassword(c *fiber.Ctx) error {
	var in dto.ChangePasswordRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	return c.JSON(h.uc.ChangePassword(c.Context(), c.Params("id"), in))
}

// PasswordReset dispara el correo de restablecimiento.
func (h *UserHandler) PasswordReset(c *fiber.Ctx) error {
	return c.JSON(h.uc.SendPasswordReset(c.Params("id")))
}

// ExportCsv descarga el listado filtrado como CSV.
func (h *UserHandler) ExportCsv(c *fiber.Ctx) error {
	var in dto.UserFilterRequest
	if err := c.QueryParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "filtro inválido"})
	}
	out, err := h.uc.ExportCsv(in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return sendCsv(c, "users.csv", out)
}
