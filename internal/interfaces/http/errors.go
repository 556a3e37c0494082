package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jhoicas/pos-api/internal/application/dto"
	"github.com/jhoicas/pos-api/internal/domain"
)

// respondError traduce errores de dominio a HTTP. Todo error no reconocido es 500.
//
//	ValidationError con not_found -> 404 REFERENCE_NOT_FOUND
//	ValidationError con duplicate -> 409 DUPLICATE
//	ValidationError               -> 400 VALIDATION
//	ErrNotFound                   -> 404 NOT_FOUND
//	ErrEnUso                      -> 409 IN_USE
//	ErrPrecioNoConfigurado        -> 422 PRICE_NOT_CONFIGURED
func respondError(c *fiber.Ctx, err error) error {
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		status, code := fiber.StatusBadRequest, "VALIDATION"
		switch {
		case verr.HasCode(domain.CodeNotFound):
			status, code = fiber.StatusNotFound, "REFERENCE_NOT_FOUND"
		case verr.HasCode(domain.CodeDuplicate):
			status, code = fiber.StatusConflict, "DUPLICATE"
		}
		return c.Status(status).JSON(dto.ErrorResponse{
			Code:    code,
			Message: "la solicitud contiene errores de validación",
			Fields:  verr.Fields,
		})
	}

	switch {
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "recurso no encontrado"})
	case errors.Is(err, domain.ErrEnUso):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "IN_USE", Message: err.Error()})
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: err.Error()})
	case errors.Is(err, domain.ErrPrecioNoConfigurado):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "PRICE_NOT_CONFIGURED", Message: err.Error()})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrUserNotFound), errors.Is(err, domain.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "credenciales inválidas"})
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "cuenta inactiva o sin permisos"})
	case errors.Is(err, domain.ErrConflict):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLICT", Message: err.Error()})
	}

	zerolog.Ctx(c.UserContext()).Error().Err(err).Str("path", c.Path()).Msg("error interno")
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno del servidor"})
}

func invalidBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
}

// page lee limit/offset de la query con los valores por defecto de dto.PageRequest.
func page(c *fiber.Ctx) dto.PageRequest {
	p := dto.PageRequest{Limit: c.QueryInt("limit", 20), Offset: c.QueryInt("offset", 0)}
	p.DefaultPage()
	return p
}

// uuidParam lee un parámetro de ruta UUID. Uno mal formado no identifica ningún recurso: ErrNotFound.
func uuidParam(c *fiber.Ctx, name string) (string, error) {
	id, err := uuid.Parse(c.Params(name))
	if err != nil {
		return "", domain.ErrNotFound
	}
	return id.String(), nil
}

// uuidQuery valida los filtros UUID presentes en la query.
func uuidQuery(c *fiber.Ctx, names ...string) error {
	verr := domain.NewValidationError()
	for _, name := range names {
		if v := c.Query(name); v != "" {
			if _, err := uuid.Parse(v); err != nil {
				verr.Add(name, domain.CodeUUID, "Debe ser un UUID válido.")
			}
		}
	}
	return verr.OrNil()
}
