package postgres

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jhoicas/pos-api/internal/domain"
)

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" // unique_violation
	}
	return strings.Contains(err.Error(), "23505")
}

// isForeignKeyViolation verifica si un error es una violación de llave foránea (23503).
func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23503" // foreign_key_violation
	}
	return false
}

// isNumericOutOfRange verifica si un valor no cabe en su columna NUMERIC (22003).
func isNumericOutOfRange(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "22003"
}

// writeErr traduce errores de INSERT/UPDATE: único -> ErrDuplicate, FK -> referencia inexistente.
func writeErr(op string, err error) error {
	switch {
	case isUniqueViolation(err):
		return domain.ErrDuplicate
	case isForeignKeyViolation(err):
		return fmt.Errorf("%s: %w: referencia inexistente", op, domain.ErrInvalidInput)
	case isNumericOutOfRange(err):
		return fmt.Errorf("%s: %w: valor numérico fuera de rango", op, domain.ErrInvalidInput)
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}

// deleteErr traduce errores de DELETE: FK RESTRICT -> ErrEnUso.
func deleteErr(op string, err error) error {
	if isForeignKeyViolation(err) {
		return domain.ErrEnUso
	}
	return fmt.Errorf("%s: %w", op, err)
}

// filtro arma cláusulas WHERE con placeholders posicionales.
type filtro struct {
	conds []string
	args  []any
}

// add agrega una condición; cada "?" se reemplaza por el siguiente placeholder con el mismo valor.
func (f *filtro) add(cond string, val any) {
	f.args = append(f.args, val)
	f.conds = append(f.conds, strings.ReplaceAll(cond, "?", fmt.Sprintf("$%d", len(f.args))))
}

func (f *filtro) where() string {
	if len(f.conds) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(f.conds, " AND ")
}

// page agrega LIMIT/OFFSET como placeholders. limit <= 0 no limita.
func (f *filtro) page(limit, offset int) string {
	s := ""
	if limit > 0 {
		f.args = append(f.args, limit)
		s += fmt.Sprintf(" LIMIT $%d", len(f.args))
	}
	if offset > 0 {
		f.args = append(f.args, offset)
		s += fmt.Sprintf(" OFFSET $%d", len(f.args))
	}
	return s
}
