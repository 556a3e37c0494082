package dto

import "strings"

// FieldMapper respuesta que admite proyección de campos: expone sus campos por nombre JSON.
type FieldMapper interface {
	FieldMap() map[string]interface{}
}

// ParseFields convierte "a, b,c" en []string{"a","b","c"}; vacío devuelve nil (todos los campos).
func ParseFields(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	var out []string
	for _, f := range strings.Split(raw, ",") {
		if f = strings.TrimSpace(f); f != "" {
			out = append(out, f)
		}
	}
	return out
}

// Project devuelve solo los campos pedidos de r. Los nombres desconocidos se ignoran;
// sin campos pedidos devuelve todos.
func Project(r FieldMapper, fields []string) map[string]interface{} {
	all := r.FieldMap()
	if len(fields) == 0 {
		return all
	}
	out := make(map[string]interface{}, len(fields))
	for _, f := range fields {
		if v, ok := all[f]; ok {
			out[f] = v
		}
	}
	return out
}
