package main

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/jhoicas/pos-api/internal/application/auth"
	"github.com/jhoicas/pos-api/internal/application/catalogo"
	"github.com/jhoicas/pos-api/internal/application/dto"
	"github.com/jhoicas/pos-api/internal/application/terceros"
	"github.com/jhoicas/pos-api/internal/domain"
	"github.com/jhoicas/pos-api/internal/domain/entity"
	"github.com/jhoicas/pos-api/internal/domain/repository"
	"github.com/jhoicas/pos-api/pkg/config"
	"github.com/jhoicas/pos-api/pkg/logger"
)

// seeder inserta solo lo que falta; ejecutarlo dos veces no duplica registros.
type seeder struct {
	log         *logger.Logger
	referencias *terceros.ReferenciasUseCase
	grupoUC     *catalogo.GrupoUseCase
	lineaUC     *catalogo.LineaUseCase
	auth        *auth.AuthUseCase
	grupos      repository.GrupoRepository
	lineas      repository.LineaRepository
	usuarios    repository.UsuarioRepository
	admin       config.AdminConfig
}

type resultado struct {
	tipos, canales, grupos, lineas int
	admin                          bool
}

func (s *seeder) run(ctx context.Context, dir string) (resultado, error) {
	var res resultado
	var err error
	if res.tipos, err = s.seedTipos(ctx, filepath.Join(dir, "tipos_identificacion.csv")); err != nil {
		return res, err
	}
	if res.canales, err = s.seedCanales(ctx, filepath.Join(dir, "canales.csv")); err != nil {
		return res, err
	}
	if res.grupos, err = s.seedGrupos(ctx, filepath.Join(dir, "grupos.csv")); err != nil {
		return res, err
	}
	if res.lineas, err = s.seedLineas(ctx, filepath.Join(dir, "lineas.csv")); err != nil {
		return res, err
	}
	res.admin, err = s.seedAdmin(ctx)
	return res, err
}

func (s *seeder) seedTipos(ctx context.Context, path string) (int, error) {
	rows, err := readCSVFile(path, 1)
	if err != nil || rows == nil {
		return 0, err
	}
	existentes, err := s.referencias.ListTipos(ctx)
	if err != nil {
		return 0, err
	}
	nombres := map[string]bool{}
	for _, t := range existentes {
		nombres[strings.ToLower(t.NombreTipo)] = true
	}
	n := 0
	for i, r := range rows {
		nombre := strings.TrimSpace(r[0])
		if nombres[strings.ToLower(nombre)] {
			continue
		}
		in := dto.TipoIdentificacionRequest{NombreTipo: nombre}
		if len(r) > 1 {
			in.Descripcion = r[1]
		}
		if _, err := s.referencias.CreateTipo(ctx, in); err != nil {
			return n, fmt.Errorf("%s fila %d: %w", filepath.Base(path), i+2, err)
		}
		nombres[strings.ToLower(nombre)] = true
		n++
	}
	return n, nil
}

func (s *seeder) seedCanales(ctx context.Context, path string) (int, error) {
	rows, err := readCSVFile(path, 2)
	if err != nil || rows == nil {
		return 0, err
	}
	n := 0
	for i, r := range rows {
		_, err := s.referencias.CreateCanal(ctx, dto.CreateCanalRequest{CanalID: r[0], NombreCanal: r[1]})
		if isDuplicate(err) {
			s.log.Debug().Str("canal_id", r[0]).Msg("canal existente, se omite")
			continue
		}
		if err != nil {
			return n, fmt.Errorf("%s fila %d: %w", filepath.Base(path), i+2, err)
		}
		n++
	}
	return n, nil
}

func (s *seeder) seedGrupos(ctx context.Context, path string) (int, error) {
	rows, err := readCSVFile(path, 2)
	if err != nil || rows == nil {
		return 0, err
	}
	n := 0
	for i, r := range rows {
		_, err := s.grupoUC.Create(ctx, dto.CreateGrupoRequest{CodigoGrupo: r[0], NombreGrupo: r[1]})
		if isDuplicate(err) {
			s.log.Debug().Str("codigo_grupo", r[0]).Msg("grupo existente, se omite")
			continue
		}
		if err != nil {
			return n, fmt.Errorf("%s fila %d: %w", filepath.Base(path), i+2, err)
		}
		n++
	}
	return n, nil
}

func (s *seeder) seedLineas(ctx context.Context, path string) (int, error) {
	rows, err := readCSVFile(path, 3)
	if err != nil || rows == nil {
		return 0, err
	}
	n := 0
	for i, r := range rows {
		fila := fmt.Sprintf("%s fila %d", filepath.Base(path), i+2)
		g, err := s.grupos.GetByCodigo(ctx, strings.TrimSpace(r[1]))
		if err != nil {
			return n, fmt.Errorf("%s: %w", fila, err)
		}
		if g == nil {
			return n, fmt.Errorf("%s: grupo %q no existe", fila, r[1])
		}
		existe, err := s.lineaExiste(ctx, g.ID, strings.TrimSpace(r[0]))
		if err != nil {
			return n, fmt.Errorf("%s: %w", fila, err)
		}
		if existe {
			continue
		}
		if _, err := s.lineaUC.Create(ctx, dto.CreateLineaRequest{CodigoLinea: r[0], GrupoID: g.ID, NombreLinea: r[2]}); err != nil {
			return n, fmt.Errorf("%s: %w", fila, err)
		}
		n++
	}
	return n, nil
}

func (s *seeder) lineaExiste(ctx context.Context, grupoID, codigo string) (bool, error) {
	list, err := s.lineas.List(ctx, grupoID, 1000, 0)
	if err != nil {
		return false, err
	}
	for _, l := range list {
		if strings.EqualFold(l.Codigo, codigo) {
			return true, nil
		}
	}
	return false, nil
}

func (s *seeder) seedAdmin(ctx context.Context) (bool, error) {
	if s.admin.Correo == "" || s.admin.Password == "" {
		return false, nil
	}
	u, err := s.usuarios.GetByCorreo(ctx, strings.ToLower(strings.TrimSpace(s.admin.Correo)))
	if err != nil || u != nil {
		return false, err
	}
	_, err = s.auth.RegistrarUsuario(ctx, dto.CreateUsuarioRequest{
		Correo:   s.admin.Correo,
		Password: s.admin.Password,
		Nombre:   "Administrador",
		Rol:      entity.RolAdmin,
	})
	return err == nil, err
}

func isDuplicate(err error) bool {
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		return verr.HasCode(domain.CodeDuplicate)
	}
	return errors.Is(err, domain.ErrDuplicate)
}

// readCSVFile devuelve las filas sin encabezado; nil si el archivo no existe.
func readCSVFile(path string, minCols int) ([][]string, error) {
	raw, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	rows, err := readCSV(bytes.NewReader(raw), minCols)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	return rows, nil
}

// readCSV lee registros separados por ';'. Si el contenido no es UTF-8 válido se decodifica
// como ISO-8859-1.
func readCSV(r io.Reader, minCols int) ([][]string, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	raw = bytes.TrimPrefix(raw, []byte("\xef\xbb\xbf"))

	var src io.Reader = bytes.NewReader(raw)
	if !utf8.Valid(raw) {
		src = transform.NewReader(src, charmap.ISO8859_1.NewDecoder())
	}

	cr := csv.NewReader(src)
	cr.Comma = ';'
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	records, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return [][]string{}, nil
	}
	out := make([][]string, 0, len(records)-1)
	for i, rec := range records[1:] {
		if len(rec) == 1 && strings.TrimSpace(rec[0]) == "" {
			continue
		}
		if len(rec) < minCols {
			return nil, fmt.Errorf("fila %d: se esperaban %d columnas, hay %d", i+2, minCols, len(rec))
		}
		out = append(out, rec)
	}
	return out, nil
}
