package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromViper_ValoresPorDefecto(t *testing.T) {
	cfg, err := fromViper(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "pos-api", cfg.App.Name)
	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.Equal(t, 10*time.Second, cfg.HTTP.ReadTimeout)
	assert.True(t, cfg.Pedidos.PrecioEstricto, "por defecto se rechazan ítems sin precio configurado")
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, int32(25), cfg.DB.MaxConns)
	assert.Equal(t, "postgres", cfg.DB.Driver)
}

func TestFromViper_LeeOverrides(t *testing.T) {
	v := viper.New()
	v.Set("HTTP_PORT", "9090")
	v.Set("PEDIDOS_PRECIO_ESTRICTO", "false")
	v.Set("DB_PORT", "no-es-numero")

	cfg, err := fromViper(v)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.False(t, cfg.Pedidos.PrecioEstricto)
	assert.Equal(t, 5432, cfg.DB.Port, "un valor inválido conserva el defecto")
}

func TestFromViper_ProductionExigeSecret(t *testing.T) {
	v := viper.New()
	v.Set("APP_ENV", "production")

	_, err := fromViper(v)
	assert.Error(t, err)
}

func TestDBConfig_ConnectionString(t *testing.T) {
	c := DBConfig{Host: "db", Port: 5432, User: "pos", Password: "p@ss:word", DBName: "pos", SSLMode: "disable"}
	assert.Equal(t, "postgres://pos:p%40ss%3Aword@db:5432/pos?sslmode=disable", c.ConnectionString())

	c.DatabaseURL = "postgres://x@y/z"
	assert.Equal(t, "postgres://x@y/z", c.ConnectionString())
}

func TestFromViper_DriverDeBaseDeDatos(t *testing.T) {
	v := viper.New()
	v.Set("DB_DRIVER", "Memory")
	cfg, err := fromViper(v)
	require.NoError(t, err)
	assert.Equal(t, "memory", cfg.DB.Driver)

	v.Set("DB_DRIVER", "sqlite")
	_, err = fromViper(v)
	assert.Error(t, err)
}
