package db

import (
	"fmt"
	"testing"

	"github.com/smallbiznis/feefeefee/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDialect(t *testing.T) {
	cases := []struct {
		dbType string
		name   string
	}{
		{dbType: "sqlite", name: "sqlite"},
		{dbType: "", name: "sqlite"},
		{dbType: "postgres", name: "postgres"},
		{dbType: "MySQL", name: "mysql"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d, err := Dialect(config.Config{DBType: tc.dbType, DBPath: ":memory:"})
			require.NoError(t, err)
			assert.Equal(t, tc.name, d.Name())
		})
	}

	_, err := Dialect(config.Config{DBType: "oracle"})
	assert.Error(t, err)
}

func TestOpen_SQLite(t *testing.T) {
	conn, err := Open(config.Config{
		DBType:        "sqlite",
		DBPath:        fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name()),
		DBMaxOpenConn: 1,
	})
	require.NoError(t, err)

	var one int
	require.NoError(t, conn.Raw("SELECT 1").Scan(&one).Error)
	assert.Equal(t, 1, one)
}
