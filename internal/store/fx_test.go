package store

import (
	"context"
	"fmt"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/smallbiznis/feefeefee/internal/config"
	storedomain "github.com/smallbiznis/feefeefee/internal/store/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
	"go.uber.org/zap"
)

func roundTrip(t *testing.T, s storedomain.Store) {
	t.Helper()
	ctx := context.Background()

	_, err := s.Get(ctx, storedomain.KeyLang)
	require.ErrorIs(t, err, storedomain.ErrNotFound)

	require.NoError(t, s.Set(ctx, storedomain.KeyLang, []byte(`"ka"`)))
	got, err := s.Get(ctx, storedomain.KeyLang)
	require.NoError(t, err)
	assert.JSONEq(t, `"ka"`, string(got))
}

func TestNew_Backends(t *testing.T) {
	mr := miniredis.RunT(t)

	cases := []struct {
		name string
		cfg  config.Config
	}{
		{name: "memory", cfg: config.Config{StoreBackend: config.StoreMemory}},
		{name: "sql", cfg: config.Config{
			StoreBackend: config.StoreSQL,
			DBType:       "sqlite",
			DBPath:       fmt.Sprintf("file:%s?mode=memory&cache=shared", "store_fx_sql"),
		}},
		{name: "redis", cfg: config.Config{StoreBackend: config.StoreRedis, RedisAddr: mr.Addr()}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			lc := fxtest.NewLifecycle(t)
			s, err := New(params{Lifecycle: lc, Config: tc.cfg, Log: zap.NewNop()})
			require.NoError(t, err)

			lc.RequireStart()
			defer lc.RequireStop()

			roundTrip(t, s)
		})
	}
}

func TestNew_UnsupportedDialect(t *testing.T) {
	lc := fxtest.NewLifecycle(t)
	_, err := New(params{
		Lifecycle: lc,
		Config:    config.Config{StoreBackend: config.StoreSQL, DBType: "oracle"},
		Log:       zap.NewNop(),
	})
	assert.Error(t, err)
}
