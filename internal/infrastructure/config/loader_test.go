package config

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoader_LoadGame(t *testing.T) {
	loader := NewLoader("../../../cmd/game/configs")

	cfg, err := loader.LoadGame()
	require.NoError(t, err)

	assert.Equal(t, 20, cfg.World.Width)
	assert.Equal(t, 15, cfg.World.Height)
	assert.Equal(t, 5, cfg.World.EnemyCount)
	assert.Equal(t, 10, cfg.World.ItemCount)
	assert.Equal(t, 100, cfg.World.MaxPlacementAttempts)
	assert.InDelta(t, 0.70, cfg.World.Terrain.Grass, 1e-9)
	assert.Equal(t, 20, cfg.Rules.AttackCooldown)
	assert.Equal(t, 10, cfg.Rules.AttackWindowEnd)
	assert.Equal(t, 60, cfg.Rules.TickRate)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoader_LoadLayout(t *testing.T) {
	loader := NewLoader("../../../cmd/game/configs")

	layout, err := loader.LoadLayout("lake")
	require.NoError(t, err)

	assert.Equal(t, "lake", layout.ID)
	assert.Len(t, layout.Rows, 15)
	assert.Len(t, layout.Rows[0], 20)
}

func TestLoader_LoadLayout_Missing(t *testing.T) {
	loader := NewLoader("../../../cmd/game/configs")

	_, err := loader.LoadLayout("nope")
	assert.Error(t, err)
}

func TestLoader_LoadAll(t *testing.T) {
	loader := NewLoader("../../../cmd/game/configs")

	cfg, err := loader.LoadAll()
	require.NoError(t, err)

	assert.Nil(t, cfg.Layout, "shipped config uses generated terrain")
	assert.NoError(t, cfg.Validate())
}

func TestLoader_MissingFieldsKeepDefaults(t *testing.T) {
	fsys := fstest.MapFS{
		GameFile: {Data: []byte(`{"world": {"enemyCount": 2}, "rules": {"pruneCollectedItems": true}}`)},
	}
	loader := NewFSLoader(fsys, "mem")

	cfg, err := loader.LoadAll()
	require.NoError(t, err)

	assert.Equal(t, 2, cfg.World.EnemyCount)
	assert.Equal(t, DefaultItemCount, cfg.World.ItemCount)
	assert.Equal(t, DefaultWidth, cfg.World.Width)
	assert.Equal(t, DefaultTerrain, cfg.World.Terrain)
	assert.True(t, cfg.Rules.PruneCollectedItems)
	assert.Equal(t, DefaultPlayerMaxHealth, cfg.Rules.PlayerMaxHealth)
}

func TestLoader_LayoutOverridesSize(t *testing.T) {
	fsys := fstest.MapFS{
		GameFile: {Data: []byte(`{"world": {"layout": "tiny"}}`)},
		"layouts/tiny.json": {Data: []byte(`{"id": "tiny", "rows": ["~~~~", "~..~", "~~~~"]}`)},
	}
	loader := NewFSLoader(fsys, "mem")

	cfg, err := loader.LoadAll()
	require.NoError(t, err)

	require.NotNil(t, cfg.Layout)
	assert.Equal(t, 4, cfg.World.Width)
	assert.Equal(t, 3, cfg.World.Height)
}

func TestLoader_RaggedLayoutRejected(t *testing.T) {
	fsys := fstest.MapFS{
		GameFile: {Data: []byte(`{"world": {"layout": "bad"}}`)},
		"layouts/bad.json": {Data: []byte(`{"id": "bad", "rows": ["~~~~", "~.~", "~~~~"]}`)},
	}

	_, err := NewFSLoader(fsys, "mem").LoadAll()
	assert.Error(t, err)
}

func TestLoader_BadJSON(t *testing.T) {
	fsys := fstest.MapFS{
		GameFile: {Data: []byte(`{"world": `)},
	}

	_, err := NewFSLoader(fsys, "mem").LoadGame()
	assert.Error(t, err)
}

func TestLoader_ApplyLayout(t *testing.T) {
	loader := NewLoader("../../../cmd/game/configs")
	cfg := Default()

	require.NoError(t, loader.ApplyLayout(cfg, "lake"))
	require.NotNil(t, cfg.Layout)
	assert.Equal(t, "lake", cfg.World.Layout)
	assert.Equal(t, 20, cfg.World.Width)
	assert.NoError(t, cfg.Validate())

	require.NoError(t, loader.ApplyLayout(cfg, ""))
	assert.Nil(t, cfg.Layout)
	assert.Empty(t, cfg.World.Layout)

	assert.Error(t, loader.ApplyLayout(cfg, "nope"))
}
