package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "Bouncing Balls", cfg.Window.Title)
	assert.Equal(t, 800, cfg.Window.Width)
	assert.Equal(t, 600, cfg.Window.Height)
	assert.Equal(t, 16, cfg.Timing.FrameIntervalMs())
	assert.Equal(t, 100, cfg.Timing.InitialDelayMs)
	assert.Equal(t, 7, cfg.Balls.Count)
}

func TestDecodeOverridesDefaults(t *testing.T) {
	cfg, err := Decode(strings.NewReader(`
[balls]
count = 3
step = 0.1

[camera]
eye = [1.0, 2.0, 3.0]
`))
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Balls.Count)
	assert.Equal(t, 0.1, cfg.Balls.Step)
	assert.Equal(t, [3]float64{1, 2, 3}, cfg.Camera.Eye)
	assert.Equal(t, 0.5, cfg.Balls.Radius, "untouched keys keep defaults")
	assert.Equal(t, 60, cfg.Timing.FPS)
}

func TestDecodeRejectsUnknownKeys(t *testing.T) {
	_, err := Decode(strings.NewReader("[balls]\ncolour = \"red\"\n"))
	require.ErrorIs(t, err, ErrInvalid)
	assert.Contains(t, err.Error(), "balls.colour")
}

func TestDecodeRejectsInvalidValues(t *testing.T) {
	for name, doc := range map[string]string{
		"negative radius": "[balls]\nradius = -1\n",
		"inverted bounds": "[balls]\nfloor = 5.0\nceiling = 1.0\n",
		"zero fps":        "[timing]\nfps = 0\n",
		"zero height":     "[window]\nheight = 0\n",
		"no balls":        "[balls]\ncount = 0\n",
		"floor in board":  "[balls]\nradius = 1.0\n",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(doc))
			assert.ErrorIs(t, err, ErrInvalid)
		})
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bouncer.toml")
	require.NoError(t, os.WriteFile(path, []byte("[hud]\nenabled = false\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.False(t, cfg.HUD.Enabled)

	_, err = Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)

	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestEncodeRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Default().Encode(&buf))

	cfg, err := Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}
