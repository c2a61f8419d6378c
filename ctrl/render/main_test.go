package main

import (
	"github.com/celskeggs/waveview/wave/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"os"
	"testing"
)

func TestWindow(t *testing.T) {
	full := model.MakeRange(0, 1000)
	assert.Equal(t, full, options{}.window(full))
	assert.Equal(t, model.MakeRange(100, 1000), options{start: 100, hasStart: true}.window(full))
	assert.Equal(t, model.MakeRange(100, 200), options{start: 100, end: 200, hasStart: true, hasEnd: true}.window(full))
	assert.Equal(t, model.MakeRange(0, 1000), options{start: 0, end: 5000, hasStart: true, hasEnd: true}.window(full))
	assert.Equal(t, full, options{start: 300, end: 200, hasStart: true, hasEnd: true}.window(full))
}

func TestWindowNegativeBounds(t *testing.T) {
	full := model.MakeRange(-500, 1000)
	assert.Equal(t, model.MakeRange(-200, 1000), options{start: -200, hasStart: true}.window(full))
	assert.Equal(t, model.MakeRange(-500, -1), options{end: -1, hasEnd: true}.window(full))
	assert.Equal(t, model.MakeRange(-300, -100), options{start: -300, end: -100, hasStart: true, hasEnd: true}.window(full))
}

func withArgs(t *testing.T, args ...string) {
	saved := os.Args
	os.Args = append([]string{"render"}, args...)
	t.Cleanup(func() { os.Args = saved })
}

func TestParseOptionsWindowFlags(t *testing.T) {
	withArgs(t, "out.png", "--start", "-1", "--end", "-0.5")
	opts, err := parseOptions()
	require.NoError(t, err)
	assert.True(t, opts.hasStart)
	assert.True(t, opts.hasEnd)
	assert.Equal(t, -1.0, opts.start)
	assert.Equal(t, -0.5, opts.end)
	assert.Equal(t, model.MakeRange(-1, -0.5), opts.window(model.MakeRange(-10, 10)))

	withArgs(t, "out.png")
	opts, err = parseOptions()
	require.NoError(t, err)
	assert.False(t, opts.hasStart)
	assert.False(t, opts.hasEnd)
	assert.Equal(t, 1024, opts.width)
}
