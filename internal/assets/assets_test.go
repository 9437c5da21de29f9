package assets

import (
	"bytes"
	"errors"
	"image"
	"image/png"
	"io/fs"
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/orrery/internal/engine/texture"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, w, h))))
	return buf.Bytes()
}

func TestManagerLayering(t *testing.T) {
	base := fstest.MapFS{
		"textures/earth.jpg": {Data: []byte("base")},
		"textures/moon.jpg":  {Data: []byte("moon")},
	}
	override := fstest.MapFS{
		"textures/earth.jpg": {Data: []byte("override")},
	}
	m := NewManager(base)
	m.AddSource(override)

	data, err := m.Load("textures/earth.jpg")
	require.NoError(t, err)
	assert.Equal(t, "override", string(data))

	data, err = m.Load("./textures/moon.jpg")
	require.NoError(t, err)
	assert.Equal(t, "moon", string(data))

	_, err = m.Load("textures/mars.jpg")
	assert.ErrorIs(t, err, fs.ErrNotExist)

	_, err = m.Load("../secret")
	assert.Error(t, err)
}

func TestCacheStats(t *testing.T) {
	m := NewManager(fstest.MapFS{"a.bin": {Data: []byte{1}}})

	_, err := m.Load("a.bin")
	require.NoError(t, err)
	_, err = m.Load("a.bin")
	require.NoError(t, err)

	hits, misses := m.Cache().Stats()
	assert.Equal(t, int64(1), hits)
	assert.Equal(t, int64(1), misses)

	m.Cache().Clear()
	hits, misses = m.Cache().Stats()
	assert.Zero(t, hits)
	assert.Zero(t, misses)
}

// pollUntil polls l until want futures have resolved or the deadline passes.
func pollUntil(t *testing.T, l *Loader, want int) {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	got := 0
	for got < want {
		got += l.Poll()
		if time.Now().After(deadline) {
			t.Fatalf("resolved %d of %d loads before deadline", got, want)
		}
		time.Sleep(time.Millisecond)
	}
}

func TestLoaderResolvesOnlyOnPoll(t *testing.T) {
	fsys := fstest.MapFS{"earth.png": {Data: pngBytes(t, 4, 2)}}
	l := NewLoader(NewManager(fsys), 2)
	defer l.Close()

	var got *texture.Image
	f := l.LoadTexture("earth.png").Then(func(img *texture.Image) { got = img })

	// Give the worker time to finish; nothing is applied without Poll.
	time.Sleep(20 * time.Millisecond)
	assert.False(t, f.Done())
	assert.Nil(t, got)
	assert.Equal(t, 1, l.Pending())

	pollUntil(t, l, 1)

	require.True(t, f.Done())
	require.NotNil(t, got)
	assert.Equal(t, 4, got.Width)
	assert.Equal(t, 0, l.Pending())
}

func TestLoaderFailureRunsCatch(t *testing.T) {
	fsys := fstest.MapFS{"broken.png": {Data: []byte("nope")}}
	l := NewLoader(NewManager(fsys), 1)
	defer l.Close()

	var errs []error
	thenCalled := false
	l.LoadTexture("missing.png").
		Then(func(*texture.Image) { thenCalled = true }).
		Catch(func(err error) { errs = append(errs, err) })
	l.LoadTexture("broken.png").
		Catch(func(err error) { errs = append(errs, err) })

	pollUntil(t, l, 2)

	assert.False(t, thenCalled)
	require.Len(t, errs, 2)
	assert.True(t, errors.Is(errs[0], fs.ErrNotExist) || errors.Is(errs[1], fs.ErrNotExist))
}

func TestFutureThenAfterResolve(t *testing.T) {
	l := NewLoader(NewManager(fstest.MapFS{"a.txt": {Data: []byte("hi")}}), 1)
	defer l.Close()

	f := l.LoadBytes("a.txt")
	pollUntil(t, l, 1)

	var got string
	f.Then(func(b []byte) { got = string(b) })
	assert.Equal(t, "hi", got, "Then on a resolved future runs immediately")

	v, err := f.Result()
	require.NoError(t, err)
	assert.Equal(t, "hi", string(v))
	assert.Equal(t, "a.txt", f.Name())
}

func TestLoaderAfterClose(t *testing.T) {
	l := NewLoader(NewManager(fstest.MapFS{}), 1)
	l.Close()
	l.Close()

	var err error
	l.LoadBytes("a.txt").Catch(func(e error) { err = e })
	assert.Equal(t, 1, l.Poll())
	assert.ErrorIs(t, err, ErrClosed)
}
