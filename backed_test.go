package mmapbuf_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/hupe1980/mmapbuf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_ZeroFilled(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.data")

	buf, err := mmapbuf.New[int32](100, path)
	require.NoError(t, err)
	defer buf.Close()

	require.Equal(t, 100, buf.Len())
	for i := 0; i < 100; i++ {
		assert.Equal(t, int32(0), buf.Get(i))
	}

	fi, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, int64(400), fi.Size())
}

func TestRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.data")

	buf, err := mmapbuf.New[int32](100, path)
	require.NoError(t, err)

	buf.Set(10, -10)
	buf.Set(20, 27)
	require.NoError(t, buf.Close())

	loaded, err := mmapbuf.Load[int32](path)
	require.NoError(t, err)
	defer loaded.Close()

	require.Equal(t, 100, loaded.Len())
	for i := 0; i < 100; i++ {
		switch i {
		case 10:
			assert.Equal(t, int32(-10), loaded.Get(i))
		case 20:
			assert.Equal(t, int32(27), loaded.Get(i))
		default:
			assert.Equal(t, int32(0), loaded.Get(i))
		}
	}
}

func TestLoad_Read(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test")
	require.NoError(t, os.WriteFile(path, []byte("hello, world!"), 0o644))

	buf, err := mmapbuf.Load[byte](path)
	require.NoError(t, err)
	defer buf.Close()

	assert.Equal(t, []byte("hello, world!"), buf.Slice())
}

func TestLoad_OverwriteInPlace(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test")
	require.NoError(t, os.WriteFile(path, []byte("hello, world!"), 0o644))

	buf, err := mmapbuf.Load[byte](path)
	require.NoError(t, err)

	n := buf.CopyFrom([]byte("halle, werld!"))
	assert.Equal(t, 13, n)
	assert.Equal(t, []byte("halle, werld!"), buf.Slice())
	require.NoError(t, buf.Close())

	// The overwrite must have reached the file.
	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []byte("halle, werld!"), got)
}

func TestLocking(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	a, err := mmapbuf.Load[byte](path)
	require.NoError(t, err)

	_, err = mmapbuf.Load[byte](path)
	assert.ErrorIs(t, err, mmapbuf.ErrLockUnavailable)

	// Fine again once the first instance is gone.
	require.NoError(t, a.Close())

	b, err := mmapbuf.Load[byte](path)
	require.NoError(t, err)
	require.NoError(t, b.Close())
}

func TestLoad_LayoutMismatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test")
	require.NoError(t, os.WriteFile(path, []byte("hello, world!"), 0o644))

	_, err := mmapbuf.Load[int32](path)
	require.Error(t, err)

	var layoutErr *mmapbuf.LayoutError
	require.ErrorAs(t, err, &layoutErr)
	assert.Equal(t, 13, layoutErr.ByteLen)
	assert.Equal(t, 4, layoutErr.ElemSize)

	// The rejected load must not have locked the file.
	buf, err := mmapbuf.Load[byte](path)
	require.NoError(t, err)
	require.NoError(t, buf.Close())
}

func TestLoad_Missing(t *testing.T) {
	_, err := mmapbuf.Load[int32](filepath.Join(t.TempDir(), "missing.data"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestNew_Truncates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.data")
	require.NoError(t, os.WriteFile(path, []byte("leftover content"), 0o644))

	buf, err := mmapbuf.New[int64](4, path)
	require.NoError(t, err)
	defer buf.Close()

	assert.Equal(t, []int64{0, 0, 0, 0}, buf.Slice())

	fi, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, int64(32), fi.Size())
}

func TestNew_NegativeCapacity(t *testing.T) {
	_, err := mmapbuf.New[int32](-1, filepath.Join(t.TempDir(), "test.data"))
	assert.Error(t, err)
}

func TestNew_ZeroCapacity(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.data")

	buf, err := mmapbuf.New[int32](0, path)
	require.NoError(t, err)

	assert.Equal(t, 0, buf.Len())
	assert.Nil(t, buf.Slice())

	fi, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, int64(0), fi.Size())

	// Empty buffers still hold the lock.
	_, err = mmapbuf.Load[int32](path)
	assert.ErrorIs(t, err, mmapbuf.ErrLockUnavailable)

	require.NoError(t, buf.Close())

	loaded, err := mmapbuf.Load[int32](path)
	require.NoError(t, err)
	assert.Equal(t, 0, loaded.Len())
	require.NoError(t, loaded.Close())
}

func TestFromSlice(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.data")
	data := []float64{1.5, -2.25, 3.125}

	buf, err := mmapbuf.FromSlice(data, path)
	require.NoError(t, err)

	require.Equal(t, len(data), buf.Len())
	assert.Equal(t, data, buf.Slice())
	require.NoError(t, buf.Close())

	loaded, err := mmapbuf.Load[float64](path)
	require.NoError(t, err)
	defer loaded.Close()

	assert.Equal(t, data, loaded.Slice())
}

func TestBackedBuffer_CloseIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.data")

	buf, err := mmapbuf.New[uint16](8, path)
	require.NoError(t, err)

	assert.Equal(t, path, buf.Path())

	require.NoError(t, buf.Close())
	require.NoError(t, buf.Close())

	assert.Nil(t, buf.Slice())
	assert.Equal(t, 0, buf.Len())
}

func TestBackedBuffer_Flush(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.data")

	buf, err := mmapbuf.New[uint32](16, path, mmapbuf.WithSyncOnClose(true))
	require.NoError(t, err)
	defer buf.Close()

	buf.Set(3, 0xDEAD)
	require.NoError(t, buf.Flush())
}

func TestBackedBuffer_Advise(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.data")

	buf, err := mmapbuf.New[uint32](16, path, mmapbuf.WithAdvise(mmapbuf.AccessRandom))
	require.NoError(t, err)
	defer buf.Close()

	assert.NoError(t, buf.Advise(mmapbuf.AccessSequential))
}

func TestLockError_NotWrappedAsLayout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test")
	require.NoError(t, os.WriteFile(path, make([]byte, 8), 0o644))

	a, err := mmapbuf.Load[int32](path)
	require.NoError(t, err)
	defer a.Close()

	_, err = mmapbuf.Load[int32](path)
	require.ErrorIs(t, err, mmapbuf.ErrLockUnavailable)

	var layoutErr *mmapbuf.LayoutError
	assert.False(t, errors.As(err, &layoutErr))
}
