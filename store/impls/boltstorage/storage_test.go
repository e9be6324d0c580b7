// nolint
package boltstorage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/sgostarter/i/commerr"
	"github.com/sgostarter/libeasygo/pathutils"
	"github.com/sgostarter/libtabulated/store"
	"github.com/sgostarter/libtabulated/tabulated"
	"github.com/stretchr/testify/assert"
)

const utRoot = "ut-data"

func TestMain(m *testing.M) {
	_ = os.RemoveAll(utRoot)
	_ = pathutils.MustDirExists(utRoot)

	code := m.Run()

	_ = os.RemoveAll(utRoot)

	os.Exit(code)
}

func Test1(t *testing.T) {
	path := filepath.Join(utRoot, "t1.db")

	stg, err := NewBoltStorage(path, nil)
	assert.Nil(t, err)

	keys, err := stg.Keys()
	assert.Nil(t, err)
	assert.Empty(t, keys)

	_, err = stg.Load("a")
	assert.True(t, errors.Is(err, commerr.ErrNotFound))

	assert.Nil(t, stg.Save("b", "array 2 0.0 0.0 1.0 1.0\n"))
	assert.Nil(t, stg.Save("a", "linkedlist 2 0.0 0.0 1.0 1.0\n"))
	assert.Nil(t, stg.Close())

	stg, err = NewBoltStorage(path, nil)
	assert.Nil(t, err)

	defer stg.Close()

	data, err := stg.Load("a")
	assert.Nil(t, err)
	assert.EqualValues(t, "linkedlist 2 0.0 0.0 1.0 1.0\n", data)

	keys, err = stg.Keys()
	assert.Nil(t, err)
	assert.Equal(t, []string{"a", "b"}, keys)

	assert.Nil(t, stg.Delete("b"))
	assert.True(t, errors.Is(stg.Delete("b"), commerr.ErrNotFound))

	keys, err = stg.Keys()
	assert.Nil(t, err)
	assert.Equal(t, []string{"a"}, keys)
}

func TestWithStore(t *testing.T) {
	stg, err := NewBoltStorage(filepath.Join(utRoot, "store.db"), nil)
	assert.Nil(t, err)

	defer stg.Close()

	s := store.NewStore(stg, nil, nil, nil)

	f, err := tabulated.CreateKindWithValues(tabulated.KindLinkedList, 0, 4, []float64{0, 1, 4, 9, 16})
	assert.Nil(t, err)
	assert.Nil(t, s.Put("squares", f))

	g, err := store.NewStore(stg, nil, nil, nil).Get("squares")
	assert.Nil(t, err)
	assert.Equal(t, tabulated.KindLinkedList, g.Kind())
	assert.True(t, f.Equal(g))
}
