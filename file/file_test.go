package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	dir := t.TempDir()
	f, err := New(filepath.Join(dir, "test"), os.O_CREATE|os.O_RDWR|os.O_TRUNC)
	assert.Nil(t, err)
	_, err = f.Write([]byte("abc"))
	assert.Nil(t, err)
	assert.Equal(t, int64(3), f.Size())
	assert.Nil(t, f.Delete())
	assert.False(t, Exists(f.Name()))
}

func TestList(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.cdb", "b.cdb", "c.xml"} {
		assert.Nil(t, os.WriteFile(filepath.Join(dir, name), nil, 0766))
	}
	assert.Nil(t, os.Mkdir(filepath.Join(dir, "sub.cdb"), 0766))

	names, err := List(dir, ".cdb")
	assert.Nil(t, err)
	assert.Equal(t, []string{"a.cdb", "b.cdb"}, names)
}
