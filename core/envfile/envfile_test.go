package envfile

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Run("Comment Blank And URI", func(t *testing.T) {
		rec := ParseString("# Database\n\nMONGODB_URI=mongodb://localhost:27017/x  \n")

		assert.Equal(t, []string{KeyMongoURI}, rec.Keys())
		uri, ok := rec.Get(KeyMongoURI)
		assert.True(t, ok)
		assert.Equal(t, "mongodb://localhost:27017/x", uri)
	})

	t.Run("Splits On First Equals", func(t *testing.T) {
		rec := ParseString("MONGODB_URI=mongodb://h/db?w=majority&retryWrites=true")

		uri, _ := rec.Get(KeyMongoURI)
		assert.Equal(t, "mongodb://h/db?w=majority&retryWrites=true", uri)
	})

	t.Run("Trims Key And Value", func(t *testing.T) {
		rec := ParseString("  NEXTAUTH_URL =  http://localhost:3000 \r\n")

		v, ok := rec.Get(KeyNextAuthURL)
		assert.True(t, ok)
		assert.Equal(t, "http://localhost:3000", v)
	})

	t.Run("Ignores Malformed Lines", func(t *testing.T) {
		rec := ParseString("just some text\n=orphan\n  # indented comment\nA=1\n")

		assert.Equal(t, []string{"A"}, rec.Keys())
	})

	t.Run("Empty Value Is Kept", func(t *testing.T) {
		rec := ParseString("MONGODB_URI=\n")

		v, ok := rec.Get(KeyMongoURI)
		assert.True(t, ok)
		assert.Empty(t, v)
	})

	t.Run("Last Value Wins", func(t *testing.T) {
		rec := ParseString("A=1\nB=2\nA=3\n")

		assert.Equal(t, 2, rec.Len())
		assert.Equal(t, []string{"A", "B"}, rec.Keys())
		v, _ := rec.Get("A")
		assert.Equal(t, "3", v)
	})

	t.Run("Long Line Does Not Drop Following Keys", func(t *testing.T) {
		long := strings.Repeat("a", 100*1024)
		rec, err := Parse(strings.NewReader("HUGE=" + long + "\nMONGODB_URI=mongodb://localhost:27017/x\n"))
		require.NoError(t, err)

		assert.Equal(t, []string{"HUGE", KeyMongoURI}, rec.Keys())
		v, _ := rec.Get("HUGE")
		assert.Len(t, v, len(long))
		uri, ok := rec.Get(KeyMongoURI)
		assert.True(t, ok)
		assert.Equal(t, "mongodb://localhost:27017/x", uri)
	})

	t.Run("Final Line Without Newline", func(t *testing.T) {
		rec, err := Parse(strings.NewReader("A=1\nB=2"))
		require.NoError(t, err)

		v, ok := rec.Get("B")
		assert.True(t, ok)
		assert.Equal(t, "2", v)
	})

	t.Run("Read Error Is Returned", func(t *testing.T) {
		_, err := Parse(failingReader{})
		assert.Error(t, err)
	})
}

func TestRecord_ZeroValue(t *testing.T) {
	var rec Record

	_, ok := rec.Get(KeyMongoURI)
	assert.False(t, ok)
	assert.Equal(t, 0, rec.Len())
	assert.Empty(t, rec.Keys())
}

func TestRecord_KeysReturnsCopy(t *testing.T) {
	rec := ParseString("A=1\n")

	keys := rec.Keys()
	keys[0] = "mutated"

	assert.Equal(t, []string{"A"}, rec.Keys())
}

func TestLoad(t *testing.T) {
	t.Run("Missing File", func(t *testing.T) {
		rec, found, err := Load(Path(t.TempDir()))

		require.NoError(t, err)
		assert.False(t, found)
		assert.Equal(t, 0, rec.Len())
	})

	t.Run("Existing File", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte("MONGODB_URI=mongodb://db:27017/app\n"), 0o600))

		rec, found, err := Load(Path(dir))

		require.NoError(t, err)
		assert.True(t, found)
		uri, _ := rec.Get(KeyMongoURI)
		assert.Equal(t, "mongodb://db:27017/app", uri)
	})

	t.Run("Path Is Directory", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.Mkdir(filepath.Join(dir, FileName), 0o700))

		_, found, err := Load(Path(dir))

		assert.Error(t, err)
		assert.True(t, found)
	})
}

func TestExists(t *testing.T) {
	dir := t.TempDir()
	assert.False(t, Exists(Path(dir)))

	require.NoError(t, os.WriteFile(Path(dir), nil, 0o600))
	assert.True(t, Exists(Path(dir)))
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("read failed")
}
