package protocol

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPackageList(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  []string
	}{
		{name: "empty", value: "", want: nil},
		{name: "pipe delimited", value: "a/b|c/d", want: []string{"a/b", "c/d"}},
		{name: "colon delimited", value: "a/b:c/d", want: []string{"a/b", "c/d"}},
		{name: "duplicates dropped", value: "a/b|c/d|a/b", want: []string{"a/b", "c/d"}},
		{name: "blank and trailing slash", value: " |e/f/| e/f ", want: []string{"e/f"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewPackageList(tt.value).Packages())
		})
	}
}

func TestPackageList(t *testing.T) {
	t.Run("add once", func(t *testing.T) {
		l := NewPackageList("")

		assert.True(t, l.AddOnce("github.com/acme/protocols"))
		assert.False(t, l.AddOnce("github.com/acme/protocols"))
		assert.False(t, l.AddOnce("github.com/acme/protocols/"))
		assert.False(t, l.AddOnce(""))
		assert.True(t, l.AddOnce("github.com/other/protocols"))

		assert.Equal(t, 2, l.Len())
		assert.Equal(t, "github.com/acme/protocols|github.com/other/protocols", l.String())
	})

	t.Run("keeps registration order", func(t *testing.T) {
		l := NewPackageList("z")
		l.AddOnce("a")
		l.AddOnce("m")

		assert.Equal(t, []string{"z", "a", "m"}, l.Packages())
	})

	t.Run("contains", func(t *testing.T) {
		l := NewPackageList("a/b")

		assert.True(t, l.Contains("a/b"))
		assert.False(t, l.Contains("a"))
	})

	t.Run("packages returns a copy", func(t *testing.T) {
		l := NewPackageList("a|b")

		pkgs := l.Packages()
		pkgs[0] = "changed"

		assert.Equal(t, []string{"a", "b"}, l.Packages())
	})

	t.Run("concurrent add", func(t *testing.T) {
		l := NewPackageList("")

		var wg sync.WaitGroup
		for i := range 50 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				l.AddOnce("shared")
				l.AddOnce(fmt.Sprintf("pkg%d", i%10))
			}()
		}
		wg.Wait()

		assert.Equal(t, 11, l.Len())
	})
}
