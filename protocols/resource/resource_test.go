package resource

import (
	"context"
	"io"
	"io/fs"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vitalvas/urlproto/protocol"
)

func newTestHandler() *Handler {
	h := New()
	h.Mount("", fstest.MapFS{
		"index.html":     {Data: []byte("index")},
		"docs/readme.md": {Data: []byte("readme")},
	})
	h.Mount("assets", fstest.MapFS{
		"img/logo.txt":  {Data: []byte("logo")},
		"a b/space.txt": {Data: []byte("space")},
	})

	return h
}

func open(t *testing.T, h *Handler, spec string) (string, error) {
	t.Helper()

	u, err := h.Parse(spec)
	require.NoError(t, err)

	rc, err := h.Open(context.Background(), u)
	if err != nil {
		return "", err
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	require.NoError(t, err)

	return string(data), nil
}

func TestHandlerOpen(t *testing.T) {
	h := newTestHandler()

	tests := []struct {
		name    string
		spec    string
		want    string
		wantErr error
	}{
		{name: "default mount", spec: "resource:///index.html", want: "index"},
		{name: "nested path", spec: "resource:///docs/readme.md", want: "readme"},
		{name: "named mount", spec: "resource:assets:///img/logo.txt", want: "logo"},
		{name: "escaped path", spec: "resource:assets:///a%20b/space.txt", want: "space"},
		{name: "dot segments are cleaned", spec: "resource:///docs/../index.html", want: "index"},
		{name: "cannot escape mount root", spec: "resource:///../../index.html", want: "index"},
		{name: "unknown mount", spec: "resource:missing:///index.html", wantErr: ErrUnknownMount},
		{name: "missing file", spec: "resource:///missing.txt", wantErr: fs.ErrNotExist},
		{name: "directory", spec: "resource:///docs", wantErr: ErrIsDirectory},
		{name: "root directory", spec: "resource:///", wantErr: ErrIsDirectory},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := open(t, h, tt.spec)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("canceled context", func(t *testing.T) {
		u, err := h.Parse("resource:///index.html")
		require.NoError(t, err)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err = h.Open(ctx, u)
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestHandlerMount(t *testing.T) {
	h := newTestHandler()
	assert.Equal(t, []string{"", "assets"}, h.Mounts())

	h.Mount("assets", nil)
	assert.Equal(t, []string{""}, h.Mounts())

	_, err := open(t, h, "resource:assets:///img/logo.txt")
	assert.ErrorIs(t, err, ErrUnknownMount)
}

func TestRegister(t *testing.T) {
	c := protocol.NewCatalog(nil)
	h := newTestHandler()

	id, err := protocol.Register(h, protocol.WithCatalog(c))
	require.NoError(t, err)

	assert.Equal(t, "resource", id.Protocol)
	assert.Equal(t, "github.com/vitalvas/urlproto/protocols", id.Parent)

	rc, _, err := protocol.Open(context.Background(), c, "resource:assets:///img/logo.txt")
	require.NoError(t, err)
	defer rc.Close()

	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "logo", string(data))
}
