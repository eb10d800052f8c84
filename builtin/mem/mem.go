// Package mem implements the builtin "mem" protocol handler, an
// in-memory blob store addressed by random UUIDs:
//
//	h := mem.New()
//	u := h.Put([]byte("hello")) // mem://0b9c...-...
//	rc, err := h.Open(ctx, u)
package mem

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"sync"

	"github.com/google/uuid"
	"github.com/vitalvas/urlproto/protocol"
)

// Scheme is the protocol served by Handler.
const Scheme = "mem"

// ErrNotFound is returned when a URL does not name a stored blob.
var ErrNotFound = errors.New("mem: blob not found")

// Handler stores blobs in memory. It is safe for concurrent use.
type Handler struct {
	protocol.Base

	mu    sync.RWMutex
	blobs map[uuid.UUID][]byte
}

// New returns an empty store.
func New() *Handler {
	return &Handler{
		blobs: make(map[uuid.UUID][]byte),
	}
}

// Put stores a copy of data and returns its URL.
func (h *Handler) Put(data []byte) *url.URL {
	id := uuid.New()

	h.mu.Lock()
	h.blobs[id] = bytes.Clone(data)
	h.mu.Unlock()

	return &url.URL{Scheme: h.scheme(), Host: id.String()}
}

// Open returns a reader over the blob named by u.
func (h *Handler) Open(ctx context.Context, u *url.URL) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	id, err := blobID(u)
	if err != nil {
		return nil, err
	}

	h.mu.RLock()
	data, ok := h.blobs[id]
	h.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	return io.NopCloser(bytes.NewReader(data)), nil
}

// Delete removes the blob named by u and reports whether it existed.
func (h *Handler) Delete(u *url.URL) bool {
	id, err := blobID(u)
	if err != nil {
		return false
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.blobs[id]; !ok {
		return false
	}

	delete(h.blobs, id)

	return true
}

// Len returns the number of stored blobs.
func (h *Handler) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.blobs)
}

func (h *Handler) scheme() string {
	if p := h.Protocol(); p != "" {
		return p
	}

	return Scheme
}

func blobID(u *url.URL) (uuid.UUID, error) {
	id, err := uuid.Parse(u.Host)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %q", ErrNotFound, u.Host)
	}

	return id, nil
}
