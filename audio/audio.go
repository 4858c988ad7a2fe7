// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"io"
	"sync"
)

// Decoder constructs a Buffer from an input reader by decoding the entire
// stream into memory.
type Decoder interface {
	Decode(r io.Reader) (*Buffer, error)
}

// Registry maps format keys (e.g., "wav", "mp3", "ogg", "aiff") to decoders.
type Registry struct {
	codecs map[string]Decoder

	mtx *sync.Mutex
}

func NewRegistry() *Registry {
	return &Registry{
		codecs: make(map[string]Decoder),
		mtx:    &sync.Mutex{},
	}
}

func (r *Registry) Register(format string, d Decoder) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.codecs[format] = d
}

func (r *Registry) Get(format string) (Decoder, bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	d, ok := r.codecs[format]
	return d, ok
}
