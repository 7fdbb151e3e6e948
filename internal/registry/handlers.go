package registry

import (
	"fmt"
	"log/slog"

	"github.com/swork/digraph-animator/internal/record"
)

// Register adds the decoder for kind. Registering a kind twice, or under a
// reserved or empty name, is a programming error and panics.
func (r *Registry) Register(kind string, d Decoder) {
	if kind == "" || kind == record.KeyID || kind == record.KeyRef {
		panic(fmt.Sprintf("kind decoder registered with a reserved kind name %q", kind))
	}
	if d == nil {
		panic(fmt.Sprintf("kind decoder for '%s' is nil", kind))
	}
	if _, exists := r.decoders[kind]; exists {
		panic(fmt.Sprintf("kind decoder with name '%s' already registered", kind))
	}
	slog.Debug("Registering kind decoder.", "kind", kind)
	r.decoders[kind] = d
}
