// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ggsurface

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/go-text/typesetting/font"
	"github.com/gogpu/gg/text"
	"github.com/jellydator/ttlcache/v3"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomedium"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/meter"
)

// DefaultFaceTTL is how long a resolved face stays cached after its last
// use.
const DefaultFaceTTL = 5 * time.Minute

// fontKey identifies a typeface independent of size.
type fontKey struct {
	family string
	weight string
}

func keyOf(family, weight string) fontKey {
	return fontKey{
		family: strings.ToLower(strings.TrimSpace(family)),
		weight: normalizeWeight(weight),
	}
}

// normalizeWeight maps CSS weight keywords and numbers onto the names
// faces are registered under.
func normalizeWeight(w string) string {
	switch strings.ToLower(strings.TrimSpace(w)) {
	case "bold", "bolder", "600", "700", "800", "900":
		return "bold"
	case "medium", "500":
		return "medium"
	default:
		return "normal"
	}
}

// typeface is a parsed font file. source renders glyphs, shaped measures
// them with HarfBuzz.
type typeface struct {
	source *text.FontSource
	shaped *font.Font
}

func newTypeface(data []byte) (*typeface, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}
	src, err := text.NewFontSource(data)
	if err != nil {
		return nil, fmt.Errorf("ggsurface: parse font: %w", err)
	}
	tf := &typeface{source: src}
	// The shaping copy is optional; advances are used when it is missing.
	if face, err := font.ParseTTF(bytes.NewReader(data)); err == nil {
		tf.shaped = face.Font
	}
	return tf, nil
}

// resolved is a face at a size together with the typeface it came from.
type resolved struct {
	face     text.Face
	typeface *typeface
}

// FontResolver turns meter fonts into gg text faces.
//
// Faces are looked up by family and weight among registered fonts. An
// unknown family falls back to Go Regular, Go Medium or Go Bold by
// weight, or to Go Mono for families containing "mono". Faces are
// cached per descriptor, so the per-frame SetFont calls of a meter do not
// create new faces.
//
// FontResolver is safe for concurrent use.
type FontResolver struct {
	mu         sync.RWMutex
	registered map[fontKey]*typeface
	builtin    map[string]*typeface

	faces *ttlcache.Cache[string, resolved]
}

// NewFontResolver creates a resolver whose faces expire ttl after their
// last use. A non-positive ttl selects DefaultFaceTTL.
func NewFontResolver(ttl time.Duration) *FontResolver {
	if ttl <= 0 {
		ttl = DefaultFaceTTL
	}
	return &FontResolver{
		registered: make(map[fontKey]*typeface),
		builtin:    make(map[string]*typeface),
		faces: ttlcache.New[string, resolved](
			ttlcache.WithTTL[string, resolved](ttl),
		),
	}
}

// defaultResolver is shared by canvases created without WithFontResolver.
var (
	defaultResolverOnce sync.Once
	defaultResolver     *FontResolver
)

// DefaultFontResolver returns the resolver shared by canvases that were
// not given one.
func DefaultFontResolver() *FontResolver {
	defaultResolverOnce.Do(func() {
		defaultResolver = NewFontResolver(DefaultFaceTTL)
	})
	return defaultResolver
}

// Register makes TrueType or OpenType data available under family and
// weight. Registering again replaces the previous font.
func (r *FontResolver) Register(family, weight string, data []byte) error {
	tf, err := newTypeface(data)
	if err != nil {
		return err
	}
	key := keyOf(family, weight)

	r.mu.Lock()
	r.registered[key] = tf
	r.mu.Unlock()

	// Faces resolved through a fallback are stale now.
	r.faces.DeleteAll()
	meter.Logger().Debug("ggsurface: font registered",
		slog.String("family", key.family), slog.String("weight", key.weight))
	return nil
}

// RegisterFile reads a font file and registers it.
func (r *FontResolver) RegisterFile(family, weight, path string) error {
	// #nosec G304 -- Font file path is provided by the user
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("ggsurface: read font: %w", err)
	}
	return r.Register(family, weight, data)
}

// Families returns the registered family names.
func (r *FontResolver) Families() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	seen := make(map[string]bool)
	var out []string
	for k := range r.registered {
		if !seen[k.family] {
			seen[k.family] = true
			out = append(out, k.family)
		}
	}
	return out
}

// Face returns a face for f.
func (r *FontResolver) Face(f meter.Font) (text.Face, error) {
	res, err := r.resolve(f)
	if err != nil {
		return nil, err
	}
	return res.face, nil
}

func (r *FontResolver) resolve(f meter.Font) (resolved, error) {
	if f.Size <= 0 {
		return resolved{}, fmt.Errorf("%w: %q", ErrNoFace, f)
	}
	desc := f.String()
	if item := r.faces.Get(desc); item != nil {
		return item.Value(), nil
	}

	tf, err := r.typeface(keyOf(f.Family, f.Weight))
	if err != nil {
		return resolved{}, err
	}
	res := resolved{face: tf.source.Face(f.Size), typeface: tf}
	r.faces.Set(desc, res, ttlcache.DefaultTTL)
	return res, nil
}

func (r *FontResolver) typeface(key fontKey) (*typeface, error) {
	r.mu.RLock()
	tf, ok := r.registered[key]
	if !ok {
		// Any weight of a registered family beats a different family.
		for k, v := range r.registered {
			if k.family == key.family {
				tf, ok = v, true
				break
			}
		}
	}
	r.mu.RUnlock()
	if ok {
		return tf, nil
	}
	return r.builtinFor(key)
}

// builtinFor parses the bundled Go font for a key on first use.
func (r *FontResolver) builtinFor(key fontKey) (*typeface, error) {
	name, data := builtinFont(key)

	r.mu.Lock()
	defer r.mu.Unlock()
	if tf, ok := r.builtin[name]; ok {
		return tf, nil
	}
	tf, err := newTypeface(data)
	if err != nil {
		return nil, fmt.Errorf("ggsurface: builtin %s: %w", name, err)
	}
	r.builtin[name] = tf
	return tf, nil
}

func builtinFont(key fontKey) (string, []byte) {
	mono := strings.Contains(key.family, "mono")
	switch {
	case mono && key.weight == "bold":
		return "gomonobold", gomonobold.TTF
	case mono:
		return "gomono", gomono.TTF
	case key.weight == "bold":
		return "gobold", gobold.TTF
	case key.weight == "medium":
		return "gomedium", gomedium.TTF
	default:
		return "goregular", goregular.TTF
	}
}
