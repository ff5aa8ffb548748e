// Package algohash exposes the algebraic sponge hashes of this module: typed
// accessors for every shipped instantiation and a name-keyed registry for
// callers that pick one at runtime.
package algohash

import (
	"errors"
	"fmt"
	"math/big"
	"slices"
	"sync"

	"github.com/vocdoni/algohash/field"
	"github.com/vocdoni/algohash/sponge"
)

// ErrUnknownInstance is returned by Lookup for names that are not registered.
var ErrUnknownInstance = errors.New("algohash: unknown instance")

// Digest is a digest in integer form, independent of the field type.
type Digest []*big.Int

// Info describes an instantiation.
type Info struct {
	Name       string
	Family     string
	Field      string
	Modulus    *big.Int
	StateSize  int
	Rate       int
	Capacity   int
	DigestSize int
	Rounds     int
	Alpha      uint64
}

// ElementBytes is the width of one encoded element.
func (i Info) ElementBytes() int { return (i.Modulus.BitLen() + 7) / 8 }

// Instance is the runtime view of an instantiation. Inputs are integers that
// must be canonical, i.e. in [0, p).
type Instance interface {
	Info() Info
	Hash(elems []*big.Int) (Digest, error)
	HashBytes(data []byte) Digest
	Merge(a, b Digest) (Digest, error)
	EncodeDigest(d Digest) ([]byte, error)
	DecodeDigest(b []byte) (Digest, error)
}

// hashFunc is the method set shared by every permutation package.
type hashFunc[E any, P field.Element[E]] interface {
	Hash(elems ...E) sponge.Digest[E, P]
	HashBytes(data []byte) sponge.Digest[E, P]
	Merge(a, b sponge.Digest[E, P]) sponge.Digest[E, P]
}

type instance[E any, P field.Element[E]] struct {
	info Info
	h    hashFunc[E, P]
}

func (in *instance[E, P]) Info() Info {
	i := in.info
	i.Modulus = new(big.Int).Set(in.info.Modulus)
	return i
}

func (in *instance[E, P]) elements(vs []*big.Int) ([]E, error) {
	out := make([]E, len(vs))
	for i, v := range vs {
		e, err := field.Canonical[E, P](v, in.info.Modulus)
		if err != nil {
			return nil, fmt.Errorf("algohash: %s: element %d: %w", in.info.Name, i, err)
		}
		out[i] = e
	}
	return out, nil
}

func (in *instance[E, P]) digest(d Digest) (sponge.Digest[E, P], error) {
	if len(d) != in.info.DigestSize {
		return sponge.Digest[E, P]{}, fmt.Errorf("algohash: %s: digest has %d elements, want %d", in.info.Name, len(d), in.info.DigestSize)
	}
	es, err := in.elements(d)
	if err != nil {
		return sponge.Digest[E, P]{}, err
	}
	return sponge.NewDigest[E, P](es), nil
}

func toDigest[E any, P field.Element[E]](d sponge.Digest[E, P]) Digest {
	return field.ToBigInts[E, P](d.Elements())
}

func (in *instance[E, P]) Hash(elems []*big.Int) (Digest, error) {
	es, err := in.elements(elems)
	if err != nil {
		return nil, err
	}
	return toDigest(in.h.Hash(es...)), nil
}

func (in *instance[E, P]) HashBytes(data []byte) Digest {
	return toDigest(in.h.HashBytes(data))
}

func (in *instance[E, P]) Merge(a, b Digest) (Digest, error) {
	da, err := in.digest(a)
	if err != nil {
		return nil, err
	}
	db, err := in.digest(b)
	if err != nil {
		return nil, err
	}
	return toDigest(in.h.Merge(da, db)), nil
}

func (in *instance[E, P]) EncodeDigest(d Digest) ([]byte, error) {
	dg, err := in.digest(d)
	if err != nil {
		return nil, err
	}
	return dg.Bytes(), nil
}

func (in *instance[E, P]) DecodeDigest(b []byte) (Digest, error) {
	dg, err := sponge.DecodeDigest[E, P](b, in.info.DigestSize)
	if err != nil {
		return nil, fmt.Errorf("algohash: %s: %w", in.info.Name, err)
	}
	return toDigest(dg), nil
}

var (
	registryMu sync.RWMutex
	registry   = map[string]func() Instance{}
)

func register(name string, f func() Instance) {
	registryMu.Lock()
	defer registryMu.Unlock()
	if _, dup := registry[name]; dup {
		panic("algohash: duplicate instance " + name)
	}
	registry[name] = sync.OnceValue(f)
}

// Lookup returns the instantiation registered under name.
func Lookup(name string) (Instance, error) {
	registryMu.RLock()
	f, ok := registry[name]
	registryMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownInstance, name)
	}
	return f(), nil
}

// Names lists the registered instantiations in lexical order.
func Names() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	names := make([]string, 0, len(registry))
	for n := range registry {
		names = append(names, n)
	}
	slices.Sort(names)
	return names
}
