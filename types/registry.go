// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync/atomic"

	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
)

// ErrNotFound is returned when a type name is not in the registry.
var ErrNotFound = errors.New("Cannot find this type.")

// Registry records types by their full name.
type Registry struct {
	types     map[string]*Type
	idCounter uint64
}

// Types is the default registry used by [AddType] and [TypeByName].
var Types = NewRegistry()

// NewRegistry returns a new empty [Registry].
func NewRegistry() *Registry {
	return &Registry{types: map[string]*Type{}}
}

// AddType adds a constructed [Type] to the default registry and returns it.
func AddType(typ *Type) *Type {
	return Types.Add(typ)
}

// TypeByName returns a Type by full or short name from the default registry.
func TypeByName(nm string) (*Type, error) {
	return Types.ByName(nm)
}

// Add adds a constructed [Type] to the registry
// and returns it. This sets the ID.
func (r *Registry) Add(typ *Type) *Type {
	if _, has := r.types[typ.Name]; has {
		slog.Debug("types.Add: Type already exists", "Type.Name", typ.Name)
		return typ
	}
	typ.ID = atomic.AddUint64(&r.idCounter, 1)
	r.types[typ.Name] = typ
	return typ
}

// ByName returns a Type by its full name (package_url.Type) or,
// when unambiguous, by its short name (package.Type) or bare type name.
// It returns an error wrapping [ErrNotFound] otherwise.
func (r *Registry) ByName(nm string) (*Type, error) {
	nm = strings.TrimSpace(nm)
	if tp, ok := r.types[nm]; ok {
		return tp, nil
	}
	var found *Type
	for _, tp := range r.types {
		sn := tp.ShortName()
		if sn != nm && sn[strings.LastIndex(sn, ".")+1:] != nm {
			continue
		}
		if found != nil {
			return nil, fmt.Errorf("%w %q is ambiguous", ErrNotFound, nm)
		}
		found = tp
	}
	if found == nil {
		return nil, fmt.Errorf("%w %q", ErrNotFound, nm)
	}
	return found, nil
}

// All returns all registered types sorted by name.
func (r *Registry) All() []*Type {
	res := make([]*Type, 0, len(r.types))
	for _, tp := range r.types {
		res = append(res, tp)
	}
	sort.Slice(res, func(i, j int) bool { return res[i].Name < res[j].Name })
	return res
}

// Suggest returns the short name of the registered type that is most
// similar to the given name, or "" if nothing is close enough.
func (r *Registry) Suggest(nm string) string {
	lev := metrics.NewLevenshtein()
	lev.CaseSensitive = false
	best, bestSim := "", 0.5
	for _, tp := range r.All() {
		sn := tp.ShortName()
		for _, cand := range []string{sn, sn[strings.LastIndex(sn, ".")+1:]} {
			if sim := strutil.Similarity(nm, cand, lev); sim > bestSim {
				best, bestSim = sn, sim
			}
		}
	}
	return best
}
