/*
Copyright © 2026 the redoxthermo authors.
This file is part of redoxthermo.

redoxthermo is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

redoxthermo is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with redoxthermo.  If not, see <http://www.gnu.org/licenses/>.
*/

package mpdb

import (
	"context"
	"encoding/gob"
	"fmt"
	"runtime"

	"github.com/ctessum/requestcache"
)

func init() {
	gob.Register([]Entry{})
}

// Cached wraps a Database and memoizes its responses by chemical system.
// Concurrent requests for the same system are deduplicated.
type Cached struct {
	db    Database
	cache *requestcache.Cache
}

// NewCached returns a Cached database that keeps up to size chemical
// systems in memory. If dir is not empty, responses are also stored in
// files in that directory and reused across program runs.
func NewCached(db Database, size int, dir string) *Cached {
	c := &Cached{db: db}
	caches := []requestcache.CacheFunc{requestcache.Deduplicate(), requestcache.Memory(size)}
	if dir != "" {
		caches = append(caches, requestcache.Disk(dir, requestcache.MarshalGob, requestcache.UnmarshalGob))
	}
	c.cache = requestcache.NewCache(c.process, runtime.GOMAXPROCS(-1), caches...)
	return c
}

func (c *Cached) process(ctx context.Context, request interface{}) (interface{}, error) {
	return c.db.EntriesInChemicalSystem(ctx, request.([]string))
}

// EntriesInChemicalSystem implements Database. The returned slice is shared
// with the cache and must not be modified.
func (c *Cached) EntriesInChemicalSystem(ctx context.Context, elements []string) ([]Entry, error) {
	req := c.cache.NewRequest(ctx, elements, ChemicalSystem(elements))
	result, err := req.Result()
	if err != nil {
		return nil, err
	}
	entries, ok := result.([]Entry)
	if !ok {
		return nil, fmt.Errorf("mpdb: cached result has type %T", result)
	}
	return entries, nil
}
