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
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/cenkalti/backoff"
	"github.com/kr/pretty"
	"github.com/sirupsen/logrus"
)

const testDatabase = `
[[entry]]
composition = "Sr8Fe8O24"
energy_per_atom = -6.70
entry_id = "mp-2"

[[entry]]
composition = "Sr8Fe8O24"
energy_per_atom = -6.75
entry_id = "mp-1"

[[entry]]
composition = "Sr32Fe32O80"
energy_per_atom = -6.90
entry_id = "mp-3"

[[entry]]
composition = "O2"
energy_per_atom = -4.95
entry_id = "mp-12957"

[[entry]]
composition = "O8"
energy_per_atom = -4.96
entry_id = "mp-1180008"

[[entry]]
composition = "Ca1Mn1O3"
energy_per_atom = -7.0
entry_id = "mp-4"
`

func readTestDatabase(t *testing.T) *Static {
	db, err := ReadStatic(strings.NewReader(testDatabase))
	if err != nil {
		t.Fatal(err)
	}
	return db
}

func TestStatic(t *testing.T) {
	db := readTestDatabase(t)
	entries, err := db.EntriesInChemicalSystem(context.Background(), []string{"Sr", "Fe", "O"})
	if err != nil {
		t.Fatal(err)
	}
	var ids []string
	for _, e := range entries {
		ids = append(ids, e.EntryID)
	}
	want := []string{"mp-2", "mp-1", "mp-3", "mp-12957", "mp-1180008"}
	if diff := pretty.Diff(ids, want); len(diff) > 0 {
		t.Errorf("entries: %v", diff)
	}
}

func TestMostStable(t *testing.T) {
	db := readTestDatabase(t)
	e, err := MostStable(db.Entries, "SrFeO3")
	if err != nil {
		t.Fatal(err)
	}
	if e.EntryID != "mp-1" {
		t.Errorf("have %s, want mp-1", e.EntryID)
	}
	o, err := MostStableExact(db.Entries, "O2")
	if err != nil {
		t.Fatal(err)
	}
	if o.EntryID != "mp-12957" {
		t.Errorf("O2: have %s, want mp-12957", o.EntryID)
	}
	if o, _ := MostStable(db.Entries, "O2"); o.EntryID != "mp-1180008" {
		t.Errorf("reduced O2: have %s, want mp-1180008", o.EntryID)
	}
	_, err = MostStable(db.Entries, "Ba8Fe8O24")
	if !errors.Is(err, ErrMissingEntry) {
		t.Errorf("have %v, want %v", err, ErrMissingEntry)
	}
}

func TestChemicalSystem(t *testing.T) {
	if have, want := ChemicalSystem([]string{"Sr", "Fe", "O", "Sr"}), "Fe-O-Sr"; have != want {
		t.Errorf("have %s, want %s", have, want)
	}
}

func testClient(url string) *Client {
	log := logrus.New()
	log.Out = os.Stderr
	return &Client{
		BaseURL: url,
		APIKey:  "key",
		NewBackOff: func() backoff.BackOff {
			return backoff.WithMaxRetries(&backoff.ZeroBackOff{}, 3)
		},
		Log: log,
	}
}

func TestClient(t *testing.T) {
	var calls int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		if r.Header.Get("X-API-KEY") != "key" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		if r.URL.Path != "/materials/Fe-O-Sr/entries" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		json.NewEncoder(w).Encode(clientResponse{Response: []Entry{
			{Composition: "Sr8Fe8O24", EnergyPerAtom: -6.75, EntryID: "mp-1"},
		}})
	}))
	defer ts.Close()

	c := testClient(ts.URL)
	entries, err := c.EntriesInChemicalSystem(context.Background(), []string{"Sr", "Fe", "O"})
	if err != nil {
		t.Fatal(err)
	}
	want := []Entry{{Composition: "Sr8Fe8O24", EnergyPerAtom: -6.75, EntryID: "mp-1"}}
	if diff := pretty.Diff(entries, want); len(diff) > 0 {
		t.Errorf("entries: %v", diff)
	}
	if calls != 2 {
		t.Errorf("have %d calls, want 2", calls)
	}
}

func TestClientPermanentError(t *testing.T) {
	var calls int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer ts.Close()

	c := testClient(ts.URL)
	_, err := c.EntriesInChemicalSystem(context.Background(), []string{"Sr", "Fe", "O"})
	if _, ok := err.(*statusError); !ok {
		t.Errorf("have %v (%T), want *statusError", err, err)
	}
	if calls != 1 {
		t.Errorf("have %d calls, want 1", calls)
	}
}

type countingDB struct {
	*Static
	mu    sync.Mutex
	calls map[string]int
}

func (c *countingDB) EntriesInChemicalSystem(ctx context.Context, elements []string) ([]Entry, error) {
	c.mu.Lock()
	c.calls[ChemicalSystem(elements)]++
	c.mu.Unlock()
	return c.Static.EntriesInChemicalSystem(ctx, elements)
}

func TestCached(t *testing.T) {
	db := &countingDB{Static: readTestDatabase(t), calls: make(map[string]int)}
	c := NewCached(db, 10, "")
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			entries, err := c.EntriesInChemicalSystem(ctx, []string{"Sr", "Fe", "O"})
			if err != nil {
				t.Error(err)
			}
			if len(entries) != 5 {
				t.Errorf("have %d entries, want 5", len(entries))
			}
		}()
	}
	wg.Wait()
	n := db.calls["Fe-O-Sr"]
	if n < 1 || n > 8 {
		t.Errorf("have %d database calls", n)
	}
	if _, err := c.EntriesInChemicalSystem(ctx, []string{"O", "Fe", "Sr"}); err != nil {
		t.Fatal(err)
	}
	if db.calls["Fe-O-Sr"] != n {
		t.Errorf("cached request reached the database")
	}
}

func TestCachedDisk(t *testing.T) {
	dir, err := os.MkdirTemp("", "mpdb")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(dir)
	ctx := context.Background()

	db := &countingDB{Static: readTestDatabase(t), calls: make(map[string]int)}
	if _, err := NewCached(db, 1, dir).EntriesInChemicalSystem(ctx, []string{"Ca", "Mn", "O"}); err != nil {
		t.Fatal(err)
	}
	entries, err := NewCached(db, 1, dir).EntriesInChemicalSystem(ctx, []string{"Ca", "Mn", "O"})
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 3 {
		t.Errorf("have %d entries, want 3", len(entries))
	}
	if n := db.calls["Ca-Mn-O"]; n != 1 {
		t.Errorf("have %d database calls, want 1", n)
	}
}
