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

package hash

import (
	"crypto/sha512"
	"encoding/gob"
	"encoding/hex"
	"hash"

	"github.com/davecgh/go-spew/spew"
)

// Hash returns a hex-encoded SHA-512 hash key for the specified object.
// Byte slices and strings are hashed directly; other objects are
// gob-encoded first.
func Hash(object interface{}) string {
	h := sha512.New()
	switch v := object.(type) {
	case []byte:
		h.Write(v)
		return sum(h)
	case string:
		h.Write([]byte(v))
		return sum(h)
	}

	e := gob.NewEncoder(h)
	if err := e.Encode(object); err == nil {
		return sum(h)
	}
	// If there is an error (e.g., there are no exported fields)
	// use spew instead of gob.
	h.Reset()
	printer := spew.ConfigState{
		Indent:                  " ",
		SortKeys:                true,
		DisableMethods:          true,
		SpewKeys:                true,
		DisablePointerAddresses: true,
		DisableCapacities:       true,
	}
	printer.Fprintf(h, "%#v", object)
	return sum(h)
}

func sum(h hash.Hash) string {
	return hex.EncodeToString(h.Sum(nil))
}
