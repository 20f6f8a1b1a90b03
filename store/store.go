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

// Package store saves values in blob storage under keys derived from their
// contents.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spatialmodel/redoxthermo/internal/hash"
	"gocloud.dev/blob"
	"gocloud.dev/gcerrors"
)

// ErrNotFound is returned when a key is not in the store.
var ErrNotFound = errors.New("store: not found")

// Types of stored values.
const (
	TypeJSON  = "json-serialized"
	TypeBytes = "bytes"
)

const (
	valuePrefix = "value/"
	typePrefix  = "type/"
)

// Store is a content-addressed store. Each value is kept in two blobs: the
// serialized value and its type.
type Store struct {
	bucket *blob.Bucket

	Log logrus.FieldLogger
}

// New returns a store that keeps its values in b.
func New(b *blob.Bucket) *Store {
	return &Store{bucket: b, Log: logrus.StandardLogger()}
}

// Open opens the bucket at bucketURL (see OpenBucket) and returns a store
// that keeps its values there.
func Open(ctx context.Context, bucketURL string) (*Store, error) {
	b, err := OpenBucket(ctx, bucketURL)
	if err != nil {
		return nil, err
	}
	return New(b), nil
}

// Close closes the underlying bucket.
func (s *Store) Close() error { return s.bucket.Close() }

// Save stores v and returns its key, the hex-encoded SHA-512 hash of the
// serialized value. Byte slices are stored as they are; all other values
// are serialized as JSON.
func (s *Store) Save(ctx context.Context, v interface{}) (string, error) {
	var (
		data []byte
		typ  string
	)
	switch vv := v.(type) {
	case []byte:
		data, typ = vv, TypeBytes
	default:
		var err error
		data, err = json.Marshal(v)
		if err != nil {
			return "", fmt.Errorf("store: serializing value: %w", err)
		}
		typ = TypeJSON
	}
	key := hash.Hash(data)
	if err := s.bucket.WriteAll(ctx, valuePrefix+key, data, nil); err != nil {
		return "", fmt.Errorf("store: writing value %s: %w", key, err)
	}
	if err := s.bucket.WriteAll(ctx, typePrefix+key, []byte(typ), nil); err != nil {
		return "", fmt.Errorf("store: writing type %s: %w", key, err)
	}
	return key, nil
}

// Type returns the type of the value stored under key.
func (s *Store) Type(ctx context.Context, key string) (string, error) {
	typ, err := s.read(ctx, typePrefix+key)
	if err != nil {
		return "", err
	}
	return string(typ), nil
}

// Load reads the value stored under key into v, which must be a pointer.
// Values of TypeBytes can only be loaded into a *[]byte.
func (s *Store) Load(ctx context.Context, key string, v interface{}) error {
	typ, err := s.Type(ctx, key)
	if err != nil {
		return err
	}
	data, err := s.read(ctx, valuePrefix+key)
	if err != nil {
		return err
	}
	switch typ {
	case TypeBytes:
		b, ok := v.(*[]byte)
		if !ok {
			err = fmt.Errorf("store: cannot load %s value into %T", typ, v)
			break
		}
		*b = data
	case TypeJSON:
		err = json.Unmarshal(data, v)
	default:
		err = fmt.Errorf("store: unknown type %q", typ)
	}
	if err != nil {
		s.Log.WithFields(logrus.Fields{
			"key":  key,
			"type": typ,
		}).Error(err)
		return err
	}
	return nil
}

// Delete removes the value stored under key.
func (s *Store) Delete(ctx context.Context, key string) error {
	for _, k := range []string{valuePrefix + key, typePrefix + key} {
		if err := s.bucket.Delete(ctx, k); err != nil {
			if gcerrors.Code(err) == gcerrors.NotFound {
				return fmt.Errorf("%w: %s", ErrNotFound, key)
			}
			return fmt.Errorf("store: deleting blob %s: %w", k, err)
		}
	}
	return nil
}

func (s *Store) read(ctx context.Context, k string) ([]byte, error) {
	b, err := s.bucket.ReadAll(ctx, k)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, k)
		}
		return nil, fmt.Errorf("store: reading blob %s: %w", k, err)
	}
	return b, nil
}
