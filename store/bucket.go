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

package store

import (
	"context"
	"fmt"
	"net/url"
	"os"

	"gocloud.dev/blob"

	// Storage providers.
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/memblob"
	_ "gocloud.dev/blob/s3blob"
)

// DefaultURL is the bucket used when no URL is given. It is only suitable
// for a single process.
const DefaultURL = "mem://"

// OpenBucket returns the blob storage bucket specified by bucketURL,
// which must be in the format 'provider://name'. The accepted providers are
// "mem" for an in-memory bucket, "file" for the local filesystem, "gs" for
// Google Cloud Storage, and "s3" for AWS S3. Directories of "file" buckets
// are created if they do not exist.
func OpenBucket(ctx context.Context, bucketURL string) (*blob.Bucket, error) {
	if bucketURL == "" {
		bucketURL = DefaultURL
	}
	u, err := url.Parse(bucketURL)
	if err != nil {
		return nil, fmt.Errorf("store: parsing bucket URL: %w", err)
	}
	switch u.Scheme {
	case "mem", "gs", "s3":
	case "file":
		if err := os.MkdirAll(u.Path, 0755); err != nil {
			return nil, fmt.Errorf("store: creating bucket directory: %w", err)
		}
	default:
		return nil, fmt.Errorf("store: invalid provider %q", u.Scheme)
	}
	b, err := blob.OpenBucket(ctx, bucketURL)
	if err != nil {
		return nil, fmt.Errorf("store: opening bucket: %w", err)
	}
	return b, nil
}
