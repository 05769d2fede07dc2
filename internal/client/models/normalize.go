package models

import (
	"fmt"
	"math/rand"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// RawRecord is an item record exactly as decoded from the remote store.
// Field names are inconsistent across deployments (id/_id/ID/slug,
// imageurl/imageUrl, producturl/productUrl), so the record stays untyped
// until NormalizeItem resolves it.
type RawRecord map[string]any

// newRandomUUID is a seam for tests and for environments where the
// crypto-backed generator is unavailable.
var newRandomUUID = uuid.NewRandom

// randUint64 is a seam for tests.
var randUint64 = rand.Uint64

// NormalizeItem coerces a raw remote record into the canonical Item shape.
//
// Identifier resolution order: id, _id, ID, slug (numbers are coerced to
// strings). When every identifier field is absent, a fallback id is
// synthesized so list rendering still has a stable key; the fallback is
// never an authoritative identifier for the remote store.
//
// Absent or malformed fields degrade to empty strings; partial display is
// preferable to blocking the view. The result is always tagged SourceAPI
// because only remote-origin records pass through here.
func NormalizeItem(rec RawRecord) Item {
	id := stringField(rec, "id", "_id", "ID", "slug")
	if id == "" {
		id = fallbackID()
	}

	return Item{
		ID:         id,
		Title:      stringField(rec, "title"),
		ImageURL:   stringField(rec, "imageurl", "imageUrl"),
		ProductURL: stringField(rec, "producturl", "productUrl"),
		Source:     SourceAPI,
	}
}

// NormalizeItems maps a slice of raw records; a nil input yields an empty,
// non-nil collection.
func NormalizeItems(recs []RawRecord) []Item {
	items := make([]Item, 0, len(recs))
	for _, rec := range recs {
		items = append(items, NormalizeItem(rec))
	}
	return items
}

// fallbackID returns a unique local identifier: a random UUID when the
// generator is available, otherwise a timestamp-plus-random composite that
// is unique enough to avoid key collisions within one session.
func fallbackID() string {
	if u, err := newRandomUUID(); err == nil {
		return u.String()
	}
	// base-36 rendering can be shorter than six chars for small values
	suffix := strconv.FormatUint(randUint64(), 36)
	return fmt.Sprintf("temp-%d-%s", time.Now().UnixMilli(), suffix[:min(6, len(suffix))])
}

// stringField returns the first present key coerced to a string.
// JSON numbers arrive as float64; integral values are rendered without
// a fractional part so an id of 5 round-trips as "5".
func stringField(rec RawRecord, keys ...string) string {
	for _, key := range keys {
		v, ok := rec[key]
		if !ok || v == nil {
			continue
		}
		switch t := v.(type) {
		case string:
			if t != "" {
				return t
			}
		case float64:
			if t == float64(int64(t)) {
				return strconv.FormatInt(int64(t), 10)
			}
			return strconv.FormatFloat(t, 'f', -1, 64)
		case int:
			return strconv.Itoa(t)
		case int64:
			return strconv.FormatInt(t, 10)
		}
	}
	return ""
}
