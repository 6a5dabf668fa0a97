package store

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SerializeDoc converts a stored document into its public representation: the
// internal _id field becomes a stringified "id", and any other top-level
// ObjectID values are stringified in place. All other fields pass through
// unchanged. A nil document passes through as nil. The input map is not
// mutated.
func SerializeDoc(doc bson.M) bson.M {
	if doc == nil {
		return nil
	}

	out := make(bson.M, len(doc))
	for k, v := range doc {
		out[k] = v
	}

	if id, ok := out["_id"]; ok {
		delete(out, "_id")
		if oid, isOID := id.(primitive.ObjectID); isOID {
			out["id"] = oid.Hex()
		} else {
			out["id"] = fmt.Sprintf("%v", id)
		}
	}

	for k, v := range out {
		if oid, ok := v.(primitive.ObjectID); ok {
			out[k] = oid.Hex()
		}
	}

	return out
}
