// Licensed under the Apache License, Version 2.0 (the "License"); you may not
// use this file except in compliance with the License. You may obtain a copy of
// the License at
//
//  http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS, WITHOUT
// WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the
// License for the specific language governing permissions and limitations under
// the License.

package mongomock

import (
	"encoding/binary"
	"math"
	"time"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ObjectID returns an object id built from args, which may be:
//
//   - empty, for a new id
//   - a 24-character hex string
//   - a time.Time, or an integer number of seconds since the Unix epoch, for
//     an id carrying that timestamp and zeros in its remaining bytes
//   - a primitive.ObjectID, [12]byte, or 12-byte []byte, returned unchanged
//
// Equal arguments other than the empty list yield equal ids, whichever form
// was used.
func ObjectID(args ...interface{}) (primitive.ObjectID, error) {
	switch len(args) {
	case 0:
		return primitive.NewObjectID(), nil
	case 1:
	default:
		return primitive.NilObjectID, errors.Errorf("mongomock: ObjectID takes at most one argument, got %d", len(args))
	}
	switch t := args[0].(type) {
	case nil:
		return primitive.NewObjectID(), nil
	case primitive.ObjectID:
		return t, nil
	case [12]byte:
		return primitive.ObjectID(t), nil
	case []byte:
		if len(t) != 12 {
			return primitive.NilObjectID, errors.Errorf("mongomock: ObjectID needs 12 bytes, got %d", len(t))
		}
		var id primitive.ObjectID
		copy(id[:], t)
		return id, nil
	case string:
		id, err := primitive.ObjectIDFromHex(t)
		return id, errors.Wrapf(err, "mongomock: ObjectID(%q)", t)
	case time.Time:
		return fromSeconds(t.Unix())
	case int:
		return fromSeconds(int64(t))
	case int32:
		return fromSeconds(int64(t))
	case int64:
		return fromSeconds(t)
	case uint32:
		return fromSeconds(int64(t))
	default:
		return primitive.NilObjectID, errors.Errorf("mongomock: cannot build an ObjectID from %T", t)
	}
}

// fromSeconds returns the id whose timestamp is sec and whose other bytes are
// zero.
func fromSeconds(sec int64) (primitive.ObjectID, error) {
	if sec < 0 || sec > math.MaxUint32 {
		return primitive.NilObjectID, errors.Errorf("mongomock: timestamp %d out of range", sec)
	}
	var id primitive.ObjectID
	binary.BigEndian.PutUint32(id[0:4], uint32(sec))
	return id, nil
}

// MustObjectID is like ObjectID, but panics on error.
func MustObjectID(args ...interface{}) primitive.ObjectID {
	id, err := ObjectID(args...)
	if err != nil {
		panic(err)
	}
	return id
}
