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
	"reflect"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
)

// normalize turns a query result into a result set. A slice contributes its
// elements; nil is the empty set; any other value, including documents that
// happen to be slices such as bson.D or bson.Raw, is a set of one.
func normalize(result interface{}) []interface{} {
	if result == nil {
		return []interface{}{}
	}
	switch t := result.(type) {
	case []interface{}:
		return append([]interface{}{}, t...)
	case bson.D, bson.Raw:
		return []interface{}{result}
	}
	v := reflect.ValueOf(result)
	if v.Kind() != reflect.Slice || v.Type().Elem().Kind() == reflect.Uint8 {
		return []interface{}{result}
	}
	set := make([]interface{}, v.Len())
	for i := range set {
		set[i] = v.Index(i).Interface()
	}
	return set
}

// decode stores src in the value pointed to by dst. src is assigned directly
// when its type allows, and converted through BSON otherwise.
func decode(src, dst interface{}) error {
	rv := reflect.ValueOf(dst)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return errors.Errorf("mongomock: cannot decode into %T, want a non-nil pointer", dst)
	}
	target := rv.Elem()
	if src == nil {
		target.Set(reflect.Zero(target.Type()))
		return nil
	}
	if sv := reflect.ValueOf(src); sv.Type().AssignableTo(target.Type()) {
		target.Set(sv)
		return nil
	}
	raw, err := toRaw(src)
	if err != nil {
		return err
	}
	return errors.Wrapf(bson.Unmarshal(raw, dst), "mongomock: decode %T into %T", src, dst)
}

func toRaw(v interface{}) (bson.Raw, error) {
	switch t := v.(type) {
	case bson.Raw:
		return t, nil
	case []byte:
		return bson.Raw(t), nil
	}
	raw, err := bson.Marshal(v)
	if err != nil {
		return nil, errors.Wrapf(err, "mongomock: marshal %T", v)
	}
	return raw, nil
}

// decodeAll decodes values into the slice pointed to by results.
func decodeAll(values []interface{}, results interface{}) error {
	rv := reflect.ValueOf(results)
	if rv.Kind() != reflect.Ptr || rv.IsNil() || rv.Elem().Kind() != reflect.Slice {
		return errors.Errorf("mongomock: cannot decode into %T, want a pointer to a slice", results)
	}
	slice := rv.Elem()
	elemType := slice.Type().Elem()
	out := reflect.MakeSlice(slice.Type(), 0, len(values))
	for _, v := range values {
		elem := reflect.New(elemType)
		if err := decode(v, elem.Interface()); err != nil {
			return err
		}
		out = reflect.Append(out, elem.Elem())
	}
	slice.Set(out)
	return nil
}
