// Copyright 2026 The graphql-codegen Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package expr

import (
	"errors"
	"fmt"

	"github.com/google/cel-go/common/types"
	"github.com/google/cel-go/common/types/ref"
	"github.com/google/cel-go/common/types/traits"
)

// ErrUnsupportedType is returned when a fallback result cannot be lowered to
// a native Go value.
var ErrUnsupportedType = errors.New("unsupported type")

// nativeValue lowers a fallback result to the same Go value set path
// evaluation produces: bool, int64, float64, string, []any, map[string]any,
// nil. Result types outside that set (uint, bytes, timestamps) have no field
// representation and error.
func nativeValue(v ref.Val) (any, error) {
	if opt, ok := v.(*types.Optional); ok {
		if !opt.HasValue() {
			return nil, nil
		}
		return nativeValue(opt.GetValue())
	}

	switch v.Type() {
	case types.BoolType, types.IntType, types.DoubleType, types.StringType:
		return v.Value(), nil
	case types.NullType:
		return nil, nil
	case types.ListType:
		return nativeList(v)
	case types.MapType:
		return nativeMap(v)
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedType, v.Type())
	}
}

func nativeList(v ref.Val) ([]any, error) {
	lister, ok := v.(traits.Lister)
	if !ok {
		return nil, fmt.Errorf("%w: %v is not iterable", ErrUnsupportedType, v.Type())
	}
	out := []any{}
	for it := lister.Iterator(); it.HasNext() == types.True; {
		elem, err := nativeValue(it.Next())
		if err != nil {
			return nil, err
		}
		out = append(out, elem)
	}
	return out, nil
}

func nativeMap(v ref.Val) (map[string]any, error) {
	mapper, ok := v.(traits.Mapper)
	if !ok {
		return nil, fmt.Errorf("%w: %v is not indexable", ErrUnsupportedType, v.Type())
	}
	out := make(map[string]any)
	for it := mapper.Iterator(); it.HasNext() == types.True; {
		key := it.Next()
		name, ok := key.Value().(string)
		if !ok {
			return nil, fmt.Errorf("%w: map key %v", ErrUnsupportedType, key.Type())
		}
		val, err := nativeValue(mapper.Get(key))
		if err != nil {
			return nil, err
		}
		out[name] = val
	}
	return out, nil
}
