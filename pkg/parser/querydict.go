package parser

import (
	"maps"
	"mime/multipart"
	"net/url"
	"slices"
)

// MultiValueDict is a read-only container where a key may carry several values.
type MultiValueDict interface {
	// Keys returns the keys present in the container, in a stable order.
	Keys() []string
	// Get returns the last value of key.
	Get(key string) any
	// GetList returns every value of key.
	GetList(key string) any
}

// Values adapts url.Values (query strings, urlencoded and multipart form values).
type Values url.Values

func (v Values) Keys() []string {
	return slices.Sorted(maps.Keys(v))
}

func (v Values) Get(key string) any {
	vs := v[key]
	if len(vs) == 0 {
		return ""
	}
	return vs[len(vs)-1]
}

func (v Values) GetList(key string) any {
	return slices.Clone(v[key])
}

// Files adapts uploaded multipart files.
type Files map[string][]*multipart.FileHeader

func (f Files) Keys() []string {
	return slices.Sorted(maps.Keys(f))
}

func (f Files) Get(key string) any {
	fs := f[key]
	if len(fs) == 0 {
		return nil
	}
	return fs[len(fs)-1]
}

func (f Files) GetList(key string) any {
	return slices.Clone(f[key])
}

// QueryDict implements ParseQueryDict. Embed it to get the default
// multi-valued container handling in a custom Parser.
type QueryDict struct{}

func (QueryDict) ParseQueryDict(data MultiValueDict, collectionFields map[string]struct{}, aliases map[string]string) map[string]any {
	return ParseQueryDict(data, collectionFields, aliases)
}

// ParseQueryDict reduces data to a raw parameter mapping:
//  1. a key that is a collection field name is read as a list;
//  2. a key that is the alias of a collection field is read as a list and
//     kept under the alias;
//  3. any other key yields its last value.
//
// Rule 1 is checked before rule 2.
func ParseQueryDict(data MultiValueDict, collectionFields map[string]struct{}, aliases map[string]string) map[string]any {
	result := make(map[string]any)
	if data == nil {
		return result
	}

	aliasToField := make(map[string]string, len(aliases))
	for field, alias := range aliases {
		aliasToField[alias] = field
	}

	for _, key := range data.Keys() {
		if _, ok := collectionFields[key]; ok {
			result[key] = data.GetList(key)
			continue
		}
		if field, ok := aliasToField[key]; ok {
			if _, ok := collectionFields[field]; ok {
				result[key] = data.GetList(key)
				continue
			}
		}
		result[key] = data.Get(key)
	}
	return result
}
