package migration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"reflect"
	"strings"

	"github.com/cloudblue/connect-migration/errors"
)

// Payload is the parsed migration data. Numbers are represented as
// json.Number so that their textual representation is preserved.
type Payload struct {
	data interface{}
}

// NewPayload returns a payload wrapping already decoded data.
func NewPayload(data interface{}) Payload {
	return Payload{data: data}
}

// ParsePayload decodes a JSON document. The whole input must be a single
// JSON value.
func ParsePayload(raw string) (Payload, error) {
	dec := json.NewDecoder(strings.NewReader(raw))
	dec.UseNumber()

	var data interface{}
	if err := dec.Decode(&data); err != nil {
		return Payload{}, errors.Wrap(errors.ErrInput, err.Error())
	}
	if _, err := dec.Token(); err != io.EOF {
		return Payload{}, errors.Wrap(errors.ErrInput, "unexpected data after top-level value")
	}
	return Payload{data: data}, nil
}

// Data returns the decoded document.
func (p Payload) Data() interface{} {
	return p.data
}

// Object returns the payload as a JSON object. False is returned if the
// payload is of any other type.
func (p Payload) Object() (map[string]interface{}, bool) {
	obj, ok := p.data.(map[string]interface{})
	return obj, ok
}

// Get returns the value stored under given key. False is returned if the
// payload is not an object, the key does not exist or the value is null.
func (p Payload) Get(key string) (interface{}, bool) {
	obj, ok := p.Object()
	if !ok {
		return nil, false
	}
	v, ok := obj[key]
	if !ok || v == nil {
		return nil, false
	}
	return v, true
}

// String returns the string value stored under given key. False is returned
// if the value does not exist or it is not a string.
func (p Payload) String(key string) (string, bool) {
	v, ok := p.Get(key)
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// serialize returns compact JSON representation of given value. Neither
// slashes nor HTML characters are escaped.
func serialize(v interface{}) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return "", err
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}

// typeName returns the JSON type name of given value.
func typeName(v interface{}) string {
	switch v.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case bool:
		return "boolean"
	case json.Number, float32, float64, int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return "number"
	case []interface{}:
		return "array"
	case map[string]interface{}:
		return "object"
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		return "array"
	case reflect.Map, reflect.Struct:
		return "object"
	case reflect.Ptr:
		if rv.IsNil() {
			return "null"
		}
		return typeName(rv.Elem().Interface())
	}
	return fmt.Sprintf("%T", v)
}
