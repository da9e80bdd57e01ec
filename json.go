package orderedmap

import (
	"encoding"
	"encoding/json"
	"fmt"
	"reflect"

	"github.com/buger/jsonparser"
	"github.com/mailru/easyjson/jwriter"
)

var (
	_ json.Marshaler   = &OrderedMap[int, any]{}
	_ json.Unmarshaler = &OrderedMap[int, any]{}
)

// MarshalJSON implements the json.Marshaler interface. The map is encoded as
// a JSON object whose members appear in insertion order.
//
// Supported key types are strings, types implementing encoding.TextMarshaler,
// and integer and float types (encoded as quoted numbers, since JSON object
// keys must be strings).
func (om *OrderedMap[K, V]) MarshalJSON() ([]byte, error) {
	if om == nil || om.entries == nil {
		return []byte("null"), nil
	}

	writer := jwriter.Writer{}
	writer.RawByte('{')

	for i, key := range om.keys {
		if i != 0 {
			writer.RawByte(',')
		}

		if err := writeJSONKey(&writer, key); err != nil {
			return nil, err
		}
		writer.RawByte(':')
		// the writer's error is checked once at the end
		writer.Raw(json.Marshal(om.entries[key].value)) //nolint:errchkjson
	}

	writer.RawByte('}')

	return writer.BuildBytes()
}

func writeJSONKey[K comparable](writer *jwriter.Writer, key K) error {
	switch typedKey := any(key).(type) {
	case string:
		writer.String(typedKey)
	case encoding.TextMarshaler:
		writer.RawByte('"')
		writer.Raw(typedKey.MarshalText())
		writer.RawByte('"')
	case int:
		writer.Int64Str(int64(typedKey))
	case int8:
		writer.Int64Str(int64(typedKey))
	case int16:
		writer.Int64Str(int64(typedKey))
	case int32:
		writer.Int64Str(int64(typedKey))
	case int64:
		writer.Int64Str(typedKey)
	case uint:
		writer.Uint64Str(uint64(typedKey))
	case uint8:
		writer.Uint64Str(uint64(typedKey))
	case uint16:
		writer.Uint64Str(uint64(typedKey))
	case uint32:
		writer.Uint64Str(uint64(typedKey))
	case uint64:
		writer.Uint64Str(typedKey)
	case float32:
		writer.Float32Str(typedKey)
	case float64:
		writer.Float64Str(typedKey)
	default:
		// named scalar types land here
		switch keyValue := reflect.ValueOf(key); keyValue.Kind() {
		case reflect.String:
			writer.String(keyValue.String())
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			writer.Int64Str(keyValue.Int())
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			writer.Uint64Str(keyValue.Uint())
		case reflect.Float32, reflect.Float64:
			writer.Float64Str(keyValue.Float())
		default:
			return fmt.Errorf("unsupported key type: %T", key)
		}
	}
	return nil
}

// UnmarshalJSON implements the json.Unmarshaler interface. The members of the
// incoming JSON object are inserted in document order; if a key repeats, the
// first occurrence wins. The same key types as for MarshalJSON are supported.
func (om *OrderedMap[K, V]) UnmarshalJSON(data []byte) error {
	if om.entries == nil {
		om.initialize(0)
	}

	return jsonparser.ObjectEach(data, func(keyData, valueData []byte, dataType jsonparser.ValueType, offset int) error {
		if dataType == jsonparser.String {
			// jsonparser strips the enclosing quotes; rebuild a valid JSON
			// string before handing the value to json.Unmarshal
			unescaped, err := jsonparser.ParseString(valueData)
			if err != nil {
				return err
			}
			if valueData, err = json.Marshal(unescaped); err != nil {
				return err
			}
		}

		key, err := parseJSONKey[K](keyData)
		if err != nil {
			return err
		}

		var value V
		if err := json.Unmarshal(valueData, &value); err != nil {
			return err
		}

		_, _ = om.Insert(key, value)
		return nil
	})
}

func parseJSONKey[K comparable](keyData []byte) (K, error) {
	var key K

	switch typedKey := any(&key).(type) {
	case *string:
		s, err := jsonparser.ParseString(keyData)
		if err != nil {
			return key, err
		}
		*typedKey = s
	case encoding.TextUnmarshaler:
		if err := typedKey.UnmarshalText(keyData); err != nil {
			return key, err
		}
	default:
		if keyValue := reflect.ValueOf(&key).Elem(); keyValue.Kind() == reflect.String {
			s, err := jsonparser.ParseString(keyData)
			if err != nil {
				return key, err
			}
			keyValue.SetString(s)
			break
		}
		// numeric keys arrive as bare digits, which json.Unmarshal accepts
		if err := json.Unmarshal(keyData, &key); err != nil {
			return key, err
		}
	}

	return key, nil
}
