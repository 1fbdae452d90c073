package reportxls

import (
	"fmt"
	"reflect"
	"sort"
	"strings"
	"time"
)

// table is the flattened form every section renders from: ordered column
// headers plus one row per record.
type table struct {
	headers []string
	rows    []map[string]interface{}
}

// flatten converts a struct or a slice of structs into a table. Column names
// come from json tags; nested structs contribute columns prefixed with the Go
// field name ("Personal.nationality"). Time values stay as time.Time so the
// spreadsheet library can format them.
func flatten(data interface{}) (*table, error) {
	val := reflect.ValueOf(data)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}

	switch val.Kind() {
	case reflect.Struct:
		headers, row := flattenStruct(val)
		return &table{headers: headers, rows: []map[string]interface{}{row}}, nil
	case reflect.Slice:
		return flattenSlice(val)
	default:
		return nil, fmt.Errorf("expected struct or slice, got %v", val.Kind())
	}
}

func flattenStruct(val reflect.Value) ([]string, map[string]interface{}) {
	headers := make([]string, 0, val.NumField())
	row := make(map[string]interface{})
	flattenInto(val, "", &headers, row)
	return headers, row
}

func flattenInto(val reflect.Value, prefix string, headers *[]string, row map[string]interface{}) {
	typ := val.Type()
	for i := 0; i < val.NumField(); i++ {
		field := val.Field(i)
		fieldType := typ.Field(i)

		// Embedded structs surface their fields in place, even when the
		// embedded type itself is unexported.
		if fieldType.Anonymous && field.Kind() == reflect.Struct {
			flattenInto(field, prefix, headers, row)
			continue
		}
		if fieldType.PkgPath != "" {
			continue
		}

		name := columnName(fieldType)
		if name == "-" {
			continue
		}
		if prefix != "" {
			name = prefix + "." + name
		}

		if field.Kind() == reflect.Ptr {
			if field.IsNil() {
				*headers = append(*headers, name)
				row[name] = ""
				continue
			}
			field = field.Elem()
		}

		switch {
		case field.Type() == reflect.TypeOf(time.Time{}):
			*headers = append(*headers, name)
			row[name] = field.Interface()
		case field.Kind() == reflect.Struct:
			// Nested structs are prefixed with the Go field name, not the
			// json tag, so group columns read like the source type.
			sub := fieldType.Name
			if prefix != "" {
				sub = prefix + "." + sub
			}
			flattenInto(field, sub, headers, row)
		case field.Kind() == reflect.Map:
			keys := field.MapKeys()
			sort.Slice(keys, func(a, b int) bool {
				return fmt.Sprint(keys[a].Interface()) < fmt.Sprint(keys[b].Interface())
			})
			for _, key := range keys {
				k := fmt.Sprintf("%s.%v", name, key.Interface())
				*headers = append(*headers, k)
				row[k] = field.MapIndex(key).Interface()
			}
		default:
			*headers = append(*headers, name)
			row[name] = field.Interface()
		}
	}
}

func flattenSlice(val reflect.Value) (*table, error) {
	t := &table{}
	seen := make(map[string]struct{})

	for i := 0; i < val.Len(); i++ {
		elem := val.Index(i)
		if elem.Kind() == reflect.Ptr {
			elem = elem.Elem()
		}
		if elem.Kind() != reflect.Struct {
			return nil, fmt.Errorf("expected slice of structs, got slice of %v", elem.Kind())
		}

		headers, row := flattenStruct(elem)
		for _, h := range headers {
			if _, ok := seen[h]; !ok {
				seen[h] = struct{}{}
				t.headers = append(t.headers, h)
			}
		}
		t.rows = append(t.rows, row)
	}

	// Rows from records with sparse optional fields still need every column.
	for _, row := range t.rows {
		for _, h := range t.headers {
			if _, ok := row[h]; !ok {
				row[h] = ""
			}
		}
	}
	return t, nil
}

func columnName(f reflect.StructField) string {
	tag := f.Tag.Get("json")
	if tag == "" {
		return f.Name
	}
	name := strings.Split(tag, ",")[0]
	if name == "" {
		return f.Name
	}
	return name
}
