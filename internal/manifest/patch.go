package manifest

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/tidwall/jsonc"
)

// FileName is the manifest file inside a template and a generated project.
const FileName = "package.json"

// ErrMalformed is returned when a manifest is not a JSON object.
var ErrMalformed = errors.New("malformed manifest")

// field is one top-level key of a manifest, kept in document order.
type field struct {
	key   string
	value json.RawMessage
}

// Patch returns data with its top-level "name" replaced by name, indented
// with two spaces. Other keys keep their position and value; a missing
// "name" is appended. Comments and trailing commas are tolerated on input.
func Patch(data []byte, name string) ([]byte, error) {
	fields, err := parseObject(data)
	if err != nil {
		return nil, err
	}

	encodedName, err := encodeString(name)
	if err != nil {
		return nil, fmt.Errorf("encoding name %q: %w", name, err)
	}

	replaced := false
	for i := range fields {
		if fields[i].key == "name" {
			fields[i].value = encodedName
			replaced = true
		}
	}
	if !replaced {
		fields = append(fields, field{key: "name", value: encodedName})
	}

	return render(fields)
}

// parseObject splits a JSON object into its top-level fields. A repeated key
// keeps its first position and its last value.
func parseObject(data []byte) ([]field, error) {
	dec := json.NewDecoder(bytes.NewReader(jsonc.ToJSON(data)))

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, fmt.Errorf("%w: top level is not an object", ErrMalformed)
	}

	var fields []field
	index := make(map[string]int)
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("%w: unexpected token %v", ErrMalformed, tok)
		}

		var value json.RawMessage
		if err := dec.Decode(&value); err != nil {
			return nil, fmt.Errorf("%w: value of %q: %v", ErrMalformed, key, err)
		}

		if i, seen := index[key]; seen {
			fields[i].value = value
			continue
		}
		index[key] = len(fields)
		fields = append(fields, field{key: key, value: value})
	}

	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("%w: trailing data after object", ErrMalformed)
	}

	return fields, nil
}

func render(fields []field) ([]byte, error) {
	var compact bytes.Buffer
	compact.WriteByte('{')
	for i, f := range fields {
		if i > 0 {
			compact.WriteByte(',')
		}
		key, err := encodeString(f.key)
		if err != nil {
			return nil, err
		}
		compact.Write(key)
		compact.WriteByte(':')
		if err := json.Compact(&compact, f.value); err != nil {
			return nil, fmt.Errorf("%w: value of %q: %v", ErrMalformed, f.key, err)
		}
	}
	compact.WriteByte('}')

	var out bytes.Buffer
	if err := json.Indent(&out, compact.Bytes(), "", "  "); err != nil {
		return nil, fmt.Errorf("indenting manifest: %w", err)
	}
	out.WriteByte('\n')
	return out.Bytes(), nil
}

// encodeString marshals s without HTML escaping, matching what JavaScript
// tooling writes.
func encodeString(s string) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
