package catalog

import (
	"fmt"
	"path/filepath"
	"strings"
)

type Kind string

const (
	KindJSON Kind = "json"
	KindYAML Kind = "yaml"
	KindCSV  Kind = "csv"
)

func Kinds() []Kind {
	return []Kind{KindJSON, KindYAML, KindCSV}
}

func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	switch k {
	case KindJSON, KindYAML, KindCSV:
		return k, nil
	}
	return "", fmt.Errorf("%w: %q (supported: json, yaml, csv)", ErrUnknownKind, s)
}

// KindFromPath picks a backend from the file extension.
func KindFromPath(path string) (Kind, error) {
	extensions := []struct {
		ext  string
		kind Kind
	}{
		{".json", KindJSON},
		{".yaml", KindYAML},
		{".yml", KindYAML},
		{".csv", KindCSV},
	}

	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range extensions {
		if ext == e.ext {
			return e.kind, nil
		}
	}
	return "", fmt.Errorf("%w: cannot infer backend from %q", ErrUnknownKind, path)
}

// Open constructs the Store for kind, creating an empty backing file at path
// when none exists.
func Open(kind Kind, path string) (Store, error) {
	switch kind {
	case KindJSON:
		return NewDocumentStore(path, JSONCodec())
	case KindYAML:
		return NewDocumentStore(path, YAMLCodec())
	case KindCSV:
		return NewTableStore(path)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
}
