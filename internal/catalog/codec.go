package catalog

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// Codec converts between a collection and a keyed document. Decoding must
// preserve the key order of the document.
type Codec interface {
	Name() string
	Decode(data []byte) (*Collection, error)
	Encode(c *Collection) ([]byte, error)
}

type documentEntry struct {
	Rating    float64 `json:"rating" yaml:"rating"`
	Year      int     `json:"year" yaml:"year"`
	PosterURL string  `json:"poster_url" yaml:"poster_url"`
	Country   string  `json:"country" yaml:"country"`
	IMDbID    string  `json:"imdb_id" yaml:"imdb_id"`
	Notes     string  `json:"notes" yaml:"notes"`
}

func entryFromRecord(r Record) documentEntry {
	return documentEntry{
		Rating:    r.Rating,
		Year:      r.Year,
		PosterURL: r.PosterURL,
		Country:   r.Country,
		IMDbID:    r.IMDbID,
		Notes:     r.Notes,
	}
}

func (e documentEntry) record(title string) Record {
	return Record{
		Title:     title,
		Year:      e.Year,
		Rating:    e.Rating,
		PosterURL: e.PosterURL,
		Country:   e.Country,
		IMDbID:    e.IMDbID,
		Notes:     e.Notes,
	}
}

type jsonCodec struct{}

func JSONCodec() Codec { return jsonCodec{} }

func (jsonCodec) Name() string { return "json" }

func (jsonCodec) Decode(data []byte) (*Collection, error) {
	c := &Collection{}
	if len(bytes.TrimSpace(data)) == 0 {
		return c, nil
	}

	// The token walk below stops at the closing brace, so anything after it
	// has to be rejected up front.
	var whole json.RawMessage
	if err := json.Unmarshal(data, &whole); err != nil {
		return nil, err
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, errors.New("top-level value is not an object")
	}

	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		title, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected key %v", tok)
		}

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return nil, fmt.Errorf("movie %q: %w", title, err)
		}
		if trimmed := bytes.TrimSpace(raw); len(trimmed) == 0 || trimmed[0] != '{' {
			return nil, fmt.Errorf("movie %q: value is not an object", title)
		}
		var e documentEntry
		if err := json.Unmarshal(raw, &e); err != nil {
			return nil, fmt.Errorf("movie %q: %w", title, err)
		}
		c.Put(e.record(title))
	}

	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return c, nil
}

func (jsonCodec) Encode(c *Collection) ([]byte, error) {
	var compact bytes.Buffer
	compact.WriteByte('{')
	for i, r := range c.Records() {
		if i > 0 {
			compact.WriteByte(',')
		}
		key, err := json.Marshal(r.Title)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(entryFromRecord(r))
		if err != nil {
			return nil, err
		}
		compact.Write(key)
		compact.WriteByte(':')
		compact.Write(value)
	}
	compact.WriteByte('}')

	var out bytes.Buffer
	if err := json.Indent(&out, compact.Bytes(), "", "    "); err != nil {
		return nil, err
	}
	out.WriteByte('\n')
	return out.Bytes(), nil
}

type yamlCodec struct{}

func YAMLCodec() Codec { return yamlCodec{} }

func (yamlCodec) Name() string { return "yaml" }

func (yamlCodec) Decode(data []byte) (*Collection, error) {
	c := &Collection{}

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if doc.Kind == 0 || len(doc.Content) == 0 {
		return c, nil
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("line %d: top-level value is not a mapping", root.Line)
	}

	for i := 0; i+1 < len(root.Content); i += 2 {
		key, value := root.Content[i], root.Content[i+1]
		if key.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("line %d: title is not a scalar", key.Line)
		}
		if value.Kind != yaml.MappingNode {
			return nil, fmt.Errorf("line %d: movie %q is not a mapping", value.Line, key.Value)
		}
		var e documentEntry
		if err := value.Decode(&e); err != nil {
			return nil, fmt.Errorf("movie %q: %w", key.Value, err)
		}
		c.Put(e.record(key.Value))
	}
	return c, nil
}

func (yamlCodec) Encode(c *Collection) ([]byte, error) {
	root := &yaml.Node{Kind: yaml.MappingNode}
	for _, r := range c.Records() {
		var key, value yaml.Node
		if err := key.Encode(r.Title); err != nil {
			return nil, err
		}
		if err := value.Encode(entryFromRecord(r)); err != nil {
			return nil, err
		}
		root.Content = append(root.Content, &key, &value)
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(root); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
