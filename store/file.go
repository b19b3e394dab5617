package store

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/tourgraph/core"
)

// codec converts a Document to and from its on-disk bytes.
type codec struct {
	name      string
	marshal   func(core.Document) ([]byte, error)
	unmarshal func([]byte, *core.Document) error
}

var jsonCodec = codec{
	name: DriverJSON,
	marshal: func(doc core.Document) ([]byte, error) {
		return json.MarshalIndent(doc, "", "    ")
	},
	unmarshal: func(b []byte, doc *core.Document) error {
		return json.Unmarshal(b, doc)
	},
}

var yamlCodec = codec{
	name: DriverYAML,
	marshal: func(doc core.Document) ([]byte, error) {
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return nil, err
		}
		if err := enc.Close(); err != nil {
			return nil, err
		}

		return buf.Bytes(), nil
	},
	unmarshal: func(b []byte, doc *core.Document) error {
		return yaml.Unmarshal(b, doc)
	},
}

// File stores the graph document in a single file.
type File struct {
	mu     sync.Mutex
	path   string
	codec  codec
	closed bool
}

// NewJSONFile returns a File store writing indent-4 JSON to path.
func NewJSONFile(path string) *File {
	return &File{path: path, codec: jsonCodec}
}

// NewYAMLFile returns a File store writing YAML to path.
func NewYAMLFile(path string) *File {
	return &File{path: path, codec: yamlCodec}
}

// Path returns the document location.
func (f *File) Path() string { return f.path }

// Load reads and validates the document. A missing or empty file yields an
// empty graph.
func (f *File) Load(ctx context.Context) (*core.Graph, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return nil, ErrClosed
	}

	b, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return core.NewGraph(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("store: read %s: %w", f.path, err)
	}
	if len(bytes.TrimSpace(b)) == 0 {
		return core.NewGraph(), nil
	}

	var doc core.Document
	if err := f.codec.unmarshal(b, &doc); err != nil {
		return nil, fmt.Errorf("store: decode %s %s: %w", f.codec.name, f.path, err)
	}
	g, err := core.FromDocument(doc)
	if err != nil {
		return nil, fmt.Errorf("store: %s: %w", f.path, err)
	}

	return g, nil
}

// Save writes the document to a temp file in the same directory and renames
// it over path, so readers never observe a partial document.
func (f *File) Save(ctx context.Context, g *core.Graph) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	b, err := f.codec.marshal(g.Document())
	if err != nil {
		return fmt.Errorf("store: encode %s: %w", f.codec.name, err)
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return ErrClosed
	}

	return writeAtomic(f.path, b)
}

// Close marks the store closed. Files hold no open handles between calls.
func (f *File) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true

	return nil
}

func writeAtomic(path string, b []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("store: mkdir %s: %w", dir, err)
	}
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("store: temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	if _, err := tmp.Write(b); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("store: write %s: %w", tmpName, err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("store: sync %s: %w", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("store: close %s: %w", tmpName, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("store: rename to %s: %w", path, err)
	}

	return nil
}
