package rc

import (
	"encoding/json"
	"errors"
	"fmt"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/pelletier/go-toml/v2"
	"github.com/tidwall/jsonc"
	"github.com/zclconf/go-cty/cty"
	ctyjson "github.com/zclconf/go-cty/cty/json"
	"gopkg.in/yaml.v3"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Format identifies how an rc file is encoded.
type Format int

const (
	FormatYAML Format = iota
	FormatTOML
	FormatJSON
	FormatHCL
)

func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatJSON:
		return "json"
	case FormatHCL:
		return "hcl"
	default:
		return "yaml"
	}
}

// FormatOf selects the [Format] for a file path based on its extension.
func FormatOf(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML
	case ".json", ".jsonc":
		return FormatJSON
	case ".hcl":
		return FormatHCL
	default:
		return FormatYAML
	}
}

// DefaultPath returns the conventional rc file location for a program, "$HOME/.<program>rc".
func DefaultPath(program string) (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("locating home directory: %w", err)
	}
	return filepath.Join(home, "."+program+"rc"), nil
}

// Load reads the rc file at path and layers it over defaults.
// A file that doesn't exist is not an error, the defaults are returned instead.
func Load(path string, defaults map[string]any) (Overlay, error) {
	base := Overlay(defaults).Clone()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return base, nil
		}
		return nil, fmt.Errorf("reading rc file: %w", err)
	}
	loaded, err := Decode(FormatOf(path), path, data)
	if err != nil {
		return nil, err
	}
	return base.Merge(loaded), nil
}

// Decode decodes rc file content in the given [Format].
// The name is only used for error messages.
func Decode(format Format, name string, data []byte) (Overlay, error) {
	var (
		out = Overlay{}
		err error
	)
	switch format {
	case FormatTOML:
		err = toml.Unmarshal(data, (*map[string]any)(&out))
	case FormatJSON:
		if len(strings.TrimSpace(string(data))) > 0 {
			err = json.Unmarshal(jsonc.ToJSON(data), (*map[string]any)(&out))
		}
	case FormatHCL:
		out, err = decodeHCL(name, data)
	default:
		err = yaml.Unmarshal(data, (*map[string]any)(&out))
	}
	if err != nil {
		return nil, fmt.Errorf("decoding %s rc file %s: %w", format, name, err)
	}
	if out == nil {
		out = Overlay{}
	}
	return out, nil
}

func decodeHCL(name string, data []byte) (Overlay, error) {
	file, diags := hclparse.NewParser().ParseHCL(data, name)
	if diags.HasErrors() {
		return nil, errors.New(diags.Error())
	}
	attrs, diags := file.Body.JustAttributes()
	if diags.HasErrors() {
		return nil, errors.New(diags.Error())
	}
	out := Overlay{}
	for key, attr := range attrs {
		val, diags := attr.Expr.Value(nil)
		if diags.HasErrors() {
			return nil, errors.New(diags.Error())
		}
		goVal, err := fromCty(val)
		if err != nil {
			return nil, fmt.Errorf("attribute %s: %w", key, err)
		}
		out[key] = goVal
	}
	return out, nil
}

func fromCty(val cty.Value) (any, error) {
	if val.IsNull() {
		return nil, nil
	}
	data, err := ctyjson.Marshal(val, val.Type())
	if err != nil {
		return nil, err
	}
	var out any
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	return out, nil
}
