package model

import (
	"github.com/m-mizutani/goerr/v2"
	"gopkg.in/yaml.v3"
)

// BuildConfig is a parsed build configuration document
type BuildConfig struct {
	fields map[string]*yaml.Node
}

// ParseBuildConfig parses a YAML build configuration. The top level must be a mapping.
func ParseBuildConfig(data []byte) (*BuildConfig, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, goerr.Wrap(err, "failed to parse build configuration", goerr.T(ErrTagConfig))
	}

	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, goerr.New("build configuration is empty", goerr.T(ErrTagConfig))
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, goerr.New("build configuration is not a mapping",
			goerr.V("line", root.Line),
			goerr.T(ErrTagConfig))
	}

	fields := make(map[string]*yaml.Node, len(root.Content)/2)
	for i := 0; i+1 < len(root.Content); i += 2 {
		fields[root.Content[i].Value] = root.Content[i+1]
	}

	return &BuildConfig{fields: fields}, nil
}

// Version returns the raw scalar text of field. The value is not reformatted,
// so an unquoted 130.0 is returned as "130.0".
func (c *BuildConfig) Version(field string) (string, error) {
	node, ok := c.fields[field]
	if !ok {
		return "", goerr.New("version field not found in build configuration",
			goerr.V("field", field),
			goerr.T(ErrTagConfig))
	}

	if node.Kind != yaml.ScalarNode || node.Tag == "!!null" || node.Value == "" {
		return "", goerr.New("version field is empty or not a scalar",
			goerr.V("field", field),
			goerr.V("line", node.Line),
			goerr.T(ErrTagConfig))
	}

	return node.Value, nil
}
