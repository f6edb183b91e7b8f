package parser

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-modelgen/pkg/schema"
)

var (
	definitionKeys = keySet("name", "type", "comment", "args", "params", "adds", "gets")
	recordKeys     = keySet("name", "type", "comment")
)

func keySet(keys ...string) map[string]bool {
	set := make(map[string]bool, len(keys))
	for _, k := range keys {
		set[k] = true
	}
	return set
}

func decodeYAML(raw []byte) (schema.Definition, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(raw, &root); err != nil {
		return schema.Definition{}, structural("", "", "decode yaml: %v", err)
	}
	if root.Kind != yaml.DocumentNode || len(root.Content) == 0 {
		return schema.Definition{}, structural("", "", "document is empty")
	}
	doc := root.Content[0]
	if doc.Kind != yaml.MappingNode {
		return schema.Definition{}, structural("", "", "document must be a mapping, found %s", kindName(doc))
	}
	if err := checkKeys(doc, "", definitionKeys); err != nil {
		return schema.Definition{}, err
	}

	for i := 0; i+1 < len(doc.Content); i += 2 {
		key, value := doc.Content[i].Value, doc.Content[i+1]
		switch key {
		case string(schema.GroupParams), string(schema.GroupAdds), string(schema.GroupGets):
			if err := checkRecords(value, key); err != nil {
				return schema.Definition{}, err
			}
		case "args":
			if !isNull(value) && value.Kind != yaml.SequenceNode {
				return schema.Definition{}, structural(key, "", "args must be a list, found %s", kindName(value))
			}
		}
	}

	var def schema.Definition
	if err := doc.Decode(&def); err != nil {
		return schema.Definition{}, structural("", "", "decode yaml: %v", err)
	}
	return def, nil
}

func checkRecords(list *yaml.Node, group string) error {
	if isNull(list) {
		return nil
	}
	if list.Kind != yaml.SequenceNode {
		return structural(group, "", "%s must be a list, found %s", group, kindName(list))
	}
	for i, item := range list.Content {
		path := fmt.Sprintf("%s[%d]", group, i)
		if item.Kind != yaml.MappingNode {
			return structural(path, "", "record must be a mapping, found %s", kindName(item))
		}
		if err := checkKeys(item, path, recordKeys); err != nil {
			return err
		}
	}
	return nil
}

func checkKeys(mapping *yaml.Node, path string, allowed map[string]bool) error {
	seen := make(map[string]bool)
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		key := mapping.Content[i].Value
		if !allowed[key] {
			return structural(joinPath(path, key), key, "extraneous key")
		}
		if seen[key] {
			return structural(joinPath(path, key), key, "key is repeated")
		}
		seen[key] = true
	}
	return nil
}

func joinPath(path, key string) string {
	if path == "" {
		return key
	}
	return path + "." + key
}

func isNull(n *yaml.Node) bool {
	return n.Kind == yaml.ScalarNode && n.Tag == "!!null"
}

func kindName(n *yaml.Node) string {
	switch n.Kind {
	case yaml.MappingNode:
		return "mapping"
	case yaml.SequenceNode:
		return "list"
	case yaml.AliasNode:
		return "alias"
	default:
		if isNull(n) {
			return "null"
		}
		return "scalar"
	}
}
