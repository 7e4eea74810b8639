package catalog

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// UnmarshalYAML decodes a stack and records its skills in authored order,
// which a plain map decode would lose.
func (s *Stack) UnmarshalYAML(value *yaml.Node) error {
	type plain Stack
	var raw plain
	if err := value.Decode(&raw); err != nil {
		return err
	}
	*s = Stack(raw)
	s.Entries = nil

	skills := mappingValue(value, "skills")
	if skills == nil {
		return nil
	}
	for i := 0; i+1 < len(skills.Content); i += 2 {
		category := skills.Content[i].Value
		subs := resolveAlias(skills.Content[i+1])
		if subs.Kind != yaml.MappingNode {
			return fmt.Errorf("stack %q: skills.%s must be a mapping", s.ID, category)
		}
		for j := 0; j+1 < len(subs.Content); j += 2 {
			var ref string
			if err := subs.Content[j+1].Decode(&ref); err != nil {
				return fmt.Errorf("stack %q: skills.%s.%s: %w", s.ID, category, subs.Content[j].Value, err)
			}
			s.Entries = append(s.Entries, StackEntry{
				Category:    category,
				Subcategory: subs.Content[j].Value,
				Ref:         ref,
			})
		}
	}
	return nil
}

func mappingValue(node *yaml.Node, key string) *yaml.Node {
	node = resolveAlias(node)
	if node.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value == key {
			return resolveAlias(node.Content[i+1])
		}
	}
	return nil
}

func resolveAlias(node *yaml.Node) *yaml.Node {
	for node.Kind == yaml.AliasNode && node.Alias != nil {
		node = node.Alias
	}
	return node
}
