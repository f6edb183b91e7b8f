package schema

// ModelBaseType is the only base-type token a model definition may declare.
const ModelBaseType = "Model"

// Definition is one decoded model schema document before validation. Field
// order inside each list mirrors the order in the source document.
type Definition struct {
	Name    string        `yaml:"name" hcl:"name"`
	Type    string        `yaml:"type" hcl:"type"`
	Comment string        `yaml:"comment,omitempty" hcl:"comment,optional"`
	Args    []string      `yaml:"args,omitempty" hcl:"args,optional"`
	Params  []FieldRecord `yaml:"params,omitempty" hcl:"param,block"`
	Adds    []FieldRecord `yaml:"adds,omitempty" hcl:"adds,block"`
	Gets    []FieldRecord `yaml:"gets,omitempty" hcl:"gets,block"`
}

// FieldRecord is one entry of the params, adds, or gets lists.
type FieldRecord struct {
	Name    string `yaml:"name" hcl:"name,label"`
	Type    string `yaml:"type" hcl:"type"`
	Comment string `yaml:"comment,omitempty" hcl:"comment,optional"`
}

// Group names the list a FieldRecord was declared in.
type Group string

const (
	GroupParams Group = "params"
	GroupAdds   Group = "adds"
	GroupGets   Group = "gets"
)

// Records returns the field records declared for a group.
func (d Definition) Records(group Group) []FieldRecord {
	switch group {
	case GroupParams:
		return d.Params
	case GroupAdds:
		return d.Adds
	case GroupGets:
		return d.Gets
	default:
		return nil
	}
}
