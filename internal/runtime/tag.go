// Package runtime defines the tagged value universe shared by the reader,
// the vecex type-pattern matcher, and the evaluator.
package runtime

// Tag identifies the dynamic type of a Value.
type Tag int

const (
	TagNil Tag = iota
	TagNotSet
	TagNoArgs
	TagInt
	TagFloat
	TagBool
	TagString
	TagVector
	TagList
	TagType
	TagBuiltin
	TagVariable
	TagExpression
	TagClosure
)

var tagNames = map[Tag]string{
	TagNil:        "nil",
	TagNotSet:     "not_set",
	TagNoArgs:     "no_args",
	TagInt:        "int",
	TagFloat:      "float",
	TagBool:       "bool",
	TagString:     "string",
	TagVector:     "vector",
	TagList:       "list",
	TagType:       "type",
	TagBuiltin:    "builtin",
	TagVariable:   "variable",
	TagExpression: "expression",
	TagClosure:    "closure",
}

// String returns the lowercase type name used in error messages and by the
// `type`/`typeof` builtins.
func (t Tag) String() string {
	if name, ok := tagNames[t]; ok {
		return name
	}
	return "unknown"
}

// TagByName resolves a type name (as spelled in source, e.g. "int") back to
// its Tag. Used by the `type` constructor and by vecex pattern compilation.
func TagByName(name string) (Tag, bool) {
	for tag, n := range tagNames {
		if n == name {
			return tag, true
		}
	}
	return 0, false
}
