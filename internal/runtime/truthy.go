package runtime

import "fmt"

// NotImplementedError reports an operation applied to a tag that does not
// support it (e.g. truthiness of a Builtin), per spec §4.8/§7.
type NotImplementedError struct {
	Tag       Tag
	Operation string
}

func (e *NotImplementedError) Error() string {
	return fmt.Sprintf("%s does not implement %s", e.Tag, e.Operation)
}

// Truthy implements §4.8: Nil/NotSet/NoArgs are truthy iff nonzero (they
// are singletons holding 0, hence always falsy); Int/Float/Bool truthy iff
// nonzero; String/Vector/List/Expression/Closure truthy iff nonempty.
// Other tags have no truthiness.
func Truthy(v Value) (bool, error) {
	switch x := v.(type) {
	case *NilValue, *NotSetValue, *NoArgsValue:
		return false, nil
	case *IntValue:
		return x.V != 0, nil
	case *FloatValue:
		return x.V != 0, nil
	case *BoolValue:
		return x.V != 0, nil
	case *StringValue, *VectorValue, *ListValue, *ExpressionValue, *ClosureValue:
		return Len(v) != 0, nil
	}
	return false, &NotImplementedError{Tag: v.Tag(), Operation: "truthiness"}
}

// IsBooly reports whether v admits a truthiness value at all (§4.4 `booly`).
func IsBooly(v Value) bool {
	_, err := Truthy(v)
	return err == nil
}
