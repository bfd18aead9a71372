package runtime

// Equal implements the structural equality rules of §3: numeric equality
// compares the numeric projection (int/bool/float coerced to float64);
// Vectors, Lists and Strings compare by length then elementwise;
// Expressions/Closures compare structurally; everything else (including
// all three singletons) compares by tag alone.
func Equal(a, b Value) bool {
	if a == nil || b == nil {
		return a == b
	}
	if IsNumeric(a) && IsNumeric(b) {
		return NumericProjection(a) == NumericProjection(b)
	}
	if a.Tag() != b.Tag() {
		return false
	}
	switch av := a.(type) {
	case *NilValue, *NotSetValue, *NoArgsValue:
		return true
	case *StringValue:
		return av.V == b.(*StringValue).V
	case *BuiltinValue:
		return av.ID == b.(*BuiltinValue).ID
	case *VariableValue:
		return av.Name == b.(*VariableValue).Name
	case *TypeValue:
		bv := b.(*TypeValue)
		return av.Kind == bv.Kind && av.ConcreteTag == bv.ConcreteTag
	case *VectorValue:
		bv := b.(*VectorValue)
		if len(av.Items) != len(bv.Items) {
			return false
		}
		for i := range av.Items {
			if !Equal(av.Items[i], bv.Items[i]) {
				return false
			}
		}
		return true
	case *ListValue:
		bv := b.(*ListValue)
		ai, bi := av.Items(), bv.Items()
		if len(ai) != len(bi) {
			return false
		}
		for i := range ai {
			if !Equal(ai[i], bi[i]) {
				return false
			}
		}
		return true
	case *ExpressionValue:
		return av.Tree.Equal(b.(*ExpressionValue).Tree)
	case *ClosureValue:
		return av.Tree.Equal(b.(*ClosureValue).Tree)
	}
	return false
}

// IsNumeric reports whether v is tagged int, float, or bool (§4.4 `numeric`).
func IsNumeric(v Value) bool {
	switch v.Tag() {
	case TagInt, TagFloat, TagBool:
		return true
	}
	return false
}

// NumericProjection returns the numeric projection used for both equality
// and order comparisons: ints/bools widen to float64, floats widen too.
func NumericProjection(v Value) float64 {
	switch n := v.(type) {
	case *IntValue:
		return float64(n.V)
	case *FloatValue:
		return float64(n.V)
	case *BoolValue:
		return float64(n.V)
	}
	return 0
}

// IsCallable reports whether v is a Builtin or Closure (§4.4 `callable`).
func IsCallable(v Value) bool {
	switch v.Tag() {
	case TagBuiltin, TagClosure:
		return true
	}
	return false
}

// IsIterable reports whether v is string, vector, list, expression, or
// closure (§4.4 `iterable`).
func IsIterable(v Value) bool {
	switch v.Tag() {
	case TagString, TagVector, TagList, TagExpression, TagClosure:
		return true
	}
	return false
}

// IsIndexable reports whether v is vector or list (§4.4 `indexable`).
func IsIndexable(v Value) bool {
	switch v.Tag() {
	case TagVector, TagList:
		return true
	}
	return false
}

// IsSized reports whether v supports Len (§4.8 truthiness: "sized things").
func IsSized(v Value) bool {
	switch v.Tag() {
	case TagString, TagVector, TagList, TagExpression, TagClosure:
		return true
	}
	return false
}

// Len returns the element count of a sized value.
func Len(v Value) int {
	switch x := v.(type) {
	case *StringValue:
		return len(x.V)
	case *VectorValue:
		return len(x.Items)
	case *ListValue:
		return x.Len()
	case *ExpressionValue:
		return x.Tree.Size()
	case *ClosureValue:
		return x.Tree.Size()
	}
	return 0
}
