package runtime

// Kind distinguishes the special type-pattern "kinds" (§3, §4.4) from
// concrete Tag references. A TypeValue with Kind == KindConcrete names one
// of the ordinary Tag values (int, string, vector, ...); the other Kinds
// name a vacuous-to-structural constraint used only inside vecex patterns.
type Kind int

const (
	KindConcrete Kind = iota
	KindAny
	KindBooly
	KindFalsy
	KindTruthy
	KindNumeric
	KindCallable
	KindIterable
	KindIndexable
	KindStar  // repetition marker: zero or more of the preceding position
	KindPlus  // repetition marker: one or more
	KindQmark // repetition marker: zero or one
)

var kindNames = map[Kind]string{
	KindAny:       "any",
	KindBooly:     "booly",
	KindFalsy:     "falsy",
	KindTruthy:    "truthy",
	KindNumeric:   "numeric",
	KindCallable:  "callable",
	KindIterable:  "iterable",
	KindIndexable: "indexable",
	KindStar:      "*",
	KindPlus:      "+",
	KindQmark:     "?",
}

// KindByName resolves a type-pattern token (e.g. "any", "*", "numeric") to
// its Kind. Ordinary type names (e.g. "int") are not resolved here; callers
// should try TagByName first.
func KindByName(name string) (Kind, bool) {
	for k, n := range kindNames {
		if n == name {
			return k, true
		}
	}
	return 0, false
}

// TypeValue names one of the concrete Tags, or a special Kind, as a runtime
// value. Used both as an ordinary value (the `type` constructor, `typeof`)
// and as the payload of vecex pattern tokens.
type TypeValue struct {
	Kind        Kind
	ConcreteTag Tag // valid iff Kind == KindConcrete
	Name        string
}

func (v *TypeValue) Tag() Tag { return TagType }

func (v *TypeValue) String() string {
	return "<Type '" + v.Name + "'>"
}

var _ Value = (*TypeValue)(nil)

// NewConcreteType builds a TypeValue naming an ordinary Tag.
func NewConcreteType(t Tag) *TypeValue {
	return &TypeValue{Kind: KindConcrete, ConcreteTag: t, Name: t.String()}
}

// NewKindType builds a TypeValue naming one of the special kinds.
func NewKindType(k Kind) *TypeValue {
	return &TypeValue{Kind: k, Name: kindNames[k]}
}
