package ast

// Scope owns one lexical region: an ordered statement list, an ordered
// declaration list, local type/function bindings, and a non-owning
// parent link used only for lookup.
//
// Scope lives in package ast, not a separate package, because the two
// are mutually recursive by construction (spec.md invariant 1: "a
// scope is owned by its enclosing AST node") — ForLoopStatement,
// ConditionalStatement, and FunctionDefinitionStatement all embed
// *Scope, and Scope's own statement/declaration lists hold ast.Node
// values. Go has no forward-declared types to break the cycle the way
// the reference C++ implementation's single scc.ast module does
// (scope.cpp living alongside the node headers); merging the two
// packages is the idiomatic equivalent.
type Scope struct {
	Statements           []Statement
	VariableDeclarations []*VariableDeclaration

	Parent *Scope // non-owning; never mutated through this pointer

	types     map[string]TypeInfo
	functions map[string]*FunctionDefinitionStatement
	funcOrder []string
}

// NewScope creates a scope whose parent is parent. A nil parent marks
// the global scope, which is pre-populated with the "int" and "void"
// built-in types.
func NewScope(parent *Scope) *Scope {
	s := &Scope{
		Parent:    parent,
		types:     make(map[string]TypeInfo),
		functions: make(map[string]*FunctionDefinitionStatement),
	}
	if parent == nil {
		s.types["int"] = TypeInfo{FullName: "int"}
		s.types["void"] = TypeInfo{FullName: "void"}
	}
	return s
}

// QueryType walks the parent chain looking up a type name.
func (s *Scope) QueryType(name string) (TypeInfo, bool) {
	for cur := s; cur != nil; cur = cur.Parent {
		if t, ok := cur.types[name]; ok {
			return t, true
		}
	}
	return TypeInfo{}, false
}

// AddFunction inserts a local function binding into this scope only.
func (s *Scope) AddFunction(name string, def *FunctionDefinitionStatement) {
	if _, exists := s.functions[name]; !exists {
		s.funcOrder = append(s.funcOrder, name)
	}
	s.functions[name] = def
}

// QueryFunction walks the parent chain looking up a function name.
func (s *Scope) QueryFunction(name string) (*FunctionDefinitionStatement, bool) {
	for cur := s; cur != nil; cur = cur.Parent {
		if f, ok := cur.functions[name]; ok {
			return f, true
		}
	}
	return nil, false
}

// Functions returns this scope's local function bindings in insertion
// order (the order go-mix's scope.go documents for its own function
// binding list).
func (s *Scope) Functions() []*FunctionDefinitionStatement {
	out := make([]*FunctionDefinitionStatement, 0, len(s.funcOrder))
	for _, name := range s.funcOrder {
		out = append(out, s.functions[name])
	}
	return out
}
