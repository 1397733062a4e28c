package core

import "backcore/pkg/domain"

// NewRulesEngine constructs an empty engine instance.
func NewRulesEngine() *RulesEngine {
	return domain.NewRulesEngine()
}

// NewDefaultRulesEngine builds a rules engine with the built-in advisory set.
// Both built-ins emit warnings only so no write is ever blocked by them.
func NewDefaultRulesEngine() *RulesEngine {
	engine := NewRulesEngine()
	engine.Register(NewDanglingReferenceRule())
	engine.Register(NewCategoryFlowRule())
	return engine
}
