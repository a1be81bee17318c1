// Package engine wires extraction, classification and catalog lookup into
// the single pass that turns a failed run's stderr into a Diagnosis.
package engine

import (
	"github.com/lucasnoah/nodediag/internal/catalog"
	"github.com/lucasnoah/nodediag/internal/diagnose"
)

// Diagnosis is what the report renderer receives.
type Diagnosis struct {
	Record  diagnose.Record    `json:"record"`
	Pattern diagnose.PatternID `json:"pattern"`
	Entry   catalog.Entry      `json:"entry"`
	// Rule is the index of the rule that fired, -1 for the default.
	Rule int `json:"rule"`
}

// Engine holds the immutable rule list and catalog built at startup.
type Engine struct {
	classifier *diagnose.Classifier
	catalog    *catalog.Catalog
}

// New creates an Engine from an already built classifier and catalog.
func New(classifier *diagnose.Classifier, cat *catalog.Catalog) *Engine {
	return &Engine{classifier: classifier, catalog: cat}
}

// Default builds the Engine with the built-in rules and catalog.
func Default() (*Engine, error) {
	cat, err := catalog.Load()
	if err != nil {
		return nil, err
	}
	return New(diagnose.NewClassifier(diagnose.DefaultRules()), cat), nil
}

// Diagnose runs extract → classify → lookup. It never fails.
func (e *Engine) Diagnose(raw string) Diagnosis {
	rec := diagnose.Extract(raw)
	rule := e.classifier.Trace(rec)
	pattern := diagnose.Generic
	if rule >= 0 {
		pattern = e.classifier.Patterns()[rule]
	}
	return Diagnosis{
		Record:  rec,
		Pattern: pattern,
		Entry:   e.catalog.Lookup(string(pattern)),
		Rule:    rule,
	}
}

// Classifier exposes the rule order, for listing.
func (e *Engine) Classifier() *diagnose.Classifier {
	return e.classifier
}

// Catalog exposes the remediation catalog, for listing.
func (e *Engine) Catalog() *catalog.Catalog {
	return e.catalog
}
