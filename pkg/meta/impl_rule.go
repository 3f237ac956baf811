/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package meta

import (
	"github.com/untillpro/goutils/logger"
)

// # Property validation rule
//
// Named predicate evaluated against instances of the owner descriptor.
// Predicate is a Go function or an expression. Only expressions are serialized.
type PropertyValidationRule struct {
	name       string
	messageKey string
	owner      *ObjectDescriptor
	predicate  func(instance any) bool
	selector   *expression
}

func newPropertyValidationRule(name string, owner *ObjectDescriptor) *PropertyValidationRule {
	return &PropertyValidationRule{name: name, owner: owner}
}

func (r *PropertyValidationRule) Name() string { return r.name }

func (r *PropertyValidationRule) Owner() *ObjectDescriptor { return r.owner }

// Returns message key. Rule name is used if message key is not set.
func (r *PropertyValidationRule) MessageKey() string {
	if r.messageKey == "" {
		return r.name
	}
	return r.messageKey
}

func (r *PropertyValidationRule) SetMessageKey(key string) *PropertyValidationRule {
	r.messageKey = key
	return r
}

// Sets Go predicate. Predicate takes precedence over expression.
func (r *PropertyValidationRule) SetPredicate(p func(instance any) bool) *PropertyValidationRule {
	r.predicate = p
	return r
}

// Compiles and sets rule expression, e.g. `name == ""`.
func (r *PropertyValidationRule) SetExpression(source string) error {
	if source == "" {
		r.selector = nil
		return nil
	}
	e, err := compileExpression(source)
	if err != nil {
		return EnrichError(err, "rule «%s»", r.name)
	}
	r.selector = e
	return nil
}

func (r *PropertyValidationRule) Expression() string {
	if r.selector == nil {
		return ""
	}
	return r.selector.source
}

// Returns true if rule fires for instance.
//
// Rule without predicate and expression never fires.
// Expression evaluation errors are logged and do not fire the rule.
func (r *PropertyValidationRule) EvaluateRule(instance any) bool {
	if r.predicate != nil {
		return r.predicate(instance)
	}
	if r.selector == nil {
		return false
	}
	v, err := r.selector.run(instance)
	if err != nil {
		logger.Warning("rule", r.name, "evaluation failed:", err)
		return false
	}
	return truthy(v)
}

func (r *PropertyValidationRule) serialize() map[string]any {
	data := map[string]any{Key_Name: r.name}
	if r.messageKey != "" && r.messageKey != r.name {
		data[key_MessageKey] = r.messageKey
	}
	if r.selector != nil {
		data[key_ValidationSelector] = r.selector.source
	}
	return data
}

func (r *PropertyValidationRule) deserialize(data map[string]any) error {
	r.messageKey, _ = dataString(data[key_MessageKey])
	if v, ok := data[key_ValidationSelector]; ok {
		src, ok := dataString(v)
		if !ok {
			return ErrInvalid("rule «%s» selector %v", r.name, v)
		}
		return r.SetExpression(src)
	}
	return nil
}
