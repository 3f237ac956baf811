/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package meta

// Returns own validation rules in insertion order followed by inherited ones.
//
// Result is recalculated on every call.
func (d *ObjectDescriptor) PropertyValidationRules() []*PropertyValidationRule {
	d.mu.Lock()
	res := make([]*PropertyValidationRule, 0, len(d.ruleNames))
	for _, n := range d.ruleNames {
		res = append(res, d.rules[n])
	}
	parent := d.parent
	d.mu.Unlock()

	if parent != nil {
		res = append(res, parent.PropertyValidationRules()...)
	}
	return res
}

// Returns own or inherited validation rule by name. Returns nil if not found.
//
// Misses are not cached.
func (d *ObjectDescriptor) PropertyValidationRuleForName(name string) *PropertyValidationRule {
	d.mu.Lock()
	r, ok := d.rules[name]
	parent := d.parent
	d.mu.Unlock()

	if ok {
		return r
	}
	if parent != nil {
		return parent.PropertyValidationRuleForName(name)
	}
	return nil
}

// Adds own validation rule, if it does not exist. Returns new or existing rule.
func (d *ObjectDescriptor) AddPropertyValidationRule(name string) *PropertyValidationRule {
	d.mu.Lock()
	defer d.mu.Unlock()

	if r, ok := d.rules[name]; ok {
		return r
	}
	r := newPropertyValidationRule(name, d)
	d.rules[name] = r
	d.ruleNames = append(d.ruleNames, name)
	return r
}

// Removes own validation rule. Returns removed rule or nil if rule does not exist.
func (d *ObjectDescriptor) RemovePropertyValidationRule(name string) *PropertyValidationRule {
	d.mu.Lock()
	defer d.mu.Unlock()

	r, ok := d.rules[name]
	if !ok {
		return nil
	}
	delete(d.rules, name)
	for i, n := range d.ruleNames {
		if n == name {
			d.ruleNames = append(d.ruleNames[:i], d.ruleNames[i+1:]...)
			break
		}
	}
	return r
}

// Evaluates own rules against instance.
//
// Returns message keys of fired rules in rules insertion order. Inherited rules are not evaluated,
// call parent EvaluateRules to validate against them.
func (d *ObjectDescriptor) EvaluateRules(instance any) []string {
	d.mu.Lock()
	rules := make([]*PropertyValidationRule, 0, len(d.ruleNames))
	for _, n := range d.ruleNames {
		rules = append(rules, d.rules[n])
	}
	d.mu.Unlock()

	messages := []string{}
	for _, r := range rules {
		if r.EvaluateRule(instance) {
			messages = append(messages, r.MessageKey())
		}
	}
	return messages
}
