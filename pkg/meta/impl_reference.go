/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package meta

// Serializable placeholder for model.
type ModelReference struct {
	Name     string
	ModuleID string
}

// Serializable placeholder for object descriptor.
//
// Model is nil if descriptor belongs to default model.
type ObjectDescriptorReference struct {
	Name     string
	ModuleID string
	Model    *ModelReference
}

// Returns reference to object descriptor.
//
// Model reference is omitted if descriptor belongs to default model or is not added to any model.
func ReferenceFromValue(d *ObjectDescriptor) ObjectDescriptorReference {
	if d == nil {
		return ObjectDescriptorReference{}
	}
	ref := ObjectDescriptorReference{
		Name:     d.Name(),
		ModuleID: d.ObjectDescriptorModule(),
	}
	if m := d.ownerModel(); m != nil && !m.IsDefault() {
		mRef := ModelReferenceFromValue(m)
		ref.Model = &mRef
	} else if mRef, ok := d.PendingModelReference(); ok {
		ref.Model = &mRef
	}
	return ref
}

// Returns reference to model.
func ModelReferenceFromValue(m *Model) ModelReference {
	if m == nil {
		return ModelReference{}
	}
	return ModelReference{Name: m.Name(), ModuleID: m.ModuleID()}
}

// Humane identifier used as serialization label.
//
// Different descriptors with the same name in different models have the same identifier.
func (r ObjectDescriptorReference) Identifier() string {
	return "blueprint_" + nameOrUnnamed(r.Name) + "_reference"
}

func (r ObjectDescriptorReference) String() string {
	if r.Model != nil {
		return r.Model.Name + "/" + r.Name + "@" + r.ModuleID
	}
	return r.Name + "@" + r.ModuleID
}

// Returns plain data representation
func (r ObjectDescriptorReference) ToData() map[string]any {
	data := map[string]any{Key_ObjectDescriptorName: r.Name}
	if r.ModuleID != "" {
		data[Key_ObjectDescriptorModule] = r.ModuleID
	}
	if r.Model != nil {
		data[Key_ObjectModelReference] = r.Model.ToData()
	}
	return data
}

// Humane identifier used as serialization label.
func (r ModelReference) Identifier() string {
	return "model_" + nameOrUnnamed(r.Name) + "_reference"
}

func (r ModelReference) String() string {
	return r.Name + "@" + r.ModuleID
}

// Returns plain data representation
func (r ModelReference) ToData() map[string]any {
	data := map[string]any{Key_ModelName: r.Name}
	if r.ModuleID != "" {
		data[Key_ModelModule] = r.ModuleID
	}
	return data
}

// Reads object descriptor reference from plain data
func ObjectDescriptorReferenceFromData(v any) (ObjectDescriptorReference, error) {
	data, ok := dataMap(v)
	if !ok {
		return ObjectDescriptorReference{}, ErrInvalid("object descriptor reference %v", v)
	}
	ref := ObjectDescriptorReference{}
	ref.Name, _ = dataString(data[Key_ObjectDescriptorName])
	ref.ModuleID, _ = dataString(data[Key_ObjectDescriptorModule])
	if ref.Name == "" && ref.ModuleID == "" {
		return ObjectDescriptorReference{}, ErrInvalid("empty object descriptor reference %v", v)
	}
	if m, ok := data[Key_ObjectModelReference]; ok && m != nil {
		mRef, err := ModelReferenceFromData(m)
		if err != nil {
			return ObjectDescriptorReference{}, err
		}
		ref.Model = &mRef
	}
	return ref, nil
}

// Reads model reference from plain data
func ModelReferenceFromData(v any) (ModelReference, error) {
	data, ok := dataMap(v)
	if !ok {
		return ModelReference{}, ErrInvalid("model reference %v", v)
	}
	ref := ModelReference{}
	ref.Name, _ = dataString(data[Key_ModelName])
	ref.ModuleID, _ = dataString(data[Key_ModelModule])
	if ref.Name == "" {
		return ModelReference{}, ErrInvalid("model reference without name %v", v)
	}
	return ref, nil
}
