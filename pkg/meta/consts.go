/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package meta

import "math"

// Property cardinality.
//
// Cardinality_ToOne for to-one properties, Cardinality_ToMany for to-many.
type Cardinality int

const (
	Cardinality_ToOne  Cardinality = 1
	Cardinality_ToMany Cardinality = math.MaxInt32
)

// Kinds of property descriptors
type PropertyKind uint8

const (
	PropertyKind_null PropertyKind = iota
	PropertyKind_Simple
	PropertyKind_Association
	PropertyKind_Derived

	PropertyKind_count
)

// Property value types
type ValueType string

const (
	ValueType_String  ValueType = "string"
	ValueType_Number  ValueType = "number"
	ValueType_Boolean ValueType = "boolean"
	ValueType_Date    ValueType = "date"
	ValueType_Object  ValueType = "object"
	ValueType_List    ValueType = "list"
)

const (
	DefaultModelName            = "default"
	DefaultObjectDescriptorName = "default"
	DefaultCustomPrototype      = false

	// Name of the export used when module exports single object descriptor or model
	RootExportName = "root"

	// Name of the root prototype
	BasePrototypeName = "Montage"

	unnamed = "unnamed"
)

// Serialization keys of the object descriptor document
const (
	Key_Name                      = "name"
	Key_Model                     = "model"
	Key_ObjectDescriptorModule    = "objectDescriptorModule"
	Key_Parent                    = "parent"
	Key_CustomPrototype           = "customPrototype"
	Key_PropertyDescriptors       = "propertyDescriptors"
	Key_PropertyDescriptorsGroups = "propertyDescriptorsGroups"
	Key_PropertyDescriptorsOrder  = "propertyDescriptorsGroupsOrder"
	Key_EventObjectDescriptors    = "eventObjectDescriptors"
	Key_PropertyValidationRules   = "propertyValidationRules"
)

// Serialization keys of references
const (
	Key_ObjectDescriptorName = "objectDescriptorName"
	Key_ObjectModelReference = "objectModelReference"
	Key_ModelName            = "modelName"
	Key_ModelModule          = "modelModule"
)

// Serialization keys of property descriptors, events and rules
const (
	key_Kind               = "kind"
	key_Cardinality        = "cardinality"
	key_ValueType          = "valueType"
	key_Mandatory          = "mandatory"
	key_ReadOnly           = "readOnly"
	key_DefaultValue       = "defaultValue"
	key_TargetDescriptor   = "targetDescriptor"
	key_Inverse            = "inverse"
	key_Dependencies       = "dependencies"
	key_Getter             = "getterDefinition"
	key_MessageKey         = "messageKey"
	key_ValidationSelector = "validationSelector"
)

// Serialization hint for values which are references
const Hint_Reference = "reference"
