/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package meta_test

import (
	"context"
	"fmt"

	"github.com/voedger/objmeta/pkg/meta"
)

func Example() {
	g := meta.NewModelGroup()

	shop := meta.NewModel("shop", "shop-module")
	g.AddModel(shop)

	entity := shop.NewObjectDescriptor("Entity")
	entity.AddToOnePropertyDescriptorNamed("id").SetValueType(meta.ValueType_Number)
	if err := entity.AddPropertyValidationRule("idPositive").SetExpression("id == nil || id <= 0"); err != nil {
		panic(err)
	}

	product := shop.NewObjectDescriptor("Product")
	if err := product.SetParent(entity); err != nil {
		panic(err)
	}
	product.AddToOnePropertyDescriptorNamed("title").SetMandatory(true)
	product.AddToManyPropertyDescriptorNamed("tags")
	if err := product.AddPropertyValidationRule("titleRequired").SetExpression(`title == nil || title == ""`); err != nil {
		panic(err)
	}

	fmt.Println(g.ObjectDescriptorForType("Product") == product)
	for _, p := range product.PropertyDescriptors() {
		fmt.Println(p.Name(), p.Cardinality(), p.ValueType())
	}

	i, err := product.NewInstance(context.Background())
	if err != nil {
		panic(err)
	}
	fmt.Println(product.EvaluateRules(i), entity.EvaluateRules(i))

	_ = i.Set("title", "Lamp")
	_ = i.Set("id", 7)
	fmt.Println(product.EvaluateRules(i), entity.EvaluateRules(i))

	fmt.Println(meta.ReferenceFromValue(product).Identifier())

	// Output:
	// true
	// title 1 string
	// tags * string
	// id 1 number
	// [titleRequired] [idPositive]
	// [] []
	// blueprint_product_reference
}
