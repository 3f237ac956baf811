/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package metaref

import (
	"context"

	"github.com/untillpro/goutils/logger"

	"github.com/voedger/objmeta/pkg/meta"
)

type Resolver struct {
	group   *meta.ModelGroup
	loader  meta.IModuleLoader
	workers int
}

var _ IResolver = (*Resolver)(nil)

func (r *Resolver) Group() *meta.ModelGroup { return r.group }

// Returns loader for modules of model descriptors: own loader of the model,
// then the loader of the resolver, then the loader of the group.
func (r *Resolver) moduleLoader(model *meta.Model) (meta.IModuleLoader, error) {
	if model != nil {
		if l := model.OwnModuleLoader(); l != nil {
			return l, nil
		}
	}
	if r.loader != nil {
		return r.loader, nil
	}
	if l := r.group.ModuleLoader(); l != nil {
		return l, nil
	}
	return nil, meta.ErrNoModuleLoader
}

func (r *Resolver) load(ctx context.Context, model *meta.Model, moduleID string) (meta.Exports, error) {
	l, err := r.moduleLoader(model)
	if err != nil {
		return nil, err
	}
	if logger.IsVerbose() {
		logger.Verbose("loading module", moduleID)
	}
	return l.LoadModule(ctx, moduleID)
}

func (r *Resolver) ResolveModel(ctx context.Context, ref meta.ModelReference) (*meta.Model, error) {
	if m := r.group.ModelForName(ref.Name); m != nil {
		return m, nil
	}
	if ref.ModuleID == "" {
		return nil, meta.ErrNotFound("model «%s»", ref.Name)
	}

	exports, err := r.load(ctx, nil, ref.ModuleID)
	if err != nil {
		return nil, meta.EnrichError(err, "model «%s»", ref.Name)
	}
	export, v, err := pickExport(exports, ref.ModuleID, ref.Name)
	if err != nil {
		return nil, err
	}
	m, ok := v.(*meta.Model)
	if !ok || m == nil {
		return nil, meta.ErrUnexpectedExportType(ref.ModuleID, export, v)
	}

	// model could be registered by concurrent resolution
	if registered := r.group.ModelForName(m.Name()); registered != nil {
		return registered, nil
	}
	r.group.AddModel(m)
	return m, nil
}

func (r *Resolver) ValueFromReference(ctx context.Context, ref meta.ObjectDescriptorReference) (*meta.ObjectDescriptor, error) {
	key := ref.String()
	if isInflight(ctx, key) {
		return nil, ErrReferenceCycleDetected(key)
	}
	ctx = withInflight(ctx, key)

	model, err := r.modelFor(ctx, ref.Model)
	if err != nil {
		return nil, err
	}
	if d := model.ObjectDescriptorForName(ref.Name); d != nil {
		return d, nil
	}
	if ref.ModuleID == "" {
		return nil, meta.ErrNotFound("cannot find object descriptor «%s» in model «%s»", ref.Name, model.Name())
	}

	exports, err := r.load(ctx, model, ref.ModuleID)
	if err != nil {
		return nil, meta.EnrichError(err, "object descriptor «%s»", ref.Name)
	}
	export, v, err := pickExport(exports, ref.ModuleID, ref.Name)
	if err != nil {
		return nil, err
	}
	d, ok := v.(*meta.ObjectDescriptor)
	if !ok || d == nil {
		return nil, meta.ErrUnexpectedExportType(ref.ModuleID, export, v)
	}

	// descriptor could be registered by concurrent resolution
	if registered := model.ObjectDescriptorForName(d.Name()); registered != nil && registered != d {
		return registered, nil
	}
	if d.ObjectDescriptorModule() == "" {
		d.SetObjectDescriptorModule(ref.ModuleID)
	}
	model.AddObjectDescriptor(d)
	return d, nil
}

func (r *Resolver) modelFor(ctx context.Context, ref *meta.ModelReference) (*meta.Model, error) {
	if ref == nil {
		return r.group.DefaultModel(), nil
	}
	return r.ResolveModel(ctx, *ref)
}

func (r *Resolver) ResolveAsync(ctx context.Context, ref meta.ObjectDescriptorReference) *Future[*meta.ObjectDescriptor] {
	return Go(ctx, func(ctx context.Context) (*meta.ObjectDescriptor, error) {
		return r.ValueFromReference(ctx, ref)
	})
}

func (r *Resolver) ResolveAll(ctx context.Context, refs []meta.ObjectDescriptorReference) ([]*meta.ObjectDescriptor, error) {
	res := make([]*meta.ObjectDescriptor, len(refs))
	err := scatterGather(ctx, refs, r.workers,
		func(ctx context.Context, ref meta.ObjectDescriptorReference) (*meta.ObjectDescriptor, error) {
			return r.ValueFromReference(ctx, ref)
		},
		func(i int, d *meta.ObjectDescriptor) {
			res[i] = d
		})
	if err != nil {
		return nil, err
	}
	return res, nil
}

func (r *Resolver) Deserialize(ctx context.Context, doc meta.IDocumentReader) (*meta.ObjectDescriptor, error) {
	d := meta.NewObjectDescriptor("")
	if err := d.DeserializeSelf(doc); err != nil {
		return nil, err
	}

	var mRef *meta.ModelReference
	if ref, ok := d.PendingModelReference(); ok {
		mRef = &ref
	}
	self := meta.ObjectDescriptorReference{Name: d.Name(), ModuleID: d.ObjectDescriptorModule(), Model: mRef}
	ctx = withInflight(ctx, self.String())

	model, err := r.modelFor(ctx, mRef)
	if err != nil {
		return nil, meta.EnrichError(err, "object descriptor «%s»", d.Name())
	}

	if pRef, ok := d.ParentReference(); ok {
		parent, err := r.ValueFromReference(ctx, pRef)
		if err != nil {
			return nil, meta.EnrichError(err, "parent of «%s»", d.Name())
		}
		if err := d.SetParent(parent); err != nil {
			return nil, err
		}
	}

	model.AddObjectDescriptor(d)
	if logger.IsVerbose() {
		logger.Verbose("object descriptor", d.Name(), "registered in model", model.Name())
	}
	return d, nil
}

func (r *Resolver) ResolveAssociationTargets(ctx context.Context, d *meta.ObjectDescriptor) error {
	for _, p := range d.OwnPropertyDescriptors() {
		a, ok := p.(*meta.AssociationDescriptor)
		if !ok {
			continue
		}
		if ref, ok := a.PendingTargetReference(); ok {
			target, err := r.ValueFromReference(ctx, ref)
			if err != nil {
				return meta.EnrichError(err, "target of «%s.%s»", d.Name(), a.Name())
			}
			a.SetTargetDescriptor(target)
		}
		if name := a.PendingInverseName(); name != "" {
			target := a.TargetDescriptor()
			if target == nil {
				continue
			}
			inverse, ok := target.PropertyDescriptorForName(name).(*meta.AssociationDescriptor)
			if !ok {
				return meta.ErrNotFound("inverse association «%s.%s» of «%s.%s»", target.Name(), name, d.Name(), a.Name())
			}
			a.SetInverse(inverse)
		}
	}
	return nil
}
