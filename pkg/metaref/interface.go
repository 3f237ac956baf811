/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package metaref

import (
	"context"

	"github.com/voedger/objmeta/pkg/meta"
)

// Resolves serialized references to registered models and object descriptors.
type IResolver interface {
	// Returns model by reference. Model not registered in the group is loaded from its module.
	ResolveModel(ctx context.Context, ref meta.ModelReference) (*meta.Model, error)

	// Returns object descriptor by reference. Model is always resolved first.
	// Descriptor not registered in the model is loaded from its module.
	ValueFromReference(ctx context.Context, ref meta.ObjectDescriptorReference) (*meta.ObjectDescriptor, error)

	// Starts asynchronous resolution.
	ResolveAsync(ctx context.Context, ref meta.ObjectDescriptorReference) *Future[*meta.ObjectDescriptor]

	// Resolves references concurrently. Results follow order of references.
	// The first error cancels the rest of resolutions.
	ResolveAll(ctx context.Context, refs []meta.ObjectDescriptorReference) ([]*meta.ObjectDescriptor, error)

	// Reads object descriptor from document, resolves its model and parent and registers
	// descriptor into the model. Association targets are left pending.
	Deserialize(ctx context.Context, doc meta.IDocumentReader) (*meta.ObjectDescriptor, error)

	// Resolves pending targets and inverses of own associations of descriptor.
	ResolveAssociationTargets(ctx context.Context, d *meta.ObjectDescriptor) error
}
