package adapter

import (
	"context"

	"github.com/diwise/asset-adapter/pkg/oaio/manager"
	"github.com/diwise/asset-adapter/pkg/oaio/types"
)

// gateway resolves traits for references using the resolution context of
// the current adapter session
type gateway struct {
	m    *manager.Manager
	mctx *manager.Context
}

func (g gateway) resolve(ctx context.Context, id string, traitIDs ...string) (*types.TraitsData, error) {
	ref, err := g.m.CreateEntityReference(id)
	if err != nil {
		return nil, err
	}

	return g.resolveRef(ctx, ref, types.NewTraitSet(traitIDs...))
}

func (g gateway) resolveRef(ctx context.Context, ref manager.EntityReference, traitSet types.TraitSet) (*types.TraitsData, error) {
	return g.m.Resolve(ctx, ref, traitSet, types.ResolveAccessRead, g.mctx)
}

func (g gateway) resolveBatch(ctx context.Context, refs []manager.EntityReference, traitIDs ...string) ([]*types.TraitsData, error) {
	return g.m.ResolveBatch(ctx, refs, types.NewTraitSet(traitIDs...), types.ResolveAccessRead, g.mctx)
}
