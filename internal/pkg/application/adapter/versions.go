package adapter

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/diwise/asset-adapter/pkg/oaio/manager"
	"github.com/diwise/asset-adapter/pkg/oaio/types"
	"github.com/diwise/asset-adapter/pkg/oaio/types/specifications"
	"github.com/diwise/asset-adapter/pkg/oaio/types/traits"
)

// PageSize is the page size hint used when listing all versions of an entity
const PageSize int = 256

// versionWalker queries the "is another version of" relationship.
//
// Filtering by a version tag relies on the manager matching the specified
// tag exactly: a query for "latest" must not return a reference that was
// resolved as "v2", and a query for "v2" must not return the "latest" one.
type versionWalker struct {
	gw     gateway
	logger *slog.Logger
}

func (w versionWalker) ListVersionTags(ctx context.Context, id string) ([]string, error) {
	ref, err := w.gw.m.CreateEntityReference(id)
	if err != nil {
		return nil, err
	}

	pager, err := w.gw.m.GetWithRelationship(
		ctx, ref, specifications.EntityVersionsRelationship.Create(), PageSize,
		types.RelationsAccessRead, w.gw.mctx, types.NewTraitSet(),
	)
	if err != nil {
		return nil, err
	}
	defer pager.Close()

	refs := []manager.EntityReference{}
	for page, err := range pager.Pages(ctx) {
		if err != nil {
			return nil, err
		}
		refs = append(refs, page...)
	}

	tags := make([]string, 0, len(refs))
	if len(refs) == 0 {
		return tags, nil
	}

	versions, err := w.gw.resolveBatch(ctx, refs, traits.VersionID)
	if err != nil {
		return nil, err
	}

	for _, td := range versions {
		tags = append(tags, traits.Version{Data: td}.SpecifiedTag(""))
	}

	return tags, nil
}

// ReferenceForVersion returns the reference of entity id at version tag.
// Only the first match is used, and false is returned if there is none.
func (w versionWalker) ReferenceForVersion(ctx context.Context, id, tag string) (manager.EntityReference, bool, error) {
	ref, err := w.gw.m.CreateEntityReference(id)
	if err != nil {
		return manager.EntityReference{}, false, err
	}

	relationship := specifications.EntityVersionsRelationship.Create()
	traits.Version{Data: relationship}.SetSpecifiedTag(tag)

	pager, err := w.gw.m.GetWithRelationship(
		ctx, ref, relationship, 1, types.RelationsAccessRead, w.gw.mctx, types.NewTraitSet(),
	)
	if err != nil {
		return manager.EntityReference{}, false, err
	}
	defer pager.Close()

	hasNext, err := pager.HasNext(ctx)
	if err != nil {
		return manager.EntityReference{}, false, err
	}

	if hasNext {
		w.logger.Warn("more than one result querying specific version, ignoring remainder", "asset", id, "version", tag)
	}

	page, err := pager.Get(ctx)
	if err != nil {
		return manager.EntityReference{}, false, err
	}

	if len(page) == 0 {
		w.logger.Debug("no results querying specific version", "asset", id, "version", tag)
		return manager.EntityReference{}, false, nil
	}

	if len(page) > 1 {
		ignored := make([]string, 0, len(page)-1)
		for _, r := range page[1:] {
			ignored = append(ignored, r.String())
		}
		w.logger.Warn(fmt.Sprintf("ignoring %d extra results querying specific version", len(ignored)),
			"asset", id, "version", tag, "ignored", ignored)
	}

	return page[0], true, nil
}
