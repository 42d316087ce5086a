package manager

import (
	"context"
	"fmt"

	"github.com/diwise/asset-adapter/pkg/oaio/errors"
	"github.com/diwise/asset-adapter/pkg/oaio/types"
)

// Manager is the host facing wrapper around a ManagerInterface. It owns the
// creation of EntityReferences and checks that the plugin honours the shape
// of its batch responses.
type Manager struct {
	impl    ManagerInterface
	session HostSession
}

func NewManager(impl ManagerInterface, session HostSession) *Manager {
	return &Manager{
		impl:    impl,
		session: session,
	}
}

func (m *Manager) Identifier() string {
	return m.impl.Identifier()
}

func (m *Manager) DisplayName() string {
	return m.impl.DisplayName()
}

func (m *Manager) Info() map[string]any {
	return m.impl.Info()
}

func (m *Manager) Initialize(ctx context.Context, settings map[string]any) error {
	return m.impl.Initialize(ctx, settings, m.session)
}

func (m *Manager) CreateContext() *Context {
	return newContext()
}

func (m *Manager) IsEntityReferenceString(s string) bool {
	return m.impl.IsEntityReferenceString(s)
}

func (m *Manager) CreateEntityReference(s string) (EntityReference, error) {
	if !m.impl.IsEntityReferenceString(s) {
		return EntityReference{}, errors.NewInvalidReferenceError(
			fmt.Sprintf("%q is not a valid entity reference for %s", s, m.impl.Identifier()),
		)
	}
	return EntityReference{ref: s}, nil
}

func (m *Manager) CreateEntityReferenceIfValid(s string) (EntityReference, bool) {
	if !m.impl.IsEntityReferenceString(s) {
		return EntityReference{}, false
	}
	return EntityReference{ref: s}, true
}

func (m *Manager) Resolve(ctx context.Context, ref EntityReference, traitSet types.TraitSet, access types.ResolveAccess, mctx *Context) (*types.TraitsData, error) {
	results, err := m.ResolveBatch(ctx, []EntityReference{ref}, traitSet, access, mctx)
	if err != nil {
		return nil, err
	}
	return results[0], nil
}

// ResolveBatch returns one TraitsData per reference, in the order of refs
func (m *Manager) ResolveBatch(ctx context.Context, refs []EntityReference, traitSet types.TraitSet, access types.ResolveAccess, mctx *Context) ([]*types.TraitsData, error) {
	if len(refs) == 0 {
		return []*types.TraitsData{}, nil
	}

	results, err := m.impl.Resolve(ctx, unwrapReferences(refs), traitSet, access, mctx)
	if err != nil {
		return nil, err
	}

	if len(results) != len(refs) {
		return nil, errors.NewBadResponseError(
			fmt.Sprintf("%s returned %d results when resolving %d references", m.impl.Identifier(), len(results), len(refs)),
		)
	}

	for i := range results {
		if results[i] == nil {
			results[i] = types.NewTraitsData()
		}
	}

	return results, nil
}

func (m *Manager) GetWithRelationship(ctx context.Context, ref EntityReference, relationship *types.TraitsData, pageSize int, access types.RelationsAccess, mctx *Context, resultTraitSet types.TraitSet) (*Pager, error) {
	if pageSize < 1 {
		return nil, errors.NewInternalError(fmt.Sprintf("page size must be greater than zero, got %d", pageSize))
	}

	p, err := m.impl.GetWithRelationship(ctx, ref.ref, relationship, pageSize, access, mctx, resultTraitSet)
	if err != nil {
		return nil, err
	}

	return &Pager{impl: p}, nil
}

func (m *Manager) EntityTraits(ctx context.Context, ref EntityReference, access types.EntityTraitsAccess, mctx *Context) (types.TraitSet, error) {
	ts, err := m.impl.EntityTraits(ctx, ref.ref, access, mctx)
	if err != nil {
		return nil, err
	}
	if ts == nil {
		ts = types.NewTraitSet()
	}
	return ts, nil
}

func (m *Manager) ManagementPolicy(ctx context.Context, traitSet types.TraitSet, access types.PolicyAccess, mctx *Context) (*types.TraitsData, error) {
	policy, err := m.impl.ManagementPolicy(ctx, traitSet, access, mctx)
	if err != nil {
		return nil, err
	}
	if policy == nil {
		policy = types.NewTraitsData()
	}
	return policy, nil
}

func (m *Manager) Preflight(ctx context.Context, ref EntityReference, traitsData *types.TraitsData, access types.PublishingAccess, mctx *Context) (EntityReference, error) {
	working, err := m.impl.Preflight(ctx, ref.ref, traitsData, access, mctx)
	if err != nil {
		return EntityReference{}, err
	}
	return EntityReference{ref: working}, nil
}

func (m *Manager) Register(ctx context.Context, ref EntityReference, traitsData *types.TraitsData, access types.PublishingAccess, mctx *Context) (EntityReference, error) {
	final, err := m.impl.Register(ctx, ref.ref, traitsData, access, mctx)
	if err != nil {
		return EntityReference{}, err
	}
	return EntityReference{ref: final}, nil
}
