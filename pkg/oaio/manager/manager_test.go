package manager

import (
	"context"
	"errors"
	"strings"
	"testing"

	oaioerrors "github.com/diwise/asset-adapter/pkg/oaio/errors"
	"github.com/diwise/asset-adapter/pkg/oaio/types"
	"github.com/matryer/is"
)

func TestThatInvalidReferencesAreRejected(t *testing.T) {
	is, m, _ := testSetup(t)

	_, err := m.CreateEntityReference("nope")
	is.True(errors.Is(err, oaioerrors.ErrInvalidReference))

	_, ok := m.CreateEntityReferenceIfValid("nope")
	is.True(!ok)

	ref, err := m.CreateEntityReference("test://a")
	is.NoErr(err)
	is.Equal(ref.String(), "test://a")
}

func TestThatResolveBatchFailsWhenThePluginDropsResults(t *testing.T) {
	is, m, impl := testSetup(t)

	impl.ResolveFunc = func(ctx context.Context, refs []string, traitSet types.TraitSet, access types.ResolveAccess, mctx *Context) ([]*types.TraitsData, error) {
		return []*types.TraitsData{types.NewTraitsData()}, nil
	}

	a, _ := m.CreateEntityReference("test://a")
	b, _ := m.CreateEntityReference("test://b")

	_, err := m.ResolveBatch(context.Background(), []EntityReference{a, b}, types.NewTraitSet(), types.ResolveAccessRead, m.CreateContext())
	is.True(errors.Is(err, oaioerrors.ErrBadResponse))
}

func TestThatResolveBatchPreservesOrder(t *testing.T) {
	is, m, impl := testSetup(t)

	impl.ResolveFunc = func(ctx context.Context, refs []string, traitSet types.TraitSet, access types.ResolveAccess, mctx *Context) ([]*types.TraitsData, error) {
		results := []*types.TraitsData{}
		for _, r := range refs {
			results = append(results, types.NewTraitsData(types.Property("t", "ref", r)))
		}
		return results, nil
	}

	refs := []EntityReference{}
	for _, r := range []string{"test://c", "test://a", "test://b"} {
		ref, _ := m.CreateEntityReference(r)
		refs = append(refs, ref)
	}

	results, err := m.ResolveBatch(context.Background(), refs, types.NewTraitSet("t"), types.ResolveAccessRead, m.CreateContext())
	is.NoErr(err)
	is.Equal(len(results), 3)
	is.Equal(results[0].StringProperty("t", "ref", ""), "test://c")
	is.Equal(results[2].StringProperty("t", "ref", ""), "test://b")
}

func TestThatEmptyBatchDoesNotCallThePlugin(t *testing.T) {
	is, m, impl := testSetup(t)

	results, err := m.ResolveBatch(context.Background(), nil, types.NewTraitSet(), types.ResolveAccessRead, m.CreateContext())
	is.NoErr(err)
	is.Equal(len(results), 0)
	is.Equal(len(impl.ResolveCalls()), 0)
}

func TestThatPagesDrainsUntilAnEmptyPage(t *testing.T) {
	is, m, impl := testSetup(t)

	pager := newTestPager([]string{"test://1", "test://2"}, []string{"test://3"})
	impl.GetWithRelationshipFunc = func(ctx context.Context, ref string, relationship *types.TraitsData, pageSize int, access types.RelationsAccess, mctx *Context, resultTraitSet types.TraitSet) (PagerInterface, error) {
		return pager, nil
	}

	ref, _ := m.CreateEntityReference("test://a")
	p, err := m.GetWithRelationship(context.Background(), ref, types.NewTraitsData(), 2, types.RelationsAccessRead, m.CreateContext(), types.NewTraitSet())
	is.NoErr(err)

	all := []string{}
	for page, err := range p.Pages(context.Background()) {
		is.NoErr(err)
		for _, r := range page {
			all = append(all, r.String())
		}
	}
	p.Close()
	p.Close()

	is.Equal(strings.Join(all, ","), "test://1,test://2,test://3")
	is.Equal(len(pager.CloseCalls()), 1)
}

func TestThatPageSizeMustBePositive(t *testing.T) {
	is, m, _ := testSetup(t)

	ref, _ := m.CreateEntityReference("test://a")
	_, err := m.GetWithRelationship(context.Background(), ref, types.NewTraitsData(), 0, types.RelationsAccessRead, m.CreateContext(), types.NewTraitSet())
	is.True(err != nil)
}

func TestThatHybridPluginSystemPrefersTheFirstSystem(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	first := NewNativePluginSystem(nil, NativePlugin{Identifier: "x", New: func() ManagerInterface {
		return &ManagerInterfaceMock{IdentifierFunc: func() string { return "first" }}
	}})
	second := NewNativePluginSystem(nil,
		NativePlugin{Identifier: "x", New: func() ManagerInterface {
			return &ManagerInterfaceMock{IdentifierFunc: func() string { return "second" }}
		}},
		NativePlugin{Identifier: "y", New: func() ManagerInterface {
			return &ManagerInterfaceMock{IdentifierFunc: func() string { return "y" }}
		}},
	)

	hybrid := NewHybridPluginSystem(nil, first, second)

	ids, err := hybrid.Identifiers(ctx)
	is.NoErr(err)
	is.Equal(strings.Join(ids, ","), "x,y")

	impl, err := hybrid.Instantiate(ctx, "x")
	is.NoErr(err)
	is.Equal(impl.Identifier(), "first")

	_, err = hybrid.Instantiate(ctx, "z")
	is.True(errors.Is(err, oaioerrors.ErrConfiguration))
}

func TestThatNoDefaultManagerIsReturnedWhenNoneIsConfigured(t *testing.T) {
	is := is.New(t)

	m, err := DefaultManagerForInterface(context.Background(), DefaultManagerConfig{}, NewHostInterface("h", "H"), NewNativePluginSystem(nil), nil)
	is.NoErr(err)
	is.True(m == nil)
}

func TestThatDefaultManagerIsInitializedWithSettings(t *testing.T) {
	is := is.New(t)

	var received map[string]any
	impl := &ManagerInterfaceMock{
		InitializeFunc: func(ctx context.Context, settings map[string]any, session HostSession) error {
			received = settings
			is.Equal(session.Host.Identifier(), "h")
			return nil
		},
	}

	factory := NewNativePluginSystem(nil, NativePlugin{Identifier: "m", New: func() ManagerInterface { return impl }})
	cfg := DefaultManagerConfig{Identifier: "m", Settings: map[string]any{"library": "/tmp/lib.yaml"}}

	m, err := DefaultManagerForInterface(context.Background(), cfg, NewHostInterface("h", "H"), factory, nil)
	is.NoErr(err)
	is.True(m != nil)
	is.Equal(received["library"], "/tmp/lib.yaml")
}

func TestFileURLPathConversion(t *testing.T) {
	is := is.New(t)
	c := NewFileURLPathConverter()

	p, err := c.PathFromURL("file:///mnt/shows/a%20b/c.exr")
	is.NoErr(err)
	is.Equal(p, "/mnt/shows/a b/c.exr")

	p, err = c.PathFromURL("file://localhost/tmp/x")
	is.NoErr(err)
	is.Equal(p, "/tmp/x")

	for _, bad := range []string{"https://example.com/a", "file://server/share/a", "file:///a%2Fb"} {
		_, err = c.PathFromURL(bad)
		is.True(errors.Is(err, oaioerrors.ErrInvalidLocation))
	}

	u, err := c.URLFromPath("/tmp/x")
	is.NoErr(err)
	is.Equal(u, "file:///tmp/x")
}

func testSetup(t *testing.T) (*is.I, *Manager, *ManagerInterfaceMock) {
	is := is.New(t)

	impl := &ManagerInterfaceMock{
		IdentifierFunc: func() string { return "test.manager" },
		IsEntityReferenceStringFunc: func(s string) bool {
			return strings.HasPrefix(s, "test://")
		},
	}

	return is, NewManager(impl, HostSession{Host: NewHostInterface("h", "H")}), impl
}

func newTestPager(pages ...[]string) *PagerInterfaceMock {
	current := 0

	return &PagerInterfaceMock{
		HasNextFunc: func(ctx context.Context) (bool, error) {
			return current+1 < len(pages), nil
		},
		GetFunc: func(ctx context.Context) ([]string, error) {
			if current >= len(pages) {
				return []string{}, nil
			}
			return pages[current], nil
		},
		NextFunc: func(ctx context.Context) error {
			current++
			return nil
		},
		CloseFunc: func() {},
	}
}
