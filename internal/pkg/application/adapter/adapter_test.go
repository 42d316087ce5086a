package adapter

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	oaioerrors "github.com/diwise/asset-adapter/pkg/oaio/errors"
	"github.com/diwise/asset-adapter/pkg/oaio/manager"
	"github.com/diwise/asset-adapter/pkg/oaio/types"
	"github.com/diwise/asset-adapter/pkg/oaio/types/specifications"
	"github.com/diwise/asset-adapter/pkg/oaio/types/traits"
	"github.com/matryer/is"
)

const pony string = "myasset://pony"

func TestGetFields(t *testing.T) {
	is, ctx, backend, a := testSetup(t)

	backend.entities[pony] = types.NewTraitsData(
		types.Property(traits.DisplayNameID, "name", "Pony"),
		types.Property(traits.VersionID, "specifiedTag", "latest"),
		types.Property(traits.VersionID, "stableTag", "v2"),
	)

	fields, err := a.GetFields(ctx, pony, false)
	is.NoErr(err)
	is.Equal(fields, FieldMap{FieldAssetID: pony, FieldName: "Pony", FieldVersion: "latest"})

	resolveCalls := backend.impl.ResolveCalls()
	is.Equal(len(resolveCalls), 1)
	is.True(resolveCalls[0].TraitSet.Has(traits.DisplayNameID))
	is.True(resolveCalls[0].TraitSet.Has(traits.VersionID))
}

func TestThatFieldsRoundTripToTheSameIdentifier(t *testing.T) {
	is, ctx, backend, a := testSetup(t)

	backend.entities[pony] = types.NewTraitsData(types.Property(traits.DisplayNameID, "name", "Pony"))

	fields, err := a.GetFields(ctx, pony, false)
	is.NoErr(err)

	id, err := a.BuildIdentifier(ctx, fields)
	is.NoErr(err)
	is.Equal(id, pony)
}

func TestBuildIdentifierWithoutVersionDoesNotQueryRelationships(t *testing.T) {
	is, ctx, backend, a := testSetup(t)

	id, err := a.BuildIdentifier(ctx, FieldMap{FieldAssetID: pony, FieldName: "Pony"})
	is.NoErr(err)
	is.Equal(id, pony)
	is.Equal(len(backend.impl.GetWithRelationshipCalls()), 0)
}

func TestBuildIdentifierRequiresTheAssetIdField(t *testing.T) {
	is, ctx, _, a := testSetup(t)

	_, err := a.BuildIdentifier(ctx, FieldMap{FieldName: "Pony"})
	is.True(errors.Is(err, oaioerrors.ErrMissingField))
}

func TestBuildIdentifierFallsBackWhenVersionIsUnknown(t *testing.T) {
	is, ctx, backend, a := testSetup(t)

	backend.versions[pony] = map[string]string{"v1": pony + "?v=1"}

	id, err := a.BuildIdentifier(ctx, FieldMap{FieldAssetID: pony, FieldVersion: "v99"})
	is.NoErr(err)
	is.Equal(id, pony)
}

func TestBuildIdentifierSubstitutesTheExactVersion(t *testing.T) {
	is, ctx, backend, a := testSetup(t)

	backend.versions[pony] = map[string]string{
		"v1":     pony + "?v=1",
		"v2":     pony + "?v=2",
		"latest": pony + "?v=latest",
	}

	id, err := a.BuildIdentifier(ctx, FieldMap{FieldAssetID: pony, FieldVersion: "v2"})
	is.NoErr(err)
	is.Equal(id, pony+"?v=2")

	id, err = a.BuildIdentifier(ctx, FieldMap{FieldAssetID: pony, FieldVersion: "latest"})
	is.NoErr(err)
	is.Equal(id, pony+"?v=latest")

	calls := backend.impl.GetWithRelationshipCalls()
	is.Equal(len(calls), 2)
	is.Equal(calls[0].PageSize, 1)
	is.Equal(traits.Version{Data: calls[0].Relationship}.SpecifiedTag(""), "v2")
	is.True(calls[0].Relationship.HasTrait(traits.RelationshipID))
}

func TestResolveVersionTagOfMetaVersion(t *testing.T) {
	is, ctx, backend, a := testSetup(t)

	backend.versions[pony] = map[string]string{"latest": pony + "?v=2"}
	backend.entities[pony+"?v=2"] = types.NewTraitsData(
		types.Property(traits.VersionID, "specifiedTag", "v2"),
		types.Property(traits.VersionID, "stableTag", "v2"),
	)

	tag, err := a.ResolveVersionTag(ctx, pony, "latest")
	is.NoErr(err)
	is.Equal(tag, "v2")
}

func TestResolveVersionTagWithoutTagResolvesTheIdentifier(t *testing.T) {
	is, ctx, backend, a := testSetup(t)

	backend.entities[pony] = types.NewTraitsData(
		types.Property(traits.VersionID, "specifiedTag", "latest"),
		types.Property(traits.VersionID, "stableTag", "v3"),
	)

	tag, err := a.ResolveVersionTag(ctx, pony, "")
	is.NoErr(err)
	is.Equal(tag, "v3")
	is.Equal(len(backend.impl.GetWithRelationshipCalls()), 0)
}

func TestResolveVersionTagFailsForUnknownVersion(t *testing.T) {
	is, ctx, _, a := testSetup(t)

	_, err := a.ResolveVersionTag(ctx, pony, "v99")
	is.True(errors.Is(err, oaioerrors.ErrVersionNotFound))
}

func TestThatOnlyTheFirstMatchingVersionIsUsed(t *testing.T) {
	is, ctx, backend, a := testSetup(t)

	backend.pages = [][]string{{pony + "?v=2", pony + "?v=2b"}, {pony + "?v=2c"}}

	id, err := a.BuildIdentifier(ctx, FieldMap{FieldAssetID: pony, FieldVersion: "v2"})
	is.NoErr(err)
	is.Equal(id, pony+"?v=2")
	is.Equal(backend.closed, 1)
}

func TestListVersionTagsAcrossPages(t *testing.T) {
	is, ctx, backend, a := testSetup(t)

	backend.pages = [][]string{
		{pony + "?v=1", pony + "?v=2"},
		{pony + "?v=3", pony + "?v=4"},
		{pony + "?v=latest"},
	}

	for i, tag := range []string{"v1", "v2", "v3", "v4", "latest"} {
		backend.entities[backend.pages[i/2][i%2]] = types.NewTraitsData(types.Property(traits.VersionID, "specifiedTag", tag))
	}

	tags, err := a.ListVersionTags(ctx, pony)
	is.NoErr(err)
	is.Equal(tags, []string{"v1", "v2", "v3", "v4", "latest"})

	relCalls := backend.impl.GetWithRelationshipCalls()
	is.Equal(len(relCalls), 1)
	is.Equal(relCalls[0].PageSize, PageSize)
	is.True(relCalls[0].Relationship.TraitSet().Contains(specifications.EntityVersionsRelationship.TraitSet()))

	resolveCalls := backend.impl.ResolveCalls()
	is.Equal(len(resolveCalls), 1)
	is.Equal(len(resolveCalls[0].Refs), 5)
	is.Equal(backend.closed, 1)
}

func TestListVersionTagsWithoutVersions(t *testing.T) {
	is, ctx, backend, a := testSetup(t)

	tags, err := a.ListVersionTags(ctx, pony)
	is.NoErr(err)
	is.Equal(len(tags), 0)
	is.Equal(len(backend.impl.ResolveCalls()), 0)
}

func TestResolveLocation(t *testing.T) {
	is, ctx, backend, a := testSetup(t)

	backend.entities[pony] = types.NewTraitsData(types.Property(traits.LocatableContentID, "location", "file:///shows/pony/pony%20v2.katana"))

	path, err := a.ResolveLocation(ctx, pony)
	is.NoErr(err)
	is.Equal(path, "/shows/pony/pony v2.katana")

	path, err = a.ResolveAllLocations(ctx, pony)
	is.NoErr(err)
	is.Equal(path, "/shows/pony/pony v2.katana")
}

func TestResolveLocationWithoutLocation(t *testing.T) {
	is, ctx, backend, a := testSetup(t)

	backend.entities[pony] = types.NewTraitsData(types.Imbue(traits.LocatableContentID))

	_, err := a.ResolveLocation(ctx, pony)
	is.True(errors.Is(err, oaioerrors.ErrNoLocation))
}

func TestResolveLocationOfInvalidIdentifier(t *testing.T) {
	is, ctx, backend, a := testSetup(t)

	_, err := a.ResolveLocation(ctx, "other://pony")
	is.True(errors.Is(err, oaioerrors.ErrInvalidReference))
	is.Equal(len(backend.impl.ResolveCalls()), 0)
}

func TestResolvePathExpandsFileSequences(t *testing.T) {
	is, ctx, backend, a := testSetup(t)

	backend.entities[pony] = types.NewTraitsData(types.Property(traits.LocatableContentID, "location", "file:///renders/pony.####.exr"))

	path, err := a.ResolvePath(ctx, pony, 42)
	is.NoErr(err)
	is.Equal(path, "/renders/pony.0042.exr")
}

func TestResolvePathKeepsLiteralPercentInFileNames(t *testing.T) {
	is, ctx, backend, a := testSetup(t)

	backend.entities[pony] = types.NewTraitsData(types.Property(traits.LocatableContentID, "location", "file:///shows/promo/100%25done.exr"))

	path, err := a.ResolvePath(ctx, pony, 1001)
	is.NoErr(err)
	is.Equal(path, "/shows/promo/100%done.exr")
}

func TestDisplayNameDefaultsToEmpty(t *testing.T) {
	is, ctx, _, a := testSetup(t)

	name, err := a.DisplayName(ctx, pony)
	is.NoErr(err)
	is.Equal(name, "")
}

func TestScenegraphLocation(t *testing.T) {
	is, ctx, backend, a := testSetup(t)

	backend.entities[pony] = types.NewTraitsData(
		types.Property(traits.SourcePathID, "path", "/root/world/geo/pony"),
		types.Property(traits.VersionID, "stableTag", "v2"),
	)

	location, err := a.ScenegraphLocation(ctx, pony, true)
	is.NoErr(err)
	is.Equal(location, "/root/world/geo/pony/v2")

	location, err = a.ScenegraphLocation(ctx, pony, false)
	is.NoErr(err)
	is.Equal(location, "/root/world/geo/pony")

	location, err = a.ScenegraphLocation(ctx, "myasset://unknown", true)
	is.NoErr(err)
	is.Equal(location, "/")
}

func TestGetAttributes(t *testing.T) {
	is, ctx, backend, a := testSetup(t)

	backend.traits[pony] = types.NewTraitSet(traits.LocatableContentID, traits.WorkID)
	backend.entities[pony] = types.NewTraitsData(
		types.Property(traits.DisplayNameID, "name", "Pony"),
		types.Property(traits.VersionID, "specifiedTag", "latest"),
		types.Property(traits.LocatableContentID, "location", "file:///shows/pony.katana"),
		types.Property(traits.LocatableContentID, "isTemplated", false),
		types.Imbue(traits.WorkID),
	)

	attrs, err := a.GetAttributes(ctx, pony, "")
	is.NoErr(err)

	is.Equal(attrs[FieldAssetID], pony)
	is.Equal(attrs[FieldName], "Pony")
	is.Equal(attrs[FieldVersion], "latest")
	is.Equal(attrs["openassetio-mediacreation:content_LocatableContent_location"], "file:///shows/pony.katana")
	is.Equal(attrs["openassetio-mediacreation:content_LocatableContent_isTemplated"], "false")
	is.Equal(attrs["openassetio-mediacreation:identity_DisplayName_name"], "Pony")

	resolveCalls := backend.impl.ResolveCalls()
	is.Equal(len(resolveCalls), 1)
	ts := resolveCalls[0].TraitSet
	is.True(ts.Has(traits.WorkID))
	is.True(ts.Has(traits.DisplayNameID))
	is.True(ts.Has(traits.VersionID))
}

func TestContainsIdentifier(t *testing.T) {
	is, ctx, backend, a := testSetup(t)

	found, err := a.ContainsIdentifier(ctx, "load myasset://pony please")
	is.NoErr(err)
	is.True(found)

	found, err = a.ContainsIdentifier(ctx, "/shows/pony.katana")
	is.NoErr(err)
	is.True(!found)

	backend.info = map[string]any{}
	_, err = a.ContainsIdentifier(ctx, pony)
	is.True(errors.Is(err, oaioerrors.ErrConfiguration))
}

func TestIsIdentifier(t *testing.T) {
	is, ctx, _, a := testSetup(t)

	is.True(a.IsIdentifier(ctx, pony))
	is.True(!a.IsIdentifier(ctx, "/shows/pony.katana"))
}

func TestHostOperationsWithoutManagerSupport(t *testing.T) {
	is, ctx, _, a := testSetup(t)

	is.NoErr(a.SetAttributes(ctx, pony, "", FieldMap{"a": "b"}))

	id, err := a.IdentifierForScope(ctx, pony, "shot")
	is.NoErr(err)
	is.Equal(id, pony)

	related, err := a.RelatedIdentifier(ctx, pony, "parent")
	is.NoErr(err)
	is.Equal(related, "")

	is.True(a.CheckPermissions(ctx, pony, map[string]string{}))
	is.True(a.RunAssetPluginCommand(ctx, pony, "cmd", nil))
}

func TestPublishUnknownAssetTypeMakesNoBackendCalls(t *testing.T) {
	is, ctx, backend, a := testSetup(t)

	_, err := a.PublishPrepare(ctx, nil, "unknownType", FieldMap{FieldAssetID: pony}, nil)
	is.True(errors.Is(err, oaioerrors.ErrUnsupportedAssetType))

	_, err = a.PublishCommit(ctx, nil, "unknownType", FieldMap{FieldAssetID: pony}, nil)
	is.True(errors.Is(err, oaioerrors.ErrUnsupportedAssetType))

	is.Equal(len(backend.impl.ManagementPolicyCalls()), 0)
	is.Equal(len(backend.impl.PreflightCalls()), 0)
	is.Equal(len(backend.impl.RegisterCalls()), 0)
	is.Equal(len(backend.impl.IsEntityReferenceStringCalls()), 0)
}

func TestPublishRejectsTransactions(t *testing.T) {
	is, ctx, _, a := testSetup(t)

	_, err := a.PublishPrepare(ctx, &Transaction{ID: "t1"}, AssetTypeKatanaScene, FieldMap{FieldAssetID: pony}, nil)
	is.True(errors.Is(err, oaioerrors.ErrUnsupportedTransaction))

	_, err = a.PublishCommit(ctx, &Transaction{ID: "t1"}, AssetTypeKatanaScene, FieldMap{FieldAssetID: pony}, nil)
	is.True(errors.Is(err, oaioerrors.ErrUnsupportedTransaction))
}

func TestPublishRequiresAnAssetId(t *testing.T) {
	is, ctx, _, a := testSetup(t)

	_, err := a.PublishPrepare(ctx, nil, AssetTypeKatanaScene, FieldMap{FieldName: "Pony"}, nil)
	is.True(errors.Is(err, oaioerrors.ErrMissingField))

	_, err = a.PublishCommit(ctx, nil, AssetTypeKatanaScene, FieldMap{}, nil)
	is.True(errors.Is(err, oaioerrors.ErrMissingField))
}

func TestPublishIsRejectedByPolicy(t *testing.T) {
	is, ctx, backend, a := testSetup(t)

	backend.managed = false

	_, err := a.PublishPrepare(ctx, nil, AssetTypeKatanaScene, FieldMap{FieldAssetID: pony}, nil)
	is.True(errors.Is(err, oaioerrors.ErrPolicyRejected))
	is.Equal(len(backend.impl.PreflightCalls()), 0)
}

func TestPublishPrepareAndCommit(t *testing.T) {
	is, ctx, backend, a := testSetup(t)

	working, err := a.PublishPrepare(ctx, nil, AssetTypeAlembic, FieldMap{FieldAssetID: pony}, map[string]string{"versionUp": "True"})
	is.NoErr(err)
	is.Equal(working, pony+"?v=working")

	policyCalls := backend.impl.ManagementPolicyCalls()
	is.Equal(len(policyCalls), 1)
	is.Equal(policyCalls[0].Access, types.PolicyAccessWrite)
	is.Equal(policyCalls[0].TraitSet.Sorted(), specifications.SceneGeometryResource.TraitSet().Sorted())

	preflightCalls := backend.impl.PreflightCalls()
	is.Equal(len(preflightCalls), 1)
	is.Equal(preflightCalls[0].Ref, pony)
	is.Equal(preflightCalls[0].Access, types.PublishingAccessWrite)
	is.True(preflightCalls[0].TraitsData.HasTrait(traits.GeometryID))

	final, err := a.PublishCommit(ctx, nil, AssetTypeAlembic, FieldMap{FieldAssetID: working}, nil)
	is.NoErr(err)
	is.Equal(final, pony+"?v=3")

	registerCalls := backend.impl.RegisterCalls()
	is.Equal(len(registerCalls), 1)
	is.Equal(registerCalls[0].Ref, working)
}

func TestPublishCommitWithInvalidWorkingReference(t *testing.T) {
	is, ctx, backend, a := testSetup(t)

	_, err := a.PublishCommit(ctx, nil, AssetTypeKatanaScene, FieldMap{FieldAssetID: "not a reference"}, nil)
	is.True(errors.Is(err, oaioerrors.ErrInvalidReference))
	is.Equal(len(backend.impl.RegisterCalls()), 0)
}

func TestThatCallsShareOneResolutionContext(t *testing.T) {
	is, ctx, backend, a := testSetup(t)

	_, _ = a.DisplayName(ctx, pony)
	_, _ = a.DisplayName(ctx, pony)

	calls := backend.impl.ResolveCalls()
	is.Equal(len(calls), 2)
	is.True(calls[0].Mctx != nil)
	is.Equal(calls[0].Mctx, calls[1].Mctx)

	is.NoErr(a.Reset(ctx))
	_, _ = a.DisplayName(ctx, pony)

	calls = backend.impl.ResolveCalls()
	is.True(calls[2].Mctx.ID != calls[0].Mctx.ID)
}

func TestNewFailsWithoutAConfiguredManager(t *testing.T) {
	is := is.New(t)

	_, err := New(context.Background(), Config{}, WithLogger(discardLogger()))
	is.True(errors.Is(err, oaioerrors.ErrConfiguration))
}

func TestNewFailsForUnknownManager(t *testing.T) {
	is := is.New(t)

	cfg := Config{Manager: ManagerConfig{Identifier: "no.such.manager"}, DisableRemotePlugins: true}

	_, err := New(context.Background(), cfg, WithLogger(discardLogger()))
	is.True(errors.Is(err, oaioerrors.ErrConfiguration))
}

func TestFailedResetKeepsThePreviousManagerAndContext(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	backend := newFakeBackend()
	backend.entities[pony] = types.NewTraitsData(types.Property(traits.DisplayNameID, "name", "Pony"))

	logs := &bytes.Buffer{}

	a, err := New(ctx,
		Config{Manager: ManagerConfig{Identifier: "test"}},
		WithLogger(slog.New(slog.NewJSONHandler(logs, nil))),
		WithImplementationFactory(manager.NewNativePluginSystem(nil, backend.plugin())),
	)
	is.NoErr(err)

	_, err = a.DisplayName(ctx, pony)
	is.NoErr(err)
	contextID := backend.impl.ResolveCalls()[0].Mctx.ID

	unavailable := errors.New("backend unavailable")
	backend.impl.InitializeFunc = func(ctx context.Context, settings map[string]any, session manager.HostSession) error {
		return unavailable
	}

	err = a.Reset(ctx)
	is.True(errors.Is(err, unavailable))
	is.True(bytes.Contains(logs.Bytes(), []byte(`"level":"ERROR","msg":"failed to reset identity adapter"`)))

	name, err := a.DisplayName(ctx, pony)
	is.NoErr(err)
	is.Equal(name, "Pony")

	calls := backend.impl.ResolveCalls()
	is.Equal(len(calls), 2)
	is.Equal(calls[1].Mctx.ID, contextID)
	is.Equal(len(backend.impl.InitializeCalls()), 2)
}

func TestNewFailsForUnknownConfiguredSpecification(t *testing.T) {
	is := is.New(t)

	cfg := Config{
		Manager: ManagerConfig{Identifier: "test"},
		Publish: PublishConfig{Strategies: map[string]string{"usd": "noSuchSpecification"}},
	}

	_, err := New(context.Background(), cfg, WithLogger(discardLogger()))
	is.True(errors.Is(err, oaioerrors.ErrConfiguration))
}

func TestThatConfiguredStrategiesArePublishable(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	backend := newFakeBackend()
	cfg := Config{
		Manager:              ManagerConfig{Identifier: "test"},
		Publish:              PublishConfig{Strategies: map[string]string{"usd": "sceneGeometryResource"}},
		DisableRemotePlugins: true,
	}

	a, err := New(ctx, cfg, WithLogger(discardLogger()), WithNativePlugins(backend.plugin()))
	is.NoErr(err)

	_, err = a.PublishPrepare(ctx, nil, "usd", FieldMap{FieldAssetID: pony}, nil)
	is.NoErr(err)
}

func testSetup(t *testing.T) (*is.I, context.Context, *fakeBackend, IdentityAdapter) {
	is := is.New(t)
	ctx := context.Background()

	backend := newFakeBackend()

	a, err := New(ctx,
		Config{Manager: ManagerConfig{Identifier: "test"}},
		WithLogger(discardLogger()),
		WithImplementationFactory(manager.NewNativePluginSystem(nil, backend.plugin())),
	)
	is.NoErr(err)

	return is, ctx, backend, a
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeBackend answers manager calls from in memory tables. Relationship
// queries are served from pages when set, and otherwise by looking up the
// specified tag of the relationship in versions.
type fakeBackend struct {
	impl *manager.ManagerInterfaceMock

	info     map[string]any
	entities map[string]*types.TraitsData
	traits   map[string]types.TraitSet
	versions map[string]map[string]string
	pages    [][]string
	managed  bool
	closed   int
}

func newFakeBackend() *fakeBackend {
	b := &fakeBackend{
		info:     map[string]any{manager.InfoKeyEntityReferencesMatchPrefix: "myasset://"},
		entities: map[string]*types.TraitsData{},
		traits:   map[string]types.TraitSet{},
		versions: map[string]map[string]string{},
		managed:  true,
	}

	b.impl = &manager.ManagerInterfaceMock{
		IdentifierFunc:  func() string { return "test" },
		DisplayNameFunc: func() string { return "Test Manager" },
		InfoFunc:        func() map[string]any { return b.info },
		InitializeFunc: func(ctx context.Context, settings map[string]any, session manager.HostSession) error {
			return nil
		},
		IsEntityReferenceStringFunc: func(s string) bool {
			return len(s) > len("myasset://") && s[:len("myasset://")] == "myasset://"
		},
		ResolveFunc: func(ctx context.Context, refs []string, traitSet types.TraitSet, access types.ResolveAccess, mctx *manager.Context) ([]*types.TraitsData, error) {
			results := make([]*types.TraitsData, 0, len(refs))
			for _, r := range refs {
				td, ok := b.entities[r]
				if !ok {
					td = types.NewTraitsData()
				}
				results = append(results, td)
			}
			return results, nil
		},
		GetWithRelationshipFunc: func(ctx context.Context, ref string, relationship *types.TraitsData, pageSize int, access types.RelationsAccess, mctx *manager.Context, resultTraitSet types.TraitSet) (manager.PagerInterface, error) {
			if b.pages != nil {
				return b.pager(b.pages), nil
			}

			tag := traits.Version{Data: relationship}.SpecifiedTag("")
			if match, ok := b.versions[ref][tag]; ok {
				return b.pager([][]string{{match}}), nil
			}

			return b.pager(nil), nil
		},
		EntityTraitsFunc: func(ctx context.Context, ref string, access types.EntityTraitsAccess, mctx *manager.Context) (types.TraitSet, error) {
			return b.traits[ref], nil
		},
		ManagementPolicyFunc: func(ctx context.Context, traitSet types.TraitSet, access types.PolicyAccess, mctx *manager.Context) (*types.TraitsData, error) {
			if b.managed {
				return types.NewTraitsData(types.Imbue(traits.ManagedID)), nil
			}
			return types.NewTraitsData(), nil
		},
		PreflightFunc: func(ctx context.Context, ref string, traitsData *types.TraitsData, access types.PublishingAccess, mctx *manager.Context) (string, error) {
			return ref + "?v=working", nil
		},
		RegisterFunc: func(ctx context.Context, ref string, traitsData *types.TraitsData, access types.PublishingAccess, mctx *manager.Context) (string, error) {
			return pony + "?v=3", nil
		},
	}

	return b
}

func (b *fakeBackend) plugin() manager.NativePlugin {
	return manager.NativePlugin{
		Identifier: "test",
		New:        func() manager.ManagerInterface { return b.impl },
	}
}

func (b *fakeBackend) pager(pages [][]string) manager.PagerInterface {
	current := 0

	return &manager.PagerInterfaceMock{
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
		CloseFunc: func() {
			b.closed++
		},
	}
}
