package library

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/diwise/asset-adapter/internal/pkg/application/adapter"
	oaioerrors "github.com/diwise/asset-adapter/pkg/oaio/errors"
	"github.com/diwise/asset-adapter/pkg/oaio/manager"
	"github.com/diwise/asset-adapter/pkg/oaio/types"
	"github.com/diwise/asset-adapter/pkg/oaio/types/specifications"
	"github.com/diwise/asset-adapter/pkg/oaio/types/traits"
	"github.com/matryer/is"
)

const fixture string = `
entities:
  - name: pony
    displayName: Pony
    versions:
      - location: file:///shows/pony/pony_v1.katana
        sourcePath: /root/world/pony
      - location: file:///shows/pony/pony_v2.katana
        sourcePath: /root/world/pony
  - name: beauty
    specification: deepBitmapImageResource
    versions:
      - location: file:///renders/beauty.%23%23%23%23.exr
  - name: empty
`

func TestLoadContents(t *testing.T) {
	is := is.New(t)

	contents, err := LoadContents(strings.NewReader(fixture))
	is.NoErr(err)
	is.Equal(len(contents.Entities), 3)
	is.Equal(len(contents.Entities[0].Versions), 2)
	is.Equal(contents.Entities[1].Specification, "deepBitmapImageResource")
}

func TestLoadContentsRejectsUnknownSpecification(t *testing.T) {
	is := is.New(t)

	_, err := LoadContents(strings.NewReader("entities:\n  - name: x\n    specification: nope\n"))
	is.True(err != nil)
}

func TestInfoAdvertisesReferencePrefix(t *testing.T) {
	is, _, lib := testSetup(t)

	is.Equal(lib.Info()[manager.InfoKeyEntityReferencesMatchPrefix], ReferencePrefix)
	is.True(lib.IsEntityReferenceString("libref://pony"))
	is.True(!lib.IsEntityReferenceString("libref://"))
	is.True(!lib.IsEntityReferenceString("/shows/pony.katana"))
}

func TestResolveLatestAndSpecificVersions(t *testing.T) {
	is, ctx, lib := testSetup(t)

	ts := types.NewTraitSet(traits.DisplayNameID, traits.VersionID, traits.LocatableContentID, traits.SourcePathID)

	results, err := lib.Resolve(ctx, []string{"libref://pony", "libref://pony?v=1"}, ts, types.ResolveAccessRead, nil)
	is.NoErr(err)
	is.Equal(len(results), 2)

	latest := results[0]
	is.Equal(traits.DisplayName{Data: latest}.Name(""), "Pony")
	is.Equal(traits.Version{Data: latest}.SpecifiedTag(""), "latest")
	is.Equal(traits.Version{Data: latest}.StableTag(""), "v2")
	location, _ := traits.LocatableContent{Data: latest}.Location()
	is.Equal(location, "file:///shows/pony/pony_v2.katana")
	is.Equal(traits.SourcePath{Data: latest}.Path(""), "/root/world/pony")

	first := results[1]
	is.Equal(traits.Version{Data: first}.SpecifiedTag(""), "v1")
	is.Equal(traits.Version{Data: first}.StableTag(""), "v1")
}

func TestResolveOnlyReturnsRequestedTraits(t *testing.T) {
	is, ctx, lib := testSetup(t)

	results, err := lib.Resolve(ctx, []string{"libref://pony"}, types.NewTraitSet(traits.VersionID), types.ResolveAccessRead, nil)
	is.NoErr(err)
	is.True(!results[0].HasTrait(traits.LocatableContentID))
	is.True(!results[0].HasTrait(traits.DisplayNameID))
}

func TestResolveUnknownEntity(t *testing.T) {
	is, ctx, lib := testSetup(t)

	_, err := lib.Resolve(ctx, []string{"libref://nope"}, types.NewTraitSet(traits.VersionID), types.ResolveAccessRead, nil)
	is.True(errors.Is(err, oaioerrors.ErrNotFound))

	_, err = lib.Resolve(ctx, []string{"libref://pony?v=7"}, types.NewTraitSet(traits.VersionID), types.ResolveAccessRead, nil)
	is.True(errors.Is(err, oaioerrors.ErrVersionNotFound))

	_, err = lib.Resolve(ctx, []string{"libref://empty"}, types.NewTraitSet(traits.VersionID), types.ResolveAccessRead, nil)
	is.True(errors.Is(err, oaioerrors.ErrVersionNotFound))
}

func TestRelationshipWithoutTagListsAllVersionsInPages(t *testing.T) {
	is, ctx, lib := testSetup(t)

	p, err := lib.GetWithRelationship(ctx, "libref://pony", specifications.EntityVersionsRelationship.Create(), 1, types.RelationsAccessRead, nil, types.NewTraitSet())
	is.NoErr(err)
	defer p.Close()

	page, _ := p.Get(ctx)
	is.Equal(page, []string{"libref://pony?v=1"})

	hasNext, _ := p.HasNext(ctx)
	is.True(hasNext)

	is.NoErr(p.Next(ctx))
	page, _ = p.Get(ctx)
	is.Equal(page, []string{"libref://pony?v=2"})

	hasNext, _ = p.HasNext(ctx)
	is.True(!hasNext)

	is.NoErr(p.Next(ctx))
	page, _ = p.Get(ctx)
	is.Equal(len(page), 0)
}

func TestRelationshipFilteredBySpecifiedTag(t *testing.T) {
	is, ctx, lib := testSetup(t)

	query := func(tag string) []string {
		rel := specifications.EntityVersionsRelationship.Create()
		traits.Version{Data: rel}.SetSpecifiedTag(tag)
		p, err := lib.GetWithRelationship(ctx, "libref://pony", rel, 1, types.RelationsAccessRead, nil, types.NewTraitSet())
		is.NoErr(err)
		defer p.Close()
		page, _ := p.Get(ctx)
		return page
	}

	is.Equal(query("latest"), []string{"libref://pony?v=latest"})
	is.Equal(query("v1"), []string{"libref://pony?v=1"})
	is.Equal(len(query("v3")), 0)
	is.Equal(len(query("banana")), 0)
}

func TestEntityTraitsFollowSpecification(t *testing.T) {
	is, ctx, lib := testSetup(t)

	ts, err := lib.EntityTraits(ctx, "libref://beauty", types.EntityTraitsAccessRead, nil)
	is.NoErr(err)
	is.True(ts.Contains(specifications.DeepBitmapImageResource.TraitSet()))
	is.True(ts.Has(traits.VersionID))

	_, err = lib.EntityTraits(ctx, "libref://nope", types.EntityTraitsAccessRead, nil)
	is.True(errors.Is(err, oaioerrors.ErrNotFound))
}

func TestManagementPolicy(t *testing.T) {
	is, ctx, lib := testSetup(t)

	policy, err := lib.ManagementPolicy(ctx, specifications.ShaderResource.TraitSet(), types.PolicyAccessWrite, nil)
	is.NoErr(err)
	is.True(traits.IsManaged(policy))

	policy, err = lib.ManagementPolicy(ctx, types.NewTraitSet(traits.ImageID), types.PolicyAccessWrite, nil)
	is.NoErr(err)
	is.True(!traits.IsManaged(policy))
}

func TestPreflightAndRegisterCreateANewVersion(t *testing.T) {
	is, ctx, lib := testSetup(t)

	working, err := lib.Preflight(ctx, "libref://pony", specifications.Workfile.Create(), types.PublishingAccessWrite, nil)
	is.NoErr(err)
	is.True(strings.HasPrefix(working, "libref://pony?working="))

	final, err := lib.Register(ctx, working, specifications.Workfile.Create(), types.PublishingAccessWrite, nil)
	is.NoErr(err)
	is.Equal(final, "libref://pony?v=3")

	results, err := lib.Resolve(ctx, []string{final}, types.NewTraitSet(traits.LocatableContentID), types.ResolveAccessRead, nil)
	is.NoErr(err)
	location, _ := traits.LocatableContent{Data: results[0]}.Location()
	is.Equal(location, "file:///shows/pony/pony_v2.katana")

	_, err = lib.Register(ctx, working, specifications.Workfile.Create(), types.PublishingAccessWrite, nil)
	is.True(errors.Is(err, oaioerrors.ErrInvalidReference))
}

func TestRegisterCreatesMissingEntities(t *testing.T) {
	is, ctx, lib := testSetup(t)

	td := specifications.Workfile.Create()
	traits.LocatableContent{Data: td}.SetLocation("file:///shows/new/new_v1.katana")

	final, err := lib.Register(ctx, "libref://new", td, types.PublishingAccessWrite, nil)
	is.NoErr(err)
	is.Equal(final, "libref://new?v=1")
}

func TestInitializeLoadsFileFromSettings(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	path := filepath.Join(t.TempDir(), "library.yaml")
	is.NoErr(os.WriteFile(path, []byte(fixture), 0644))

	lib := New()
	is.NoErr(lib.Initialize(ctx, map[string]any{SettingsKeyPath: path}, manager.HostSession{}))

	ts, err := lib.EntityTraits(ctx, "libref://pony", types.EntityTraitsAccessRead, nil)
	is.NoErr(err)
	is.True(ts.Has(traits.WorkID))
}

func TestInitializeWithMissingFileIsAConfigurationError(t *testing.T) {
	is := is.New(t)

	err := New().Initialize(context.Background(), map[string]any{SettingsKeyPath: "/does/not/exist.yaml"}, manager.HostSession{})
	is.True(errors.Is(err, oaioerrors.ErrConfiguration))
}

func TestIdentityAdapterBackedByLibrary(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()

	contents, err := LoadContents(strings.NewReader(fixture))
	is.NoErr(err)

	cfg := adapter.Config{
		Manager:              adapter.ManagerConfig{Identifier: Identifier},
		Host:                 adapter.HostConfig{Identifier: adapter.DefaultHostIdentifier, DisplayName: adapter.DefaultHostDisplayName},
		DisableRemotePlugins: true,
	}

	a, err := adapter.New(ctx, cfg, adapter.WithNativePlugins(NativePlugin(WithContents(contents))))
	is.NoErr(err)

	path, err := a.ResolveLocation(ctx, "libref://pony?v=1")
	is.NoErr(err)
	is.Equal(path, "/shows/pony/pony_v1.katana")

	tags, err := a.ListVersionTags(ctx, "libref://pony")
	is.NoErr(err)
	is.Equal(tags, []string{"v1", "v2"})

	stable, err := a.ResolveVersionTag(ctx, "libref://pony", "latest")
	is.NoErr(err)
	is.Equal(stable, "v2")

	id, err := a.BuildIdentifier(ctx, adapter.FieldMap{adapter.FieldAssetID: "libref://pony", adapter.FieldVersion: "v1"})
	is.NoErr(err)
	is.Equal(id, "libref://pony?v=1")

	frame, err := a.ResolvePath(ctx, "libref://beauty", 7)
	is.NoErr(err)
	is.Equal(frame, "/renders/beauty.0007.exr")

	working, err := a.PublishPrepare(ctx, nil, adapter.AssetTypeKatanaScene, adapter.FieldMap{adapter.FieldAssetID: "libref://pony"}, nil)
	is.NoErr(err)

	final, err := a.PublishCommit(ctx, nil, adapter.AssetTypeKatanaScene, adapter.FieldMap{adapter.FieldAssetID: working}, nil)
	is.NoErr(err)
	is.Equal(final, "libref://pony?v=3")
}

func testSetup(t *testing.T) (*is.I, context.Context, manager.ManagerInterface) {
	is := is.New(t)

	contents, err := LoadContents(strings.NewReader(fixture))
	is.NoErr(err)

	return is, context.Background(), New(WithContents(contents))
}
