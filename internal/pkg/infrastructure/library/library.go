// Package library contains a small in-memory asset manager seeded from a
// yaml document. It is registered as a native plugin so that the service
// can run without an external asset management system.
package library

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/diwise/asset-adapter/pkg/oaio/errors"
	"github.com/diwise/asset-adapter/pkg/oaio/manager"
	"github.com/diwise/asset-adapter/pkg/oaio/types"
	"github.com/diwise/asset-adapter/pkg/oaio/types/specifications"
	"github.com/diwise/asset-adapter/pkg/oaio/types/traits"
	"github.com/google/uuid"
	"gopkg.in/yaml.v2"
)

const (
	Identifier  string = "io.diwise.library"
	DisplayName string = "Asset Library"

	ReferencePrefix string = "libref://"

	// SettingsKeyPath names the Initialize setting that points to a yaml
	// file with the entities to load
	SettingsKeyPath string = "path"

	latest string = "latest"
)

type Version struct {
	Location   string `yaml:"location"`
	SourcePath string `yaml:"sourcePath"`
}

type Entity struct {
	Name          string    `yaml:"name"`
	DisplayName   string    `yaml:"displayName"`
	Specification string    `yaml:"specification"`
	Versions      []Version `yaml:"versions"`
}

type Contents struct {
	Entities []Entity `yaml:"entities"`
}

func LoadContents(r io.Reader) (*Contents, error) {
	buf, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	contents := &Contents{}
	err = yaml.Unmarshal(buf, contents)
	if err != nil {
		return nil, err
	}

	for _, e := range contents.Entities {
		if e.Name == "" {
			return nil, fmt.Errorf("library entity without a name")
		}
		if e.Specification != "" {
			if _, ok := specifications.ByName(e.Specification); !ok {
				return nil, fmt.Errorf("library entity %s has unknown specification %s", e.Name, e.Specification)
			}
		}
	}

	return contents, nil
}

type library struct {
	mu       sync.Mutex
	entities map[string]*Entity
	pending  map[string]*types.TraitsData
	logger   manager.LoggerInterface
}

type OptionFunc func(*library)

func WithContents(contents *Contents) OptionFunc {
	return func(l *library) {
		for _, e := range contents.Entities {
			l.add(e)
		}
	}
}

func New(options ...OptionFunc) manager.ManagerInterface {
	l := &library{
		entities: map[string]*Entity{},
		pending:  map[string]*types.TraitsData{},
	}

	for _, option := range options {
		option(l)
	}

	return l
}

// NativePlugin registers a library that loads its contents when initialized
func NativePlugin(options ...OptionFunc) manager.NativePlugin {
	return manager.NativePlugin{
		Identifier: Identifier,
		New: func() manager.ManagerInterface {
			return New(options...)
		},
	}
}

func (l *library) add(e Entity) {
	if e.DisplayName == "" {
		e.DisplayName = e.Name
	}
	if e.Specification == "" {
		e.Specification = specifications.Workfile.Name()
	}
	l.entities[e.Name] = &e
}

func (l *library) Identifier() string  { return Identifier }
func (l *library) DisplayName() string { return DisplayName }

func (l *library) Info() map[string]any {
	return map[string]any{
		manager.InfoKeyEntityReferencesMatchPrefix: ReferencePrefix,
	}
}

func (l *library) Initialize(ctx context.Context, settings map[string]any, session manager.HostSession) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.logger = session.Logger

	path, ok := settings[SettingsKeyPath].(string)
	if !ok || path == "" {
		return nil
	}

	f, err := os.Open(path)
	if err != nil {
		return errors.NewConfigurationError(fmt.Sprintf("failed to open library file %s: %s", path, err.Error()))
	}
	defer f.Close()

	contents, err := LoadContents(f)
	if err != nil {
		return errors.NewConfigurationError(fmt.Sprintf("failed to load library file %s: %s", path, err.Error()))
	}

	for _, e := range contents.Entities {
		l.add(e)
	}

	l.log(ctx, manager.SeverityInfo, fmt.Sprintf("loaded %d entities from %s", len(contents.Entities), path))

	return nil
}

func (l *library) log(ctx context.Context, severity manager.Severity, msg string) {
	if l.logger != nil {
		l.logger.Log(ctx, severity, msg)
	}
}

func (l *library) IsEntityReferenceString(s string) bool {
	return strings.HasPrefix(s, ReferencePrefix) && len(s) > len(ReferencePrefix)
}

func (l *library) Resolve(ctx context.Context, refs []string, traitSet types.TraitSet, access types.ResolveAccess, mctx *manager.Context) ([]*types.TraitsData, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	results := make([]*types.TraitsData, 0, len(refs))

	for _, r := range refs {
		ref, err := parseReference(r)
		if err != nil {
			return nil, err
		}

		if ref.working != "" {
			return nil, errors.NewInvalidReferenceError(fmt.Sprintf("working reference %s can not be resolved", r))
		}

		e, v, number, err := l.lookup(ref)
		if err != nil {
			return nil, err
		}

		td := types.NewTraitsData()

		if traitSet.Has(traits.DisplayNameID) {
			dn := traits.DisplayName{Data: td}
			dn.SetName(e.DisplayName)
			td.SetString(traits.DisplayNameID, "qualifiedName", fmt.Sprintf("%s v%d", e.DisplayName, number))
		}

		if traitSet.Has(traits.VersionID) {
			version := traits.Version{Data: td}
			version.SetSpecifiedTag(ref.specifiedTag())
			version.SetStableTag(versionTag(number))
		}

		if traitSet.Has(traits.LocatableContentID) && v.Location != "" {
			traits.LocatableContent{Data: td}.SetLocation(v.Location)
		}

		if traitSet.Has(traits.SourcePathID) && v.SourcePath != "" {
			traits.SourcePath{Data: td}.SetPath(v.SourcePath)
		}

		results = append(results, td)
	}

	return results, nil
}

func (l *library) GetWithRelationship(ctx context.Context, r string, relationship *types.TraitsData, pageSize int, access types.RelationsAccess, mctx *manager.Context, resultTraitSet types.TraitSet) (manager.PagerInterface, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if !relationship.HasTrait(traits.RelationshipID) || !relationship.HasTrait(traits.VersionID) {
		return newPager(nil, pageSize), nil
	}

	ref, err := parseReference(r)
	if err != nil {
		return nil, err
	}

	e, ok := l.entities[ref.name]
	if !ok {
		return newPager(nil, pageSize), nil
	}

	tag, filtered := relationship.LookupString(traits.VersionID, "specifiedTag")
	if !filtered {
		refs := make([]string, 0, len(e.Versions))
		for n := 1; n <= len(e.Versions); n++ {
			refs = append(refs, reference(e.Name, strconv.Itoa(n)))
		}
		return newPager(refs, pageSize), nil
	}

	if tag == latest {
		if len(e.Versions) == 0 {
			return newPager(nil, pageSize), nil
		}
		return newPager([]string{reference(e.Name, latest)}, pageSize), nil
	}

	number, ok := parseVersionTag(tag)
	if !ok || number > len(e.Versions) {
		return newPager(nil, pageSize), nil
	}

	return newPager([]string{reference(e.Name, strconv.Itoa(number))}, pageSize), nil
}

func (l *library) EntityTraits(ctx context.Context, r string, access types.EntityTraitsAccess, mctx *manager.Context) (types.TraitSet, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	ref, err := parseReference(r)
	if err != nil {
		return nil, err
	}

	e, ok := l.entities[ref.name]
	if !ok {
		if access == types.EntityTraitsAccessWrite {
			return types.NewTraitSet(), nil
		}
		return nil, errors.NewNotFoundError(fmt.Sprintf("no entity named %s in the library", ref.name))
	}

	spec, _ := specifications.ByName(e.Specification)

	return spec.TraitSet().Union(
		types.NewTraitSet(traits.DisplayNameID, traits.VersionID),
	), nil
}

func (l *library) ManagementPolicy(ctx context.Context, traitSet types.TraitSet, access types.PolicyAccess, mctx *manager.Context) (*types.TraitsData, error) {
	policy := types.NewTraitsData()

	for _, spec := range managedSpecifications {
		ts := spec.TraitSet()
		if ts.Contains(traitSet) && traitSet.Contains(ts) {
			policy.AddTrait(traits.ManagedID)
			break
		}
	}

	return policy, nil
}

var managedSpecifications = []specifications.Specification{
	specifications.Workfile,
	specifications.DeepBitmapImageResource,
	specifications.SceneGeometryResource,
	specifications.ShaderResource,
	specifications.SceneLightingResource,
}

func (l *library) Preflight(ctx context.Context, r string, traitsData *types.TraitsData, access types.PublishingAccess, mctx *manager.Context) (string, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	ref, err := parseReference(r)
	if err != nil {
		return "", err
	}

	working := uuid.NewString()
	l.pending[working] = traitsData.Clone()

	return ReferencePrefix + url.PathEscape(ref.name) + "?working=" + working, nil
}

func (l *library) Register(ctx context.Context, r string, traitsData *types.TraitsData, access types.PublishingAccess, mctx *manager.Context) (string, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	ref, err := parseReference(r)
	if err != nil {
		return "", err
	}

	data := types.NewTraitsData()

	if ref.working != "" {
		pending, ok := l.pending[ref.working]
		if !ok {
			return "", errors.NewInvalidReferenceError(fmt.Sprintf("unknown working reference %s", r))
		}
		delete(l.pending, ref.working)
		data.Merge(pending)
	}

	data.Merge(traitsData)

	e, ok := l.entities[ref.name]
	if !ok {
		l.add(Entity{Name: ref.name})
		e = l.entities[ref.name]
	}

	v := Version{}
	if location, ok := (traits.LocatableContent{Data: data}).Location(); ok {
		v.Location = location
	} else if len(e.Versions) > 0 {
		v.Location = e.Versions[len(e.Versions)-1].Location
	}
	v.SourcePath = traits.SourcePath{Data: data}.Path("")

	e.Versions = append(e.Versions, v)

	l.log(ctx, manager.SeverityDebug, fmt.Sprintf("registered version %d of %s", len(e.Versions), e.Name))

	return reference(e.Name, strconv.Itoa(len(e.Versions))), nil
}

// lookup returns the entity, version and version number that ref points to
func (l *library) lookup(ref libref) (*Entity, Version, int, error) {
	e, ok := l.entities[ref.name]
	if !ok {
		return nil, Version{}, 0, errors.NewNotFoundError(fmt.Sprintf("no entity named %s in the library", ref.name))
	}

	if len(e.Versions) == 0 {
		return nil, Version{}, 0, errors.NewVersionNotFoundError(fmt.Sprintf("%s has no versions", ref.name))
	}

	if ref.version == "" || ref.version == latest {
		return e, e.Versions[len(e.Versions)-1], len(e.Versions), nil
	}

	number, err := strconv.Atoi(ref.version)
	if err != nil || number < 1 || number > len(e.Versions) {
		return nil, Version{}, 0, errors.NewVersionNotFoundError(fmt.Sprintf("%s has no version %s", ref.name, ref.version))
	}

	return e, e.Versions[number-1], number, nil
}

type libref struct {
	name    string
	version string
	working string
}

func (r libref) specifiedTag() string {
	if r.version == "" || r.version == latest {
		return latest
	}
	return "v" + r.version
}

func parseReference(s string) (libref, error) {
	if !strings.HasPrefix(s, ReferencePrefix) {
		return libref{}, errors.NewInvalidReferenceError(fmt.Sprintf("%q is not a library reference", s))
	}

	rest := strings.TrimPrefix(s, ReferencePrefix)
	name, query, _ := strings.Cut(rest, "?")

	name, err := url.PathUnescape(name)
	if err != nil || name == "" {
		return libref{}, errors.NewInvalidReferenceError(fmt.Sprintf("%q does not name a library entity", s))
	}

	params, err := url.ParseQuery(query)
	if err != nil {
		return libref{}, errors.NewInvalidReferenceError(fmt.Sprintf("%q has a malformed query: %s", s, err.Error()))
	}

	return libref{
		name:    name,
		version: params.Get("v"),
		working: params.Get("working"),
	}, nil
}

func reference(name, version string) string {
	return ReferencePrefix + url.PathEscape(name) + "?v=" + version
}

func versionTag(number int) string {
	return "v" + strconv.Itoa(number)
}

func parseVersionTag(tag string) (int, bool) {
	digits, ok := strings.CutPrefix(tag, "v")
	if !ok {
		return 0, false
	}
	number, err := strconv.Atoi(digits)
	if err != nil || number < 1 {
		return 0, false
	}
	return number, true
}
