package adapter

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/diwise/asset-adapter/pkg/fileseq"
	"github.com/diwise/asset-adapter/pkg/oaio/client"
	"github.com/diwise/asset-adapter/pkg/oaio/errors"
	"github.com/diwise/asset-adapter/pkg/oaio/manager"
	"github.com/diwise/asset-adapter/pkg/oaio/types"
	"github.com/diwise/asset-adapter/pkg/oaio/types/traits"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

//go:generate moq -rm -out identityadapter_mock.go . IdentityAdapter

// IdentityAdapter translates between host asset ids and field maps and the
// entity references and traits of an asset manager.
//
// Implementations are not safe for concurrent use.
type IdentityAdapter interface {
	Reset(ctx context.Context) error

	IsIdentifier(ctx context.Context, s string) bool
	ContainsIdentifier(ctx context.Context, s string) (bool, error)

	ResolveLocation(ctx context.Context, id string) (string, error)
	ResolveAllLocations(ctx context.Context, id string) (string, error)
	ResolvePath(ctx context.Context, id string, frame int) (string, error)
	ResolveVersionTag(ctx context.Context, id, tag string) (string, error)
	ListVersionTags(ctx context.Context, id string) ([]string, error)
	DisplayName(ctx context.Context, id string) (string, error)
	ScenegraphLocation(ctx context.Context, id string, includeVersion bool) (string, error)

	GetFields(ctx context.Context, id string, includeDefaults bool) (FieldMap, error)
	BuildIdentifier(ctx context.Context, fields FieldMap) (string, error)
	GetAttributes(ctx context.Context, id, scope string) (FieldMap, error)
	SetAttributes(ctx context.Context, id, scope string, attrs FieldMap) error
	IdentifierForScope(ctx context.Context, id, scope string) (string, error)
	RelatedIdentifier(ctx context.Context, id, relation string) (string, error)

	CheckPermissions(ctx context.Context, id string, hostContext map[string]string) bool
	RunAssetPluginCommand(ctx context.Context, id, command string, args map[string]string) bool

	PublishPrepare(ctx context.Context, txn *Transaction, assetType string, fields FieldMap, args map[string]string) (string, error)
	PublishCommit(ctx context.Context, txn *Transaction, assetType string, fields FieldMap, args map[string]string) (string, error)
}

// Transaction is a deferred publish handle. Publishing within a transaction
// is not supported.
type Transaction struct {
	ID string
}

type FileSequenceResolver interface {
	IsSequence(path string) bool
	Resolve(path string, frame int) (string, error)
}

type OptionFunc func(*identityAdapter)

func WithLogger(logger *slog.Logger) OptionFunc {
	return func(a *identityAdapter) {
		a.logger = logger
	}
}

// WithImplementationFactory replaces the plugin systems selected from config
func WithImplementationFactory(factory manager.ImplementationFactory) OptionFunc {
	return func(a *identityAdapter) {
		a.factory = factory
	}
}

func WithNativePlugins(plugins ...manager.NativePlugin) OptionFunc {
	return func(a *identityAdapter) {
		a.nativePlugins = append(a.nativePlugins, plugins...)
	}
}

func WithFileSequenceResolver(resolver FileSequenceResolver) OptionFunc {
	return func(a *identityAdapter) {
		a.sequences = resolver
	}
}

func WithPublishStrategies(options ...StrategyOption) OptionFunc {
	return func(a *identityAdapter) {
		a.strategyOptions = append(a.strategyOptions, options...)
	}
}

var tracer = otel.Tracer("asset-adapter/identity-adapter")

const TraceAttributeAssetID string = "asset-id"

type identityAdapter struct {
	cfg Config

	logger          *slog.Logger
	factory         manager.ImplementationFactory
	nativePlugins   []manager.NativePlugin
	sequences       FileSequenceResolver
	paths           *manager.FileURLPathConverter
	strategyOptions []StrategyOption
	strategies      *PublishStrategies

	manager   *manager.Manager
	gw        gateway
	versions  versionWalker
	publisher publisher
}

func New(ctx context.Context, cfg Config, options ...OptionFunc) (IdentityAdapter, error) {
	a := &identityAdapter{
		cfg:       cfg,
		sequences: fileseq.NewResolver(),
		paths:     manager.NewFileURLPathConverter(),
	}

	for _, option := range options {
		option(a)
	}

	if a.logger == nil {
		a.logger = logging.GetFromContext(ctx)
	}

	fromConfig, err := StrategiesFromConfig(cfg.Publish)
	if err != nil {
		return nil, err
	}

	a.strategies = NewPublishStrategies(append(fromConfig, a.strategyOptions...)...)

	if err = a.Reset(ctx); err != nil {
		return nil, err
	}

	return a, nil
}

func (a *identityAdapter) implementationFactory(hl manager.LoggerInterface) manager.ImplementationFactory {
	if a.factory != nil {
		return a.factory
	}

	native := manager.NewNativePluginSystem(hl, a.nativePlugins...)
	if a.cfg.DisableRemotePlugins {
		return native
	}

	return manager.NewHybridPluginSystem(hl, native, client.NewRemotePluginSystem(a.cfg.Plugins.Remote))
}

// Reset selects a manager and creates a new resolution context. The adapter
// is left untouched if no manager can be obtained.
func (a *identityAdapter) Reset(ctx context.Context) error {
	var err error

	ctx, span := tracer.Start(ctx, "reset")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	hl := newHostLogger(a.logger)
	host := manager.NewHostInterface(a.cfg.Host.Identifier, a.cfg.Host.DisplayName)

	m, err := manager.DefaultManagerForInterface(
		ctx,
		manager.DefaultManagerConfig{Identifier: a.cfg.Manager.Identifier, Settings: a.cfg.Manager.Settings},
		host,
		a.implementationFactory(hl),
		hl,
	)
	if err == nil && m == nil {
		err = errors.NewConfigurationError("no default manager configured, set manager.identifier in the adapter configuration")
	}
	if err != nil {
		a.logger.Error("failed to reset identity adapter", "err", err.Error())
		return err
	}

	a.manager = m
	a.gw = gateway{m: m, mctx: m.CreateContext()}
	a.versions = versionWalker{gw: a.gw, logger: a.logger}
	a.publisher = publisher{m: m, mctx: a.gw.mctx, strategies: a.strategies, logger: a.logger}

	a.logger.Info("identity adapter ready", "manager", m.Identifier(), "context", a.gw.mctx.ID)

	return nil
}

func (a *identityAdapter) IsIdentifier(ctx context.Context, s string) bool {
	return a.manager.IsEntityReferenceString(s)
}

func (a *identityAdapter) ContainsIdentifier(ctx context.Context, s string) (bool, error) {
	prefix, ok := a.manager.Info()[manager.InfoKeyEntityReferencesMatchPrefix].(string)
	if !ok {
		return false, errors.NewConfigurationError(
			fmt.Sprintf("manager %s does not provide an entity reference prefix", a.manager.Identifier()),
		)
	}

	return strings.Contains(s, prefix), nil
}

func (a *identityAdapter) ResolveLocation(ctx context.Context, id string) (string, error) {
	var err error

	ctx, span := tracer.Start(ctx, "resolve-location", trace.WithAttributes(attribute.String(TraceAttributeAssetID, id)))
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	td, err := a.gw.resolve(ctx, id, traits.LocatableContentID)
	if err != nil {
		return "", err
	}

	location, ok := traits.LocatableContent{Data: td}.Location()
	if !ok {
		err = errors.NewNoLocationError(id + " has no location")
		return "", err
	}

	path, err := a.paths.PathFromURL(location)
	if err != nil {
		return "", err
	}

	return path, nil
}

func (a *identityAdapter) ResolveAllLocations(ctx context.Context, id string) (string, error) {
	return a.ResolveLocation(ctx, id)
}

func (a *identityAdapter) ResolvePath(ctx context.Context, id string, frame int) (string, error) {
	path, err := a.ResolveLocation(ctx, id)
	if err != nil {
		return "", err
	}

	if !a.sequences.IsSequence(path) {
		return path, nil
	}

	return a.sequences.Resolve(path, frame)
}

func (a *identityAdapter) ResolveVersionTag(ctx context.Context, id, tag string) (string, error) {
	var err error

	ctx, span := tracer.Start(ctx, "resolve-version-tag", trace.WithAttributes(
		attribute.String(TraceAttributeAssetID, id),
		attribute.String("version-tag", tag),
	))
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	var ref manager.EntityReference

	if tag == "" {
		ref, err = a.manager.CreateEntityReference(id)
		if err != nil {
			return "", err
		}
	} else {
		var found bool
		ref, found, err = a.versions.ReferenceForVersion(ctx, id, tag)
		if err != nil {
			return "", err
		}
		if !found {
			err = errors.NewVersionNotFoundError(fmt.Sprintf("no version found for asset %s and version %s", id, tag))
			return "", err
		}
	}

	td, err := a.gw.resolveRef(ctx, ref, types.NewTraitSet(traits.VersionID))
	if err != nil {
		return "", err
	}

	return traits.Version{Data: td}.StableTag(""), nil
}

func (a *identityAdapter) ListVersionTags(ctx context.Context, id string) ([]string, error) {
	var err error

	ctx, span := tracer.Start(ctx, "list-version-tags", trace.WithAttributes(attribute.String(TraceAttributeAssetID, id)))
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	tags, err := a.versions.ListVersionTags(ctx, id)
	return tags, err
}

func (a *identityAdapter) DisplayName(ctx context.Context, id string) (string, error) {
	td, err := a.gw.resolve(ctx, id, traits.DisplayNameID)
	if err != nil {
		return "", err
	}

	return traits.DisplayName{Data: td}.Name(""), nil
}

func (a *identityAdapter) ScenegraphLocation(ctx context.Context, id string, includeVersion bool) (string, error) {
	traitIDs := []string{traits.SourcePathID}
	if includeVersion {
		traitIDs = append(traitIDs, traits.VersionID)
	}

	td, err := a.gw.resolve(ctx, id, traitIDs...)
	if err != nil {
		return "", err
	}

	location := traits.SourcePath{Data: td}.Path("/")

	if includeVersion {
		if tag, ok := (traits.Version{Data: td}).LookupStableTag(); ok {
			location += "/" + tag
		}
	}

	return location, nil
}

// GetFields returns the reserved fields for id. includeDefaults is accepted
// for compatibility with the host API but does not change the result.
func (a *identityAdapter) GetFields(ctx context.Context, id string, includeDefaults bool) (FieldMap, error) {
	var err error

	ctx, span := tracer.Start(ctx, "get-fields", trace.WithAttributes(attribute.String(TraceAttributeAssetID, id)))
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	td, err := a.gw.resolve(ctx, id, traits.DisplayNameID, traits.VersionID)
	if err != nil {
		return nil, err
	}

	return FieldMap{
		FieldAssetID: id,
		FieldName:    traits.DisplayName{Data: td}.Name(""),
		FieldVersion: traits.Version{Data: td}.SpecifiedTag(""),
	}, nil
}

func (a *identityAdapter) BuildIdentifier(ctx context.Context, fields FieldMap) (string, error) {
	var err error

	ctx, span := tracer.Start(ctx, "build-identifier")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	id, err := IdentifierFromFields(fields)
	if err != nil {
		return "", err
	}

	span.SetAttributes(attribute.String(TraceAttributeAssetID, id))

	tag, ok := fields[FieldVersion]
	if !ok {
		return id, nil
	}

	ref, found, err := a.versions.ReferenceForVersion(ctx, id, tag)
	if err != nil {
		return "", err
	}

	if !found {
		return id, nil
	}

	return ref.String(), nil
}

// GetAttributes resolves every trait of the entity and returns the reserved
// fields together with all flattened trait properties. scope is accepted
// but not used to filter the result.
func (a *identityAdapter) GetAttributes(ctx context.Context, id, scope string) (FieldMap, error) {
	var err error

	ctx, span := tracer.Start(ctx, "get-attributes", trace.WithAttributes(attribute.String(TraceAttributeAssetID, id)))
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	ref, err := a.manager.CreateEntityReference(id)
	if err != nil {
		return nil, err
	}

	traitSet, err := a.manager.EntityTraits(ctx, ref, types.EntityTraitsAccessRead, a.gw.mctx)
	if err != nil {
		return nil, err
	}

	traitSet = traitSet.Union(types.NewTraitSet(traits.DisplayNameID, traits.VersionID))

	td, err := a.gw.resolveRef(ctx, ref, traitSet)
	if err != nil {
		return nil, err
	}

	attrs := FieldMap{
		FieldAssetID: id,
		FieldName:    traits.DisplayName{Data: td}.Name(""),
		FieldVersion: traits.Version{Data: td}.SpecifiedTag(""),
	}

	flattenInto(attrs, td)

	return attrs, nil
}

func (a *identityAdapter) SetAttributes(ctx context.Context, id, scope string, attrs FieldMap) error {
	return nil
}

func (a *identityAdapter) IdentifierForScope(ctx context.Context, id, scope string) (string, error) {
	return id, nil
}

func (a *identityAdapter) RelatedIdentifier(ctx context.Context, id, relation string) (string, error) {
	return "", nil
}

func (a *identityAdapter) CheckPermissions(ctx context.Context, id string, hostContext map[string]string) bool {
	return true
}

func (a *identityAdapter) RunAssetPluginCommand(ctx context.Context, id, command string, args map[string]string) bool {
	return true
}

func (a *identityAdapter) PublishPrepare(ctx context.Context, txn *Transaction, assetType string, fields FieldMap, args map[string]string) (string, error) {
	var err error

	ctx, span := tracer.Start(ctx, "publish-prepare", trace.WithAttributes(attribute.String("asset-type", assetType)))
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	if txn != nil {
		err = errors.NewUnsupportedTransactionError("publishing within a transaction is not supported")
		return "", err
	}

	id, ok := fields[FieldAssetID]
	if !ok {
		err = errors.NewMissingFieldError("existing asset id not specified in publish")
		return "", err
	}

	working, err := a.publisher.prepare(ctx, assetType, id, args)
	return working, err
}

func (a *identityAdapter) PublishCommit(ctx context.Context, txn *Transaction, assetType string, fields FieldMap, args map[string]string) (string, error) {
	var err error

	ctx, span := tracer.Start(ctx, "publish-commit", trace.WithAttributes(attribute.String("asset-type", assetType)))
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	if txn != nil {
		err = errors.NewUnsupportedTransactionError("publishing within a transaction is not supported")
		return "", err
	}

	id, ok := fields[FieldAssetID]
	if !ok {
		err = errors.NewMissingFieldError("working entity reference not specified in post-publish")
		return "", err
	}

	final, err := a.publisher.commit(ctx, assetType, id, args)
	return final, err
}
