package adapter

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/diwise/asset-adapter/pkg/oaio/errors"
	"github.com/diwise/asset-adapter/pkg/oaio/manager"
	"github.com/diwise/asset-adapter/pkg/oaio/types"
	"github.com/diwise/asset-adapter/pkg/oaio/types/specifications"
	"github.com/diwise/asset-adapter/pkg/oaio/types/traits"
)

// Host asset types
const (
	AssetTypeKatanaScene         string = "katana scene"
	AssetTypeMacro               string = "macro"
	AssetTypeLiveGroup           string = "live group"
	AssetTypeImage               string = "image"
	AssetTypeLookFile            string = "look file"
	AssetTypeLookFileMgrSettings string = "look file manager settings"
	AssetTypeAlembic             string = "alembic"
	AssetTypeCastingSheet        string = "casting sheet"
	AssetTypeAttributeFile       string = "attribute file"
	AssetTypeFCurveFile          string = "fcurve file"
	AssetTypeGafferThreeRig      string = "gafferthree rig"
	AssetTypeScenegraphBookmarks string = "scenegraph bookmarks"
	AssetTypeShader              string = "shader"
)

// PublishStrategy describes how an asset type is published. Implementations
// must not change after they have been registered.
type PublishStrategy interface {
	TraitSet() types.TraitSet
	PrePublishTraitsData(args map[string]string) *types.TraitsData
	PostPublishTraitsData(args map[string]string) *types.TraitsData
}

// SpecificationStrategy publishes entities of a single specification. Both
// publish phases send the specification's traits without any properties.
type SpecificationStrategy struct {
	spec specifications.Specification
}

func NewSpecificationStrategy(spec specifications.Specification) SpecificationStrategy {
	return SpecificationStrategy{spec: spec}
}

func (s SpecificationStrategy) TraitSet() types.TraitSet {
	return s.spec.TraitSet()
}

// TODO: populate with values from the publish arguments once the host sends any
func (s SpecificationStrategy) PrePublishTraitsData(args map[string]string) *types.TraitsData {
	return s.spec.Create()
}

func (s SpecificationStrategy) PostPublishTraitsData(args map[string]string) *types.TraitsData {
	return s.spec.Create()
}

type StrategyOption func(strategies map[string]PublishStrategy)

// WithStrategy registers s for assetType, replacing any built in strategy
func WithStrategy(assetType string, s PublishStrategy) StrategyOption {
	return func(strategies map[string]PublishStrategy) {
		strategies[assetType] = s
	}
}

// PublishStrategies is the read only table of publish strategies keyed by
// host asset type
type PublishStrategies struct {
	strategies map[string]PublishStrategy
}

func NewPublishStrategies(options ...StrategyOption) *PublishStrategies {
	workfile := NewSpecificationStrategy(specifications.Workfile)

	strategies := map[string]PublishStrategy{
		AssetTypeKatanaScene:         workfile,
		AssetTypeMacro:               workfile,
		AssetTypeLiveGroup:           workfile,
		AssetTypeImage:               NewSpecificationStrategy(specifications.DeepBitmapImageResource),
		AssetTypeLookFile:            workfile,
		AssetTypeLookFileMgrSettings: workfile,
		AssetTypeAlembic:             NewSpecificationStrategy(specifications.SceneGeometryResource),
		AssetTypeCastingSheet:        workfile,
		AssetTypeAttributeFile:       workfile,
		AssetTypeFCurveFile:          workfile,
		AssetTypeGafferThreeRig:      NewSpecificationStrategy(specifications.SceneLightingResource),
		AssetTypeScenegraphBookmarks: workfile,
		AssetTypeShader:              NewSpecificationStrategy(specifications.ShaderResource),
	}

	for _, option := range options {
		option(strategies)
	}

	return &PublishStrategies{strategies: strategies}
}

// StrategiesFromConfig creates one option per configured asset type
func StrategiesFromConfig(cfg PublishConfig) ([]StrategyOption, error) {
	options := make([]StrategyOption, 0, len(cfg.Strategies))

	for assetType, specName := range cfg.Strategies {
		spec, ok := specifications.ByName(specName)
		if !ok {
			return nil, errors.NewConfigurationError(
				fmt.Sprintf("unknown specification %q configured for asset type %q", specName, assetType),
			)
		}
		options = append(options, WithStrategy(assetType, NewSpecificationStrategy(spec)))
	}

	return options, nil
}

func (ps *PublishStrategies) Lookup(assetType string) (PublishStrategy, bool) {
	s, ok := ps.strategies[assetType]
	return s, ok
}

func (ps *PublishStrategies) StrategyForAssetType(assetType string) (PublishStrategy, error) {
	s, ok := ps.Lookup(assetType)
	if !ok {
		return nil, errors.NewUnsupportedAssetTypeError(fmt.Sprintf("publishing '%s' is currently unsupported", assetType))
	}
	return s, nil
}

func (ps *PublishStrategies) AssetTypes() []string {
	assetTypes := make([]string, 0, len(ps.strategies))
	for t := range ps.strategies {
		assetTypes = append(assetTypes, t)
	}
	return assetTypes
}

// publisher runs the two publish phases against the manager
type publisher struct {
	m          *manager.Manager
	mctx       *manager.Context
	strategies *PublishStrategies
	logger     *slog.Logger
}

func (p publisher) prepare(ctx context.Context, assetType, assetID string, args map[string]string) (string, error) {
	strategy, err := p.strategies.StrategyForAssetType(assetType)
	if err != nil {
		return "", err
	}

	policy, err := p.m.ManagementPolicy(ctx, strategy.TraitSet(), types.PolicyAccessWrite, p.mctx)
	if err != nil {
		return "", err
	}

	if !traits.IsManaged(policy) {
		p.logger.Warn("manager does not support trait specification", "manager", p.m.DisplayName(), "assetType", assetType)
		return "", errors.NewPolicyRejectedError(fmt.Sprintf("manager %s does not support publishing %s", p.m.DisplayName(), assetType))
	}

	ref, err := p.m.CreateEntityReference(assetID)
	if err != nil {
		return "", err
	}

	working, err := p.m.Preflight(ctx, ref, strategy.PrePublishTraitsData(args), types.PublishingAccessWrite, p.mctx)
	if err != nil {
		return "", err
	}

	return working.String(), nil
}

func (p publisher) commit(ctx context.Context, assetType, workingID string, args map[string]string) (string, error) {
	strategy, err := p.strategies.StrategyForAssetType(assetType)
	if err != nil {
		return "", err
	}

	working, ok := p.m.CreateEntityReferenceIfValid(workingID)
	if !ok {
		return "", errors.NewInvalidReferenceError(
			fmt.Sprintf("error creating entity reference during post-publish from asset id %s", workingID),
		)
	}

	final, err := p.m.Register(ctx, working, strategy.PostPublishTraitsData(args), types.PublishingAccessWrite, p.mctx)
	if err != nil {
		return "", err
	}

	return final.String(), nil
}

// ShouldVersionUp reads the versionUp flag from host publish arguments
func ShouldVersionUp(args map[string]string) bool {
	return booleanArg(args, "versionUp")
}

// ShouldPublish reads the publish flag from host publish arguments
func ShouldPublish(args map[string]string) bool {
	return booleanArg(args, "publish")
}

// the host encodes booleans as "True" and "False"
func booleanArg(args map[string]string, key string) bool {
	return args[key] == "True"
}
