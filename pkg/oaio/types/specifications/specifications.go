package specifications

import (
	"github.com/diwise/asset-adapter/pkg/oaio/types"
	"github.com/diwise/asset-adapter/pkg/oaio/types/traits"
)

// Specification is a well known set of traits that together describe a
// kind of entity or relationship.
type Specification struct {
	name     string
	traitIDs []string
}

func (s Specification) Name() string {
	return s.name
}

// TraitSet returns a new set on every call
func (s Specification) TraitSet() types.TraitSet {
	return types.NewTraitSet(s.traitIDs...)
}

// Create returns traits data imbued with every trait of the specification
// and no properties set.
func (s Specification) Create() *types.TraitsData {
	return types.NewTraitsData(types.Imbue(s.traitIDs...))
}

var (
	Workfile = Specification{
		name:     "workfile",
		traitIDs: []string{traits.EntityID, traits.WorkID, traits.LocatableContentID},
	}

	DeepBitmapImageResource = Specification{
		name: "deepBitmapImageResource",
		traitIDs: []string{
			traits.ResourceID, traits.ImageID, traits.PixelBasedID, traits.DeepID, traits.LocatableContentID,
		},
	}

	SceneGeometryResource = Specification{
		name:     "sceneGeometryResource",
		traitIDs: []string{traits.ResourceID, traits.GeometryID, traits.SpatialID, traits.LocatableContentID},
	}

	ShaderResource = Specification{
		name:     "shaderResource",
		traitIDs: []string{traits.ResourceID, traits.ShaderID, traits.LocatableContentID},
	}

	SceneLightingResource = Specification{
		name:     "sceneLightingResource",
		traitIDs: []string{traits.ResourceID, traits.LightingID, traits.SpatialID, traits.LocatableContentID},
	}

	EntityVersionsRelationship = Specification{
		name:     "entityVersionsRelationship",
		traitIDs: []string{traits.RelationshipID, traits.VersionID},
	}
)

var byName = map[string]Specification{}

func init() {
	for _, s := range []Specification{
		Workfile, DeepBitmapImageResource, SceneGeometryResource, ShaderResource, SceneLightingResource,
	} {
		byName[s.name] = s
	}
}

// ByName looks up an entity specification by its name, e.g. "workfile"
func ByName(name string) (Specification, bool) {
	s, ok := byName[name]
	return s, ok
}
