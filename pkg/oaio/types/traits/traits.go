// Package traits holds the identifiers of the media creation traits used by
// this adapter together with small typed views that read and write their
// properties on a types.TraitsData.
package traits

import (
	"github.com/diwise/asset-adapter/pkg/oaio/types"
)

const prefix string = "openassetio-mediacreation:"

const (
	DisplayNameID      string = prefix + "identity.DisplayName"
	VersionID          string = prefix + "lifecycle.Version"
	LocatableContentID string = prefix + "content.LocatableContent"
	SourcePathID       string = prefix + "threeDimensional.SourcePath"
	ManagedID          string = prefix + "managementPolicy.Managed"
	RelationshipID     string = prefix + "usage.Relationship"

	EntityID   string = prefix + "usage.Entity"
	ResourceID string = prefix + "usage.Resource"
	WorkID     string = prefix + "application.Work"

	ImageID      string = prefix + "twoDimensional.Image"
	PixelBasedID string = prefix + "twoDimensional.PixelBased"
	DeepID       string = prefix + "twoDimensional.Deep"

	GeometryID string = prefix + "threeDimensional.Geometry"
	SpatialID  string = prefix + "threeDimensional.Spatial"
	ShaderID   string = prefix + "threeDimensional.Shader"
	LightingID string = prefix + "threeDimensional.Lighting"
)

// DisplayName names an entity for presentation to a user
type DisplayName struct {
	Data *types.TraitsData
}

func (t DisplayName) Name(defaultValue string) string {
	return t.Data.StringProperty(DisplayNameID, "name", defaultValue)
}

func (t DisplayName) QualifiedName(defaultValue string) string {
	return t.Data.StringProperty(DisplayNameID, "qualifiedName", defaultValue)
}

func (t DisplayName) SetName(name string) {
	t.Data.SetString(DisplayNameID, "name", name)
}

// Version describes which version of a logical entity a reference points
// to. The specified tag may be a meta-version such as "latest", the stable
// tag never is.
type Version struct {
	Data *types.TraitsData
}

func (t Version) SpecifiedTag(defaultValue string) string {
	return t.Data.StringProperty(VersionID, "specifiedTag", defaultValue)
}

func (t Version) StableTag(defaultValue string) string {
	return t.Data.StringProperty(VersionID, "stableTag", defaultValue)
}

func (t Version) LookupStableTag() (string, bool) {
	return t.Data.LookupString(VersionID, "stableTag")
}

func (t Version) SetSpecifiedTag(tag string) {
	t.Data.SetString(VersionID, "specifiedTag", tag)
}

func (t Version) SetStableTag(tag string) {
	t.Data.SetString(VersionID, "stableTag", tag)
}

// LocatableContent points at the data of an entity with a URL
type LocatableContent struct {
	Data *types.TraitsData
}

func (t LocatableContent) Location() (string, bool) {
	return t.Data.LookupString(LocatableContentID, "location")
}

func (t LocatableContent) MimeType(defaultValue string) string {
	return t.Data.StringProperty(LocatableContentID, "mimeType", defaultValue)
}

func (t LocatableContent) IsTemplated(defaultValue bool) bool {
	return t.Data.BoolProperty(LocatableContentID, "isTemplated", defaultValue)
}

func (t LocatableContent) SetLocation(url string) {
	t.Data.SetString(LocatableContentID, "location", url)
}

// SourcePath is the hierarchical location of an entity within a scene
type SourcePath struct {
	Data *types.TraitsData
}

func (t SourcePath) Path(defaultValue string) string {
	return t.Data.StringProperty(SourcePathID, "path", defaultValue)
}

func (t SourcePath) SetPath(path string) {
	t.Data.SetString(SourcePathID, "path", path)
}

// IsManaged reports whether a management policy response states that the
// manager takes responsibility for entities with the queried traits.
func IsManaged(policy *types.TraitsData) bool {
	return policy.HasTrait(ManagedID)
}
