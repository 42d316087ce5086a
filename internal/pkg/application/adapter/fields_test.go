package adapter

import (
	"errors"
	"testing"

	oaioerrors "github.com/diwise/asset-adapter/pkg/oaio/errors"
	"github.com/diwise/asset-adapter/pkg/oaio/types"
	"github.com/matryer/is"
)

func TestFlattenFormatsValues(t *testing.T) {
	is := is.New(t)

	td := types.NewTraitsData(
		types.Property("acme:render.Settings", "enabled", true),
		types.Property("acme:render.Settings", "samples", int64(64)),
		types.Property("acme:render.Settings", "gamma", 2.2),
		types.Property("acme:render.Settings", "scale", 1.0),
		types.Property("acme:render.Settings", "camera.name", "persp"),
		types.Imbue("acme:tag.Empty"),
	)

	fields := Flatten(td)

	is.Equal(len(fields), 5)
	is.Equal(fields["acme:render_Settings_enabled"], "true")
	is.Equal(fields["acme:render_Settings_samples"], "64")
	is.Equal(fields["acme:render_Settings_gamma"], "2.2")
	is.Equal(fields["acme:render_Settings_scale"], "1")
	is.Equal(fields["acme:render_Settings_camera_name"], "persp")
}

func TestFlattenIsDeterministic(t *testing.T) {
	is := is.New(t)

	td := types.NewTraitsData(
		types.Property("a.b", "c", "1"),
		types.Property("a", "b.c", "2"),
		types.Property("x.y", "z", int64(3)),
	)

	first := Flatten(td)
	for range 10 {
		is.Equal(Flatten(td), first)
	}

	// "a.b"+"c" and "a"+"b.c" sanitize to the same key, the later trait in
	// sorted order wins every time
	is.Equal(first["a_b_c"], "1")
}

func TestFlattenNeverOverwritesReservedFields(t *testing.T) {
	is := is.New(t)

	dst := FieldMap{FieldAssetID: "myasset://pony"}
	flattenInto(dst, types.NewTraitsData(types.Property("", "_assetId", "overwritten")))

	is.Equal(dst[FieldAssetID], "myasset://pony")
}

func TestFlattenOfNilTraitsData(t *testing.T) {
	is := is.New(t)
	is.Equal(len(Flatten(nil)), 0)
}

func TestIdentifierFromFields(t *testing.T) {
	is := is.New(t)

	id, err := IdentifierFromFields(FieldMap{FieldAssetID: "myasset://pony"})
	is.NoErr(err)
	is.Equal(id, "myasset://pony")

	_, err = IdentifierFromFields(FieldMap{FieldName: "Pony"})
	is.True(errors.Is(err, oaioerrors.ErrMissingField))
}
