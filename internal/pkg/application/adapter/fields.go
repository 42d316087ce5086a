package adapter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/diwise/asset-adapter/pkg/oaio/errors"
	"github.com/diwise/asset-adapter/pkg/oaio/types"
)

// FieldMap is the flat string map exchanged with the host
type FieldMap map[string]string

const (
	FieldAssetID string = "__assetId"
	FieldName    string = "name"
	FieldVersion string = "version"

	FieldKeySeparator string = "_"
)

func isReservedField(key string) bool {
	return key == FieldAssetID || key == FieldName || key == FieldVersion
}

// IdentifierFromFields extracts the raw entity reference from a field map
func IdentifierFromFields(fields FieldMap) (string, error) {
	id, ok := fields[FieldAssetID]
	if !ok {
		return "", errors.NewMissingFieldError(fmt.Sprintf("could not determine asset id from field list, %s is missing", FieldAssetID))
	}
	return id, nil
}

// Flatten turns every trait property in td into a single field keyed by
// FlattenKey(traitID, propertyKey)
func Flatten(td *types.TraitsData) FieldMap {
	fields := FieldMap{}
	flattenInto(fields, td)
	return fields
}

func flattenInto(dst FieldMap, td *types.TraitsData) {
	for _, traitID := range td.TraitSet().Sorted() {
		for _, key := range td.TraitPropertyKeys(traitID) {
			value, ok := td.GetTraitProperty(traitID, key)
			if !ok {
				continue
			}

			fieldKey := FlattenKey(traitID, key)
			if isReservedField(fieldKey) {
				continue
			}

			dst[fieldKey] = formatValue(value)
		}
	}
}

// FlattenKey joins a trait id and a property key with FieldKeySeparator,
// replacing every '.' in the result with the separator as well
func FlattenKey(traitID, propertyKey string) string {
	return strings.ReplaceAll(traitID+FieldKeySeparator+propertyKey, ".", FieldKeySeparator)
}

func formatValue(v any) string {
	switch value := v.(type) {
	case string:
		return value
	case bool:
		return strconv.FormatBool(value)
	case int64:
		return strconv.FormatInt(value, 10)
	case float64:
		return strconv.FormatFloat(value, 'f', -1, 64)
	}
	return fmt.Sprintf("%v", v)
}
