package client

import "github.com/diwise/asset-adapter/pkg/oaio/types"

type initializeRequest struct {
	Settings map[string]any `json:"settings"`
	Host     struct {
		Identifier  string `json:"identifier"`
		DisplayName string `json:"displayName"`
	} `json:"host"`
}

type infoResponse struct {
	Identifier  string         `json:"identifier"`
	DisplayName string         `json:"displayName"`
	Info        map[string]any `json:"info"`
}

type resolveRequest struct {
	References []string       `json:"references"`
	Traits     types.TraitSet `json:"traits"`
	Access     string         `json:"access"`
	Context    string         `json:"context,omitempty"`
}

type relationshipRequest struct {
	Reference    string            `json:"reference"`
	Relationship *types.TraitsData `json:"relationship"`
	PageSize     int               `json:"pageSize"`
	Access       string            `json:"access"`
	Context      string            `json:"context,omitempty"`
	ResultTraits types.TraitSet    `json:"resultTraits"`
}

// pageResponse carries one page of references. Next is empty on the last page.
type pageResponse struct {
	References []string `json:"references"`
	Next       string   `json:"next,omitempty"`
}

type entityTraitsRequest struct {
	Reference string `json:"reference"`
	Access    string `json:"access"`
	Context   string `json:"context,omitempty"`
}

type policyRequest struct {
	Traits  types.TraitSet `json:"traits"`
	Access  string         `json:"access"`
	Context string         `json:"context,omitempty"`
}

type publishRequest struct {
	Reference  string            `json:"reference"`
	TraitsData *types.TraitsData `json:"traitsData"`
	Access     string            `json:"access"`
	Context    string            `json:"context,omitempty"`
}

type referenceResponse struct {
	Reference string `json:"reference"`
}
