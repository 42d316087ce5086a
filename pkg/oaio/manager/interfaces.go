package manager

import (
	"context"

	"github.com/diwise/asset-adapter/pkg/oaio/types"
)

// InfoKeyEntityReferencesMatchPrefix is the Info key under which a manager
// may advertise a string prefix shared by all of its entity references
const InfoKeyEntityReferencesMatchPrefix string = "entityReferencesMatchPrefix"

//go:generate moq -rm -out managerinterface_mock.go . ManagerInterface PagerInterface

// ManagerInterface is the contract implemented by asset management
// backends. References cross this boundary as plain strings, the host side
// Manager is responsible for wrapping them in EntityReferences.
type ManagerInterface interface {
	Identifier() string
	DisplayName() string
	Info() map[string]any

	Initialize(ctx context.Context, settings map[string]any, session HostSession) error

	IsEntityReferenceString(s string) bool

	// Resolve must return exactly one TraitsData per input reference, in order
	Resolve(ctx context.Context, refs []string, traitSet types.TraitSet, access types.ResolveAccess, mctx *Context) ([]*types.TraitsData, error)
	GetWithRelationship(ctx context.Context, ref string, relationship *types.TraitsData, pageSize int, access types.RelationsAccess, mctx *Context, resultTraitSet types.TraitSet) (PagerInterface, error)
	EntityTraits(ctx context.Context, ref string, access types.EntityTraitsAccess, mctx *Context) (types.TraitSet, error)
	ManagementPolicy(ctx context.Context, traitSet types.TraitSet, access types.PolicyAccess, mctx *Context) (*types.TraitsData, error)
	Preflight(ctx context.Context, ref string, traitsData *types.TraitsData, access types.PublishingAccess, mctx *Context) (string, error)
	Register(ctx context.Context, ref string, traitsData *types.TraitsData, access types.PublishingAccess, mctx *Context) (string, error)
}

// PagerInterface is a stateful cursor over the results of a relationship
// query. Get returns the current page, an empty page signals the end.
type PagerInterface interface {
	HasNext(ctx context.Context) (bool, error)
	Get(ctx context.Context) ([]string, error)
	Next(ctx context.Context) error
	Close()
}

// HostInterface describes the application that hosts the adapter
type HostInterface interface {
	Identifier() string
	DisplayName() string
	Info() map[string]any
}

type HostSession struct {
	Host   HostInterface
	Logger LoggerInterface
}

type Severity int

const (
	SeverityDebugAPI Severity = iota
	SeverityDebug
	SeverityInfo
	SeverityProgress
	SeverityWarning
	SeverityError
	SeverityCritical
)

type LoggerInterface interface {
	Log(ctx context.Context, severity Severity, message string)
}

type host struct {
	identifier  string
	displayName string
}

func NewHostInterface(identifier, displayName string) HostInterface {
	return &host{identifier: identifier, displayName: displayName}
}

func (h *host) Identifier() string   { return h.identifier }
func (h *host) DisplayName() string  { return h.displayName }
func (h *host) Info() map[string]any { return map[string]any{} }
