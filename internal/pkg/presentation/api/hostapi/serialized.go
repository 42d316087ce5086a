package hostapi

import (
	"context"
	"sync"

	"github.com/diwise/asset-adapter/internal/pkg/application/adapter"
)

// serializedAdapter lets concurrent requests share a single adapter, which
// must not be called from more than one goroutine at a time
type serializedAdapter struct {
	mu sync.Mutex
	a  adapter.IdentityAdapter
}

func newSerializedAdapter(a adapter.IdentityAdapter) adapter.IdentityAdapter {
	return &serializedAdapter{a: a}
}

func (s *serializedAdapter) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Reset(ctx)
}

func (s *serializedAdapter) IsIdentifier(ctx context.Context, str string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.IsIdentifier(ctx, str)
}

func (s *serializedAdapter) ContainsIdentifier(ctx context.Context, str string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.ContainsIdentifier(ctx, str)
}

func (s *serializedAdapter) ResolveLocation(ctx context.Context, id string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.ResolveLocation(ctx, id)
}

func (s *serializedAdapter) ResolveAllLocations(ctx context.Context, id string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.ResolveAllLocations(ctx, id)
}

func (s *serializedAdapter) ResolvePath(ctx context.Context, id string, frame int) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.ResolvePath(ctx, id, frame)
}

func (s *serializedAdapter) ResolveVersionTag(ctx context.Context, id, tag string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.ResolveVersionTag(ctx, id, tag)
}

func (s *serializedAdapter) ListVersionTags(ctx context.Context, id string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.ListVersionTags(ctx, id)
}

func (s *serializedAdapter) DisplayName(ctx context.Context, id string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.DisplayName(ctx, id)
}

func (s *serializedAdapter) ScenegraphLocation(ctx context.Context, id string, includeVersion bool) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.ScenegraphLocation(ctx, id, includeVersion)
}

func (s *serializedAdapter) GetFields(ctx context.Context, id string, includeDefaults bool) (adapter.FieldMap, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.GetFields(ctx, id, includeDefaults)
}

func (s *serializedAdapter) BuildIdentifier(ctx context.Context, fields adapter.FieldMap) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.BuildIdentifier(ctx, fields)
}

func (s *serializedAdapter) GetAttributes(ctx context.Context, id, scope string) (adapter.FieldMap, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.GetAttributes(ctx, id, scope)
}

func (s *serializedAdapter) SetAttributes(ctx context.Context, id, scope string, attrs adapter.FieldMap) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.SetAttributes(ctx, id, scope, attrs)
}

func (s *serializedAdapter) IdentifierForScope(ctx context.Context, id, scope string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.IdentifierForScope(ctx, id, scope)
}

func (s *serializedAdapter) RelatedIdentifier(ctx context.Context, id, relation string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.RelatedIdentifier(ctx, id, relation)
}

func (s *serializedAdapter) CheckPermissions(ctx context.Context, id string, hostContext map[string]string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.CheckPermissions(ctx, id, hostContext)
}

func (s *serializedAdapter) RunAssetPluginCommand(ctx context.Context, id, command string, args map[string]string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.RunAssetPluginCommand(ctx, id, command, args)
}

func (s *serializedAdapter) PublishPrepare(ctx context.Context, txn *adapter.Transaction, assetType string, fields adapter.FieldMap, args map[string]string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.PublishPrepare(ctx, txn, assetType, fields, args)
}

func (s *serializedAdapter) PublishCommit(ctx context.Context, txn *adapter.Transaction, assetType string, fields adapter.FieldMap, args map[string]string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.PublishCommit(ctx, txn, assetType, fields, args)
}
