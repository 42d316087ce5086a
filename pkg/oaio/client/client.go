package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httputil"
	"net/url"
	"strings"

	"github.com/diwise/asset-adapter/pkg/oaio/errors"
	"github.com/diwise/asset-adapter/pkg/oaio/manager"
	"github.com/diwise/asset-adapter/pkg/oaio/types"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

func Debug(enabled string) func(*remoteManager) {
	return func(c *remoteManager) {
		c.debug = (enabled == "true")
	}
}

// NewRemoteManager returns a ManagerInterface that forwards every call to an
// out of process manager listening on endpoint
func NewRemoteManager(identifier, endpoint string, options ...func(*remoteManager)) manager.ManagerInterface {
	c := &remoteManager{
		identifier:  identifier,
		displayName: identifier,
		baseURL:     strings.TrimSuffix(endpoint, "/"),
		info:        map[string]any{},
		httpClient: http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}

	for _, option := range options {
		option(c)
	}

	return c
}

const (
	TraceAttributeManager   string = "manager-id"
	TraceAttributeReference string = "entity-reference"
)

var tracer = otel.Tracer("asset-adapter/remote-manager")

type remoteManager struct {
	identifier  string
	displayName string
	baseURL     string
	info        map[string]any
	prefix      string
	debug       bool
	httpClient  http.Client
}

func (c *remoteManager) Identifier() string {
	return c.identifier
}

func (c *remoteManager) DisplayName() string {
	return c.displayName
}

func (c *remoteManager) Info() map[string]any {
	return c.info
}

func (c *remoteManager) Initialize(ctx context.Context, settings map[string]any, session manager.HostSession) error {
	var err error

	ctx, span := tracer.Start(ctx, "initialize", trace.WithAttributes(attribute.String(TraceAttributeManager, c.identifier)))
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	req := initializeRequest{Settings: settings}
	if session.Host != nil {
		req.Host.Identifier = session.Host.Identifier()
		req.Host.DisplayName = session.Host.DisplayName()
	}

	err = c.post(ctx, "/initialize", req, nil, http.StatusNoContent, http.StatusOK)
	if err != nil {
		return err
	}

	info := infoResponse{}
	err = c.get(ctx, "/info", &info)
	if err != nil {
		return err
	}

	if info.DisplayName != "" {
		c.displayName = info.DisplayName
	}
	if info.Info != nil {
		c.info = info.Info
	}

	prefix, ok := c.info[manager.InfoKeyEntityReferencesMatchPrefix].(string)
	if !ok || prefix == "" {
		logging.GetFromContext(ctx).Warn("remote manager does not advertise a reference prefix, no references will be accepted", "manager", c.identifier)
	}
	c.prefix = prefix

	return nil
}

func (c *remoteManager) IsEntityReferenceString(s string) bool {
	return c.prefix != "" && strings.HasPrefix(s, c.prefix)
}

func (c *remoteManager) Resolve(ctx context.Context, refs []string, traitSet types.TraitSet, access types.ResolveAccess, mctx *manager.Context) ([]*types.TraitsData, error) {
	var err error

	ctx, span := tracer.Start(ctx, "resolve", trace.WithAttributes(
		attribute.String(TraceAttributeManager, c.identifier),
		attribute.Int("reference-count", len(refs)),
	))
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	req := resolveRequest{
		References: refs,
		Traits:     traitSet,
		Access:     access.String(),
		Context:    contextID(mctx),
	}

	results := []*types.TraitsData{}
	err = c.post(ctx, "/resolve", req, &results, http.StatusOK)
	if err != nil {
		return nil, err
	}

	return results, nil
}

func (c *remoteManager) GetWithRelationship(ctx context.Context, ref string, relationship *types.TraitsData, pageSize int, access types.RelationsAccess, mctx *manager.Context, resultTraitSet types.TraitSet) (manager.PagerInterface, error) {
	var err error

	ctx, span := tracer.Start(ctx, "get-with-relationship", trace.WithAttributes(
		attribute.String(TraceAttributeManager, c.identifier),
		attribute.String(TraceAttributeReference, ref),
	))
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	req := relationshipRequest{
		Reference:    ref,
		Relationship: relationship,
		PageSize:     pageSize,
		Access:       access.String(),
		Context:      contextID(mctx),
		ResultTraits: resultTraitSet,
	}

	page := pageResponse{}
	err = c.post(ctx, "/relationships", req, &page, http.StatusOK)
	if err != nil {
		return nil, err
	}

	return newPager(c, page), nil
}

func (c *remoteManager) EntityTraits(ctx context.Context, ref string, access types.EntityTraitsAccess, mctx *manager.Context) (types.TraitSet, error) {
	var err error

	ctx, span := tracer.Start(ctx, "entity-traits", trace.WithAttributes(
		attribute.String(TraceAttributeManager, c.identifier),
		attribute.String(TraceAttributeReference, ref),
	))
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	req := entityTraitsRequest{
		Reference: ref,
		Access:    access.String(),
		Context:   contextID(mctx),
	}

	ts := types.TraitSet{}
	err = c.post(ctx, "/entity-traits", req, &ts, http.StatusOK)
	if err != nil {
		return nil, err
	}

	return ts, nil
}

func (c *remoteManager) ManagementPolicy(ctx context.Context, traitSet types.TraitSet, access types.PolicyAccess, mctx *manager.Context) (*types.TraitsData, error) {
	var err error

	ctx, span := tracer.Start(ctx, "management-policy", trace.WithAttributes(attribute.String(TraceAttributeManager, c.identifier)))
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	req := policyRequest{
		Traits:  traitSet,
		Access:  access.String(),
		Context: contextID(mctx),
	}

	policy := types.NewTraitsData()
	err = c.post(ctx, "/management-policy", req, policy, http.StatusOK)
	if err != nil {
		return nil, err
	}

	return policy, nil
}

func (c *remoteManager) Preflight(ctx context.Context, ref string, traitsData *types.TraitsData, access types.PublishingAccess, mctx *manager.Context) (string, error) {
	return c.publish(ctx, "preflight", ref, traitsData, access, mctx)
}

func (c *remoteManager) Register(ctx context.Context, ref string, traitsData *types.TraitsData, access types.PublishingAccess, mctx *manager.Context) (string, error) {
	return c.publish(ctx, "register", ref, traitsData, access, mctx)
}

func (c *remoteManager) publish(ctx context.Context, operation, ref string, traitsData *types.TraitsData, access types.PublishingAccess, mctx *manager.Context) (string, error) {
	var err error

	ctx, span := tracer.Start(ctx, operation, trace.WithAttributes(
		attribute.String(TraceAttributeManager, c.identifier),
		attribute.String(TraceAttributeReference, ref),
	))
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	req := publishRequest{
		Reference:  ref,
		TraitsData: traitsData,
		Access:     access.String(),
		Context:    contextID(mctx),
	}

	result := referenceResponse{}
	err = c.post(ctx, "/"+operation, req, &result, http.StatusOK, http.StatusCreated)
	if err != nil {
		return "", err
	}

	if result.Reference == "" {
		err = errors.NewBadResponseError(fmt.Sprintf("%s returned no reference from %s", c.identifier, operation))
		return "", err
	}

	return result.Reference, nil
}

func (c *remoteManager) get(ctx context.Context, path string, result any) error {
	return c.call(ctx, http.MethodGet, path, nil, result, http.StatusOK)
}

func (c *remoteManager) post(ctx context.Context, path string, request, result any, expectedCodes ...int) error {
	b, err := json.Marshal(request)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %s (%w)", err.Error(), errors.ErrInternal)
	}

	return c.call(ctx, http.MethodPost, path, bytes.NewBuffer(b), result, expectedCodes...)
}

func (c *remoteManager) delete(ctx context.Context, path string) error {
	return c.call(ctx, http.MethodDelete, path, nil, nil, http.StatusNoContent, http.StatusOK, http.StatusNotFound)
}

func (c *remoteManager) call(ctx context.Context, method, path string, body io.Reader, result any, expectedCodes ...int) error {
	response, responseBody, err := c.callRemoteManager(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}

	contentType := response.Header.Get("Content-Type")

	if !isExpected(response.StatusCode, expectedCodes) {
		if response.StatusCode >= http.StatusBadRequest && response.StatusCode <= http.StatusInternalServerError {
			return errors.NewErrorFromProblemReport(response.StatusCode, contentType, responseBody)
		}

		return fmt.Errorf("remote manager returned status code %d (content-type: %s, body: %s) (%w)",
			response.StatusCode, contentType, string(responseBody), errors.ErrBadResponse)
	}

	if result == nil || len(responseBody) == 0 {
		return nil
	}

	err = json.Unmarshal(responseBody, result)
	if err != nil {
		if c.debug && len(responseBody) < 1000 {
			return errors.NewBadResponseError(fmt.Sprintf("unmarshaling of %s failed with err %s", string(responseBody), err.Error()))
		}
		return errors.NewBadResponseError(fmt.Sprintf("failed to unmarshal response from %s: %s", path, err.Error()))
	}

	return nil
}

func (c *remoteManager) callRemoteManager(ctx context.Context, method, endpoint string, body io.Reader) (*http.Response, []byte, error) {
	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create request: %s (%w)", err.Error(), errors.ErrInternal)
	}

	req.Header.Add("Accept", "application/json")
	if body != nil {
		req.Header.Add("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to send request: %s (%w)", err.Error(), errors.ErrRequest)
	}

	defer resp.Body.Close()
	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read response body: %s (%w)", err.Error(), errors.ErrBadResponse)
	}

	if c.debug && resp.StatusCode >= http.StatusBadRequest {
		reqbytes, _ := httputil.DumpRequest(req, false)
		respbytes, _ := httputil.DumpResponse(resp, false)

		logging.GetFromContext(ctx).Error("request failed", "request", string(reqbytes), "response", string(respbytes))
	}

	return resp, respBody, nil
}

func isExpected(code int, expected []int) bool {
	for _, e := range expected {
		if code == e {
			return true
		}
	}
	return false
}

func contextID(mctx *manager.Context) string {
	if mctx == nil {
		return ""
	}
	return mctx.ID
}

func pagePath(token string) string {
	return "/relationships/pages/" + url.PathEscape(token)
}
