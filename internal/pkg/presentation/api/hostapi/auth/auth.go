package auth

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"github.com/open-policy-agent/opa/rego"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("asset-adapter/hostapi/authz")

// Access classifies what an operation does to the asset backend
type Access string

const (
	AccessRead    Access = "read"
	AccessWrite   Access = "write"
	AccessPublish Access = "publish"
)

type Operation struct {
	Name   string
	Access Access
}

// DeniedError is returned when the policy decides against a request
type DeniedError struct {
	Operation Operation
	Reason    string
}

func (e *DeniedError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("%s access to %s denied", e.Operation.Access, e.Operation.Name)
	}
	return fmt.Sprintf("%s access to %s denied: %s", e.Operation.Access, e.Operation.Name, e.Reason)
}

type Enticator interface {
	CheckAccess(ctx context.Context, r *http.Request, op Operation) error
}

type enticatorImpl struct {
	preparedQuery rego.PreparedEvalQuery
}

// NewAuthenticator prepares the policy module read from policies. The module
// must define data.assetadapter.authz.decision as an object with a boolean
// "allowed" and an optional "reason".
func NewAuthenticator(ctx context.Context, policies io.Reader) (Enticator, error) {

	module, err := io.ReadAll(policies)
	if err != nil {
		return nil, fmt.Errorf("unable to read authz policies: %s", err.Error())
	}

	impl := &enticatorImpl{}

	impl.preparedQuery, err = rego.New(
		rego.Query("decision = data.assetadapter.authz.decision"),
		rego.Module("assetadapter.rego", string(module)),
	).PrepareForEval(ctx)

	if err != nil {
		return nil, err
	}

	return impl, nil
}

func (e *enticatorImpl) CheckAccess(ctx context.Context, r *http.Request, op Operation) error {
	var err error

	_, span := tracer.Start(ctx, "check-access", trace.WithAttributes(
		attribute.String("operation", op.Name),
		attribute.String("access", string(op.Access)),
	))
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	results, err := e.preparedQuery.Eval(ctx, rego.EvalInput(policyInput(r, op)))
	if err != nil {
		err = fmt.Errorf("policy evaluation failed: %w", err)
		return err
	}

	if len(results) == 0 {
		err = fmt.Errorf("policy did not produce a decision for %s", op.Name)
		return err
	}

	decision, ok := results[0].Bindings["decision"].(map[string]any)
	if !ok {
		err = errors.New("policy decision is not an object")
		return err
	}

	allowed, ok := decision["allowed"].(bool)
	if !ok {
		err = errors.New("policy decision lacks a boolean allowed field")
		return err
	}

	if !allowed {
		reason, _ := decision["reason"].(string)
		err = &DeniedError{Operation: op, Reason: reason}
		return err
	}

	return nil
}

func policyInput(r *http.Request, op Operation) map[string]any {
	token := r.Header.Get("Authorization")
	if t, ok := strings.CutPrefix(token, "Bearer "); ok {
		token = t
	}

	return map[string]any{
		"operation": map[string]any{
			"name":   op.Name,
			"access": string(op.Access),
		},
		"asset": r.URL.Query().Get("id"),
		"subject": map[string]any{
			"token": token,
		},
		"request": map[string]any{
			"method": r.Method,
			"path":   strings.Split(strings.Trim(r.URL.Path, "/"), "/"),
		},
	}
}
