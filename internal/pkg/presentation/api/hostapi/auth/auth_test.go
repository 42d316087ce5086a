package auth

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/matryer/is"
)

var (
	resolveLocation = Operation{Name: "resolve-location", Access: AccessRead}
	publishCommit   = Operation{Name: "publish-commit", Access: AccessPublish}
	setAttributes   = Operation{Name: "set-attributes", Access: AccessWrite}
)

func TestAccessIsGrantedForReadOperations(t *testing.T) {
	is, ctx, authenticator := testSetup(t, testPolicy)

	r := httptest.NewRequest(http.MethodGet, "/api/v0/assets/location?id=libref://pony", nil)

	err := authenticator.CheckAccess(ctx, r, resolveLocation)
	is.NoErr(err)
}

func TestPublishingRequiresAToken(t *testing.T) {
	is, ctx, authenticator := testSetup(t, testPolicy)

	r := httptest.NewRequest(http.MethodPost, "/api/v0/publish/commit", nil)

	err := authenticator.CheckAccess(ctx, r, publishCommit)

	var denied *DeniedError
	is.True(errors.As(err, &denied))
	is.Equal(denied.Operation, publishCommit)
	is.Equal(denied.Reason, "publishing needs a token")

	r.Header.Set("Authorization", "Bearer letmein")

	err = authenticator.CheckAccess(ctx, r, publishCommit)
	is.NoErr(err)
}

func TestPolicyCanRestrictAccessPerAsset(t *testing.T) {
	is, ctx, authenticator := testSetup(t, testPolicy)

	r := httptest.NewRequest(http.MethodPut, "/api/v0/assets/attributes?id=libref://locked", nil)
	r.Header.Set("Authorization", "Bearer letmein")

	err := authenticator.CheckAccess(ctx, r, setAttributes)

	var denied *DeniedError
	is.True(errors.As(err, &denied))
	is.Equal(denied.Reason, "libref://locked is read only")
}

func TestPolicyWithoutADecisionIsAnError(t *testing.T) {
	is, ctx, authenticator := testSetup(t, "package assetadapter.authz\n")

	r := httptest.NewRequest(http.MethodGet, "/api/v0/assets/location?id=libref://pony", nil)

	err := authenticator.CheckAccess(ctx, r, resolveLocation)
	is.True(err != nil)

	var denied *DeniedError
	is.True(!errors.As(err, &denied))
}

func TestShippedPolicy(t *testing.T) {
	policy, err := os.ReadFile("../../../../../../assets/config/authz.rego")
	is.New(t).NoErr(err)

	is, ctx, authenticator := testSetup(t, string(policy))

	r := httptest.NewRequest(http.MethodGet, "/api/v0/assets/location?id=libref://pony", nil)
	is.NoErr(authenticator.CheckAccess(ctx, r, resolveLocation))

	r = httptest.NewRequest(http.MethodPut, "/api/v0/assets/attributes?id=libref://pony", nil)
	var denied *DeniedError
	is.True(errors.As(authenticator.CheckAccess(ctx, r, setAttributes), &denied))

	r.Header.Set("Authorization", "Bearer anything")
	is.NoErr(authenticator.CheckAccess(ctx, r, setAttributes))
}

func TestBrokenPolicyFailsToLoad(t *testing.T) {
	is := is.New(t)

	_, err := NewAuthenticator(context.Background(), strings.NewReader("this is not rego"))
	is.True(err != nil)
}

func testSetup(t *testing.T, policy string) (*is.I, context.Context, Enticator) {
	is := is.New(t)
	ctx := context.Background()

	authenticator, err := NewAuthenticator(ctx, strings.NewReader(policy))
	is.NoErr(err)

	return is, ctx, authenticator
}

const testPolicy string = `
package assetadapter.authz

import rego.v1

default decision := {"allowed": false}

decision := {"allowed": true} if {
    input.operation.access == "read"
}

decision := {"allowed": false, "reason": "publishing needs a token"} if {
    input.operation.access == "publish"
    input.subject.token != "letmein"
}

decision := {"allowed": true} if {
    input.operation.access == "publish"
    input.subject.token == "letmein"
}

decision := {"allowed": false, "reason": concat(" ", [input.asset, "is read only"])} if {
    input.operation.access == "write"
    input.asset == "libref://locked"
}
`
