package hostapi

import (
	"context"
	"encoding/json"
	goerrors "errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/diwise/asset-adapter/internal/pkg/application/adapter"
	"github.com/diwise/asset-adapter/internal/pkg/application/notifications"
	"github.com/diwise/asset-adapter/internal/pkg/presentation/api/hostapi/auth"
	"github.com/diwise/asset-adapter/pkg/oaio/errors"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel/trace"
)

var (
	opReset              = auth.Operation{Name: "reset", Access: auth.AccessWrite}
	opCheckIdentifier    = auth.Operation{Name: "check-identifier", Access: auth.AccessRead}
	opBuildIdentifier    = auth.Operation{Name: "build-identifier", Access: auth.AccessRead}
	opResolveLocation    = auth.Operation{Name: "resolve-location", Access: auth.AccessRead}
	opResolvePath        = auth.Operation{Name: "resolve-path", Access: auth.AccessRead}
	opResolveVersionTag  = auth.Operation{Name: "resolve-version-tag", Access: auth.AccessRead}
	opListVersionTags    = auth.Operation{Name: "list-version-tags", Access: auth.AccessRead}
	opDisplayName        = auth.Operation{Name: "display-name", Access: auth.AccessRead}
	opScenegraphLocation = auth.Operation{Name: "scenegraph-location", Access: auth.AccessRead}
	opGetFields          = auth.Operation{Name: "get-fields", Access: auth.AccessRead}
	opGetAttributes      = auth.Operation{Name: "get-attributes", Access: auth.AccessRead}
	opSetAttributes      = auth.Operation{Name: "set-attributes", Access: auth.AccessWrite}
	opIdentifierForScope = auth.Operation{Name: "identifier-for-scope", Access: auth.AccessRead}
	opRelatedIdentifier  = auth.Operation{Name: "related-identifier", Access: auth.AccessRead}
	opCheckPermissions   = auth.Operation{Name: "check-permissions", Access: auth.AccessRead}
	opRunCommand         = auth.Operation{Name: "run-command", Access: auth.AccessWrite}
	opPublishPrepare     = auth.Operation{Name: "publish-prepare", Access: auth.AccessPublish}
	opPublishCommit      = auth.Operation{Name: "publish-commit", Access: auth.AccessPublish}
)

// RegisterHandlers exposes the operations of app below /api/v0. Requests
// are served one at a time since the adapter is not safe for concurrent use.
// notifier may be nil.
func RegisterHandlers(ctx context.Context, r chi.Router, policies io.Reader, app adapter.IdentityAdapter, notifier notifications.Notifier, metrics *Metrics) error {

	authenticator, err := auth.NewAuthenticator(ctx, policies)
	if err != nil {
		return fmt.Errorf("failed to create api authenticator: %w", err)
	}

	if metrics == nil {
		metrics = NewMetrics()
	}

	app = newSerializedAdapter(app)
	m := metrics.Instrument

	r.Get("/metrics", metrics.Handler().ServeHTTP)

	r.Route("/api/v0", func(r chi.Router) {
		r.Use(
			Logger(logging.GetFromContext(ctx)),
			RequiredContentTypes([]string{"application/json"}),
		)

		r.Post("/reset", m(opReset.Name, NewResetHandler(app, authenticator)))

		r.Get("/identifiers", m(opCheckIdentifier.Name, NewCheckIdentifierHandler(app, authenticator)))
		r.Post("/identifiers", m(opBuildIdentifier.Name, NewBuildIdentifierHandler(app, authenticator)))

		r.Route("/assets", func(r chi.Router) {
			r.Get("/location", m(opResolveLocation.Name, NewResolveLocationHandler(app, authenticator)))
			r.Get("/path", m(opResolvePath.Name, NewResolvePathHandler(app, authenticator)))
			r.Get("/version", m(opResolveVersionTag.Name, NewResolveVersionTagHandler(app, authenticator)))
			r.Get("/versions", m(opListVersionTags.Name, NewListVersionTagsHandler(app, authenticator)))
			r.Get("/displayname", m(opDisplayName.Name, NewDisplayNameHandler(app, authenticator)))
			r.Get("/scenegraph-location", m(opScenegraphLocation.Name, NewScenegraphLocationHandler(app, authenticator)))
			r.Get("/fields", m(opGetFields.Name, NewGetFieldsHandler(app, authenticator)))
			r.Get("/attributes", m(opGetAttributes.Name, NewGetAttributesHandler(app, authenticator)))
			r.Put("/attributes", m(opSetAttributes.Name, NewSetAttributesHandler(app, authenticator)))
			r.Get("/scoped-identifier", m(opIdentifierForScope.Name, NewIdentifierForScopeHandler(app, authenticator)))
			r.Get("/related-identifier", m(opRelatedIdentifier.Name, NewRelatedIdentifierHandler(app, authenticator)))
			r.Post("/permissions", m(opCheckPermissions.Name, NewCheckPermissionsHandler(app, authenticator)))
			r.Post("/commands", m(opRunCommand.Name, NewRunCommandHandler(app, authenticator)))
		})

		r.Route("/publish", func(r chi.Router) {
			r.Post("/prepare", m(opPublishPrepare.Name, NewPublishPrepareHandler(app, authenticator, notifier)))
			r.Post("/commit", m(opPublishCommit.Name, NewPublishCommitHandler(app, authenticator, notifier, metrics)))
		})
	})

	return nil
}

func Logger(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			_, ctx, _ = o11y.AddTraceIDToLoggerAndStoreInContext(
				trace.SpanFromContext(ctx),
				logger,
				ctx)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func RequiredContentTypes(validTypes []string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			contentType := r.Header.Get("Content-Type")
			isValidContentType := true

			if len(contentType) > 0 {
				isValidContentType = false

				for _, t := range validTypes {
					if strings.HasPrefix(contentType, t) {
						isValidContentType = true
						break
					}
				}
			}

			if isValidContentType {
				next.ServeHTTP(w, r)
			} else {
				http.Error(w, "unsupported media type", http.StatusUnsupportedMediaType)
			}
		})
	}
}

func traceID(ctx context.Context) string {
	spanContext := trace.SpanFromContext(ctx).SpanContext()
	if spanContext.HasTraceID() {
		return spanContext.TraceID().String()
	}
	return ""
}

func reportError(ctx context.Context, w http.ResponseWriter, err error) {
	errors.NewProblemDetails(err, traceID(ctx)).WriteResponse(w)
}

// authorize reports a problem to the client and returns false if access
// to op is not granted
func authorize(w http.ResponseWriter, r *http.Request, authenticator auth.Enticator, op auth.Operation) bool {
	ctx := r.Context()
	logger := logging.GetFromContext(ctx)

	err := authenticator.CheckAccess(ctx, r, op)
	if err == nil {
		return true
	}

	var denied *auth.DeniedError
	if goerrors.As(err, &denied) {
		logger.Warn("access not granted", "operation", op.Name, "access", op.Access, "reason", denied.Reason)
		reportError(ctx, w, errors.NewForbiddenError(denied.Error()))
		return false
	}

	logger.Error("failed to evaluate access policy", "operation", op.Name, "err", err.Error())
	reportError(ctx, w, errors.NewInternalError(fmt.Sprintf("access to %s could not be decided", op.Name)))
	return false
}

func queryParam(r *http.Request, name string) (string, error) {
	value := r.URL.Query().Get(name)
	if value == "" {
		return "", errors.NewBadRequestDataError(fmt.Sprintf("query parameter %s is required", name))
	}
	return value, nil
}

func decodeBody(r *http.Request, v any) error {
	err := json.NewDecoder(r.Body).Decode(v)
	if err != nil {
		return errors.NewBadRequestDataError(fmt.Sprintf("unable to decode request payload: %s", err.Error()))
	}
	return nil
}

func writeJSON(ctx context.Context, w http.ResponseWriter, code int, body any) {
	responseBody, err := json.Marshal(body)
	if err != nil {
		logging.GetFromContext(ctx).Error("failed to marshal response body", "err", err.Error())
		reportError(ctx, w, err)
		return
	}

	w.Header().Add("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(responseBody)
}
