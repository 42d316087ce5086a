package hostapi

import (
	"net/http"
	"strconv"

	"github.com/diwise/asset-adapter/internal/pkg/application/adapter"
	"github.com/diwise/asset-adapter/internal/pkg/presentation/api/hostapi/auth"
	"github.com/diwise/asset-adapter/pkg/oaio/errors"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
)

// NewResetHandler selects a new manager and resolution context
func NewResetHandler(app adapter.IdentityAdapter, authenticator auth.Enticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		if !authorize(w, r, authenticator, opReset) {
			return
		}

		err := app.Reset(ctx)
		if err != nil {
			logging.GetFromContext(ctx).Error("reset failed", "err", err.Error())
			reportError(ctx, w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func NewCheckIdentifierHandler(app adapter.IdentityAdapter, authenticator auth.Enticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		if !authorize(w, r, authenticator, opCheckIdentifier) {
			return
		}

		s, err := queryParam(r, "s")
		if err != nil {
			reportError(ctx, w, err)
			return
		}

		contains, err := app.ContainsIdentifier(ctx, s)
		if err != nil {
			reportError(ctx, w, err)
			return
		}

		writeJSON(ctx, w, http.StatusOK, struct {
			IsIdentifier       bool `json:"isIdentifier"`
			ContainsIdentifier bool `json:"containsIdentifier"`
		}{
			IsIdentifier:       app.IsIdentifier(ctx, s),
			ContainsIdentifier: contains,
		})
	}
}

func NewBuildIdentifierHandler(app adapter.IdentityAdapter, authenticator auth.Enticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		if !authorize(w, r, authenticator, opBuildIdentifier) {
			return
		}

		fields := adapter.FieldMap{}
		err := decodeBody(r, &fields)
		if err != nil {
			reportError(ctx, w, err)
			return
		}

		id, err := app.BuildIdentifier(ctx, fields)
		if err != nil {
			reportError(ctx, w, err)
			return
		}

		writeJSON(ctx, w, http.StatusOK, identifierResponse{ID: id})
	}
}

type identifierResponse struct {
	ID string `json:"id"`
}

type pathResponse struct {
	Path string `json:"path"`
}

// NewResolveLocationHandler resolves an asset id to a file system path. The
// query parameter all=true asks for every location of the asset.
func NewResolveLocationHandler(app adapter.IdentityAdapter, authenticator auth.Enticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		if !authorize(w, r, authenticator, opResolveLocation) {
			return
		}

		id, err := queryParam(r, "id")
		if err != nil {
			reportError(ctx, w, err)
			return
		}

		var path string

		if r.URL.Query().Get("all") == "true" {
			path, err = app.ResolveAllLocations(ctx, id)
		} else {
			path, err = app.ResolveLocation(ctx, id)
		}

		if err != nil {
			logging.GetFromContext(ctx).Debug("failed to resolve location", "asset", id, "err", err.Error())
			reportError(ctx, w, err)
			return
		}

		writeJSON(ctx, w, http.StatusOK, pathResponse{Path: path})
	}
}

func NewResolvePathHandler(app adapter.IdentityAdapter, authenticator auth.Enticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		if !authorize(w, r, authenticator, opResolvePath) {
			return
		}

		id, err := queryParam(r, "id")
		if err != nil {
			reportError(ctx, w, err)
			return
		}

		frame := 0
		if f := r.URL.Query().Get("frame"); f != "" {
			frame, err = strconv.Atoi(f)
			if err != nil {
				reportError(ctx, w, errors.NewBadRequestDataError("frame must be an integer"))
				return
			}
		}

		path, err := app.ResolvePath(ctx, id, frame)
		if err != nil {
			reportError(ctx, w, err)
			return
		}

		writeJSON(ctx, w, http.StatusOK, pathResponse{Path: path})
	}
}

func NewResolveVersionTagHandler(app adapter.IdentityAdapter, authenticator auth.Enticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		if !authorize(w, r, authenticator, opResolveVersionTag) {
			return
		}

		id, err := queryParam(r, "id")
		if err != nil {
			reportError(ctx, w, err)
			return
		}

		version, err := app.ResolveVersionTag(ctx, id, r.URL.Query().Get("tag"))
		if err != nil {
			reportError(ctx, w, err)
			return
		}

		writeJSON(ctx, w, http.StatusOK, struct {
			Version string `json:"version"`
		}{version})
	}
}

func NewListVersionTagsHandler(app adapter.IdentityAdapter, authenticator auth.Enticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		if !authorize(w, r, authenticator, opListVersionTags) {
			return
		}

		id, err := queryParam(r, "id")
		if err != nil {
			reportError(ctx, w, err)
			return
		}

		tags, err := app.ListVersionTags(ctx, id)
		if err != nil {
			reportError(ctx, w, err)
			return
		}

		writeJSON(ctx, w, http.StatusOK, struct {
			Versions []string `json:"versions"`
		}{tags})
	}
}

func NewDisplayNameHandler(app adapter.IdentityAdapter, authenticator auth.Enticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		if !authorize(w, r, authenticator, opDisplayName) {
			return
		}

		id, err := queryParam(r, "id")
		if err != nil {
			reportError(ctx, w, err)
			return
		}

		name, err := app.DisplayName(ctx, id)
		if err != nil {
			reportError(ctx, w, err)
			return
		}

		writeJSON(ctx, w, http.StatusOK, struct {
			DisplayName string `json:"displayName"`
		}{name})
	}
}

func NewScenegraphLocationHandler(app adapter.IdentityAdapter, authenticator auth.Enticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		if !authorize(w, r, authenticator, opScenegraphLocation) {
			return
		}

		id, err := queryParam(r, "id")
		if err != nil {
			reportError(ctx, w, err)
			return
		}

		includeVersion := r.URL.Query().Get("includeVersion") == "true"

		location, err := app.ScenegraphLocation(ctx, id, includeVersion)
		if err != nil {
			reportError(ctx, w, err)
			return
		}

		writeJSON(ctx, w, http.StatusOK, struct {
			Location string `json:"location"`
		}{location})
	}
}

func NewGetFieldsHandler(app adapter.IdentityAdapter, authenticator auth.Enticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		if !authorize(w, r, authenticator, opGetFields) {
			return
		}

		id, err := queryParam(r, "id")
		if err != nil {
			reportError(ctx, w, err)
			return
		}

		fields, err := app.GetFields(ctx, id, r.URL.Query().Get("includeDefaults") == "true")
		if err != nil {
			reportError(ctx, w, err)
			return
		}

		writeJSON(ctx, w, http.StatusOK, fields)
	}
}

func NewGetAttributesHandler(app adapter.IdentityAdapter, authenticator auth.Enticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		if !authorize(w, r, authenticator, opGetAttributes) {
			return
		}

		id, err := queryParam(r, "id")
		if err != nil {
			reportError(ctx, w, err)
			return
		}

		attrs, err := app.GetAttributes(ctx, id, r.URL.Query().Get("scope"))
		if err != nil {
			reportError(ctx, w, err)
			return
		}

		writeJSON(ctx, w, http.StatusOK, attrs)
	}
}

func NewSetAttributesHandler(app adapter.IdentityAdapter, authenticator auth.Enticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		if !authorize(w, r, authenticator, opSetAttributes) {
			return
		}

		id, err := queryParam(r, "id")
		if err != nil {
			reportError(ctx, w, err)
			return
		}

		attrs := adapter.FieldMap{}
		err = decodeBody(r, &attrs)
		if err != nil {
			reportError(ctx, w, err)
			return
		}

		err = app.SetAttributes(ctx, id, r.URL.Query().Get("scope"), attrs)
		if err != nil {
			reportError(ctx, w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func NewIdentifierForScopeHandler(app adapter.IdentityAdapter, authenticator auth.Enticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		if !authorize(w, r, authenticator, opIdentifierForScope) {
			return
		}

		id, err := queryParam(r, "id")
		if err != nil {
			reportError(ctx, w, err)
			return
		}

		scoped, err := app.IdentifierForScope(ctx, id, r.URL.Query().Get("scope"))
		if err != nil {
			reportError(ctx, w, err)
			return
		}

		writeJSON(ctx, w, http.StatusOK, identifierResponse{ID: scoped})
	}
}

func NewRelatedIdentifierHandler(app adapter.IdentityAdapter, authenticator auth.Enticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		if !authorize(w, r, authenticator, opRelatedIdentifier) {
			return
		}

		id, err := queryParam(r, "id")
		if err != nil {
			reportError(ctx, w, err)
			return
		}

		related, err := app.RelatedIdentifier(ctx, id, r.URL.Query().Get("relation"))
		if err != nil {
			reportError(ctx, w, err)
			return
		}

		writeJSON(ctx, w, http.StatusOK, identifierResponse{ID: related})
	}
}

type permissionsRequest struct {
	ID      string            `json:"id"`
	Context map[string]string `json:"context"`
}

func NewCheckPermissionsHandler(app adapter.IdentityAdapter, authenticator auth.Enticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		if !authorize(w, r, authenticator, opCheckPermissions) {
			return
		}

		req := permissionsRequest{}
		err := decodeBody(r, &req)
		if err != nil {
			reportError(ctx, w, err)
			return
		}

		writeJSON(ctx, w, http.StatusOK, struct {
			Allowed bool `json:"allowed"`
		}{app.CheckPermissions(ctx, req.ID, req.Context)})
	}
}

type commandRequest struct {
	ID      string            `json:"id"`
	Command string            `json:"command"`
	Args    map[string]string `json:"args"`
}

func NewRunCommandHandler(app adapter.IdentityAdapter, authenticator auth.Enticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		if !authorize(w, r, authenticator, opRunCommand) {
			return
		}

		req := commandRequest{}
		err := decodeBody(r, &req)
		if err != nil {
			reportError(ctx, w, err)
			return
		}

		if req.Command == "" {
			reportError(ctx, w, errors.NewBadRequestDataError("command must not be empty"))
			return
		}

		writeJSON(ctx, w, http.StatusOK, struct {
			Succeeded bool `json:"succeeded"`
		}{app.RunAssetPluginCommand(ctx, req.ID, req.Command, req.Args)})
	}
}
