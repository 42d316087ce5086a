package hostapi

import (
	"net/http"

	"github.com/diwise/asset-adapter/internal/pkg/application/adapter"
	"github.com/diwise/asset-adapter/internal/pkg/application/notifications"
	"github.com/diwise/asset-adapter/internal/pkg/presentation/api/hostapi/auth"
	"github.com/diwise/asset-adapter/pkg/oaio/errors"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
)

type publishRequest struct {
	Transaction string            `json:"transaction,omitempty"`
	AssetType   string            `json:"assetType"`
	Fields      adapter.FieldMap  `json:"fields"`
	Args        map[string]string `json:"args"`
}

func (p publishRequest) transaction() *adapter.Transaction {
	if p.Transaction == "" {
		return nil
	}
	return &adapter.Transaction{ID: p.Transaction}
}

type publishResponse struct {
	ID        string `json:"id"`
	VersionUp bool   `json:"versionUp"`
	Publish   bool   `json:"publish"`
}

func decodePublishRequest(r *http.Request) (publishRequest, error) {
	req := publishRequest{}

	err := decodeBody(r, &req)
	if err != nil {
		return req, err
	}

	if req.AssetType == "" {
		return req, errors.NewBadRequestDataError("assetType is required")
	}

	if req.Fields == nil {
		req.Fields = adapter.FieldMap{}
	}

	return req, nil
}

// NewPublishPrepareHandler returns the working reference the host should
// write the asset to before committing it
func NewPublishPrepareHandler(app adapter.IdentityAdapter, authenticator auth.Enticator, notifier notifications.Notifier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		log := logging.GetFromContext(ctx)

		if !authorize(w, r, authenticator, opPublishPrepare) {
			return
		}

		req, err := decodePublishRequest(r)
		if err != nil {
			reportError(ctx, w, err)
			return
		}

		working, err := app.PublishPrepare(ctx, req.transaction(), req.AssetType, req.Fields, req.Args)
		if err != nil {
			log.Error("publish prepare failed", "type", req.AssetType, "err", err.Error())
			reportError(ctx, w, err)
			return
		}

		if notifier != nil {
			notifier.AssetPrepared(ctx, notifications.PublishEvent{
				AssetType: req.AssetType,
				SourceID:  req.Fields[adapter.FieldAssetID],
				AssetID:   working,
				VersionUp: adapter.ShouldVersionUp(req.Args),
			})
		}

		writeJSON(ctx, w, http.StatusOK, publishResponse{
			ID:        working,
			VersionUp: adapter.ShouldVersionUp(req.Args),
			Publish:   adapter.ShouldPublish(req.Args),
		})
	}
}

func NewPublishCommitHandler(app adapter.IdentityAdapter, authenticator auth.Enticator, notifier notifications.Notifier, metrics *Metrics) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		log := logging.GetFromContext(ctx)

		if !authorize(w, r, authenticator, opPublishCommit) {
			return
		}

		req, err := decodePublishRequest(r)
		if err != nil {
			reportError(ctx, w, err)
			return
		}

		final, err := app.PublishCommit(ctx, req.transaction(), req.AssetType, req.Fields, req.Args)
		if err != nil {
			log.Error("publish commit failed", "type", req.AssetType, "err", err.Error())
			reportError(ctx, w, err)
			return
		}

		log.Info("asset published", "type", req.AssetType, "asset", final)

		metrics.AssetPublished(req.AssetType)

		if notifier != nil {
			notifier.AssetPublished(ctx, notifications.PublishEvent{
				AssetType: req.AssetType,
				SourceID:  req.Fields[adapter.FieldAssetID],
				AssetID:   final,
				VersionUp: adapter.ShouldVersionUp(req.Args),
			})
		}

		w.Header().Add("Location", final)
		writeJSON(ctx, w, http.StatusCreated, publishResponse{
			ID:        final,
			VersionUp: adapter.ShouldVersionUp(req.Args),
			Publish:   adapter.ShouldPublish(req.Args),
		})
	}
}
