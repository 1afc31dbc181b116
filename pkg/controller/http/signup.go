package http

import (
	"context"
	"io"
	"net/http"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/riskquant/pkg/domain/model"
	"github.com/secmon-lab/riskquant/pkg/utils/async"
	"github.com/secmon-lab/riskquant/pkg/utils/errutil"
	"github.com/secmon-lab/riskquant/pkg/utils/logging"
	"github.com/secmon-lab/riskquant/pkg/utils/safe"
)

const maxSignupBodySize = 1 << 20

// SignupUseCase is the interface for the signup webhook use case
type SignupUseCase interface {
	Grant(ctx context.Context, body []byte) (*model.SignupGrant, *model.SignupEvent, error)
	Audit(ctx context.Context, event *model.SignupEvent) error
}

// signupHandler always answers 200. A payload that cannot be parsed gets an empty JSON
// object instead of a role grant.
func signupHandler(uc SignupUseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		w.Header().Set("Content-Type", "application/json")

		body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxSignupBodySize))
		if err != nil {
			errutil.Handle(ctx, goerr.Wrap(err, "failed to read signup body"), "signup webhook failed")
			w.WriteHeader(http.StatusOK)
			safe.Write(ctx, w, []byte("{}"))
			return
		}
		defer safe.Close(ctx, r.Body)

		grant, event, err := uc.Grant(ctx, body)
		if err != nil {
			logging.From(ctx).Warn("invalid signup payload", "error", err)
			w.WriteHeader(http.StatusOK)
			safe.Write(ctx, w, []byte("{}"))
			return
		}

		w.WriteHeader(http.StatusOK)
		safe.EncodeJSON(ctx, w, grant)

		async.Dispatch(ctx, func(ctx context.Context) error {
			return uc.Audit(ctx, event)
		})
	}
}
