package errutil_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/riskquant/pkg/utils/errutil"
	"github.com/secmon-lab/riskquant/pkg/utils/logging"
)

func ctxWithBuffer() (context.Context, *bytes.Buffer) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	return logging.With(context.Background(), logger), &buf
}

func TestHandle(t *testing.T) {
	t.Run("logs goerr values", func(t *testing.T) {
		ctx, buf := ctxWithBuffer()
		errutil.Handle(ctx, goerr.New("boom", goerr.V("stage", "factors")), "assessment failed")

		gt.String(t, buf.String()).Contains("assessment failed")
		gt.String(t, buf.String()).Contains("factors")
	})

	t.Run("logs plain errors", func(t *testing.T) {
		ctx, buf := ctxWithBuffer()
		errutil.Handle(ctx, errors.New("plain"), "failed")
		gt.String(t, buf.String()).Contains("plain")
	})

	t.Run("nil error is ignored", func(t *testing.T) {
		ctx, buf := ctxWithBuffer()
		errutil.Handle(ctx, nil, "nothing")
		gt.Value(t, buf.Len()).Equal(0)
	})
}

func TestHandleHTTP(t *testing.T) {
	ctx, buf := ctxWithBuffer()
	rec := httptest.NewRecorder()

	errutil.HandleHTTP(ctx, rec, goerr.New("bad input"), http.StatusBadRequest)

	gt.Value(t, rec.Code).Equal(http.StatusBadRequest)
	gt.String(t, rec.Body.String()).Contains("Bad Request")
	gt.String(t, buf.String()).Contains("bad input")
}
