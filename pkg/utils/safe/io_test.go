package safe_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/riskquant/pkg/utils/logging"
	"github.com/secmon-lab/riskquant/pkg/utils/safe"
)

type failingCloser struct{}

func (failingCloser) Close() error { return errors.New("close failed") }

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("write failed") }

func TestSafe(t *testing.T) {
	var logBuf bytes.Buffer
	ctx := logging.With(context.Background(), slog.New(slog.NewJSONHandler(&logBuf, nil)))

	safe.Close(ctx, nil)
	safe.Close(ctx, failingCloser{})
	gt.String(t, logBuf.String()).Contains("close failed")

	safe.Write(ctx, failingWriter{}, []byte("x"))
	gt.String(t, logBuf.String()).Contains("write failed")

	var out bytes.Buffer
	safe.EncodeJSON(ctx, &out, map[string]int{"total": 1})
	gt.Value(t, out.String()).Equal("{\"total\":1}\n")
}
