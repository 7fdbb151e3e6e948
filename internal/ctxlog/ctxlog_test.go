package ctxlog

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromContext(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	ctx := WithLogger(context.Background(), logger)
	assert.Same(t, logger, FromContext(ctx))

	FromContext(ctx).Info("hello")
	assert.Contains(t, buf.String(), "msg=hello")
}

func TestFromContext_FallsBackToDefault(t *testing.T) {
	assert.Same(t, slog.Default(), FromContext(context.Background()))
}

func TestWith(t *testing.T) {
	var buf bytes.Buffer
	ctx := WithLogger(context.Background(), slog.New(slog.NewTextHandler(&buf, nil)))

	ctx, logger := With(ctx, "run_id", "r1")
	assert.Same(t, logger, FromContext(ctx))

	FromContext(ctx).Info("pass done")
	assert.Contains(t, buf.String(), "run_id=r1")
}
