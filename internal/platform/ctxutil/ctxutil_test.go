// Copyright (c) 2026 Canon. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package ctxutil_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/canon/internal/platform/ctxutil"
)

func TestRequestID(t *testing.T) {
	ctx := context.Background()
	assert.Empty(t, ctxutil.GetRequestID(ctx))

	ctx = ctxutil.WithRequestID(ctx, "0192f1c4-7d1e-7a4b-9a51-3f0c2b7e8d10")
	assert.Equal(t, "0192f1c4-7d1e-7a4b-9a51-3f0c2b7e8d10", ctxutil.GetRequestID(ctx))
}

func TestLogger(t *testing.T) {
	ctx := context.Background()
	assert.Same(t, slog.Default(), ctxutil.GetLogger(ctx))

	logger := slog.New(slog.NewJSONHandler(io.Discard, nil)).With(slog.String("request_id", "r1"))
	ctx = ctxutil.WithLogger(ctx, logger)
	assert.Same(t, logger, ctxutil.GetLogger(ctx))

	// A nil logger stored by mistake still yields a usable one.
	assert.Same(t, slog.Default(), ctxutil.GetLogger(ctxutil.WithLogger(ctx, nil)))
}

func TestKeysDoNotLeakAcrossValues(t *testing.T) {
	ctx := ctxutil.WithRequestID(context.Background(), "r1")
	assert.Same(t, slog.Default(), ctxutil.GetLogger(ctx))
	assert.Empty(t, ctxutil.GetRequestID(ctxutil.WithLogger(context.Background(), slog.Default())))
}
