package logging_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/openshelf/bibresolve/pkg/logging"
)

func TestFromContext(t *testing.T) {
	t.Run("falls back to default logger", func(t *testing.T) {
		logger := logging.FromContext(context.Background())
		assert.NotNil(t, logger)
		assert.Same(t, logging.Default(), logger)
	})

	t.Run("returns logger stored in context", func(t *testing.T) {
		var buf bytes.Buffer
		logger := logging.New(&buf)

		ctx := logging.WithLogger(context.Background(), &logger)
		assert.Same(t, &logger, logging.FromContext(ctx))

		logging.FromContext(ctx).Info().Msg("stored logger in use")
		assert.Contains(t, buf.String(), "stored logger in use")
	})

	t.Run("nil logger falls back to default", func(t *testing.T) {
		ctx := logging.WithLogger(context.Background(), nil)
		assert.Same(t, logging.Default(), logging.FromContext(ctx))
	})

	t.Run("Ctx is an alias for FromContext", func(t *testing.T) {
		var buf bytes.Buffer
		logger := logging.New(&buf)

		ctx := logging.WithLogger(context.Background(), &logger)
		assert.Same(t, logging.FromContext(ctx), logging.Ctx(ctx))
	})
}

func TestContextFieldHelpers(t *testing.T) {
	t.Run("WithSource adds the source field", func(t *testing.T) {
		var buf bytes.Buffer
		logger := logging.New(&buf)

		ctx := logging.WithLogger(context.Background(), &logger)
		ctx = logging.WithSource(ctx, "openlibrary")

		logging.Ctx(ctx).Info().Msg("candidate parsed")
		assert.Contains(t, buf.String(), `"source":"openlibrary"`)
	})

	t.Run("WithISBN adds the isbn field", func(t *testing.T) {
		var buf bytes.Buffer
		logger := logging.New(&buf)

		ctx := logging.WithLogger(context.Background(), &logger)
		ctx = logging.WithISBN(ctx, "9780441013593")

		logging.Ctx(ctx).Info().Msg("resolving")
		assert.Contains(t, buf.String(), `"isbn":"9780441013593"`)
	})

	t.Run("helpers stack", func(t *testing.T) {
		var buf bytes.Buffer
		logger := logging.New(&buf)

		ctx := logging.WithLogger(context.Background(), &logger)
		ctx = logging.WithSource(ctx, "loc")
		ctx = logging.WithISBN(ctx, "9780441013593")

		logging.Ctx(ctx).Info().Msg("resolving")
		out := buf.String()
		assert.Contains(t, out, `"source":"loc"`)
		assert.Contains(t, out, `"isbn":"9780441013593"`)
	})
}
