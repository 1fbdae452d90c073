package logger

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ctxLogger() (context.Context, *bytes.Buffer) {
	var buf bytes.Buffer
	l := zerolog.New(&buf)
	return l.WithContext(context.Background()), &buf
}

func TestErrorLogFormatsArguments(t *testing.T) {
	ctx, buf := ctxLogger()

	ErrorLog(ctx, "persist failed: %v", errors.New("disk full"))

	assert.Contains(t, buf.String(), "persist failed: disk full")
	assert.Contains(t, buf.String(), `"level":"error"`)
}

func TestInfoLogWithoutArguments(t *testing.T) {
	ctx, buf := ctxLogger()

	InfoLog(ctx, "storage ready")

	require.Contains(t, buf.String(), "storage ready")
	assert.Contains(t, buf.String(), `"level":"info"`)
}

func TestWithFieldsEnrichesContext(t *testing.T) {
	var buf bytes.Buffer
	globalLogger = zerolog.New(&buf)

	ctx := WithFields(context.Background(), map[string]interface{}{"driver": "json"})
	WarnLog(ctx, "state reset")

	assert.Contains(t, buf.String(), `"driver":"json"`)
	assert.Contains(t, buf.String(), "state reset")
}
