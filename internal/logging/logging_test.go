// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/spread-splitter/pkg/types"
)

func TestConfigure_Text(t *testing.T) {
	var buf bytes.Buffer
	logger := logrus.New()
	require.NoError(t, Configure(logger, types.LogConfig{}, &buf))

	logger.Info("Processing page 1")
	logger.Debug("hidden at info level")

	out := buf.String()
	assert.Contains(t, out, "level=info")
	assert.Contains(t, out, `msg="Processing page 1"`)
	assert.Contains(t, out, "time=")
	assert.NotContains(t, out, "hidden")
}

func TestConfigure_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger := logrus.New()
	require.NoError(t, Configure(logger, types.LogConfig{Level: "debug", Format: types.LogJSON}, &buf))

	logger.WithField("page", 3).Debug("Split page 3 into two halves")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "debug", rec["level"])
	assert.Equal(t, "Split page 3 into two halves", rec["msg"])
	assert.Equal(t, float64(3), rec["page"])
}

func TestConfigure_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		cfg    types.LogConfig
		errMsg string
	}{
		{name: "bad level", cfg: types.LogConfig{Level: "loud"}, errMsg: "parsing log level"},
		{name: "bad format", cfg: types.LogConfig{Format: "xml"}, errMsg: "unsupported log format"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Configure(logrus.New(), tt.cfg, &bytes.Buffer{})
			assert.ErrorContains(t, err, tt.errMsg)
		})
	}
}
