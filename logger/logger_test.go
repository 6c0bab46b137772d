package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLevels(t *testing.T) {
	cases := []struct {
		level string
		want  logrus.Level
	}{
		{"debug", logrus.DebugLevel},
		{"WARN", logrus.WarnLevel},
		{"", logrus.InfoLevel},
		{"nonsense", logrus.InfoLevel},
	}
	for _, c := range cases {
		t.Run(c.level, func(t *testing.T) {
			l := New(Config{Level: c.level}, &bytes.Buffer{})
			assert.Equal(t, c.want, l.GetLevel())
		})
	}
}

func TestNewJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Format: "json"}, &buf)
	l.WithField("entity", "player").Info("landed")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "landed", line["msg"])
	assert.Equal(t, "player", line["entity"])
}

func TestInitEnvOverride(t *testing.T) {
	prev := L()
	defer Set(prev)

	t.Setenv("LOG_LEVEL", "error")
	l := Init(Config{Level: "debug"})
	assert.Equal(t, logrus.ErrorLevel, l.GetLevel())
	assert.Same(t, l, L())
}
