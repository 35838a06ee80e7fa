// Copyright 2025 froog Authors. SPDX-License-Identifier: Apache-2.0

package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitLevelAndOutput(t *testing.T) {
	require.NoError(t, Init("debug", "", false))
	assert.Equal(t, logrus.DebugLevel, Get().GetLevel())

	var buf bytes.Buffer
	SetOutput(&buf)
	WithField("workers", 4).Debug("pool ready")
	assert.Contains(t, buf.String(), "pool ready")
	assert.Contains(t, buf.String(), "workers=4")
}

func TestInitUnknownLevelFallsBackToInfo(t *testing.T) {
	require.NoError(t, Init("chatty", "", false))
	assert.Equal(t, logrus.InfoLevel, Get().GetLevel())
}

func TestInitWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "matbench.log")
	require.NoError(t, Init("info", path, false))

	Infof("sweep %s", "done")
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "sweep done")
}

func TestLevelsFilter(t *testing.T) {
	require.NoError(t, Init("warn", "", false))
	var buf bytes.Buffer
	SetOutput(&buf)

	Debugf("hidden")
	Infof("hidden")
	Warnf("shown %d", 1)
	Errorf("shown %d", 2)
	WithFields(logrus.Fields{"op": "matvec"}).Warn("tagged")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown 1")
	assert.Contains(t, out, "shown 2")
	assert.Contains(t, out, "op=matvec")
}

func TestInitClosesPreviousFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, Init("info", filepath.Join(dir, "first.log"), false))
	first := file
	require.NotNil(t, first)

	require.NoError(t, Init("info", filepath.Join(dir, "second.log"), false))
	_, err := first.Write([]byte("late\n"))
	assert.ErrorIs(t, err, os.ErrClosed)

	Infof("after reinit")
	data, err := os.ReadFile(filepath.Join(dir, "second.log"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "after reinit")

	// Dropping the file closes it too.
	second := file
	require.NoError(t, Init("info", "", false))
	_, err = second.Write([]byte("late\n"))
	assert.ErrorIs(t, err, os.ErrClosed)
	assert.Nil(t, file)
}

func TestClose(t *testing.T) {
	path := filepath.Join(t.TempDir(), "matbench.log")
	require.NoError(t, Init("info", path, false))
	f := file

	require.NoError(t, Close())
	assert.Nil(t, file)
	_, err := f.Write([]byte("late\n"))
	assert.ErrorIs(t, err, os.ErrClosed)

	assert.NotPanics(t, func() { Infof("discarded") })
	require.NoError(t, Close(), "second Close is a no-op")
}
