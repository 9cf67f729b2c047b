package main

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/variantkit/variantkit/internal/catalog"
	"github.com/variantkit/variantkit/internal/logger"
)

func testApp(t *testing.T) *appContext {
	t.Helper()

	log, err := logger.New(logger.Options{Level: "error", Writer: io.Discard})
	require.NoError(t, err)

	return &appContext{
		catalog: catalog.Builtin(),
		log:     log,
	}
}

func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	root := newRootCmd(testApp(t))
	buf := &bytes.Buffer{}
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)

	err := root.Execute()
	return buf.String(), err
}
