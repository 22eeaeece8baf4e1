package export

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToXMLMissingExporter(t *testing.T) {
	dir := t.TempDir()
	err := ToXML("./no-such-exporter", dir, "in.cdb", "out.xml")
	assert.True(t, errors.Is(err, ErrExportFailed))
}

func TestToXMLNonZeroExit(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("shell stub")
	}
	dir := t.TempDir()
	stub := filepath.Join(dir, "exporter.sh")
	require.Nil(t, os.WriteFile(stub, []byte("#!/bin/sh\nexit 3\n"), 0755))

	err := ToXML("./exporter.sh", dir, "in.cdb", "out.xml")
	assert.True(t, errors.Is(err, ErrExportFailed))
}

func TestToXMLSuccess(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("shell stub")
	}
	dir := t.TempDir()
	stub := filepath.Join(dir, "exporter.sh")
	require.Nil(t, os.WriteFile(stub, []byte("#!/bin/sh\ntouch \"$4\"\n"), 0755))

	require.Nil(t, ToXML("./exporter.sh", dir, "in.cdb", "out.xml"))
	_, err := os.Stat(filepath.Join(dir, "out.xml"))
	assert.Nil(t, err)
}
