package main

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"simsea/internal/export"
)

func TestExportFilename(t *testing.T) {
	now := time.Date(2024, 3, 9, 14, 5, 6, 0, time.UTC)

	res, err := export.NewExporter(false, nil).Export(nil, export.FormatXLSX)
	require.NoError(t, err)
	assert.Equal(t, "simsea_projects_20240309_140506.csv", exportFilename(res, now))

	res, err = export.NewExporter(true, nil).Export(nil, export.FormatCSV)
	require.NoError(t, err)
	assert.Equal(t, "simsea_projects_20240309_140506.csv", exportFilename(res, now))
}

func TestRootCommandListsSubcommands(t *testing.T) {
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"--help"})
	require.NoError(t, root.Execute())

	for _, name := range []string{"migrate", "create-admin", "export"} {
		assert.Contains(t, out.String(), name)
	}
}
