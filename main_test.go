package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/UnaiZubeldia/PCM-CDB-CSV/config"
	"github.com/UnaiZubeldia/PCM-CDB-CSV/export"
	"github.com/UnaiZubeldia/PCM-CDB-CSV/file"
	"github.com/UnaiZubeldia/PCM-CDB-CSV/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T) *config.Config {
	cfg, err := config.Load()
	require.Nil(t, err)
	return cfg
}

func TestConvertXML(t *testing.T) {
	dir := t.TempDir()
	xml := `<Export>
		<Table TableName="DYN_cyclist" NumRows="1">
			<Column ColumnName="id"><Cell>1</Cell></Column>
			<Column ColumnName="fkIDteam"><Cell>10</Cell></Column>
		</Table>
		<Table TableName="DYN_team" NumRows="1">
			<Column ColumnName="IDteam"><Cell>10</Cell></Column>
			<Column ColumnName="gene_sz_name"><Cell>TeamA</Cell></Column>
		</Table>
	</Export>`
	require.Nil(t, os.WriteFile(filepath.Join(dir, "db.xml"), []byte(xml), 0766))

	rows, err := convertXML(testConfig(t), nil, dir, "db.xml", "db.csv")
	require.Nil(t, err)
	assert.Equal(t, 1, rows)

	// intermediate gone, output present
	assert.False(t, file.Exists(filepath.Join(dir, "db.xml")))
	data, err := os.ReadFile(filepath.Join(dir, "db.csv"))
	require.Nil(t, err)
	assert.Equal(t, "id,fkIDteam,IDteam,gene_sz_name\n1,10,10,TeamA\n", string(data))
}

func TestConvertXMLMissingTeamTable(t *testing.T) {
	dir := t.TempDir()
	xml := `<Export>
		<Table TableName="DYN_cyclist" NumRows="1">
			<Column ColumnName="id"><Cell>1</Cell></Column>
		</Table>
	</Export>`
	require.Nil(t, os.WriteFile(filepath.Join(dir, "db.xml"), []byte(xml), 0766))

	_, err := convertXML(testConfig(t), nil, dir, "db.xml", "db.csv")
	assert.True(t, errors.Is(err, parser.ErrTableNotFound))

	// no output produced, intermediate still removed
	assert.False(t, file.Exists(filepath.Join(dir, "db.csv")))
	assert.False(t, file.Exists(filepath.Join(dir, "db.xml")))
}

func TestConvertExportFailed(t *testing.T) {
	dir := t.TempDir()
	require.Nil(t, os.WriteFile(filepath.Join(dir, "db.cdb"), []byte("opaque"), 0766))

	cfg := testConfig(t)
	cfg.Exporter = "./no-such-exporter"
	_, err := convert(cfg, nil, dir, "db.cdb")
	assert.True(t, errors.Is(err, export.ErrExportFailed))
	assert.False(t, file.Exists(filepath.Join(dir, "db.xml")))
	assert.False(t, file.Exists(filepath.Join(dir, "db.csv")))
}
