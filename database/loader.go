package database

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/UnaiZubeldia/PCM-CDB-CSV/consts"
	"github.com/UnaiZubeldia/PCM-CDB-CSV/log"
	"github.com/UnaiZubeldia/PCM-CDB-CSV/model"
	"github.com/pkg/errors"
)

var escaper = strings.NewReplacer(`\`, `\\`, `'`, `''`)

// Load creates dbName.tableName from the table's header and inserts every
// row in batches. All cells are text in the export, so every column is a
// nullable VARCHAR. The target table is dropped first: a load replaces
// the previous conversion of the same file.
func Load(db *DB, dbName, tableName string, t *model.Table) error {
	if len(t.Cols) == 0 {
		return nil
	}
	if err := initTable(db, dbName, tableName, t.Cols); err != nil {
		return err
	}
	buf := bytes.Buffer{}
	inserted := 0
	for inserted < len(t.Rows) {
		buf.Reset()
		buf.WriteString(fmt.Sprintf("INSERT INTO `%s`.`%s` VALUES ", dbName, tableName))
		end := inserted + consts.InsertBatch
		if end > len(t.Rows) {
			end = len(t.Rows)
		}
		for _, row := range t.Rows[inserted:end] {
			buf.WriteString("(")
			for i := range t.Cols {
				if i > 0 {
					buf.WriteString(",")
				}
				v := model.Null()
				if i < len(row) {
					v = row[i]
				}
				if v.IsNull() {
					buf.WriteString("NULL")
				} else {
					buf.WriteString("'" + escaper.Replace(v.S) + "'")
				}
			}
			buf.WriteString("),")
		}
		buf.Truncate(buf.Len() - 1)
		buf.WriteString(";")
		if _, err := db.Exec(buf.String()); err != nil {
			return errors.Wrapf(err, "insert into %s.%s", dbName, tableName)
		}
		inserted = end
	}
	log.Infof("%s.%s loaded %d rows\n", dbName, tableName, inserted)
	return nil
}

func initTable(db *DB, dbName, tableName string, cols []string) error {
	_, err := db.Exec(fmt.Sprintf("CREATE DATABASE IF NOT EXISTS `%s` CHARACTER SET 'utf8mb4' COLLATE 'utf8mb4_bin';", dbName))
	if err != nil {
		return errors.Wrapf(err, "create database %s", dbName)
	}
	if _, err = db.Exec(fmt.Sprintf("DROP TABLE IF EXISTS `%s`.`%s`;", dbName, tableName)); err != nil {
		return errors.Wrapf(err, "drop table %s.%s", dbName, tableName)
	}
	buf := bytes.Buffer{}
	buf.WriteString(fmt.Sprintf("CREATE TABLE `%s`.`%s` (", dbName, tableName))
	for i, col := range cols {
		if i > 0 {
			buf.WriteString(",")
		}
		buf.WriteString(fmt.Sprintf("`%s` VARCHAR(255) NULL", col))
	}
	buf.WriteString(");")
	if _, err = db.Exec(buf.String()); err != nil {
		return errors.Wrapf(err, "create table %s.%s", dbName, tableName)
	}
	return nil
}
