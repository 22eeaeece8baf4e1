package main

import (
	"flag"
	"os"
	"time"

	"github.com/UnaiZubeldia/PCM-CDB-CSV/config"
	"github.com/UnaiZubeldia/PCM-CDB-CSV/csvout"
	"github.com/UnaiZubeldia/PCM-CDB-CSV/database"
	"github.com/UnaiZubeldia/PCM-CDB-CSV/export"
	"github.com/UnaiZubeldia/PCM-CDB-CSV/file"
	"github.com/UnaiZubeldia/PCM-CDB-CSV/log"
	"github.com/UnaiZubeldia/PCM-CDB-CSV/merge"
	"github.com/UnaiZubeldia/PCM-CDB-CSV/parser"
	"github.com/UnaiZubeldia/PCM-CDB-CSV/util"
)

var dataPath *string
var dstIP *string
var dstPort *int
var dstUser *string
var dstPassword *string

//  usage example:
//      ./run --data_path /tmp/cdb
//
//  add --dst_ip to also load the merged rows into MySQL:
//      ./run --data_path /tmp/cdb --dst_ip 127.0.0.1 --dst_port 3306 --dst_user root --dst_password 123456789
func init() {
	dataPath = flag.String("data_path", ".", "dir path of source .cdb files")
	dstIP = flag.String("dst_ip", "", "ip of dst database address, empty skips the MySQL load")
	dstPort = flag.Int("dst_port", 3306, "port of dst database address")
	dstUser = flag.String("dst_user", "root", "user name of dst database")
	dstPassword = flag.String("dst_password", "", "password of dst database")
}

func main() {
	flag.Parse()
	start := time.Now().UnixNano()
	_main()
	log.Infof("time-consuming %dms\n", (time.Now().UnixNano()-start)/1e6)
}

func _main() {
	cfg, err := config.Load()
	if err != nil {
		log.Panic(err)
	}
	names, err := file.List(*dataPath, cfg.InputExt)
	if err != nil {
		log.Panic(err)
	}
	if len(names) == 0 {
		log.Infof("no %s files found in %s\n", cfg.InputExt, *dataPath)
		return
	}
	log.Infof("found %d %s file(s) to process\n", len(names), cfg.InputExt)
	var db *database.DB
	if *dstIP != "" {
		db, err = database.New(*dstIP, *dstPort, *dstUser, *dstPassword)
		if err != nil {
			log.Panic(err)
		}
		defer db.Close()
	}
	for _, name := range names {
		rows, err := convert(cfg, db, *dataPath, name)
		if err != nil {
			log.Errorf("%s failed: %v\n", name, err)
			continue
		}
		log.Infof("%s converted, %d cyclists\n", name, rows)
	}
	log.Infof("processing complete\n")
}

// convert runs one file end to end. Every failure stays inside this
// boundary and the batch moves to the next file.
func convert(cfg *config.Config, db *database.DB, dir, name string) (int, error) {
	xmlName := util.ReplaceExt(name, cfg.XMLExt)
	if err := export.ToXML(cfg.Exporter, dir, name, xmlName); err != nil {
		return 0, err
	}
	return convertXML(cfg, db, dir, xmlName, util.ReplaceExt(name, cfg.OutputExt))
}

// convertXML consumes an intermediate export file and always removes it,
// converted or not.
func convertXML(cfg *config.Config, db *database.DB, dir, xmlName, csvName string) (int, error) {
	xmlPath := util.AssemblePath(dir, xmlName)
	defer func() {
		if file.Exists(xmlPath) {
			_ = os.Remove(xmlPath)
		}
	}()
	doc, err := parser.ParseFile(xmlPath)
	if err != nil {
		return 0, err
	}
	merged, err := merge.CyclistTeam(doc, cfg.CyclistTable, cfg.TeamTable)
	if err != nil {
		return 0, err
	}
	csvPath := util.AssemblePath(dir, csvName)
	if err := csvout.Write(csvPath, merged, cfg.CommaRune()); err != nil {
		_ = os.Remove(csvPath)
		return 0, err
	}
	if db != nil {
		if err := database.Load(db, cfg.Database, util.ParseName(csvName), merged); err != nil {
			return 0, err
		}
	}
	return len(merged.Rows), nil
}
