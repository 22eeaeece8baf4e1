package main

import (
	"fmt"
	"math/rand"
	"os"
	"strings"

	"github.com/UnaiZubeldia/PCM-CDB-CSV/log"
	"github.com/google/uuid"
)

// Writes a mock exporter output for trying the converter without the
// proprietary exporter: mock.xml with a cyclist and a team table.
func main() {
	cyclists := 200
	teams := 20
	f, err := os.OpenFile("mock.xml", os.O_CREATE|os.O_RDWR|os.O_TRUNC, os.FileMode(0766))
	if err != nil {
		panic(err)
	}
	defer f.Close()

	_, _ = f.WriteString("<Export>\n")
	_, _ = f.WriteString(fmt.Sprintf("<Table TableName=\"DYN_cyclist\" NumRows=\"%d\">\n", cyclists))
	writeColumn(f, "IDcyclist", cyclists, func(i int) string { return fmt.Sprintf("%d", i+1) })
	writeColumn(f, "gene_sz_lastname", cyclists, func(i int) string {
		return strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	})
	writeColumn(f, "fkIDteam", cyclists, func(i int) string { return fmt.Sprintf("%d", rand.Intn(teams+5)+1) })
	writeColumn(f, "gene_i_birthdate", cyclists, func(i int) string {
		return fmt.Sprintf("%04d%02d%02d", 1970+rand.Intn(35), rand.Intn(12)+1, rand.Intn(28)+1)
	})
	_, _ = f.WriteString("</Table>\n")
	_, _ = f.WriteString(fmt.Sprintf("<Table TableName=\"DYN_team\" NumRows=\"%d\">\n", teams))
	writeColumn(f, "IDteam", teams, func(i int) string { return fmt.Sprintf("%d", i+1) })
	writeColumn(f, "gene_sz_shortname", teams, func(i int) string {
		return strings.ToUpper(uuid.NewString()[:3])
	})
	writeColumn(f, "gene_sz_name", teams, func(i int) string {
		return "Team " + strings.ReplaceAll(uuid.NewString(), "-", "")[:6]
	})
	_, _ = f.WriteString("</Table>\n")
	_, _ = f.WriteString("</Export>\n")
	log.Infof("wrote mock.xml, %d cyclists in %d teams\n", cyclists, teams)
}

func writeColumn(f *os.File, name string, rows int, value func(i int) string) {
	_, _ = f.WriteString(fmt.Sprintf("<Column ColumnName=\"%s\">\n", name))
	for i := 0; i < rows; i++ {
		_, _ = f.WriteString(fmt.Sprintf("<Cell>%s</Cell>\n", value(i)))
	}
	_, _ = f.WriteString("</Column>\n")
}
