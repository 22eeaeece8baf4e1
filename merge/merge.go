package merge

import (
	"github.com/UnaiZubeldia/PCM-CDB-CSV/consts"
	"github.com/UnaiZubeldia/PCM-CDB-CSV/model"
	"github.com/UnaiZubeldia/PCM-CDB-CSV/parser"
)

// CyclistTeam extracts the cyclist and team tables from a parsed export
// and left-joins them on fkIDteam = IDteam. Every cyclist row produces
// exactly one output row; unmatched cyclists keep null team fields. An
// age column is appended when the cyclist table carries a birthdate.
func CyclistTeam(doc *parser.Document, cyclistTable, teamTable string) (*model.Table, error) {
	cyclists, err := parser.Extract(doc, cyclistTable)
	if err != nil {
		return nil, err
	}
	teams, err := parser.Extract(doc, teamTable)
	if err != nil {
		return nil, err
	}

	teams = teams.Select(consts.ColTeamID, consts.ColTeamShortName, consts.ColTeamName)

	// Index team rows by IDteam. First occurrence wins on duplicate keys.
	// Null keys are never indexed: a pandas-style equality merge would
	// match null fkIDteam to null IDteam and join unrelated rows.
	index := map[string]model.Row{}
	for _, row := range teams.Rows {
		key := teams.Value(row, consts.ColTeamID)
		if key.IsNull() {
			continue
		}
		if _, ok := index[key.S]; !ok {
			index[key.S] = row
		}
	}

	cols := make([]string, 0, len(cyclists.Cols)+len(teams.Cols))
	cols = append(cols, cyclists.Cols...)
	cols = append(cols, teams.Cols...)
	merged := model.New(cyclists.Name, cols)
	for _, row := range cyclists.Rows {
		out := make(model.Row, 0, len(cols))
		out = append(out, row...)
		var team model.Row
		if fk := cyclists.Value(row, consts.ColTeamFK); !fk.IsNull() {
			team = index[fk.S]
		}
		for _, col := range teams.Cols {
			if team == nil {
				out = append(out, model.Null())
			} else {
				out = append(out, teams.Value(team, col))
			}
		}
		merged.Append(out)
	}

	if cyclists.HasCol(consts.ColBirthdate) {
		ages := make([]model.Value, len(cyclists.Rows))
		for i, row := range cyclists.Rows {
			ages[i] = Age(cyclists.Value(row, consts.ColBirthdate))
		}
		merged.AppendCol(consts.ColAge, ages)
	}
	return merged, nil
}
