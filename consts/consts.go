package consts

const (
	ElementTable  = "Table"
	ElementColumn = "Column"
	ElementCell   = "Cell"

	AttrTableName  = "TableName"
	AttrNumRows    = "NumRows"
	AttrColumnName = "ColumnName"

	TableCyclist = "DYN_cyclist"
	TableTeam    = "DYN_team"

	ColTeamID        = "IDteam"
	ColTeamFK        = "fkIDteam"
	ColTeamShortName = "gene_sz_shortname"
	ColTeamName      = "gene_sz_name"
	ColBirthdate     = "gene_i_birthdate"
	ColAge           = "age"

	BirthdateLayout = "20060102"

	K           = 1024
	InsertBatch = 2 * K
)
