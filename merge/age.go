package merge

import (
	"strconv"
	"strings"
	"time"

	"github.com/UnaiZubeldia/PCM-CDB-CSV/consts"
	"github.com/UnaiZubeldia/PCM-CDB-CSV/model"
)

// Age derives full years from a YYYYMMDD birthdate cell. Anything that is
// not an integer forming a valid calendar date comes back null, malformed
// rows are tolerated and never fail a file.
func Age(birthdate model.Value) model.Value {
	return ageAt(birthdate, time.Now())
}

func ageAt(birthdate model.Value, now time.Time) model.Value {
	if birthdate.IsNull() {
		return model.Null()
	}
	s := strings.TrimSpace(birthdate.S)
	if _, err := strconv.Atoi(s); err != nil {
		return model.Null()
	}
	born, err := time.Parse(consts.BirthdateLayout, s)
	if err != nil {
		return model.Null()
	}
	age := now.Year() - born.Year()
	if beforeBirthday(now, born) {
		age--
	}
	return model.String(strconv.Itoa(age))
}

// beforeBirthday reports whether now's (month, day) precedes the birth
// (month, day), the "not had their birthday yet this year" check.
func beforeBirthday(now, born time.Time) bool {
	if now.Month() != born.Month() {
		return now.Month() < born.Month()
	}
	return now.Day() < born.Day()
}
