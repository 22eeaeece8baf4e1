package merge

import (
	"testing"
	"time"

	"github.com/UnaiZubeldia/PCM-CDB-CSV/model"
	"github.com/stretchr/testify/assert"
)

func TestAgeAt(t *testing.T) {
	now := time.Date(2025, 3, 17, 12, 0, 0, 0, time.UTC)

	// birthday today: exactly 30 full years
	assert.Equal(t, model.String("30"), ageAt(model.String("19950317"), now))
	// birthday tomorrow: one day short of 30
	assert.Equal(t, model.String("29"), ageAt(model.String("19950318"), now))
	// birthday yesterday
	assert.Equal(t, model.String("30"), ageAt(model.String("19950316"), now))
	// later month
	assert.Equal(t, model.String("29"), ageAt(model.String("19950401"), now))
}

func TestAgeMalformed(t *testing.T) {
	now := time.Date(2025, 3, 17, 12, 0, 0, 0, time.UTC)

	assert.True(t, ageAt(model.Null(), now).IsNull())
	assert.True(t, ageAt(model.String(""), now).IsNull())
	assert.True(t, ageAt(model.String("abc"), now).IsNull())
	assert.True(t, ageAt(model.String("1995"), now).IsNull())
	// month 13 and day 32 are not calendar dates
	assert.True(t, ageAt(model.String("19951301"), now).IsNull())
	assert.True(t, ageAt(model.String("19950132"), now).IsNull())
}
