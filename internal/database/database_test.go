package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pingRow struct {
	ID   int64  `gorm:"column:id;primaryKey"`
	Name string `gorm:"column:name;uniqueIndex;not null"`
}

// Connect must be able to open a non-postgres DSN through the registered
// sqlite driver; everything DB-backed in the repo rides on this path.
func TestConnect_SQLiteFallback(t *testing.T) {
	db, err := Connect("file:database_fallback?mode=memory&cache=shared")
	require.NoError(t, err)

	require.NoError(t, Migrate(db, &pingRow{}))

	require.NoError(t, db.Create(&pingRow{Name: "a"}).Error)
	err = db.Create(&pingRow{Name: "a"}).Error
	assert.Error(t, err, "unique index must be enforced")

	var count int64
	require.NoError(t, db.Model(&pingRow{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}
