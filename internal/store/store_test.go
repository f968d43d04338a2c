package store

import (
	"testing"

	"github.com/devbryan02/gestion-hostal-template/internal/model"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.Room{}, &model.Tenant{}, &model.Occupation{}))
	return db
}

func seedRoom(t *testing.T, db *gorm.DB, number string, price float64) *model.Room {
	room := &model.Room{
		Number:        number,
		Type:          "single",
		Status:        model.RoomAvailable,
		PricePerNight: price,
	}
	require.NoError(t, db.Create(room).Error)
	return room
}

func seedTenant(t *testing.T, db *gorm.DB, name, document string) *model.Tenant {
	tenant := &model.Tenant{
		Name:           name,
		DocumentType:   model.DocumentDNI,
		DocumentNumber: document,
	}
	require.NoError(t, db.Create(tenant).Error)
	return tenant
}
