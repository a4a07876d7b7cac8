package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/physio-clinic/internal/domain"
)

// updateExisting writes every column of row back to the record with the
// given id. Unlike Save it never inserts, so a row deleted concurrently
// stays deleted.
func updateExisting(ctx context.Context, db *gorm.DB, row any, id string) error {
	res := db.WithContext(ctx).Model(row).Where("id = ?", id).Select("*").Updates(row)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
