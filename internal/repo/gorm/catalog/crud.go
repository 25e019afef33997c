package catalog

import (
	"context"
	"errors"

	"github.com/cuihairu/ludotheque/internal/ports"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Generic single-row helpers shared by the entity repos.

func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ports.ErrNotFound
	}
	return err
}

func findByID[M any](ctx context.Context, db *gorm.DB, id uint) (*M, error) {
	var m M
	if err := db.WithContext(ctx).First(&m, id).Error; err != nil {
		return nil, translate(err)
	}
	return &m, nil
}

func existsByID[M any](ctx context.Context, db *gorm.DB, id uint) (bool, error) {
	var n int64
	if err := db.WithContext(ctx).Model(new(M)).Where("id = ?", id).Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

// updateByID loads the row, lets apply mutate it and saves it in one transaction.
func updateByID[M any](ctx context.Context, db *gorm.DB, id uint, apply func(*M)) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var cur M
		if err := tx.First(&cur, id).Error; err != nil {
			return translate(err)
		}
		apply(&cur)
		return tx.Omit(clause.Associations).Save(&cur).Error
	})
}

func deleteByID[M any](ctx context.Context, db *gorm.DB, id uint) error {
	res := db.WithContext(ctx).Delete(new(M), id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ports.ErrNotFound
	}
	return nil
}

func byTitle(db *gorm.DB) *gorm.DB { return db.Order("title ASC") }
