package docstore

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// GormStore backs the document store with a relational database through GORM.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) Create(ctx context.Context, doc interface{}) error {
	if err := s.db.WithContext(ctx).Create(doc).Error; err != nil {
		return errors.Wrap(err, "create document")
	}
	return nil
}

func (s *GormStore) List(ctx context.Context, dest interface{}, limit int) (int64, error) {
	base := s.db.WithContext(ctx).Model(dest)

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return 0, errors.Wrap(err, "count documents")
	}
	if err := base.Order("created_at DESC, id DESC").Limit(limit).Find(dest).Error; err != nil {
		return 0, errors.Wrap(err, "list documents")
	}
	return total, nil
}

func (s *GormStore) Get(ctx context.Context, id int64, dest interface{}) error {
	err := s.db.WithContext(ctx).First(dest, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return errors.Wrap(err, "get document")
	}
	return nil
}

func (s *GormStore) Update(ctx context.Context, model interface{}, id int64, patch map[string]interface{}) error {
	res := s.db.WithContext(ctx).Model(model).Where("id = ?", id).Updates(patch)
	if res.Error != nil {
		return errors.Wrap(res.Error, "update document")
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *GormStore) Delete(ctx context.Context, model interface{}, id int64) error {
	res := s.db.WithContext(ctx).Where("id = ?", id).Delete(model)
	if res.Error != nil {
		return errors.Wrap(res.Error, "delete document")
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
