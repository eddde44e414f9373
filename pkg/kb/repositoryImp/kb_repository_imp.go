package repositoryImp

import (
	"gorm.io/gorm"

	"kisan/entities"
	"kisan/pkg/kb/repository"
)

type kbRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.KBRepository { return &kbRepo{db} }

func (r *kbRepo) CreateDoc(d *entities.KBDocument) error { return r.db.Create(d).Error }

func (r *kbRepo) BulkInsertChunks(cs []entities.KBChunk) error {
	if len(cs) == 0 {
		return nil
	}
	return r.db.Create(&cs).Error
}

func (r *kbRepo) ListDocs() ([]entities.KBDocument, error) {
	var ds []entities.KBDocument
	return ds, r.db.Order("doc_id DESC").Find(&ds).Error
}

func (r *kbRepo) AllChunks() ([]entities.KBChunk, error) {
	var cs []entities.KBChunk
	return cs, r.db.Find(&cs).Error
}

func (r *kbRepo) DocsByIDs(ids []uint) (map[uint]entities.KBDocument, error) {
	if len(ids) == 0 {
		return map[uint]entities.KBDocument{}, nil
	}
	var ds []entities.KBDocument
	if err := r.db.Where("doc_id IN ?", ids).Find(&ds).Error; err != nil {
		return nil, err
	}
	m := make(map[uint]entities.KBDocument, len(ds))
	for i := range ds {
		m[ds[i].DocID] = ds[i]
	}
	return m, nil
}
