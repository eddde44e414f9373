package repository

import "kisan/entities"

type KBRepository interface {
	CreateDoc(d *entities.KBDocument) error
	BulkInsertChunks(cs []entities.KBChunk) error
	ListDocs() ([]entities.KBDocument, error)
	AllChunks() ([]entities.KBChunk, error)
	DocsByIDs(ids []uint) (map[uint]entities.KBDocument, error)
}
