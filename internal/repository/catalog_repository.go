package repository

import (
	"database/sql"

	"github.com/pravinpawar3/FinRAG-AI-Chatbot/internal/model"
)

// CatalogRepository records every object-store write the pipeline makes,
// one row per stored object.
type CatalogRepository struct {
	db *sql.DB
}

func NewCatalogRepository(db *sql.DB) *CatalogRepository {
	return &CatalogRepository{db: db}
}

func (r *CatalogRepository) SaveObject(obj *model.StoredObject) error {
	return r.db.QueryRow(`
		INSERT INTO stored_object(source, bucket, object_path, kind, record_id)
		VALUES($1, $2, $3, $4, $5)
		RETURNING id, written_at
	`, obj.Source, obj.Bucket, obj.ObjectPath, obj.Kind, obj.RecordID).Scan(&obj.ID, &obj.WrittenAt)
}

func (r *CatalogRepository) RecentObjects(limit int) ([]model.StoredObject, error) {
	rows, err := r.db.Query(`
		SELECT id, source, bucket, object_path, kind, record_id, written_at
		FROM stored_object
		ORDER BY written_at DESC
		LIMIT $1
	`, limit)

	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var objects []model.StoredObject
	for rows.Next() {
		var o model.StoredObject
		err := rows.Scan(&o.ID, &o.Source, &o.Bucket, &o.ObjectPath, &o.Kind, &o.RecordID, &o.WrittenAt)
		if err != nil {
			return nil, err
		}
		objects = append(objects, o)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return objects, nil
}

func (r *CatalogRepository) CountBySource() ([]model.SourceCount, error) {
	rows, err := r.db.Query(`
		SELECT source, COUNT(*)
		FROM stored_object
		GROUP BY source
		ORDER BY source
	`)

	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var counts []model.SourceCount
	for rows.Next() {
		var c model.SourceCount
		if err := rows.Scan(&c.Source, &c.Count); err != nil {
			return nil, err
		}
		counts = append(counts, c)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return counts, nil
}
