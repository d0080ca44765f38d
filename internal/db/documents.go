package db

import (
	"github.com/rs/zerolog/log"

	"github.com/bildungswerk/kursbuero/internal/model"
)

const documentColumns = `id, course_id, name, file_path, content_type, created_at, updated_at, deleted_at`

func (s *pgStore) CreateDocument(courseID *int, name, filePath, contentType string) (model.Document, error) {
	var d model.Document
	const q = `
	INSERT INTO documents (course_id, name, file_path, content_type, created_at, updated_at)
	VALUES ($1, $2, $3, $4, now(), now())
	RETURNING ` + documentColumns + `;`
	if err := s.db.Get(&d, q, courseID, name, filePath, contentType); err != nil {
		log.Error().Err(err).Msg("CreateDocument failed")
		return model.Document{}, err
	}
	return d, nil
}

func (s *pgStore) GetDocumentByID(id int) (model.Document, error) {
	var d model.Document
	const q = `SELECT ` + documentColumns + ` FROM documents WHERE id = $1 AND deleted_at IS NULL;`
	if err := s.db.Get(&d, q, id); err != nil {
		return model.Document{}, err
	}
	return d, nil
}

func (s *pgStore) ListDocuments(courseID *int) ([]model.Document, error) {
	var out []model.Document
	const q = `
	SELECT ` + documentColumns + `
	  FROM documents
	 WHERE deleted_at IS NULL
	   AND ($1::int IS NULL OR course_id = $1)
	 ORDER BY created_at DESC;`
	if err := s.db.Select(&out, q, courseID); err != nil {
		log.Error().Err(err).Msg("ListDocuments failed")
		return nil, err
	}
	return out, nil
}

func (s *pgStore) DeleteDocument(id int) error {
	_, err := s.db.Exec(`UPDATE documents SET deleted_at = now(), updated_at = now() WHERE id = $1 AND deleted_at IS NULL;`, id)
	if err != nil {
		log.Error().Err(err).Int("document_id", id).Msg("DeleteDocument failed")
	}
	return err
}
