package db

import (
	"github.com/rs/zerolog/log"

	"github.com/bildungswerk/kursbuero/internal/model"
)

const areaColumns = `id, name, description, created_at, updated_at, deleted_at`

func (s *pgStore) CreateArea(name string, description *string) (model.Area, error) {
	var a model.Area
	const q = `
	INSERT INTO areas (name, description, created_at, updated_at)
	VALUES ($1, $2, now(), now())
	RETURNING ` + areaColumns + `;`
	if err := s.db.Get(&a, q, name, description); err != nil {
		log.Error().Err(err).Msg("CreateArea failed")
		return model.Area{}, err
	}
	return a, nil
}

func (s *pgStore) GetAreaByID(id int) (model.Area, error) {
	var a model.Area
	const q = `SELECT ` + areaColumns + ` FROM areas WHERE id = $1 AND deleted_at IS NULL;`
	if err := s.db.Get(&a, q, id); err != nil {
		return model.Area{}, err
	}
	return a, nil
}

func (s *pgStore) ListAreas() ([]model.Area, error) {
	var out []model.Area
	const q = `SELECT ` + areaColumns + ` FROM areas WHERE deleted_at IS NULL ORDER BY name;`
	if err := s.db.Select(&out, q); err != nil {
		log.Error().Err(err).Msg("ListAreas failed")
		return nil, err
	}
	return out, nil
}

func (s *pgStore) UpdateArea(id int, name, description *string) (model.Area, error) {
	var a model.Area
	const q = `
	UPDATE areas
	   SET name        = COALESCE($2, name),
	       description = COALESCE($3, description),
	       updated_at  = now()
	 WHERE id = $1 AND deleted_at IS NULL
	RETURNING ` + areaColumns + `;`
	if err := s.db.Get(&a, q, id, name, description); err != nil {
		log.Error().Err(err).Int("area_id", id).Msg("UpdateArea failed")
		return model.Area{}, err
	}
	return a, nil
}

func (s *pgStore) DeleteArea(id int) error {
	_, err := s.db.Exec(`UPDATE areas SET deleted_at = now(), updated_at = now() WHERE id = $1 AND deleted_at IS NULL;`, id)
	if err != nil {
		log.Error().Err(err).Int("area_id", id).Msg("DeleteArea failed")
	}
	return err
}
