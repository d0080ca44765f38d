package db

import (
	"github.com/rs/zerolog/log"

	"github.com/bildungswerk/kursbuero/internal/model"
)

const programColumns = `id, area_id, name, description, created_at, updated_at, deleted_at`

func (s *pgStore) CreateProgram(areaID int, name string, description *string) (model.Program, error) {
	var p model.Program
	const q = `
	INSERT INTO programs (area_id, name, description, created_at, updated_at)
	VALUES ($1, $2, $3, now(), now())
	RETURNING ` + programColumns + `;`
	if err := s.db.Get(&p, q, areaID, name, description); err != nil {
		log.Error().Err(err).Int("area_id", areaID).Msg("CreateProgram failed")
		return model.Program{}, err
	}
	return p, nil
}

func (s *pgStore) GetProgramByID(id int) (model.Program, error) {
	var p model.Program
	const q = `SELECT ` + programColumns + ` FROM programs WHERE id = $1 AND deleted_at IS NULL;`
	if err := s.db.Get(&p, q, id); err != nil {
		return model.Program{}, err
	}
	return p, nil
}

func (s *pgStore) ListPrograms(areaID *int) ([]model.Program, error) {
	var out []model.Program
	const q = `
	SELECT ` + programColumns + `
	  FROM programs
	 WHERE deleted_at IS NULL
	   AND ($1::int IS NULL OR area_id = $1)
	 ORDER BY name;`
	if err := s.db.Select(&out, q, areaID); err != nil {
		log.Error().Err(err).Msg("ListPrograms failed")
		return nil, err
	}
	return out, nil
}

func (s *pgStore) UpdateProgram(id int, name, description *string) (model.Program, error) {
	var p model.Program
	const q = `
	UPDATE programs
	   SET name        = COALESCE($2, name),
	       description = COALESCE($3, description),
	       updated_at  = now()
	 WHERE id = $1 AND deleted_at IS NULL
	RETURNING ` + programColumns + `;`
	if err := s.db.Get(&p, q, id, name, description); err != nil {
		log.Error().Err(err).Int("program_id", id).Msg("UpdateProgram failed")
		return model.Program{}, err
	}
	return p, nil
}

func (s *pgStore) DeleteProgram(id int) error {
	_, err := s.db.Exec(`UPDATE programs SET deleted_at = now(), updated_at = now() WHERE id = $1 AND deleted_at IS NULL;`, id)
	if err != nil {
		log.Error().Err(err).Int("program_id", id).Msg("DeleteProgram failed")
	}
	return err
}
