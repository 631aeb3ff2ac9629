package model

import (
	"errors"
	"log"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ResponseRepository struct {
	DB *gorm.DB
}

// Upsert inserts the response or, when a row for the same (token, contact)
// pair already exists, overwrites its status and timestamps.
func (r *ResponseRepository) Upsert(response *Response) error {
	result := r.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "token_id"}, {Name: "contact_uuid"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"status", "verified_at", "responded_at",
		}),
	}).Create(response)
	if result.Error != nil {
		log.Printf("error upserting response: %s\n", result.Error)
		return result.Error
	}
	return nil
}

func (r *ResponseRepository) FindByTokenAndContact(tokenID uint, contactUUID string) (*Response, error) {
	var response Response

	result := r.DB.Where("token_id = ? AND contact_uuid = ?", tokenID, contactUUID).
		First(&response)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if result.Error != nil {
		log.Printf("error finding response: %s\n", result.Error)
		return nil, result.Error
	}
	return &response, nil
}

// BySubject returns the latest responses recorded under any token of the
// given guest list, used to decorate the projection.
func (r *ResponseRepository) BySubject(subjectUUID string) ([]Response, error) {
	var responses []Response

	result := r.DB.
		Joins("JOIN tokens ON tokens.id = responses.token_id").
		Where("tokens.subject_uuid = ?", subjectUUID).
		Find(&responses)
	if result.Error != nil {
		log.Printf("error listing responses: %s\n", result.Error)
		return nil, result.Error
	}
	return responses, nil
}
