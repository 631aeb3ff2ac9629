package model

import (
	"errors"
	"log"

	"gorm.io/gorm"
)

type ChallengeRepository struct {
	DB *gorm.DB
}

// Supersede marks every unconsumed challenge for the token as consumed and
// inserts the replacement in the same transaction, keeping at most one live
// challenge per token.
func (r *ChallengeRepository) Supersede(tokenID uint, challenge *Challenge) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&Challenge{}).
			Where("token_id = ? AND consumed = ?", tokenID, false).
			Update("consumed", true)
		if result.Error != nil {
			return result.Error
		}
		return tx.Create(challenge).Error
	})
}

// Newest returns the most recently created challenge for the token whether
// consumed or not. Reissue cooldowns are measured against it.
func (r *ChallengeRepository) Newest(tokenID uint) (*Challenge, error) {
	var challenge Challenge

	result := r.DB.Where("token_id = ?", tokenID).Order("id DESC").First(&challenge)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if result.Error != nil {
		log.Printf("error finding newest challenge: %s\n", result.Error)
		return nil, result.Error
	}
	return &challenge, nil
}

// IncrementAttempts bumps the attempt counter with a single SQL expression so
// concurrent guesses serialize in the database, then returns the updated
// count.
func (r *ChallengeRepository) IncrementAttempts(id uint) (int, error) {
	result := r.DB.Model(&Challenge{}).Where("id = ?", id).
		UpdateColumn("attempts", gorm.Expr("attempts + 1"))
	if result.Error != nil {
		log.Printf("error incrementing challenge attempts: %s\n", result.Error)
		return 0, result.Error
	}

	var challenge Challenge
	if err := r.DB.First(&challenge, id).Error; err != nil {
		return 0, err
	}
	return challenge.Attempts, nil
}

// Consume flips the consumed flag with a compare-and-set conditioned on it
// still being false. Exactly one of any set of concurrent callers gets true.
func (r *ChallengeRepository) Consume(id uint) (bool, error) {
	result := r.DB.Model(&Challenge{}).
		Where("id = ? AND consumed = ?", id, false).
		Update("consumed", true)
	if result.Error != nil {
		log.Printf("error consuming challenge: %s\n", result.Error)
		return false, result.Error
	}
	return result.RowsAffected == 1, nil
}
