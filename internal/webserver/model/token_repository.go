package model

import (
	"errors"
	"log"
	"time"

	"gorm.io/gorm"
)

// ErrParentInactive is returned by CreateChild when the parent token was
// revoked or expired between validation and the insert.
var ErrParentInactive = errors.New("parent token is no longer active")

type TokenRepository struct {
	DB *gorm.DB
}

func (r *TokenRepository) Create(token *Token) error {
	if result := r.DB.Create(token); result.Error != nil {
		log.Printf("error creating token: %s\n", result.Error)
		return result.Error
	}
	return nil
}

// CreateChild inserts a forwarded token inside a transaction that re-checks
// the parent is still active, so a forward cannot outrun a concurrent revoke.
func (r *TokenRepository) CreateChild(child *Token, now time.Time) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		var parent Token
		if err := tx.First(&parent, *child.ParentID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrParentInactive
			}
			return err
		}
		if !parent.Active(now) {
			return ErrParentInactive
		}
		return tx.Create(child).Error
	})
}

func (r *TokenRepository) FindBySecretHash(hash string) (*Token, error) {
	var token Token

	result := r.DB.Where("secret_hash = ?", hash).First(&token)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if result.Error != nil {
		log.Printf("error finding token: %s\n", result.Error)
		return nil, result.Error
	}
	return &token, nil
}

// Revoke flags the token as revoked. Revoking an already revoked or unknown
// token is a no-op, so the operation is idempotent. Children are not
// cascaded; every forwarded token carries its own expiry and revocation.
func (r *TokenRepository) Revoke(uuid string) error {
	result := r.DB.Model(&Token{}).Where("uuid = ?", uuid).Update("revoked", true)
	if result.Error != nil {
		log.Printf("error revoking token: %s\n", result.Error)
		return result.Error
	}
	return nil
}

func (r *TokenRepository) ChildrenCount(parentID uint) (int64, error) {
	var total int64

	result := r.DB.Model(&Token{}).Where("parent_id = ?", parentID).Count(&total)
	if result.Error != nil {
		log.Printf("error counting forwarded tokens: %s\n", result.Error)
		return 0, result.Error
	}
	return total, nil
}
