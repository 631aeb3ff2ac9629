package model

import (
	"errors"
	"log"

	"gorm.io/gorm"
)

type GuestListRepository struct {
	DB *gorm.DB
}

func (r *GuestListRepository) FindByUUID(uuid string) (*GuestList, error) {
	var list GuestList

	result := r.DB.Preload("Guests").Where("uuid = ?", uuid).First(&list)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if result.Error != nil {
		log.Printf("error finding guest list: %s\n", result.Error)
		return nil, result.Error
	}
	return &list, nil
}

func (r *GuestListRepository) Create(list *GuestList) error {
	if result := r.DB.Create(list); result.Error != nil {
		log.Printf("error creating guest list: %s\n", result.Error)
		return result.Error
	}
	return nil
}
