package infrastructure

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/avelys/guestpass/internal/webserver/model"
	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

func Connect(path string) *gorm.DB {
	if _, err := os.Stat(path); os.IsNotExist(err) && !strings.Contains(path, ":memory:") {
		if _, err = os.Create(path); err != nil {
			log.Fatal(err)
		}
		log.Printf("Created database at %s\n", path)
	}

	db, err := gorm.Open(sqlite.Open(fmt.Sprintf("%s?_pragma=foreign_keys(1)", path)), &gorm.Config{
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		log.Fatal(err)
	}

	if err := db.AutoMigrate(
		&model.GuestList{},
		&model.Guest{},
		&model.Token{},
		&model.Challenge{},
		&model.Response{},
	); err != nil {
		log.Fatal(err)
	}
	addDemoGuestList(db)
	return db
}

// addDemoGuestList seeds an example subject on an empty database so a fresh
// install has something a minted token can resolve to.
func addDemoGuestList(db *gorm.DB) {
	var total int64
	db.Table("guest_lists").Count(&total)

	if total == 0 {
		list := &model.GuestList{
			UUID:      uuid.NewString(),
			Title:     "Housewarming",
			Host:      "Avelys",
			Venue:     "12 Elm Street",
			EventDate: time.Now().UTC().AddDate(0, 1, 0),
			Guests: []model.Guest{
				{
					ContactUUID: uuid.NewString(),
					Name:        "Guest",
					Email:       "guest@example.com",
				},
			},
		}
		lists := &model.GuestListRepository{DB: db}
		if err := lists.Create(list); err != nil {
			log.Fatal("Couldn't create demo guest list")
		}
	}
}
