package webserver_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/avelys/guestpass/internal/webserver"
	"github.com/avelys/guestpass/internal/webserver/model"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

const staffKey = "staff-key"

func testWebserverConfig() webserver.Config {
	return webserver.Config{
		FQDN:           "localhost:3000",
		Secret:         []byte("assertion-secret"),
		Pepper:         []byte("test-pepper"),
		APIKey:         staffKey,
		TokenTTL:       720 * time.Hour,
		ForwardTTL:     168 * time.Hour,
		MaxDepth:       5,
		MaxChildren:    10,
		OtpTTL:         10 * time.Minute,
		OtpMaxAttempts: 5,
	}
}

func bootstrapApp(db *gorm.DB, sender webserver.Sender, cfg webserver.Config) *fiber.App {
	controllers := webserver.SetupControllers(cfg, db, sender)
	return webserver.New(cfg, controllers)
}

func demoList(t *testing.T, db *gorm.DB) model.GuestList {
	t.Helper()

	var list model.GuestList
	if err := db.Preload("Guests").First(&list).Error; err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	return list
}

func getRequest(app *fiber.App, url string) (*http.Response, error) {
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	return app.Test(req)
}

func postJSON(app *fiber.App, url string, payload map[string]interface{}, headers map[string]string) (*http.Response, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Add("Content-Type", "application/json")
	for name, value := range headers {
		req.Header.Add(name, value)
	}
	return app.Test(req)
}

func decodeBody(t *testing.T, response *http.Response) map[string]interface{} {
	t.Helper()

	var body map[string]interface{}
	if err := json.NewDecoder(response.Body).Decode(&body); err != nil {
		t.Fatalf("Unexpected error decoding body: %v", err)
	}
	return body
}

func mustReturnStatus(response *http.Response, expectedStatus int, t *testing.T) {
	t.Helper()

	if response.StatusCode != expectedStatus {
		t.Errorf("Expected status %d, received %d", expectedStatus, response.StatusCode)
	}
}

// mintRootToken creates a share token for the seeded demo guest list through
// the staff endpoint and returns its secret and UUID.
func mintRootToken(t *testing.T, app *fiber.App, db *gorm.DB) (string, string) {
	t.Helper()

	list := demoList(t, db)

	response, err := postJSON(app, "/lists/"+list.UUID+"/invites", map[string]interface{}{}, map[string]string{
		"X-Api-Key": staffKey,
	})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	mustReturnStatus(response, fiber.StatusCreated, t)

	body := decodeBody(t, response)
	secret, _ := body["secret"].(string)
	tokenUUID, _ := body["token_uuid"].(string)
	if secret == "" || tokenUUID == "" {
		t.Fatal("Expected a secret and token uuid in the mint response")
	}
	return secret, tokenUUID
}

// secretFromShareURL peels the bearer secret out of a share URL.
func secretFromShareURL(t *testing.T, shareURL string) string {
	t.Helper()

	index := strings.LastIndex(shareURL, "/invites/")
	if index == -1 {
		t.Fatalf("Unexpected share URL %s", shareURL)
	}
	return shareURL[index+len("/invites/"):]
}

func revokeToken(t *testing.T, app *fiber.App, tokenUUID string) {
	t.Helper()

	response, err := postJSON(app, "/tokens/revoke", map[string]interface{}{
		"token_uuid": tokenUUID,
	}, map[string]string{"X-Api-Key": staffKey})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	mustReturnStatus(response, fiber.StatusOK, t)
}
