package server

import (
	"bytes"
	"fmt"
	"net/http"
	"testing"

	"github.com/BienNg/chatter-sub000/pkg/internal/database"
	"github.com/BienNg/chatter-sub000/pkg/internal/models"
	"github.com/BienNg/chatter-sub000/pkg/internal/services"
	"github.com/glebarez/sqlite"
	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestServer(t *testing.T) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	raw, err := db.DB()
	require.NoError(t, err)
	raw.SetMaxOpenConns(1)

	require.NoError(t, database.RunMigration(db))
	database.C = db

	viper.Set("security.jwt_secret", "server-test-secret")
	NewServer()
}

func loginAs(t *testing.T, name string) (models.Account, string) {
	t.Helper()

	account, err := services.NewAccount(name, name, fmt.Sprintf("%s@example.com", name), "pw123456")
	require.NoError(t, err)

	token, err := services.EncodeJwt(account)
	require.NoError(t, err)

	return account, token
}

func jsonRequest(t *testing.T, method, target, token string, body any) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, jsoniter.NewEncoder(&buf).Encode(body))
	}

	req, err := http.NewRequest(method, target, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if len(token) > 0 {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	return req
}

func TestProtectedRoutesRejectAnonymous(t *testing.T) {
	setupTestServer(t)

	for _, target := range []string{"/api/channels/", "/api/students/", "/api/payments/overview"} {
		resp, err := A.Test(jsonRequest(t, http.MethodGet, target, "", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, target)
	}
}

func TestSendMessageClearsChannelDraft(t *testing.T) {
	setupTestServer(t)

	account, token := loginAs(t, "wendy")
	channel, err := services.NewChannel(models.Channel{
		Name:      "greetings",
		AccountID: account.ID,
	})
	require.NoError(t, err)

	services.SaveDraft(account, channel.ID, 0, "hello wor", nil)
	services.FlushDraft(account.ID, channel.ID, 0)

	// A rejected send leaves the draft alone.
	resp, err := A.Test(jsonRequest(t, http.MethodPost,
		fmt.Sprintf("/api/channels/%d/messages", channel.ID), token,
		map[string]any{"content": "   "}))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	draft, ok := services.LoadDraft(account, channel.ID, 0)
	require.True(t, ok)
	assert.Equal(t, "hello wor", draft.Content)

	// A successful send clears it.
	resp, err = A.Test(jsonRequest(t, http.MethodPost,
		fmt.Sprintf("/api/channels/%d/messages", channel.ID), token,
		map[string]any{"content": "hello world"}))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	_, ok = services.LoadDraft(account, channel.ID, 0)
	assert.False(t, ok)

	var message models.Message
	require.NoError(t, jsoniter.NewDecoder(resp.Body).Decode(&message))
	assert.Equal(t, "hello world", message.Content)
	assert.Equal(t, account.ID, message.AuthorID)
}

func TestRegisterThenLoginRoundTrip(t *testing.T) {
	setupTestServer(t)

	resp, err := A.Test(jsonRequest(t, http.MethodPost, "/api/auth/register", "",
		map[string]any{
			"name":     "newcomer",
			"nick":     "Newcomer",
			"email":    "newcomer@example.com",
			"password": "pw123456",
		}))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = A.Test(jsonRequest(t, http.MethodPost, "/api/auth/login", "",
		map[string]any{
			"email":    "newcomer@example.com",
			"password": "pw123456",
		}))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var result struct {
		Token   string         `json:"token"`
		Account models.Account `json:"account"`
	}
	require.NoError(t, jsoniter.NewDecoder(resp.Body).Decode(&result))
	require.NotEmpty(t, result.Token)

	resp, err = A.Test(jsonRequest(t, http.MethodGet, "/api/users/me", result.Token, nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var me models.Account
	require.NoError(t, jsoniter.NewDecoder(resp.Body).Decode(&me))
	assert.Equal(t, "newcomer", me.Name)
}

func TestPaymentValidationAtTheEdge(t *testing.T) {
	setupTestServer(t)

	_, token := loginAs(t, "bursar")

	student, err := services.NewStudent(models.Student{
		Name:  "Edge Case",
		Email: "edge@example.com",
	})
	require.NoError(t, err)

	resp, err := A.Test(jsonRequest(t, http.MethodPost, "/api/payments/", token,
		map[string]any{
			"student_id": student.ID,
			"amount":     0,
			"currency":   "EUR",
		}))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, err = A.Test(jsonRequest(t, http.MethodPost, "/api/payments/", token,
		map[string]any{
			"student_id": student.ID,
			"amount":     250,
			"currency":   "EUR",
		}))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var payment models.Payment
	require.NoError(t, jsoniter.NewDecoder(resp.Body).Decode(&payment))
	assert.Equal(t, "Edge Case", payment.StudentName)
}
