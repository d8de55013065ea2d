package authControllers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"github.com/Annamalai555/mernstack-project/auth"
	authControllers "github.com/Annamalai555/mernstack-project/controllers/auth"
	"github.com/Annamalai555/mernstack-project/models"
	"github.com/Annamalai555/mernstack-project/store"
)

type fakeUserStore struct {
	byEmail map[string]*models.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{byEmail: make(map[string]*models.User)}
}

func (f *fakeUserStore) InsertUser(_ context.Context, u *models.User) error {
	if _, ok := f.byEmail[u.Email]; ok {
		return store.ErrDuplicate
	}
	u.ID = primitive.NewObjectID()
	f.byEmail[u.Email] = u
	return nil
}

func (f *fakeUserStore) FindUserByEmail(_ context.Context, email string) (*models.User, error) {
	u, ok := f.byEmail[email]
	if !ok {
		return nil, store.ErrNotFound
	}
	return u, nil
}

type fakeMailer struct {
	welcomes []string
	alerts   []string
}

func (f *fakeMailer) SendWelcome(_, email string) error {
	f.welcomes = append(f.welcomes, email)
	return nil
}

func (f *fakeMailer) SendNewUserAlert(_, email string) error {
	f.alerts = append(f.alerts, email)
	return nil
}

func setupAuthRouter(users *fakeUserStore, mailer *fakeMailer) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/auth/register", authControllers.Register(users, mailer))
	r.POST("/api/auth/login", authControllers.Login(users))
	return r
}

func postJSON(router *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	data, _ := json.Marshal(body)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBuffer(data))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(rec, req)
	return rec
}

func TestRegister(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	t.Run("first registration succeeds, second conflicts", func(t *testing.T) {
		users := newFakeUserStore()
		mailer := &fakeMailer{}
		router := setupAuthRouter(users, mailer)

		rec := postJSON(router, "/api/auth/register", gin.H{
			"name": "Alice", "email": "alice@x.com", "password": "pw123",
		})
		assert.Equal(t, http.StatusCreated, rec.Code)

		var resp struct {
			Message string            `json:"message"`
			User    models.PublicUser `json:"user"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "User registered successfully", resp.Message)
		assert.Equal(t, "Alice", resp.User.Name)
		assert.Equal(t, models.RoleUser, resp.User.Role)
		assert.NotEmpty(t, resp.User.ID)

		// Welcome mail to the registrant plus one admin alert.
		assert.Equal(t, []string{"alice@x.com"}, mailer.welcomes)
		assert.Len(t, mailer.alerts, 1)

		rec = postJSON(router, "/api/auth/register", gin.H{
			"name": "Alice again", "email": "alice@x.com", "password": "other",
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "User already exists")
	})

	t.Run("stored password is hashed", func(t *testing.T) {
		users := newFakeUserStore()
		router := setupAuthRouter(users, &fakeMailer{})

		postJSON(router, "/api/auth/register", gin.H{
			"name": "Bob", "email": "bob@x.com", "password": "pw123",
		})

		stored := users.byEmail["bob@x.com"]
		require.NotNil(t, stored)
		assert.NotEqual(t, "pw123", stored.Password)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("pw123")))
	})

	t.Run("admin role only when explicitly requested", func(t *testing.T) {
		users := newFakeUserStore()
		router := setupAuthRouter(users, &fakeMailer{})

		postJSON(router, "/api/auth/register", gin.H{
			"name": "Root", "email": "root@x.com", "password": "pw", "role": 1,
		})
		assert.Equal(t, models.RoleAdmin, users.byEmail["root@x.com"].Role)

		postJSON(router, "/api/auth/register", gin.H{
			"name": "Odd", "email": "odd@x.com", "password": "pw", "role": 7,
		})
		assert.Equal(t, models.RoleUser, users.byEmail["odd@x.com"].Role)
	})

	t.Run("missing fields rejected", func(t *testing.T) {
		router := setupAuthRouter(newFakeUserStore(), &fakeMailer{})
		rec := postJSON(router, "/api/auth/register", gin.H{"email": "x@x.com"})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestLogin(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	users := newFakeUserStore()
	mailer := &fakeMailer{}
	router := setupAuthRouter(users, mailer)

	rec := postJSON(router, "/api/auth/register", gin.H{
		"name": "Alice", "email": "alice@x.com", "password": "pw123", "role": 1,
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	t.Run("valid credentials return a token with id, role and 24h expiry", func(t *testing.T) {
		rec := postJSON(router, "/api/auth/login", gin.H{
			"email": "alice@x.com", "password": "pw123",
		})
		assert.Equal(t, http.StatusOK, rec.Code)

		var resp struct {
			Message string            `json:"message"`
			Token   string            `json:"token"`
			User    models.PublicUser `json:"user"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "Login successful", resp.Message)
		require.NotEmpty(t, resp.Token)

		claims, err := auth.ParseToken(resp.Token)
		require.NoError(t, err)
		assert.Equal(t, resp.User.ID, claims.UserID)
		assert.Equal(t, models.RoleAdmin, claims.Role)
		assert.InDelta(t, (24 * time.Hour).Seconds(), time.Until(claims.ExpiresAt.Time).Seconds(), 5)
	})

	t.Run("wrong password and unknown email yield the same message", func(t *testing.T) {
		badPass := postJSON(router, "/api/auth/login", gin.H{
			"email": "alice@x.com", "password": "nope",
		})
		badEmail := postJSON(router, "/api/auth/login", gin.H{
			"email": "nobody@x.com", "password": "pw123",
		})

		assert.Equal(t, http.StatusBadRequest, badPass.Code)
		assert.Equal(t, http.StatusBadRequest, badEmail.Code)
		assert.Contains(t, badPass.Body.String(), "Invalid email or password")
		assert.Equal(t, badPass.Body.String(), badEmail.Body.String())
	})
}
