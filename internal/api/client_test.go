package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hellodocs/flashdeck/internal/api"
	"github.com/hellodocs/flashdeck/internal/flashcard"
	"github.com/hellodocs/flashdeck/internal/progress"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *api.Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := api.NewClient(server.URL, 2*time.Second)
	t.Cleanup(func() {
		_ = client.Close()
	})
	return client
}

func TestClient_GetAll(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
		want    []flashcard.Flashcard
	}{
		{
			name: "normalizes loosely-typed records",
			handler: func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/flashcards", r.URL.Path)
				_, _ = w.Write([]byte(`[
					{"id": "5", "frontContent": "front", "backContent": "back"},
					{"id": 6, "frontContent": null, "difficultyLevel": "ADVANCED", "language": "go"}
				]`))
			},
			want: []flashcard.Flashcard{
				{
					ID:              5,
					FrontContent:    "front",
					BackContent:     "back",
					DifficultyLevel: flashcard.DifficultyBeginner,
					Language:        flashcard.DefaultLanguage,
				},
				{
					ID:              6,
					DifficultyLevel: "ADVANCED",
					Language:        "go",
				},
			},
		},
		{
			name: "server error yields empty slice",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
			want: []flashcard.Flashcard{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, tt.handler)
			assert.Equal(t, tt.want, client.GetAll(context.Background()))
		})
	}
}

func TestClient_GetAll_Unreachable(t *testing.T) {
	client := api.NewClient("http://127.0.0.1:1", time.Second)
	defer func() {
		_ = client.Close()
	}()

	assert.Empty(t, client.GetAll(context.Background()))
}

func TestClient_GetWithFilters(t *testing.T) {
	var gotQuery map[string][]string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		_, _ = w.Write([]byte(`[]`))
	})

	client.GetWithFilters(context.Background(), flashcard.FilterOptions{
		DifficultyLevel: "ADVANCED",
		Tag:             "go",
	})

	assert.Equal(t, []string{"ADVANCED"}, gotQuery["difficultyLevel"])
	assert.Equal(t, []string{"go"}, gotQuery["tag"])
	assert.NotContains(t, gotQuery, "category")
	assert.NotContains(t, gotQuery, "language")
}

func TestClient_GetByID(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/flashcards/7", r.URL.Path)
			_, _ = w.Write([]byte(`{"id": 7, "frontContent": "front"}`))
		})

		card := client.GetByID(context.Background(), 7)
		require.NotNil(t, card)
		assert.Equal(t, 7, card.ID)
		assert.Equal(t, "front", card.FrontContent)
	})

	t.Run("missing card yields nil", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		})
		assert.Nil(t, client.GetByID(context.Background(), 7))
	})
}

func TestClient_GetCategories(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/flashcards/categories", r.URL.Path)
			_, _ = w.Write([]byte(`["Concurrency", "Collections"]`))
		})
		assert.Equal(t, []string{"Concurrency", "Collections"}, client.GetCategories(context.Background()))
	})

	t.Run("failure yields empty list", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		})
		assert.Empty(t, client.GetCategories(context.Background()))
	})
}

func TestClient_GetDifficultyLevels(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/flashcards/difficulties", r.URL.Path)
			_, _ = w.Write([]byte(`["EASY", "HARD"]`))
		})
		assert.Equal(t, []string{"EASY", "HARD"}, client.GetDifficultyLevels(context.Background()))
	})

	t.Run("failure falls back to the canonical triple", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		})
		assert.Equal(t, api.FallbackDifficultyLevels, client.GetDifficultyLevels(context.Background()))
	})
}

func TestClient_Login(t *testing.T) {
	t.Run("success returns the session", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/auth/login", r.URL.Path)
			assert.Equal(t, http.MethodPost, r.Method)

			var body map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "alice", body["username"])
			assert.Equal(t, "secret", body["password"])

			_, _ = w.Write([]byte(`{"username": "alice", "email": "alice@example.com", "role": "USER", "token": "token-123"}`))
		})

		sess, err := client.Login(context.Background(), "alice", "secret")
		require.NoError(t, err)
		assert.Equal(t, "alice", sess.Username)
		assert.Equal(t, "alice@example.com", sess.Email)
		assert.Equal(t, "token-123", sess.Token)
	})

	t.Run("rejection surfaces the server body verbatim", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte("Invalid credentials"))
		})

		_, err := client.Login(context.Background(), "alice", "wrong")
		require.Error(t, err)

		var authErr *api.AuthenticationError
		require.ErrorAs(t, err, &authErr)
		assert.Equal(t, "Invalid credentials", authErr.Error())
	})
}

func TestClient_Register(t *testing.T) {
	t.Run("success returns the new session", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/auth/register", r.URL.Path)
			_, _ = w.Write([]byte(`{"username": "bob", "role": "USER", "token": "t"}`))
		})

		sess, err := client.Register(context.Background(), api.RegisterRequest{
			Username: "bob",
			Email:    "bob@example.com",
			Password: "secret",
		})
		require.NoError(t, err)
		assert.Equal(t, "bob", sess.Username)
	})

	t.Run("rejection surfaces the server body", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusConflict)
			_, _ = w.Write([]byte("Username already taken"))
		})

		_, err := client.Register(context.Background(), api.RegisterRequest{Username: "bob"})
		var regErr *api.RegistrationError
		require.ErrorAs(t, err, &regErr)
		assert.Equal(t, "Username already taken", regErr.Error())
	})
}

func TestClient_CheckUsername(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
		want    bool
	}{
		{
			name: "available",
			handler: func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/auth/check-username/carol", r.URL.Path)
				_, _ = w.Write([]byte(`{"available": true}`))
			},
			want: true,
		},
		{
			name: "taken",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"available": false}`))
			},
			want: false,
		},
		{
			name: "failure reads as unavailable",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, tt.handler)
			assert.Equal(t, tt.want, client.CheckUsername(context.Background(), "carol"))
		})
	}
}

func TestClient_SendProgressBatch(t *testing.T) {
	t.Run("sends bearer token and record payload", func(t *testing.T) {
		now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/user-progress/batch", r.URL.Path)
			assert.Equal(t, "Bearer token-123", r.Header.Get("Authorization"))

			var body struct {
				ProgressRecords []progress.Record `json:"progressRecords"`
			}
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			require.Len(t, body.ProgressRecords, 1)
			assert.Equal(t, 7, body.ProgressRecords[0].FlashcardID)
			assert.True(t, body.ProgressRecords[0].IsCorrect)
			assert.True(t, now.Equal(body.ProgressRecords[0].Timestamp))
		})

		err := client.SendProgressBatch(context.Background(), "token-123", []progress.Record{
			{FlashcardID: 7, IsCorrect: true, Timestamp: now},
		})
		assert.NoError(t, err)
	})

	t.Run("rejection is an error", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		})

		err := client.SendProgressBatch(context.Background(), "expired", []progress.Record{{FlashcardID: 1}})
		assert.ErrorContains(t, err, "response error 401")
	})
}

func TestClient_Create(t *testing.T) {
	t.Run("success returns the created card", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/flashcards", r.URL.Path)
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "Bearer admin-token", r.Header.Get("Authorization"))
			_, _ = w.Write([]byte(`{"id": 10, "frontContent": "front", "backContent": "back"}`))
		})

		created, err := client.Create(context.Background(), "admin-token", flashcard.Flashcard{
			FrontContent: "front",
			BackContent:  "back",
		})
		require.NoError(t, err)
		assert.Equal(t, 10, created.ID)
	})

	t.Run("rejection is an error", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
		})

		_, err := client.Create(context.Background(), "user-token", flashcard.Flashcard{})
		assert.ErrorContains(t, err, "response error 403")
	})
}

func TestClient_Delete(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/flashcards/4", r.URL.Path)
			assert.Equal(t, http.MethodDelete, r.Method)
			assert.Equal(t, "Bearer admin-token", r.Header.Get("Authorization"))
			w.WriteHeader(http.StatusNoContent)
		})
		assert.NoError(t, client.Delete(context.Background(), "admin-token", 4))
	})

	t.Run("rejection is an error", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		})
		assert.ErrorContains(t, client.Delete(context.Background(), "t", 4), "response error 404")
	})
}
