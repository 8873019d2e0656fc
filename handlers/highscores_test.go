// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/flappigotchi-server/db"
	"github.com/danielhkuo/flappigotchi-server/models"
	"github.com/danielhkuo/flappigotchi-server/store"
	"github.com/danielhkuo/flappigotchi-server/testutil"
)

func TestHighScoreHandler_Get(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	scores := store.NewScoreStore(store.NewSQLBackend(conn, db.DialectSQLite, testutil.TestTable))
	if res := scores.Submit(context.Background(), "4271", "Aave Hero", 12); !res.OK() {
		t.Fatalf("Seeding score failed: %+v", res)
	}
	handler := NewHighScoreHandler(scores)

	t.Run("found", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/highscores/4271", nil)
		req.SetPathValue("tokenId", "4271")
		w := httptest.NewRecorder()

		handler.Get(w, req)

		testutil.AssertStatus(t, w, http.StatusOK)
		var hs models.HighScore
		testutil.AssertJSON(t, w, &hs)
		if hs != (models.HighScore{TokenID: "4271", Name: "Aave Hero", Score: 12}) {
			t.Errorf("Unexpected response: %+v", hs)
		}
	})

	t.Run("not found", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/highscores/9999", nil)
		req.SetPathValue("tokenId", "9999")
		w := httptest.NewRecorder()

		handler.Get(w, req)

		testutil.AssertStatus(t, w, http.StatusNotFound)
	})

	t.Run("missing token", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/highscores/", nil)
		w := httptest.NewRecorder()

		handler.Get(w, req)

		testutil.AssertStatus(t, w, http.StatusBadRequest)
	})
}

func TestHighScoreHandler_BackendError(t *testing.T) {
	handler := NewHighScoreHandler(store.NewScoreStore(brokenBackend{}))

	req := httptest.NewRequest("GET", "/highscores/1", nil)
	req.SetPathValue("tokenId", "1")
	w := httptest.NewRecorder()

	handler.Get(w, req)

	testutil.AssertStatus(t, w, http.StatusInternalServerError)
}
