package services

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMealDBRequestShapes(t *testing.T) {
	tests := []struct {
		name     string
		call     func(s *MealDBService) error
		wantPath string
		wantKey  string
		wantVal  string
	}{
		{
			name:     "ingredient",
			call:     func(s *MealDBService) error { _, err := s.SearchByIngredient("chicken breast"); return err },
			wantPath: "/filter.php", wantKey: "i", wantVal: "chicken breast",
		},
		{
			name:     "name",
			call:     func(s *MealDBService) error { _, err := s.SearchByName("arrabiata"); return err },
			wantPath: "/search.php", wantKey: "s", wantVal: "arrabiata",
		},
		{
			name:     "category",
			call:     func(s *MealDBService) error { _, err := s.SearchByCategory("Seafood"); return err },
			wantPath: "/filter.php", wantKey: "c", wantVal: "Seafood",
		},
		{
			name:     "lookup",
			call:     func(s *MealDBService) error { _, err := s.LookupByID("52772"); return err },
			wantPath: "/lookup.php", wantKey: "i", wantVal: "52772",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, tt.wantPath, r.URL.Path)
				assert.Equal(t, tt.wantVal, r.URL.Query().Get(tt.wantKey))
				w.Write([]byte(`{"meals":null}`))
			}))
			defer srv.Close()

			require.NoError(t, tt.call(NewMealDBService(srv.URL)))
		})
	}
}

func TestMealDBCategoriesHasNoParams(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/categories.php", r.URL.Path)
		assert.Empty(t, r.URL.RawQuery)
		w.Write([]byte(`{"categories":[]}`))
	}))
	defer srv.Close()

	payload, err := NewMealDBService(srv.URL).Categories()
	require.NoError(t, err)
	assert.JSONEq(t, `{"categories":[]}`, string(payload))
}

func TestMealDBPassesBodyThroughVerbatim(t *testing.T) {
	body := `{"meals":[{"idMeal":"52772","strMeal":"Teriyaki Chicken","unknownField":true}]}`
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(body))
	}))
	defer srv.Close()

	payload, err := NewMealDBService(srv.URL).SearchByName("teriyaki")
	require.NoError(t, err)
	assert.Equal(t, body, string(payload))
}

func TestMealDBErrorOnBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream down", http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := NewMealDBService(srv.URL).SearchByName("x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "500")
}

func TestMealDBErrorOnInvalidJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>not json</html>"))
	}))
	defer srv.Close()

	_, err := NewMealDBService(srv.URL).Categories()
	require.Error(t, err)
}

func TestMealDBErrorOnTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused

	_, err := NewMealDBService(srv.URL).LookupByID("52772")
	require.Error(t, err)
}

func TestMealCount(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		want    int
	}{
		{"two meals", `{"meals":[{"idMeal":"1"},{"idMeal":"2"}]}`, 2},
		{"null meals", `{"meals":null}`, 0},
		{"no meals key", `{"categories":[]}`, 0},
		{"not an object", `[1,2,3]`, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MealCount([]byte(tt.payload)))
		})
	}
}
