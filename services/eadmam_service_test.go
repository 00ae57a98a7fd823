package services

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestEdamamLookup_FirstHint(t *testing.T) {
	var gotQuery, gotAppID string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/food-database/v2/parser" {
			http.NotFound(w, r)
			return
		}
		gotQuery = r.URL.Query().Get("ingr")
		gotAppID = r.URL.Query().Get("app_id")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"text": "apple",
			"parsed": [],
			"hints": [
				{"food": {"foodId": "food_a1", "label": "Apple", "nutrients": {"ENERC_KCAL": 52, "PROCNT": 0.26, "FAT": 0.17, "CHOCDF": 13.81, "FIBTG": 2.4, "SUGAR": 10.4}}},
				{"food": {"foodId": "food_a2", "label": "Apple Juice", "nutrients": {"ENERC_KCAL": 46}}}
			]
		}`))
	}))
	defer srv.Close()

	svc := NewEdamamService("id-1", "key-1").WithBaseURL(srv.URL)
	n, err := svc.Lookup(context.Background(), "2 Apple")
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if gotQuery != "apple" {
		t.Errorf("ingr = %q, want apple", gotQuery)
	}
	if gotAppID != "id-1" {
		t.Errorf("app_id = %q, want id-1", gotAppID)
	}
	if n.Calories != 52 || n.Carbs != 13.81 || n.Sugar != 10.4 || n.Fiber != 2.4 {
		t.Errorf("nutrients = %+v", n)
	}
}

func TestEdamamLookup_PrefersParsed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"parsed": [{"food": {"label": "Egg", "nutrients": {"ENERC_KCAL": 143, "PROCNT": 12.6}}}],
			"hints": [{"food": {"label": "Egg White", "nutrients": {"ENERC_KCAL": 52}}}]
		}`))
	}))
	defer srv.Close()

	n, err := NewEdamamService("a", "b").WithBaseURL(srv.URL).Lookup(context.Background(), "egg")
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if n.Calories != 143 || n.Protein != 12.6 {
		t.Errorf("nutrients = %+v, want the parsed food", n)
	}
}

func TestEdamamLookup_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"parsed": [], "hints": []}`))
	}))
	defer srv.Close()

	svc := NewEdamamService("a", "b").WithBaseURL(srv.URL)
	if _, err := svc.Lookup(context.Background(), "zzzz"); !errors.Is(err, ErrFoodNotFound) {
		t.Errorf("err = %v, want ErrFoodNotFound", err)
	}
	if _, err := svc.Lookup(context.Background(), "42"); !errors.Is(err, ErrFoodNotFound) {
		t.Errorf("numeric query err = %v, want ErrFoodNotFound", err)
	}
}

func TestEdamamLookup_UpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	_, err := NewEdamamService("a", "b").WithBaseURL(srv.URL).Lookup(context.Background(), "rice")
	if err == nil || errors.Is(err, ErrFoodNotFound) {
		t.Errorf("err = %v, want a non-not-found upstream error", err)
	}
}
