// Indra Dhanu - Crop Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/indradhanu

package i18n

import (
	"errors"
	"testing"

	"github.com/tomtom215/indradhanu/internal/apperrors"
)

// keys lists the label keys every table carries.
var keys = []string{
	"nitrogen", "phosphorus", "potassium", "temperature", "humidity", "ph_value", "rainfall",
	"crop", "yield", "price", "revenue",
}

func TestLookup(t *testing.T) {
	t.Parallel()

	tests := []struct {
		code string
		key  string
		want string
	}{
		{"en", "ph_value", "pH Value"},
		{"hi", "crop", "फसल"},
		{"mr", "rainfall", "पाऊस"},
		{"", "revenue", "Revenue"},
		{" hi ", "yield", "उपज"},
	}
	for _, tt := range tests {
		t.Run(tt.code+"/"+tt.key, func(t *testing.T) {
			t.Parallel()
			table, err := Lookup(tt.code)
			if err != nil {
				t.Fatalf("Lookup(%q): %v", tt.code, err)
			}
			if got := table[tt.key]; got != tt.want {
				t.Errorf("%s = %q, want %q", tt.key, got, tt.want)
			}
		})
	}
}

func TestLookup_Unknown(t *testing.T) {
	t.Parallel()

	for _, code := range []string{"fr", "EN", "xx"} {
		if _, err := Lookup(code); !errors.Is(err, apperrors.ErrNotFound) {
			t.Errorf("Lookup(%q) err = %v, want ErrNotFound", code, err)
		}
	}
}

func TestLookup_ReturnsCopy(t *testing.T) {
	t.Parallel()

	a, _ := Lookup("en")
	a["crop"] = "changed"
	b, _ := Lookup("en")
	if b["crop"] != "Crop" {
		t.Error("Lookup exposed the shared table")
	}
}

func TestTablesComplete(t *testing.T) {
	t.Parallel()

	for _, lang := range Languages() {
		table, err := Lookup(lang.Code)
		if err != nil {
			t.Fatalf("Lookup(%q): %v", lang.Code, err)
		}
		if len(table) != len(keys) {
			t.Errorf("%s has %d keys, want %d", lang.Code, len(table), len(keys))
		}
		for _, k := range keys {
			if table[k] == "" {
				t.Errorf("%s missing %q", lang.Code, k)
			}
		}
	}
}

func TestLanguages(t *testing.T) {
	t.Parallel()

	got := Languages()
	want := []Language{{"en", "English"}, {"hi", "हिंदी"}, {"mr", "मराठी"}}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("[%d] = %+v, want %+v", i, got[i], want[i])
		}
	}
	got[0].Name = "changed"
	if Languages()[0].Name != "English" {
		t.Error("Languages exposed the shared slice")
	}
}
