// SPDX-FileCopyrightText: Copyright 2026 SafariHQ, Inc.
// SPDX-License-Identifier: Apache-2.0

package env

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetArray(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		seed map[string]string
		key  string
		def  []string
		want []string
	}{
		{
			name: "trims, drops empties, dedups in first-seen order",
			seed: map[string]string{"K": "a, a, ,b"},
			key:  "K",
			want: []string{"a", "b"},
		},
		{
			name: "defaults seed the list ahead of stored values",
			seed: map[string]string{"K": "c,a"},
			key:  "K",
			def:  []string{"a", "b"},
			want: []string{"a", "b", "c"},
		},
		{
			name: "absent key yields defaults only",
			seed: nil,
			key:  "K",
			def:  []string{"x"},
			want: []string{"x"},
		},
		{
			name: "absent key and no defaults yields empty",
			seed: nil,
			key:  "K",
			want: []string{},
		},
		{
			name: "empty key contributes nothing beyond defaults",
			seed: map[string]string{"": "never"},
			key:  "",
			def:  []string{"d"},
			want: []string{"d"},
		},
		{
			name: "single value",
			seed: map[string]string{"K": "solo"},
			key:  "K",
			want: []string{"solo"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			e := newTestEnv(t, tt.seed)
			assert.Equal(t, tt.want, e.GetArray(tt.key, tt.def...))
		})
	}
}

func TestGetNumbers(t *testing.T) {
	t.Parallel()

	e := newTestEnv(t, map[string]string{"K": "1,2,2,3"})
	assert.Equal(t, []float64{1, 2, 3}, e.GetNumbers("K"))
}

func TestGetNumbers_DefaultsAndNaN(t *testing.T) {
	t.Parallel()

	e := newTestEnv(t, map[string]string{"K": "5,junk"})

	got := e.GetNumbers("K", 0.5)
	assert.Len(t, got, 3)
	assert.Equal(t, 0.5, got[0])
	assert.Equal(t, float64(5), got[1])
	assert.True(t, math.IsNaN(got[2]))
}

func TestGetStrings(t *testing.T) {
	t.Parallel()

	e := newTestEnv(t, map[string]string{"K": "b,c"})
	assert.Equal(t, []string{"1", "true", "b", "c"}, e.GetStrings("K", 1, true))
}

func TestGetStringSet(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		seed map[string]string
		want []string
	}{
		{"sorted and deduped", map[string]string{"K": "b,a,a"}, []string{"a", "b"}},
		{"already sorted", map[string]string{"K": "a,b"}, []string{"a", "b"}},
		{"absent", nil, []string{}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			e := newTestEnv(t, tt.seed)
			assert.Equal(t, tt.want, e.GetStringSet("K"))
		})
	}
}

func TestGetNumber(t *testing.T) {
	t.Parallel()

	e := newTestEnv(t, map[string]string{
		"PORT":  "8080",
		"RATE":  "2.5",
		"EMPTY": "",
		"JUNK":  "not-a-number",
	})

	assert.Equal(t, float64(8080), e.GetNumber("PORT", 0))
	assert.Equal(t, 2.5, e.GetNumber("RATE", 0))
	assert.Equal(t, float64(99), e.GetNumber("ABSENT", 99))
	// present-but-empty short-circuits to zero, not the default
	assert.Equal(t, float64(0), e.GetNumber("EMPTY", 99))
	assert.True(t, math.IsNaN(e.GetNumber("JUNK", 99)))
}

func TestGetString(t *testing.T) {
	t.Parallel()

	e := newTestEnv(t, map[string]string{"NAME": "prod-1", "EMPTY": ""})

	assert.Equal(t, "prod-1", e.GetString("NAME", "fallback"))
	assert.Equal(t, "fallback", e.GetString("ABSENT", "fallback"))
	// present-but-empty is returned as stored
	assert.Empty(t, e.GetString("EMPTY", "fallback"))
}

func TestGetBool(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		seed map[string]string
		def  bool
		want bool
	}{
		{"literal false", map[string]string{"K": "false"}, true, false},
		{"literal true", map[string]string{"K": "true"}, false, true},
		{"truthy word", map[string]string{"K": "yes"}, false, true},
		{"truthy zero string", map[string]string{"K": "0"}, false, true},
		{"empty is false", map[string]string{"K": ""}, true, false},
		{"absent uses default false", nil, false, false},
		{"absent uses default true", nil, true, true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			e := newTestEnv(t, tt.seed)
			assert.Equal(t, tt.want, e.GetBool("K", tt.def))
		})
	}
}

func TestGetObject(t *testing.T) {
	t.Parallel()

	e := newTestEnv(t, map[string]string{
		"OBJ":   `{"host":"db","port":5432}`,
		"LIST":  `[1,2]`,
		"PLAIN": "just text",
		"EMPTY": "",
	})

	assert.Equal(t,
		map[string]any{"host": "db", "port": float64(5432)},
		e.GetObject("OBJ", nil))
	assert.Equal(t, []any{float64(1), float64(2)}, e.GetObject("LIST", nil))

	// invalid JSON falls back to the raw string
	assert.Equal(t, "just text", e.GetObject("PLAIN", nil))

	// absent and empty fall back to the default; nil default is an empty map
	assert.Equal(t, map[string]any{}, e.GetObject("ABSENT", nil))
	def := map[string]any{"a": 1}
	assert.Equal(t, def, e.GetObject("ABSENT", def))
	assert.Equal(t, def, e.GetObject("EMPTY", def))
}
