package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		seconds  int
		expected string
	}{
		{0, "0:00"},
		{5, "0:05"},
		{59, "0:59"},
		{60, "1:00"},
		{65, "1:05"},
		{125, "2:05"},
		{599, "9:59"},
		{600, "10:00"},
		{3600, "60:00"},
		{-30, "0:00"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatDuration(tt.seconds))
		})
	}
}

func TestTrackJSON(t *testing.T) {
	track := Track{
		ID:       1,
		Title:    "A",
		Artist:   "B",
		Duration: "2:05",
		Cover:    "x.jpg",
		Preview:  "p.mp3",
	}

	data, err := json.Marshal(track)
	assert.NoError(t, err)
	assert.JSONEq(t, `{"id":1,"title":"A","artist":"B","duration":"2:05","cover":"x.jpg","preview":"p.mp3"}`, string(data))

	// Preview is optional
	track.Preview = ""
	data, err = json.Marshal(track)
	assert.NoError(t, err)
	assert.NotContains(t, string(data), "preview")
}

func TestFindTrack(t *testing.T) {
	tracks := []Track{
		{ID: 3, Title: "Three"},
		{ID: 7, Title: "Seven"},
	}

	found, ok := FindTrack(tracks, 7)
	assert.True(t, ok)
	assert.Equal(t, "Seven", found.Title)

	_, ok = FindTrack(tracks, 42)
	assert.False(t, ok)

	_, ok = FindTrack(nil, 3)
	assert.False(t, ok)
}
