package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPercentage(t *testing.T) {
	tests := []struct {
		name    string
		present int64
		total   int64
		want    float64
	}{
		{"penyebut nol aman", 0, 0, 0.0},
		{"hadir penuh", 20, 20, 100.0},
		{"setengah", 10, 20, 50.0},
		{"dibulatkan dua desimal", 2, 3, 66.67},
		{"pembulatan ke bawah", 1, 3, 33.33},
		{"nol hadir", 0, 15, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Percentage(tt.present, tt.total))
		})
	}
}
