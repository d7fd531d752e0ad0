package entity

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStateStrings(t *testing.T) {
	assert.Equal(t, "view", EditingStateView.String())
	assert.Equal(t, "editing", EditingStateEditing.String())
	assert.Equal(t, "unknown", EditingState(42).String())

	assert.Equal(t, "loading", LoadingStateLoading.String())
	assert.Equal(t, "not_loading", LoadingStateNotLoading.String())
	assert.Equal(t, "unknown", LoadingState(-1).String())

	assert.Equal(t, "prev", NavigationButtonPrev.String())
	assert.Equal(t, "next", NavigationButtonNext.String())
}

func TestAddressBarState_ButtonEnabled(t *testing.T) {
	s := AddressBarState{PrevEnabled: true}
	assert.True(t, s.ButtonEnabled(NavigationButtonPrev))
	assert.False(t, s.ButtonEnabled(NavigationButtonNext))
	assert.False(t, s.ButtonEnabled(NavigationButton(7)))
}

func TestNewLoadingProgress_Clamps(t *testing.T) {
	tests := []struct {
		name  string
		input float64
		want  float64
	}{
		{"below range", -0.5, 0},
		{"zero", 0, 0},
		{"inside range", 0.42, 0.42},
		{"max", 1, 1},
		{"above range", 3, 1},
		{"nan", math.NaN(), 0},
		{"positive infinity", math.Inf(1), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewLoadingProgress(tt.input).Float64())
		})
	}
}

func TestLoadingProgress_Helpers(t *testing.T) {
	assert.Equal(t, 45, NewLoadingProgress(0.45).Percentage())
	assert.Equal(t, 100, NewLoadingProgress(2).Percentage())
	assert.True(t, NewLoadingProgress(1).IsComplete())
	assert.False(t, NewLoadingProgress(0.99).IsComplete())
}

func TestResolution_IsSearch(t *testing.T) {
	assert.True(t, Resolution{Kind: ResolutionSearch}.IsSearch())
	assert.True(t, Resolution{Kind: ResolutionShortcut}.IsSearch())
	assert.False(t, Resolution{Kind: ResolutionNavigate}.IsSearch())
	assert.False(t, Resolution{Kind: ResolutionMainPage}.IsSearch())
}
