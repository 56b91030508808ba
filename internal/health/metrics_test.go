package health

import (
	"testing"

	"fitlink/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculate(t *testing.T) {
	tests := []struct {
		name            string
		in              Input
		wantBMI         float64
		wantIdealWeight float64
		wantBMR         float64
		wantTDEE        float64
	}{
		{
			name: "male moderate",
			in: Input{
				Height: 180, Weight: 75, Age: 30,
				Gender: models.GenderMale, ActivityLevel: models.ActivityModerate,
			},
			wantBMI:         23.15,
			wantIdealWeight: 77.76,
			wantBMR:         1730,
			wantTDEE:        2681.5,
		},
		{
			name: "female sedentary",
			in: Input{
				Height: 165, Weight: 60, Age: 25,
				Gender: models.GenderFemale, ActivityLevel: models.ActivitySedentary,
			},
			wantBMI:         22.04,
			wantIdealWeight: 56.76,
			wantBMR:         1345.25,
			wantTDEE:        1614.3,
		},
		{
			name: "other athlete",
			in: Input{
				Height: 175, Weight: 80, Age: 40,
				Gender: models.GenderOther, ActivityLevel: models.ActivityAthlete,
			},
			wantBMI:         26.12,
			wantIdealWeight: 68.94,
			wantBMR:         1532.75,
			wantTDEE:        2912.23,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Calculate(tt.in)
			require.NoError(t, err)
			assert.InDelta(t, tt.wantBMI, Round2(got.BMI), 1e-9)
			assert.InDelta(t, tt.wantIdealWeight, Round2(got.IdealWeight), 1e-9)
			assert.InDelta(t, tt.wantBMR, Round2(got.MetabolicRate), 1e-9)
			assert.InDelta(t, tt.wantTDEE, Round2(got.TDEE), 1e-9)
		})
	}
}

func TestCalculate_OtherUsesFemaleBMRConstant(t *testing.T) {
	base := Input{Height: 170, Weight: 70, Age: 35, ActivityLevel: models.ActivityLight}

	female := base
	female.Gender = models.GenderFemale
	other := base
	other.Gender = models.GenderOther

	fm, err := Calculate(female)
	require.NoError(t, err)
	om, err := Calculate(other)
	require.NoError(t, err)

	assert.Equal(t, fm.MetabolicRate, om.MetabolicRate)
	// Ideal weight still branches three ways.
	assert.NotEqual(t, fm.IdealWeight, om.IdealWeight)
}

func TestCalculate_TDEEScalesWithActivity(t *testing.T) {
	in := Input{Height: 180, Weight: 75, Age: 30, Gender: models.GenderMale}

	var prev float64
	for _, level := range []models.ActivityLevel{
		models.ActivitySedentary, models.ActivityLight, models.ActivityModerate,
		models.ActivityHeavy, models.ActivityAthlete,
	} {
		in.ActivityLevel = level
		got, err := Calculate(in)
		require.NoError(t, err)
		assert.Greater(t, got.TDEE, prev, "tdee should grow with activity level %s", level)
		assert.InDelta(t, got.MetabolicRate*activityMultipliers[level], got.TDEE, 1e-9)
		prev = got.TDEE
	}
}

func TestCalculate_Validation(t *testing.T) {
	valid := Input{Height: 180, Weight: 75, Age: 30, Gender: models.GenderMale, ActivityLevel: models.ActivityModerate}

	tests := []struct {
		name   string
		mutate func(*Input)
	}{
		{"zero height", func(in *Input) { in.Height = 0 }},
		{"negative weight", func(in *Input) { in.Weight = -1 }},
		{"zero age", func(in *Input) { in.Age = 0 }},
		{"unknown gender", func(in *Input) { in.Gender = "robot" }},
		{"unknown activity level", func(in *Input) { in.ActivityLevel = "immobile" }},
		{"missing gender", func(in *Input) { in.Gender = "" }},
		{"missing activity level", func(in *Input) { in.ActivityLevel = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := valid
			tt.mutate(&in)
			_, err := Calculate(in)
			require.Error(t, err)
			assert.True(t, models.IsCode(err, "VALIDATION_ERROR"))
		})
	}
}

func TestCalorieTargets(t *testing.T) {
	maintenance, cut, bulk := CalorieTargets(2681.5)
	assert.Equal(t, 2682, maintenance)
	assert.Equal(t, 2280, cut)
	assert.Equal(t, 3084, bulk)
	assert.Less(t, cut, maintenance)
	assert.Greater(t, bulk, maintenance)
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 23.15, Round2(23.148148148))
	assert.Equal(t, 23.14, Round2(23.144999))
	assert.Equal(t, -1.5, Round2(-1.499))
}
