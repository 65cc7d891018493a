package building_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jplacht/prunplanner-go/internal/domain/building"
	"github.com/jplacht/prunplanner-go/internal/domain/workforce"
)

func TestExpertBonus(t *testing.T) {
	tests := []struct {
		amount   int
		expected float64
	}{
		{-1, 0},
		{0, 0},
		{1, 0.0306},
		{2, 0.0696},
		{3, 0.1248},
		{4, 0.1974},
		{5, 0.2840},
		{9, 0.2840}, // clamped to the category limit
	}

	for _, tt := range tests {
		assert.InDelta(t, tt.expected, building.ExpertBonus(tt.amount), 1e-9)
	}
}

func TestCOGCProgramMatches(t *testing.T) {
	program := building.COGCProgram(building.Metallurgy)

	assert.True(t, program.Matches(building.Metallurgy))
	assert.False(t, program.Matches(building.Agriculture))
	assert.False(t, building.COGCNone.Matches(building.Metallurgy))
}

func TestRecipeOutputAmountTotal(t *testing.T) {
	recipe := building.Recipe{
		Outputs: []building.RecipeMaterial{
			{Ticker: "SI", Amount: 1},
			{Ticker: "SIO", Amount: 2},
		},
	}

	assert.Equal(t, 3.0, recipe.OutputAmountTotal())
	assert.Equal(t, 0.0, (&building.Recipe{}).OutputAmountTotal())
}

func TestHabitationCapacity(t *testing.T) {
	hab := building.Habitation{Pioneer: 75, Settler: 75}

	assert.Equal(t, 75.0, hab.Capacity(workforce.Pioneer))
	assert.Equal(t, 75.0, hab.Capacity(workforce.Settler))
	assert.Equal(t, 0.0, hab.Capacity(workforce.Scientist))
}

func TestBuildingWorkforce(t *testing.T) {
	b := building.Building{Pioneers: 60, Settlers: 20}

	assert.Equal(t, 60.0, b.WorkforceDemand(workforce.Pioneer))
	assert.Equal(t, 20.0, b.WorkforceDemand(workforce.Settler))
	assert.Equal(t, 80.0, b.TotalWorkforce())
}

func TestIsInfrastructureTicker(t *testing.T) {
	assert.True(t, building.IsInfrastructureTicker("HB1"))
	assert.True(t, building.IsInfrastructureTicker("STO"))
	assert.False(t, building.IsInfrastructureTicker("CM"))
	assert.False(t, building.IsInfrastructureTicker("EXT"))
}
