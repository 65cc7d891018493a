package planning

import (
	"github.com/jplacht/prunplanner-go/internal/domain/building"
	"github.com/jplacht/prunplanner-go/internal/domain/material"
	"github.com/jplacht/prunplanner-go/internal/domain/workforce"
)

// DegradationDays is the linear depreciation horizon of building value.
const DegradationDays = 180

// EfficiencyElement is one named multiplier contributing to a
// building's total efficiency, reported for transparency.
type EfficiencyElement struct {
	Name   string
	Factor float64
}

// RecipeOption is one recipe a building could run, projected to full
// daily utilisation under the building's current efficiency. TimeMs is
// already adjusted by efficiency.
type RecipeOption struct {
	building.Recipe
	DailyRevenue  float64
	ROI           float64 // days to amortize construction; may be negative or infinite
	ProfitPerArea float64
}

// COGMInput is the cost of one input material per recipe run.
type COGMInput struct {
	Ticker    string
	Amount    float64
	CostUnit  float64
	CostTotal float64
}

// COGMOutput carries one output material's share of the recipe run
// cost, split evenly per output unit across all outputs.
type COGMOutput struct {
	Ticker      string
	Amount      float64
	CostPerUnit float64
	CostTotal   float64
}

// COGM is the cost-of-goods-manufactured breakdown of one recipe run:
// its share of daily degradation and workforce cost plus input costs.
type COGM struct {
	Runtime            float64 // efficiency-adjusted run time in ms
	RuntimeShare       float64 // fraction of one day one run occupies
	Efficiency         float64
	Degradation        float64 // the building's full daily degradation
	DegradationShare   float64
	WorkforceCostTotal float64 // the building's full daily workforce cost
	WorkforceCostShare float64
	InputCosts         []COGMInput
	InputTotal         float64
	Outputs            []COGMOutput
	TotalCost          float64
	OutputRevenue      float64
	TotalProfit        float64
}

// ProductionRecipe is one queued recipe of a building instance.
type ProductionRecipe struct {
	RecipeID   string
	Amount     float64 // batches per rotation
	DailyShare float64 // this recipe's share of the rotation time
	TimeMs     float64 // adjusted batch time: recipe time x amount / efficiency
	Recipe     building.Recipe
	COGM       *COGM
}

// ProductionBuilding is the derived production state of one building
// instance group. All monetary figures are positive magnitudes except
// DailyRevenue, which is a signed net.
type ProductionBuilding struct {
	Ticker                string
	Amount                int
	ActiveRecipes         []ProductionRecipe
	RecipeOptions         []RecipeOption
	TotalEfficiency       float64
	EfficiencyElements    []EfficiencyElement
	TotalBatchTime        float64
	ConstructionMaterials []material.IOMinimal
	ConstructionCost      float64 // per instance
	WorkforceMaterials    []material.IOMinimal
	WorkforceDailyCost    float64 // per instance
	DailyRevenue          float64
	Expertise             building.Expertise
}

// DegradationPerDay is the instance's daily linear value loss.
func (b *ProductionBuilding) DegradationPerDay() float64 {
	return b.ConstructionCost / DegradationDays
}

// ProductionResult aggregates all production buildings and their
// combined daily material flow.
type ProductionResult struct {
	Buildings  []ProductionBuilding
	MaterialIO []material.IOMinimal
}

// AreaResult is the permit-derived area budget of the plan.
type AreaResult struct {
	Permits   int
	AreaUsed  float64
	AreaTotal float64
	AreaLeft  float64
}

// ExpertElement is the allocation and production bonus of one
// expertise category.
type ExpertElement struct {
	Type   building.Expertise
	Amount int
	Bonus  float64
}

// ExpertResult maps every expertise category to its allocation.
type ExpertResult map[building.Expertise]ExpertElement

// InfrastructureResult maps every infrastructure type to its placed
// count.
type InfrastructureResult map[building.InfrastructureType]int

// InfrastructureCosts maps every infrastructure type to the
// construction cost of one unit on the plan's planet.
type InfrastructureCosts map[building.InfrastructureType]float64

// ConstructionBill is the construction material bill of one placed
// building type.
type ConstructionBill struct {
	Ticker    string
	Amount    int
	Materials []material.IOMinimal
}

// Overview condenses a plan into its headline financial figures.
type Overview struct {
	DailyCost             float64
	DailyProfit           float64
	TotalConstructionCost float64
	DailyDegradationCost  float64
	Profit                float64
	ROI                   float64 // days; may be negative or infinite
}

// Visitation estimates the logistics profile of the plan: daily cargo
// flow split by direction and the days of storage buffer. A plan with
// no material flow has an unbounded (infinite) buffer.
type Visitation struct {
	StorageCapacity   float64
	StorageFilled     float64
	DailyWeightImport float64
	DailyWeightExport float64
	DailyVolumeImport float64
	DailyVolumeExport float64
	DailyWeight       float64
	DailyVolume       float64
}

// Result is the complete derived state of one plan configuration. It is
// recomputed in full on every call and never mutated afterwards.
type Result struct {
	CorpHQ               bool
	COGC                 building.COGCProgram
	Workforce            workforce.Record
	Area                 AreaResult
	Infrastructure       InfrastructureResult
	Experts              ExpertResult
	Production           ProductionResult
	MaterialIO           []material.IO
	WorkforceMaterialIO  []material.IO
	ProductionMaterialIO []material.IO
	Profit               float64
	Cost                 float64
	Revenue              float64
	InfrastructureCosts  InfrastructureCosts
	ConstructionBills    []ConstructionBill
	Overview             Overview
	Visitation           Visitation
}
