package persistence

// BuildingModel represents the buildings table
type BuildingModel struct {
	Ticker      string  `gorm:"column:ticker;primaryKey"`
	Name        string  `gorm:"column:name;not null"`
	Type        string  `gorm:"column:type;not null"`
	AreaCost    float64 `gorm:"column:area_cost;not null"`
	Pioneers    float64 `gorm:"column:pioneers;not null;default:0"`
	Settlers    float64 `gorm:"column:settlers;not null;default:0"`
	Technicians float64 `gorm:"column:technicians;not null;default:0"`
	Engineers   float64 `gorm:"column:engineers;not null;default:0"`
	Scientists  float64 `gorm:"column:scientists;not null;default:0"`
	Expertise   string  `gorm:"column:expertise"`

	HabPioneers    float64 `gorm:"column:hab_pioneers;not null;default:0"`
	HabSettlers    float64 `gorm:"column:hab_settlers;not null;default:0"`
	HabTechnicians float64 `gorm:"column:hab_technicians;not null;default:0"`
	HabEngineers   float64 `gorm:"column:hab_engineers;not null;default:0"`
	HabScientists  float64 `gorm:"column:hab_scientists;not null;default:0"`

	Costs []BuildingCostModel `gorm:"foreignKey:BuildingTicker;references:Ticker;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

func (BuildingModel) TableName() string {
	return "buildings"
}

// BuildingCostModel represents the building_costs table, one row per
// construction material of a building
type BuildingCostModel struct {
	ID             int     `gorm:"column:id;primaryKey;autoIncrement"`
	BuildingTicker string  `gorm:"column:building_ticker;not null;index"`
	MaterialTicker string  `gorm:"column:material_ticker;not null"`
	Amount         float64 `gorm:"column:amount;not null"`
}

func (BuildingCostModel) TableName() string {
	return "building_costs"
}

// RecipeModel represents the recipes table
type RecipeModel struct {
	RecipeID       string  `gorm:"column:recipe_id;primaryKey"`
	BuildingTicker string  `gorm:"column:building_ticker;not null;index"`
	RecipeName     string  `gorm:"column:recipe_name;not null"`
	TimeMs         float64 `gorm:"column:time_ms;not null"`

	Materials []RecipeMaterialModel `gorm:"foreignKey:RecipeID;references:RecipeID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

func (RecipeModel) TableName() string {
	return "recipes"
}

// RecipeMaterialModel represents the recipe_materials table, one row
// per input or output material of a recipe
type RecipeMaterialModel struct {
	ID       int     `gorm:"column:id;primaryKey;autoIncrement"`
	RecipeID string  `gorm:"column:recipe_id;not null;index"`
	Ticker   string  `gorm:"column:ticker;not null"`
	Amount   float64 `gorm:"column:amount;not null"`
	Side     string  `gorm:"column:side;not null"` // "input" or "output"
}

func (RecipeMaterialModel) TableName() string {
	return "recipe_materials"
}

// MaterialModel represents the materials table
type MaterialModel struct {
	Ticker   string  `gorm:"column:ticker;primaryKey"`
	Name     string  `gorm:"column:name;not null"`
	Category string  `gorm:"column:category;not null"`
	Weight   float64 `gorm:"column:weight;not null"`
	Volume   float64 `gorm:"column:volume;not null"`
}

func (MaterialModel) TableName() string {
	return "materials"
}

// ExchangeModel represents the exchanges table, one row per material
// and exchange quote
type ExchangeModel struct {
	TickerID       string  `gorm:"column:ticker_id;primaryKey"` // e.g. "RAT.AI1"
	MaterialTicker string  `gorm:"column:material_ticker;not null;index"`
	ExchangeCode   string  `gorm:"column:exchange_code;not null"`
	Ask            float64 `gorm:"column:ask;not null;default:0"`
	Bid            float64 `gorm:"column:bid;not null;default:0"`
	PriceAverage   float64 `gorm:"column:price_average;not null;default:0"`
	Supply         float64 `gorm:"column:supply;not null;default:0"`
	Demand         float64 `gorm:"column:demand;not null;default:0"`
}

func (ExchangeModel) TableName() string {
	return "exchanges"
}

// PlanetModel represents the planets table
type PlanetModel struct {
	NaturalID   string  `gorm:"column:natural_id;primaryKey"`
	Name        string  `gorm:"column:name;not null"`
	Surface     bool    `gorm:"column:surface;not null"`
	Gravity     float64 `gorm:"column:gravity;not null"`
	Pressure    float64 `gorm:"column:pressure;not null"`
	Temperature float64 `gorm:"column:temperature;not null"`

	Resources []PlanetResourceModel `gorm:"foreignKey:PlanetNaturalID;references:NaturalID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

func (PlanetModel) TableName() string {
	return "planets"
}

// PlanetResourceModel represents the planet_resources table, one row
// per extractable deposit of a planet
type PlanetResourceModel struct {
	ID              int     `gorm:"column:id;primaryKey;autoIncrement"`
	PlanetNaturalID string  `gorm:"column:planet_natural_id;not null;index"`
	MaterialTicker  string  `gorm:"column:material_ticker;not null"`
	ResourceType    string  `gorm:"column:resource_type;not null"` // MINERAL, LIQUID or GASEOUS
	DailyExtraction float64 `gorm:"column:daily_extraction;not null"`
}

func (PlanetResourceModel) TableName() string {
	return "planet_resources"
}

// AllModels lists every model for schema migration.
func AllModels() []interface{} {
	return []interface{}{
		&BuildingModel{},
		&BuildingCostModel{},
		&RecipeModel{},
		&RecipeMaterialModel{},
		&MaterialModel{},
		&ExchangeModel{},
		&PlanetModel{},
		&PlanetResourceModel{},
	}
}
