package ai

// Evaluator scoring weights. Values are additive: evaluators sum the
// applicable bonuses for a candidate and the difficulty layer perturbs the
// ranked result.
const (
	CascadeBase        = 1500
	CascadeUnlockBonus = 500
	CascadeMaxUnlocks  = 2

	MoveCompletionValue      = 1000
	DisruptionBase           = 400
	DisruptionProgressBonus  = 200
	DisruptionCompletesBonus = 600
	DisruptionMatchBonus     = 150
	SetupProgressBonus       = 100
	MatchingBonus            = 50
	SplitBase                = 150
	NewStackMoveBase         = 100
	ConsolidationBonus       = 25

	PlayCompletionValue   = 1000
	BlockCriticalValue    = 800
	BlockImportantValue   = 400
	BlockOptionalValue    = 200
	BuildTwoValue         = 500
	BuildOneValue         = 300
	BuildBaseValue        = 100
	NewStackPriorityValue = 150
	NewStackBaseValue     = 100

	NominationCompletesValue = 1000
	NominationBlockValue     = 800
	SupportBonus             = 25
	WildKindBonus            = 50
	UniversalKindBonus       = 25

	WildConservationPenalty = 500

	HandRiskSevere   = 300
	HandRiskHigh     = 150
	HandRiskModerate = 75
	HandRiskLow      = 25
)
