package domain

// Advice is a single textual recommendation with the machine-derived reason it fired.
type Advice struct {
	ID          string `json:"id" yaml:"id"`
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
	Rationale   string `json:"rationale" yaml:"rationale"`
}

// ExpenseCut suggests trimming a spending category.
type ExpenseCut struct {
	Category               string  `json:"category" yaml:"category"`
	Title                  string  `json:"title" yaml:"title"`
	Description            string  `json:"description" yaml:"description"`
	Rationale              string  `json:"rationale" yaml:"rationale"`
	EstimatedMonthlyImpact float64 `json:"estimatedMonthlyImpact" yaml:"estimated_monthly_impact"`
	Difficulty             string  `json:"difficulty" yaml:"difficulty"`
}

// StrategicMove is a medium-term action.
type StrategicMove struct {
	ID          string `json:"id" yaml:"id"`
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
	Rationale   string `json:"rationale" yaml:"rationale"`
	TimeHorizon string `json:"timeHorizon" yaml:"time_horizon"`
	Impact      string `json:"impact" yaml:"impact"`
}

// RiskMitigation frames one stress-test outcome as an action.
type RiskMitigation struct {
	StressTestID string `json:"stressTestId" yaml:"stress_test_id"`
	Scenario     string `json:"scenario" yaml:"scenario"`
	Insight      string `json:"insight" yaml:"insight"`
	Action       string `json:"action" yaml:"action"`
}

// Persona is the nearest-centroid classification of the household.
type Persona struct {
	ID          string    `json:"id" yaml:"id"`
	Label       string    `json:"label" yaml:"label"`
	Description string    `json:"description" yaml:"description"`
	Distance    float64   `json:"distance" yaml:"distance"`
	Features    []float64 `json:"features" yaml:"features"`
}

// CategoryDeviation compares a canonical category's share of spending to its benchmark.
type CategoryDeviation struct {
	Category       string  `json:"category" yaml:"category"`
	Amount         float64 `json:"amount" yaml:"amount"`
	ActualShare    float64 `json:"actualShare" yaml:"actual_share"`
	BenchmarkShare float64 `json:"benchmarkShare" yaml:"benchmark_share"`
	Delta          float64 `json:"delta" yaml:"delta"`
}

// BenchmarkAnalysis is the result of comparing spending with an income-bracket profile.
type BenchmarkAnalysis struct {
	Profile            string              `json:"profile" yaml:"profile"`
	IncomeRange        [2]float64          `json:"incomeRange" yaml:"income_range"`
	TotalExpenses      float64             `json:"totalExpenses" yaml:"total_expenses"`
	Deviations         []CategoryDeviation `json:"deviations" yaml:"deviations"`
	DiscretionaryRatio float64             `json:"discretionaryRatio" yaml:"discretionary_ratio"`
}

// KPIs are the headline indicators shown next to the advice.
type KPIs struct {
	SavingsRate                 float64 `json:"savingsRate" yaml:"savings_rate"`
	RunwayMonths                float64 `json:"runwayMonths" yaml:"runway_months"`
	RequiredMonthlyContribution float64 `json:"requiredMonthlyContribution" yaml:"required_monthly_contribution"`
	FinancialIndependenceIndex  float64 `json:"financialIndependenceIndex" yaml:"financial_independence_index"`
	ShortfallProbability        float64 `json:"shortfallProbability" yaml:"shortfall_probability"`
	DiscretionaryRatio          float64 `json:"discretionaryRatio" yaml:"discretionary_ratio"`
	GoalsAchieved               int     `json:"goalsAchieved" yaml:"goals_achieved"`
	TopGoalAchieved             bool    `json:"topGoalAchieved" yaml:"top_goal_achieved"`
}

// Recommendations bundles everything the recommendation engine emits.
type Recommendations struct {
	QuickWins      []Advice          `json:"quickWins" yaml:"quick_wins"`
	ExpenseCuts    []ExpenseCut      `json:"expenseCuts" yaml:"expense_cuts"`
	StrategicMoves []StrategicMove   `json:"strategicMoves" yaml:"strategic_moves"`
	RiskMitigation []RiskMitigation  `json:"riskMitigation" yaml:"risk_mitigation"`
	Persona        Persona           `json:"persona" yaml:"persona"`
	Benchmark      BenchmarkAnalysis `json:"benchmark" yaml:"benchmark"`
	KPIs           KPIs              `json:"kpis" yaml:"kpis"`
}

// HouseholdProfile feeds the recommended-goals advisor.
type HouseholdProfile struct {
	MonthlyIncome    float64 `json:"monthlyIncome" yaml:"monthly_income" validate:"gte=0"`
	MonthlyExpenses  float64 `json:"monthlyExpenses" yaml:"monthly_expenses" validate:"gte=0"`
	Age              int     `json:"age" yaml:"age" validate:"gte=0,lte=120"`
	HouseholdMembers int     `json:"householdMembers" yaml:"household_members" validate:"gte=0"`
}

// RecommendedGoal is a suggested goal with a suggested monthly contribution.
type RecommendedGoal struct {
	ID                      string   `json:"id" yaml:"id"`
	Name                    string   `json:"name" yaml:"name"`
	Priority                Priority `json:"priority" yaml:"priority"`
	TargetYears             int      `json:"targetYears" yaml:"target_years"`
	TargetAmount            float64  `json:"targetAmount" yaml:"target_amount"`
	RecommendedContribution float64  `json:"recommendedContribution" yaml:"recommended_contribution"`
	PartnerShare            *float64 `json:"partnerShare,omitempty" yaml:"partner_share,omitempty"`
}

// AsGoal converts the suggestion into a simulation goal.
func (rg RecommendedGoal) AsGoal() Goal {
	return Goal{ID: rg.ID, Name: rg.Name, Amount: rg.TargetAmount, TargetYears: rg.TargetYears, Priority: rg.Priority}
}

// RecommendedGoals is the advisor's output.
type RecommendedGoals struct {
	Segment             string            `json:"segment" yaml:"segment"`
	DiscretionaryIncome float64           `json:"discretionaryIncome" yaml:"discretionary_income"`
	Goals               []RecommendedGoal `json:"goals" yaml:"goals"`
}

// Partner is one member of a household planning together.
type Partner struct {
	Name             string  `json:"name" yaml:"name" validate:"required"`
	Email            string  `json:"email" yaml:"email" validate:"required,email"`
	Age              int     `json:"age" yaml:"age" validate:"gte=18,lte=90"`
	MonthlyIncome    float64 `json:"monthlyIncome" yaml:"monthly_income" validate:"gte=0"`
	MonthlyExpenses  float64 `json:"monthlyExpenses" yaml:"monthly_expenses" validate:"gte=0"`
	HouseholdMembers int     `json:"householdMembers,omitempty" yaml:"household_members,omitempty" validate:"omitempty,gte=1"`
	PartnersCount    int     `json:"partnersCount,omitempty" yaml:"partners_count,omitempty" validate:"omitempty,gte=1"`
}

// CollaborativeGoals are one partner's recommended goals with their share of contributions.
type CollaborativeGoals struct {
	PartnerName      string            `json:"partnerName" yaml:"partner_name"`
	PartnerEmail     string            `json:"partnerEmail" yaml:"partner_email"`
	RecommendedGoals []RecommendedGoal `json:"recommendedGoals" yaml:"recommended_goals"`
}

// RegimeFigures holds one number per regime.
type RegimeFigures struct {
	Baseline    float64 `json:"baseline" yaml:"baseline"`
	Optimistic  float64 `json:"optimistic" yaml:"optimistic"`
	Pessimistic float64 `json:"pessimistic" yaml:"pessimistic"`
}

// ComparativeReport contrasts the three regimes.
type ComparativeReport struct {
	FinalBalances       RegimeFigures `json:"finalBalances" yaml:"final_balances"`
	TotalContributions  RegimeFigures `json:"totalContributions" yaml:"total_contributions"`
	GrowthDifferentials struct {
		OptimisticVsBaseline  float64 `json:"optimisticVsBaseline" yaml:"optimistic_vs_baseline"`
		PessimisticVsBaseline float64 `json:"pessimisticVsBaseline" yaml:"pessimistic_vs_baseline"`
	} `json:"growthDifferentials" yaml:"growth_differentials"`
}
