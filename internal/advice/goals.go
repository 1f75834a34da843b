package advice

import (
	"math"

	"github.com/google/uuid"

	"github.com/rpgo/wealth-planner/internal/domain"
	"github.com/rpgo/wealth-planner/pkg/decimal"
)

// Contribution shares of discretionary income suggested per goal kind.
const (
	EmergencyContributionShare = 0.35
	HighContributionShare      = 0.25
	OtherContributionShare     = 0.10
)

// LifeSegment buckets ages up to and including MaxAge.
type LifeSegment struct {
	MaxAge int
	Label  string
}

// GoalTemplate is a suggested goal whose target is a multiple of monthly income.
type GoalTemplate struct {
	Name       string
	Multiplier float64
	Priority   domain.Priority
}

// LifeSegments are in ascending order; the last one catches every older age.
var LifeSegments = []LifeSegment{
	{MaxAge: 25, Label: "early career"},
	{MaxAge: 35, Label: "stability"},
	{MaxAge: 50, Label: "expansion"},
	{MaxAge: 65, Label: "pre-retirement"},
	{MaxAge: math.MaxInt, Label: "legacy"},
}

// GoalLibrary holds the templates suggested for each life segment.
var GoalLibrary = map[string][]GoalTemplate{
	"early career": {
		{Name: "Emergency reserve", Multiplier: 6, Priority: domain.PriorityHigh},
		{Name: "Specialization or exchange program", Multiplier: 0.6, Priority: domain.PriorityMedium},
		{Name: "Private pension contribution", Multiplier: 1.2, Priority: domain.PriorityLow},
	},
	"stability": {
		{Name: "Home down payment", Multiplier: 12, Priority: domain.PriorityHigh},
		{Name: "Build the emergency reserve", Multiplier: 12, Priority: domain.PriorityHigh},
		{Name: "Continuing education", Multiplier: 0.8, Priority: domain.PriorityMedium},
	},
	"expansion": {
		{Name: "Children's education", Multiplier: 6, Priority: domain.PriorityHigh},
		{Name: "Family travel", Multiplier: 1.5, Priority: domain.PriorityMedium},
		{Name: "Increase pension contributions", Multiplier: 2.4, Priority: domain.PriorityHigh},
	},
	"pre-retirement": {
		{Name: "Debt payoff", Multiplier: 4, Priority: domain.PriorityHigh},
		{Name: "Passive income reserve", Multiplier: 8, Priority: domain.PriorityHigh},
		{Name: "Health plans and care", Multiplier: 3, Priority: domain.PriorityMedium},
	},
	"legacy": {
		{Name: "Estate planning", Multiplier: 12, Priority: domain.PriorityHigh},
		{Name: "Planned philanthropy", Multiplier: 2, Priority: domain.PriorityMedium},
		{Name: "Long-term care reserve", Multiplier: 6, Priority: domain.PriorityHigh},
	},
}

// GoalsAdvisor suggests goals from a household profile.
type GoalsAdvisor struct {
	NewID func() string
}

// NewGoalsAdvisor returns an advisor that assigns random UUIDs to suggestions.
func NewGoalsAdvisor() *GoalsAdvisor {
	return &GoalsAdvisor{NewID: uuid.NewString}
}

// RecommendGoals suggests goals with the default advisor.
func RecommendGoals(profile domain.HouseholdProfile) domain.RecommendedGoals {
	return NewGoalsAdvisor().Recommend(profile)
}

// SegmentForAge returns the label of the first segment whose MaxAge is not below age.
func SegmentForAge(age int) string {
	for _, s := range LifeSegments {
		if age <= s.MaxAge {
			return s.Label
		}
	}
	return LifeSegments[len(LifeSegments)-1].Label
}

// Recommend prepends an emergency goal to the segment's templates. Target horizons grow by
// three years per template, between two and fifteen years.
func (a *GoalsAdvisor) Recommend(profile domain.HouseholdProfile) domain.RecommendedGoals {
	income := math.Max(profile.MonthlyIncome, 0)
	expenses := math.Max(profile.MonthlyExpenses, 0)
	discretionary := math.Max(income-expenses, 0)
	segment := SegmentForAge(profile.Age)

	emergencyMonths := 6.0
	if profile.HouseholdMembers >= 3 {
		emergencyMonths = 9
	}

	templates := GoalLibrary[segment]
	goals := make([]domain.RecommendedGoal, 0, len(templates)+1)
	goals = append(goals, domain.RecommendedGoal{
		ID:                      a.id(),
		Name:                    "Protected emergency fund",
		Priority:                domain.PriorityHigh,
		TargetYears:             2,
		TargetAmount:            decimal.Cents(expenses * emergencyMonths),
		RecommendedContribution: decimal.Cents(discretionary * EmergencyContributionShare),
	})

	for i, t := range templates {
		share := OtherContributionShare
		if t.Priority == domain.PriorityHigh {
			share = HighContributionShare
		}
		goals = append(goals, domain.RecommendedGoal{
			ID:                      a.id(),
			Name:                    t.Name,
			Priority:                t.Priority,
			TargetYears:             min(15, max(2, i*3+3)),
			TargetAmount:            decimal.Cents(income * t.Multiplier),
			RecommendedContribution: decimal.Cents(discretionary * share),
		})
	}

	return domain.RecommendedGoals{
		Segment:             segment,
		DiscretionaryIncome: decimal.Cents(discretionary),
		Goals:               goals,
	}
}

// BuildCollaborativeGoals recommends goals for each partner and splits every contribution
// by the partner's declared number of partners, or by the number of partners given.
func (a *GoalsAdvisor) BuildCollaborativeGoals(partners []domain.Partner) []domain.CollaborativeGoals {
	out := make([]domain.CollaborativeGoals, 0, len(partners))
	for _, p := range partners {
		members := p.HouseholdMembers
		if members == 0 {
			members = 1
		}
		rec := a.Recommend(domain.HouseholdProfile{
			MonthlyIncome:    p.MonthlyIncome,
			MonthlyExpenses:  p.MonthlyExpenses,
			Age:              p.Age,
			HouseholdMembers: members,
		})

		split := p.PartnersCount
		if split == 0 {
			split = len(partners)
		}
		split = max(split, 1)

		for i := range rec.Goals {
			share := decimal.Cents(rec.Goals[i].RecommendedContribution / float64(split))
			rec.Goals[i].PartnerShare = &share
		}
		out = append(out, domain.CollaborativeGoals{
			PartnerName:      p.Name,
			PartnerEmail:     p.Email,
			RecommendedGoals: rec.Goals,
		})
	}
	return out
}

func (a *GoalsAdvisor) id() string {
	if a.NewID == nil {
		return uuid.NewString()
	}
	return a.NewID()
}
