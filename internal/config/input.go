package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/rpgo/wealth-planner/internal/calculation"
	"github.com/rpgo/wealth-planner/internal/domain"
)

// ErrInvalidInput marks every rejection of a simulation input at the boundary.
var ErrInvalidInput = errors.New("invalid simulation input")

// Default tax rates and bonus shapes applied when the input leaves them out. Stress
// magnitudes default to the calculation package's shock constants.
const (
	DefaultIncomeTaxRate     = 12
	DefaultInvestmentTaxRate = 15
	profitShareIncomeShare   = 0.6
)

// InputParser handles parsing and boundary validation of simulation inputs
type InputParser struct {
	validate *validator.Validate
}

// NewInputParser creates a new input parser. Validation errors report JSON field names.
func NewInputParser() *InputParser {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	return &InputParser{validate: v}
}

// LoadFromFile loads a simulation input from a YAML or JSON file
func (ip *InputParser) LoadFromFile(filename string) (*domain.SimulationInput, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	format := "yaml"
	if strings.EqualFold(filepath.Ext(filename), ".json") {
		format = "json"
	}
	return ip.Parse(data, format)
}

// Parse decodes data in the given format ("json" or "yaml"), applies defaults and validates.
func (ip *InputParser) Parse(data []byte, format string) (*domain.SimulationInput, error) {
	var in domain.SimulationInput
	switch strings.ToLower(format) {
	case "json":
		if err := json.Unmarshal(data, &in); err != nil {
			return nil, fmt.Errorf("failed to parse JSON: %w", err)
		}
	case "yaml", "yml":
		if err := yaml.Unmarshal(data, &in); err != nil {
			return nil, fmt.Errorf("failed to parse YAML: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported input format %q", format)
	}

	if err := ip.Prepare(&in); err != nil {
		return nil, err
	}
	return &in, nil
}

// Prepare applies defaults and validates an input decoded elsewhere, e.g. from an HTTP body.
func (ip *InputParser) Prepare(in *domain.SimulationInput) error {
	ApplyDefaults(in)
	if err := ip.Validate(in); err != nil {
		return fmt.Errorf("input validation failed: %w", err)
	}
	return nil
}

// ApplyDefaults fills in taxes, annual bonuses and stress-test magnitudes when absent.
// Bonuses default to a 13th salary in December and a profit share in March.
func ApplyDefaults(in *domain.SimulationInput) {
	if in.Taxes == nil {
		in.Taxes = &domain.Taxes{
			IncomeTaxRate:     DefaultIncomeTaxRate,
			InvestmentTaxRate: DefaultInvestmentTaxRate,
		}
	}
	if len(in.AnnualBonuses) == 0 {
		in.AnnualBonuses = []domain.AnnualBonus{
			{ID: "13th-salary", Label: "13th salary", Month: 12, Amount: in.MonthlyIncome},
			{ID: "profit-share", Label: "Profit share", Month: 3, Amount: in.MonthlyIncome * profitShareIncomeShare},
		}
	}
	if in.StressTests == nil {
		in.StressTests = &domain.StressTestSettings{
			MarketCrashDropPct: calculation.DefaultMarketCrashDropPct,
			InflationSpikePct:  calculation.DefaultInflationSpikePct,
		}
	}
}

// Validate checks the legal input domain. Every returned error wraps ErrInvalidInput, and
// struct-tag failures also wrap validator.ValidationErrors.
func (ip *InputParser) Validate(in *domain.SimulationInput) error {
	if err := ip.validate.Struct(in); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	seen := make(map[string]bool, len(in.Goals))
	for _, g := range in.Goals {
		if seen[g.ID] {
			return fmt.Errorf("%w: duplicate goal id %q", ErrInvalidInput, g.ID)
		}
		seen[g.ID] = true
	}
	return nil
}

// ValidateStruct runs the struct-tag rules on any request payload.
func (ip *InputParser) ValidateStruct(v any) error {
	if err := ip.validate.Struct(v); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return nil
}

// CreateExampleInput returns a complete, valid input for a dual-income household.
func (ip *InputParser) CreateExampleInput() *domain.SimulationInput {
	return &domain.SimulationInput{
		MonthlyIncome:          9000,
		MonthlyExpenses:        5500,
		CurrentSavings:         18000,
		ExpectedReturnRate:     8,
		InflationRate:          4,
		AdditionalContribution: 500,
		RiskTolerance:          5,
		Goals: []domain.Goal{
			{ID: "emergency-fund", Name: "Emergency fund", Amount: 40000, TargetYears: 3, Priority: domain.PriorityHigh},
			{ID: "retirement", Name: "Retirement top-up", Amount: 300000, TargetYears: 15, Priority: domain.PriorityMedium},
		},
		Taxes: &domain.Taxes{IncomeTaxRate: 12, InvestmentTaxRate: 15},
		AnnualBonuses: []domain.AnnualBonus{
			{ID: "13th-salary", Label: "13th salary", Month: 12, Amount: 9000},
			{ID: "profit-share", Label: "Profit share", Month: 3, Amount: 4000},
		},
		ExpensesBreakdown: []domain.ExpenseItem{
			{Category: "Housing", Amount: 2200},
			{Category: "Food", Amount: 1100},
			{Category: "Transport", Amount: 600},
			{Category: "Health", Amount: 450},
			{Category: "Leisure", Amount: 650},
			{Category: "Utilities", Amount: 500},
		},
		Scenario: domain.ScenarioSettings{
			IncomeGrowthRate:   3,
			ExpenseGrowthRate:  2,
			JobLossMonths:      2,
			UnexpectedExpense:  8000,
			OneTimeExtraIncome: 5000,
			LifestyleInflation: 1,
		},
		StressTests: &domain.StressTestSettings{MarketCrashDropPct: 20, InflationSpikePct: 5},
	}
}

// SaveExampleInput writes the example input as YAML.
func (ip *InputParser) SaveExampleInput(filename string) error {
	data, err := yaml.Marshal(ip.CreateExampleInput())
	if err != nil {
		return fmt.Errorf("failed to marshal example input: %w", err)
	}
	if err := os.WriteFile(filename, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", filename, err)
	}
	return nil
}
