package output

import (
	"github.com/beevik/etree"
)

// XMLFormatter renders the regime summaries, goals, stress tests and advice as XML.
type XMLFormatter struct{}

func (x XMLFormatter) Name() string      { return "xml" }
func (x XMLFormatter) Extension() string { return "xml" }

func (x XMLFormatter) Format(report *Report) ([]byte, error) {
	if err := report.check(); err != nil {
		return nil, err
	}
	sim := report.Simulation

	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	root := doc.CreateElement("WealthReport")

	assumptions := root.CreateElement("Assumptions")
	for _, a := range GenerateAssumptions(report.Input) {
		assumptions.CreateElement("Assumption").SetText(a)
	}

	s := sim.Summary
	summary := root.CreateElement("Summary")
	summary.CreateAttr("savingsRate", fixed(s.SavingsRate))
	summary.CreateAttr("emergencyFundTarget", fixed(s.EmergencyFundTarget))
	summary.CreateAttr("emergencyFundGap", fixed(s.EmergencyFundGap))
	summary.CreateAttr("emergencyFundCoverage", fixed(s.EmergencyFundCoverage))
	summary.CreateAttr("financialIndependenceIndex", fixed(s.FinancialIndependenceIndex))
	summary.CreateAttr("shortfallProbability", fixed(s.ShortfallProbability))
	summary.CreateAttr("monteCarloIterations", intToString(s.MonteCarloIterations))

	scenarios := root.CreateElement("Scenarios")
	for _, sc := range orderedScenarios(sim) {
		el := scenarios.CreateElement("Scenario")
		el.CreateAttr("id", sc.ID)
		el.CreateAttr("label", sc.Label)
		el.CreateElement("FinalBalance").SetText(fixed(sc.Summary.FinalBalance))
		el.CreateElement("FinalRealBalance").SetText(fixed(sc.Summary.FinalRealBalance))
		el.CreateElement("TotalContributed").SetText(fixed(sc.Summary.TotalContributed))
		el.CreateElement("TotalReturns").SetText(fixed(sc.Summary.TotalReturns))
		goals := el.CreateElement("Goals")
		goals.CreateAttr("achieved", intToString(sc.Summary.GoalsAchievedCount))
		for _, g := range sc.Summary.Goals {
			ge := goals.CreateElement("Goal")
			ge.CreateAttr("id", g.ID)
			ge.CreateAttr("priority", string(g.Priority))
			ge.CreateAttr("achieved", boolToString(g.Achieved))
			ge.CreateAttr("shortfall", fixed(g.Shortfall))
			ge.SetText(g.Name)
		}
	}

	stress := root.CreateElement("StressTests")
	for _, st := range sim.StressTests {
		el := stress.CreateElement("StressTest")
		el.CreateAttr("id", st.ID)
		el.CreateAttr("severity", fixed(st.Severity))
		el.CreateAttr("goalStillViable", boolToString(st.GoalStillViable))
		el.SetText(fixed(st.ShockedValue()))
	}

	if rec := report.Recommendations; rec != nil {
		advice := root.CreateElement("Recommendations")
		advice.CreateAttr("persona", rec.Persona.ID)
		for _, a := range rec.QuickWins {
			el := advice.CreateElement("QuickWin")
			el.CreateAttr("id", a.ID)
			el.SetText(a.Title)
		}
		for _, cut := range rec.ExpenseCuts {
			el := advice.CreateElement("ExpenseCut")
			el.CreateAttr("category", cut.Category)
			el.CreateAttr("monthlyImpact", fixed(cut.EstimatedMonthlyImpact))
			el.SetText(cut.Title)
		}
		for _, m := range rec.StrategicMoves {
			el := advice.CreateElement("StrategicMove")
			el.CreateAttr("id", m.ID)
			el.SetText(m.Title)
		}
	}

	doc.Indent(2)
	return doc.WriteToBytes()
}
