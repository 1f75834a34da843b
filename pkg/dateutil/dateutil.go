package dateutil

const monthsInYear = 12

// MonthOfYear maps a 1-based projection month onto a calendar month (1-12),
// assuming the projection starts in January.
func MonthOfYear(projectionMonth int) int {
	if projectionMonth < 1 {
		return 1
	}
	return (projectionMonth-1)%monthsInYear + 1
}

// ProjectionYear returns the 1-based projection year a 1-based month falls in.
func ProjectionYear(projectionMonth int) int {
	if projectionMonth < 1 {
		return 1
	}
	return (projectionMonth + monthsInYear - 1) / monthsInYear
}

// IsYearEnd reports whether a 1-based projection month closes a projection year.
func IsYearEnd(projectionMonth int) bool {
	return projectionMonth > 0 && projectionMonth%monthsInYear == 0
}

// YearsToMonths converts whole years into projection months.
func YearsToMonths(years int) int { return years * monthsInYear }
