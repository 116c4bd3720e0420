package match

import (
	"regexp"
	"strconv"
)

var salaryNumber = regexp.MustCompile(`\d+`)

// SalaryNumber pulls the first integer out of a free-text salary range
// ("₹6-10 LPA" -> 6). Missing or unparseable input yields 0, which sorts
// last under descending salary order.
func SalaryNumber(salaryRange string) int {
	m := salaryNumber.FindString(salaryRange)
	if m == "" {
		return 0
	}
	n, err := strconv.Atoi(m)
	if err != nil {
		return 0
	}
	return n
}
