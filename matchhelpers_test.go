package rex

// @generated from rex_test.go

//go:generate go run scripts/gen_matchhelpers.go -- rex_test.go matchhelpers_test.go

func withPatternCase(pattern string) func(matchCase) matchCase {
	return func(c matchCase) matchCase {
		return c.withPattern(pattern)
	}
}

func withInputCase(input string) func(matchCase) matchCase {
	return func(c matchCase) matchCase {
		return c.withInput(input)
	}
}

func expectRangeCase(start int, end int) func(matchCase) matchCase {
	return func(c matchCase) matchCase {
		return c.expectRange(start, end)
	}
}
