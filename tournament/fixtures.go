package tournament

// Fixture is one scheduled game between two bots with assigned colors.
type Fixture struct {
	Round int
	White string
	Black string
}

// Fixtures enumerates every ordered pair of distinct ids, so each unordered
// pair meets exactly twice, once with each color assignment. Self-play is
// excluded. Enumeration order follows the id order given.
func Fixtures(ids []string) []Fixture {
	var fixtures []Fixture
	for _, white := range ids {
		for _, black := range ids {
			if white == black {
				continue
			}
			fixtures = append(fixtures, Fixture{Round: 1, White: white, Black: black})
		}
	}
	return fixtures
}
