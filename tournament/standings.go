package tournament

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"

	"arena/game"
)

// Standing is one bot's accumulated tournament record.
type Standing struct {
	ID     string
	Games  int
	Wins   int
	Losses int
	Draws  int
	Points float64
}

// Standings accumulates results as games finish, in any order. A win is
// worth 1 point, a draw 0.5. All updates go through one mutex so that both
// sides of a result land together.
type Standings struct {
	mu    sync.Mutex
	ids   []string
	order map[string]int
	table map[string]*Standing
}

func NewStandings(ids []string) *Standings {
	s := &Standings{
		ids:   ids,
		order: make(map[string]int, len(ids)),
		table: make(map[string]*Standing, len(ids)),
	}
	for i, id := range ids {
		s.order[id] = i
		s.table[id] = &Standing{ID: id}
	}
	return s
}

// Record folds one result into the table, updating both involved bots as a
// unit.
func (s *Standings) Record(r game.Result) {
	s.mu.Lock()
	defer s.mu.Unlock()

	white, black := s.table[r.White], s.table[r.Black]
	if white == nil || black == nil {
		log.Error().Str("white", r.White).Str("black", r.Black).Msg("result references an unknown bot, dropped")
		return
	}
	white.Games++
	black.Games++
	switch r.Outcome {
	case game.WhiteWins:
		white.Wins++
		white.Points++
		black.Losses++
	case game.BlackWins:
		black.Wins++
		black.Points++
		white.Losses++
	default:
		white.Draws++
		black.Draws++
		white.Points += 0.5
		black.Points += 0.5
	}
}

// Ranking returns the standings sorted by points, then wins, then
// registration order, so equal inputs always rank identically.
func (s *Standings) Ranking() []Standing {
	s.mu.Lock()
	defer s.mu.Unlock()

	ranking := make([]Standing, 0, len(s.ids))
	for _, id := range s.ids {
		ranking = append(ranking, *s.table[id])
	}
	sort.SliceStable(ranking, func(i, j int) bool {
		if ranking[i].Points != ranking[j].Points {
			return ranking[i].Points > ranking[j].Points
		}
		if ranking[i].Wins != ranking[j].Wins {
			return ranking[i].Wins > ranking[j].Wins
		}
		return s.order[ranking[i].ID] < s.order[ranking[j].ID]
	})
	return ranking
}

// String renders the ranking as a table followed by a points bar chart.
func (s *Standings) String() string {
	ranking := s.Ranking()

	var b strings.Builder
	b.WriteString("=== TOURNAMENT RESULTS ===\n")
	fmt.Fprintf(&b, "%-12s %-8s %-8s %-8s %-8s %-8s\n", "Bot", "Games", "Wins", "Losses", "Draws", "Points")
	b.WriteString(strings.Repeat("-", 56))
	b.WriteByte('\n')
	for _, st := range ranking {
		fmt.Fprintf(&b, "%-12s %-8d %-8d %-8d %-8d %-8.1f\n", st.ID, st.Games, st.Wins, st.Losses, st.Draws, st.Points)
	}
	b.WriteByte('\n')
	b.WriteString(barChart(ranking))
	return b.String()
}

func barChart(ranking []Standing) string {
	max := 0.0
	for _, st := range ranking {
		if st.Points > max {
			max = st.Points
		}
	}
	const width = 40
	var b strings.Builder
	for _, st := range ranking {
		bar := 0
		if max > 0 {
			bar = int(st.Points / max * width)
		}
		fmt.Fprintf(&b, "%-12s %s %.1f\n", st.ID, strings.Repeat("#", bar), st.Points)
	}
	return b.String()
}
