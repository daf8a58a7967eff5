package tournament

import "testing"

func TestFixturesPairEveryoneTwice(t *testing.T) {
	ids := []string{"a", "b", "c", "d"}
	fixtures := Fixtures(ids)

	if len(fixtures) != 12 {
		t.Fatalf("expected 12 fixtures for 4 bots, got %d", len(fixtures))
	}

	seen := make(map[[2]string]int)
	for _, fx := range fixtures {
		if fx.White == fx.Black {
			t.Errorf("self-play fixture %v", fx)
		}
		seen[[2]string{fx.White, fx.Black}]++
	}
	for _, w := range ids {
		for _, b := range ids {
			if w == b {
				continue
			}
			if seen[[2]string{w, b}] != 1 {
				t.Errorf("pairing %s vs %s scheduled %d times, want 1", w, b, seen[[2]string{w, b}])
			}
		}
	}
}

func TestFixturesDegenerateInputs(t *testing.T) {
	if got := Fixtures([]string{"solo"}); len(got) != 0 {
		t.Errorf("single bot should yield no fixtures, got %d", len(got))
	}
	if got := Fixtures(nil); len(got) != 0 {
		t.Errorf("no bots should yield no fixtures, got %d", len(got))
	}
}
