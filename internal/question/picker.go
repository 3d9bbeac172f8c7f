package question

import "math/rand/v2"

// Source supplies uniform random indexes. *math/rand.Rand satisfies it.
type Source interface {
	Intn(n int) int
}

type globalSource struct{}

func (globalSource) Intn(n int) int { return rand.IntN(n) }

// PickUnseen chooses uniformly among the candidates whose id is not in
// previous. ok is false when every candidate has already been served.
func PickUnseen(candidates []Question, previous []int, src Source) (q Question, ok bool) {
	seen := make(map[int]struct{}, len(previous))
	for _, id := range previous {
		seen[id] = struct{}{}
	}

	unseen := make([]Question, 0, len(candidates))
	for _, c := range candidates {
		if _, dup := seen[c.ID]; !dup {
			unseen = append(unseen, c)
		}
	}
	if len(unseen) == 0 {
		return Question{}, false
	}
	if src == nil {
		src = globalSource{}
	}
	return unseen[src.Intn(len(unseen))], true
}
