package coffeechat

import (
	"math/rand/v2"

	"github.com/google/uuid"
)

// shuffleFunc permutes n elements in place through swap, like rand.Shuffle.
type shuffleFunc func(n int, swap func(i, j int))

// pair shuffles the distinct ids and groups them two at a time. With an odd
// count the member left at the end sits this round out.
func pair(ids []uuid.UUID, shuffle shuffleFunc) [][2]uuid.UUID {
	pool := distinct(ids)
	if len(pool) < 2 {
		return nil
	}
	if shuffle == nil {
		shuffle = rand.Shuffle
	}

	shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })

	pairs := make([][2]uuid.UUID, 0, len(pool)/2)
	for i := 0; i+1 < len(pool); i += 2 {
		pairs = append(pairs, [2]uuid.UUID{pool[i], pool[i+1]})
	}
	return pairs
}

func distinct(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
