package plug

// maxSuggestDistance bounds the edit distance of a suggested action name.
const maxSuggestDistance = 2

func levenshtein(str string, tgt string) int {
	src, dst := []rune(str), []rune(tgt)

	if len(src) == 0 {
		return len(dst)
	}

	if len(dst) == 0 {
		return len(src)
	}

	dists := make([][]int, len(src)+1)
	for i := range dists {
		dists[i] = make([]int, len(dst)+1)
		dists[i][0] = i
	}

	for j := range dists[0] {
		dists[0][j] = j
	}

	for sidx, sc := range src {
		for tidx, tc := range dst {
			cost := 1
			if sc == tc {
				cost = 0
			}

			best := dists[sidx][tidx] + cost
			if del := dists[sidx][tidx+1] + 1; del < best {
				best = del
			}
			if ins := dists[sidx+1][tidx] + 1; ins < best {
				best = ins
			}

			dists[sidx+1][tidx+1] = best
		}
	}

	return dists[len(src)][len(dst)]
}

// closestChoice returns the choice nearest to name, and its distance.
// Ties go to the first choice in order.
func closestChoice(name string, choices []string) (string, int) {
	if len(choices) == 0 {
		return "", 0
	}

	mincmd := -1
	mindist := -1

	for i, c := range choices {
		l := levenshtein(name, c)

		if mincmd < 0 || l < mindist {
			mindist = l
			mincmd = i
		}
	}

	return choices[mincmd], mindist
}

// suggest returns a choice close enough to name to be worth proposing.
func suggest(name string, choices []string) (string, bool) {
	if name == "" {
		return "", false
	}

	closest, dist := closestChoice(name, choices)
	if closest == "" || dist > maxSuggestDistance || dist >= len([]rune(name)) {
		return "", false
	}

	return closest, true
}
