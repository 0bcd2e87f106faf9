package matrix

import (
	"errors"
	"strconv"

	"github.com/ChiefGyk3D/yomama-as-a-service/internal/joke"
)

var (
	errMeannessRange  = errors.New("meanness must be between 1 and 11 (these go to eleven! 🎸)")
	errNerdinessRange = errors.New("nerdiness must be between 1 and 10")
	errCountRange     = errors.New("count must be between 1 and 10")
	errCountNumber    = errors.New("count must be a number")
)

// parseJokeArgs parses "!joke [theme] [meanness] [nerdiness]" arguments on
// top of the deployment defaults. Out-of-range levels are rejected rather
// than clamped; the visible error keeps users honest about the dials.
func parseJokeArgs(args []string, defaults joke.Params) (joke.Params, error) {
	p := defaults

	if len(args) > 0 {
		p.Theme = joke.Theme(args[0])
	}
	if len(args) > 1 {
		v, err := strconv.Atoi(args[1])
		if err != nil || v < 1 || v > 11 {
			return joke.Params{}, errMeannessRange
		}
		p.Meanness = v
	}
	if len(args) > 2 {
		v, err := strconv.Atoi(args[2])
		if err != nil || v < 1 || v > 10 {
			return joke.Params{}, errNerdinessRange
		}
		p.Nerdiness = v
	}

	return p, nil
}

// parseBatchArgs parses "!batch [count] [theme]" arguments.
func parseBatchArgs(args []string, defaults joke.Params) (int, joke.Params, error) {
	count := 3
	p := defaults

	if len(args) > 0 {
		v, err := strconv.Atoi(args[0])
		if err != nil {
			return 0, joke.Params{}, errCountNumber
		}
		if v < 1 || v > 10 {
			return 0, joke.Params{}, errCountRange
		}
		count = v
	}
	if len(args) > 1 {
		p.Theme = joke.Theme(args[1])
	}

	return count, p, nil
}
