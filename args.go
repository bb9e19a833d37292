package main

import (
	"fmt"
	"strings"
)

// expandMulti rewrites each "flag w1 w2 ..." in args into
// "flag=w1 flag=w2 ...", so that a flag registered as a string array
// takes all the words up to the next option, like
//
//	jfilter people.json --include-keys name id --where age>=18
//
// A lone "-" is a word (standard input), "--" ends the options as
// usual. A flag followed by no word is an error.
func expandMulti(args []string, flag string) ([]string, error) {
	out := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			out = append(out, args[i:]...)
			break
		}
		if arg != flag {
			out = append(out, arg)
			continue
		}
		j := i + 1
		for ; j < len(args) && !isOption(args[j]); j++ {
			out = append(out, flag+"="+args[j])
		}
		if j == i+1 {
			return nil, fmt.Errorf("flag needs at least one argument: %s", flag)
		}
		i = j - 1
	}
	return out, nil
}

func isOption(arg string) bool {
	return strings.HasPrefix(arg, "-") && arg != "-"
}
