package main

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestExpandMulti(t *testing.T) {
	tests := []struct {
		args string
		want []string
	}{
		{"in.json", []string{"in.json"}},
		{
			"in.json --include-keys name id",
			[]string{"in.json", "--include-keys=name", "--include-keys=id"},
		},
		{
			"in.json --include-keys name --where age>=18",
			[]string{"in.json", "--include-keys=name", "--where", "age>=18"},
		},
		{
			"--include-keys name - -v",
			[]string{"--include-keys=name", "--include-keys=-", "-v"},
		},
		{
			"--include-keys=name in.json",
			[]string{"--include-keys=name", "in.json"},
		},
		{
			"in.json -- --include-keys a",
			[]string{"in.json", "--", "--include-keys", "a"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.args, func(t *testing.T) {
			got, err := expandMulti(strings.Fields(tt.args), "--include-keys")
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}
}

func TestExpandMultiMissingWords(t *testing.T) {
	for _, args := range []string{"in.json --include-keys", "--include-keys --where a==1 in.json"} {
		if _, err := expandMulti(strings.Fields(args), "--include-keys"); err == nil {
			t.Errorf("%q: got nil error", args)
		}
	}
}
