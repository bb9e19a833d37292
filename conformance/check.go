// Ignore in the build, this is meant to be used with go run.
// It will check that two filter binaries, e.g. two builds of jfilter,
// give the same outputs and exit codes for a list of cases.
//
// Each line of the cases file is tab-separated: the document path, the
// --where expression (possibly empty), and space-separated keys for
// --include-keys (possibly empty). Blank lines and lines starting with
// # are skipped.

//go:build ignore
// +build ignore

package main

import (
	"bufio"
	"bytes"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/exec"
	"strings"

	"github.com/google/go-cmp/cmp"
)

type outcome struct {
	Stdout string
	Code   int
}

var (
	first  string
	second string

	compared = 0
	matched  = 0
	skipped  = 0
)

func main() {
	flag.StringVar(&first, "a", "jfilter", "`path` to first binary")
	flag.StringVar(&second, "b", "json-filter", "`path` to second binary")
	cases := flag.String("cases", "cases.tsv", "`path` to the cases file")
	flag.Parse()
	f, err := os.Open(*cases)
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()
	s := bufio.NewScanner(f)
	for s.Scan() {
		line := s.Text()
		if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "#") {
			continue
		}
		compare(line)
	}
	if err := s.Err(); err != nil {
		log.Fatal(err)
	}
	printStats()
}

func compare(line string) {
	fields := strings.Split(line, "\t")
	args := []string{fields[0]}
	if len(fields) > 1 && fields[1] != "" {
		args = append(args, "--where", fields[1])
	}
	if len(fields) > 2 && strings.TrimSpace(fields[2]) != "" {
		args = append(args, "--include-keys")
		args = append(args, strings.Fields(fields[2])...)
	}
	a, err := execute(first, args)
	if err != nil {
		log.Printf("error running %s, discarding %q: %v", first, line, err)
		skipped++
		return
	}
	b, err := execute(second, args)
	if err != nil {
		log.Printf("error running %s, discarding %q: %v", second, line, err)
		skipped++
		return
	}
	if diff := cmp.Diff(a, b); diff != "" {
		fmt.Printf("Difference for %q:\n%v", line, diff)
	} else {
		matched++
	}
	compared++
}

// execute runs name with args; a non-zero exit is part of the outcome,
// failing to start is an error.
func execute(name string, args []string) (outcome, error) {
	var stdout bytes.Buffer
	c := exec.Command(name, args...)
	c.Stdout = &stdout
	err := c.Run()
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return outcome{Stdout: stdout.String(), Code: exitErr.ExitCode()}, nil
	}
	if err != nil {
		return outcome{}, err
	}
	return outcome{Stdout: stdout.String()}, nil
}

func printStats() {
	fmt.Println(compared, matched, skipped)
}
