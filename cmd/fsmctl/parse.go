package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pviprey/Automaton"
)

// readAutomaton reads an automaton description from path, or from
// stdin if path is empty.
func readAutomaton(path string) (*automaton.Automaton, error) {
	r := io.Reader(os.Stdin)
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open %s: %w", path, err)
		}
		defer f.Close()
		r = f
	}
	return parseAutomaton(r)
}

// parseAutomaton parses the undocumented line format:
//
//	alphabet a b c
//	state 0 initial
//	state 1 final
//	trans 0 a 0
//	trans 0 eps 1
//
// Blank lines and lines starting with # are ignored.
func parseAutomaton(r io.Reader) (*automaton.Automaton, error) {
	a := automaton.New()
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		switch fields[0] {
		case "alphabet":
			for _, tok := range fields[1:] {
				if len(tok) != 1 {
					return nil, fmt.Errorf("line %d: symbol %q is not a single byte", lineNo, tok)
				}
				a.AddSymbol(tok[0])
			}
		case "state":
			if len(fields) < 2 {
				return nil, fmt.Errorf("line %d: state needs an id", lineNo)
			}
			id, err := strconv.Atoi(fields[1])
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			a.AddState(id)
			for _, flag := range fields[2:] {
				switch flag {
				case "initial":
					a.SetStateInitial(id)
				case "final":
					a.SetStateFinal(id)
				default:
					return nil, fmt.Errorf("line %d: unknown state flag %q", lineNo, flag)
				}
			}
		case "trans":
			if len(fields) != 4 {
				return nil, fmt.Errorf("line %d: trans needs from, symbol, to", lineNo)
			}
			from, err := strconv.Atoi(fields[1])
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			to, err := strconv.Atoi(fields[3])
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			var label byte
			if fields[2] == "eps" {
				label = automaton.Epsilon
			} else if len(fields[2]) == 1 {
				label = fields[2][0]
			} else {
				return nil, fmt.Errorf("line %d: symbol %q is not a single byte or %q", lineNo, fields[2], "eps")
			}
			a.AddState(from)
			a.AddState(to)
			a.AddTransition(from, label, to)
		default:
			return nil, fmt.Errorf("line %d: unknown directive %q", lineNo, fields[0])
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return a, nil
}
