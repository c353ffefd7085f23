// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// terminalPrompter implements intent.Prompter over stdin/stdout.
type terminalPrompter struct {
	in *bufio.Reader
}

func newTerminalPrompter() *terminalPrompter {
	return &terminalPrompter{in: bufio.NewReader(os.Stdin)}
}

// Ask poses one free-form question and returns the trimmed answer.
func (p *terminalPrompter) Ask(question string) (string, error) {
	fmt.Printf("%s ", question)
	line, err := p.in.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// Select prints a numbered menu and reads a choice. An empty answer keeps
// the default; an unparsable answer is re-asked once, then the default wins.
func (p *terminalPrompter) Select(prompt string, options []string, defaultIndex int) (int, error) {
	fmt.Println(prompt)
	for i, opt := range options {
		marker := " "
		if i == defaultIndex {
			marker = "*"
		}
		fmt.Printf(" %s %2d. %s\n", marker, i+1, opt)
	}

	for attempts := 0; attempts < 2; attempts++ {
		fmt.Printf("Choice [%d]: ", defaultIndex+1)
		line, err := p.in.ReadString('\n')
		if err != nil {
			return defaultIndex, err
		}
		line = strings.TrimSpace(line)
		if line == "" {
			return defaultIndex, nil
		}
		choice, err := strconv.Atoi(line)
		if err == nil && choice >= 1 && choice <= len(options) {
			return choice - 1, nil
		}
		fmt.Printf("Enter a number between 1 and %d.\n", len(options))
	}
	return defaultIndex, nil
}
