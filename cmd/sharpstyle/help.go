package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/monoblaine/sharpstyle/internal/rule"
)

const helpUsageText = `Usage: sharpstyle help <topic>

Topics:
  rule [id|name]   Show rule documentation
`

// runHelp implements the "help" subcommand.
func runHelp(args []string) int {
	if len(args) == 0 {
		fmt.Fprint(os.Stderr, helpUsageText)
		return 0
	}

	switch args[0] {
	case "rule":
		return runHelpRule(args[1:])
	default:
		fmt.Fprintf(os.Stderr, "sharpstyle: help: unknown topic %q\n", args[0])
		return 2
	}
}

// runHelpRule implements "help rule [id|name]". With no argument it
// lists all registered rules; with an argument it prints one rule's
// full identity.
func runHelpRule(args []string) int {
	if len(args) == 0 {
		rules := rule.All()
		sort.Slice(rules, func(i, j int) bool { return rules[i].ID() < rules[j].ID() })
		for _, r := range rules {
			m := rule.MetaOf(r)
			fmt.Printf("%s  %-20s %s\n", m.ID, m.Name, m.Title)
		}
		return 0
	}

	r := rule.ByID(args[0])
	if r == nil {
		r = rule.ByName(args[0])
	}
	if r == nil {
		fmt.Fprintf(os.Stderr, "sharpstyle: unknown rule %q\n", args[0])
		return 2
	}

	m := rule.MetaOf(r)
	fmt.Printf("%s (%s)\n\n", m.ID, m.Name)
	if m.Title != "" {
		fmt.Printf("%s\n\n", m.Title)
	}
	if m.Description != "" {
		fmt.Printf("%s\n\n", m.Description)
	}
	fmt.Printf("Category: %s\nSeverity: %s\n", m.Category, m.Severity)
	if m.MessageFormat != "" {
		fmt.Printf("Message:  %s\n", m.MessageFormat)
	}
	if m.HelpLink != "" {
		fmt.Printf("Docs:     %s\n", m.HelpLink)
	}
	return 0
}
