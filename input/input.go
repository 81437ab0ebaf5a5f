// Package input asks the user for numbers and algorithm choices on a terminal.
// Number prompts keep asking until the text parses.
package input

import (
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/amp-labs/lvt/checks"
	"github.com/amp-labs/lvt/compare"
	"github.com/amp-labs/lvt/sorting"
	"github.com/manifoldco/promptui"
)

var (
	ErrNotUint  = errors.New("enter a non-negative whole number")
	ErrNotInt   = errors.New("enter a whole number")
	ErrNotFloat = errors.New("enter a number")
)

const doneItem = "[Done]"

// Prompter reads answers from Stdin and draws prompts on Stdout.
type Prompter struct {
	Stdin  io.ReadCloser
	Stdout io.WriteCloser
}

// New returns a Prompter on the process terminal.
func New() *Prompter {
	return &Prompter{Stdin: os.Stdin, Stdout: os.Stdout}
}

func ValidateUint(s string) error {
	if !checks.IsUintNumber(strings.TrimSpace(s)) {
		return ErrNotUint
	}

	return nil
}

func ValidateInt(s string) error {
	if !checks.IsIntNumber(strings.TrimSpace(s)) {
		return ErrNotInt
	}

	return nil
}

func ValidateFloat(s string) error {
	if !checks.IsFloatingNumber(strings.TrimSpace(s)) {
		return ErrNotFloat
	}

	return nil
}

func (p *Prompter) run(label, def string, validate promptui.ValidateFunc) (string, error) {
	prompt := promptui.Prompt{
		Label:    label,
		Default:  def,
		Validate: validate,
		Stdin:    p.Stdin,
		Stdout:   p.Stdout,
	}

	txt, err := prompt.Run()
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(txt), nil
}

// Uint asks for a non-negative integer.
func (p *Prompter) Uint(label string, def uint64) (uint64, error) {
	txt, err := p.run(label, strconv.FormatUint(def, 10), ValidateUint)
	if err != nil {
		return 0, err
	}

	val, err := strconv.ParseUint(txt, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrNotUint, err)
	}

	return val, nil
}

// Int asks for an integer.
func (p *Prompter) Int(label string, def int) (int, error) {
	txt, err := p.run(label, strconv.Itoa(def), ValidateInt)
	if err != nil {
		return 0, err
	}

	val, err := strconv.Atoi(txt)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrNotInt, err)
	}

	return val, nil
}

// Float asks for a decimal number.
func (p *Prompter) Float(label string, def float64) (float64, error) {
	txt, err := p.run(label, strconv.FormatFloat(def, 'g', -1, 64), ValidateFloat)
	if err != nil {
		return 0, err
	}

	val, err := strconv.ParseFloat(txt, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrNotFloat, err)
	}

	return val, nil
}

// Confirm asks a yes/no question. Answering no is not an error.
func (p *Prompter) Confirm(label string) (bool, error) {
	prompt := promptui.Prompt{
		Label:     label,
		IsConfirm: true,
		Stdin:     p.Stdin,
		Stdout:    p.Stdout,
	}

	if _, err := prompt.Run(); err != nil {
		if errors.Is(err, promptui.ErrAbort) {
			return false, nil
		}

		return false, err
	}

	return true, nil
}

func (p *Prompter) choose(label string, items []string) (int, error) {
	sel := &promptui.Select{
		Label:    label,
		Items:    items,
		Searcher: prefixSearcher(items),
		Stdin:    p.Stdin,
		Stdout:   p.Stdout,
	}

	idx, _, err := sel.Run()

	return idx, err
}

func prefixSearcher(items []string) func(string, int) bool {
	return func(in string, index int) bool {
		if in == "" || items[index] == doneItem {
			return false
		}

		return strings.HasPrefix(strings.ToLower(items[index]), strings.ToLower(in))
	}
}

// SelectStrategy asks for one sorting strategy.
func (p *Prompter) SelectStrategy(label string) (sorting.Strategy, error) {
	all := sorting.Strategies()

	idx, err := p.choose(label, strategyNames(all))
	if err != nil {
		return 0, err
	}

	return all[idx], nil
}

// SelectStrategies asks for strategies one at a time until the user picks [Done]
// or none are left. The result keeps the canonical strategy order.
func (p *Prompter) SelectStrategies(label string) ([]sorting.Strategy, error) {
	remaining := sorting.Strategies()

	var chosen []sorting.Strategy

	for len(remaining) > 0 {
		items := append([]string{doneItem}, strategyNames(remaining)...)

		idx, err := p.choose(label, items)
		if err != nil {
			return nil, err
		}

		if idx == 0 {
			break
		}

		chosen = append(chosen, remaining[idx-1])
		remaining = slices.Delete(remaining, idx-1, idx)
	}

	slices.Sort(chosen)

	return chosen, nil
}

// SelectDirection asks for ascending or descending order.
func (p *Prompter) SelectDirection(label string) (compare.Direction, error) {
	dirs := []compare.Direction{compare.Ascending, compare.Descending}

	idx, err := p.choose(label, []string{dirs[0].String(), dirs[1].String()})
	if err != nil {
		return 0, err
	}

	return dirs[idx], nil
}

func strategyNames(strategies []sorting.Strategy) []string {
	out := make([]string, len(strategies))
	for i, s := range strategies {
		out[i] = s.String()
	}

	return out
}
