// Package day13 solves "Distress Signal": ordering nested-list packets.
//
// Packets are JSON arrays of integers and arrays, so they are decoded with
// encoding/json into a small tagged tree.
package day13

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"slices"

	"github.com/katalvlaran/aoc/puzzle"
)

//go:embed input.txt
var Input string

// Packet is either an integer (List == nil) or a list.
type Packet struct {
	Int  int
	List []Packet
}

// UnmarshalJSON decodes a number or an array of packets. null is rejected.
func (p *Packet) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		return puzzle.Malformedf("null in packet")
	}
	if len(b) > 0 && b[0] == '[' {
		p.List = []Packet{}
		return json.Unmarshal(b, &p.List)
	}
	p.List = nil

	return json.Unmarshal(b, &p.Int)
}

// String renders the packet back in its input form.
func (p Packet) String() string {
	if p.List == nil {
		b, _ := json.Marshal(p.Int)
		return string(b)
	}
	var sb bytes.Buffer
	sb.WriteByte('[')
	for i, c := range p.List {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(c.String())
	}
	sb.WriteByte(']')

	return sb.String()
}

// ParsePacket decodes one packet line; it must be a list.
func ParsePacket(s string) (Packet, error) {
	var p Packet
	if err := json.Unmarshal([]byte(s), &p); err != nil || p.List == nil {
		return Packet{}, puzzle.Malformedf("packet %q", s)
	}

	return p, nil
}

// Compare orders two packets: negative when a comes first, zero when equal.
func Compare(a, b Packet) int {
	switch {
	case a.List == nil && b.List == nil:
		return a.Int - b.Int
	case a.List == nil:
		return Compare(Packet{List: []Packet{a}}, b)
	case b.List == nil:
		return Compare(a, Packet{List: []Packet{b}})
	}
	for i := 0; i < len(a.List) && i < len(b.List); i++ {
		if c := Compare(a.List[i], b.List[i]); c != 0 {
			return c
		}
	}

	return len(a.List) - len(b.List)
}

// Parse reads pairs of packets separated by blank lines.
func Parse(input string) ([][2]Packet, error) {
	blocks := puzzle.Blocks(input)
	pairs := make([][2]Packet, len(blocks))
	for i, b := range blocks {
		if len(b) != 2 {
			return nil, puzzle.Malformedf("pair %d has %d packets", i+1, len(b))
		}
		for j := range b {
			p, err := ParsePacket(b[j])
			if err != nil {
				return nil, err
			}
			pairs[i][j] = p
		}
	}

	return pairs, nil
}

// Part1 sums the 1-based indices of pairs already in the right order.
func Part1(input string) (puzzle.Answer, error) {
	pairs, err := Parse(input)
	if err != nil {
		return puzzle.Answer{}, err
	}
	sum := 0
	for i, p := range pairs {
		if Compare(p[0], p[1]) < 0 {
			sum += i + 1
		}
	}

	return puzzle.Int(sum), nil
}

// Part2 sorts every packet with the [[2]] and [[6]] dividers and returns the
// product of the dividers' 1-based positions.
func Part2(input string) (puzzle.Answer, error) {
	pairs, err := Parse(input)
	if err != nil {
		return puzzle.Answer{}, err
	}
	type entry struct {
		p       Packet
		divider bool
	}
	var all []entry
	for _, d := range []string{"[[2]]", "[[6]]"} {
		p, _ := ParsePacket(d)
		all = append(all, entry{p: p, divider: true})
	}
	for _, p := range pairs {
		all = append(all, entry{p: p[0]}, entry{p: p[1]})
	}
	slices.SortStableFunc(all, func(a, b entry) int { return Compare(a.p, b.p) })

	key := 1
	for i, e := range all {
		if e.divider {
			key *= i + 1
		}
	}

	return puzzle.Int(key), nil
}
