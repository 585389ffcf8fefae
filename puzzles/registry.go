package puzzles

import (
	"slices"

	"github.com/katalvlaran/aoc/puzzle"
	y15d01 "github.com/katalvlaran/aoc/y2015/day01"
	y15d02 "github.com/katalvlaran/aoc/y2015/day02"
	y15d03 "github.com/katalvlaran/aoc/y2015/day03"
	y15d04 "github.com/katalvlaran/aoc/y2015/day04"
	y15d05 "github.com/katalvlaran/aoc/y2015/day05"
	y15d06 "github.com/katalvlaran/aoc/y2015/day06"
	y15d07 "github.com/katalvlaran/aoc/y2015/day07"
	y22d01 "github.com/katalvlaran/aoc/y2022/day01"
	y22d02 "github.com/katalvlaran/aoc/y2022/day02"
	y22d03 "github.com/katalvlaran/aoc/y2022/day03"
	y22d04 "github.com/katalvlaran/aoc/y2022/day04"
	y22d05 "github.com/katalvlaran/aoc/y2022/day05"
	y22d06 "github.com/katalvlaran/aoc/y2022/day06"
	y22d07 "github.com/katalvlaran/aoc/y2022/day07"
	y22d08 "github.com/katalvlaran/aoc/y2022/day08"
	y22d09 "github.com/katalvlaran/aoc/y2022/day09"
	y22d10 "github.com/katalvlaran/aoc/y2022/day10"
	y22d11 "github.com/katalvlaran/aoc/y2022/day11"
	y22d12 "github.com/katalvlaran/aoc/y2022/day12"
	y22d13 "github.com/katalvlaran/aoc/y2022/day13"
	y22d14 "github.com/katalvlaran/aoc/y2022/day14"
	y22d16 "github.com/katalvlaran/aoc/y2022/day16"
	y23d01 "github.com/katalvlaran/aoc/y2023/day01"
	y23d02 "github.com/katalvlaran/aoc/y2023/day02"
	y23d03 "github.com/katalvlaran/aoc/y2023/day03"
	y24d01 "github.com/katalvlaran/aoc/y2024/day01"
	y24d02 "github.com/katalvlaran/aoc/y2024/day02"
)

var days = []puzzle.Day{
	{Year: 2015, Day: 1, Title: "Not Quite Lisp", Input: y15d01.Input, Part1: y15d01.Part1, Part2: y15d01.Part2},
	{Year: 2015, Day: 2, Title: "I Was Told There Would Be No Math", Input: y15d02.Input, Part1: y15d02.Part1, Part2: y15d02.Part2},
	{Year: 2015, Day: 3, Title: "Perfectly Spherical Houses in a Vacuum", Input: y15d03.Input, Part1: y15d03.Part1, Part2: y15d03.Part2},
	{Year: 2015, Day: 4, Title: "The Ideal Stocking Stuffer", Input: y15d04.Input, Part1: y15d04.Part1, Part2: y15d04.Part2},
	{Year: 2015, Day: 5, Title: "Doesn't He Have Intern-Elves For This?", Input: y15d05.Input, Part1: y15d05.Part1, Part2: y15d05.Part2},
	{Year: 2015, Day: 6, Title: "Probably a Fire Hazard", Input: y15d06.Input, Part1: y15d06.Part1, Part2: y15d06.Part2},
	{Year: 2015, Day: 7, Title: "Some Assembly Required", Input: y15d07.Input, Part1: y15d07.Part1, Part2: y15d07.Part2},

	{Year: 2022, Day: 1, Title: "Calorie Counting", Input: y22d01.Input, Part1: y22d01.Part1, Part2: y22d01.Part2},
	{Year: 2022, Day: 2, Title: "Rock Paper Scissors", Input: y22d02.Input, Part1: y22d02.Part1, Part2: y22d02.Part2},
	{Year: 2022, Day: 3, Title: "Rucksack Reorganization", Input: y22d03.Input, Part1: y22d03.Part1, Part2: y22d03.Part2},
	{Year: 2022, Day: 4, Title: "Camp Cleanup", Input: y22d04.Input, Part1: y22d04.Part1, Part2: y22d04.Part2},
	{Year: 2022, Day: 5, Title: "Supply Stacks", Input: y22d05.Input, Part1: y22d05.Part1, Part2: y22d05.Part2},
	{Year: 2022, Day: 6, Title: "Tuning Trouble", Input: y22d06.Input, Part1: y22d06.Part1, Part2: y22d06.Part2},
	{Year: 2022, Day: 7, Title: "No Space Left On Device", Input: y22d07.Input, Part1: y22d07.Part1, Part2: y22d07.Part2},
	{Year: 2022, Day: 8, Title: "Treetop Tree House", Input: y22d08.Input, Part1: y22d08.Part1, Part2: y22d08.Part2},
	{Year: 2022, Day: 9, Title: "Rope Bridge", Input: y22d09.Input, Part1: y22d09.Part1, Part2: y22d09.Part2},
	{Year: 2022, Day: 10, Title: "Cathode-Ray Tube", Input: y22d10.Input, Part1: y22d10.Part1, Part2: y22d10.Part2},
	{Year: 2022, Day: 11, Title: "Monkey in the Middle", Input: y22d11.Input, Part1: y22d11.Part1, Part2: y22d11.Part2},
	{Year: 2022, Day: 12, Title: "Hill Climbing Algorithm", Input: y22d12.Input, Part1: y22d12.Part1, Part2: y22d12.Part2},
	{Year: 2022, Day: 13, Title: "Distress Signal", Input: y22d13.Input, Part1: y22d13.Part1, Part2: y22d13.Part2},
	{Year: 2022, Day: 14, Title: "Regolith Reservoir", Input: y22d14.Input, Part1: y22d14.Part1, Part2: y22d14.Part2},
	{Year: 2022, Day: 16, Title: "Proboscidea Volcanium", Input: y22d16.Input, Part1: y22d16.Part1, Part2: y22d16.Part2},

	{Year: 2023, Day: 1, Title: "Trebuchet?!", Input: y23d01.Input, Part1: y23d01.Part1, Part2: y23d01.Part2},
	{Year: 2023, Day: 2, Title: "Cube Conundrum", Input: y23d02.Input, Part1: y23d02.Part1, Part2: y23d02.Part2},
	{Year: 2023, Day: 3, Title: "Gear Ratios", Input: y23d03.Input, Part1: y23d03.Part1, Part2: y23d03.Part2},

	{Year: 2024, Day: 1, Title: "Historian Hysteria", Input: y24d01.Input, Part1: y24d01.Part1, Part2: y24d01.Part2},
	{Year: 2024, Day: 2, Title: "Red-Nosed Reports", Input: y24d02.Input, Part1: y24d02.Part1, Part2: y24d02.Part2},
}

// All returns every implemented day ordered by year then day.
func All() []puzzle.Day {
	out := slices.Clone(days)
	slices.SortFunc(out, func(a, b puzzle.Day) int {
		if a.Year != b.Year {
			return a.Year - b.Year
		}
		return a.Day - b.Day
	})

	return out
}

// Find returns the day for year and day.
func Find(year, day int) (puzzle.Day, bool) {
	for _, d := range days {
		if d.Year == year && d.Day == day {
			return d, true
		}
	}

	return puzzle.Day{}, false
}

// Year returns the days of one year in order.
func Year(year int) []puzzle.Day {
	var out []puzzle.Day
	for _, d := range All() {
		if d.Year == year {
			out = append(out, d)
		}
	}

	return out
}

// Years returns the years that have at least one day, ascending.
func Years() []int {
	var out []int
	for _, d := range All() {
		if len(out) == 0 || out[len(out)-1] != d.Year {
			out = append(out, d.Year)
		}
	}

	return out
}
