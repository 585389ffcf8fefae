// Package day04 solves "The Ideal Stocking Stuffer": mining AdventCoins by
// finding MD5 hashes with leading zeros.
package day04

import (
	"crypto/md5"
	_ "embed"
	"strconv"
	"strings"

	"github.com/katalvlaran/aoc/puzzle"
)

//go:embed input.txt
var Input string

// Parse returns the secret key.
func Parse(input string) (string, error) {
	key := strings.TrimSpace(input)
	if key == "" || strings.ContainsAny(key, " \t\n") {
		return "", puzzle.Malformedf("secret key %q", key)
	}

	return key, nil
}

// leadingZeros reports whether the hex form of sum starts with n zeros.
func leadingZeros(sum [md5.Size]byte, n int) bool {
	for i := 0; i < n; i++ {
		b := sum[i/2]
		if i%2 == 0 {
			b >>= 4
		} else {
			b &= 0x0f
		}
		if b != 0 {
			return false
		}
	}

	return true
}

// Mine returns the lowest positive number whose MD5(key+number) hex digest
// starts with zeros zeros.
func Mine(key string, zeros int) int {
	buf := make([]byte, len(key), len(key)+20)
	copy(buf, key)
	for n := 1; ; n++ {
		if leadingZeros(md5.Sum(strconv.AppendInt(buf, int64(n), 10)), zeros) {
			return n
		}
	}
}

func solve(input string, zeros int) (puzzle.Answer, error) {
	key, err := Parse(input)
	if err != nil {
		return puzzle.Answer{}, err
	}

	return puzzle.Int(Mine(key, zeros)), nil
}

// Part1 looks for five leading zeros.
func Part1(input string) (puzzle.Answer, error) { return solve(input, 5) }

// Part2 looks for six leading zeros.
func Part2(input string) (puzzle.Answer, error) { return solve(input, 6) }
