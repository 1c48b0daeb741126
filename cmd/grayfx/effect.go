package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/gogpu/grayfx"
)

var (
	errInvalidEffect = errors.New("invalid effect")
	errInvalidSize   = errors.New("invalid kernel size")
)

// needsSize reports whether the effect code takes a kernel size.
func needsSize(code string) bool {
	switch normalize(code) {
	case "2", "blur", "3", "sharpen":
		return true
	}
	return false
}

// parseEffect maps a menu code or effect name to an Effect.
func parseEffect(code string, size int) (grayfx.Effect, error) {
	switch normalize(code) {
	case "1", "invert":
		return grayfx.InvertEffect{}, nil
	case "2", "blur":
		if size <= 0 {
			return nil, fmt.Errorf("%w: %d", errInvalidSize, size)
		}
		return grayfx.BlurEffect{Size: size}, nil
	case "3", "sharpen":
		if size <= 0 {
			return nil, fmt.Errorf("%w: %d", errInvalidSize, size)
		}
		return grayfx.SharpenEffect{Size: size}, nil
	case "4", "edges":
		return grayfx.EdgesEffect{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", errInvalidEffect, code)
	}
}

// parseSize reads a kernel size typed at the prompt.
func parseSize(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("%w: %q", errInvalidSize, strings.TrimSpace(s))
	}
	return n, nil
}

func normalize(code string) string {
	return strings.ToLower(strings.TrimSpace(code))
}
