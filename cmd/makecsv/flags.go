package main

import (
	"fmt"
	"strings"
)

// parseBool accepts the same spellings as Python's distutils strtobool,
// which existing recipes pass to --is_test and --remove_word_boundary.
func parseBool(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "y", "yes", "t", "true", "on", "1":
		return true, nil
	case "n", "no", "f", "false", "off", "0":
		return false, nil
	}
	return false, fmt.Errorf("invalid truth value %q", s)
}

// boolValue is a pflag.Value that requires an explicit truth value, so
// "--is_test true" and "--is_test=1" both work.
type boolValue bool

func (b *boolValue) Set(s string) error {
	v, err := parseBool(s)
	if err != nil {
		return err
	}
	*b = boolValue(v)
	return nil
}

func (b *boolValue) String() string {
	if *b {
		return "true"
	}
	return "false"
}

func (b *boolValue) Type() string { return "{true,false}" }
