package mandel

import (
	"strconv"
	"strings"
)

// Usage is the positional argument synopsis shared by the command line tools.
const Usage = "DEST THREADS ITERATIONS WIDTHxHEIGHT UPPER_LEFT LOWER_RIGHT\n" +
	"example: pic.png 8 100 1500x750 -2.0,1.0 1.0,-1.0"

// ParsePair splits s at the first occurrence of sep, e.g. "1.25x0.42" with
// sep "x" yields "1.25" and "0.42". ok is false when sep is missing.
func ParsePair(s, sep string) (left, right string, ok bool) {
	i := strings.Index(s, sep)
	if i < 0 {
		return "", "", false
	}
	return s[:i], s[i+len(sep):], true
}

// ParseResolution parses "WIDTHxHEIGHT", e.g. "1500x750".
func ParseResolution(s string) (Resolution, error) {
	l, r, ok := ParsePair(s, "x")
	if !ok {
		return Resolution{}, configErrorf("resolution", "%q: want WIDTHxHEIGHT", s)
	}
	w, errW := strconv.Atoi(l)
	h, errH := strconv.Atoi(r)
	if errW != nil || errH != nil {
		return Resolution{}, configErrorf("resolution", "%q: want WIDTHxHEIGHT", s)
	}
	return Resolution{Width: w, Height: h}, nil
}

// ParseComplex parses a comma separated complex number, e.g. "1.25,-0.42".
func ParseComplex(s string) (complex128, error) {
	l, r, ok := ParsePair(s, ",")
	if !ok {
		return 0, configErrorf("point", "%q: want REAL,IMAGINARY", s)
	}
	re, errRe := strconv.ParseFloat(l, 64)
	im, errIm := strconv.ParseFloat(r, 64)
	if errRe != nil || errIm != nil {
		return 0, configErrorf("point", "%q: want REAL,IMAGINARY", s)
	}
	return complex(re, im), nil
}

func parseInt(field, s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, configErrorf(field, "%q: want an integer", s)
	}
	return n, nil
}

// ParseArgs turns the six positional arguments described by Usage into a
// validated Config and the destination path.
func ParseArgs(args []string) (Config, string, error) {
	if len(args) != 6 {
		return Config{}, "", &ConfigError{Msg: "want 6 arguments: " + Usage}
	}
	dest := args[0]
	if dest == "" {
		return Config{}, "", configErrorf("dest", "empty output path")
	}
	threads, err := parseInt("threads", args[1])
	if err != nil {
		return Config{}, "", err
	}
	iterations, err := parseInt("iterations", args[2])
	if err != nil {
		return Config{}, "", err
	}
	res, err := ParseResolution(args[3])
	if err != nil {
		return Config{}, "", err
	}
	ul, err := ParseComplex(args[4])
	if err != nil {
		return Config{}, "", err
	}
	lr, err := ParseComplex(args[5])
	if err != nil {
		return Config{}, "", err
	}

	cfg, err := NewConfig(Region{UpperLeft: ul, LowerRight: lr}, res, iterations, threads)
	if err != nil {
		return Config{}, "", err
	}
	return cfg, dest, nil
}
