package util

import (
	"github.com/pkg/errors"
	"os"
	"strconv"
	"strings"
)

func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func HasArg(name string) bool {
	return hasArg(os.Args[1:], name)
}

// ArgValue finds the value of a flag given as "--name=value" or "--name value".
func ArgValue(name string) (string, bool) {
	return argValue(os.Args[1:], name)
}

// ArgFloat parses the value of a flag, returning def if it is absent.
func ArgFloat(name string, def float64) (float64, error) {
	return argFloat(os.Args[1:], name, def)
}

func ArgInt(name string, def int) (int, error) {
	return argInt(os.Args[1:], name, def)
}

func hasArg(args []string, name string) bool {
	for _, a := range args {
		if a == name {
			return true
		}
	}
	return false
}

func argValue(args []string, name string) (string, bool) {
	for i, a := range args {
		if a == name && i+1 < len(args) {
			return args[i+1], true
		}
		if strings.HasPrefix(a, name+"=") {
			return a[len(name)+1:], true
		}
	}
	return "", false
}

func argFloat(args []string, name string, def float64) (float64, error) {
	s, ok := argValue(args, name)
	if !ok {
		return def, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "flag %s", name)
	}
	return v, nil
}

func argInt(args []string, name string, def int) (int, error) {
	s, ok := argValue(args, name)
	if !ok {
		return def, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, errors.Wrapf(err, "flag %s", name)
	}
	return v, nil
}
