package utils

import (
	"bufio"
	"fmt"
	"io"
	"io/fs"
	"strings"

	"github.com/twmb/murmur3"
)

func HashString(s string) uint64 {
	hash := murmur3.New64()
	_, err := hash.Write([]byte(s))
	if err != nil {
		panic(err)
	}
	return hash.Sum64()
}

// HashTokens hashes a token sequence. Tokens are separated by a unit
// separator so that ["ab", "c"] and ["a", "bc"] hash differently.
func HashTokens(tokens []string) uint64 {
	hash := murmur3.New64()
	for _, t := range tokens {
		if _, err := hash.Write([]byte(t)); err != nil {
			panic(err)
		}
		if _, err := hash.Write([]byte{0x1f}); err != nil {
			panic(err)
		}
	}
	return hash.Sum64()
}

// ReadMap reads "key|value" lines. Blank lines and lines starting with '#' are skipped.
func ReadMap(r io.Reader) (map[string]string, error) {
	result := make(map[string]string)
	err := scanLines(r, func(line string) error {
		p := strings.Split(line, "|")
		if len(p) != 2 {
			return fmt.Errorf("malformed line %q: expected 2 columns", line)
		}
		result[p[0]] = p[1]
		return nil
	})
	return result, err
}

func ReadSet(r io.Reader) (map[string]bool, error) {
	result := make(map[string]bool)
	err := scanLines(r, func(line string) error {
		result[line] = true
		return nil
	})
	return result, err
}

// ReadPairs reads "a|b" lines preserving file order.
func ReadPairs(r io.Reader) ([][]string, error) {
	var result [][]string
	err := scanLines(r, func(line string) error {
		p := strings.Split(line, "|")
		if len(p) != 2 {
			return fmt.Errorf("malformed line %q: expected 2 columns", line)
		}
		result = append(result, p)
		return nil
	})
	return result, err
}

func ReadList(r io.Reader) ([]string, error) {
	var result []string
	err := scanLines(r, func(line string) error {
		result = append(result, line)
		return nil
	})
	return result, err
}

// ReadFileWith opens name in fsys and hands it to read.
func ReadFileWith[T any](fsys fs.FS, name string, read func(io.Reader) (T, error)) (T, error) {
	var zero T
	f, err := fsys.Open(name)
	if err != nil {
		return zero, err
	}
	defer f.Close()

	res, err := read(f)
	if err != nil {
		return zero, fmt.Errorf("%s: %w", name, err)
	}
	return res, nil
}

func scanLines(r io.Reader, fn func(line string) error) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if len(line) == 0 || strings.HasPrefix(line, "#") {
			continue
		}
		if err := fn(line); err != nil {
			return err
		}
	}

	return scanner.Err()
}
