package vocabulary

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Vocabulary holds the finite lookup tables that turn free-text categorical
// answers into 0/1 codes. Tokens are matched after lowercasing and trimming;
// anything outside a table is reported as unknown, never as an error.
type Vocabulary struct {
	Gender map[string]int `yaml:"gender" json:"gender"`
	Stroke map[string]int `yaml:"stroke" json:"stroke"`
	Binary map[string]int `yaml:"binary" json:"binary"`
	Target map[string]int `yaml:"target" json:"target"`
}

func Load(path string) (Vocabulary, error) {
	if path == "" {
		return Default(), nil
	}
	content, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return Default(), err
	}
	var vocab Vocabulary
	if err := yaml.Unmarshal(content, &vocab); err != nil {
		return Vocabulary{}, err
	}
	if len(vocab.Gender) == 0 || len(vocab.Binary) == 0 {
		return Vocabulary{}, fmt.Errorf("vocabulary file %s incomplete", path)
	}
	if len(vocab.Stroke) == 0 {
		vocab.Stroke = Default().Stroke
	}
	if len(vocab.Target) == 0 {
		vocab.Target = Default().Target
	}
	return vocab, nil
}

func (v Vocabulary) LookupGender(token string) (int, bool) {
	return lookup(v.Gender, token)
}

func (v Vocabulary) LookupStroke(token string) (int, bool) {
	return lookup(v.Stroke, token)
}

func (v Vocabulary) LookupBinary(token string) (int, bool) {
	return lookup(v.Binary, token)
}

func (v Vocabulary) LookupTarget(token string) (int, bool) {
	return lookup(v.Target, token)
}

func lookup(table map[string]int, token string) (int, bool) {
	if table == nil {
		return 0, false
	}
	code, ok := table[strings.ToLower(strings.TrimSpace(token))]
	return code, ok
}

// Default returns the built-in English and Indonesian synonym tables the
// DiaBD dataset and the intake form produce.
func Default() Vocabulary {
	return Vocabulary{
		Gender: map[string]int{
			"female": 0, "woman": 0, "f": 0, "perempuan": 0, "wanita": 0, "0": 0,
			"male": 1, "man": 1, "m": 1, "laki-laki": 1, "pria": 1, "1": 1,
		},
		Stroke: map[string]int{
			"0": 0, "no": 0, "tidak": 0, "n": 0,
			"1": 1, "yes": 1, "ya": 1, "y": 1,
		},
		Binary: map[string]int{
			"yes": 1, "ya": 1, "true": 1, "1": 1, "y": 1, "ada": 1,
			"no": 0, "tidak": 0, "false": 0, "0": 0, "n": 0, "nan": 0, "none": 0,
		},
		Target: map[string]int{
			"no": 0, "yes": 1, "0": 0, "1": 1,
			"non-diabetic": 0, "diabetic": 1, "negative": 0, "positive": 1,
		},
	}
}
