package riscv

import (
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

// corpusCase is one listing check from testdata/corpus.yaml. Code is
// the instruction bytes in memory order, hex encoded.
type corpusCase struct {
	Name string `yaml:"name"`
	ISA  string `yaml:"isa"`
	PC   uint64 `yaml:"pc"`
	Code string `yaml:"code"`
	Want string `yaml:"want"`
	Len  int    `yaml:"len"`
}

type corpusFile struct {
	Cases []corpusCase `yaml:"cases"`
}

func loadCorpus(path string) (*corpusFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading corpus: %w", err)
	}
	var corpus corpusFile
	if err := yaml.Unmarshal(data, &corpus); err != nil {
		return nil, fmt.Errorf("parsing corpus: %w", err)
	}
	return &corpus, nil
}

func TestCorpus(t *testing.T) {
	corpus, err := loadCorpus(filepath.Join("testdata", "corpus.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if len(corpus.Cases) == 0 {
		t.Fatal("corpus has no cases")
	}
	for _, tc := range corpus.Cases {
		t.Run(tc.Name, func(t *testing.T) {
			isa, err := ParseISA(tc.ISA)
			if err != nil {
				t.Fatal(err)
			}
			code, err := hex.DecodeString(tc.Code)
			if err != nil {
				t.Fatalf("bad code %q: %v", tc.Code, err)
			}
			in, n := Decode(isa, tc.PC, code)
			if n != tc.Len {
				t.Errorf("Decode(%s, %s): consumed %d bytes, want %d", tc.ISA, tc.Code, n, tc.Len)
			}
			if got := in.String(); got != tc.Want {
				t.Errorf("Decode(%s, %s): rendered %q, want %q", tc.ISA, tc.Code, got, tc.Want)
			}
		})
	}
}
