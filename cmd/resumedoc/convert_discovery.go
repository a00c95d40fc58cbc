package main

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-resumedoc/internal/extract"
)

// FileToConvert represents a single file to process.
type FileToConvert struct {
	InputPath string
	OutputDir string // Empty = next to the input
}

// discoverFiles finds all résumé files to convert.
//
// In a directory, files sharing a stem (resume.md, resume.pdf) count once:
// the first by extract.Extensions order wins, so outputs of an earlier run
// are not converted again. The output directory itself is never walked.
func discoverFiles(inputPath, outputDir string) ([]FileToConvert, error) {
	info, err := os.Stat(inputPath)
	if err != nil {
		return nil, err
	}

	if !info.IsDir() {
		if !extract.Supported(inputPath) {
			return nil, fmt.Errorf("%w: %q", extract.ErrUnrecognizedFormat, filepath.Base(inputPath))
		}
		return []FileToConvert{{InputPath: inputPath, OutputDir: outputDir}}, nil
	}

	skipDir := ""
	if outputDir != "" {
		if abs, err := filepath.Abs(outputDir); err == nil {
			skipDir = abs
		}
	}

	var files []FileToConvert
	byStem := make(map[string]int)
	err = filepath.WalkDir(inputPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != inputPath && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			if abs, err := filepath.Abs(path); err == nil && abs == skipDir && path != inputPath {
				return filepath.SkipDir
			}
			return nil
		}
		if !extract.Supported(path) {
			return nil
		}

		stem := strings.TrimSuffix(path, filepath.Ext(path))
		f := FileToConvert{InputPath: path, OutputDir: mirrorOutputDir(path, outputDir, inputPath)}
		if i, ok := byStem[stem]; ok {
			if extensionRank(path) < extensionRank(files[i].InputPath) {
				files[i] = f
			}
			return nil
		}
		byStem[stem] = len(files)
		files = append(files, f)
		return nil
	})

	return files, err
}

// mirrorOutputDir mirrors the layout of baseInputDir under outputDir.
func mirrorOutputDir(inputPath, outputDir, baseInputDir string) string {
	if outputDir == "" {
		return ""
	}
	rel, err := filepath.Rel(baseInputDir, filepath.Dir(inputPath))
	if err != nil || rel == "." {
		return outputDir
	}
	return filepath.Join(outputDir, rel)
}

// extensionRank orders inputs sharing a stem: text sources first.
func extensionRank(path string) int {
	ext := strings.ToLower(filepath.Ext(path))
	for i, e := range extract.Extensions() {
		if e == ext {
			return i
		}
	}
	return len(extract.Extensions())
}
