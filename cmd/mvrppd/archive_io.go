package main

import (
	"os"

	"mvrppd/internal/solution"
)

// writeArchive writes every archived solution to path, one solution
// block per entry as described by the solution file format (a |paths[k]|
// count line followed by one route line per vehicle), solutions
// separated by nothing more than Solution.Write's own trailing newline.
func writeArchive(path string, solutions []*solution.Solution) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	for _, s := range solutions {
		if err := s.Write(f); err != nil {
			return err
		}
	}

	return nil
}
