package main

import (
	"fmt"

	"github.com/2beens/gymplan/internal/gymplan/schedule"
	"github.com/2beens/gymplan/pkg"

	"github.com/BurntSushi/toml"
)

type recordsFile struct {
	Completed []schedule.CompletedRecord `toml:"completed"`
}

func loadRecords(path string) ([]schedule.CompletedRecord, error) {
	exists, err := pkg.PathExists(path, false)
	if err != nil {
		return nil, fmt.Errorf("check records file: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("records file %s not found", path)
	}

	var f recordsFile
	if _, err := toml.DecodeFile(path, &f); err != nil {
		return nil, fmt.Errorf("decode records file %s: %w", path, err)
	}

	for _, r := range f.Completed {
		if err := r.Position().Validate(); err != nil {
			return nil, fmt.Errorf("record on %s: %w", r.Date, err)
		}
	}
	return f.Completed, nil
}
