// Package roster loads, edits and saves member lists.
//
// Each roster is one JSON file under the members directory holding an array
// of {name, id} objects. Functions here never check ID uniqueness; callers
// run HasNoDuplicates after loading and decide what to do.
package roster

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/idilsaglam/attendance/internal/model"
	"github.com/idilsaglam/attendance/internal/store/jsonstore"
)

const fileExt = ".json"

// Load reads the roster at path. On failure it returns an empty, non-nil
// slice together with model.ErrNotFound or model.ErrParse.
func Load(path string) ([]model.Member, error) {
	var members []model.Member
	if err := jsonstore.ReadFile(path, &members); err != nil {
		return []model.Member{}, fmt.Errorf("load roster: %w", err)
	}
	if members == nil {
		members = []model.Member{}
	}
	return members, nil
}

// Save overwrites the roster at path with members.
func Save(members []model.Member, path string) error {
	if members == nil {
		members = []model.Member{}
	}
	if err := jsonstore.WriteFile(path, members); err != nil {
		return fmt.Errorf("save roster: %w", err)
	}
	return nil
}

// Add appends a member.
func Add(members []model.Member, name, id string) []model.Member {
	return append(members, model.Member{Name: name, ID: id})
}

// RemoveAt returns a copy of members without the element at index.
func RemoveAt(members []model.Member, index int) ([]model.Member, error) {
	if err := checkIndex(members, index); err != nil {
		return members, err
	}
	out := make([]model.Member, 0, len(members)-1)
	out = append(out, members[:index]...)
	return append(out, members[index+1:]...), nil
}

// Update edits the member at index in place.
func Update(members []model.Member, index int, name, id string) ([]model.Member, error) {
	if err := checkIndex(members, index); err != nil {
		return members, err
	}
	members[index].Name = name
	members[index].ID = id
	return members, nil
}

func checkIndex(members []model.Member, index int) error {
	if index < 0 || index >= len(members) {
		return fmt.Errorf("%w: have %d, got %d", model.ErrIndexOutOfRange, len(members), index)
	}
	return nil
}

// Path resolves a roster name inside dir. A name without an extension
// gets ".json".
func Path(dir, name string) string {
	name = strings.TrimSpace(name)
	if filepath.Ext(name) == "" {
		name += fileExt
	}
	return filepath.Join(dir, name)
}

// List returns the roster file names found in dir, sorted.
// A missing directory is an empty list.
func List(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("list rosters: %w", err)
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != fileExt {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names, nil
}
