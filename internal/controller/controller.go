// Package controller is the entry point the command line talks to. It owns
// the file locations and wires the roster and attendance packages together.
package controller

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/idilsaglam/attendance/internal/attendance"
	"github.com/idilsaglam/attendance/internal/config"
	"github.com/idilsaglam/attendance/internal/model"
	"github.com/idilsaglam/attendance/internal/roster"
)

// Controller loads and saves rosters and attendance history from the
// configured directories and runs roll calls over them.
type Controller struct {
	membersDir     string
	attendancePath string
	logger         *slog.Logger
}

// New returns a Controller for the locations in cfg.
func New(cfg *config.Config, logger *slog.Logger) *Controller {
	if logger == nil {
		logger = slog.Default()
	}
	return &Controller{
		membersDir:     cfg.MembersPath(),
		attendancePath: cfg.AttendancePath(),
		logger:         logger,
	}
}

// LoadMembers reads a roster by name. On failure the slice is empty and the
// error says why (model.ErrNotFound or model.ErrParse).
func (c *Controller) LoadMembers(fileName string) ([]model.Member, error) {
	path := roster.Path(c.membersDir, fileName)
	members, err := roster.Load(path)
	if err != nil {
		c.logger.Warn("roster not loaded", "path", path, "err", err)
		return members, err
	}
	c.logger.Debug("roster loaded", "path", path, "members", len(members))
	return members, nil
}

// CheckDuplicates reports whether all member IDs are unique. Duplicates are
// logged but never block anything.
func (c *Controller) CheckDuplicates(members []model.Member) bool {
	if roster.HasNoDuplicates(members) {
		return true
	}
	c.logger.Warn("duplicate member ids", "ids", roster.DuplicateIDs(members))
	return false
}

// SaveMembers overwrites the named roster.
func (c *Controller) SaveMembers(members []model.Member, fileName string) error {
	return roster.Save(members, roster.Path(c.membersDir, fileName))
}

// AddMember appends a member and saves the roster. Blank name or id is
// model.ErrEmptyField and nothing changes.
func (c *Controller) AddMember(members []model.Member, fileName, name, id string) ([]model.Member, error) {
	name, id = strings.TrimSpace(name), strings.TrimSpace(id)
	if err := requireFields(name, id); err != nil {
		return members, err
	}
	out := roster.Add(members, name, id)
	if err := c.SaveMembers(out, fileName); err != nil {
		return members, err
	}
	c.logger.Info("member added", "roster", fileName, "id", id)
	return out, nil
}

// EditMember changes the name and id of the member at index and saves.
func (c *Controller) EditMember(members []model.Member, fileName string, index int, name, id string) ([]model.Member, error) {
	name, id = strings.TrimSpace(name), strings.TrimSpace(id)
	if err := requireFields(name, id); err != nil {
		return members, err
	}
	edited := append([]model.Member(nil), members...)
	edited, err := roster.Update(edited, index, name, id)
	if err != nil {
		return members, err
	}
	if err := c.SaveMembers(edited, fileName); err != nil {
		return members, err
	}
	c.logger.Info("member edited", "roster", fileName, "index", index, "id", id)
	return edited, nil
}

// RemoveMember drops the member at the zero-based index and saves.
func (c *Controller) RemoveMember(members []model.Member, fileName string, index int) ([]model.Member, error) {
	out, err := roster.RemoveAt(members, index)
	if err != nil {
		return members, err
	}
	if err := c.SaveMembers(out, fileName); err != nil {
		return members, err
	}
	c.logger.Info("member removed", "roster", fileName, "id", members[index].ID)
	return out, nil
}

// Rosters lists the roster files available.
func (c *Controller) Rosters() ([]string, error) {
	return roster.List(c.membersDir)
}

// LoadAttendance reads the history. Any problem is logged and an empty
// store returned; no history is a normal first run.
func (c *Controller) LoadAttendance() attendance.Store {
	store, err := attendance.Load(c.attendancePath)
	if err != nil {
		c.logger.Warn("attendance history unreadable, starting empty", "path", c.attendancePath, "err", err)
	}
	return store
}

// SaveAttendance rewrites the history file.
func (c *Controller) SaveAttendance(store attendance.Store) error {
	return attendance.Save(store, c.attendancePath)
}

// Recorder returns a Recorder that reads from input and saves to the
// history file.
func (c *Controller) Recorder(input attendance.InputSource) *attendance.Recorder {
	return attendance.NewRecorder(input, attendance.SaverFunc(c.SaveAttendance), c.logger)
}

// RecordAttendance runs a roll call for date and persists the result.
func (c *Controller) RecordAttendance(ctx context.Context, input attendance.InputSource, members []model.Member, date model.Date, store attendance.Store) (attendance.Store, int, int, error) {
	if len(members) == 0 {
		return store, 0, 0, model.ErrNoMembers
	}
	res, err := c.Recorder(input).Record(ctx, members, date, store)
	return res.Store, res.Present, res.Absent, err
}

// ParseDate validates a user supplied date.
func (c *Controller) ParseDate(s string) (model.Date, error) {
	return model.ParseDate(s)
}

func requireFields(name, id string) error {
	switch {
	case name == "":
		return fmt.Errorf("%w: name", model.ErrEmptyField)
	case id == "":
		return fmt.Errorf("%w: id", model.ErrEmptyField)
	}
	return nil
}
