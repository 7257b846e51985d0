package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/idilsaglam/attendance/internal/attendance"
	"github.com/idilsaglam/attendance/internal/model"
	"github.com/idilsaglam/attendance/internal/ui"
)

// menuState is what the interactive session keeps between choices.
type menuState struct {
	members    []model.Member
	rosterName string
	store      attendance.Store
}

// runMenu loops over the numbered menu until the user quits or input ends.
// Errors from a single choice are printed and the menu is shown again.
func (a *app) runMenu(ctx context.Context) error {
	st := &menuState{store: attendance.NewStore()}
	t := ui.Current()
	a.console.Println(t.Title.Render("Attendance") + " " + t.Muted.Render("members file dir: "+a.cfg.MembersPath()))
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		a.console.Panel([]string{
			t.Accent.Render("1") + " Load roster",
			t.Accent.Render("2") + " Check attendance",
			t.Accent.Render("3") + " Show attendance",
			t.Accent.Render("4") + " Edit roster",
			t.Accent.Render("5") + " Quit",
		})
		choice, err := a.input.Ask(ctx, ">>")
		if err != nil {
			return endOfInput(err)
		}
		switch strings.TrimSpace(choice) {
		case "1":
			err = a.menuLoadRoster(ctx, st)
		case "2":
			err = a.menuCheckAttendance(ctx, st)
		case "3":
			err = a.menuShowAttendance(ctx, st)
		case "4":
			err = a.menuEditRoster(ctx, st)
		case "5", "q":
			return nil
		default:
			a.console.Fail("invalid input")
			continue
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if err != nil {
			a.console.Fail(err.Error())
		}
	}
}

func (a *app) menuLoadRoster(ctx context.Context, st *menuState) error {
	name, err := a.input.Ask(ctx, ">> Roster file name:")
	if err != nil {
		return err
	}
	st.members = nil
	members, err := a.ctrl.LoadMembers(name)
	if err != nil {
		return fmt.Errorf("%w: %w", model.ErrNoMembers, err)
	}
	st.members = members
	if len(members) == 0 {
		return model.ErrNoMembers
	}
	st.rosterName = name
	a.console.OK(fmt.Sprintf("%d members loaded from %s", len(members), name))
	a.warnDuplicates(members)
	return nil
}

func (a *app) menuCheckAttendance(ctx context.Context, st *menuState) error {
	if len(st.members) == 0 {
		return model.ErrNoMembers
	}
	raw, err := a.input.Ask(ctx, ">> Date (yyyy-mm-dd):")
	if err != nil {
		return err
	}
	date, err := a.ctrl.ParseDate(raw)
	if err != nil {
		return err
	}
	st.store = a.ctrl.LoadAttendance()
	store, present, absent, err := a.ctrl.RecordAttendance(ctx, a.input, st.members, date, st.store)
	if err != nil {
		if errors.Is(err, model.ErrCancelled) && errors.Is(err, io.EOF) {
			return io.EOF
		}
		return err
	}
	st.store = store
	a.console.OK(fmt.Sprintf("attendance saved for %s: %d present, %d absent", date, present, absent))
	return nil
}

func (a *app) menuShowAttendance(ctx context.Context, st *menuState) error {
	st.store = a.ctrl.LoadAttendance()
	if len(st.store) == 0 {
		a.console.Println(ui.Current().Muted.Render("no attendance recorded"))
		return nil
	}
	for _, d := range st.store.Dates() {
		a.console.Println(d.String())
	}
	raw, err := a.input.Ask(ctx, ">> Date (yyyy-mm-dd):")
	if err != nil {
		return err
	}
	date, err := a.ctrl.ParseDate(raw)
	if err != nil {
		return err
	}
	records, ok := st.store.RecordsForDate(date)
	if !ok {
		return fmt.Errorf("%w: no attendance recorded for %s", model.ErrNotFound, date)
	}
	a.console.Panel(ui.RecordLines(date, records))
	return nil
}

func (a *app) menuEditRoster(ctx context.Context, st *menuState) error {
	if len(st.members) == 0 {
		return model.ErrNoMembers
	}
	for {
		a.console.Panel([]string{
			ui.Current().Accent.Render("1") + " Add member",
			ui.Current().Accent.Render("2") + " Remove member",
			ui.Current().Accent.Render("0") + " Back",
		})
		choice, err := a.input.Ask(ctx, ">>")
		if err != nil {
			return err
		}
		switch strings.TrimSpace(choice) {
		case "1":
			return a.menuAddMember(ctx, st)
		case "2":
			return a.menuRemoveMember(ctx, st)
		case "0":
			return nil
		default:
			a.console.Fail("invalid input")
		}
	}
}

// menuAddMember asks for each field until it is non-blank. Answering "0"
// after a blank field abandons the add.
func (a *app) menuAddMember(ctx context.Context, st *menuState) error {
	questions := []string{">> Member name:", ">> Member ID:"}
	answers := make([]string, len(questions))
	for i, q := range questions {
		for answers[i] == "" {
			v, err := a.input.Ask(ctx, q)
			if err != nil {
				return err
			}
			if v = strings.TrimSpace(v); v != "" {
				answers[i] = v
				continue
			}
			a.console.Warn(model.ErrEmptyField.Error() + ": enter 0 to go back or press enter to retry")
			back, err := a.input.Ask(ctx, "")
			if err != nil {
				return err
			}
			if strings.TrimSpace(back) == "0" {
				return nil
			}
		}
	}
	members, err := a.ctrl.AddMember(st.members, st.rosterName, answers[0], answers[1])
	if err != nil {
		return err
	}
	st.members = members
	a.console.OK("member added")
	a.warnDuplicates(members)
	return nil
}

func (a *app) menuRemoveMember(ctx context.Context, st *menuState) error {
	a.console.Panel(ui.MemberLines(st.members))
	raw, err := a.input.Ask(ctx, ">> Index of the member to remove:")
	if err != nil {
		return err
	}
	idx, err := parseIndex("remove", raw)
	if err != nil {
		return err
	}
	members, err := a.ctrl.RemoveMember(st.members, st.rosterName, idx)
	if err != nil {
		return err
	}
	st.members = members
	a.console.OK("member removed")
	return nil
}

func endOfInput(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
