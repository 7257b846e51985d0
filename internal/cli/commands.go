package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/urfave/cli/v3"

	"github.com/idilsaglam/attendance/internal/attendance"
	"github.com/idilsaglam/attendance/internal/model"
	"github.com/idilsaglam/attendance/internal/roster"
	"github.com/idilsaglam/attendance/internal/ui"
)

func (a *app) menuCommand() *cli.Command {
	return &cli.Command{
		Name:  "menu",
		Usage: "interactive menu",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return a.runMenu(ctx)
		},
	}
}

func (a *app) membersCommand() *cli.Command {
	return &cli.Command{
		Name:  "members",
		Usage: "list and edit a roster",
		Commands: []*cli.Command{
			{
				Name:      "ls",
				Usage:     "list members",
				ArgsUsage: "<roster>",
				Action:    a.doMembersList,
			},
			{
				Name:      "add",
				Usage:     "add a member (name can be multiple words)",
				ArgsUsage: "<roster> <id> <name...>",
				Action:    a.doMembersAdd,
			},
			{
				Name:      "edit",
				Usage:     "change the id and name of the member at a 1-based index",
				ArgsUsage: "<roster> <index> <id> <name...>",
				Action:    a.doMembersEdit,
			},
			{
				Name:      "rm",
				Usage:     "remove the member at a 1-based index",
				ArgsUsage: "<roster> <index>",
				Action:    a.doMembersRemove,
			},
		},
	}
}

func (a *app) rostersCommand() *cli.Command {
	return &cli.Command{
		Name:  "rosters",
		Usage: "list roster files",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			names, err := a.ctrl.Rosters()
			if err != nil {
				return err
			}
			if len(names) == 0 {
				a.console.Println(ui.Current().Muted.Render("no rosters in " + a.cfg.MembersPath()))
				return nil
			}
			for _, n := range names {
				a.console.Println(n)
			}
			return nil
		},
	}
}

func (a *app) recordCommand() *cli.Command {
	return &cli.Command{
		Name:      "record",
		Usage:     "take attendance for a date (yyyy-mm-dd, default today)",
		ArgsUsage: "<roster> [date]",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "tui", Usage: "full screen roll call"},
		},
		Action: a.doRecord,
	}
}

func (a *app) showCommand() *cli.Command {
	return &cli.Command{
		Name:      "show",
		Usage:     "list recorded dates, or the records for one date",
		ArgsUsage: "[date]",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "tui", Usage: "browse interactively"},
		},
		Action: a.doShow,
	}
}

// -------------- subcommand impls ----------------

func (a *app) doMembersList(ctx context.Context, cmd *cli.Command) error {
	if cmd.NArg() != 1 {
		return usagef("usage: attendance members ls <roster>")
	}
	name := cmd.Args().First()
	members, err := a.ctrl.LoadMembers(name)
	if err != nil {
		return err
	}
	header := fmt.Sprintf("%s  %s %d",
		ui.Current().Title.Render(name), ui.Current().Accent.Render("Members"), len(members))
	a.console.Panel(append([]string{header, ""}, ui.MemberLines(members)...))
	a.warnDuplicates(members)
	return nil
}

func (a *app) doMembersAdd(ctx context.Context, cmd *cli.Command) error {
	args := cmd.Args().Slice()
	if len(args) < 3 {
		return usagef("usage: attendance members add <roster> <id> <name...>")
	}
	name, id := strings.Join(args[2:], " "), args[1]
	members, err := a.loadOrCreate(args[0])
	if err != nil {
		return err
	}
	if _, err := a.ctrl.AddMember(members, args[0], name, id); err != nil {
		return err
	}
	a.console.OK("added")
	return nil
}

func (a *app) doMembersEdit(ctx context.Context, cmd *cli.Command) error {
	args := cmd.Args().Slice()
	if len(args) < 4 {
		return usagef("usage: attendance members edit <roster> <index> <id> <name...>")
	}
	idx, err := parseIndex("edit", args[1])
	if err != nil {
		return err
	}
	members, err := a.ctrl.LoadMembers(args[0])
	if err != nil {
		return err
	}
	if _, err := a.ctrl.EditMember(members, args[0], idx, strings.Join(args[3:], " "), args[2]); err != nil {
		return err
	}
	a.console.OK("edited")
	return nil
}

func (a *app) doMembersRemove(ctx context.Context, cmd *cli.Command) error {
	if cmd.NArg() != 2 {
		return usagef("usage: attendance members rm <roster> <index>")
	}
	idx, err := parseIndex("rm", cmd.Args().Get(1))
	if err != nil {
		return err
	}
	name := cmd.Args().First()
	members, err := a.ctrl.LoadMembers(name)
	if err != nil {
		return err
	}
	if _, err := a.ctrl.RemoveMember(members, name, idx); err != nil {
		return err
	}
	a.console.OK("removed")
	return nil
}

func (a *app) doRecord(ctx context.Context, cmd *cli.Command) error {
	if cmd.NArg() < 1 || cmd.NArg() > 2 {
		return usagef("usage: attendance record <roster> [date]")
	}
	date := model.Today()
	if cmd.NArg() == 2 {
		d, err := a.ctrl.ParseDate(cmd.Args().Get(1))
		if err != nil {
			return err
		}
		date = d
	}
	members, err := a.requireMembers(cmd.Args().First())
	if err != nil {
		return err
	}
	store := a.ctrl.LoadAttendance()

	var present, absent int
	if cmd.Bool("tui") {
		sess, err := ui.RunRollCall(date, members,
			tea.WithInput(a.stdio.In), tea.WithOutput(a.stdio.Out), tea.WithAltScreen())
		if err != nil {
			return err
		}
		res, err := a.ctrl.Recorder(nil).Commit(sess, date, store)
		if err != nil {
			return err
		}
		present, absent = res.Present, res.Absent
	} else {
		_, present, absent, err = a.ctrl.RecordAttendance(ctx, a.input, members, date, store)
		if err != nil {
			return err
		}
	}
	a.console.OK(fmt.Sprintf("attendance saved for %s: %d present, %d absent", date, present, absent))
	return nil
}

func (a *app) doShow(ctx context.Context, cmd *cli.Command) error {
	if cmd.NArg() > 1 {
		return usagef("usage: attendance show [date]")
	}
	store := a.ctrl.LoadAttendance()
	if cmd.Bool("tui") {
		return ui.RunHistory(store, tea.WithInput(a.stdio.In), tea.WithOutput(a.stdio.Out), tea.WithAltScreen())
	}
	if cmd.NArg() == 0 {
		a.printDates(store)
		return nil
	}
	date, err := a.ctrl.ParseDate(cmd.Args().First())
	if err != nil {
		return err
	}
	records, ok := store.RecordsForDate(date)
	if !ok {
		return fmt.Errorf("%w: no attendance recorded for %s", model.ErrNotFound, date)
	}
	a.console.Panel(ui.RecordLines(date, records))
	return nil
}

// -------------- helpers --------------

// requireMembers loads a roster for an operation that cannot run without
// members.
func (a *app) requireMembers(name string) ([]model.Member, error) {
	members, err := a.ctrl.LoadMembers(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", model.ErrNoMembers, err)
	}
	if len(members) == 0 {
		return nil, model.ErrNoMembers
	}
	a.warnDuplicates(members)
	return members, nil
}

// loadOrCreate treats a missing roster as a new, empty one.
func (a *app) loadOrCreate(name string) ([]model.Member, error) {
	members, err := a.ctrl.LoadMembers(name)
	if errors.Is(err, model.ErrNotFound) {
		return members, nil
	}
	return members, err
}

func (a *app) warnDuplicates(members []model.Member) {
	if a.ctrl.CheckDuplicates(members) {
		return
	}
	a.console.Warn("duplicate member IDs: " + strings.Join(roster.DuplicateIDs(members), ", "))
}

func (a *app) printDates(store attendance.Store) {
	t := ui.Current()
	dates := store.Dates()
	if len(dates) == 0 {
		a.console.Println(t.Muted.Render("no attendance recorded"))
		return
	}
	lines := []string{t.Title.Render("Recorded dates"), ""}
	for _, d := range dates {
		records, _ := store.RecordsForDate(d)
		present, absent := attendance.Tally(records)
		lines = append(lines, fmt.Sprintf("%s  %s %d  %s %d",
			d, t.Success.Render(t.SymOK), present, t.Pending.Render("•"), absent))
	}
	a.console.Panel(lines)
}

// parseIndex turns a 1-based user index into a zero-based one.
func parseIndex(cmd, s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, usagef("%s: not a number: %s", cmd, s)
	}
	return n - 1, nil
}
