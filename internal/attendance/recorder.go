package attendance

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/idilsaglam/attendance/internal/model"
)

// Saver persists a whole store after a roll call is committed.
type Saver interface {
	Save(s Store) error
}

// SaverFunc adapts a function to Saver.
type SaverFunc func(s Store) error

func (f SaverFunc) Save(s Store) error { return f(s) }

// FileSaver saves to a fixed attendance file.
func FileSaver(path string) Saver {
	return SaverFunc(func(s Store) error { return Save(s, path) })
}

// Result is the outcome of a committed roll call.
type Result struct {
	Store   Store
	Date    model.Date
	Records []model.AttendanceRecord
	Present int
	Absent  int
}

// Recorder runs a roll call against an InputSource and commits it.
type Recorder struct {
	input  InputSource
	saver  Saver
	logger *slog.Logger
}

// NewRecorder builds a Recorder. A nil saver commits in memory only; a nil
// logger uses slog.Default.
func NewRecorder(input InputSource, saver Saver, logger *slog.Logger) *Recorder {
	if logger == nil {
		logger = slog.Default()
	}
	return &Recorder{input: input, saver: saver, logger: logger}
}

// Record asks about every member in order, re-asking on invalid answers,
// then replaces the entry for date in store and persists it. If input fails
// or ctx is cancelled first, store is left untouched and the error wraps
// model.ErrCancelled.
func (r *Recorder) Record(ctx context.Context, members []model.Member, date model.Date, store Store) (Result, error) {
	if len(members) == 0 {
		return Result{Store: store, Date: date}, model.ErrNoMembers
	}
	sess := NewSession(members)
	var retry bool
	rejected := ""
	for !sess.Done() {
		if err := ctx.Err(); err != nil {
			return Result{Store: store, Date: date}, fmt.Errorf("%w: %w", model.ErrCancelled, err)
		}
		m, i, _ := sess.Current()
		resp, err := r.input.Next(ctx, Prompt{Member: m, Index: i, Total: sess.Len(), Retry: retry, Rejected: rejected})
		if err != nil {
			r.logger.Debug("roll call interrupted", "date", date, "member", m.ID, "err", err)
			return Result{Store: store, Date: date}, fmt.Errorf("%w: %w", model.ErrCancelled, err)
		}
		if _, err := sess.Answer(resp); err != nil {
			if errors.Is(err, model.ErrInvalidResponse) {
				retry, rejected = true, resp
				continue
			}
			return Result{Store: store, Date: date}, err
		}
		retry, rejected = false, ""
	}
	return r.Commit(sess, date, store)
}

// Commit writes a finished session into store under date and persists it.
// An unfinished session is refused with model.ErrCancelled.
func (r *Recorder) Commit(sess *Session, date model.Date, store Store) (Result, error) {
	if sess == nil || !sess.Done() {
		return Result{Store: store, Date: date}, model.ErrCancelled
	}
	records := sess.Records()
	present, absent := sess.Counts()
	if _, replaced := store.RecordsForDate(date); replaced {
		r.logger.Info("replacing earlier attendance", "date", date)
	}
	store = store.RecordForDate(date, records)
	res := Result{Store: store, Date: date, Records: records, Present: present, Absent: absent}
	if r.saver != nil {
		if err := r.saver.Save(store); err != nil {
			return res, err
		}
	}
	r.logger.Info("attendance recorded", "date", date, "present", present, "absent", absent)
	return res, nil
}
