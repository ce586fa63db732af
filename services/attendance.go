package services

import (
	"context"
	"strconv"
	"time"

	"school_admin_backend/apperr"
	"school_admin_backend/gsheets"
	"school_admin_backend/models"
	"school_admin_backend/store"
)

// AttendanceLedger treats one tab per class as a structured table: fixed
// identity columns followed by date columns appended in encounter order.
// Every read-modify-write runs under the tab's lock; the remote store offers
// no atomicity of its own, so a lost lock here means a lost update.
type AttendanceLedger struct {
	tables *gsheets.Adapter
	locks  *store.KeyedMutex
	now    func() time.Time
}

func NewAttendanceLedger(tables *gsheets.Adapter, locks *store.KeyedMutex) *AttendanceLedger {
	return &AttendanceLedger{tables: tables, locks: locks, now: time.Now}
}

var istLocation = func() *time.Location {
	loc, err := time.LoadLocation("Asia/Kolkata")
	if err != nil {
		return time.FixedZone("IST", 5*3600+30*60)
	}
	return loc
}()

// today returns the current date in IST, the format date columns use.
func (l *AttendanceLedger) today() string {
	return l.now().In(istLocation).Format("2006-01-02")
}

// MarkAttendance appends one student row to the class tab, seeding the fixed
// header row first if the tab is still empty. The adapter does not check for
// an existing roll number, so duplicates are possible.
func (l *AttendanceLedger) MarkAttendance(ctx context.Context, classID, roll, name, email, section string) error {
	cells := gsheets.StudentCells{
		RollNumber:  roll,
		StudentName: name,
		ParentEmail: email,
		Section:     section,
	}
	unlock := l.locks.Lock(classID)
	defer unlock()
	data, err := l.tables.ReadRows(ctx, classID)
	if err != nil {
		return err
	}
	if len(data.Headers) == 0 {
		if err := l.tables.AppendRow(ctx, classID, gsheets.HeaderRow); err != nil {
			return err
		}
	}
	return l.tables.AppendRow(ctx, classID, cells.Encode())
}

// TodaySummary projects every student's status for today's date column.
// Fails with NotFound until a column for today exists.
func (l *AttendanceLedger) TodaySummary(ctx context.Context, classID string) ([]models.TodayEntry, error) {
	data, err := l.readRows(ctx, classID)
	if err != nil {
		return nil, err
	}
	date := l.today()
	col := columnIndex(data.Headers, date)
	if col < 0 {
		return nil, apperr.NotFound("no attendance column for %s in %s", date, classID)
	}
	entries := make([]models.TodayEntry, 0, len(data.Rows))
	for _, row := range data.Rows {
		student := gsheets.DecodeStudent(row)
		entries = append(entries, models.TodayEntry{
			RollNumber:  student.RollNumber,
			StudentName: student.StudentName,
			Status:      row[col],
		})
	}
	return entries, nil
}

// FullSheet zips the date axis with each student's status sequence.
func (l *AttendanceLedger) FullSheet(ctx context.Context, classID string) ([]models.StudentAttendance, error) {
	data, err := l.readRows(ctx, classID)
	if err != nil {
		return nil, err
	}
	dates := dateColumns(data.Headers)
	out := make([]models.StudentAttendance, 0, len(data.Rows))
	for _, row := range data.Rows {
		student := gsheets.DecodeStudent(row)
		statuses := make([]string, 0, len(dates))
		for i := range dates {
			statuses = append(statuses, row[gsheets.FixedColumns+i])
		}
		out = append(out, models.StudentAttendance{
			RollNumber:  student.RollNumber,
			StudentName: student.StudentName,
			Dates:       dates,
			Statuses:    statuses,
		})
	}
	return out, nil
}

// Tracker aggregates Present/Absent counts per student across every date
// column and reduces the totals across the cohort.
func (l *AttendanceLedger) Tracker(ctx context.Context, classID string) ([]models.TrackerRow, models.TrackerSummary, error) {
	data, err := l.readRows(ctx, classID)
	if err != nil {
		return nil, models.TrackerSummary{}, err
	}
	rows := make([]models.TrackerRow, 0, len(data.Rows))
	summary := models.TrackerSummary{TotalStudents: len(data.Rows)}
	for _, row := range data.Rows {
		student := gsheets.DecodeStudent(row)
		presents, absents := 0, 0
		for i := gsheets.FixedColumns; i < len(row); i++ {
			switch models.AttendanceStatus(row[i]) {
			case models.StatusPresent:
				presents++
			case models.StatusAbsent:
				absents++
			}
		}
		rows = append(rows, models.TrackerRow{
			RollNumber:           student.RollNumber,
			StudentName:          student.StudentName,
			TotalPresent:         presents,
			TotalAbsent:          absents,
			AttendancePercentage: percentage(presents, absents),
		})
		summary.TotalPresent += presents
		summary.TotalAbsent += absents
	}
	return rows, summary, nil
}

// percentage formats presents/(presents+absents)*100 to two decimals; a
// student with no recorded days yields "0".
func percentage(presents, absents int) string {
	total := presents + absents
	if total == 0 {
		return "0"
	}
	return strconv.FormatFloat(float64(presents)/float64(total)*100, 'f', 2, 64)
}

// UpdateStudent rewrites one student's fixed columns in place, preserving
// every other row and every date cell, then writes the full region back.
func (l *AttendanceLedger) UpdateStudent(ctx context.Context, classID, roll, name, email, section string) (models.StudentRow, error) {
	unlock := l.locks.Lock(classID)
	defer unlock()

	data, err := l.readRows(ctx, classID)
	if err != nil {
		return models.StudentRow{}, err
	}
	i, err := gsheets.FindRowByKey(data.Rows, 0, roll)
	if err != nil {
		return models.StudentRow{}, err
	}

	updated := gsheets.StudentCells{
		RollNumber:  roll,
		StudentName: name,
		ParentEmail: email,
		Section:     section,
	}
	copy(data.Rows[i], updated.Encode())

	if err := l.tables.ReplaceRange(ctx, classID, data); err != nil {
		return models.StudentRow{}, err
	}
	return studentProjection(data.Rows[i]), nil
}

// SearchStudent returns the fixed-column projection for one roll number.
func (l *AttendanceLedger) SearchStudent(ctx context.Context, classID, roll string) (models.StudentRow, error) {
	data, err := l.readRows(ctx, classID)
	if err != nil {
		return models.StudentRow{}, err
	}
	i, err := gsheets.FindRowByKey(data.Rows, 0, roll)
	if err != nil {
		return models.StudentRow{}, err
	}
	return studentProjection(data.Rows[i]), nil
}

// RecordAttendance writes one day's statuses. Today's date column is appended
// to the header row the first time attendance is taken that day; every
// submitted roll number must already exist in the tab. The whole change lands
// in a single region write, so an unknown roll aborts before anything is
// written.
func (l *AttendanceLedger) RecordAttendance(ctx context.Context, classID string, records []models.AttendanceRecord) (string, error) {
	if len(records) == 0 {
		return "", apperr.Validation("no attendance records submitted")
	}
	for _, rec := range records {
		if !models.AttendanceStatus(rec.Status).Valid() {
			return "", apperr.Validation("invalid status %q for %s", rec.Status, rec.RollNumber)
		}
	}

	unlock := l.locks.Lock(classID)
	defer unlock()

	data, err := l.readRows(ctx, classID)
	if err != nil {
		return "", err
	}
	date := l.today()
	col := columnIndex(data.Headers, date)
	if col < 0 {
		data.Headers = append(data.Headers, date)
		col = len(data.Headers) - 1
		for i := range data.Rows {
			data.Rows[i] = append(data.Rows[i], "")
		}
	}
	for _, rec := range records {
		i, err := gsheets.FindRowByKey(data.Rows, 0, rec.RollNumber)
		if err != nil {
			return "", err
		}
		data.Rows[i][col] = rec.Status
	}
	if err := l.tables.ReplaceRange(ctx, classID, data); err != nil {
		return "", err
	}
	return date, nil
}

func (l *AttendanceLedger) readRows(ctx context.Context, classID string) (gsheets.TableData, error) {
	var data gsheets.TableData
	err := withRetry(ctx, func() error {
		var err error
		data, err = l.tables.ReadRows(ctx, classID)
		return err
	})
	return data, err
}

func studentProjection(row []string) models.StudentRow {
	student := gsheets.DecodeStudent(row)
	return models.StudentRow{
		RollNumber:  student.RollNumber,
		StudentName: student.StudentName,
		ParentEmail: student.ParentEmail,
		Section:     student.Section,
	}
}

func columnIndex(headers []string, name string) int {
	for i, h := range headers {
		if h == name {
			return i
		}
	}
	return -1
}

func dateColumns(headers []string) []string {
	if len(headers) <= gsheets.FixedColumns {
		return []string{}
	}
	return headers[gsheets.FixedColumns:]
}
