package csvio

import (
	"fmt"
	"os"

	"github.com/gocarina/gocsv"

	"github.com/rchalamala/beavered/pkg/model"
)

// ScheduleCSVRow is one weekly meeting of a chosen section.
type ScheduleCSVRow struct {
	Number     string `csv:"number"`
	Name       string `csv:"name"`
	Section    int    `csv:"section"`
	Day        string `csv:"day"`
	Start      string `csv:"start"`
	End        string `csv:"end"`
	Instructor string `csv:"instructor"`
	Locations  string `csv:"locations"`
}

// ExportSchedule writes the enabled chosen sections of a request list to
// the CSV file at path, one row per weekly meeting.
func ExportSchedule(courses []model.CourseRequest, path string) error {
	rows := scheduleRows(courses)

	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer out.Close()

	if err := gocsv.MarshalFile(&rows, out); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// ExportScheduleString renders the same rows to a CSV string.
func ExportScheduleString(courses []model.CourseRequest) (string, error) {
	rows := scheduleRows(courses)
	str, err := gocsv.MarshalString(&rows)
	if err != nil {
		return "", fmt.Errorf("write schedule csv: %w", err)
	}
	return str, nil
}

func scheduleRows(courses []model.CourseRequest) []*ScheduleCSVRow {
	rows := []*ScheduleCSVRow{}
	for _, c := range courses {
		if !c.Enabled || !c.HasSection() {
			continue
		}
		section := c.ChosenSection()
		week := model.ParseTimes(section.Times)
		for day := 0; day < model.WeekdayCount; day++ {
			for _, interval := range week[day] {
				rows = append(rows, &ScheduleCSVRow{
					Number:     c.Course.Number,
					Name:       c.Course.Name,
					Section:    section.Number,
					Day:        string(model.WeekdayLetters[day]),
					Start:      interval.Start.Format("15:04"),
					End:        interval.End.Format("15:04"),
					Instructor: section.Instructor,
					Locations:  section.Locations,
				})
			}
		}
	}
	return rows
}
