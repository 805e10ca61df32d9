package export

import (
	"fmt"
	"sort"

	"github.com/go-pdf/fpdf"

	"github.com/rchalamala/beavered/pkg/model"
)

var weekdayNames = [model.WeekdayCount]string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday",
}

type pdfMeeting struct {
	interval model.TimeInterval
	label    string
	detail   string
}

// PDF writes a printable weekly timetable of the enabled chosen sections
// to the file at path.
func PDF(courses []model.CourseRequest, term string, path string) error {
	meetings := collectMeetings(courses)

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, fmt.Sprintf("Weekly Schedule: %s", term))
	pdf.Ln(12)

	for day := 0; day < model.WeekdayCount; day++ {
		pdf.SetFont("Arial", "B", 14)
		pdf.Cell(0, 10, weekdayNames[day])
		pdf.Ln(8)

		pdf.SetFont("Arial", "", 12)
		if len(meetings[day]) == 0 {
			pdf.Cell(0, 8, "  - No meetings.")
			pdf.Ln(8)
			continue
		}
		for _, m := range meetings[day] {
			line := fmt.Sprintf("  %s - %s  %s",
				m.interval.Start.Format("15:04"), m.interval.End.Format("15:04"), m.label)
			pdf.Cell(0, 8, line)
			pdf.Ln(6)
			if m.detail != "" {
				pdf.Cell(0, 6, "        "+m.detail)
				pdf.Ln(6)
			}
		}
		pdf.Ln(4)
	}

	if err := pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func collectMeetings(courses []model.CourseRequest) [model.WeekdayCount][]pdfMeeting {
	var meetings [model.WeekdayCount][]pdfMeeting
	for _, c := range courses {
		if !c.Enabled || !c.HasSection() {
			continue
		}
		section := c.ChosenSection()
		week := model.ParseTimes(section.Times)
		for day := 0; day < model.WeekdayCount; day++ {
			for _, interval := range week[day] {
				meetings[day] = append(meetings[day], pdfMeeting{
					interval: interval,
					label:    fmt.Sprintf("%s Section %d", c.Course.Number, section.Number),
					detail:   section.Instructor,
				})
			}
		}
	}
	for day := range meetings {
		sort.Slice(meetings[day], func(i, j int) bool {
			return meetings[day][i].interval.Start.Before(meetings[day][j].interval.Start)
		})
	}
	return meetings
}
