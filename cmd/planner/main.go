package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/rchalamala/beavered/internal/csvio"
	"github.com/rchalamala/beavered/internal/export"
	"github.com/rchalamala/beavered/internal/scheduler"
	"github.com/rchalamala/beavered/internal/workspace"
	"github.com/rchalamala/beavered/pkg/model"
)

// Program parameters
var cfg = scheduler.NewDefaultConfiguration()

func main() {
	catalogPath := flag.String("catalog", cfg.CatalogFile, "catalog csv file")
	code := flag.String("code", "", "workspace share code to import")
	courses := flag.String("courses", "", "comma-separated course numbers to add")
	lock := flag.Bool("lock", false, "lock the seeded courses at their first section")
	csvOut := flag.String("csv", "", "write the chosen schedule as csv")
	icsOut := flag.String("ics", "", "write the chosen schedule as an ics calendar")
	pdfOut := flag.String("pdf", "", "write the chosen schedule as a pdf timetable")
	show := flag.Int("show", 5, "number of arrangements to print")
	flag.Parse()

	// Parse and instantiate course objects from CSV
	cat, err := csvio.LoadCatalog(*catalogPath, ',')
	if err != nil {
		log.Fatalf("load catalog: %v", err)
	}
	fmt.Printf("Loaded %d courses from %s\n\n", cat.Len(), *catalogPath)

	ws := workspace.New(cat)

	if *code != "" {
		short, err := workspace.ImportCode(*code)
		if err != nil {
			log.Fatalf("import workspace code: %v", err)
		}
		requests, dropped := cat.Lengthen(short)
		if dropped > 0 {
			fmt.Printf("Repaired %d stale entries from the imported code\n", dropped)
		}
		ws.SetCourses(requests)
	}

	for _, number := range splitList(*courses) {
		req, ok := cat.Request(number)
		if !ok {
			log.Fatalf("course %q not found in catalog", number)
		}
		req.Locked = *lock
		ws.AddCourse(req)
	}

	if len(ws.Courses) == 0 {
		fmt.Println("Nothing to schedule. Pass -code or -courses.")
		return
	}

	fmt.Println("Requests:")
	for _, c := range ws.Courses {
		state := "unlocked"
		if c.Locked {
			state = "locked"
		}
		if !c.Enabled {
			state = "disabled"
		}
		section := "-"
		if c.HasSection() {
			section = fmt.Sprintf("%d", c.ChosenSection().Number)
		}
		fmt.Printf("    %-12s section %-3s (%s)\n", c.Course.Number, section, state)
	}
	fmt.Println()

	// Time a fresh search over the final request list
	start := time.Now().UnixNano()
	arrangements := scheduler.Generate(ws.Courses, ws.Availability)
	end := time.Now().UnixNano()

	if len(arrangements) == 0 {
		fmt.Println("No arrangements found :(")
	} else {
		fmt.Printf("Found %d arrangements (%d branching courses)\n",
			len(arrangements), scheduler.BranchingRequests(ws.Courses))
		for i, arr := range arrangements {
			if i >= *show {
				fmt.Printf("    ... and %d more\n", len(arrangements)-*show)
				break
			}
			fmt.Printf("    #%d:", i+1)
			for _, pick := range arr {
				course, _ := cat.ByID(pick.CourseID)
				if pick.Section == model.NoSection {
					fmt.Printf(" %s:-", course.Number)
				} else {
					fmt.Printf(" %s:%d", course.Number, course.Sections[pick.Section].Number)
				}
			}
			fmt.Println()
		}
	}

	units := ws.Units()
	fmt.Printf("\n%d units (%d-%d-%d)\n", units[0]+units[1]+units[2], units[0], units[1], units[2])
	fmt.Printf("Timer: %f ms\n", float64(end-start)/1000000.0)

	if *csvOut != "" {
		if err := csvio.ExportSchedule(ws.Courses, *csvOut); err != nil {
			log.Fatalf("export csv: %v", err)
		}
		fmt.Println("Exported output to: " + *csvOut)
	}
	if *icsOut != "" {
		if err := os.WriteFile(*icsOut, []byte(export.ICS(ws.Courses, cfg.TermStart)), 0644); err != nil {
			log.Fatalf("export ics: %v", err)
		}
		fmt.Println("Exported output to: " + *icsOut)
	}
	if *pdfOut != "" {
		if err := export.PDF(ws.Courses, cfg.Term, *pdfOut); err != nil {
			log.Fatalf("export pdf: %v", err)
		}
		fmt.Println("Exported output to: " + *pdfOut)
	}
}

func splitList(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
